// Package zeroview provides zero-copy binary views over fixed-layout encodings.
//
// A native Go value is paired with a view type describing its wire form byte
// for byte. Values are written into a byte destination in one deterministic
// pass and later read straight from that buffer after a single validation pass,
// with no parse or allocation step.
//
// # Architecture Overview
//
//	zeroview/            Root package with the Allocator capability
//	├── view/            View/native duality, serializer pipeline, validation, catalogue
//	├── alloc/           Allocator backends (bounded slice, growable buffer, WASM linear memory)
//	├── layout/          Views described by WIT types, checked at runtime
//	└── errors/          Structured error types for diagnostics
//
// # Quick Start
//
//	t := view.ResultOf(view.Char, view.U32)
//
//	buf, err := view.Marshal(t, view.Ok[rune, uint32]('a'))
//	// buf == []byte{0, 0x61, 0, 0, 0}
//
//	ref, err := view.View(t, buf) // validated, aliases buf
//	v := ref.Native()
//
// # Wire Format
//
//	Type            Size        Encoding
//	──────────────────────────────────────────────────────────────
//	u8              1           raw byte
//	u16..u128       2..16       little-endian
//	s16..s128       2..16       little-endian two's complement
//	char            3           21-bit scalar in a 24-bit little-endian field
//	result<T, E>    1+max(T,E)  tag (0 ok, 1 err), payload zero-padded
//	pair<A, B>      A+B         fields in declaration order
//
// There is no alignment padding. Sizes are fixed per type.
//
// # Capabilities
//
// Capabilities are selected by import rather than runtime flags:
//
//   - minimal: view with alloc.Slice, sized from Type.Size
//   - growable buffer: alloc.Buffer and alloc.Linear
//   - stream output: view.Encode and alloc.Buffer.WriteTo
//
// # Thread Safety
//
// Type descriptors are immutable and safe for concurrent use. Validation only
// reads its input and may run concurrently on the same buffer. A Serializer,
// its State and the Allocator behind it belong to one encode call.
package zeroview
