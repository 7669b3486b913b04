// Package layout describes zeroview wire layouts with WIT types.
//
// Hosts that only hold a WIT type description can size and validate a buffer
// without a compiled Go view. The layout is packed: no alignment padding, a
// one-byte discriminant for results, and the narrower result variant
// zero-padded to the wider one.
//
// # Supported Types
//
//	u8 u16 u32 u64 s16 s32 s64     fixed-width little-endian integers
//	char                           3-byte Unicode scalar
//	result<T, E>                   tag + max(T, E), either side may be empty
//	tuple<...>                     fields in order
//
// Other WIT types report errors.KindUnsupported.
//
// # Usage
//
//	c := layout.NewChecker()
//	err := c.Check(&wit.TypeDef{Kind: &wit.Result{OK: wit.Char{}, Err: wit.U32{}}}, buf)
//
// Errors match those of the view package for the same bytes.
package layout
