// Package alloc provides allocator backends for zeroview encoding.
//
// # Backends
//
//	Slice    bounded, writes into a caller-owned region sized in advance
//	Buffer   growable heap buffer, geometric growth up to MaxSize
//	Linear   growable WebAssembly linear memory, grows by 64 KiB pages
//
// Writing past the end of a Slice is a caller contract violation and panics;
// size the region from the view type's declared size. Growable backends report
// refused reservations as errors.KindAllocation.
//
// # Stream Output
//
// Buffer implements io.WriterTo so a finished encoding can be handed to any
// byte sink:
//
//	buf := alloc.AcquireBuffer()
//	defer buf.Release()
//	_ = view.Serialize(t, v, buf)
//	_, err := buf.WriteTo(conn)
//
// # Linear Memory
//
// LinearMemory hosts a memory-only module in a wazero runtime. Values encoded
// through its allocator can be viewed in place:
//
//	lm, _ := alloc.NewLinearMemory(ctx, nil)
//	defer lm.Close(ctx)
//	a := lm.Allocator(0)
//	_ = view.Serialize(t, v, a)
//	data, _ := a.Bytes()
//
// Slices returned by Bytes are invalidated when the memory grows.
//
// # Logging
//
// Backends log through a zap logger that is a no-op until SetLogger is called.
package alloc
