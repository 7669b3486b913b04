// Package view binds native Go values to fixed-layout wire views.
//
// Every native type N has one descriptor implementing Type[N]. The descriptor
// knows the declared size of the view, how to validate untrusted bytes, how to
// rebuild N from validated bytes and how to write N.
//
// # Decoding
//
//	ref, err := view.View(view.U32, buf) // validate only, ref aliases buf
//	n, err := view.Load(view.U32, buf)   // validate then convert
//
// Validation is one recursive pass. It never mutates its input, never panics on
// malformed bytes and returns the first violation. Composite types return the
// nested error unchanged.
//
// # Encoding
//
// Writes form one linear walk over a single State. A Serializer is a
// single-use cursor bound to the State and to the Continuation that runs once
// the value is written:
//
//	Serialize(t, v, alloc)
//	  └─ t.Serialize(v, Serializer{state, Done})
//	       ├─ Write(tag)
//	       ├─ Identity(padding{next: Done})   same state, new continuation
//	       └─ payload.Serialize(...) → Continue() → padding → Done
//
// Continue and Identity consume the serializer. Using it afterwards panics.
//
// # Catalogue
//
//	U8                              uint8
//	U16 U32 U64 I16 I32 I64         fixed-width integers
//	U128 I128                       Uint128, Int128
//	Char                            rune
//	ResultOf(ok, err)               Result[T, E]
//	PairOf(first, second)           Pair[A, B]
package view
