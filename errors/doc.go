// Package errors provides structured error types for zeroview.
//
// Errors are categorized by Phase (where the error occurred) and Kind (error
// category). An Error carries enough context to diagnose a failure without the
// buffer that caused it: the offending raw value, the legal bound and the view
// type name.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseValidate, errors.KindInvalidDiscriminant).
//		Type("Result").
//		Value(uint8(2)).
//		Bound(uint8(1)).
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.InvalidChar(0xFFFFFF)
//	err := errors.InvalidDiscriminant("Result", 2, 1)
//
// All errors implement the standard error interface and support errors.Is/As.
package errors
