package errors

import (
	"fmt"
	"strings"
)

// Phase indicates where in processing the error occurred
type Phase string

const (
	PhaseEncode   Phase = "encode"   // native to bytes
	PhaseValidate Phase = "validate" // check over untrusted bytes
	PhaseLayout   Phase = "layout"   // WIT type to view layout
)

// Kind categorizes the error
type Kind string

const (
	KindInvalidChar         Kind = "invalid_char"
	KindInvalidDiscriminant Kind = "invalid_discriminant"
	KindAllocation          Kind = "allocation"
	KindSizeMismatch        Kind = "size_mismatch"
	KindUnsupported         Kind = "unsupported"
)

// Error is the structured error type used throughout zeroview.
// Errors are immutable once built.
type Error struct {
	Value  any
	Bound  any
	Cause  error
	Phase  Phase
	Kind   Kind
	Type   string
	Detail string
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if e.Type != "" {
		b.WriteString(": view type ")
		b.WriteString(e.Type)
	}

	if e.Detail != "" {
		if e.Type != "" {
			b.WriteString(" - ")
		} else {
			b.WriteString(": ")
		}
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Phase == t.Phase && e.Kind == t.Kind
	}
	return false
}

// Builder provides structured error construction
type Builder struct {
	err Error
}

// New creates a new error builder
func New(phase Phase, kind Kind) *Builder {
	return &Builder{
		err: Error{
			Phase: phase,
			Kind:  kind,
		},
	}
}

// Type sets the view type name
func (b *Builder) Type(name string) *Builder {
	b.err.Type = name
	return b
}

// Value sets the offending value
func (b *Builder) Value(v any) *Builder {
	b.err.Value = v
	return b
}

// Bound sets the legal bound the value was checked against
func (b *Builder) Bound(v any) *Builder {
	b.err.Bound = v
	return b
}

// Cause sets the underlying error
func (b *Builder) Cause(err error) *Builder {
	b.err.Cause = err
	return b
}

// Detail sets the human-readable detail message
func (b *Builder) Detail(msg string, args ...any) *Builder {
	if len(args) > 0 {
		b.err.Detail = fmt.Sprintf(msg, args...)
	} else {
		b.err.Detail = msg
	}
	return b
}

// Build returns the constructed error
func (b *Builder) Build() *Error {
	err := b.err
	return &err
}

// Convenience constructors for common error patterns

// InvalidChar creates an error for a stored scalar that is not a Unicode
// scalar value.
func InvalidChar(value uint32) *Error {
	return &Error{
		Phase:  PhaseValidate,
		Kind:   KindInvalidChar,
		Type:   "Char",
		Value:  value,
		Bound:  uint32(0x10FFFF),
		Detail: fmt.Sprintf("invalid Unicode scalar value: 0x%X", value),
	}
}

// InvalidDiscriminant creates an error for an unrecognized sum type tag.
func InvalidDiscriminant(typeName string, value, maximum uint8) *Error {
	return &Error{
		Phase:  PhaseValidate,
		Kind:   KindInvalidDiscriminant,
		Type:   typeName,
		Value:  value,
		Bound:  maximum,
		Detail: fmt.Sprintf("discriminant %d out of range (max %d)", value, maximum),
	}
}

// AllocationFailed creates an allocation failure error
func AllocationFailed(requested int, cause error) *Error {
	return &Error{
		Phase:  PhaseEncode,
		Kind:   KindAllocation,
		Value:  requested,
		Cause:  cause,
		Detail: fmt.Sprintf("failed to reserve %d bytes", requested),
	}
}

// SizeMismatch creates an error for a buffer whose length differs from the
// declared size of the view type.
func SizeMismatch(typeName string, got, want int) *Error {
	return &Error{
		Phase:  PhaseValidate,
		Kind:   KindSizeMismatch,
		Type:   typeName,
		Value:  got,
		Bound:  want,
		Detail: fmt.Sprintf("buffer holds %d bytes, view needs %d", got, want),
	}
}

// Unsupported creates an unsupported operation error
func Unsupported(phase Phase, what string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindUnsupported,
		Detail: what,
	}
}
