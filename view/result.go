package view

import (
	"github.com/wippyai/zeroview/errors"
)

const (
	okDiscriminant  uint8 = 0
	errDiscriminant uint8 = 1
)

var discriminants = [...]byte{okDiscriminant, errDiscriminant}

// Result is the native two-variant sum: OK when IsErr is false, Err otherwise.
type Result[T, E any] struct {
	OK    T
	Err   E
	IsErr bool
}

// Ok returns the first variant.
func Ok[T, E any](v T) Result[T, E] {
	return Result[T, E]{OK: v}
}

// Err returns the second variant.
func Err[T, E any](e E) Result[T, E] {
	return Result[T, E]{Err: e, IsErr: true}
}

// ResultType is the view of Result[T, E]: one discriminant byte followed by
// the selected payload, zero-padded to the wider of the two variants.
type ResultType[T, E any] struct {
	ok    Type[T]
	err   Type[E]
	width int
}

// ResultOf builds the view for results with the given variant views.
func ResultOf[T, E any](ok Type[T], err Type[E]) *ResultType[T, E] {
	return &ResultType[T, E]{
		ok:    ok,
		err:   err,
		width: max(ok.Size(), err.Size()),
	}
}

func (r *ResultType[T, E]) Name() string { return "Result" }

func (r *ResultType[T, E]) Size() int { return 1 + r.width }

// Check inspects the payload only when the discriminant is known. Padding
// bytes past the selected variant are not inspected.
func (r *ResultType[T, E]) Check(suspect, buffer []byte) error {
	switch tag := suspect[0]; tag {
	case okDiscriminant:
		return r.ok.Check(suspect[1:1+r.ok.Size()], buffer)
	case errDiscriminant:
		return r.err.Check(suspect[1:1+r.err.Size()], buffer)
	default:
		return errors.InvalidDiscriminant(r.Name(), tag, errDiscriminant)
	}
}

func (r *ResultType[T, E]) FromView(b []byte) Result[T, E] {
	if b[0] == okDiscriminant {
		return Ok[T, E](r.ok.FromView(b[1 : 1+r.ok.Size()]))
	}
	return Err[T, E](r.err.FromView(b[1 : 1+r.err.Size()]))
}

func (r *ResultType[T, E]) Serialize(value Result[T, E], s *Serializer) error {
	if value.IsErr {
		return serializeVariant(errDiscriminant, r.err, value.Err, r.width, s)
	}
	return serializeVariant(okDiscriminant, r.ok, value.OK, r.width, s)
}

// serializeVariant writes the tag, then hands the same cursor to the payload
// with a padding step in front of the enclosing continuation.
func serializeVariant[N any](tag uint8, t Type[N], v N, width int, s *Serializer) error {
	s.Write(discriminants[tag : tag+1])
	pad := padding{end: s.Offset() + width, next: s.Next()}
	return t.Serialize(v, s.Identity(pad))
}

// OkView returns the first variant's view when ref holds it.
func OkView[T, E any](ref Ref[Result[T, E]]) (Ref[T], bool) {
	r, ok := ref.t.(*ResultType[T, E])
	if !ok || ref.b[0] != okDiscriminant {
		return Ref[T]{}, false
	}
	return Ref[T]{t: r.ok, b: ref.b[1 : 1+r.ok.Size()]}, true
}

// ErrView returns the second variant's view when ref holds it.
func ErrView[T, E any](ref Ref[Result[T, E]]) (Ref[E], bool) {
	r, ok := ref.t.(*ResultType[T, E])
	if !ok || ref.b[0] != errDiscriminant {
		return Ref[E]{}, false
	}
	return Ref[E]{t: r.err, b: ref.b[1 : 1+r.err.Size()]}, true
}
