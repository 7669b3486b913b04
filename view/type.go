package view

import (
	"github.com/wippyai/zeroview/errors"
)

// Type binds the native type N to its view.
type Type[N any] interface {
	// Name is the label reported in errors.
	Name() string

	// Size is the declared size of the view in bytes.
	Size() int

	// Check validates suspect, which is exactly Size bytes long and lies
	// within buffer. It only reads.
	Check(suspect, buffer []byte) error

	// FromView rebuilds a native value from Size validated bytes.
	FromView(b []byte) N

	// Serialize writes value through s and returns the result of the
	// continuation chain.
	Serialize(value N, s *Serializer) error
}

// Ref is a validated view. It aliases the buffer it was checked against and
// is valid for as long as that buffer is left unmodified.
type Ref[N any] struct {
	t Type[N]
	b []byte
}

// Bytes returns the view's bytes without copying.
func (r Ref[N]) Bytes() []byte {
	return r.b
}

// Type returns the descriptor the bytes were checked against.
func (r Ref[N]) Type() Type[N] {
	return r.t
}

// Native rebuilds an owned native value.
func (r Ref[N]) Native() N {
	return r.t.FromView(r.b)
}

// View validates buf as an instance of t. buf must hold exactly t.Size bytes.
func View[N any](t Type[N], buf []byte) (Ref[N], error) {
	if len(buf) != t.Size() {
		return Ref[N]{}, errors.SizeMismatch(t.Name(), len(buf), t.Size())
	}
	return check(t, buf, buf)
}

// ViewAt validates the t.Size bytes of buf starting at offset.
func ViewAt[N any](t Type[N], buf []byte, offset int) (Ref[N], error) {
	if offset < 0 || offset > len(buf) || len(buf)-offset < t.Size() {
		avail := 0
		if offset >= 0 && offset < len(buf) {
			avail = len(buf) - offset
		}
		return Ref[N]{}, errors.SizeMismatch(t.Name(), avail, t.Size())
	}
	return check(t, buf[offset:offset+t.Size():offset+t.Size()], buf)
}

// Load validates buf and converts it to an owned native value.
func Load[N any](t Type[N], buf []byte) (N, error) {
	ref, err := View(t, buf)
	if err != nil {
		var zero N
		return zero, err
	}
	return ref.Native(), nil
}

func check[N any](t Type[N], suspect, buffer []byte) (Ref[N], error) {
	if err := t.Check(suspect, buffer); err != nil {
		return Ref[N]{}, err
	}
	return Ref[N]{t: t, b: suspect}, nil
}
