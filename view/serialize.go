package view

import (
	"io"

	"github.com/wippyai/zeroview"
	"github.com/wippyai/zeroview/alloc"
)

// Serialize writes v into a at its current offset. Growable allocators reserve
// t.Size bytes first; a refused reservation is the only failure for legal
// native values.
func Serialize[N any](t Type[N], v N, a zeroview.Allocator) error {
	if err := zeroview.Reserve(a, t.Size()); err != nil {
		return err
	}
	return t.Serialize(v, NewSerializer(NewState(a), Done{}))
}

// Marshal encodes v into a new buffer of exactly t.Size bytes.
func Marshal[N any](t Type[N], v N) ([]byte, error) {
	buf := make([]byte, t.Size())
	if err := Serialize(t, v, alloc.NewSlice(buf)); err != nil {
		return nil, err
	}
	return buf, nil
}

// Encode writes the encoding of v to w through a pooled buffer.
func Encode[N any](w io.Writer, t Type[N], v N) error {
	buf := alloc.AcquireBuffer()
	defer buf.Release()

	if err := Serialize(t, v, buf); err != nil {
		return err
	}
	_, err := buf.WriteTo(w)
	return err
}
