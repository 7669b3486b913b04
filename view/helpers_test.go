package view

import (
	"bytes"
	stderrors "errors"
	"testing"

	"github.com/wippyai/zeroview/alloc"
	"github.com/wippyai/zeroview/errors"
)

// roundTrip encodes value through every entry point, compares the bytes with
// want and decodes them back.
func roundTrip[N comparable](t *testing.T, typ Type[N], value N, want []byte) {
	t.Helper()

	if typ.Size() != len(want) {
		t.Fatalf("%s size = %d, want %d", typ.Name(), typ.Size(), len(want))
	}

	got, err := Marshal(typ, value)
	if err != nil {
		t.Fatalf("Marshal(%v): %v", value, err)
	}
	if !bytes.Equal(got, want) {
		t.Fatalf("Marshal(%v) = %v, want %v", value, got, want)
	}

	buf := alloc.NewBuffer(nil)
	if err := Serialize(typ, value, buf); err != nil {
		t.Fatalf("Serialize to buffer: %v", err)
	}
	if !bytes.Equal(buf.Bytes(), want) {
		t.Fatalf("buffer bytes = %v, want %v", buf.Bytes(), want)
	}

	var w bytes.Buffer
	if err := Encode(&w, typ, value); err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if !bytes.Equal(w.Bytes(), want) {
		t.Fatalf("Encode bytes = %v, want %v", w.Bytes(), want)
	}

	back, err := Load(typ, got)
	if err != nil {
		t.Fatalf("Load(%v): %v", got, err)
	}
	if back != value {
		t.Fatalf("Load(%v) = %v, want %v", got, back, value)
	}
}

// asError extracts the structured error or fails the test.
func asError(t *testing.T, err error) *errors.Error {
	t.Helper()
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	var e *errors.Error
	if !stderrors.As(err, &e) {
		t.Fatalf("error %v (%T) is not *errors.Error", err, err)
	}
	return e
}
