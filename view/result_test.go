package view

import (
	"bytes"
	"testing"

	"github.com/wippyai/zeroview/errors"
)

func TestResult(t *testing.T) {
	charOrU32 := ResultOf(Char, U32)
	u32OrChar := ResultOf(U32, Char)

	roundTrip(t, charOrU32, Ok[rune, uint32]('a'), []byte{0, 97, 0, 0, 0})
	roundTrip(t, charOrU32, Err[rune, uint32](67305985), []byte{1, 1, 2, 3, 4})
	roundTrip(t, u32OrChar, Ok[uint32, rune](67305985), []byte{0, 1, 2, 3, 4})
	roundTrip(t, u32OrChar, Err[uint32, rune]('a'), []byte{1, 97, 0, 0, 0})
}

func TestResultSize(t *testing.T) {
	tests := []struct {
		name string
		size int
		want int
	}{
		{"u8 u8", ResultOf(U8, U8).Size(), 2},
		{"char u32", ResultOf(Char, U32).Size(), 5},
		{"u128 char", ResultOf(U128, Char).Size(), 17},
		{"nested", ResultOf(ResultOf(Char, U8), U16).Size(), 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.size != tt.want {
				t.Errorf("Size = %d, want %d", tt.size, tt.want)
			}
		})
	}
}

func TestResultNested(t *testing.T) {
	inner := ResultOf(Char, U8)
	outer := ResultOf(inner, U32)

	// ok(ok('a')): inner payload is 3 wide, inner total 4, outer width 4
	roundTrip(t, outer, Ok[Result[rune, uint8], uint32](Ok[rune, uint8]('a')), []byte{0, 0, 0x61, 0, 0})
	// ok(err(7)): inner pads u8 to the char width
	roundTrip(t, outer, Ok[Result[rune, uint8], uint32](Err[rune, uint8](7)), []byte{0, 1, 7, 0, 0})
	roundTrip(t, outer, Err[Result[rune, uint8]](uint32(0x04030201)), []byte{1, 1, 2, 3, 4})
}

func TestResultInvalidDiscriminant(t *testing.T) {
	typ := ResultOf(U8, U8)
	for _, tag := range []byte{2, 3, 0x7F, 0xFF} {
		_, err := View(typ, []byte{tag, 0})
		e := asError(t, err)
		if e.Kind != errors.KindInvalidDiscriminant {
			t.Fatalf("tag %d: Kind = %v", tag, e.Kind)
		}
		if e.Value != tag || e.Bound != uint8(1) || e.Type != "Result" {
			t.Errorf("tag %d: Value=%v Bound=%v Type=%q", tag, e.Value, e.Bound, e.Type)
		}
	}

	for _, tag := range []byte{0, 1} {
		if _, err := View(typ, []byte{tag, 0}); err != nil {
			t.Errorf("tag %d: %v", tag, err)
		}
	}
}

// An unknown tag fails before the payload is looked at.
func TestResultInvalidDiscriminantSkipsPayload(t *testing.T) {
	_, err := View(ResultOf(Char, Char), []byte{2, 0xFF, 0xFF, 0xFF})
	if e := asError(t, err); e.Kind != errors.KindInvalidDiscriminant {
		t.Errorf("Kind = %v, want invalid_discriminant", e.Kind)
	}
}

func TestResultInvalidPayload(t *testing.T) {
	t.Run("ok", func(t *testing.T) {
		_, err := View(ResultOf(Char, U8), []byte{0, 0xFF, 0xFF, 0xFF})
		e := asError(t, err)
		if e.Kind != errors.KindInvalidChar || e.Type != "Char" || e.Value != uint32(0xFFFFFF) {
			t.Errorf("got %v", e)
		}
	})

	t.Run("err", func(t *testing.T) {
		_, err := View(ResultOf(U8, Char), []byte{1, 0xFF, 0xFF, 0xFF})
		e := asError(t, err)
		if e.Kind != errors.KindInvalidChar || e.Type != "Char" || e.Value != uint32(0xFFFFFF) {
			t.Errorf("got %v", e)
		}
	})
}

// Padding after the narrower variant carries no meaning.
func TestResultPaddingNotInspected(t *testing.T) {
	typ := ResultOf(Char, U32)
	v, err := Load(typ, []byte{0, 0x61, 0, 0, 0xEE})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if v != Ok[rune, uint32]('a') {
		t.Errorf("Load = %+v", v)
	}
}

func TestResultVariantViews(t *testing.T) {
	typ := ResultOf(Char, U32)

	buf := []byte{1, 1, 2, 3, 4}
	ref, err := View(typ, buf)
	if err != nil {
		t.Fatalf("View: %v", err)
	}
	if _, ok := OkView(ref); ok {
		t.Error("OkView reported ok for err variant")
	}
	errRef, ok := ErrView(ref)
	if !ok {
		t.Fatal("ErrView reported no err variant")
	}
	if errRef.Native() != 67305985 {
		t.Errorf("err payload = %d", errRef.Native())
	}
	if &errRef.Bytes()[0] != &buf[1] {
		t.Error("err payload view does not alias the buffer")
	}

	ref, err = View(typ, []byte{0, 0x61, 0, 0, 0})
	if err != nil {
		t.Fatalf("View: %v", err)
	}
	okRef, ok := OkView(ref)
	if !ok || okRef.Native() != 'a' {
		t.Errorf("OkView = %v, %v", okRef.Native(), ok)
	}
	if !bytes.Equal(okRef.Bytes(), []byte{0x61, 0, 0}) {
		t.Errorf("ok payload bytes = %v", okRef.Bytes())
	}
	if _, ok := ErrView(ref); ok {
		t.Error("ErrView reported err for ok variant")
	}
}
