package view

import (
	"unicode/utf8"

	"github.com/wippyai/zeroview/errors"
)

// charType is the view of a Unicode scalar value: the low 21 bits of a
// 3-byte little-endian field.
type charType struct{}

var Char Type[rune] = charType{}

func (charType) Name() string { return "Char" }

func (charType) Size() int { return 3 }

func scalar(b []byte) uint32 {
	return uint32(b[0]) | uint32(b[1])<<8 | uint32(b[2])<<16
}

// Check rejects surrogates and values above utf8.MaxRune.
func (charType) Check(suspect, buffer []byte) error {
	v := scalar(suspect)
	if !utf8.ValidRune(rune(v)) {
		return errors.InvalidChar(v)
	}
	return nil
}

func (charType) FromView(b []byte) rune {
	return rune(scalar(b))
}

// Serialize fails for runes that are not scalar values; Go's rune admits
// surrogates and out of range values.
func (charType) Serialize(value rune, s *Serializer) error {
	if !utf8.ValidRune(value) {
		return s.Fail(errors.New(errors.PhaseEncode, errors.KindInvalidChar).
			Type("Char").
			Value(uint32(value)).
			Bound(uint32(utf8.MaxRune)).
			Detail("invalid Unicode scalar value: 0x%X", uint32(value)).
			Build())
	}
	s.Write([]byte{byte(value), byte(value >> 8), byte(value >> 16)})
	return s.Continue()
}
