package view

import (
	"encoding/binary"
)

type integer interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64 | ~int16 | ~int32 | ~int64
}

// intType is the view of a fixed-width little-endian integer. Every bit
// pattern of the right size is a legal value.
type intType[N integer] struct {
	name string
	size int
}

var (
	U8  Type[uint8]  = intType[uint8]{name: "U8", size: 1}
	U16 Type[uint16] = intType[uint16]{name: "U16", size: 2}
	U32 Type[uint32] = intType[uint32]{name: "U32", size: 4}
	U64 Type[uint64] = intType[uint64]{name: "U64", size: 8}
	I16 Type[int16]  = intType[int16]{name: "I16", size: 2}
	I32 Type[int32]  = intType[int32]{name: "I32", size: 4}
	I64 Type[int64]  = intType[int64]{name: "I64", size: 8}
)

func (t intType[N]) Name() string { return t.name }

func (t intType[N]) Size() int { return t.size }

func (t intType[N]) Check(suspect, buffer []byte) error {
	return nil
}

func (t intType[N]) FromView(b []byte) N {
	switch t.size {
	case 1:
		return N(b[0])
	case 2:
		return N(binary.LittleEndian.Uint16(b))
	case 4:
		return N(binary.LittleEndian.Uint32(b))
	default:
		return N(binary.LittleEndian.Uint64(b))
	}
}

func (t intType[N]) Serialize(value N, s *Serializer) error {
	var b [8]byte
	switch t.size {
	case 1:
		b[0] = uint8(value)
	case 2:
		binary.LittleEndian.PutUint16(b[:], uint16(value))
	case 4:
		binary.LittleEndian.PutUint32(b[:], uint32(value))
	default:
		binary.LittleEndian.PutUint64(b[:], uint64(value))
	}
	s.Write(b[:t.size])
	return s.Continue()
}
