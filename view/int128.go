package view

import (
	"encoding/binary"
	"math/big"
)

// Uint128 is an unsigned 128-bit integer.
type Uint128 struct {
	Lo, Hi uint64
}

// Int128 is a two's-complement signed 128-bit integer.
type Int128 struct {
	Lo uint64
	Hi int64
}

// Int128From64 sign-extends v.
func Int128From64(v int64) Int128 {
	return Int128{Lo: uint64(v), Hi: v >> 63}
}

var (
	MaxUint128 = Uint128{Lo: 1<<64 - 1, Hi: 1<<64 - 1}
	MaxInt128  = Int128{Lo: 1<<64 - 1, Hi: 1<<63 - 1}
	MinInt128  = Int128{Hi: -1 << 63}
)

// Big returns u as a big.Int.
func (u Uint128) Big() *big.Int {
	v := new(big.Int).SetUint64(u.Hi)
	v.Lsh(v, 64)
	return v.Or(v, new(big.Int).SetUint64(u.Lo))
}

func (u Uint128) String() string {
	return u.Big().String()
}

// Big returns i as a big.Int.
func (i Int128) Big() *big.Int {
	v := big.NewInt(i.Hi)
	v.Lsh(v, 64)
	return v.Add(v, new(big.Int).SetUint64(i.Lo))
}

func (i Int128) String() string {
	return i.Big().String()
}

type u128Type struct{}

type i128Type struct{}

var (
	U128 Type[Uint128] = u128Type{}
	I128 Type[Int128]  = i128Type{}
)

func (u128Type) Name() string { return "U128" }

func (u128Type) Size() int { return 16 }

func (u128Type) Check(suspect, buffer []byte) error {
	return nil
}

func (u128Type) FromView(b []byte) Uint128 {
	return Uint128{
		Lo: binary.LittleEndian.Uint64(b[0:8]),
		Hi: binary.LittleEndian.Uint64(b[8:16]),
	}
}

func (u128Type) Serialize(value Uint128, s *Serializer) error {
	var b [16]byte
	binary.LittleEndian.PutUint64(b[0:8], value.Lo)
	binary.LittleEndian.PutUint64(b[8:16], value.Hi)
	s.Write(b[:])
	return s.Continue()
}

func (i128Type) Name() string { return "I128" }

func (i128Type) Size() int { return 16 }

func (i128Type) Check(suspect, buffer []byte) error {
	return nil
}

func (i128Type) FromView(b []byte) Int128 {
	return Int128{
		Lo: binary.LittleEndian.Uint64(b[0:8]),
		Hi: int64(binary.LittleEndian.Uint64(b[8:16])),
	}
}

func (i128Type) Serialize(value Int128, s *Serializer) error {
	var b [16]byte
	binary.LittleEndian.PutUint64(b[0:8], value.Lo)
	binary.LittleEndian.PutUint64(b[8:16], uint64(value.Hi))
	s.Write(b[:])
	return s.Continue()
}
