package layout

import (
	"unicode/utf8"

	"go.bytecodealliance.org/wit"

	"github.com/wippyai/zeroview/errors"
)

const (
	okDiscriminant  = 0
	errDiscriminant = 1
)

// Checker validates buffers against WIT-described layouts.
// Safe for concurrent use.
type Checker struct {
	calc *Calculator
}

func NewChecker() *Checker {
	return &Checker{calc: NewCalculator()}
}

// Size returns the declared size of t.
func (c *Checker) Size(t wit.Type) (int, error) {
	info, err := c.calc.Calculate(t)
	return info.Size, err
}

// Check validates buf as one instance of t. buf must hold exactly the
// declared size of t.
func (c *Checker) Check(t wit.Type, buf []byte) error {
	size, err := c.Size(t)
	if err != nil {
		return err
	}
	if len(buf) != size {
		return errors.SizeMismatch(typeName(t), len(buf), size)
	}
	return c.check(t, buf, buf)
}

func (c *Checker) check(t wit.Type, suspect, buffer []byte) error {
	switch typ := t.(type) {
	case wit.Char:
		v := uint32(suspect[0]) | uint32(suspect[1])<<8 | uint32(suspect[2])<<16
		if !utf8.ValidRune(rune(v)) {
			return errors.InvalidChar(v)
		}
		return nil
	case *wit.TypeDef:
		return c.checkTypeDef(typ, suspect, buffer)
	default:
		// integers: every bit pattern is legal
		return nil
	}
}

func (c *Checker) checkTypeDef(t *wit.TypeDef, suspect, buffer []byte) error {
	switch kind := t.Kind.(type) {
	case *wit.Result:
		return c.checkResult(kind, suspect, buffer)
	case *wit.Tuple:
		return c.checkTuple(t, kind, suspect, buffer)
	case wit.Type:
		return c.check(kind, suspect, buffer)
	default:
		return unsupported(t)
	}
}

func (c *Checker) checkResult(r *wit.Result, suspect, buffer []byte) error {
	var variant wit.Type
	switch tag := suspect[0]; tag {
	case okDiscriminant:
		variant = r.OK
	case errDiscriminant:
		variant = r.Err
	default:
		return errors.InvalidDiscriminant("Result", tag, errDiscriminant)
	}
	if variant == nil {
		return nil
	}
	size, err := c.Size(variant)
	if err != nil {
		return err
	}
	return c.check(variant, suspect[1:1+size], buffer)
}

func (c *Checker) checkTuple(td *wit.TypeDef, t *wit.Tuple, suspect, buffer []byte) error {
	info, err := c.calc.Calculate(td)
	if err != nil {
		return err
	}
	for i, typ := range t.Types {
		size, err := c.Size(typ)
		if err != nil {
			return err
		}
		off := info.Offsets[i]
		if err := c.check(typ, suspect[off:off+size], buffer); err != nil {
			return err
		}
	}
	return nil
}

// typeName mirrors the names used by the view package.
func typeName(t wit.Type) string {
	switch typ := t.(type) {
	case wit.U8:
		return "U8"
	case wit.U16:
		return "U16"
	case wit.U32:
		return "U32"
	case wit.U64:
		return "U64"
	case wit.S16:
		return "I16"
	case wit.S32:
		return "I32"
	case wit.S64:
		return "I64"
	case wit.Char:
		return "Char"
	case *wit.TypeDef:
		switch kind := typ.Kind.(type) {
		case *wit.Result:
			return "Result"
		case *wit.Tuple:
			return "Tuple"
		case wit.Type:
			return typeName(kind)
		}
	}
	return "unknown"
}
