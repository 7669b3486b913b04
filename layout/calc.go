package layout

import (
	"fmt"
	"sync"

	"go.bytecodealliance.org/wit"

	"github.com/wippyai/zeroview/errors"
)

// Info is the packed layout of one type.
type Info struct {
	// Offsets holds field offsets for tuples.
	Offsets []int
	Size    int
}

// Calculator computes packed layouts. Safe for concurrent use.
type Calculator struct {
	cache map[*wit.TypeDef]Info
	mu    sync.RWMutex
}

func NewCalculator() *Calculator {
	return &Calculator{
		cache: make(map[*wit.TypeDef]Info),
	}
}

func (c *Calculator) Calculate(t wit.Type) (Info, error) {
	switch typ := t.(type) {
	case wit.U8:
		return Info{Size: 1}, nil
	case wit.U16, wit.S16:
		return Info{Size: 2}, nil
	case wit.Char:
		return Info{Size: 3}, nil
	case wit.U32, wit.S32:
		return Info{Size: 4}, nil
	case wit.U64, wit.S64:
		return Info{Size: 8}, nil
	case *wit.TypeDef:
		return c.calculateTypeDef(typ)
	default:
		return Info{}, unsupported(t)
	}
}

func (c *Calculator) calculateTypeDef(t *wit.TypeDef) (Info, error) {
	c.mu.RLock()
	cached, ok := c.cache[t]
	c.mu.RUnlock()
	if ok {
		return cached, nil
	}

	var info Info
	var err error

	switch kind := t.Kind.(type) {
	case *wit.Result:
		info, err = c.calculateResult(kind)
	case *wit.Tuple:
		info, err = c.calculateTuple(kind)
	case wit.Type:
		info, err = c.Calculate(kind)
	default:
		err = unsupported(t)
	}
	if err != nil {
		return Info{}, err
	}

	c.mu.Lock()
	c.cache[t] = info
	c.mu.Unlock()
	return info, nil
}

// sizeOf treats a missing result side as empty.
func (c *Calculator) sizeOf(t wit.Type) (int, error) {
	if t == nil {
		return 0, nil
	}
	info, err := c.Calculate(t)
	return info.Size, err
}

func (c *Calculator) calculateResult(r *wit.Result) (Info, error) {
	okSize, err := c.sizeOf(r.OK)
	if err != nil {
		return Info{}, err
	}
	errSize, err := c.sizeOf(r.Err)
	if err != nil {
		return Info{}, err
	}
	return Info{Size: 1 + max(okSize, errSize)}, nil
}

func (c *Calculator) calculateTuple(t *wit.Tuple) (Info, error) {
	offsets := make([]int, len(t.Types))
	offset := 0

	for i, typ := range t.Types {
		elem, err := c.Calculate(typ)
		if err != nil {
			return Info{}, err
		}
		offsets[i] = offset
		offset += elem.Size
	}

	return Info{Size: offset, Offsets: offsets}, nil
}

func unsupported(t wit.Type) *errors.Error {
	var kind any = t
	if td, ok := t.(*wit.TypeDef); ok {
		kind = td.Kind
	}
	return errors.Unsupported(errors.PhaseLayout, fmt.Sprintf("no packed view for WIT type %T", kind))
}
