package alloc

import (
	"context"
	"encoding/binary"
	"fmt"
	"math"

	"github.com/tetratelabs/wazero"
	"github.com/tetratelabs/wazero/api"
	"go.uber.org/zap"

	"github.com/wippyai/zeroview"
	"github.com/wippyai/zeroview/errors"
)

// PageSize is the WebAssembly page size.
const PageSize = 65536

const memoryExport = "memory"

// Linear is a growable allocator over WebAssembly linear memory. Writes start
// at a base address; the memory grows page by page when a write would pass
// its end.
type Linear struct {
	mem  api.Memory
	base uint32
	off  uint32
}

// NewLinear returns an allocator writing into mem from base.
func NewLinear(mem api.Memory, base uint32) *Linear {
	return &Linear{mem: mem, base: base}
}

// Reserve grows the memory so that n more bytes fit past the offset.
func (l *Linear) Reserve(n int) error {
	if n < 0 {
		return errors.AllocationFailed(n, fmt.Errorf("negative reservation"))
	}
	end := uint64(l.base) + uint64(l.off) + uint64(n)
	size := uint64(l.mem.Size())
	if end <= size {
		return nil
	}
	if end > math.MaxUint32 {
		return errors.AllocationFailed(n, fmt.Errorf("end address %d exceeds 32-bit memory", end))
	}

	pages := uint32((end - size + PageSize - 1) / PageSize)
	prev, ok := l.mem.Grow(pages)
	if !ok {
		Logger().Warn("linear memory growth refused",
			zap.Uint32("pages", pages),
			zap.Uint64("size", size))
		return errors.AllocationFailed(n, fmt.Errorf("grow by %d pages refused at %d pages", pages, size/PageSize))
	}
	Logger().Debug("linear memory grown",
		zap.Uint32("from_pages", prev),
		zap.Uint32("to_pages", prev+pages))
	return nil
}

// Write copies p at the running offset, growing the memory as needed.
func (l *Linear) Write(p []byte) error {
	if err := l.Reserve(len(p)); err != nil {
		return err
	}
	if !l.mem.Write(l.base+l.off, p) {
		return errors.AllocationFailed(len(p), fmt.Errorf("memory write out of bounds: offset=%d, length=%d", l.base+l.off, len(p)))
	}
	l.off += uint32(len(p))
	return nil
}

// Offset returns the number of bytes written past base.
func (l *Linear) Offset() int {
	return int(l.off)
}

// Base returns the address of the first written byte.
func (l *Linear) Base() uint32 {
	return l.base
}

// Bytes returns the written region without copying. The slice is a view of
// the memory and is invalidated when the memory grows.
func (l *Linear) Bytes() ([]byte, error) {
	data, ok := l.mem.Read(l.base, l.off)
	if !ok {
		return nil, fmt.Errorf("memory read out of bounds: offset=%d, length=%d", l.base, l.off)
	}
	return data, nil
}

// LinearConfig holds configuration for a standalone linear memory
type LinearConfig struct {
	// InitialPages is the starting size in 64 KiB pages. 0 means 1.
	InitialPages uint32

	// MaxPages caps growth. 0 leaves the memory unbounded up to 4 GB.
	MaxPages uint32
}

// LinearMemory owns a wazero runtime hosting one exported linear memory.
type LinearMemory struct {
	runtime wazero.Runtime
	module  api.Module
	mem     api.Memory
}

// NewLinearMemory instantiates a memory-only module. cfg may be nil.
func NewLinearMemory(ctx context.Context, cfg *LinearConfig) (*LinearMemory, error) {
	initial, maxPages := uint32(1), uint32(0)
	if cfg != nil {
		if cfg.InitialPages > 0 {
			initial = cfg.InitialPages
		}
		maxPages = cfg.MaxPages
	}
	if maxPages > 0 && maxPages < initial {
		return nil, errors.New(errors.PhaseEncode, errors.KindAllocation).
			Value(initial).
			Bound(maxPages).
			Detail("initial pages %d exceed max pages %d", initial, maxPages).
			Build()
	}

	rt := wazero.NewRuntime(ctx)
	mod, err := rt.Instantiate(ctx, memoryModule(initial, maxPages))
	if err != nil {
		_ = rt.Close(ctx)
		return nil, errors.New(errors.PhaseEncode, errors.KindAllocation).
			Cause(err).
			Detail("instantiate linear memory").
			Build()
	}

	mem := mod.ExportedMemory(memoryExport)
	if mem == nil {
		_ = rt.Close(ctx)
		return nil, fmt.Errorf("module does not export %q", memoryExport)
	}

	Logger().Debug("linear memory created",
		zap.Uint32("pages", initial),
		zap.Uint32("max_pages", maxPages))

	return &LinearMemory{runtime: rt, module: mod, mem: mem}, nil
}

// Memory returns the underlying wazero memory.
func (m *LinearMemory) Memory() api.Memory {
	return m.mem
}

// Allocator returns a fresh allocator writing from base.
func (m *LinearMemory) Allocator(base uint32) *Linear {
	return NewLinear(m.mem, base)
}

// Close releases the runtime and its memory.
func (m *LinearMemory) Close(ctx context.Context) error {
	return m.runtime.Close(ctx)
}

// memoryModule encodes a core module with one exported memory.
func memoryModule(initial, maxPages uint32) []byte {
	limits := []byte{0x00}
	if maxPages > 0 {
		limits[0] = 0x01
	}
	limits = binary.AppendUvarint(limits, uint64(initial))
	if maxPages > 0 {
		limits = binary.AppendUvarint(limits, uint64(maxPages))
	}

	memSec := append([]byte{0x01}, limits...)

	expSec := []byte{0x01}
	expSec = binary.AppendUvarint(expSec, uint64(len(memoryExport)))
	expSec = append(expSec, memoryExport...)
	expSec = append(expSec, 0x02, 0x00) // memory 0

	out := []byte{0x00, 0x61, 0x73, 0x6d, 0x01, 0x00, 0x00, 0x00}
	out = appendSection(out, 0x05, memSec)
	out = appendSection(out, 0x07, expSec)
	return out
}

func appendSection(out []byte, id byte, body []byte) []byte {
	out = append(out, id)
	out = binary.AppendUvarint(out, uint64(len(body)))
	return append(out, body...)
}

var (
	_ zeroview.Allocator = (*Linear)(nil)
	_ zeroview.Reserver  = (*Linear)(nil)
)
