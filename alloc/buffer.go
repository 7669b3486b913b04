package alloc

import (
	"fmt"
	"io"
	"sync"

	"go.uber.org/zap"

	"github.com/wippyai/zeroview"
	"github.com/wippyai/zeroview/errors"
)

const (
	// DefaultMaxSize caps a Buffer when BufferConfig.MaxSize is zero (1 GB).
	DefaultMaxSize = 1 << 30

	minGrow = 64
)

// BufferConfig holds configuration for growable buffers
type BufferConfig struct {
	// InitialCap preallocates capacity. 0 allocates on first write.
	InitialCap int

	// MaxSize bounds the buffer length. 0 means DefaultMaxSize.
	MaxSize int
}

// Buffer is a growable allocator backed by a heap slice.
// Capacity at least doubles on each growth.
type Buffer struct {
	buf    []byte
	max    int
	pooled bool
}

// NewBuffer creates a buffer. cfg may be nil.
func NewBuffer(cfg *BufferConfig) *Buffer {
	b := &Buffer{max: DefaultMaxSize}
	if cfg != nil {
		if cfg.MaxSize > 0 {
			b.max = cfg.MaxSize
		}
		if cfg.InitialCap > 0 {
			b.buf = make([]byte, 0, min(cfg.InitialCap, b.max))
		}
	}
	return b
}

// Reserve grows capacity so that n more bytes fit without reallocation.
func (b *Buffer) Reserve(n int) error {
	if n < 0 {
		return errors.AllocationFailed(n, fmt.Errorf("negative reservation"))
	}
	need := len(b.buf) + n
	if need <= cap(b.buf) {
		return nil
	}
	if need > b.max || need < len(b.buf) {
		Logger().Warn("buffer reservation refused",
			zap.Int("requested", n),
			zap.Int("len", len(b.buf)),
			zap.Int("max", b.max))
		return errors.AllocationFailed(n, fmt.Errorf("buffer limit of %d bytes exceeded", b.max))
	}

	newCap := max(2*cap(b.buf), need, minGrow)
	if newCap > b.max {
		newCap = b.max
	}
	grown := make([]byte, len(b.buf), newCap)
	copy(grown, b.buf)
	b.buf = grown
	return nil
}

// Write appends p, growing as needed.
func (b *Buffer) Write(p []byte) error {
	if err := b.Reserve(len(p)); err != nil {
		return err
	}
	b.buf = append(b.buf, p...)
	return nil
}

// Offset returns the number of bytes written.
func (b *Buffer) Offset() int {
	return len(b.buf)
}

// Len returns the number of bytes written.
func (b *Buffer) Len() int {
	return len(b.buf)
}

// Cap returns the current capacity.
func (b *Buffer) Cap() int {
	return cap(b.buf)
}

// Bytes returns the written bytes. The slice aliases the buffer until the
// next write, Reset or Release.
func (b *Buffer) Bytes() []byte {
	return b.buf
}

// Reset empties the buffer and keeps its capacity.
func (b *Buffer) Reset() {
	b.buf = b.buf[:0]
}

// WriteTo writes the buffer contents to w.
func (b *Buffer) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(b.buf)
	if err == nil && n != len(b.buf) {
		err = io.ErrShortWrite
	}
	return int64(n), err
}

const maxPooledBufferCapacity = 64 << 10

var bufferPool = sync.Pool{
	New: func() any {
		return &Buffer{max: DefaultMaxSize, pooled: true}
	},
}

// AcquireBuffer returns an empty pooled buffer. Call Release when done.
func AcquireBuffer() *Buffer {
	return bufferPool.Get().(*Buffer)
}

// Release returns a pooled buffer to the pool. The buffer is invalid after
// Release. Buffers from NewBuffer are left to the garbage collector.
func (b *Buffer) Release() {
	// Only pool small buffers to prevent memory bloat
	if !b.pooled || cap(b.buf) > maxPooledBufferCapacity {
		return
	}
	b.Reset()
	bufferPool.Put(b)
}

var (
	_ zeroview.Allocator = (*Buffer)(nil)
	_ zeroview.Reserver  = (*Buffer)(nil)
	_ io.WriterTo        = (*Buffer)(nil)
)
