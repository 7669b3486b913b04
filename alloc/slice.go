package alloc

import (
	"fmt"

	"github.com/wippyai/zeroview"
)

// Slice is a bounded allocator over a caller-owned region.
type Slice struct {
	buf []byte
	off int
}

// NewSlice returns an allocator that writes into buf from its start.
func NewSlice(buf []byte) *Slice {
	return &Slice{buf: buf}
}

// Write copies p at the running offset. Writing past the region panics.
func (s *Slice) Write(p []byte) error {
	if len(p) > len(s.buf)-s.off {
		panic(fmt.Sprintf("alloc: write of %d bytes overflows bounded region (%d of %d used)",
			len(p), s.off, len(s.buf)))
	}
	s.off += copy(s.buf[s.off:], p)
	return nil
}

// Offset returns the number of bytes written.
func (s *Slice) Offset() int {
	return s.off
}

// Remaining returns the unwritten capacity.
func (s *Slice) Remaining() int {
	return len(s.buf) - s.off
}

// Bytes returns the written prefix of the region.
func (s *Slice) Bytes() []byte {
	return s.buf[:s.off]
}

var _ zeroview.Allocator = (*Slice)(nil)
