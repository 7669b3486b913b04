package alloc

import (
	"bytes"
	stderrors "errors"
	"testing"

	"github.com/wippyai/zeroview/errors"
)

func TestSliceWrite(t *testing.T) {
	region := make([]byte, 5)
	s := NewSlice(region)

	if err := s.Write([]byte{1, 2}); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if err := s.Write([]byte{3, 4, 5}); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if s.Offset() != 5 || s.Remaining() != 0 {
		t.Errorf("Offset=%d Remaining=%d", s.Offset(), s.Remaining())
	}
	if !bytes.Equal(region, []byte{1, 2, 3, 4, 5}) {
		t.Errorf("region = %v", region)
	}
	if !bytes.Equal(s.Bytes(), region) {
		t.Errorf("Bytes = %v", s.Bytes())
	}
}

func TestSliceOverflowPanics(t *testing.T) {
	s := NewSlice(make([]byte, 2))
	defer func() {
		if recover() == nil {
			t.Error("expected panic")
		}
	}()
	_ = s.Write([]byte{1, 2, 3})
}

func TestBufferGrowth(t *testing.T) {
	b := NewBuffer(nil)
	if b.Cap() != 0 {
		t.Fatalf("Cap = %d before first write", b.Cap())
	}

	if err := b.Write([]byte{1}); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if b.Cap() != minGrow {
		t.Errorf("Cap = %d, want %d", b.Cap(), minGrow)
	}

	chunk := make([]byte, minGrow)
	if err := b.Write(chunk); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if b.Cap() != 2*minGrow {
		t.Errorf("Cap = %d, want geometric growth to %d", b.Cap(), 2*minGrow)
	}
	if b.Len() != minGrow+1 || b.Offset() != b.Len() {
		t.Errorf("Len=%d Offset=%d", b.Len(), b.Offset())
	}
}

func TestBufferReserve(t *testing.T) {
	b := NewBuffer(&BufferConfig{InitialCap: 8})
	if b.Cap() != 8 {
		t.Fatalf("Cap = %d, want 8", b.Cap())
	}
	if err := b.Reserve(8); err != nil {
		t.Fatalf("Reserve within capacity: %v", err)
	}
	if b.Cap() != 8 {
		t.Errorf("Reserve within capacity reallocated to %d", b.Cap())
	}
	if err := b.Reserve(1000); err != nil {
		t.Fatalf("Reserve: %v", err)
	}
	if b.Cap() < 1000 {
		t.Errorf("Cap = %d after Reserve(1000)", b.Cap())
	}
}

func TestBufferLimit(t *testing.T) {
	tests := []struct {
		name    string
		max     int
		writes  []int
		wantErr bool
	}{
		{"within", 16, []int{8, 8}, false},
		{"exceeds", 16, []int{8, 9}, true},
		{"single too large", 4, []int{5}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBuffer(&BufferConfig{MaxSize: tt.max})
			var err error
			for _, n := range tt.writes {
				if err = b.Write(make([]byte, n)); err != nil {
					break
				}
			}
			if (err != nil) != tt.wantErr {
				t.Fatalf("err = %v, wantErr %v", err, tt.wantErr)
			}
			if err == nil {
				return
			}
			var e *errors.Error
			if !stderrors.As(err, &e) || e.Kind != errors.KindAllocation {
				t.Errorf("err = %v, want allocation error", err)
			}
			if b.Cap() > tt.max {
				t.Errorf("Cap = %d exceeds max %d", b.Cap(), tt.max)
			}
		})
	}
}

func TestBufferNegativeReserve(t *testing.T) {
	if err := NewBuffer(nil).Reserve(-1); err == nil {
		t.Error("expected error")
	}
}

type shortWriter struct{ n int }

func (w *shortWriter) Write(p []byte) (int, error) {
	return min(w.n, len(p)), nil
}

func TestBufferWriteTo(t *testing.T) {
	b := NewBuffer(nil)
	_ = b.Write([]byte("hello"))

	var out bytes.Buffer
	n, err := b.WriteTo(&out)
	if err != nil || n != 5 || out.String() != "hello" {
		t.Errorf("WriteTo = %d, %v, %q", n, err, out.String())
	}

	if _, err := b.WriteTo(&shortWriter{n: 2}); err == nil {
		t.Error("expected short write error")
	}
}

func TestBufferPool(t *testing.T) {
	b := AcquireBuffer()
	if b.Len() != 0 {
		t.Fatalf("acquired buffer holds %d bytes", b.Len())
	}
	_ = b.Write([]byte{1, 2, 3})
	b.Release()

	b = AcquireBuffer()
	defer b.Release()
	if b.Len() != 0 {
		t.Errorf("reused buffer holds %d bytes", b.Len())
	}

	// oversized buffers are dropped rather than pooled
	big := AcquireBuffer()
	_ = big.Reserve(maxPooledBufferCapacity + 1)
	big.Release()

	// unpooled buffers are never put back
	NewBuffer(nil).Release()
}
