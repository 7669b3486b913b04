package zeroview

// Allocator is a destination for the bytes of one encode walk.
// Write appends p at the running offset. Offset reports the number of bytes
// written so far.
type Allocator interface {
	Write(p []byte) error
	Offset() int
}

// Reserver is implemented by growable allocators.
// Reserve grows backing storage by at least n bytes past the current offset.
type Reserver interface {
	Reserve(n int) error
}

// Reserve calls a.Reserve when a is growable and is a no-op otherwise.
func Reserve(a Allocator, n int) error {
	if r, ok := a.(Reserver); ok {
		return r.Reserve(n)
	}
	return nil
}
