package view

import (
	"github.com/wippyai/zeroview"
)

// State is the write cursor shared by every serializer of one encode walk:
// the allocator and the running offset. The first allocator failure sticks
// and turns later writes into no-ops.
type State struct {
	alloc  zeroview.Allocator
	err    error
	offset int
}

// NewState starts a walk at the allocator's current offset.
func NewState(a zeroview.Allocator) *State {
	return &State{alloc: a, offset: a.Offset()}
}

// Write appends p unless an earlier write failed.
func (st *State) Write(p []byte) {
	if st.err != nil || len(p) == 0 {
		return
	}
	if err := st.alloc.Write(p); err != nil {
		st.err = err
		return
	}
	st.offset += len(p)
}

// Offset returns the running write offset.
func (st *State) Offset() int {
	return st.offset
}

// Err returns the first failure of the walk.
func (st *State) Err() error {
	return st.err
}

func (st *State) fail(err error) {
	if st.err == nil {
		st.err = err
	}
}

// Continuation is the stage that runs once the current value is written.
type Continuation interface {
	Resume(st *State) error
}

// ContinuationFunc adapts a function to Continuation.
type ContinuationFunc func(st *State) error

// Resume calls f(st).
func (f ContinuationFunc) Resume(st *State) error {
	return f(st)
}

// Done is the terminal continuation of a top-level write.
type Done struct{}

// Resume reports the walk's sticky error.
func (Done) Resume(st *State) error {
	return st.Err()
}

var zeros [16]byte

// padding zero-fills up to end, then resumes next.
type padding struct {
	next Continuation
	end  int
}

func (p padding) Resume(st *State) error {
	for st.err == nil && st.offset < p.end {
		st.Write(zeros[:min(p.end-st.offset, len(zeros))])
	}
	return p.next.Resume(st)
}

// Serializer is a single-use write cursor for one value.
type Serializer struct {
	state    *State
	next     Continuation
	consumed bool
}

// NewSerializer binds a cursor to st and the continuation that follows it.
func NewSerializer(st *State, next Continuation) *Serializer {
	return &Serializer{state: st, next: next}
}

// Write appends p at the cursor.
func (s *Serializer) Write(p []byte) {
	s.live()
	s.state.Write(p)
}

// Offset returns the cursor position.
func (s *Serializer) Offset() int {
	return s.state.offset
}

// Next returns the continuation that runs after this value.
func (s *Serializer) Next() Continuation {
	return s.next
}

// Continue consumes s and resumes its continuation.
func (s *Serializer) Continue() error {
	s.live()
	s.consumed = true
	return s.next.Resume(s.state)
}

// Identity consumes s and returns a cursor over the same state and offset
// that resumes next instead.
func (s *Serializer) Identity(next Continuation) *Serializer {
	s.live()
	s.consumed = true
	return &Serializer{state: s.state, next: next}
}

// Fail consumes s, records err as the walk's failure and returns it without
// resuming the continuation.
func (s *Serializer) Fail(err error) error {
	s.live()
	s.consumed = true
	s.state.fail(err)
	return s.state.err
}

func (s *Serializer) live() {
	if s.consumed {
		panic("view: serializer used after it was consumed")
	}
}
