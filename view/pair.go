package view

// Pair is a native two-field product.
type Pair[A, B any] struct {
	First  A
	Second B
}

// PairType is the view of Pair[A, B]: the first field's bytes followed by
// the second's.
type PairType[A, B any] struct {
	first  Type[A]
	second Type[B]
}

// PairOf builds the view for pairs with the given field views.
func PairOf[A, B any](first Type[A], second Type[B]) *PairType[A, B] {
	return &PairType[A, B]{first: first, second: second}
}

func (p *PairType[A, B]) Name() string { return "Pair" }

func (p *PairType[A, B]) Size() int { return p.first.Size() + p.second.Size() }

func (p *PairType[A, B]) Check(suspect, buffer []byte) error {
	n := p.first.Size()
	if err := p.first.Check(suspect[:n], buffer); err != nil {
		return err
	}
	return p.second.Check(suspect[n:], buffer)
}

func (p *PairType[A, B]) FromView(b []byte) Pair[A, B] {
	n := p.first.Size()
	return Pair[A, B]{
		First:  p.first.FromView(b[:n]),
		Second: p.second.FromView(b[n:]),
	}
}

// Serialize writes the first field with a continuation that writes the
// second and then resumes the enclosing write.
func (p *PairType[A, B]) Serialize(value Pair[A, B], s *Serializer) error {
	next := s.Next()
	second := ContinuationFunc(func(st *State) error {
		return p.second.Serialize(value.Second, NewSerializer(st, next))
	})
	return p.first.Serialize(value.First, s.Identity(second))
}

// FirstView returns the first field's view. It reports false when ref was
// not checked by a PairType.
func FirstView[A, B any](ref Ref[Pair[A, B]]) (Ref[A], bool) {
	p, ok := ref.t.(*PairType[A, B])
	if !ok {
		return Ref[A]{}, false
	}
	return Ref[A]{t: p.first, b: ref.b[:p.first.Size()]}, true
}

// SecondView returns the second field's view.
func SecondView[A, B any](ref Ref[Pair[A, B]]) (Ref[B], bool) {
	p, ok := ref.t.(*PairType[A, B])
	if !ok {
		return Ref[B]{}, false
	}
	return Ref[B]{t: p.second, b: ref.b[p.first.Size():]}, true
}
