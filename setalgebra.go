package skiplist

// The four set-algebra iterators below all merge two ascending,
// duplicate-free Elems[T] streams in a single forward pass, the same
// shape as a merge-sort merge step. They differ only in which side of
// a three-way compare they advance and emit from:
//
//	compare   Difference(a,b)   SymmetricDifference   Intersection   Union
//	a <  b    emit a, advance a  emit a, advance a     advance a      emit a, advance a
//	a == b    advance both       advance both          emit, advance  emit, advance both
//	a >  b    advance b          emit b, advance b      advance b      emit b, advance b
//
// SymmetricDifference and Union drain whichever side still has
// elements once the other runs dry. Difference emits the rest of a
// once b runs dry and stops as soon as a does. Intersection stops as
// soon as either side runs dry.

// Difference yields elements of a's list that do not appear in b's.
type Difference[T Comparable[T]] struct {
	a, b *Elems[T]
}

// NewDifference returns an iterator over elements present in a but not b.
func NewDifference[T Comparable[T]](a, b *Elems[T]) *Difference[T] {
	return &Difference[T]{a: a, b: b}
}

func (d *Difference[T]) Next() (T, bool) {
	for {
		av, aok := d.a.Peek()
		if !aok {
			var zero T
			return zero, false
		}
		bv, bok := d.b.Peek()
		if !bok {
			d.a.Next()
			return av, true
		}
		switch c := av.CompareTo(bv); {
		case c < 0:
			d.a.Next()
			return av, true
		case c == 0:
			d.a.Next()
			d.b.Next()
		default:
			d.b.Next()
		}
	}
}

// SymmetricDifference yields elements present in exactly one of a, b.
type SymmetricDifference[T Comparable[T]] struct {
	a, b *Elems[T]
}

func NewSymmetricDifference[T Comparable[T]](a, b *Elems[T]) *SymmetricDifference[T] {
	return &SymmetricDifference[T]{a: a, b: b}
}

func (s *SymmetricDifference[T]) Next() (T, bool) {
	for {
		av, aok := s.a.Peek()
		bv, bok := s.b.Peek()
		switch {
		case !aok && !bok:
			var zero T
			return zero, false
		case !aok:
			s.b.Next()
			return bv, true
		case !bok:
			s.a.Next()
			return av, true
		}
		switch c := av.CompareTo(bv); {
		case c < 0:
			s.a.Next()
			return av, true
		case c == 0:
			s.a.Next()
			s.b.Next()
		default:
			s.b.Next()
			return bv, true
		}
	}
}

// Intersection yields elements present in both a and b.
type Intersection[T Comparable[T]] struct {
	a, b *Elems[T]
}

func NewIntersection[T Comparable[T]](a, b *Elems[T]) *Intersection[T] {
	return &Intersection[T]{a: a, b: b}
}

func (n *Intersection[T]) Next() (T, bool) {
	for {
		av, aok := n.a.Peek()
		if !aok {
			var zero T
			return zero, false
		}
		bv, bok := n.b.Peek()
		if !bok {
			var zero T
			return zero, false
		}
		switch c := av.CompareTo(bv); {
		case c < 0:
			n.a.Next()
		case c == 0:
			n.a.Next()
			n.b.Next()
			return av, true
		default:
			n.b.Next()
		}
	}
}

// Union yields every element present in a or b, each exactly once.
type Union[T Comparable[T]] struct {
	a, b *Elems[T]
}

func NewUnion[T Comparable[T]](a, b *Elems[T]) *Union[T] {
	return &Union[T]{a: a, b: b}
}

func (u *Union[T]) Next() (T, bool) {
	av, aok := u.a.Peek()
	bv, bok := u.b.Peek()
	switch {
	case !aok && !bok:
		var zero T
		return zero, false
	case !aok:
		u.b.Next()
		return bv, true
	case !bok:
		u.a.Next()
		return av, true
	}
	switch c := av.CompareTo(bv); {
	case c < 0:
		u.a.Next()
		return av, true
	case c == 0:
		u.a.Next()
		u.b.Next()
		return av, true
	default:
		u.b.Next()
		return bv, true
	}
}
