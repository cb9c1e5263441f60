package skiplist

// Set is an ordered set built directly on List: an element is either
// present once or absent, and CompareTo on T is both the element's
// order and its identity.
type Set[T Comparable[T]] struct {
	*List[T]
}

// NewSet returns an empty set.
func NewSet[T Comparable[T]]() *Set[T] {
	return &Set[T]{List: New[T]()}
}

// FromSlice builds a set from values, discarding later duplicates.
func FromSlice[T Comparable[T]](values []T) *Set[T] {
	s := NewSet[T]()
	s.ExtendFrom(values)
	return s
}

// Contains reports whether an element equal to the query view q is
// present.
func Contains[T Comparable[T], Q Comparable[T]](s *Set[T], q Q) bool {
	_, ok := Get[T, Q](s.List, q)
	return ok
}

// Contains reports whether v is present in the set.
func (s *Set[T]) Contains(v T) bool {
	_, ok := s.Get(v)
	return ok
}

// ExtendFrom inserts every value not already present, sequentially.
func (s *Set[T]) ExtendFrom(values []T) {
	for _, v := range values {
		s.Insert(v)
	}
}

// Difference returns an iterator over elements in s but not other.
func (s *Set[T]) Difference(other *Set[T]) *Difference[T] {
	return NewDifference(s.Elems(), other.Elems())
}

// SymmetricDifference returns an iterator over elements present in
// exactly one of s, other.
func (s *Set[T]) SymmetricDifference(other *Set[T]) *SymmetricDifference[T] {
	return NewSymmetricDifference(s.Elems(), other.Elems())
}

// Intersection returns an iterator over elements present in both sets.
func (s *Set[T]) Intersection(other *Set[T]) *Intersection[T] {
	return NewIntersection(s.Elems(), other.Elems())
}

// Union returns an iterator over every element present in s or other.
func (s *Set[T]) Union(other *Set[T]) *Union[T] {
	return NewUnion(s.Elems(), other.Elems())
}
