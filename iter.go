package skiplist

// Elems is a read-only, forward-only cursor over a list's elements in
// ascending order. It borrows the list: concurrent inserts elsewhere
// in the list are safe to run alongside it and may or may not become
// visible to an in-progress Elems depending on how far it has already
// walked, exactly as with any other lock-free traversal.
type Elems[T any] struct {
	cur *node[T]
}

// Elems returns a cursor positioned just before the first element.
func (l *List[T]) Elems() *Elems[T] {
	return &Elems[T]{cur: l.headNext(0)}
}

// Next advances the cursor and returns the element it moved onto, or
// the zero value and false once the list is exhausted.
func (e *Elems[T]) Next() (T, bool) {
	if e.cur == nil {
		var zero T
		return zero, false
	}
	v := e.cur.elem
	e.cur = e.cur.next(0)
	return v, true
}

// Peek reports the next element Next would return, without advancing.
func (e *Elems[T]) Peek() (T, bool) {
	if e.cur == nil {
		var zero T
		return zero, false
	}
	return e.cur.elem, true
}

// ElemsMut is like Elems but yields pointers into the list's own
// storage, letting a caller mutate an element in place. Mutating
// through the returned pointer must never change how the element
// compares under CompareTo: doing so would violate the ordering every
// other lane and every concurrent reader relies on. Map uses this to
// expose mutable values while keeping keys immutable.
type ElemsMut[T any] struct {
	cur *node[T]
}

// ElemsMut returns a mutable cursor positioned just before the first
// element. Callers that use it concurrently with inserts still see
// the same lock-free traversal guarantees as Elems; the exclusivity
// ElemsMut implies is a convention of the calling code, not something
// the engine enforces itself (Map's IterMut and ValuesMut take no lock
// either).
func (l *List[T]) ElemsMut() *ElemsMut[T] {
	return &ElemsMut[T]{cur: l.headNext(0)}
}

// Next advances the cursor and returns a pointer to the element it
// moved onto, or nil, false once the list is exhausted.
func (e *ElemsMut[T]) Next() (*T, bool) {
	if e.cur == nil {
		return nil, false
	}
	n := e.cur
	e.cur = e.cur.next(0)
	return &n.elem, true
}

// Drain consumes a list's elements in ascending order. Creating it
// unlinks the list's own head lanes up front, so every element, taken
// or not, becomes unreachable from the list even if the caller stops
// partway through. This is what makes a partial drain safe to abandon:
// the list never holds the only reference to elements the caller has
// already taken, and never re-yields an element the caller already
// consumed if it later calls Drain again.
type Drain[T Comparable[T]] struct {
	l   *List[T]
	cur *node[T]
}

// Drain returns a cursor that consumes the list as it walks. The list
// is not safe to use concurrently with the returned Drain: draining
// rewrites the list's own head lanes, which a concurrent Insert or
// Get could otherwise race against.
func (l *List[T]) Drain() *Drain[T] {
	d := &Drain[T]{l: l, cur: l.headNext(0)}
	for lvl := 0; lvl < MaxHeight; lvl++ {
		l.lanes[lvl].Store(nil)
	}
	l.height.Store(0)
	return d
}

// Next advances the cursor and returns the element it moved onto, or
// the zero value and false once the list is exhausted.
func (d *Drain[T]) Next() (T, bool) {
	if d.cur == nil {
		var zero T
		return zero, false
	}
	v := d.cur.elem
	d.cur = d.cur.next(0)
	return v, true
}
