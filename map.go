package skiplist

// keyValue is Map's element type: ordering and equality are defined
// entirely by key, so two entries with the same key and different
// values can never coexist.
type keyValue[K Comparable[K], V any] struct {
	key   K
	value V
}

func (kv keyValue[K, V]) CompareTo(other keyValue[K, V]) int {
	return kv.key.CompareTo(other.key)
}

// keyOnly is a query view that lets Map look up an entry by a bare
// key, without constructing a keyValue (and so without requiring a V
// to hand over just to search). This is the KeyView pattern: any type
// that implements Comparable[T] can stand in for T during a lookup.
type keyOnly[K Comparable[K], V any] struct {
	key K
}

func (q keyOnly[K, V]) CompareTo(other keyValue[K, V]) int {
	return q.key.CompareTo(other.key)
}

// Map is an ordered key-value store built directly on List, keyed and
// iterated in ascending key order.
type Map[K Comparable[K], V any] struct {
	inner *List[keyValue[K, V]]
}

// NewMap returns an empty map.
func NewMap[K Comparable[K], V any]() *Map[K, V] {
	return &Map[K, V]{inner: New[keyValue[K, V]]()}
}

// Insert adds key/value if key is not already present. On success it
// returns value and true. If key is already present, it returns the
// existing entry's value, unchanged, and false: Map never overwrites
// an existing value on an Insert collision.
func (m *Map[K, V]) Insert(key K, value V) (V, bool) {
	kv, inserted := m.inner.Insert(keyValue[K, V]{key: key, value: value})
	if !inserted {
		kv, _ = Get[keyValue[K, V], keyOnly[K, V]](m.inner, keyOnly[K, V]{key: key})
	}
	return kv.value, inserted
}

// Get returns the value stored for key, if any.
func (m *Map[K, V]) Get(key K) (V, bool) {
	kv, ok := Get[keyValue[K, V], keyOnly[K, V]](m.inner, keyOnly[K, V]{key: key})
	return kv.value, ok
}

// GetKeyValue returns the stored key and value for key, if any. The
// returned key is the one originally inserted, which may differ from
// the lookup key under a comparator that treats distinct values as
// equal (see Comparable on consistent comparators).
func (m *Map[K, V]) GetKeyValue(key K) (K, V, bool) {
	kv, ok := Get[keyValue[K, V], keyOnly[K, V]](m.inner, keyOnly[K, V]{key: key})
	return kv.key, kv.value, ok
}

// Contains reports whether key is present.
func (m *Map[K, V]) Contains(key K) bool {
	_, ok := m.Get(key)
	return ok
}

// MapIter yields key/value pairs in ascending key order.
type MapIter[K Comparable[K], V any] struct {
	e *Elems[keyValue[K, V]]
}

// Iter returns an iterator over the map's entries.
func (m *Map[K, V]) Iter() *MapIter[K, V] {
	return &MapIter[K, V]{e: m.inner.Elems()}
}

func (it *MapIter[K, V]) Next() (K, V, bool) {
	kv, ok := it.e.Next()
	if !ok {
		var zeroK K
		var zeroV V
		return zeroK, zeroV, false
	}
	return kv.key, kv.value, true
}

// MapKeys yields keys in ascending order.
type MapKeys[K Comparable[K], V any] struct {
	e *Elems[keyValue[K, V]]
}

// Keys returns an iterator over the map's keys.
func (m *Map[K, V]) Keys() *MapKeys[K, V] {
	return &MapKeys[K, V]{e: m.inner.Elems()}
}

func (it *MapKeys[K, V]) Next() (K, bool) {
	kv, ok := it.e.Next()
	if !ok {
		var zero K
		return zero, false
	}
	return kv.key, true
}

// MapValues yields values in ascending key order.
type MapValues[K Comparable[K], V any] struct {
	e *Elems[keyValue[K, V]]
}

// Values returns an iterator over the map's values.
func (m *Map[K, V]) Values() *MapValues[K, V] {
	return &MapValues[K, V]{e: m.inner.Elems()}
}

func (it *MapValues[K, V]) Next() (V, bool) {
	kv, ok := it.e.Next()
	if !ok {
		var zero V
		return zero, false
	}
	return kv.value, true
}

// MapIterMut yields each key alongside a pointer to its value, letting
// the caller mutate values in place without touching keys (which must
// never change, since they determine the entry's position).
type MapIterMut[K Comparable[K], V any] struct {
	e *ElemsMut[keyValue[K, V]]
}

// IterMut returns a mutable iterator over the map's entries.
func (m *Map[K, V]) IterMut() *MapIterMut[K, V] {
	return &MapIterMut[K, V]{e: m.inner.ElemsMut()}
}

func (it *MapIterMut[K, V]) Next() (K, *V, bool) {
	kv, ok := it.e.Next()
	if !ok {
		var zero K
		return zero, nil, false
	}
	return kv.key, &kv.value, true
}

// MapValuesMut yields a pointer to each value in ascending key order.
type MapValuesMut[K Comparable[K], V any] struct {
	e *ElemsMut[keyValue[K, V]]
}

// ValuesMut returns a mutable iterator over the map's values.
func (m *Map[K, V]) ValuesMut() *MapValuesMut[K, V] {
	return &MapValuesMut[K, V]{e: m.inner.ElemsMut()}
}

func (it *MapValuesMut[K, V]) Next() (*V, bool) {
	kv, ok := it.e.Next()
	if !ok {
		return nil, false
	}
	return &kv.value, true
}
