// Package refset is a test-only oracle for set algebra over sorted
// uint32 streams, built on an independent implementation (a Roaring
// bitmap) so the skip-list based Difference/SymmetricDifference/
// Intersection/Union iterators can be checked against a result that
// was not produced by the same code under test.
package refset

import "github.com/RoaringBitmap/roaring"

// Set wraps a Roaring bitmap as a reference uint32 set.
type Set struct {
	bm *roaring.Bitmap
}

// FromSlice builds a reference set from values.
func FromSlice(values []uint32) *Set {
	bm := roaring.New()
	for _, v := range values {
		bm.Add(v)
	}
	return &Set{bm: bm}
}

// Slice returns the set's members in ascending order.
func (s *Set) Slice() []uint32 {
	return s.bm.ToArray()
}

// Difference returns members of s not present in other.
func (s *Set) Difference(other *Set) *Set {
	return &Set{bm: roaring.AndNot(s.bm, other.bm)}
}

// SymmetricDifference returns members present in exactly one of s, other.
func (s *Set) SymmetricDifference(other *Set) *Set {
	return &Set{bm: roaring.Xor(s.bm, other.bm)}
}

// Intersection returns members present in both s and other.
func (s *Set) Intersection(other *Set) *Set {
	return &Set{bm: roaring.And(s.bm, other.bm)}
}

// Union returns every member present in s or other.
func (s *Set) Union(other *Set) *Set {
	return &Set{bm: roaring.Or(s.bm, other.bm)}
}
