package skiplist

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func newFilledList(values ...intElem) *List[intElem] {
	l := New[intElem]()
	for _, v := range values {
		l.Insert(v)
	}
	return l
}

func TestElemsAscendingOrder(t *testing.T) {
	l := newFilledList(3, 1, 4, 1, 5, 9, 2, 6)
	got := collect(l.Elems())
	assert.Equal(t, []intElem{1, 2, 3, 4, 5, 6, 9}, got)
}

func TestElemsPeekDoesNotAdvance(t *testing.T) {
	l := newFilledList(1, 2, 3)
	e := l.Elems()

	v, ok := e.Peek()
	assert.True(t, ok)
	assert.Equal(t, intElem(1), v)

	v, ok = e.Peek()
	assert.True(t, ok, "Peek must be idempotent")
	assert.Equal(t, intElem(1), v)

	v, ok = e.Next()
	assert.True(t, ok)
	assert.Equal(t, intElem(1), v)

	v, ok = e.Peek()
	assert.True(t, ok)
	assert.Equal(t, intElem(2), v)
}

func TestElemsMutMutatesInPlace(t *testing.T) {
	l := newFilledList(1, 2, 3)
	it := l.ElemsMut()
	for {
		p, ok := it.Next()
		if !ok {
			break
		}
		*p = *p + 100
	}

	got := collect(l.Elems())
	assert.Equal(t, []intElem{101, 102, 103}, got)
}

func TestDrainYieldsAllElementsOnce(t *testing.T) {
	l := newFilledList(5, 3, 1, 4, 2)
	d := l.Drain()

	var got []intElem
	for {
		v, ok := d.Next()
		if !ok {
			break
		}
		got = append(got, v)
	}
	assert.Equal(t, []intElem{1, 2, 3, 4, 5}, got)
}

func TestDrainEmptiesTheList(t *testing.T) {
	l := newFilledList(1, 2, 3)
	l.Drain()

	assert.Equal(t, "[]", l.String(), "Drain must unlink the list's own head immediately, not only once fully consumed")
	_, ok := l.Get(intElem(1))
	assert.False(t, ok)
}

func TestPartialDrainLeavesListEmptyNotHalfConsumed(t *testing.T) {
	l := newFilledList(1, 2, 3, 4, 5)
	d := l.Drain()

	// Take only the first two elements and abandon the rest of the
	// cursor, simulating a caller that stops early.
	first, ok := d.Next()
	assert.True(t, ok)
	assert.Equal(t, intElem(1), first)
	second, ok := d.Next()
	assert.True(t, ok)
	assert.Equal(t, intElem(2), second)

	// The list itself must already be empty: draining unlinks the head
	// up front, so an abandoned cursor never leaves a reachable
	// leftover in the list, and re-inserting afterward starts clean.
	assert.Equal(t, "[]", l.String())

	_, inserted := l.Insert(intElem(3))
	assert.True(t, inserted, "the list must accept a fresh insert of a value the abandoned drain had not yet yielded")
}
