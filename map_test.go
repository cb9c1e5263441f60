package skiplist

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMapInsertAndGet(t *testing.T) {
	m := NewMap[intElem, string]()

	v, inserted := m.Insert(1, "one")
	assert.True(t, inserted)
	assert.Equal(t, "one", v)

	got, ok := m.Get(1)
	assert.True(t, ok)
	assert.Equal(t, "one", got)
}

func TestMapInsertDuplicateKeyKeepsOriginalValue(t *testing.T) {
	m := NewMap[intElem, string]()
	m.Insert(1, "one")

	existing, inserted := m.Insert(1, "uno")
	assert.False(t, inserted)
	assert.Equal(t, "one", existing, "a colliding Insert must return the value already stored, not the rejected one")

	got, _ := m.Get(1)
	assert.Equal(t, "one", got)
}

func TestMapGetMissing(t *testing.T) {
	m := NewMap[intElem, string]()
	_, ok := m.Get(1)
	assert.False(t, ok)
}

func TestMapGetKeyValue(t *testing.T) {
	m := NewMap[intElem, string]()
	m.Insert(7, "seven")

	k, v, ok := m.GetKeyValue(7)
	assert.True(t, ok)
	assert.Equal(t, intElem(7), k)
	assert.Equal(t, "seven", v)
}

func TestMapContains(t *testing.T) {
	m := NewMap[intElem, string]()
	m.Insert(3, "three")
	assert.True(t, m.Contains(3))
	assert.False(t, m.Contains(4))
}

func TestMapIterAscendingKeyOrder(t *testing.T) {
	pairs := []struct {
		k intElem
		v string
	}{{3, "c"}, {1, "a"}, {2, "b"}}
	m := NewMap[intElem, string]()
	for _, p := range pairs {
		m.Insert(p.k, p.v)
	}

	it := m.Iter()
	var keys []intElem
	var values []string
	for {
		k, v, ok := it.Next()
		if !ok {
			break
		}
		keys = append(keys, k)
		values = append(values, v)
	}
	assert.Equal(t, []intElem{1, 2, 3}, keys)
	assert.Equal(t, []string{"a", "b", "c"}, values)
}

func TestMapKeysAndValues(t *testing.T) {
	m := NewMap[intElem, string]()
	m.Insert(2, "two")
	m.Insert(1, "one")

	var keys []intElem
	ki := m.Keys()
	for {
		k, ok := ki.Next()
		if !ok {
			break
		}
		keys = append(keys, k)
	}
	assert.Equal(t, []intElem{1, 2}, keys)

	var values []string
	vi := m.Values()
	for {
		v, ok := vi.Next()
		if !ok {
			break
		}
		values = append(values, v)
	}
	assert.Equal(t, []string{"one", "two"}, values)
}

func TestMapIterMutMutatesValuesOnly(t *testing.T) {
	m := NewMap[intElem, int]()
	m.Insert(1, 10)
	m.Insert(2, 20)

	it := m.IterMut()
	for {
		_, v, ok := it.Next()
		if !ok {
			break
		}
		*v = *v + 1
	}

	got1, _ := m.Get(1)
	got2, _ := m.Get(2)
	assert.Equal(t, 11, got1)
	assert.Equal(t, 21, got2)
}

func TestMapValuesMut(t *testing.T) {
	m := NewMap[intElem, int]()
	m.Insert(1, 1)
	m.Insert(2, 2)

	it := m.ValuesMut()
	for {
		v, ok := it.Next()
		if !ok {
			break
		}
		*v *= 10
	}

	got1, _ := m.Get(1)
	got2, _ := m.Get(2)
	assert.Equal(t, 10, got1)
	assert.Equal(t, 20, got2)
}
