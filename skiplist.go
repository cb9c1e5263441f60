package skiplist

import (
	"fmt"
	"strings"
	"sync/atomic"
)

// List is a concurrent ordered container: a lock-free skip list that
// readers and writers may use in parallel with no external locking.
// Set and Map are thin adapters over List; List itself is the engine.
//
// The zero value is an empty list ready to use; New returns a pointer
// to one.
type List[T Comparable[T]] struct {
	// height is the tallest live node's height, used only to trim the
	// top of the search from the full MaxHeight down to the levels
	// that could possibly hold a node. It is a pure speedup: every
	// lane above a list that has never held a node that tall is nil
	// anyway, so skipping those levels changes nothing but the number
	// of nil checks performed.
	height atomic.Uint32
	lanes  [MaxHeight]atomic.Pointer[node[T]]
}

// New returns an empty list.
func New[T Comparable[T]]() *List[T] {
	return &List[T]{}
}

// top returns the highest level worth starting a search at, or -1 if
// nothing has been inserted since the list was created or last drained.
func (l *List[T]) top() int {
	h := l.height.Load()
	if h == 0 {
		return -1
	}
	return int(h) - 1
}

// headNext returns the list's own forward pointer at level, standing
// in for a predecessor node that has no element of its own.
func (l *List[T]) headNext(level int) *node[T] {
	return l.lanes[level].Load()
}

func (l *List[T]) casHeadNext(level int, old, new *node[T]) bool {
	return l.lanes[level].CompareAndSwap(old, new)
}

// nextAt returns the successor of pred at level; pred == nil means
// "the list head".
func nextAt[T Comparable[T]](l *List[T], pred *node[T], level int) *node[T] {
	if pred == nil {
		return l.headNext(level)
	}
	return pred.next(level)
}

func casAt[T Comparable[T]](l *List[T], pred *node[T], level int, old, new *node[T]) bool {
	if pred == nil {
		return l.casHeadNext(level, old, new)
	}
	return pred.casNext(level, old, new)
}

// scanLevel walks forward along level, starting just after pred (nil
// meaning the list head), until it passes the point where q belongs.
// It returns the predecessor immediately before that point, the first
// successor whose element is >= q (nil at the end of the lane), and
// whether that successor compares equal to q.
func scanLevel[T Comparable[T], Q Comparable[T]](l *List[T], pred *node[T], level int, q Q) (*node[T], *node[T], bool) {
	for {
		next := nextAt(l, pred, level)
		if next == nil {
			return pred, nil, false
		}
		switch c := q.CompareTo(next.elem); {
		case c == 0:
			return pred, next, true
		case c < 0:
			return pred, next, false
		default:
			pred = next
		}
	}
}

// Get returns the element equal to elem under elem's own order, if any.
func (l *List[T]) Get(elem T) (T, bool) {
	return Get[T, T](l, elem)
}

// Get looks up an element via any query view Q that can compare
// itself against T, without requiring a full T to be constructed (for
// example, Map looks up by a bare key without allocating a
// key-value pair). It is a package-level function, not a method,
// because a Go method cannot introduce a type parameter beyond those
// already bound to its receiver.
func Get[T Comparable[T], Q Comparable[T]](l *List[T], q Q) (T, bool) {
	var zero T
	var pred *node[T]
	for level := l.top(); level >= 0; level-- {
		var succ *node[T]
		var found bool
		pred, succ, found = scanLevel[T, Q](l, pred, level, q)
		if found {
			return succ.elem, true
		}
	}
	return zero, false
}

type spot[T any] struct {
	pred *node[T]
	succ *node[T]
}

// Insert adds elem to the list if no equal element is already present.
// On success it returns elem itself (the engine never copies or
// mutates an element after it is linked) and true. If an equal
// element is already present, it returns the caller's own elem
// unchanged and false.
func (l *List[T]) Insert(elem T) (T, bool) {
	var spots [MaxHeight]spot[T]

	var newN *node[T]
	inserted := 0
	highestInsert := -1

retry:
	for {
		top := l.top()
		if highestInsert >= 0 && highestInsert-1 < top {
			top = highestInsert - 1
		}

		var pred *node[T]
		var collided *node[T]
		for level := top; level >= inserted; level-- {
			var succ *node[T]
			var found bool
			pred, succ, found = scanLevel[T, T](l, pred, level, elem)
			if found {
				collided = succ
				break
			}
			spots[level] = spot[T]{pred: pred, succ: succ}
		}

		if collided != nil {
			// Splicing links the bottom level first, so any node that
			// could ever compare equal to elem is visible by level 0.
			// This scan always reaches level 0 on its very first pass
			// (inserted == 0), before this call could have linked a
			// node of its own - so a collision here is always a
			// genuinely distinct, pre-existing entry.
			return elem, false
		}

		if newN == nil {
			height := randomHeight()
			fetchMaxHeight(&l.height, uint32(height))
			newN = newNode(elem, height)
			highestInsert = int(height)

			// Levels above the top read at the start of this pass have
			// no predecessor recorded above, so each is scanned here
			// starting from the list head.
			for lvl := top + 1; lvl < highestInsert; lvl++ {
				pred, succ, _ := scanLevel[T, T](l, nil, lvl, elem)
				spots[lvl] = spot[T]{pred: pred, succ: succ}
			}
		}

		for ; inserted < highestInsert; inserted++ {
			s := spots[inserted]
			newN.lanes[inserted].Store(s.succ)
			if !casAt(l, s.pred, inserted, s.succ, newN) {
				continue retry
			}
		}

		return newN.elem, true
	}
}

// fetchMaxHeight raises v to val if val is larger, using a
// compare-and-swap retry loop since atomic.Uint32 has no native
// fetch-max.
func fetchMaxHeight(v *atomic.Uint32, val uint32) {
	for {
		old := v.Load()
		if old >= val {
			return
		}
		if v.CompareAndSwap(old, val) {
			return
		}
	}
}

// String renders the list's elements in ascending order, Go
// slice-literal shape, e.g. "[1 2 3]".
func (l *List[T]) String() string {
	var b strings.Builder
	b.WriteByte('[')
	e := l.Elems()
	first := true
	for {
		v, ok := e.Next()
		if !ok {
			break
		}
		if !first {
			b.WriteByte(' ')
		}
		first = false
		fmt.Fprintf(&b, "%v", v)
	}
	b.WriteByte(']')
	return b.String()
}
