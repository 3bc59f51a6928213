package rbtree

import (
	"fmt"

	"github.com/npillmayer/ordered/arena"
)

func (t *Tree[K, V]) isLeftChild(s Slot) bool {
	return t.n(t.n(s).Parent).Left == s
}

func (t *Tree[K, V]) isBlack(s Slot) bool {
	return s == Null || t.n(s).Color == arena.Black
}

// subtreeMin returns the leftmost node of the subtree rooted at s.
func (t *Tree[K, V]) subtreeMin(s Slot) Slot {
	for t.n(s).Left != Null {
		s = t.n(s).Left
	}
	return s
}

// subtreeMax returns the rightmost node of the subtree rooted at s.
func (t *Tree[K, V]) subtreeMax(s Slot) Slot {
	for t.n(s).Right != Null {
		s = t.n(s).Right
	}
	return s
}

// Min returns the minimum element slot, or End for an empty tree.
func (t *Tree[K, V]) Min() Slot {
	return t.begin
}

// Max returns the maximum element slot, or End for an empty tree.
func (t *Tree[K, V]) Max() Slot {
	if t.count == 0 {
		return t.end
	}
	return t.subtreeMax(t.Root())
}

// Next returns the in-order successor of s. The successor of the maximum is
// End. Calling Next on End panics.
func (t *Tree[K, V]) Next(s Slot) Slot {
	assert(s != t.end, "rbtree: successor of end")
	if r := t.n(s).Right; r != Null {
		return t.subtreeMin(r)
	}
	for !t.isLeftChild(s) {
		s = t.n(s).Parent
	}
	return t.n(s).Parent
}

// Prev returns the in-order predecessor of s. The predecessor of End is the
// maximum. Calling Prev on Begin panics.
func (t *Tree[K, V]) Prev(s Slot) Slot {
	assert(s != t.begin, "rbtree: predecessor of begin")
	if l := t.n(s).Left; l != Null {
		return t.subtreeMax(l)
	}
	for t.isLeftChild(s) {
		s = t.n(s).Parent
	}
	return t.n(s).Parent
}

// Advance walks |n| steps from s, forward for positive n and backward for
// negative n. Walking past End or before Begin is reported as an error and
// leaves no trace.
func (t *Tree[K, V]) Advance(s Slot, n int) (Slot, error) {
	for ; n > 0; n-- {
		if s == t.end {
			return Null, fmt.Errorf("%w: %d step(s) left", ErrBeyondEnd, n)
		}
		s = t.Next(s)
	}
	for ; n < 0; n++ {
		if s == t.begin {
			return Null, fmt.Errorf("%w: %d step(s) left", ErrBeforeBegin, -n)
		}
		s = t.Prev(s)
	}
	return s, nil
}

// Distance returns the signed number of elements between a and b, i.e.
// the n for which Advance(a, n) == b.
//
// Direction is determined first by comparing positions, then the shorter
// walk is taken in that direction.
func (t *Tree[K, V]) Distance(a, b Slot) int {
	if a == b {
		return 0
	}
	if t.NodeLess(a, b) {
		return t.walk(a, b)
	}
	return -t.walk(b, a)
}

// walk counts successor steps from a to b, where a precedes b.
func (t *Tree[K, V]) walk(a, b Slot) int {
	d := 0
	for a != b {
		a = t.Next(a)
		d++
	}
	return d
}

// depth returns the number of links between s and the sentinel.
func (t *Tree[K, V]) depth(s Slot) int {
	d := 0
	for s != t.end {
		s = t.n(s).Parent
		d++
	}
	return d
}
