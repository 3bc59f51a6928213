package rbtree

import "github.com/npillmayer/ordered/arena"

func (t *Tree[K, V]) setBlack(s Slot, black bool) {
	if black {
		t.n(s).Color = arena.Black
	} else {
		t.n(s).Color = arena.Red
	}
}

// rotateLeft lifts x's right child into x's place.
//
//	  x              y
//	 / \            / \
//	a   y    =>    x   c
//	   / \        / \
//	  b   c      a   b
func (t *Tree[K, V]) rotateLeft(x Slot) {
	xn := t.n(x)
	y := xn.Right
	yn := t.n(y)
	xn.Right = yn.Left
	if xn.Right != Null {
		t.n(xn.Right).Parent = x
	}
	yn.Parent = xn.Parent
	if t.isLeftChild(x) {
		t.n(xn.Parent).Left = y
	} else {
		t.n(xn.Parent).Right = y
	}
	yn.Left = x
	xn.Parent = y
}

// rotateRight lifts x's left child into x's place.
func (t *Tree[K, V]) rotateRight(x Slot) {
	xn := t.n(x)
	y := xn.Left
	yn := t.n(y)
	xn.Left = yn.Right
	if xn.Left != Null {
		t.n(xn.Left).Parent = x
	}
	yn.Parent = xn.Parent
	if t.isLeftChild(x) {
		t.n(xn.Parent).Left = y
	} else {
		t.n(xn.Parent).Right = y
	}
	yn.Right = x
	xn.Parent = y
}
