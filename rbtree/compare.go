package rbtree

// NodeLess reports whether the element at a precedes the element at b in tree
// order. End succeeds every element.
//
// Keys are compared first. Elements with equal keys (multi trees only) are
// ordered structurally by their position in the tree, which costs O(log n).
func (t *Tree[K, V]) NodeLess(a, b Slot) bool {
	if a == b || a == t.end {
		return false
	}
	if b == t.end {
		return true
	}
	ka, kb := t.Key(a), t.Key(b)
	if t.policy.Less(ka, kb) {
		return true
	}
	if t.policy.Less(kb, ka) || !t.multi {
		return false
	}
	return t.structuralLess(a, b)
}

// structuralLess compares two distinct nodes by in-order position, using
// their lowest common ancestor.
func (t *Tree[K, V]) structuralLess(a, b Slot) bool {
	da, db := t.depth(a), t.depth(b)
	x, y := a, b
	var cx, cy Slot = Null, Null // last child visited on each upward path
	for ; da > db; da-- {
		cx, x = x, t.n(x).Parent
	}
	for ; db > da; db-- {
		cy, y = y, t.n(y).Parent
	}
	for x != y {
		cx, x = x, t.n(x).Parent
		cy, y = y, t.n(y).Parent
	}
	if x == a { // b lives in a's subtree
		return t.n(x).Right == cy
	}
	return t.n(x).Left == cx
}
