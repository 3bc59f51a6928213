package rbtree

// Erase unlinks the element at z, recycles its slot and returns the slot of
// its successor. Erasing End is a programmer error and panics.
//
// Other elements keep their slots; positions of elements other than z stay
// valid.
func (t *Tree[K, V]) Erase(z Slot) Slot {
	assert(z != t.end, "rbtree: erase of end sentinel")
	assert(t.nodes.IsLive(z), "rbtree: erase of a node which is not live")
	next := t.Next(z)
	if t.begin == z {
		t.begin = next
	}
	t.removeNode(z)
	t.count--
	t.nodes.Recycle(z)
	return next
}

// EraseRange erases the elements of the half-open range [lo, hi) and returns
// their number. hi must be reachable from lo by successor steps.
func (t *Tree[K, V]) EraseRange(lo, hi Slot) int {
	n := 0
	for lo != hi {
		lo = t.Erase(lo)
		n++
	}
	return n
}

// removeNode unlinks z from the tree and rebalances. If z has two children,
// its successor y is spliced into z's place, taking over z's links and color.
func (t *Tree[K, V]) removeNode(z Slot) {
	root := t.Root()
	// y is the node to splice out, x is y's only child (possibly Null),
	// w is x's sibling after the splice.
	y := z
	if t.n(z).Left != Null && t.n(z).Right != Null {
		y = t.subtreeMin(t.n(z).Right)
	}
	yn := t.n(y)
	x := yn.Left
	if x == Null {
		x = yn.Right
	}
	w := Null
	if x != Null {
		t.n(x).Parent = yn.Parent
	}
	if t.isLeftChild(y) {
		t.n(yn.Parent).Left = x
		if y != root {
			w = t.n(yn.Parent).Right
		} else {
			root = x
		}
	} else {
		t.n(yn.Parent).Right = x
		w = t.n(yn.Parent).Left
	}
	removedBlack := t.isBlack(y)
	if y != z {
		zn := t.n(z)
		yn.Parent = zn.Parent
		if t.isLeftChild(z) {
			t.n(yn.Parent).Left = y
		} else {
			t.n(yn.Parent).Right = y
		}
		yn.Left = zn.Left
		t.n(yn.Left).Parent = y
		yn.Right = zn.Right
		if yn.Right != Null {
			t.n(yn.Right).Parent = y
		}
		yn.Color = zn.Color
		if root == z {
			root = y
		}
	}
	if !removedBlack || root == Null {
		return
	}
	if x != Null {
		t.setBlack(x, true)
		return
	}
	t.balanceAfterRemove(root, w)
}

// balanceAfterRemove fixes a black-height deficit on the side opposite of w,
// where w is the sibling of the (empty) link which lost a black node.
func (t *Tree[K, V]) balanceAfterRemove(root, w Slot) {
	for {
		if !t.isLeftChild(w) { // w is a right child
			if !t.isBlack(w) {
				t.setBlack(w, true)
				t.setBlack(t.n(w).Parent, false)
				t.rotateLeft(t.n(w).Parent)
				if root == t.n(w).Left {
					root = w
				}
				w = t.n(t.n(w).Left).Right
			}
			wn := t.n(w)
			if t.isBlack(wn.Left) && t.isBlack(wn.Right) {
				t.setBlack(w, false)
				x := wn.Parent
				if x == root || !t.isBlack(x) {
					t.setBlack(x, true)
					return
				}
				w = t.sibling(x)
				continue
			}
			if t.isBlack(wn.Right) {
				t.setBlack(wn.Left, true)
				t.setBlack(w, false)
				t.rotateRight(w)
				w = t.n(w).Parent
				wn = t.n(w)
			}
			t.n(w).Color = t.n(wn.Parent).Color
			t.setBlack(wn.Parent, true)
			t.setBlack(wn.Right, true)
			t.rotateLeft(wn.Parent)
			return
		}
		if !t.isBlack(w) {
			t.setBlack(w, true)
			t.setBlack(t.n(w).Parent, false)
			t.rotateRight(t.n(w).Parent)
			if root == t.n(w).Right {
				root = w
			}
			w = t.n(t.n(w).Right).Left
		}
		wn := t.n(w)
		if t.isBlack(wn.Left) && t.isBlack(wn.Right) {
			t.setBlack(w, false)
			x := wn.Parent
			if !t.isBlack(x) || x == root {
				t.setBlack(x, true)
				return
			}
			w = t.sibling(x)
			continue
		}
		if t.isBlack(wn.Left) {
			t.setBlack(wn.Right, true)
			t.setBlack(w, false)
			t.rotateLeft(w)
			w = t.n(w).Parent
			wn = t.n(w)
		}
		t.n(w).Color = t.n(wn.Parent).Color
		t.setBlack(wn.Parent, true)
		t.setBlack(wn.Left, true)
		t.rotateRight(wn.Parent)
		return
	}
}

func (t *Tree[K, V]) sibling(x Slot) Slot {
	p := t.n(x).Parent
	if t.isLeftChild(x) {
		return t.n(p).Right
	}
	return t.n(p).Left
}
