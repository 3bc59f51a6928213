package rbtree

// InsertAt links a new node for (key, value) as the side-child of parent and
// rebalances the tree. The child link must be empty, and the position must
// respect the tree order; FindEqual computes such a position. parent is End
// for the first element, with side Left.
//
// InsertAt returns the slot of the new node.
func (t *Tree[K, V]) InsertAt(parent Slot, side Side, key K, value V) Slot {
	z := t.nodes.Allocate()
	zn := t.n(z)
	zn.Payload = entry[K, V]{key: key, value: value}
	zn.Parent = parent
	pn := t.n(parent)
	if side == Left {
		assert(pn.Left == Null, "rbtree: insert into occupied left link")
		pn.Left = z
	} else {
		assert(parent != t.end, "rbtree: insert right of end")
		assert(pn.Right == Null, "rbtree: insert into occupied right link")
		pn.Right = z
	}
	if l := t.n(t.begin).Left; l != Null {
		t.begin = l
	}
	t.balanceAfterInsert(z)
	t.count++
	return z
}

// InsertUnique inserts (key, value) if no element with an equal key exists.
// It returns the slot of the new element, or the slot of the existing one
// and false.
func (t *Tree[K, V]) InsertUnique(key K, value V) (Slot, bool) {
	parent, side, found := t.FindEqual(key)
	if found != Null {
		return found, false
	}
	return t.InsertAt(parent, side, key, value), true
}

// InsertMulti inserts (key, value) behind all elements with an equal key.
// On a unique tree it behaves like InsertUnique and returns the existing
// element for a duplicate key.
func (t *Tree[K, V]) InsertMulti(key K, value V) Slot {
	parent, side, found := t.FindEqual(key)
	if found != Null {
		return found
	}
	return t.InsertAt(parent, side, key, value)
}

// appendBack links (key, value) as the new maximum. last is the current
// maximum, or End for an empty tree. The caller guarantees that key does not
// sort before last's key.
func (t *Tree[K, V]) appendBack(last Slot, key K, value V) Slot {
	if last == t.end {
		return t.InsertAt(t.end, Left, key, value)
	}
	return t.InsertAt(last, Right, key, value)
}

// balanceAfterInsert restores the red-black properties after x has been
// linked as a red leaf.
func (t *Tree[K, V]) balanceAfterInsert(x Slot) {
	root := t.Root()
	t.setBlack(x, x == root)
	for x != root && !t.isBlack(t.n(x).Parent) {
		p := t.n(x).Parent
		g := t.n(p).Parent
		if t.isLeftChild(p) {
			y := t.n(g).Right // uncle
			if !t.isBlack(y) {
				t.setBlack(p, true)
				t.setBlack(g, g == root)
				t.setBlack(y, true)
				x = g
				continue
			}
			if !t.isLeftChild(x) {
				x = p
				t.rotateLeft(x)
				p = t.n(x).Parent
			}
			t.setBlack(p, true)
			t.setBlack(g, false)
			t.rotateRight(g)
			return
		}
		y := t.n(g).Left
		if !t.isBlack(y) {
			t.setBlack(p, true)
			t.setBlack(g, g == root)
			t.setBlack(y, true)
			x = g
			continue
		}
		if t.isLeftChild(x) {
			x = p
			t.rotateRight(x)
			p = t.n(x).Parent
		}
		t.setBlack(p, true)
		t.setBlack(g, false)
		t.rotateLeft(g)
		return
	}
}
