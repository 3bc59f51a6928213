package rbtree

// Clone returns a deep copy of t in a fresh arena.
//
// The copy has the same shape, colors and contents as t, but slots are
// assigned anew: positions in t do not denote the same elements in the clone.
func (t *Tree[K, V]) Clone() *Tree[K, V] {
	c, _ := t.CloneTracking()
	return c
}

// CloneTracking is Clone, additionally translating the positions in track
// into the corresponding positions of the copy.
func (t *Tree[K, V]) CloneTracking(track ...Slot) (*Tree[K, V], []Slot) {
	c := t.emptyLike(t.count)
	mapped := make([]Slot, len(track))
	for i, s := range track {
		if s == t.end {
			mapped[i] = c.end
		}
	}
	if t.count == 0 {
		return c, mapped
	}
	type pair struct{ src, dst Slot }
	follow := func(src, dst Slot) {
		for i, s := range track {
			if s == src {
				mapped[i] = dst
			}
		}
	}
	root := c.nodes.Allocate()
	c.copyNode(t, t.Root(), root, c.end)
	c.n(c.end).Left = root
	follow(t.Root(), root)
	stack := []pair{{t.Root(), root}}
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		sn := t.n(p.src)
		if sn.Left != Null {
			l := c.nodes.Allocate()
			c.copyNode(t, sn.Left, l, p.dst)
			c.n(p.dst).Left = l
			follow(sn.Left, l)
			stack = append(stack, pair{sn.Left, l})
		}
		if sn.Right != Null {
			r := c.nodes.Allocate()
			c.copyNode(t, sn.Right, r, p.dst)
			c.n(p.dst).Right = r
			follow(sn.Right, r)
			stack = append(stack, pair{sn.Right, r})
		}
	}
	c.count = t.count
	c.begin = c.subtreeMin(root)
	tracer().Debugf("rbtree: cloned %d elements into %d buckets", c.count, c.nodes.Buckets())
	return c, mapped
}

// copyNode copies color and payload of src's node s into d, linked below parent.
func (t *Tree[K, V]) copyNode(src *Tree[K, V], s, d, parent Slot) {
	dn := t.n(d)
	dn.Payload = src.n(s).Payload
	dn.Color = src.n(s).Color
	dn.Parent = parent
}
