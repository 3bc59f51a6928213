package rbtree

// Set algebra over two trees ordered by the same policy.
//
// Every operation runs a single synchronized forward scan over both inputs
// and appends to a fresh result tree, which has a's configuration. Inputs are
// not modified. When an element is taken from both inputs, the one from a
// wins. Operations follow multiset semantics: a key occurring m times in a and
// n times in b occurs min(m,n) times in the intersection, max(m-n,0) times in
// the difference and |m-n| times in the symmetric difference.

// MeldUnique returns the union of a and b with each key present once.
func MeldUnique[K, V any](a, b *Tree[K, V]) *Tree[K, V] {
	r := a.emptyLike(a.count + b.count)
	less := a.policy.Less
	last := r.end
	add := func(t *Tree[K, V], s Slot) {
		k := t.n(s).Payload.key
		if last != r.end && !less(r.n(last).Payload.key, k) {
			return
		}
		last = r.appendBack(last, k, t.n(s).Payload.value)
	}
	i, j := a.begin, b.begin
	for i != a.end && j != b.end {
		if less(b.Key(j), a.Key(i)) {
			add(b, j)
			j = b.Next(j)
		} else {
			add(a, i)
			i = a.Next(i)
		}
	}
	for ; i != a.end; i = a.Next(i) {
		add(a, i)
	}
	for ; j != b.end; j = b.Next(j) {
		add(b, j)
	}
	return r
}

// MeldMulti returns all elements of a and b. Equal keys from a precede those
// from b. a must be a multi tree.
func MeldMulti[K, V any](a, b *Tree[K, V]) *Tree[K, V] {
	assert(a.multi, "rbtree: multi meld into unique tree")
	r := a.emptyLike(a.count + b.count)
	less := a.policy.Less
	last := r.end
	i, j := a.begin, b.begin
	for i != a.end && j != b.end {
		if less(b.Key(j), a.Key(i)) {
			last = r.appendBack(last, b.Key(j), b.Value(j))
			j = b.Next(j)
		} else {
			last = r.appendBack(last, a.Key(i), a.Value(i))
			i = a.Next(i)
		}
	}
	last = r.appendRest(last, a, i)
	r.appendRest(last, b, j)
	return r
}

// Intersection returns the elements of a whose keys also occur in b.
func Intersection[K, V any](a, b *Tree[K, V]) *Tree[K, V] {
	r := a.emptyLike(min(a.count, b.count))
	less := a.policy.Less
	last := r.end
	i, j := a.begin, b.begin
	for i != a.end && j != b.end {
		switch {
		case less(a.Key(i), b.Key(j)):
			i = a.Next(i)
		case less(b.Key(j), a.Key(i)):
			j = b.Next(j)
		default:
			last = r.appendBack(last, a.Key(i), a.Value(i))
			i, j = a.Next(i), b.Next(j)
		}
	}
	return r
}

// Difference returns the elements of a whose keys do not occur in b.
func Difference[K, V any](a, b *Tree[K, V]) *Tree[K, V] {
	r := a.emptyLike(a.count)
	less := a.policy.Less
	last := r.end
	i, j := a.begin, b.begin
	for i != a.end && j != b.end {
		switch {
		case less(a.Key(i), b.Key(j)):
			last = r.appendBack(last, a.Key(i), a.Value(i))
			i = a.Next(i)
		case less(b.Key(j), a.Key(i)):
			j = b.Next(j)
		default:
			i, j = a.Next(i), b.Next(j)
		}
	}
	r.appendRest(last, a, i)
	return r
}

// SymmetricDifference returns the elements whose keys occur in exactly one
// of a and b.
func SymmetricDifference[K, V any](a, b *Tree[K, V]) *Tree[K, V] {
	r := a.emptyLike(a.count + b.count)
	less := a.policy.Less
	last := r.end
	i, j := a.begin, b.begin
	for i != a.end && j != b.end {
		switch {
		case less(a.Key(i), b.Key(j)):
			last = r.appendBack(last, a.Key(i), a.Value(i))
			i = a.Next(i)
		case less(b.Key(j), a.Key(i)):
			last = r.appendBack(last, b.Key(j), b.Value(j))
			j = b.Next(j)
		default:
			i, j = a.Next(i), b.Next(j)
		}
	}
	last = r.appendRest(last, a, i)
	r.appendRest(last, b, j)
	return r
}

// appendRest appends src's elements from s to src's end.
func (t *Tree[K, V]) appendRest(last Slot, src *Tree[K, V], s Slot) Slot {
	for ; s != src.end; s = src.Next(s) {
		p := &src.n(s).Payload
		last = t.appendBack(last, p.key, p.value)
	}
	return last
}

// emptyLike creates an empty tree with t's configuration, reserving room for
// capacity elements.
func (t *Tree[K, V]) emptyLike(capacity int) *Tree[K, V] {
	cfg := t.cfg
	cfg.CapacityHint = max(capacity, 1)
	r, err := New[K, V](cfg)
	assert(err == nil, "rbtree: configuration of existing tree rejected")
	return r
}
