package rbtree

// FindEqual descends to the position where key belongs.
//
// For unique trees the descent stops at the first node with an equal key,
// which is returned as found. Otherwise found is Null and (parent, side) name
// the empty child link where a node for key would be linked. For multi trees
// this link lies behind all nodes with an equal key.
// FindEqual has no side effects.
func (t *Tree[K, V]) FindEqual(key K) (parent Slot, side Side, found Slot) {
	parent, side = t.end, Left
	x := t.Root()
	for x != Null {
		parent = x
		k := t.n(x).Payload.key
		if t.policy.Less(key, k) {
			side, x = Left, t.n(x).Left
		} else if !t.multi && !t.policy.Less(k, key) {
			return parent, side, x
		} else {
			side, x = Right, t.n(x).Right
		}
	}
	return parent, side, Null
}

// LowerBound returns the first element with a key not less than key, or End.
func (t *Tree[K, V]) LowerBound(key K) Slot {
	result := t.end
	for x := t.Root(); x != Null; {
		if !t.policy.Less(t.n(x).Payload.key, key) {
			result, x = x, t.n(x).Left
		} else {
			x = t.n(x).Right
		}
	}
	return result
}

// UpperBound returns the first element with a key greater than key, or End.
func (t *Tree[K, V]) UpperBound(key K) Slot {
	result := t.end
	for x := t.Root(); x != Null; {
		if t.policy.Less(key, t.n(x).Payload.key) {
			result, x = x, t.n(x).Left
		} else {
			x = t.n(x).Right
		}
	}
	return result
}

// Find returns an element with a key equal to key, or End. For multi trees
// it returns the first of the equal elements.
func (t *Tree[K, V]) Find(key K) Slot {
	if !t.multi {
		if _, _, found := t.FindEqual(key); found != Null {
			return found
		}
		return t.end
	}
	lb := t.LowerBound(key)
	if lb != t.end && !t.policy.Less(key, t.n(lb).Payload.key) {
		return lb
	}
	return t.end
}

// Contains reports whether an element with a key equal to key exists.
func (t *Tree[K, V]) Contains(key K) bool {
	return t.Find(key) != t.end
}

// EqualRange returns the half-open range of elements with a key equal to key.
func (t *Tree[K, V]) EqualRange(key K) (lo, hi Slot) {
	if !t.multi {
		lo = t.Find(key)
		if lo == t.end {
			return lo, lo
		}
		return lo, t.Next(lo)
	}
	return t.LowerBound(key), t.UpperBound(key)
}

// Count returns the number of elements with a key equal to key.
func (t *Tree[K, V]) Count(key K) int {
	lo, hi := t.EqualRange(key)
	return t.walk(lo, hi)
}
