package ordered

import "github.com/npillmayer/ordered/rbtree"

// Set algebra on storages. Both operands must be ordered by the same policy.
// The operands are left untouched; the result is a fresh storage with the
// configuration of a. See package rbtree for the treatment of duplicates.

// MeldUnique returns the union of a and b, each key present once.
func MeldUnique[K, V any](a, b *Storage[K, V]) *Storage[K, V] {
	return meld("MeldUnique", a, b, rbtree.MeldUnique[K, V])
}

// MeldMulti returns all elements of a and b. a must be a multi storage.
func MeldMulti[K, V any](a, b *Storage[K, V]) *Storage[K, V] {
	if !a.IsMulti() {
		fail("MeldMulti", ErrNotAllowed)
	}
	return meld("MeldMulti", a, b, rbtree.MeldMulti[K, V])
}

// Intersection returns the elements of a with keys occurring in b.
func Intersection[K, V any](a, b *Storage[K, V]) *Storage[K, V] {
	return meld("Intersection", a, b, rbtree.Intersection[K, V])
}

// Difference returns the elements of a with keys not occurring in b.
func Difference[K, V any](a, b *Storage[K, V]) *Storage[K, V] {
	return meld("Difference", a, b, rbtree.Difference[K, V])
}

// SymmetricDifference returns the elements with keys occurring in exactly
// one of a and b.
func SymmetricDifference[K, V any](a, b *Storage[K, V]) *Storage[K, V] {
	return meld("SymmetricDifference", a, b, rbtree.SymmetricDifference[K, V])
}

func meld[K, V any](op string, a, b *Storage[K, V],
	combine func(x, y *rbtree.Tree[K, V]) *rbtree.Tree[K, V]) *Storage[K, V] {
	//
	r := &Storage[K, V]{}
	r.attach(newBuffer(combine(a.view(op), b.view(op))))
	return r
}
