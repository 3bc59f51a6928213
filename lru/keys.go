package lru

import (
	"cmp"
	"fmt"

	"github.com/npillmayer/ordered/order"
)

// Key2 is a cache key made of two components.
type Key2[A, B cmp.Ordered] struct {
	First  A
	Second B
}

// Key3 is a cache key made of three components.
type Key3[A, B, C cmp.Ordered] struct {
	First  A
	Second B
	Third  C
}

// K2 builds a Key2.
func K2[A, B cmp.Ordered](a A, b B) Key2[A, B] { return Key2[A, B]{a, b} }

// K3 builds a Key3.
func K3[A, B, C cmp.Ordered](a A, b B, c C) Key3[A, B, C] { return Key3[A, B, C]{a, b, c} }

func (k Key2[A, B]) String() string    { return fmt.Sprintf("(%v, %v)", k.First, k.Second) }
func (k Key3[A, B, C]) String() string { return fmt.Sprintf("(%v, %v, %v)", k.First, k.Second, k.Third) }

// Compare orders keys lexicographically.
func (k Key2[A, B]) Compare(o Key2[A, B]) int {
	return cmp.Or(cmp.Compare(k.First, o.First), cmp.Compare(k.Second, o.Second))
}

// Compare orders keys lexicographically.
func (k Key3[A, B, C]) Compare(o Key3[A, B, C]) int {
	return cmp.Or(cmp.Compare(k.First, o.First), cmp.Compare(k.Second, o.Second), cmp.Compare(k.Third, o.Third))
}

// Memoize2 creates a cache for a function of two arguments and returns the
// memoized function together with the cache.
func Memoize2[A, B cmp.Ordered, V any](capacity int, f func(A, B) V) (func(A, B) V, *Cache[Key2[A, B], V], error) {
	p := order.ByCompare(Key2[A, B].Compare, false)
	c, err := New[Key2[A, B], V](p, Config{Capacity: capacity})
	if err != nil {
		return nil, nil, err
	}
	g := func(a A, b B) V {
		return c.Memoize(K2(a, b), func(k Key2[A, B]) V { return f(k.First, k.Second) })
	}
	return g, c, nil
}

// Memoize3 creates a cache for a function of three arguments and returns
// the memoized function together with the cache.
func Memoize3[A, B, C cmp.Ordered, V any](capacity int, f func(A, B, C) V) (func(A, B, C) V, *Cache[Key3[A, B, C], V], error) {
	p := order.ByCompare(Key3[A, B, C].Compare, false)
	c, err := New[Key3[A, B, C], V](p, Config{Capacity: capacity})
	if err != nil {
		return nil, nil, err
	}
	g := func(a A, b B, cc C) V {
		return c.Memoize(K3(a, b, cc), func(k Key3[A, B, C]) V { return f(k.First, k.Second, k.Third) })
	}
	return g, c, nil
}
