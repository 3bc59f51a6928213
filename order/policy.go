/*
Package order defines ordering policies for ordered containers.

A Policy reports strict less-than on keys and whether a container admits
duplicate keys. Trees consult the policy for every descent; they never
compare keys by other means.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package order

import "cmp"

// Policy is the ordering contract of a container.
//
// Less must be a strict weak ordering. Two keys a, b are considered equal if
// neither Less(a, b) nor Less(b, a) holds.
type Policy[K any] interface {
	Less(a, b K) bool
	// Multi reports whether equal keys may be stored more than once.
	Multi() bool
}

// Natural orders keys by Go's built-in ordering and admits unique keys only.
type Natural[K cmp.Ordered] struct{}

func (Natural[K]) Less(a, b K) bool { return cmp.Less(a, b) }
func (Natural[K]) Multi() bool      { return false }

// NaturalMulti orders keys by Go's built-in ordering and admits duplicates.
type NaturalMulti[K cmp.Ordered] struct{}

func (NaturalMulti[K]) Less(a, b K) bool { return cmp.Less(a, b) }
func (NaturalMulti[K]) Multi() bool      { return true }

// Func is a policy built from a less-function.
type Func[K any] struct {
	less  func(a, b K) bool
	multi bool
}

// ByFunc creates a policy from a less-function. less must not be nil.
func ByFunc[K any](less func(a, b K) bool, multi bool) Func[K] {
	if less == nil {
		panic("order: less-function is nil")
	}
	return Func[K]{less: less, multi: multi}
}

// ByCompare creates a policy from a three-way comparison as used by
// slices.SortFunc and friends.
func ByCompare[K any](compare func(a, b K) int, multi bool) Func[K] {
	if compare == nil {
		panic("order: compare-function is nil")
	}
	return Func[K]{less: func(a, b K) bool { return compare(a, b) < 0 }, multi: multi}
}

func (f Func[K]) Less(a, b K) bool { return f.less(a, b) }
func (f Func[K]) Multi() bool      { return f.multi }

// Equal reports whether a and b are equivalent under p.
func Equal[K any](p Policy[K], a, b K) bool {
	return !p.Less(a, b) && !p.Less(b, a)
}

// Compare derives a three-way comparison from p.
func Compare[K any](p Policy[K], a, b K) int {
	switch {
	case p.Less(a, b):
		return -1
	case p.Less(b, a):
		return 1
	}
	return 0
}

// Reverse inverts the key order of p, keeping its multiplicity.
func Reverse[K any](p Policy[K]) Policy[K] {
	return reversed[K]{p}
}

type reversed[K any] struct {
	p Policy[K]
}

func (r reversed[K]) Less(a, b K) bool { return r.p.Less(b, a) }
func (r reversed[K]) Multi() bool      { return r.p.Multi() }
