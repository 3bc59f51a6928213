package ordered

import (
	"fmt"
	"iter"

	"github.com/npillmayer/ordered/rbtree"
)

type boundKind uint8

const (
	boundStart boundKind = iota
	boundEnd
	boundLower
	boundUpper
	boundFind
	boundIndex
	boundAdvanced
)

// Bound is a symbolic position in a storage. Bounds are values; they are
// resolved against a storage only when used.
type Bound[K any] struct {
	kind boundKind
	key  K
	at   Index
	base *Bound[K] // for boundAdvanced
	n    int
}

// Start denotes the first element, or End for an empty storage.
func Start[K any]() Bound[K] { return Bound[K]{kind: boundStart} }

// End denotes the position one past the last element.
func End[K any]() Bound[K] { return Bound[K]{kind: boundEnd} }

// Lower denotes the first element with a key not less than key.
func Lower[K any](key K) Bound[K] { return Bound[K]{kind: boundLower, key: key} }

// Upper denotes the first element with a key greater than key.
func Upper[K any](key K) Bound[K] { return Bound[K]{kind: boundUpper, key: key} }

// Find denotes the first element with a key equal to key, or End if there is
// none.
func Find[K any](key K) Bound[K] { return Bound[K]{kind: boundFind, key: key} }

// At denotes the position of an index.
func At[K any](i Index) Bound[K] { return Bound[K]{kind: boundIndex, at: i} }

// Advanced denotes the position n elements after b (before b for negative n).
func (b Bound[K]) Advanced(n int) Bound[K] {
	if b.kind == boundAdvanced {
		n += b.n
		b = *b.base
	}
	return Bound[K]{kind: boundAdvanced, base: &b, n: n}
}

// Before denotes the position preceding b.
func (b Bound[K]) Before() Bound[K] { return b.Advanced(-1) }

// After denotes the position following b.
func (b Bound[K]) After() Bound[K] { return b.Advanced(1) }

func (b Bound[K]) String() string {
	switch b.kind {
	case boundStart:
		return "start"
	case boundEnd:
		return "end"
	case boundLower:
		return fmt.Sprintf("lower(%v)", b.key)
	case boundUpper:
		return fmt.Sprintf("upper(%v)", b.key)
	case boundFind:
		return fmt.Sprintf("find(%v)", b.key)
	case boundIndex:
		return fmt.Sprintf("at%v", b.at)
	}
	return fmt.Sprintf("%v%+d", *b.base, b.n)
}

// Range is a pair of bounds denoting the half-open interval [lower, upper).
type Range[K any] struct {
	lower, upper Bound[K]
}

// HalfOpen is the range lo ..< hi.
func HalfOpen[K any](lo, hi Bound[K]) Range[K] { return Range[K]{lo, hi} }

// Closed is the range lo ... hi, which includes the element at hi.
func Closed[K any](lo, hi Bound[K]) Range[K] { return Range[K]{lo, hi.After()} }

// From is the range from lo to the end.
func From[K any](lo Bound[K]) Range[K] { return Range[K]{lo, End[K]()} }

// UpTo is the range from the start up to, but excluding, hi.
func UpTo[K any](hi Bound[K]) Range[K] { return Range[K]{Start[K](), hi} }

// Through is the range from the start up to and including hi.
func Through[K any](hi Bound[K]) Range[K] { return Range[K]{Start[K](), hi.After()} }

// EqualKeys is the range of elements with a key equal to key.
func EqualKeys[K any](key K) Range[K] { return Range[K]{Lower(key), Upper(key)} }

// Everything is the range of all elements.
func Everything[K any]() Range[K] { return Range[K]{Start[K](), End[K]()} }

// Lower returns the lower bound of r.
func (r Range[K]) Lower() Bound[K] { return r.lower }

// Upper returns the (exclusive) upper bound of r.
func (r Range[K]) Upper() Bound[K] { return r.upper }

func (r Range[K]) String() string {
	return fmt.Sprintf("%v ..< %v", r.lower, r.upper)
}

// resolveBound turns b into a slot of the current tree of s.
func (s *Storage[K, V]) resolveBound(b Bound[K]) (rbtree.Slot, error) {
	t := s.buf.tree
	switch b.kind {
	case boundStart:
		return t.Begin(), nil
	case boundEnd:
		return t.End(), nil
	case boundLower:
		return t.LowerBound(b.key), nil
	case boundUpper:
		return t.UpperBound(b.key), nil
	case boundFind:
		return t.Find(b.key), nil
	case boundIndex:
		return s.Resolve(b.at)
	}
	base, err := s.resolveBound(*b.base)
	if err != nil {
		return base, err
	}
	return s.advance(base, b.n)
}

// TryPosition resolves b to an index.
func (s *Storage[K, V]) TryPosition(b Bound[K]) (Index, error) {
	s.usable("Position")
	slot, err := s.resolveBound(b)
	if err != nil {
		return Index{}, err
	}
	return s.index(slot), nil
}

// Position resolves b to an index, panicking if b lies out of bounds.
func (s *Storage[K, V]) Position(b Bound[K]) Index {
	i, err := s.TryPosition(b)
	check("Position", err)
	return i
}

// TryRange resolves r into a pair of indices. It fails if a bound cannot be
// resolved or if the lower index comes after the upper one.
func (s *Storage[K, V]) TryRange(r Range[K]) (lo, hi Index, err error) {
	l, h, err := s.resolveRange(r)
	if err != nil {
		return Index{}, Index{}, err
	}
	return s.index(l), s.index(h), nil
}

// Range resolves r into a pair of indices, panicking if r is invalid.
func (s *Storage[K, V]) Range(r Range[K]) (lo, hi Index) {
	lo, hi, err := s.TryRange(r)
	check("Range", err)
	return lo, hi
}

// UncheckedRange resolves r without validating the order of its bounds.
// Bounds which cannot be resolved yield End.
func (s *Storage[K, V]) UncheckedRange(r Range[K]) (lo, hi Index) {
	end := s.view("Range").End()
	l, err := s.resolveBound(r.lower)
	if err != nil {
		l = end
	}
	h, err := s.resolveBound(r.upper)
	if err != nil {
		h = end
	}
	return s.index(l), s.index(h)
}

func (s *Storage[K, V]) resolveRange(r Range[K]) (rbtree.Slot, rbtree.Slot, error) {
	s.usable("Range")
	l, err := s.resolveBound(r.lower)
	if err != nil {
		return l, l, fmt.Errorf("lower bound %v: %w", r.lower, err)
	}
	h, err := s.resolveBound(r.upper)
	if err != nil {
		return h, h, fmt.Errorf("upper bound %v: %w", r.upper, err)
	}
	if err = s.validRange(l, h); err != nil {
		return l, h, fmt.Errorf("range %v: %w", r, err)
	}
	return l, h, nil
}

// CountIn returns the number of elements in r.
func (s *Storage[K, V]) CountIn(r Range[K]) int {
	l, h, err := s.resolveRange(r)
	check("CountIn", err)
	return s.buf.tree.Distance(l, h)
}

// EraseIn removes the elements in r and returns their number.
func (s *Storage[K, V]) EraseIn(r Range[K]) int {
	n, err := s.TryEraseIn(r)
	check("EraseIn", err)
	return n
}

// TryEraseIn is EraseIn, reporting an invalid range as an error.
func (s *Storage[K, V]) TryEraseIn(r Range[K]) (int, error) {
	l, h, err := s.resolveRange(r)
	if err != nil {
		return 0, err
	}
	return s.eraseSlots(l, h), nil
}

// Slice iterates over the key/value pairs in r. The range is resolved when
// the iteration starts.
func (s *Storage[K, V]) Slice(r Range[K]) iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		l, h, err := s.resolveRange(r)
		check("Slice", err)
		t := s.buf.tree
		s.iterating++
		defer func() { s.iterating-- }()
		for slot := l; slot != h; slot = t.Next(slot) {
			if !yield(t.Key(slot), t.Value(slot)) {
				return
			}
		}
	}
}
