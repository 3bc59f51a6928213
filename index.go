package ordered

import (
	"errors"
	"fmt"

	"github.com/npillmayer/ordered/arena"
	"github.com/npillmayer/ordered/rbtree"
)

// Index is a position in a storage: an element, or End.
//
// An index identifies its element by arena slot, the slot's generation and
// the serial number of the tree it was taken from. It is a weak reference:
// it neither keeps the element alive nor prevents the tree from being
// cloned. Storages validate indices before use, see Storage.Resolve.
//
// The zero Index denotes no position.
type Index struct {
	slot   arena.Slot
	gen    uint32
	serial uint64
}

// IsZero reports whether i is the zero Index.
func (i Index) IsZero() bool {
	return i.slot == arena.Null
}

// Equal reports whether i and j denote the same position. Equality is
// decided by identity alone; neither index is validated.
func (i Index) Equal(j Index) bool {
	return i.slot == j.slot && i.serial == j.serial
}

func (i Index) String() string {
	if i.IsZero() {
		return "<nil>"
	}
	return fmt.Sprintf("[%v gen=%d tree=%d]", i.slot, i.gen, i.serial)
}

// index creates an index for slot in the current tree of s.
func (s *Storage[K, V]) index(slot rbtree.Slot) Index {
	return Index{slot: slot, gen: s.buf.tree.Generation(slot), serial: s.buf.serial}
}

// Resolve validates i and returns the slot it denotes in the tree of s,
// which may be End. It reports
//
//   - ErrNotAllowed if s has been released,
//   - ErrNull for the zero Index,
//   - ErrStale if the element has been erased or the tree has been replaced
//     by a clone since i was taken.
func (s *Storage[K, V]) Resolve(i Index) (rbtree.Slot, error) {
	if s.buf == nil {
		return arena.Null, fmt.Errorf("%w: storage has been released", ErrNotAllowed)
	}
	if i.slot == arena.Null {
		return arena.Null, ErrNull
	}
	if i.serial != s.buf.serial {
		return arena.Null, fmt.Errorf("%w: index %v taken from a different tree", ErrStale, i)
	}
	t := s.buf.tree
	if i.slot == t.End() {
		return i.slot, nil
	}
	if !t.IsLive(i.slot) || t.Generation(i.slot) != i.gen {
		return arena.Null, fmt.Errorf("%w: element at %v has been erased", ErrStale, i)
	}
	return i.slot, nil
}

// resolveElement is Resolve, additionally rejecting End.
func (s *Storage[K, V]) resolveElement(i Index) (rbtree.Slot, error) {
	slot, err := s.Resolve(i)
	if err != nil {
		return slot, err
	}
	if slot == s.buf.tree.End() {
		return arena.Null, ErrEnd
	}
	return slot, nil
}

// resolvePair resolves the bounds of a range and checks that lo does not
// come after hi.
func (s *Storage[K, V]) resolvePair(lo, hi Index) (rbtree.Slot, rbtree.Slot, error) {
	l, err := s.Resolve(lo)
	if err != nil {
		return l, l, err
	}
	h, err := s.Resolve(hi)
	if err != nil {
		return h, h, err
	}
	if err = s.validRange(l, h); err != nil {
		return arena.Null, arena.Null, err
	}
	return l, h, nil
}

func (s *Storage[K, V]) validRange(lo, hi rbtree.Slot) error {
	if lo == hi || s.buf.tree.NodeLess(lo, hi) {
		return nil
	}
	return fmt.Errorf("%w: %v after %v", ErrInvalidRange, lo, hi)
}

// IsValid reports whether i denotes a position in s, including End.
func (s *Storage[K, V]) IsValid(i Index) bool {
	_, err := s.Resolve(i)
	return err == nil
}

// Begin returns the index of the first element, or End for an empty storage.
func (s *Storage[K, V]) Begin() Index {
	return s.index(s.view("Begin").Begin())
}

// End returns the index one past the last element.
func (s *Storage[K, V]) End() Index {
	return s.index(s.view("End").End())
}

// IsEnd reports whether i is the End index of s.
func (s *Storage[K, V]) IsEnd(i Index) bool {
	return s.buf != nil && i.serial == s.buf.serial && i.slot == s.buf.tree.End()
}

// Next returns the index following i. Calling Next on End panics.
func (s *Storage[K, V]) Next(i Index) Index {
	return s.Advance(i, 1)
}

// Prev returns the index preceding i. Calling Prev on Begin panics.
func (s *Storage[K, V]) Prev(i Index) Index {
	return s.Advance(i, -1)
}

// Advance returns the index n positions after i, or before i for negative n.
// Advancing past End or before Begin panics.
func (s *Storage[K, V]) Advance(i Index, n int) Index {
	j, err := s.TryAdvance(i, n)
	check("Advance", err)
	return j
}

// TryAdvance is Advance, reporting failures as errors.
func (s *Storage[K, V]) TryAdvance(i Index, n int) (Index, error) {
	slot, err := s.Resolve(i)
	if err != nil {
		return Index{}, err
	}
	slot, err = s.advance(slot, n)
	if err != nil {
		return Index{}, err
	}
	return s.index(slot), nil
}

// UncheckedAdvance is Advance without validation. Advancing out of bounds
// yields End.
func (s *Storage[K, V]) UncheckedAdvance(i Index, n int) Index {
	slot, err := s.advance(i.slot, n)
	if err != nil {
		return s.End()
	}
	return s.index(slot)
}

func (s *Storage[K, V]) advance(slot rbtree.Slot, n int) (rbtree.Slot, error) {
	r, err := s.buf.tree.Advance(slot, n)
	switch {
	case errors.Is(err, rbtree.ErrBeyondEnd):
		return arena.Null, fmt.Errorf("%w: advance by %d", ErrUpperOutOfBounds, n)
	case errors.Is(err, rbtree.ErrBeforeBegin):
		return arena.Null, fmt.Errorf("%w: advance by %d", ErrLowerOutOfBounds, n)
	}
	return r, err
}

// Distance returns the signed number of elements from a to b.
func (s *Storage[K, V]) Distance(a, b Index) int {
	sa, err := s.Resolve(a)
	check("Distance", err)
	sb, err := s.Resolve(b)
	check("Distance", err)
	return s.buf.tree.Distance(sa, sb)
}

// Less reports whether a comes before b. For unique storages this compares
// keys; for multi storages, equal keys are ordered by position in O(log n).
func (s *Storage[K, V]) Less(a, b Index) bool {
	sa, err := s.Resolve(a)
	check("Less", err)
	sb, err := s.Resolve(b)
	check("Less", err)
	return s.buf.tree.NodeLess(sa, sb)
}
