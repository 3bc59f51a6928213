package ordered

import (
	"fmt"
	"iter"
	"runtime"
	"sync/atomic"

	"github.com/npillmayer/ordered/rbtree"
)

// Config configures the tree of a storage.
type Config[K any] = rbtree.Config[K]

// serials numbers buffers, so that indices can tell trees apart.
var serials atomic.Uint64

// buffer is a tree shared by one or more storages.
type buffer[K, V any] struct {
	tree   *rbtree.Tree[K, V]
	serial uint64
	owners atomic.Int32
}

func newBuffer[K, V any](tree *rbtree.Tree[K, V]) *buffer[K, V] {
	return &buffer[K, V]{tree: tree, serial: serials.Add(1)}
}

// claim is the share of one storage in a buffer. A claim may be released
// explicitly and again by a cleanup; only the first release counts.
type claim[K, V any] struct {
	buf  *buffer[K, V]
	done atomic.Bool
}

func (c *claim[K, V]) release() {
	if c.done.CompareAndSwap(false, true) {
		c.buf.owners.Add(-1)
	}
}

// Storage is a copy-on-write red-black tree of key/value pairs.
//
// Storages are handled by pointer. Assigning the pointer aliases the storage,
// Copy creates a second value sharing the same tree.
type Storage[K, V any] struct {
	buf       *buffer[K, V]
	claim     *claim[K, V]
	cleanup   runtime.Cleanup
	iterating int
}

// New creates an empty storage.
func New[K, V any](cfg Config[K]) (*Storage[K, V], error) {
	tree, err := rbtree.New[K, V](cfg)
	if err != nil {
		return nil, err
	}
	s := &Storage[K, V]{}
	s.attach(newBuffer(tree))
	return s, nil
}

// Must is a helper that wraps a call to New and panics if the error is non-nil.
func Must[K, V any](s *Storage[K, V], err error) *Storage[K, V] {
	if err != nil {
		panic(err)
	}
	return s
}

func (s *Storage[K, V]) attach(b *buffer[K, V]) {
	b.owners.Add(1)
	c := &claim[K, V]{buf: b}
	s.buf, s.claim = b, c
	s.cleanup = runtime.AddCleanup(s, func(c *claim[K, V]) { c.release() }, c)
}

func (s *Storage[K, V]) detach() {
	s.cleanup.Stop()
	s.claim.release()
}

// Copy returns a storage with the same contents in O(1). Both storages share
// their tree until one of them is mutated.
func (s *Storage[K, V]) Copy() *Storage[K, V] {
	s.usable("Copy")
	c := &Storage[K, V]{}
	c.attach(s.buf)
	return c
}

// Release gives up s's share of its tree. Afterwards s must not be used
// any more; operations on a released storage fail with ErrNotAllowed.
// Release is optional: unreachable storages release their share when they
// are garbage collected.
func (s *Storage[K, V]) Release() {
	if s.buf == nil {
		return
	}
	s.detach()
	s.buf, s.claim = nil, nil
}

// IsUnique reports whether s is the only owner of its tree.
func (s *Storage[K, V]) IsUnique() bool {
	return s.buf != nil && s.buf.owners.Load() == 1
}

// usable fails if s has been released.
func (s *Storage[K, V]) usable(op string) {
	if s.buf == nil {
		fail(op, fmt.Errorf("%w: storage has been released", ErrNotAllowed))
	}
}

// view returns the tree for read access.
func (s *Storage[K, V]) view(op string) *rbtree.Tree[K, V] {
	s.usable(op)
	return s.buf.tree
}

// mutable returns the tree for write access, cloning it first if it is
// shared. Slots in track are translated into the clone.
func (s *Storage[K, V]) mutable(op string, track ...rbtree.Slot) (*rbtree.Tree[K, V], []rbtree.Slot) {
	s.usable(op)
	if s.iterating > 0 {
		fail(op, fmt.Errorf("%w: mutation during iteration", ErrNotAllowed))
	}
	if s.buf.owners.Load() == 1 {
		return s.buf.tree, track
	}
	tree, mapped := s.buf.tree.CloneTracking(track...)
	s.detach()
	left := s.buf.owners.Load()
	s.attach(newBuffer(tree))
	T().P("op", op).Debugf("ordered: copy-on-write clone of %d elements, %d owner(s) left behind",
		tree.Len(), left)
	return tree, mapped
}

// View returns the tree of s for read-only inspection, e.g. by package dump.
// The tree must not be modified through the returned pointer.
func (s *Storage[K, V]) View() *rbtree.Tree[K, V] {
	return s.view("View")
}

// Check validates the structural invariants of the underlying tree.
func (s *Storage[K, V]) Check() error {
	return s.view("Check").Check()
}

// Stats returns arena statistics of the underlying tree.
func (s *Storage[K, V]) Stats() rbtree.Stats {
	return s.view("Stats").Stats()
}

// IsMulti reports whether s admits duplicate keys.
func (s *Storage[K, V]) IsMulti() bool {
	return s.view("IsMulti").IsMulti()
}

// Len returns the number of elements.
func (s *Storage[K, V]) Len() int {
	return s.view("Len").Len()
}

// IsEmpty reports whether s holds no elements.
func (s *Storage[K, V]) IsEmpty() bool {
	return s.Len() == 0
}

// Capacity returns the number of elements s can hold before its arena grows.
func (s *Storage[K, V]) Capacity() int {
	return s.view("Capacity").Capacity()
}

// Reserve makes room for at least n elements.
func (s *Storage[K, V]) Reserve(n int) {
	t, _ := s.mutable("Reserve")
	t.Reserve(n)
}

// --- Mutation --------------------------------------------------------------

// InsertUnique inserts (key, value) unless an element with an equal key
// exists. It returns the index of the new or the existing element.
func (s *Storage[K, V]) InsertUnique(key K, value V) (Index, bool) {
	t, _ := s.mutable("InsertUnique")
	slot, inserted := t.InsertUnique(key, value)
	return s.index(slot), inserted
}

// InsertMulti inserts (key, value) behind all elements with an equal key.
// On a unique storage, a duplicate key is not inserted and the index of the
// existing element is returned.
func (s *Storage[K, V]) InsertMulti(key K, value V) Index {
	t, _ := s.mutable("InsertMulti")
	return s.index(t.InsertMulti(key, value))
}

// Insert inserts (key, value) according to the ordering policy of s.
func (s *Storage[K, V]) Insert(key K, value V) Index {
	if s.IsMulti() {
		return s.InsertMulti(key, value)
	}
	i, _ := s.InsertUnique(key, value)
	return i
}

// Erase removes the element at i and returns the index of its successor.
// Erasing with an unusable index, or at End, panics with a *Fault.
func (s *Storage[K, V]) Erase(i Index) Index {
	next, err := s.TryErase(i)
	check("Erase", err)
	return next
}

// TryErase is Erase, reporting unusable indices as errors.
func (s *Storage[K, V]) TryErase(i Index) (Index, error) {
	slot, err := s.resolveElement(i)
	if err != nil {
		return Index{}, err
	}
	return s.eraseAt(slot), nil
}

// UncheckedErase is Erase without validation of i.
func (s *Storage[K, V]) UncheckedErase(i Index) Index {
	return s.eraseAt(i.slot)
}

func (s *Storage[K, V]) eraseAt(slot rbtree.Slot) Index {
	t, slots := s.mutable("Erase", slot)
	return s.index(t.Erase(slots[0]))
}

// EraseRange removes the elements of the half-open range [lo, hi) and
// returns their number. lo must not come after hi.
func (s *Storage[K, V]) EraseRange(lo, hi Index) int {
	n, err := s.TryEraseRange(lo, hi)
	check("EraseRange", err)
	return n
}

// TryEraseRange is EraseRange, reporting unusable positions as errors.
func (s *Storage[K, V]) TryEraseRange(lo, hi Index) (int, error) {
	l, h, err := s.resolvePair(lo, hi)
	if err != nil {
		return 0, err
	}
	return s.eraseSlots(l, h), nil
}

// UncheckedEraseRange is EraseRange without validation of lo and hi.
func (s *Storage[K, V]) UncheckedEraseRange(lo, hi Index) int {
	return s.eraseSlots(lo.slot, hi.slot)
}

func (s *Storage[K, V]) eraseSlots(lo, hi rbtree.Slot) int {
	if lo == hi {
		return 0
	}
	t, slots := s.mutable("EraseRange", lo, hi)
	return t.EraseRange(slots[0], slots[1])
}

// EraseKey removes all elements with a key equal to key and returns their
// number.
func (s *Storage[K, V]) EraseKey(key K) int {
	lo, hi := s.view("EraseKey").EqualRange(key)
	return s.eraseSlots(lo, hi)
}

// Clear removes all elements.
func (s *Storage[K, V]) Clear() {
	s.usable("Clear")
	if s.iterating > 0 {
		fail("Clear", fmt.Errorf("%w: mutation during iteration", ErrNotAllowed))
	}
	if s.IsUnique() {
		s.buf.tree.Clear()
		return
	}
	tree := rbtree.Must(rbtree.New[K, V](s.buf.tree.Config()))
	s.detach()
	s.attach(newBuffer(tree))
}

// SetValue replaces the value of the element at i. Keys are immutable.
func (s *Storage[K, V]) SetValue(i Index, value V) {
	s.Update(i, func(v *V) { *v = value })
}

// Update calls fn with a pointer to the value of the element at i. The
// pointer must not be retained after fn returns.
func (s *Storage[K, V]) Update(i Index, fn func(v *V)) {
	slot, err := s.resolveElement(i)
	check("Update", err)
	t, slots := s.mutable("Update", slot)
	fn(t.ValueRef(slots[0]))
}

// --- Queries ---------------------------------------------------------------

// Find returns the index of an element with a key equal to key, or End. For
// multi storages this is the first of the equal elements.
func (s *Storage[K, V]) Find(key K) Index {
	return s.index(s.view("Find").Find(key))
}

// Get returns the value of an element with a key equal to key.
func (s *Storage[K, V]) Get(key K) (V, bool) {
	t := s.view("Get")
	if slot := t.Find(key); slot != t.End() {
		return t.Value(slot), true
	}
	var zero V
	return zero, false
}

// Contains reports whether an element with a key equal to key exists.
func (s *Storage[K, V]) Contains(key K) bool {
	return s.view("Contains").Contains(key)
}

// Count returns the number of elements with a key equal to key.
func (s *Storage[K, V]) Count(key K) int {
	return s.view("Count").Count(key)
}

// LowerBound returns the index of the first element with a key not less
// than key, or End.
func (s *Storage[K, V]) LowerBound(key K) Index {
	return s.index(s.view("LowerBound").LowerBound(key))
}

// UpperBound returns the index of the first element with a key greater than
// key, or End.
func (s *Storage[K, V]) UpperBound(key K) Index {
	return s.index(s.view("UpperBound").UpperBound(key))
}

// EqualRange returns the half-open range of elements with a key equal to key.
func (s *Storage[K, V]) EqualRange(key K) (lo, hi Index) {
	l, h := s.view("EqualRange").EqualRange(key)
	return s.index(l), s.index(h)
}

// Min returns the index of the smallest element, or End.
func (s *Storage[K, V]) Min() Index {
	return s.index(s.view("Min").Min())
}

// Max returns the index of the largest element, or End.
func (s *Storage[K, V]) Max() Index {
	return s.index(s.view("Max").Max())
}

// Key returns the key of the element at i.
func (s *Storage[K, V]) Key(i Index) K {
	slot, err := s.resolveElement(i)
	check("Key", err)
	return s.buf.tree.Key(slot)
}

// Value returns the value of the element at i.
func (s *Storage[K, V]) Value(i Index) V {
	v, err := s.TryValue(i)
	check("Value", err)
	return v
}

// TryValue is Value, reporting unusable indices as errors.
func (s *Storage[K, V]) TryValue(i Index) (V, error) {
	slot, err := s.resolveElement(i)
	if err != nil {
		var zero V
		return zero, err
	}
	return s.buf.tree.Value(slot), nil
}

// UncheckedValue is Value without validation of i.
func (s *Storage[K, V]) UncheckedValue(i Index) V {
	return s.buf.tree.Value(i.slot)
}

// --- Iteration -------------------------------------------------------------

// All iterates over all key/value pairs in order. Mutating s during the
// iteration panics with ErrNotAllowed.
func (s *Storage[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		t := s.view("All")
		s.iterating++
		defer func() { s.iterating-- }()
		for k, v := range t.All() {
			if !yield(k, v) {
				return
			}
		}
	}
}

// Backward iterates over all key/value pairs in reverse order.
func (s *Storage[K, V]) Backward() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		t := s.view("Backward")
		s.iterating++
		defer func() { s.iterating-- }()
		for k, v := range t.Backward() {
			if !yield(k, v) {
				return
			}
		}
	}
}

// Keys iterates over all keys in order.
func (s *Storage[K, V]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		for k := range s.All() {
			if !yield(k) {
				return
			}
		}
	}
}

// Indices iterates over the indices of all elements in order.
func (s *Storage[K, V]) Indices() iter.Seq[Index] {
	return func(yield func(Index) bool) {
		t := s.view("Indices")
		s.iterating++
		defer func() { s.iterating-- }()
		for slot := range t.Slots() {
			if !yield(s.index(slot)) {
				return
			}
		}
	}
}
