package rbtree

import (
	"iter"

	"github.com/npillmayer/ordered/arena"
	"github.com/npillmayer/ordered/order"
)

// Slot is re-exported for convenience.
type Slot = arena.Slot

// Null denotes "no node".
const Null = arena.Null

// Side selects a child link of a node.
type Side uint8

const (
	Left Side = iota
	Right
)

func (s Side) String() string {
	if s == Left {
		return "left"
	}
	return "right"
}

// entry is the payload of a tree node.
type entry[K, V any] struct {
	key   K
	value V
}

type node[K, V any] = arena.Node[entry[K, V]]

// Tree is a red-black tree of key/value pairs.
//
// K is the key type ordered by the configured policy, V is an arbitrary
// value type. Set-like containers use struct{} for V.
type Tree[K, V any] struct {
	cfg    Config[K]
	policy order.Policy[K]
	multi  bool
	nodes  *arena.Arena[entry[K, V]]
	end    Slot // sentinel; end.Left is the root
	begin  Slot // minimum, or end for an empty tree
	count  int
}

// New creates an empty tree with validated configuration.
func New[K, V any](cfg Config[K]) (*Tree[K, V], error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	cfg = cfg.normalized()
	t := &Tree[K, V]{
		cfg:    cfg,
		policy: cfg.Policy,
		multi:  cfg.Policy.Multi(),
		nodes:  arena.New[entry[K, V]](cfg.CapacityHint + 1),
	}
	t.end = t.nodes.Allocate()
	t.n(t.end).Color = arena.Black
	t.begin = t.end
	return t, nil
}

// Must is a helper that wraps a call to New and panics if the error is non-nil.
func Must[K, V any](t *Tree[K, V], err error) *Tree[K, V] {
	if err != nil {
		panic(err)
	}
	return t
}

// n returns the node record at slot s.
func (t *Tree[K, V]) n(s Slot) *node[K, V] {
	return t.nodes.At(s)
}

// Config returns a copy of the effective tree configuration.
func (t *Tree[K, V]) Config() Config[K] {
	return t.cfg
}

// Policy returns the ordering policy of the tree.
func (t *Tree[K, V]) Policy() order.Policy[K] {
	return t.policy
}

// IsMulti reports whether the tree admits duplicate keys.
func (t *Tree[K, V]) IsMulti() bool {
	return t.multi
}

// Len returns the number of elements in the tree.
func (t *Tree[K, V]) Len() int {
	if t == nil {
		return 0
	}
	return t.count
}

// IsEmpty reports whether the tree has no elements.
func (t *Tree[K, V]) IsEmpty() bool {
	return t == nil || t.count == 0
}

// Capacity returns the number of elements the tree can hold before its arena
// has to grow.
func (t *Tree[K, V]) Capacity() int {
	return t.nodes.Capacity() - 1 // sentinel
}

// Reserve grows the arena to hold at least n elements.
func (t *Tree[K, V]) Reserve(n int) {
	t.nodes.Grow(n + 1)
}

// Stats describes the memory layout of a tree's arena.
type Stats struct {
	Live     int     // live element nodes, excluding the sentinel
	Capacity int     // element slots available without growing
	Free     int     // recycled slots waiting for reuse
	Buckets  int     // arena buckets
	Stride   uintptr // bytes per node record
}

// Stats returns arena statistics.
func (t *Tree[K, V]) Stats() Stats {
	return Stats{
		Live:     t.count,
		Capacity: t.Capacity(),
		Free:     t.nodes.FreeLen(),
		Buckets:  t.nodes.Buckets(),
		Stride:   t.nodes.Stride(),
	}
}

// Begin returns the slot of the minimum element, or End for an empty tree.
func (t *Tree[K, V]) Begin() Slot {
	return t.begin
}

// End returns the sentinel slot.
func (t *Tree[K, V]) End() Slot {
	return t.end
}

// Root returns the root slot, or Null for an empty tree.
func (t *Tree[K, V]) Root() Slot {
	return t.n(t.end).Left
}

// IsLive reports whether s denotes a live element node (not the sentinel).
func (t *Tree[K, V]) IsLive(s Slot) bool {
	return s != t.end && t.nodes.IsLive(s)
}

// Generation returns the recycle count of slot s.
func (t *Tree[K, V]) Generation(s Slot) uint32 {
	return t.nodes.Generation(s)
}

// Key returns the key stored at s.
func (t *Tree[K, V]) Key(s Slot) K {
	assert(s != t.end, "rbtree: key of end sentinel")
	return t.n(s).Payload.key
}

// Value returns the value stored at s.
func (t *Tree[K, V]) Value(s Slot) V {
	assert(s != t.end, "rbtree: value of end sentinel")
	return t.n(s).Payload.value
}

// ValueRef returns a pointer to the value stored at s. The pointer stays
// valid until s is erased; it must not be retained beyond that.
func (t *Tree[K, V]) ValueRef(s Slot) *V {
	assert(s != t.end, "rbtree: value of end sentinel")
	return &t.n(s).Payload.value
}

// SetValue replaces the value stored at s. Keys are immutable.
func (t *Tree[K, V]) SetValue(s Slot, v V) {
	assert(s != t.end, "rbtree: value of end sentinel")
	t.n(s).Payload.value = v
}

// Left returns the left child of s.
func (t *Tree[K, V]) Left(s Slot) Slot { return t.n(s).Left }

// Right returns the right child of s.
func (t *Tree[K, V]) Right(s Slot) Slot { return t.n(s).Right }

// Parent returns the parent of s. The root's parent is the sentinel.
func (t *Tree[K, V]) Parent(s Slot) Slot { return t.n(s).Parent }

// Color returns the color of s.
func (t *Tree[K, V]) Color(s Slot) arena.Color { return t.n(s).Color }

// All iterates over all key/value pairs in order.
//
// The tree must not be modified during iteration.
func (t *Tree[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		if t == nil {
			return
		}
		for s := t.begin; s != t.end; s = t.Next(s) {
			p := &t.n(s).Payload
			if !yield(p.key, p.value) {
				return
			}
		}
	}
}

// Backward iterates over all key/value pairs in reverse order.
func (t *Tree[K, V]) Backward() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		if t == nil || t.count == 0 {
			return
		}
		for s := t.Prev(t.end); ; s = t.Prev(s) {
			p := &t.n(s).Payload
			if !yield(p.key, p.value) || s == t.begin {
				return
			}
		}
	}
}

// Keys iterates over all keys in order.
func (t *Tree[K, V]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		for k := range t.All() {
			if !yield(k) {
				return
			}
		}
	}
}

// Slots iterates over the slots of all elements in order.
func (t *Tree[K, V]) Slots() iter.Seq[Slot] {
	return func(yield func(Slot) bool) {
		if t == nil {
			return
		}
		for s := t.begin; s != t.end; s = t.Next(s) {
			if !yield(s) {
				return
			}
		}
	}
}

// Clear removes all elements. Their slots are recycled, so positions taken
// before Clear become stale. Arena capacity is kept.
func (t *Tree[K, V]) Clear() {
	if t.count == 0 {
		return
	}
	stack := make([]Slot, 0, 64)
	stack = append(stack, t.Root())
	for len(stack) > 0 {
		s := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		nd := t.n(s)
		if nd.Left != Null {
			stack = append(stack, nd.Left)
		}
		if nd.Right != Null {
			stack = append(stack, nd.Right)
		}
		t.nodes.Recycle(s)
	}
	t.n(t.end).Left = Null
	t.begin = t.end
	t.count = 0
}
