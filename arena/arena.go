package arena

import (
	"fmt"
	"unsafe"
)

// Slot is the address of a node inside an arena.
//
// The high bits select a bucket, the low bits an offset within the bucket.
type Slot int32

// Null denotes "no node". It refers to the reserved null record.
const Null Slot = 0

const (
	offsetBits   = 24
	offsetMask   = 1<<offsetBits - 1
	maxBuckets   = 1 << (31 - offsetBits)
	maxPerBucket = 1 << offsetBits
)

func makeSlot(bucket, offset int) Slot {
	return Slot(bucket<<offsetBits | offset)
}

func (s Slot) bucket() int { return int(s) >> offsetBits }
func (s Slot) offset() int { return int(s) & offsetMask }

func (s Slot) String() string {
	if s == Null {
		return "nil"
	}
	return fmt.Sprintf("#%d.%d", s.bucket(), s.offset())
}

// Color is the red-black color bit of a node.
type Color uint8

const (
	// Red is the color of freshly linked nodes.
	Red Color = iota
	// Black is the color of the null record, the sentinel and the root.
	Black
)

func (c Color) String() string {
	if c == Red {
		return "red"
	}
	return "black"
}

// Node is a fixed-layout tree record with an embedded payload.
//
// Left, Right and Parent are maintained by the tree algorithms. While a node
// sits on the free list, Right links to the next free slot.
type Node[P any] struct {
	Left, Right, Parent Slot
	Color               Color
	live                bool
	gen                 uint32
	Payload             P
}

// Generation returns the number of times the node's slot has been recycled.
func (n *Node[P]) Generation() uint32 { return n.gen }

// IsLive reports whether the node is currently allocated.
func (n *Node[P]) IsLive() bool { return n.live }

// Arena is a pool of nodes with bump allocation and free-list recycling.
//
// Arena is not safe for concurrent use.
type Arena[P any] struct {
	buckets  [][]Node[P] // len(bucket) is the bump pointer, cap(bucket) its size
	cur      int         // bucket currently bump-allocated from
	capacity int         // usable slots, excluding the null record
	live     int
	free     Slot // head of the recycle list
	freeLen  int
	stride   uintptr
}

// New creates an arena able to hold at least capacity nodes without growing.
func New[P any](capacity int) *Arena[P] {
	a := &Arena[P]{
		stride: unsafe.Sizeof(Node[P]{}),
	}
	if capacity < 0 {
		capacity = 0
	}
	size := max(capacity+1, 2) // +1 for the null record
	if size > maxPerBucket {
		size = maxPerBucket
	}
	first := make([]Node[P], 1, size)
	first[0] = Node[P]{Color: Black}
	a.buckets = append(a.buckets, first)
	a.capacity = size - 1
	if capacity > a.capacity {
		a.Grow(capacity)
	}
	return a
}

// Len returns the number of live nodes.
func (a *Arena[P]) Len() int {
	return a.live
}

// Capacity returns the number of nodes the arena can hold without growing.
func (a *Arena[P]) Capacity() int {
	return a.capacity
}

// FreeLen returns the number of recycled slots waiting for reuse.
func (a *Arena[P]) FreeLen() int {
	return a.freeLen
}

// Buckets returns the number of buckets allocated so far.
func (a *Arena[P]) Buckets() int {
	return len(a.buckets)
}

// Stride returns the byte size of a single node record.
func (a *Arena[P]) Stride() uintptr {
	return a.stride
}

// At returns the node stored at slot s. s must have been handed out by
// this arena (or be Null).
func (a *Arena[P]) At(s Slot) *Node[P] {
	return &a.buckets[s.bucket()][s.offset()]
}

// Contains reports whether s addresses an initialized record of this arena.
// It does not imply that the record is live.
func (a *Arena[P]) Contains(s Slot) bool {
	if s <= Null {
		return false
	}
	b := s.bucket()
	if b >= len(a.buckets) {
		return false
	}
	return s.offset() < len(a.buckets[b])
}

// IsLive reports whether s addresses a live node.
func (a *Arena[P]) IsLive(s Slot) bool {
	return a.Contains(s) && a.At(s).live
}

// Generation returns the generation of slot s, or 0 for uninitialized slots.
func (a *Arena[P]) Generation(s Slot) uint32 {
	if !a.Contains(s) {
		return 0
	}
	return a.At(s).gen
}

// Allocate hands out a node slot.
//
// Recycled slots are reused first (LIFO); their generation has already been
// bumped by Recycle. Otherwise the next never-initialized slot is taken,
// growing the arena by a new bucket if necessary. The returned node has null
// links, red color and a zero payload.
func (a *Arena[P]) Allocate() Slot {
	if a.free != Null {
		s := a.free
		n := a.At(s)
		a.free = n.Right
		a.freeLen--
		n.Left, n.Right, n.Parent = Null, Null, Null
		n.Color = Red
		n.live = true
		a.live++
		return s
	}
	for len(a.buckets[a.cur]) == cap(a.buckets[a.cur]) {
		if a.cur+1 == len(a.buckets) {
			a.appendBucket(bucketSize(a.capacity, a.stride))
		}
		a.cur++
	}
	b := a.buckets[a.cur]
	offset := len(b)
	a.buckets[a.cur] = b[:offset+1]
	n := &a.buckets[a.cur][offset]
	*n = Node[P]{live: true}
	a.live++
	return makeSlot(a.cur, offset)
}

// Recycle returns a live slot to the free list.
//
// The payload is cleared in place and the slot's generation is incremented,
// so that identities captured before Recycle no longer match.
func (a *Arena[P]) Recycle(s Slot) {
	assert(s != Null, "arena: recycle of null slot")
	assert(a.IsLive(s), "arena: recycle of a slot which is not live")
	n := a.At(s)
	var zero P
	n.Payload = zero
	n.gen++
	n.live = false
	n.Color = Black
	n.Left, n.Parent = Null, Null
	n.Right = a.free
	a.free = s
	a.freeLen++
	a.live--
}

// Grow makes sure the arena can hold at least minCapacity nodes.
func (a *Arena[P]) Grow(minCapacity int) {
	for a.capacity < minCapacity {
		need := minCapacity - a.capacity
		a.appendBucket(max(need, bucketSize(a.capacity, a.stride)))
	}
}

func (a *Arena[P]) appendBucket(size int) {
	assert(len(a.buckets) < maxBuckets, "arena: bucket table exhausted")
	size = min(max(size, 1), maxPerBucket)
	a.buckets = append(a.buckets, make([]Node[P], 0, size))
	a.capacity += size
	tracer().Debugf("arena: new bucket #%d with %d slots (stride %d), capacity now %d",
		len(a.buckets)-1, size, a.stride, a.capacity)
}
