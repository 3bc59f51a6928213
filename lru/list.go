package lru

import "github.com/npillmayer/ordered/rbtree"

// entry is the payload of a cache node: the cached value plus the links of
// the recency list.
type entry[V any] struct {
	value      V
	prev, next rbtree.Slot
}

// recency is an intrusive doubly linked list of tree nodes. head is the
// most recently used node.
type recency struct {
	head, tail rbtree.Slot
}

// links gives access to the list links stored in node s.
type links interface {
	link(s rbtree.Slot) (prev, next *rbtree.Slot)
}

func (l *recency) reset() {
	l.head, l.tail = rbtree.Null, rbtree.Null
}

func (l *recency) empty() bool {
	return l.head == rbtree.Null
}

func (l *recency) pushFront(ls links, s rbtree.Slot) {
	prev, next := ls.link(s)
	*next = l.head
	*prev = rbtree.Null
	if l.head != rbtree.Null {
		hp, _ := ls.link(l.head)
		*hp = s
	} else {
		l.tail = s
	}
	l.head = s
}

func (l *recency) remove(ls links, s rbtree.Slot) {
	prev, next := ls.link(s)
	p, n := *prev, *next
	if p != rbtree.Null {
		_, pn := ls.link(p)
		*pn = n
	} else if l.head == s {
		l.head = n
	}
	if n != rbtree.Null {
		np, _ := ls.link(n)
		*np = p
	} else if l.tail == s {
		l.tail = p
	}
	*prev, *next = rbtree.Null, rbtree.Null
}

func (l *recency) moveToFront(ls links, s rbtree.Slot) {
	if l.head == s {
		return
	}
	l.remove(ls, s)
	l.pushFront(ls, s)
}
