/*
Package lru implements a bounded memoization cache with least-recently-used
eviction.

Entries live in a red-black tree for O(log n) lookup by key. A doubly linked
recency list is threaded through the tree nodes themselves: every node carries
the slots of its neighbours in recency order. Reordering on a hit and eviction
of the least recently used entry are O(1) list operations; eviction erases the
tail node from the tree.

Keys of memoized functions with several arguments are built with Key2 and
Key3, ordered lexicographically.

A Cache is not safe for concurrent use.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package lru

import "github.com/npillmayer/schuko/tracing"

// tracer writes to trace with key 'ordered'
func tracer() tracing.Trace {
	return tracing.Select("ordered")
}
