/*
Package rbtree implements a red-black tree over an arena of node slots.

The tree never holds pointers to nodes. All links are arena.Slot values, and
the tree owns exactly one arena. Each tree has a sentinel "end" node: the
root hangs off the sentinel's left link, so that the in-order successor of the
maximum is the sentinel and the predecessor of the sentinel is the maximum.
The sentinel is black and never has a right child.

Trees come in two flavours, chosen by the ordering policy: unique trees store
every key at most once, multi trees keep duplicates as contiguous runs, in
insertion order.

Operations follow the classic textbook and libc++ formulations:

  - FindEqual descends to an insertion point,
  - InsertAt links a leaf and rebalances bottom-up with at most two rotations,
  - Erase unlinks a node (splicing its successor into its place if it has two
    children) and rebalances, then recycles the node's slot.

Erase relinks nodes instead of moving payloads between slots. A slot therefore
always carries the same logical element for as long as it is live, which is
what makes (slot, generation) pairs usable as safe positions.

Functions in this package do not validate slots. Passing a slot which is not
live in this tree is a programmer error and results in a panic or undefined
results; callers validate positions before they call in.

A tree is not safe for concurrent use.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package rbtree

import "github.com/npillmayer/schuko/tracing"

// tracer writes to trace with key 'ordered'
func tracer() tracing.Trace {
	return tracing.Select("ordered")
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
