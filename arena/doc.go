/*
Package arena provides a bucketed node arena for index-addressed trees.

Nodes are never addressed by pointer across API boundaries. A Slot is an
integer handle encoding a bucket number and an offset inside that bucket.
Buckets never move once allocated, so a *Node obtained from At stays valid
for the lifetime of the arena, but clients should treat it as short-lived.

Every slot is in exactly one of three states:

  - never initialized: beyond the bump pointer of its bucket,
  - live: handed out by Allocate and not yet recycled,
  - recycled: on the intrusive free list, waiting for reuse.

Recycling a slot increments its generation. A (slot, generation) pair taken
while a node was live therefore never matches again once the node has been
erased, even if the slot is reused for a different node later.

Slot 0 is reserved as the null record and is never handed out.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package arena

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
