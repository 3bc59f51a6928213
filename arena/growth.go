package arena

// Bucket sizing.
//
// Small arenas double their capacity with every bucket, so that a tree of a
// handful of nodes does not pay for a large allocation. Beyond smallLimit the
// growth factor drops to 1.5 until a bucket holds maxPerBucket slots. Narrow
// nodes get at least minBucketBytes per bucket. Growth stays geometric for
// every stride, which lets the bucket table address the full slot space.
const (
	smallLimit     = 64
	minBucketBytes = 512
)

// bucketSize returns the number of node slots for the next bucket of an
// arena which currently holds capacity slots of stride bytes each.
func bucketSize(capacity int, stride uintptr) int {
	if stride == 0 {
		stride = 1
	}
	var n int
	switch {
	case capacity < 2:
		n = 2
	case capacity < smallLimit:
		n = capacity
	default:
		n = capacity / 2
	}
	if floor := minBucketBytes / int(stride); capacity >= smallLimit && n < floor {
		n = floor
	}
	return min(n, maxPerBucket)
}
