package rbtree

import (
	"math/rand"
	"strconv"
	"testing"

	"github.com/google/btree"
	"github.com/google/go-cmp/cmp"
	"github.com/npillmayer/ordered/order"
)

// How to run:
//   - Deterministic randomized property test:
//     go test ./rbtree -run TestRandomizedAgainstOracle -count=1
//   - Fuzz test for this file:
//     go test ./rbtree -run '^$' -fuzz FuzzRandomizedAgainstOracle -fuzztime=10s

// item is an oracle element. seq numbers make duplicates distinguishable
// and record their insertion order.
type item struct {
	Key int
	Seq int
}

func itemLess(a, b item) bool {
	if a.Key != b.Key {
		return a.Key < b.Key
	}
	return a.Seq < b.Seq
}

func collectItems(tree *Tree[int, int]) []item {
	items := make([]item, 0, tree.Len())
	for k, seq := range tree.All() {
		items = append(items, item{Key: k, Seq: seq})
	}
	return items
}

func collectOracle(oracle *btree.BTreeG[item]) []item {
	items := make([]item, 0, oracle.Len())
	oracle.Ascend(func(it item) bool {
		items = append(items, it)
		return true
	})
	return items
}

func runRandomSequence(t *testing.T, seed uint64, steps int, multi bool) {
	t.Helper()
	r := rand.New(rand.NewSource(int64(seed)))
	var p order.Policy[int] = order.Natural[int]{}
	if multi {
		p = order.NaturalMulti[int]{}
	}
	tree := Must(New[int, int](Config[int]{Policy: p, CapacityHint: 1}))
	oracle := btree.NewG(4, itemLess)

	for i := 0; i < steps; i++ {
		key := r.Intn(40)
		switch r.Intn(6) {
		case 0, 1, 2:
			if multi {
				tree.InsertMulti(key, i)
				oracle.ReplaceOrInsert(item{Key: key, Seq: i})
			} else if _, inserted := tree.InsertUnique(key, i); inserted {
				oracle.ReplaceOrInsert(item{Key: key, Seq: i})
			}
		case 3:
			if tree.Len() == 0 {
				continue
			}
			s, err := tree.Advance(tree.Begin(), r.Intn(tree.Len()))
			if err != nil {
				t.Fatalf("step %d: advance failed: %v", i, err)
			}
			it := item{Key: tree.Key(s), Seq: tree.Value(s)}
			tree.Erase(s)
			if _, ok := oracle.Delete(it); !ok {
				t.Fatalf("step %d: erased element %v unknown to oracle", i, it)
			}
		case 4:
			lo, hi := tree.EqualRange(key)
			n := tree.EraseRange(lo, hi)
			var victims []item
			oracle.AscendRange(item{Key: key, Seq: -1}, item{Key: key + 1, Seq: -1}, func(it item) bool {
				victims = append(victims, it)
				return true
			})
			for _, it := range victims {
				oracle.Delete(it)
			}
			removed := len(victims)
			if n != removed {
				t.Fatalf("step %d: erased %d elements for key %d, oracle had %d", i, n, key, removed)
			}
		case 5:
			want := 0
			oracle.AscendRange(item{Key: key, Seq: -1}, item{Key: key + 1, Seq: -1}, func(item) bool {
				want++
				return true
			})
			if got := tree.Count(key); got != want {
				t.Fatalf("step %d: Count(%d) = %d, oracle has %d", i, key, got, want)
			}
		}
		if err := tree.Check(); err != nil {
			t.Fatalf("step %d: %v", i, err)
		}
		if diff := cmp.Diff(collectOracle(oracle), collectItems(tree)); diff != "" {
			t.Fatalf("step %d: tree differs from oracle (-want +got):\n%s", i, diff)
		}
	}
}

func TestRandomizedAgainstOracle(t *testing.T) {
	seeds := []uint64{1, 2, 3, 7, 42, 99, 31337, 123456789}
	for _, seed := range seeds {
		for _, multi := range []bool{false, true} {
			name := "seed_" + strconv.FormatUint(seed, 10)
			if multi {
				name += "_multi"
			}
			t.Run(name, func(t *testing.T) {
				runRandomSequence(t, seed, 400, multi)
			})
		}
	}
}

func FuzzRandomizedAgainstOracle(f *testing.F) {
	f.Add(uint64(1), uint8(32), false)
	f.Add(uint64(7), uint8(64), true)
	f.Add(uint64(42), uint8(96), true)
	f.Fuzz(func(t *testing.T, seed uint64, steps uint8, multi bool) {
		runRandomSequence(t, seed, int(steps)+1, multi)
	})
}
