package ordered

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
//     go test . -run TestCopyOnWriteRandomized -count=1
//   - Fuzz test for this file:
//     go test . -run '^$' -fuzz FuzzCopyOnWriteRandomized -fuzztime=10s

const handles = 3

// runCopyOnWriteSequence mutates a small family of storages sharing trees,
// mirrored by google/btree trees, whose Clone is copy-on-write as well.
func runCopyOnWriteSequence(t *testing.T, seed uint64, steps int) {
	t.Helper()
	r := rand.New(rand.NewSource(int64(seed)))
	var stores [handles]*Storage[int, int]
	var oracles [handles]*btree.BTreeG[int]
	stores[0] = Must(New[int, int](Config[int]{Policy: order.Natural[int]{}}))
	oracles[0] = btree.NewOrderedG[int](8)
	for h := 1; h < handles; h++ {
		stores[h] = stores[0].Copy()
		oracles[h] = oracles[0].Clone()
	}
	for i := 0; i < steps; i++ {
		h := r.Intn(handles)
		s, o := stores[h], oracles[h]
		switch r.Intn(5) {
		case 0, 1:
			k := r.Intn(50)
			s.InsertUnique(k, i)
			o.ReplaceOrInsert(k)
		case 2:
			if s.Len() == 0 {
				continue
			}
			idx := s.Advance(s.Begin(), r.Intn(s.Len()))
			k := s.Key(idx)
			s.Erase(idx)
			o.Delete(k)
		case 3:
			lo, hi := r.Intn(50), r.Intn(50)
			if lo > hi {
				lo, hi = hi, lo
			}
			n := s.EraseIn(HalfOpen(Lower(lo), Lower(hi)))
			var victims []int
			o.AscendRange(lo, hi, func(k int) bool {
				victims = append(victims, k)
				return true
			})
			for _, k := range victims {
				o.Delete(k)
			}
			if n != len(victims) {
				t.Fatalf("step %d: erased %d elements in [%d,%d), oracle %d", i, n, lo, hi, len(victims))
			}
		case 4:
			src := r.Intn(handles)
			if src == h {
				continue
			}
			stores[h].Release()
			stores[h] = stores[src].Copy()
			oracles[h] = oracles[src].Clone()
		}
		for j := 0; j < handles; j++ {
			if err := stores[j].Check(); err != nil {
				t.Fatalf("step %d, storage %d: %v", i, j, err)
			}
			var want []int
			oracles[j].Ascend(func(k int) bool {
				want = append(want, k)
				return true
			})
			if diff := cmp.Diff(want, keysOf(stores[j])); diff != "" {
				t.Fatalf("step %d: storage %d differs from oracle (-want +got):\n%s", i, j, diff)
			}
		}
	}
}

func TestCopyOnWriteRandomized(t *testing.T) {
	seeds := []uint64{1, 2, 3, 7, 42, 99, 31337, 123456789}
	for _, seed := range seeds {
		t.Run("seed_"+strconv.FormatUint(seed, 10), func(t *testing.T) {
			runCopyOnWriteSequence(t, seed, 300)
		})
	}
}

func FuzzCopyOnWriteRandomized(f *testing.F) {
	f.Add(uint64(1), uint8(32))
	f.Add(uint64(42), uint8(96))
	f.Fuzz(func(t *testing.T, seed uint64, steps uint8) {
		runCopyOnWriteSequence(t, seed, int(steps)+1)
	})
}
