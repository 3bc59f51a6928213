package rbtree

import (
	"fmt"

	"github.com/npillmayer/ordered/arena"
)

// Check validates the structural invariants of the tree:
//
//   - the sentinel is black, has no right child and is the root's parent,
//   - the root is black and parent links are consistent,
//   - no red node has a red child,
//   - every path from the root to a leaf has the same number of black nodes,
//   - in-order keys are non-decreasing (strictly increasing for unique trees),
//   - the begin cache and the element count are accurate.
//
// Check is intended for tests and debugging; it walks the whole tree.
func (t *Tree[K, V]) Check() error {
	if t == nil {
		return nil
	}
	en := t.n(t.end)
	if en.Color != arena.Black {
		return fmt.Errorf("%w: red sentinel", ErrInvariant)
	}
	if en.Right != Null {
		return fmt.Errorf("%w: sentinel has a right child", ErrInvariant)
	}
	root := en.Left
	if root == Null {
		if t.count != 0 || t.begin != t.end {
			return fmt.Errorf("%w: empty tree with count=%d, begin=%v", ErrInvariant, t.count, t.begin)
		}
		return nil
	}
	if t.n(root).Parent != t.end {
		return fmt.Errorf("%w: root %v is not linked to sentinel", ErrInvariant, root)
	}
	if t.n(root).Color != arena.Black {
		return fmt.Errorf("%w: red root %v", ErrInvariant, root)
	}
	if _, err := t.checkSubtree(root); err != nil {
		return err
	}
	if lo := t.subtreeMin(root); t.begin != lo {
		return fmt.Errorf("%w: begin cache is %v, minimum is %v", ErrInvariant, t.begin, lo)
	}
	n := 0
	var prev Slot = Null
	for s := t.begin; s != t.end; s = t.Next(s) {
		if !t.nodes.IsLive(s) {
			return fmt.Errorf("%w: reachable node %v is not live", ErrInvariant, s)
		}
		if prev != Null {
			pk, k := t.n(prev).Payload.key, t.n(s).Payload.key
			if t.policy.Less(k, pk) {
				return fmt.Errorf("%w: keys out of order at %v", ErrInvariant, s)
			}
			if !t.multi && !t.policy.Less(pk, k) {
				return fmt.Errorf("%w: duplicate key at %v in unique tree", ErrInvariant, s)
			}
		}
		prev = s
		n++
	}
	if n != t.count {
		return fmt.Errorf("%w: count is %d, found %d elements", ErrInvariant, t.count, n)
	}
	return nil
}

// checkSubtree returns the black height of the subtree at s.
func (t *Tree[K, V]) checkSubtree(s Slot) (int, error) {
	if s == Null {
		return 1, nil
	}
	sn := t.n(s)
	for _, c := range []Slot{sn.Left, sn.Right} {
		if c == Null {
			continue
		}
		if t.n(c).Parent != s {
			return 0, fmt.Errorf("%w: parent link of %v does not point to %v", ErrInvariant, c, s)
		}
		if sn.Color == arena.Red && t.n(c).Color == arena.Red {
			return 0, fmt.Errorf("%w: red node %v has red child %v", ErrInvariant, s, c)
		}
	}
	lh, err := t.checkSubtree(sn.Left)
	if err != nil {
		return 0, err
	}
	rh, err := t.checkSubtree(sn.Right)
	if err != nil {
		return 0, err
	}
	if lh != rh {
		return 0, fmt.Errorf("%w: black height differs below %v (%d vs %d)", ErrInvariant, s, lh, rh)
	}
	if sn.Color == arena.Black {
		lh++
	}
	return lh, nil
}
