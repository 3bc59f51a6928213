package rbtree

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestSetAlgebraOnSets(t *testing.T) {
	a := buildUnique(t, 1, 3, 5)
	b := buildUnique(t, 2, 3, 4)
	cases := []struct {
		name string
		op   func(a, b *Tree[int, string]) *Tree[int, string]
		want []int
	}{
		{"union", MeldUnique[int, string], []int{1, 2, 3, 4, 5}},
		{"intersection", Intersection[int, string], []int{3}},
		{"difference", Difference[int, string], []int{1, 5}},
		{"symmetric difference", SymmetricDifference[int, string], []int{1, 2, 4, 5}},
	}
	for _, c := range cases {
		r := c.op(a, b)
		mustCheck(t, r)
		if diff := cmp.Diff(c.want, keysOf(r)); diff != "" {
			t.Fatalf("%s mismatch (-want +got):\n%s", c.name, diff)
		}
	}
	if diff := cmp.Diff([]int{1, 3, 5}, keysOf(a)); diff != "" {
		t.Fatalf("input modified (-want +got):\n%s", diff)
	}
}

func TestSetAlgebraOnMultisets(t *testing.T) {
	a := newIntTree(t, true)
	b := newIntTree(t, true)
	for _, k := range []int{1, 1, 1, 2, 4} {
		a.InsertMulti(k, "a")
	}
	for _, k := range []int{1, 2, 2, 3} {
		b.InsertMulti(k, "b")
	}
	cases := []struct {
		name string
		op   func(a, b *Tree[int, string]) *Tree[int, string]
		want []int
	}{
		{"meld", MeldMulti[int, string], []int{1, 1, 1, 1, 2, 2, 2, 3, 4}},
		{"union", MeldUnique[int, string], []int{1, 2, 3, 4}},
		{"intersection", Intersection[int, string], []int{1, 2}},
		{"difference", Difference[int, string], []int{1, 1, 4}},
		{"symmetric difference", SymmetricDifference[int, string], []int{1, 1, 2, 3, 4}},
	}
	for _, c := range cases {
		r := c.op(a, b)
		mustCheck(t, r)
		if diff := cmp.Diff(c.want, keysOf(r)); diff != "" {
			t.Fatalf("%s mismatch (-want +got):\n%s", c.name, diff)
		}
	}
}

func TestMeldMultiPrefersFirstOperand(t *testing.T) {
	a := newIntTree(t, true)
	b := newIntTree(t, true)
	a.InsertMulti(1, "a1")
	b.InsertMulti(1, "b1")
	a.InsertMulti(1, "a2")
	r := MeldMulti(a, b)
	var got []string
	for _, v := range r.All() {
		got = append(got, v)
	}
	if diff := cmp.Diff([]string{"a1", "a2", "b1"}, got); diff != "" {
		t.Fatalf("meld order mismatch (-want +got):\n%s", diff)
	}
}

func TestMeldWithEmpty(t *testing.T) {
	a := buildUnique(t, 1, 2)
	e := newIntTree(t, false)
	if diff := cmp.Diff([]int{1, 2}, keysOf(MeldUnique(e, a))); diff != "" {
		t.Fatalf("union with empty (-want +got):\n%s", diff)
	}
	if r := Intersection(a, e); r.Len() != 0 {
		t.Fatalf("intersection with empty has %d elements", r.Len())
	}
}
