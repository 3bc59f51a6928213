package order

import (
	"strings"
	"testing"
)

func TestNaturalPolicies(t *testing.T) {
	var u Policy[int] = Natural[int]{}
	var m Policy[int] = NaturalMulti[int]{}
	if !u.Less(1, 2) || u.Less(2, 1) || u.Less(2, 2) {
		t.Fatalf("natural order broken")
	}
	if u.Multi() {
		t.Fatalf("Natural must be unique")
	}
	if !m.Multi() {
		t.Fatalf("NaturalMulti must admit duplicates")
	}
}

func TestByFuncAndCompare(t *testing.T) {
	p := ByFunc(func(a, b string) bool { return len(a) < len(b) }, true)
	if !Equal[string](p, "ab", "xy") {
		t.Fatalf("strings of equal length should be equivalent")
	}
	if Compare[string](p, "a", "abc") != -1 || Compare[string](p, "abc", "a") != 1 {
		t.Fatalf("three-way compare broken")
	}
	c := ByCompare(strings.Compare, false)
	if !c.Less("a", "b") || c.Multi() {
		t.Fatalf("ByCompare broken")
	}
}

func TestByFuncRejectsNil(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic for nil less-function")
		}
	}()
	ByFunc[int](nil, false)
}

func TestReverse(t *testing.T) {
	r := Reverse[int](NaturalMulti[int]{})
	if !r.Less(3, 1) || r.Less(1, 3) {
		t.Fatalf("reverse order broken")
	}
	if !r.Multi() {
		t.Fatalf("reverse must keep multiplicity")
	}
}
