package dump

import (
	"bytes"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/fatih/color"
	"github.com/npillmayer/ordered/order"
	"github.com/npillmayer/ordered/rbtree"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func sampleTree(t *testing.T, keys ...int) *rbtree.Tree[int, struct{}] {
	t.Helper()
	tree, err := rbtree.New[int, struct{}](rbtree.Config[int]{Policy: order.Natural[int]{}})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	for _, k := range keys {
		tree.InsertUnique(k, struct{}{})
	}
	return tree
}

func TestTree2Dot(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(nil)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelInfo)
	//
	tree := sampleTree(t, 2, 1, 3)
	var buf bytes.Buffer
	if err := Tree2Dot(tree, &buf, tree.Find(3)); err != nil {
		t.Fatalf("Tree2Dot failed: %v", err)
	}
	dot := buf.String()
	if !strings.HasPrefix(dot, "strict digraph {") || !strings.HasSuffix(dot, "}\n") {
		t.Fatalf("not a DOT graph:\n%s", dot)
	}
	for _, label := range []string{`label="1"`, `label="2"`, `label="3"`} {
		if !strings.Contains(dot, label) {
			t.Fatalf("missing node %s in\n%s", label, dot)
		}
	}
	// three nodes have four empty leaves and six edges
	if n := strings.Count(dot, "->"); n != 6 {
		t.Fatalf("expected 6 edges, got %d", n)
	}
	if n := strings.Count(dot, "penwidth=3"); n != 1 {
		t.Fatalf("expected one highlighted node, got %d", n)
	}
}

func TestFprintSideways(t *testing.T) {
	color.NoColor = true
	tree := sampleTree(t, 4, 2, 6, 1, 3, 5, 7)
	var buf bytes.Buffer
	if err := Fprint(&buf, tree, &ConsoleConfig{}); err != nil {
		t.Fatalf("Fprint failed: %v", err)
	}
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 7 {
		t.Fatalf("expected 7 lines, got %d:\n%s", len(lines), buf.String())
	}
	want := []string{"7", "6", "5", "4", "3", "2", "1"}
	for i, line := range lines {
		if strings.TrimSpace(line) != want[i] {
			t.Fatalf("line %d is %q, want %q", i, line, want[i])
		}
	}
	if lines[3] != "4" {
		t.Fatalf("root must not be indented, got %q", lines[3])
	}
}

func TestFprintEmptyAndNarrow(t *testing.T) {
	color.NoColor = true
	var buf bytes.Buffer
	if err := Fprint(&buf, sampleTree(t), nil); err != nil || buf.String() != "(empty)\n" {
		t.Fatalf("empty tree printed as %q, %v", buf.String(), err)
	}
	buf.Reset()
	tree := sampleTree(t, 123456)
	if err := Fprint(&buf, tree, &ConsoleConfig{LineWidth: 3}); err != nil {
		t.Fatalf("Fprint failed: %v", err)
	}
	if buf.String() != "123\n" {
		t.Fatalf("label not cut to line width: %q", buf.String())
	}
}

func TestFprintCutsLabelsOnRuneBoundary(t *testing.T) {
	color.NoColor = true
	tree, err := rbtree.New[string, struct{}](rbtree.Config[string]{Policy: order.Natural[string]{}})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	tree.InsertUnique("größer", struct{}{})
	var buf bytes.Buffer
	if err := Fprint(&buf, tree, &ConsoleConfig{LineWidth: 3}); err != nil {
		t.Fatalf("Fprint failed: %v", err)
	}
	if !utf8.ValidString(buf.String()) {
		t.Fatalf("label cut inside a rune: %q", buf.String())
	}
	if buf.String() != "grö\n" {
		t.Fatalf("expected label cut to 3 runes, got %q", buf.String())
	}
}
