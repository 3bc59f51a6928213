package dump

import (
	"fmt"
	"io"
	"strings"

	"github.com/npillmayer/ordered/arena"
	"github.com/npillmayer/ordered/rbtree"
)

// Tree2Dot outputs the structure of a red-black tree in Graphviz DOT format.
// Nodes are labelled with their keys and filled with their color; nodes in
// highlight get a distinct border.
func Tree2Dot[K, V any](tree *rbtree.Tree[K, V], w io.Writer, highlight ...rbtree.Slot) error {
	var nodelist, edgelist strings.Builder
	nilid := 0
	emit := func(parent, child rbtree.Slot) {
		if child == rbtree.Null {
			nilid++
			fmt.Fprintf(&nodelist, "\"nil%d\" %s;\n", nilid, emptyNode())
			fmt.Fprintf(&edgelist, "\"%d\" -> \"nil%d\";\n", parent, nilid)
			return
		}
		fmt.Fprintf(&edgelist, "\"%d\" -> \"%d\";\n", parent, child)
	}
	for s := range tree.Slots() {
		hl := false
		for _, h := range highlight {
			hl = hl || h == s
		}
		label := fmt.Sprintf("%v", tree.Key(s))
		fmt.Fprintf(&nodelist, "\"%d\" [label=\"%s\" %s];\n", s, escape(label), nodeDotStyles(tree.Color(s), hl))
		emit(s, tree.Left(s))
		emit(s, tree.Right(s))
	}
	var err error
	write := func(s string) {
		if err == nil {
			_, err = io.WriteString(w, s)
		}
	}
	write("strict digraph {\n")
	write("\tnode [fontname=Arial,fontsize=12];\n")
	write(nodelist.String())
	write(edgelist.String())
	write("}\n")
	if err != nil {
		tracer().Errorf("tree DOT: %s", err.Error())
	}
	return err
}

func escape(label string) string {
	return strings.ReplaceAll(label, "\"", "\\\"")
}

func emptyNode() string {
	return "[label=\"\",color=black,style=filled,fillcolor=black,shape=box,fixedsize=true,width=.2,height=.2]"
}

func nodeDotStyles(c arena.Color, highlight bool) string {
	s := ",style=filled,shape=circle"
	if c == arena.Red {
		s += ",fillcolor=\"#e04040\",fontcolor=white"
	} else {
		s += ",fillcolor=\"#202020\",fontcolor=white"
	}
	if highlight {
		s += ",color=\"#ffaa66\",penwidth=3"
	}
	return s
}
