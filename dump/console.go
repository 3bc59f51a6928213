package dump

import (
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/fatih/color"
	"github.com/npillmayer/ordered/arena"
	"github.com/npillmayer/ordered/rbtree"
	"golang.org/x/term"
)

// ConsoleConfig configures console output of trees.
type ConsoleConfig struct {
	LineWidth int          // labels are cut to fit; 0 means unlimited
	Red       *color.Color // color of red nodes
	Black     *color.Color // color of black nodes
}

// ConfigFromTerminal creates a ConsoleConfig with the default palette. If
// stdout is a terminal, the line width is set from the terminal's width.
func ConfigFromTerminal() *ConsoleConfig {
	config := &ConsoleConfig{LineWidth: 65}
	if fd := int(os.Stdout.Fd()); term.IsTerminal(fd) {
		if w, _, err := term.GetSize(fd); err == nil && w > 10 {
			config.LineWidth = w
		}
	}
	tracer().P("format", "console").Infof("setting line length to %d", config.LineWidth)
	return config
}

func (config *ConsoleConfig) palette() (red, black *color.Color) {
	red, black = config.Red, config.Black
	if red == nil {
		red = color.New(color.FgRed, color.Bold)
	}
	if black == nil {
		black = color.New(color.FgBlue)
	}
	return
}

// Print outputs a tree to stdout. If config is nil, ConfigFromTerminal is
// used.
func Print[K, V any](tree *rbtree.Tree[K, V], config *ConsoleConfig) error {
	if config == nil {
		config = ConfigFromTerminal()
	}
	return Fprint(os.Stdout, tree, config)
}

// Fprint outputs a tree sideways: the root to the left, right subtrees above
// left subtrees, one node per line, indented by depth.
func Fprint[K, V any](w io.Writer, tree *rbtree.Tree[K, V], config *ConsoleConfig) error {
	if config == nil {
		config = &ConsoleConfig{}
	}
	red, black := config.palette()
	if tree.IsEmpty() {
		_, err := io.WriteString(w, "(empty)\n")
		return err
	}
	type frame struct {
		s     rbtree.Slot
		depth int
		seen  bool
	}
	// reverse in-order traversal, so that the maximum is printed first
	stack := []frame{{s: tree.Root()}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if f.s == rbtree.Null {
			continue
		}
		if !f.seen {
			stack = append(stack,
				frame{s: tree.Left(f.s), depth: f.depth + 1},
				frame{s: f.s, depth: f.depth, seen: true},
				frame{s: tree.Right(f.s), depth: f.depth + 1})
			continue
		}
		label := fmt.Sprintf("%v", tree.Key(f.s))
		indent := strings.Repeat("    ", f.depth)
		if config.LineWidth > 0 {
			if room := config.LineWidth - len(indent); utf8.RuneCountInString(label) > room {
				label = string([]rune(label)[:max(room, 1)])
			}
		}
		c := black
		if tree.Color(f.s) == arena.Red {
			c = red
		}
		if _, err := io.WriteString(w, indent); err != nil {
			return err
		}
		if _, err := c.Fprintln(w, label); err != nil {
			return err
		}
	}
	return nil
}
