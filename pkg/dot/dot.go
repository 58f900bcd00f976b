package dot

import (
	"bytes"
	"fmt"
	"slices"
	"strings"
)

// Arrowhead selects the head drawn on a dependency edge.
type Arrowhead string

const (
	// ArrowSolid is Graphviz's default filled head, used for task
	// dependencies. It renders without an explicit arrowhead attribute.
	ArrowSolid Arrowhead = ""

	// ArrowEmpty is the hollow head used for setup-task dependencies.
	ArrowEmpty Arrowhead = "empty"
)

// Node is a single task box in the rendered graph. All nodes share the
// graph-level defaults (light blue fill); group tasks additionally get a
// double border.
type Node struct {
	ID           string // Task name, also the display label
	DoubleBorder bool   // Drawn with peripheries=2 to mark group tasks
}

// Edge is one dependency arrow between two nodes. Label carries the names
// of connecting files, one per line (real newlines; Marshal escapes them
// so Graphviz renders a multi-line edge label).
//
// Edges may reference IDs with no matching Node entry; Graphviz declares
// such endpoints implicitly with the graph-level node defaults.
type Edge struct {
	From      string
	To        string
	Arrowhead Arrowhead
	Label     string
}

// Graph is a task dependency graph in its renderable form: an ordered node
// list, an ordered edge list, and the layout direction. The zero value is
// an empty, usable graph.
//
// Graph is plain data. Builders append to Nodes and Edges directly and are
// responsible for any uniqueness they need; Marshal emits exactly what is
// present, in order.
type Graph struct {
	Nodes      []Node
	Edges      []Edge
	Horizontal bool // Lay ranks out left to right (rankdir=LR)
}

// Reverse returns a new graph with every edge flipped, so arrows point in
// execution order instead of dependency order. Arrowheads and labels stay
// with their edge; nodes and layout direction are kept. The receiver is
// not modified.
func (g *Graph) Reverse() *Graph {
	rev := &Graph{
		Nodes:      slices.Clone(g.Nodes),
		Edges:      make([]Edge, len(g.Edges)),
		Horizontal: g.Horizontal,
	}
	for i, e := range g.Edges {
		rev.Edges[i] = Edge{From: e.To, To: e.From, Arrowhead: e.Arrowhead, Label: e.Label}
	}
	return rev
}

// Marshal renders the graph as a Graphviz DOT document.
// Output is deterministic: nodes and edges appear in slice order.
func Marshal(g *Graph) []byte {
	var buf bytes.Buffer
	buf.WriteString("digraph tasks {\n")
	if g.Horizontal {
		buf.WriteString("  rankdir=LR;\n")
	}
	buf.WriteString("  node [color=lightblue2, style=filled];\n")

	for _, n := range g.Nodes {
		if n.DoubleBorder {
			fmt.Fprintf(&buf, "  %q [peripheries=2];\n", n.ID)
		} else {
			fmt.Fprintf(&buf, "  %q;\n", n.ID)
		}
	}

	for _, e := range g.Edges {
		attrs := fmtEdgeAttrs(e)
		if len(attrs) == 0 {
			fmt.Fprintf(&buf, "  %q -> %q;\n", e.From, e.To)
		} else {
			fmt.Fprintf(&buf, "  %q -> %q [%s];\n", e.From, e.To, strings.Join(attrs, ", "))
		}
	}

	buf.WriteString("}\n")
	return buf.Bytes()
}

func fmtEdgeAttrs(e Edge) []string {
	var attrs []string
	if e.Arrowhead != ArrowSolid {
		attrs = append(attrs, fmt.Sprintf("arrowhead=%s", e.Arrowhead))
	}
	if e.Label != "" {
		attrs = append(attrs, fmt.Sprintf("label=%q", e.Label))
	}
	return attrs
}

// DefaultFilename derives the output filename from the traversal roots:
// a single root yields "<root>.dot", anything else yields "tasks.dot".
func DefaultFilename(roots []string) string {
	if len(roots) == 1 {
		return roots[0] + ".dot"
	}
	return "tasks.dot"
}
