// Package dot holds the renderable form of a task dependency graph and
// serializes it to Graphviz DOT.
//
// # Overview
//
// The graph builder produces a [Graph]: ordered nodes, ordered edges, and
// a layout direction. This package turns that into a DOT digraph that any
// Graphviz tool can render, e.g.
//
//	dot -Tpng tasks.dot -o tasks.png
//
// The document shape is fixed. Every graph opens with a node default of
// light blue filled boxes; group tasks carry peripheries=2 (a double
// border); setup-task edges carry arrowhead=empty while plain task
// dependencies keep the solid default; edge labels list connecting files
// one per line. There is no attribute bag to extend - what the types
// express is exactly what gets emitted.
//
// # Serialization
//
// [Marshal] renders to bytes, [Write] to an io.Writer, and [WriteFile] to
// a path. Output is deterministic for a given graph: statements appear in
// slice order. Labels may contain real newlines; they are escaped on
// output so Graphviz draws multi-line labels.
//
// # Direction
//
// Edges point from a task to what it depends on. [Graph.Reverse] flips
// every edge to show execution order instead, keeping arrowheads and
// labels attached to their (now flipped) edges.
package dot
