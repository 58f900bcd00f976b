package graph

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/taskdot/taskdot/pkg/dot"
	"github.com/taskdot/taskdot/pkg/task"
)

// ErrUnknownTask is returned by [Build] when the traversal reaches a task
// name the registry does not contain, either a requested root or a
// dependency reference of a visited task. A resolved plan must only
// reference tasks it defines, so this is always a caller-side defect.
var ErrUnknownTask = errors.New("unknown task")

// Options configures graph construction.
type Options struct {
	// ShowSubtasks keeps sub-tasks as their own nodes. When false,
	// sub-tasks collapse into their parent and edges are rewired
	// accordingly.
	ShowSubtasks bool

	// Horizontal lays the graph out left to right instead of top down.
	Horizontal bool
}

// Build walks the dependency structure of a plan and produces its
// renderable graph.
//
// The traversal is breadth first. It starts from roots, or from every task
// in plan order when roots is empty, and follows setup-task and task
// dependencies; tasks only reachable through other declarations (such as
// file dependencies) do not appear. Each task is expanded at most once, so
// shared dependencies and dependency cycles are both safe.
//
// Nodes are emitted for visited tasks that are top level or shown
// sub-tasks; group tasks get a double border. Every resolved (from, to)
// pair yields at most one edge: the first sighting fixes the arrowhead,
// and later sightings only extend the label. Edge labels list the files
// that connect the two tasks, i.e. file dependencies of the source that
// some target of the sink produces.
//
// Returns ErrUnknownTask as soon as the walk reaches a name the registry
// cannot resolve; the error names the offending task.
func Build(reg *task.Registry, roots []string, opts Options) (*dot.Graph, error) {
	b := &builder{
		reg:    reg,
		opts:   opts,
		graph:  &dot.Graph{Horizontal: opts.Horizontal},
		byPair: make(map[pair]int),
	}
	if err := b.walk(roots); err != nil {
		return nil, err
	}
	return b.graph, nil
}

// pair identifies an edge by its resolved endpoints.
type pair struct {
	from, to string
}

// builder holds the per-run traversal state. A fresh builder is created on
// every Build call, so concurrent builds never share anything.
type builder struct {
	reg    *task.Registry
	opts   Options
	graph  *dot.Graph
	byPair map[pair]int // resolved endpoints -> index into graph.Edges
}

func (b *builder) walk(roots []string) error {
	queue := slices.Clone(roots)
	if len(queue) == 0 {
		queue = b.reg.Names()
	}
	processed := make(map[string]bool, b.reg.Len())

	for len(queue) > 0 {
		name := queue[0]
		queue = queue[1:]

		t, ok := b.reg.Get(name)
		if !ok {
			return fmt.Errorf("%w: %s", ErrUnknownTask, name)
		}
		if processed[t.Name] {
			continue
		}
		processed[t.Name] = true

		if !t.IsSubtask() || b.opts.ShowSubtasks {
			b.graph.Nodes = append(b.graph.Nodes, dot.Node{ID: t.Name, DoubleBorder: t.HasSubtask})
		}

		// Setup tasks first, then task deps, each in declaration order.
		// Labels are computed on the raw task pair before any collapsing.
		for _, sink := range t.SetupTasks {
			label := strings.Join(ConnectingFiles(b.reg, t.Name, sink), "\n")
			if err := b.addEdge(t.Name, sink, dot.ArrowEmpty, label); err != nil {
				return err
			}
			if !processed[sink] {
				queue = append(queue, sink)
			}
		}
		for _, sink := range t.TaskDep {
			label := strings.Join(ConnectingFiles(b.reg, t.Name, sink), "\n")
			if err := b.addEdge(t.Name, sink, dot.ArrowSolid, label); err != nil {
				return err
			}
			if !processed[sink] {
				queue = append(queue, sink)
			}
		}
	}
	return nil
}

// addEdge records a dependency between two raw task names. Both ends are
// resolved first; edges that collapse onto a single node are dropped. A
// repeated resolved pair keeps its original arrowhead and accumulates any
// new label lines in encounter order.
func (b *builder) addEdge(src, sink string, head dot.Arrowhead, label string) error {
	from, err := b.resolve(src)
	if err != nil {
		return err
	}
	to, err := b.resolve(sink)
	if err != nil {
		return err
	}
	if from == to {
		return nil
	}

	key := pair{from, to}
	if i, ok := b.byPair[key]; ok {
		if label != "" {
			e := &b.graph.Edges[i]
			if e.Label == "" {
				e.Label = label
			} else {
				e.Label += "\n" + label
			}
		}
		return nil
	}
	b.byPair[key] = len(b.graph.Edges)
	b.graph.Edges = append(b.graph.Edges, dot.Edge{From: from, To: to, Arrowhead: head, Label: label})
	return nil
}

// resolve maps a task name to the node that represents it: the name itself
// when sub-tasks are shown, otherwise the parent for sub-tasks. Collapsing
// requires a registry lookup, so an unresolvable name fails here.
func (b *builder) resolve(name string) (string, error) {
	if b.opts.ShowSubtasks {
		return name, nil
	}
	t, ok := b.reg.Get(name)
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnknownTask, name)
	}
	if t.SubtaskOf != "" {
		return t.SubtaskOf, nil
	}
	return t.Name, nil
}
