// Package graph turns a plan's task registry into a renderable dependency
// graph.
//
// # Overview
//
// [Build] performs a breadth-first walk over setup-task and task
// dependencies, starting from a chosen set of roots or from the whole
// plan. The walk itself always runs on the full task structure; what
// changes with [Options.ShowSubtasks] is how visited tasks map to nodes.
// With sub-tasks hidden, each sub-task is represented by its parent, edges
// are rewired to the parent, and edges that would loop onto a single node
// disappear.
//
// # Edge Accumulation
//
// Several raw dependencies can land on the same resolved node pair,
// especially once sub-tasks collapse. The builder keeps one edge per pair:
// the first sighting decides the arrowhead (hollow for setup tasks, solid
// for task deps), and every later sighting that carries connecting files
// appends them to the label. [ConnectingFiles] computes those labels from
// the file declarations of the raw task pair.
//
// # Failure Mode
//
// A resolved plan must define every task it references. The walk treats a
// dangling name, whether a root or a dependency, as fatal and returns
// [ErrUnknownTask] naming it. It does not validate anything else; in
// particular, dependency cycles are walked once and rendered as they are.
package graph
