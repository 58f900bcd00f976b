// Package task models the tasks of a resolved automation plan and the
// read-only registry the graph builder walks.
//
// # Overview
//
// A task runner resolves its task definitions into a flat list of tasks:
// each one has a unique name, optionally a parent (group) task, ordered
// task and setup-task dependencies, and the files it reads (FileDep) and
// produces (Targets). This package holds that list in a [Registry], an
// immutable insertion-ordered view constructed once per run.
//
// # Validation Contract
//
// [NewRegistry] validates identity only: non-empty unique names and
// resolvable SubtaskOf parents. Dependency references (TaskDep,
// SetupTasks) are the resolver's responsibility and stay unchecked here;
// the graph traversal reports any dangling reference it actually reaches.
// This split keeps loading cheap and mirrors how task runners treat an
// unknown dependency: an error at use, not at parse.
//
// # Ordering
//
// The registry preserves the order tasks were handed in. Whole-plan
// traversals seed from [Registry.Names], so two runs over the same plan
// produce identical output.
//
// # Concurrency
//
// A Registry is immutable after construction and safe for concurrent
// reads. The Task pointers it hands out must be treated as read-only.
package task
