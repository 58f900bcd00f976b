// Package plan loads exported plan snapshots into a task registry.
//
// # Overview
//
// A task runner resolves its task definitions (actions, selectors,
// parameterized creators) into a concrete task list and exports that list
// as a plan snapshot. This package is the import side of that seam: it
// decodes a snapshot and hands back a validated [task.Registry]. It never
// interprets task-definition features itself.
//
// # Formats
//
// [Load] picks the decoder from the file extension; [Read] takes the
// format explicitly. Three encodings carry the same shape:
//
// JSON (.json):
//
//	{
//	  "tasks": [
//	    {"name": "compile", "task_dep": ["fetch"], "targets": ["app.bin"]},
//	    {"name": "fetch"}
//	  ]
//	}
//
// YAML (.yaml, .yml):
//
//	tasks:
//	  - name: compile
//	    task_dep: [fetch]
//	    targets: [app.bin]
//	  - name: fetch
//
// TOML (.toml):
//
//	[[tasks]]
//	name = "compile"
//	task_dep = ["fetch"]
//	targets = ["app.bin"]
//
//	[[tasks]]
//	name = "fetch"
//
// # Task Fields
//
// Required:
//   - name: unique task identifier
//
// Optional:
//   - subtask_of: parent task name for sub-tasks of a group
//   - task_dep: task names this task depends on
//   - setup_tasks: task names that prepare this task's environment
//   - file_dep: file paths this task reads
//   - targets: file paths this task produces
//
// # Strictness
//
// Unknown fields are rejected in every format, as is trailing content
// after the plan document. Identity validation (unique non-empty names,
// resolvable subtask_of parents) comes from [task.NewRegistry] and its
// errors pass through unchanged, so errors.Is works against the task
// package sentinels. Dangling task_dep or setup_tasks references are
// accepted here; the graph traversal reports them when reached.
package plan
