package task

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyTaskName is returned by [NewRegistry] when a task in the plan
	// has no name. Every task must carry a non-empty identifier.
	ErrEmptyTaskName = errors.New("task name must not be empty")

	// ErrDuplicateTask is returned by [NewRegistry] when two tasks share a
	// name. Task names must be unique across the whole plan.
	ErrDuplicateTask = errors.New("duplicate task name")

	// ErrUnknownParent is returned by [NewRegistry] when a task declares a
	// parent (SubtaskOf) that does not appear in the plan itself.
	ErrUnknownParent = errors.New("unknown parent task")
)

// Task describes a single task from a resolved plan: its identity, its
// position in a group (SubtaskOf/HasSubtask), the tasks it depends on, and
// the files it reads and produces. Tasks are plain data carried over from
// the plan resolver; nothing in this module mutates them after construction.
//
// Dependency lists keep the plan's declaration order. TaskDep and SetupTasks
// reference other tasks by name; those references are resolved during graph
// traversal, not here, so a Task may legally point at names the registry has
// never seen (the traversal reports them).
type Task struct {
	Name       string   // Unique identifier (also used as display label)
	SubtaskOf  string   // Parent task name, empty for top-level tasks
	TaskDep    []string // Ordered task dependencies (solid arrowheads)
	SetupTasks []string // Ordered setup-task dependencies (empty arrowheads)
	FileDep    []string // File paths this task reads
	Targets    []string // File paths this task produces

	// HasSubtask reports whether any other task in the plan names this task
	// as its parent. It is derived by NewRegistry and drives the
	// double-border rendering of group tasks.
	HasSubtask bool
}

// IsSubtask reports whether the task belongs to a group, i.e. has a parent.
func (t *Task) IsSubtask() bool { return t.SubtaskOf != "" }

// Registry is a read-only, insertion-ordered view of a resolved plan's
// tasks. The order in which tasks were handed to NewRegistry is preserved
// and drives deterministic whole-plan traversal.
//
// The zero value is not usable - use NewRegistry. A Registry is safe for
// concurrent reads once constructed.
type Registry struct {
	byName map[string]*Task
	order  []string
}

// NewRegistry builds a registry from the tasks of a resolved plan.
// It validates identity only: names must be non-empty and unique, and every
// SubtaskOf reference must name a task in the plan. It also derives
// HasSubtask for each parent.
//
// Returns ErrEmptyTaskName, ErrDuplicateTask or ErrUnknownParent on the
// first violation found. TaskDep and SetupTasks references are deliberately
// not checked; see [Task].
func NewRegistry(tasks []Task) (*Registry, error) {
	r := &Registry{
		byName: make(map[string]*Task, len(tasks)),
		order:  make([]string, 0, len(tasks)),
	}
	for i := range tasks {
		t := tasks[i]
		if t.Name == "" {
			return nil, fmt.Errorf("%w: task at index %d", ErrEmptyTaskName, i)
		}
		if _, exists := r.byName[t.Name]; exists {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateTask, t.Name)
		}
		t.HasSubtask = false
		r.byName[t.Name] = &t
		r.order = append(r.order, t.Name)
	}
	for _, name := range r.order {
		t := r.byName[name]
		if t.SubtaskOf == "" {
			continue
		}
		parent, ok := r.byName[t.SubtaskOf]
		if !ok {
			return nil, fmt.Errorf("%w: %s (parent of %s)", ErrUnknownParent, t.SubtaskOf, t.Name)
		}
		parent.HasSubtask = true
	}
	return r, nil
}

// Get returns the task with the given name and true, or nil and false if
// the plan has no such task.
func (r *Registry) Get(name string) (*Task, bool) {
	t, ok := r.byName[name]
	return t, ok
}

// Names returns all task names in plan order.
// The returned slice is a copy and can be safely modified.
func (r *Registry) Names() []string {
	names := make([]string, len(r.order))
	copy(names, r.order)
	return names
}

// Tasks returns all tasks in plan order.
// The returned slice is freshly allocated, but the task pointers refer to
// the registry's own entries and must be treated as read-only.
func (r *Registry) Tasks() []*Task {
	tasks := make([]*Task, len(r.order))
	for i, name := range r.order {
		tasks[i] = r.byName[name]
	}
	return tasks
}

// Len returns the number of tasks in the plan.
func (r *Registry) Len() int { return len(r.order) }
