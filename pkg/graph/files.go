package graph

import (
	"path/filepath"
	"slices"

	"github.com/taskdot/taskdot/pkg/task"
)

// ConnectingFiles reports which files link two tasks: the base names of
// src's file dependencies that some target of sink produces. The result is
// sorted and free of duplicates. Comparison is by base name only, so
// "build/app.bin" matches "dist/app.bin".
//
// Returns nil when either task is missing from the registry or when the
// tasks share no files. Missing tasks are tolerated here because dangling
// dependency references are the traversal's concern, not the label's.
func ConnectingFiles(reg *task.Registry, src, sink string) []string {
	srcTask, ok := reg.Get(src)
	if !ok {
		return nil
	}
	sinkTask, ok := reg.Get(sink)
	if !ok {
		return nil
	}
	if len(srcTask.FileDep) == 0 || len(sinkTask.Targets) == 0 {
		return nil
	}

	produced := make(map[string]bool, len(sinkTask.Targets))
	for _, t := range sinkTask.Targets {
		produced[filepath.Base(t)] = true
	}

	var files []string
	seen := make(map[string]bool)
	for _, f := range srcTask.FileDep {
		base := filepath.Base(f)
		if produced[base] && !seen[base] {
			seen[base] = true
			files = append(files, base)
		}
	}
	slices.Sort(files)
	return files
}
