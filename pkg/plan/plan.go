package plan

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/taskdot/taskdot/pkg/task"
)

// Format identifies a plan file encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

var (
	// ErrUnsupportedFormat is returned when a plan path has an extension
	// no decoder handles, or [Read] is given an unknown format.
	ErrUnsupportedFormat = errors.New("unsupported plan format")

	// ErrNoTasks is returned for a plan whose task list is empty or
	// missing. An empty plan almost always means the wrong file was
	// passed, so it is rejected rather than rendered as an empty graph.
	ErrNoTasks = errors.New("plan contains no tasks")
)

// planFile is the wire shape of an exported plan snapshot: a single
// top-level task list.
type planFile struct {
	Tasks []planTask `json:"tasks" yaml:"tasks" toml:"tasks"`
}

// planTask mirrors the field names task runners use in their export
// format. Only name is required.
type planTask struct {
	Name       string   `json:"name" yaml:"name" toml:"name"`
	SubtaskOf  string   `json:"subtask_of" yaml:"subtask_of" toml:"subtask_of"`
	TaskDep    []string `json:"task_dep" yaml:"task_dep" toml:"task_dep"`
	SetupTasks []string `json:"setup_tasks" yaml:"setup_tasks" toml:"setup_tasks"`
	FileDep    []string `json:"file_dep" yaml:"file_dep" toml:"file_dep"`
	Targets    []string `json:"targets" yaml:"targets" toml:"targets"`
}

// Load reads the plan file at path and returns its validated registry.
// The format is chosen by extension: .json, .yaml/.yml or .toml.
func Load(path string) (*task.Registry, error) {
	format, err := formatForPath(path)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	reg, err := Read(f, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return reg, nil
}

// Read decodes a plan in the given format from r and returns its
// validated registry. Use Load for files.
//
// All decoders are strict about shape: unknown fields are rejected so a
// misspelled key fails loudly instead of silently dropping data.
func Read(r io.Reader, format Format) (*task.Registry, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read plan: %w", err)
	}

	var pf planFile
	switch format {
	case FormatJSON:
		err = unmarshalJSON(data, &pf)
	case FormatYAML:
		err = unmarshalYAML(data, &pf)
	case FormatTOML:
		err = unmarshalTOML(data, &pf)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
	if err != nil {
		return nil, fmt.Errorf("parse %s plan: %w", format, err)
	}
	if len(pf.Tasks) == 0 {
		return nil, ErrNoTasks
	}

	tasks := make([]task.Task, len(pf.Tasks))
	for i, pt := range pf.Tasks {
		tasks[i] = task.Task{
			Name:       pt.Name,
			SubtaskOf:  pt.SubtaskOf,
			TaskDep:    pt.TaskDep,
			SetupTasks: pt.SetupTasks,
			FileDep:    pt.FileDep,
			Targets:    pt.Targets,
		}
	}
	reg, err := task.NewRegistry(tasks)
	if err != nil {
		return nil, fmt.Errorf("invalid plan: %w", err)
	}
	return reg, nil
}

func formatForPath(path string) (Format, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}
}
