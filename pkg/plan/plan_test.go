package plan

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/taskdot/taskdot/pkg/task"
)

func TestRead(t *testing.T) {
	tests := []struct {
		name      string
		format    Format
		input     string
		wantErr   bool
		wantErrIs error
		check     func(t *testing.T, r *task.Registry)
	}{
		{
			name:   "JSONFullPlan",
			format: FormatJSON,
			input: `{
				"tasks": [
					{"name": "compile"},
					{"name": "compile:cli", "subtask_of": "compile", "task_dep": ["fetch"], "file_dep": ["main.go"]},
					{"name": "fetch", "targets": ["deps.lock"], "setup_tasks": ["auth"]},
					{"name": "auth"}
				]
			}`,
			check: func(t *testing.T, r *task.Registry) {
				if r.Len() != 4 {
					t.Fatalf("Len = %d, want 4", r.Len())
				}
				parent, _ := r.Get("compile")
				if !parent.HasSubtask {
					t.Error("compile.HasSubtask = false, want true")
				}
				fetch, _ := r.Get("fetch")
				if len(fetch.SetupTasks) != 1 || fetch.SetupTasks[0] != "auth" {
					t.Errorf("fetch.SetupTasks = %v", fetch.SetupTasks)
				}
			},
		},
		{
			name:   "YAMLFullPlan",
			format: FormatYAML,
			input: `tasks:
  - name: compile
  - name: "compile:cli"
    subtask_of: compile
    task_dep: [fetch]
  - name: fetch
`,
			check: func(t *testing.T, r *task.Registry) {
				if r.Len() != 3 {
					t.Fatalf("Len = %d, want 3", r.Len())
				}
				sub, _ := r.Get("compile:cli")
				if sub.SubtaskOf != "compile" {
					t.Errorf("SubtaskOf = %q", sub.SubtaskOf)
				}
			},
		},
		{
			name:   "TOMLFullPlan",
			format: FormatTOML,
			input: `
[[tasks]]
name = "compile"
targets = ["app.bin"]

[[tasks]]
name = "test"
task_dep = ["compile"]
file_dep = ["app.bin"]
`,
			check: func(t *testing.T, r *task.Registry) {
				if r.Len() != 2 {
					t.Fatalf("Len = %d, want 2", r.Len())
				}
				test, _ := r.Get("test")
				if len(test.FileDep) != 1 || test.FileDep[0] != "app.bin" {
					t.Errorf("test.FileDep = %v", test.FileDep)
				}
			},
		},
		{
			name:    "JSONUnknownField",
			format:  FormatJSON,
			input:   `{"tasks": [{"name": "a", "comand": []}]}`,
			wantErr: true,
		},
		{
			name:   "YAMLUnknownField",
			format: FormatYAML,
			input: `tasks:
  - name: a
    comand: []
`,
			wantErr: true,
		},
		{
			name:   "TOMLUnknownKey",
			format: FormatTOML,
			input: `
[[tasks]]
name = "a"
comand = []
`,
			wantErr: true,
		},
		{
			name:    "JSONTrailingData",
			format:  FormatJSON,
			input:   `{"tasks": [{"name": "a"}]} {"more": true}`,
			wantErr: true,
		},
		{
			name:   "YAMLSecondDocument",
			format: FormatYAML,
			input: `tasks:
  - name: a
---
tasks:
  - name: b
`,
			wantErr: true,
		},
		{
			name:    "JSONMalformed",
			format:  FormatJSON,
			input:   `{tasks: nope}`,
			wantErr: true,
		},
		{
			name:      "EmptyTaskList",
			format:    FormatJSON,
			input:     `{"tasks": []}`,
			wantErrIs: ErrNoTasks,
		},
		{
			name:      "MissingTaskList",
			format:    FormatJSON,
			input:     `{}`,
			wantErrIs: ErrNoTasks,
		},
		{
			name:      "DuplicateTaskSurfacesSentinel",
			format:    FormatJSON,
			input:     `{"tasks": [{"name": "a"}, {"name": "a"}]}`,
			wantErrIs: task.ErrDuplicateTask,
		},
		{
			name:      "UnknownParentSurfacesSentinel",
			format:    FormatYAML,
			input:     "tasks:\n  - name: a\n    subtask_of: ghost\n",
			wantErrIs: task.ErrUnknownParent,
		},
		{
			name:      "UnknownFormat",
			format:    Format("ini"),
			input:     `whatever`,
			wantErrIs: ErrUnsupportedFormat,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := Read(strings.NewReader(tt.input), tt.format)

			if tt.wantErrIs != nil {
				if !errors.Is(err, tt.wantErrIs) {
					t.Fatalf("Read error = %v, want %v", err, tt.wantErrIs)
				}
				return
			}
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("Read: %v", err)
			}
			if tt.check != nil {
				tt.check(t, r)
			}
		})
	}
}

func TestFormatsAgree(t *testing.T) {
	jsonIn := `{"tasks": [{"name": "b", "task_dep": ["a"]}, {"name": "a"}]}`
	yamlIn := "tasks:\n  - name: b\n    task_dep: [a]\n  - name: a\n"
	tomlIn := "[[tasks]]\nname = \"b\"\ntask_dep = [\"a\"]\n\n[[tasks]]\nname = \"a\"\n"

	fromJSON, err := Read(strings.NewReader(jsonIn), FormatJSON)
	if err != nil {
		t.Fatalf("json: %v", err)
	}
	fromYAML, err := Read(strings.NewReader(yamlIn), FormatYAML)
	if err != nil {
		t.Fatalf("yaml: %v", err)
	}
	fromTOML, err := Read(strings.NewReader(tomlIn), FormatTOML)
	if err != nil {
		t.Fatalf("toml: %v", err)
	}

	want := fromJSON.Names()
	for _, got := range [][]string{fromYAML.Names(), fromTOML.Names()} {
		if len(got) != len(want) {
			t.Fatalf("names = %v, want %v", got, want)
		}
		for i := range want {
			if got[i] != want[i] {
				t.Errorf("names[%d] = %q, want %q", i, got[i], want[i])
			}
		}
	}
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		content  string
	}{
		{
			name:     "JSON",
			filename: "plan.json",
			content:  `{"tasks": [{"name": "a"}]}`,
		},
		{
			name:     "YAML",
			filename: "plan.yaml",
			content:  "tasks:\n  - name: a\n",
		},
		{
			name:     "YMLAlias",
			filename: "plan.yml",
			content:  "tasks:\n  - name: a\n",
		},
		{
			name:     "TOML",
			filename: "plan.toml",
			content:  "[[tasks]]\nname = \"a\"\n",
		},
		{
			name:     "UppercaseExtension",
			filename: "plan.JSON",
			content:  `{"tasks": [{"name": "a"}]}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), tt.filename)
			if err := os.WriteFile(path, []byte(tt.content), 0644); err != nil {
				t.Fatal(err)
			}

			r, err := Load(path)
			if err != nil {
				t.Fatalf("Load: %v", err)
			}
			if _, ok := r.Get("a"); !ok {
				t.Error("task a not found after load")
			}
		})
	}
}

func TestLoadUnsupportedExtension(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plan.ini")
	if err := os.WriteFile(path, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	_, err := Load(path)
	if !errors.Is(err, ErrUnsupportedFormat) {
		t.Fatalf("Load error = %v, want ErrUnsupportedFormat", err)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.json"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	if !strings.Contains(err.Error(), "absent.json") {
		t.Errorf("error does not name the path: %v", err)
	}
}

func TestLoadNamesPathOnParseError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.json")
	if err := os.WriteFile(path, []byte(`{"tasks": [`), 0644); err != nil {
		t.Fatal(err)
	}

	_, err := Load(path)
	if err == nil {
		t.Fatal("expected error for broken plan")
	}
	if !strings.Contains(err.Error(), "broken.json") {
		t.Errorf("error does not name the path: %v", err)
	}
}
