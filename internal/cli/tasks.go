package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/taskdot/taskdot/pkg/plan"
	"github.com/taskdot/taskdot/pkg/task"
)

// tasksCommand creates the tasks command for listing a plan's tasks.
func (c *CLI) tasksCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tasks <plan>",
		Short: "List the tasks of a plan",
		Long:  `List every task in a plan along with its parent, its dependency counts, and the files it reads and writes.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runTasks(args[0])
		},
	}

	return cmd
}

func (c *CLI) runTasks(planPath string) error {
	reg, err := plan.Load(planPath)
	if err != nil {
		return err
	}
	c.Logger.Debugf("Loaded %s: %d tasks", planPath, reg.Len())

	tasks := reg.Tasks()
	rows := make([][]string, 0, len(tasks))
	for _, t := range tasks {
		kind := ""
		switch {
		case t.HasSubtask:
			kind = "group"
		case t.IsSubtask():
			kind = "sub-task"
		}
		rows = append(rows, []string{
			t.Name,
			kind,
			t.SubtaskOf,
			strconv.Itoa(len(t.TaskDep)),
			strconv.Itoa(len(t.SetupTasks)),
			summarizeFiles(t.FileDep),
			summarizeFiles(t.Targets),
		})
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)

	tbl := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Task", "Kind", "Parent", "Deps", "Setup", "Reads", "Writes").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			if row >= len(tasks) {
				return lipgloss.NewStyle()
			}

			t := tasks[row]
			if col == 0 && t.HasSubtask {
				return lipgloss.NewStyle().Foreground(colorCyan).Bold(true)
			}
			if t.IsSubtask() {
				return lipgloss.NewStyle().Foreground(colorGray)
			}
			return lipgloss.NewStyle()
		})

	fmt.Println(tbl.Render())
	printDetail("%d tasks", reg.Len())

	if n := danglingDeps(reg); n > 0 {
		printWarning("%d dependencies do not name a task in the plan", n)
	}

	return nil
}

// summarizeFiles shortens a file list for table display.
func summarizeFiles(files []string) string {
	const max = 3
	if len(files) == 0 {
		return "—"
	}
	if len(files) <= max {
		return strings.Join(files, ", ")
	}
	return fmt.Sprintf("%s, +%d more", strings.Join(files[:max], ", "), len(files)-max)
}

// danglingDeps counts task and setup dependencies that do not name a task in
// the plan. Loading tolerates them, but a graph walk that reaches one fails
// unless sub-tasks are shown, where the sink becomes an implicit node.
func danglingDeps(reg *task.Registry) int {
	n := 0
	for _, t := range reg.Tasks() {
		for _, dep := range t.TaskDep {
			if _, ok := reg.Get(dep); !ok {
				n++
			}
		}
		for _, dep := range t.SetupTasks {
			if _, ok := reg.Get(dep); !ok {
				n++
			}
		}
	}
	return n
}
