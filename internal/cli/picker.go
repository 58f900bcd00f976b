package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/taskdot/taskdot/pkg/task"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// =============================================================================
// taskListModel - Interactive root task selection
// =============================================================================

// taskListModel is the bubbletea model for picking the root tasks of a graph.
// Space toggles tasks on and off; enter confirms the selection. Confirming
// with nothing toggled means the whole plan.
type taskListModel struct {
	tasks    []*task.Task
	selected map[int]bool
	cursor   int
	done     bool
	height   int
	offset   int
}

// newTaskListModel creates a new task list model.
func newTaskListModel(tasks []*task.Task) taskListModel {
	return taskListModel{
		tasks:    tasks,
		selected: make(map[int]bool),
		height:   15,
	}
}

func (m taskListModel) Init() tea.Cmd {
	return nil
}

func (m taskListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
				if m.cursor < m.offset {
					m.offset = m.cursor
				}
			}
		case "down", "j":
			if m.cursor < len(m.tasks)-1 {
				m.cursor++
				if m.cursor >= m.offset+m.height {
					m.offset = m.cursor - m.height + 1
				}
			}
		case " ":
			m.selected[m.cursor] = !m.selected[m.cursor]
		case "enter":
			m.done = true
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.height = msg.Height - 6
		if m.height < 5 {
			m.height = 5
		}
	}
	return m, nil
}

func (m taskListModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Select root tasks"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  space toggle  ⏎ confirm  q quit"))
	b.WriteString("\n\n")

	end := m.offset + m.height
	if end > len(m.tasks) {
		end = len(m.tasks)
	}

	for i := m.offset; i < end; i++ {
		t := m.tasks[i]

		cursor := "  "
		if i == m.cursor {
			cursor = "▸ "
		}

		mark := "[ ]"
		if m.selected[i] {
			mark = "[x]"
		}

		name := t.Name
		if t.HasSubtask {
			name += " (group)"
		}

		style := listNormalStyle
		switch {
		case i == m.cursor:
			style = listSelectedStyle
		case t.IsSubtask():
			style = listDimStyle
		}
		b.WriteString(cursor + style.Render(mark+" "+name) + "\n")
	}

	b.WriteString("\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.cursor+1, len(m.tasks))))

	return b.String()
}

// pickTasks runs the interactive root selector over the plan's tasks.
// The second return is false when the user quit without confirming.
func pickTasks(reg *task.Registry) ([]string, bool, error) {
	p := tea.NewProgram(newTaskListModel(reg.Tasks()))
	finalModel, err := p.Run()
	if err != nil {
		return nil, false, err
	}

	fm, ok := finalModel.(taskListModel)
	if !ok || !fm.done {
		return nil, false, nil
	}

	var roots []string
	for i, t := range fm.tasks {
		if fm.selected[i] {
			roots = append(roots, t.Name)
		}
	}
	return roots, true, nil
}
