package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

// legendCommand creates the legend command explaining graph notation.
func (c *CLI) legendCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "legend",
		Short: "Explain the symbols used in generated graphs",
		Long:  `Explain the node and arrowhead conventions used in graphs generated by the graph command.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLegend()
		},
	}

	return cmd
}

func runLegend() error {
	single := lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(colorCyan).
		Padding(0, 1).
		Render("task")
	group := lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(colorCyan).
		Padding(0, 1).
		Render("group")

	fmt.Println(StyleTitle.Render("Graph legend"))
	printNewline()
	fmt.Println(lipgloss.JoinHorizontal(lipgloss.Center, single, "   ", group))
	printNewline()
	fmt.Println("  " + StyleValue.Render("task") + "   " + StyleDim.Render("a plain task, drawn with a single border"))
	fmt.Println("  " + StyleValue.Render("group") + "  " + StyleDim.Render("a task with sub-tasks, drawn with a double border"))
	printNewline()
	fmt.Println("  " + StyleValue.Render("build ─▶ compile") + "  " + StyleDim.Render("build lists compile in task_dep; solid arrowhead"))
	fmt.Println("  " + StyleValue.Render("build ─▷ env") + "      " + StyleDim.Render("build lists env in setup_tasks; empty arrowhead"))
	printNewline()
	printDetail("Nodes are filled lightblue2. An edge label names the files the")
	printDetail("task reads from among its dependency's targets.")
	printNewline()
	printNextStep("Draw a graph", appName+" graph plan.json")

	return nil
}
