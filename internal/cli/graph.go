package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/taskdot/taskdot/pkg/dot"
	"github.com/taskdot/taskdot/pkg/graph"
	"github.com/taskdot/taskdot/pkg/plan"
)

// graphOpts holds the flag values for the graph command.
type graphOpts struct {
	output       string
	showSubtasks bool
	reverse      bool
	horizontal   bool
	interactive  bool
}

// graphCommand creates the graph command for rendering dot files.
func (c *CLI) graphCommand() *cobra.Command {
	var opts graphOpts

	cmd := &cobra.Command{
		Use:   "graph <plan> [task...]",
		Short: "Render a plan's dependency graph as a Graphviz dot file",
		Long: `Render the task dependency graph of a plan in the Graphviz dot language.

With no task arguments the whole plan is drawn. Naming tasks restricts the
graph to those tasks and everything reachable from them.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runGraph(args[0], args[1:], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "name of the generated file (default <task>.dot for a single task, tasks.dot otherwise)")
	cmd.Flags().BoolVar(&opts.showSubtasks, "show-subtasks", false, "draw each sub-task as its own node instead of collapsing it into the parent")
	cmd.Flags().BoolVar(&opts.reverse, "reverse", false, "point arrows in execution order instead of dependency order")
	cmd.Flags().BoolVar(&opts.horizontal, "horizontal", false, "lay the graph out left to right instead of top down")
	cmd.Flags().BoolVarP(&opts.interactive, "interactive", "i", false, "pick the root tasks from a list (when none are given)")

	return cmd
}

func (c *CLI) runGraph(planPath string, roots []string, opts *graphOpts) error {
	prog := newProgress(c.Logger)

	reg, err := plan.Load(planPath)
	if err != nil {
		return err
	}
	c.Logger.Debugf("Loaded %s: %d tasks", planPath, reg.Len())

	if opts.interactive && len(roots) == 0 {
		printInfo("%s tasks in %s", StyleHighlight.Render(fmt.Sprintf("%d", reg.Len())), planPath)
		printNewline()

		picked, ok, err := pickTasks(reg)
		if err != nil {
			return err
		}
		if !ok {
			printDetail("No tasks selected")
			return nil
		}
		roots = picked
	}

	g, err := graph.Build(reg, roots, graph.Options{
		ShowSubtasks: opts.showSubtasks,
		Horizontal:   opts.horizontal,
	})
	if err != nil {
		return err
	}
	if opts.reverse {
		g = g.Reverse()
	}
	c.Logger.Debugf("Built graph: %d nodes, %d edges", len(g.Nodes), len(g.Edges))

	out := opts.output
	if out == "" {
		out = dot.DefaultFilename(roots)
	}
	if err := dot.WriteFile(g, out); err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Rendered %s", out))

	printSuccess("Generated %s", out)
	printStats(len(g.Nodes), len(g.Edges))
	printNextStep("Render it", fmt.Sprintf("dot -Tpng %s -o %s.png", out, strings.TrimSuffix(out, ".dot")))

	return nil
}
