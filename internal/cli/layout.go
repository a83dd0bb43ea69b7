package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/nodespacing/pkg/graph"
	nsio "github.com/matzehuels/nodespacing/pkg/io"
	"github.com/matzehuels/nodespacing/pkg/pipeline"
)

// layoutCommand creates the layout command for laying out node descriptions.
func (c *CLI) layoutCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "layout [nodes.toml]",
		Short: "Compute node sizes and port and label positions",
		Long: `Compute node sizes and port and label positions.

The layout command reads a node description file, lays out the interior of
every node it lists and prints a report with each node's size, padding, port
positions and label positions. Nodes are laid out independently and in
parallel.

Nothing is written back to the description file.

Flag defaults can be set in the environment as NODESPACING_LAYOUT_CONCURRENCY
and NODESPACING_LAYOUT_QUIET.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runLayout(cmd.Context(), args[0],
				c.settings.GetInt("layout.concurrency"),
				c.settings.GetBool("layout.quiet"))
		},
	}

	cmd.Flags().IntP("concurrency", "j", pipeline.DefaultConcurrency(), "number of nodes laid out in parallel")
	cmd.Flags().BoolP("quiet", "q", false, "print only the summary")
	c.bindFlag("layout.concurrency", cmd.Flags().Lookup("concurrency"))
	c.bindFlag("layout.quiet", cmd.Flags().Lookup("quiet"))

	return cmd
}

// runLayout reads the description file, lays out its nodes and prints the report.
func (c *CLI) runLayout(ctx context.Context, input string, concurrency int, quiet bool) error {
	logger := loggerFromContext(ctx)

	prog := newProgress(logger)
	nodes, err := nsio.ReadFile(ctx, input)
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Read %d nodes", len(nodes)))

	if len(nodes) == 0 {
		printWarning(c.out, "no nodes in %s", input)
		return nil
	}

	runner, err := c.newRunner(concurrency)
	if err != nil {
		return err
	}
	adapters := make([]graph.NodeAdapter, len(nodes))
	for i, n := range nodes {
		adapters[i] = n
	}

	stats, err := runner.Run(ctx, adapters)
	if err != nil {
		return err
	}

	if !quiet {
		for _, n := range nodes {
			printNodeReport(c.out, n)
		}
		fmt.Fprintln(c.out)
	}
	printSuccess(c.out, "Layout complete")
	printFile(c.out, input)
	printStats(c.out, stats)
	return nil
}
