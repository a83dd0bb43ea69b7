package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	nsio "github.com/matzehuels/nodespacing/pkg/io"
)

// checkCommand creates the check command for validating node descriptions.
func (c *CLI) checkCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check [nodes.toml]",
		Short: "Validate a node description file",
		Long: `Validate a node description file without laying it out.

The check command decodes the file, resolves every node's options and runs the
same validation the layout command does: known option names, non-negative
sizes and spacings, unique port ids, concrete port sides and ratios in [0, 1].`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runCheck(cmd.Context(), args[0])
		},
	}
	return cmd
}

// runCheck reads and validates the description file.
func (c *CLI) runCheck(ctx context.Context, input string) error {
	nodes, err := nsio.ReadFile(ctx, input)
	if err != nil {
		return err
	}
	loggerFromContext(ctx).Debug("checked file", "path", input, "nodes", len(nodes))

	printSuccess(c.out, "%s is valid", input)
	printKeyValue(c.out, 1, "nodes", fmt.Sprint(len(nodes)))
	printNextStep(c.out, "Lay out", appName+" layout "+input)
	return nil
}
