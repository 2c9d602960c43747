package cli

import (
	"bufio"
	"context"
	"io"

	"github.com/spf13/cobra"
)

// packagesCommand creates the packages command, which prints one
// disambiguated label per package in document order.
func (c *CLI) packagesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "packages [file]",
		Short: "Print one label per package",
		Long: `Print one label per package, in document order.

Labels are derived from the package URL, file name, or name and version.
Packages whose labels collide are shown with more detail, down to their
SPDX identifier.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runPackages(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout(), args[0])
		},
	}
}

func (c *CLI) runPackages(ctx context.Context, stdin io.Reader, w io.Writer, path string) error {
	cfg, err := c.loadConfig()
	if err != nil {
		return err
	}
	doc, err := c.readDocument(stdin, path, cfg)
	if err != nil {
		return err
	}

	lines, _ := c.newRunner().Packages(ctx, doc)

	bw := bufio.NewWriter(w)
	for _, l := range lines {
		bw.WriteString(l)
		bw.WriteByte('\n')
	}
	return bw.Flush()
}
