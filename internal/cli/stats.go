package cli

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/matzehuels/spdxgraph/pkg/pipeline"
)

// statsCommand creates the stats command, which summarizes how a document
// compacts without printing the graph itself.
func (c *CLI) statsCommand() *cobra.Command {
	var opts relationshipsOpts

	cmd := &cobra.Command{
		Use:   "stats [file]",
		Short: "Summarize packages, relationships and merged nodes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}
			doc, err := c.readDocument(cmd.InOrStdin(), args[0], cfg)
			if err != nil {
				return err
			}
			res := c.newRunner().Relationships(cmd.Context(), doc, opts.apply(cmd, cfg))
			printSummary(cmd.OutOrStdout(), args[0], res)
			return nil
		},
	}

	opts.register(cmd)
	return cmd
}

// printSummary prints the statistics of res.
func printSummary(w io.Writer, path string, res *pipeline.Result) {
	s := res.Stats
	io.WriteString(w, StyleTitle.Render(path)+"\n")
	printCount(w, "packages", s.Packages)
	printCount(w, "relationships", s.Relationships)
	printCount(w, "skipped", s.Unknown)
	printCount(w, "redundant", s.Redundant)
	printCount(w, "edges", s.Edges)
	printCount(w, "nodes", s.Classes)
	printCount(w, "merged nodes", s.Merged)
	printCount(w, "label rounds", s.Rounds)
	printKeyValue(w, "label detail", s.Detail.String())
	if s.Ambiguous > 0 {
		printWarning(w, "%d labels are still ambiguous", s.Ambiguous)
	}
}
