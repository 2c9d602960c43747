package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/spdxgraph/pkg/pipeline"
)

// relationshipsOpts holds the command-line flags shared by the relationships
// and render commands. Only flags the user changed override the config file.
type relationshipsOpts struct {
	noHints    bool   // disable layout hints and the flow directive
	format     string // text output format: easy or dot
	hintStep   int    // offset increment between hinted nodes
	maxMembers int    // identifiers listed per merged node
	detailed   bool   // package counts on merged DOT nodes
}

func (o *relationshipsOpts) register(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&o.noHints, "no-hints", false, "disable layout hints and the flow directive")
	cmd.Flags().IntVar(&o.hintStep, "hint-step", 0, "offset increment between hinted nodes")
	cmd.Flags().IntVar(&o.maxMembers, "max-members", 0, "identifiers listed per merged node")
	cmd.Flags().BoolVar(&o.detailed, "detailed", false, "show package counts on merged nodes (dot)")
}

// apply overrides cfg with the flags set on cmd.
func (o *relationshipsOpts) apply(cmd *cobra.Command, cfg Config) pipeline.Options {
	opts := cfg.PipelineOptions()
	flags := cmd.Flags()
	if flags.Changed("no-hints") {
		opts.Hints = !o.noHints
	}
	if flags.Changed("hint-step") {
		opts.HintStep = o.hintStep
	}
	if flags.Changed("max-members") {
		opts.MaxMembers = o.maxMembers
	}
	if flags.Changed("detailed") {
		opts.Detailed = o.detailed
	}
	return opts
}

// relationshipsCommand creates the relationships command, which prints the
// compacted relationship graph.
func (c *CLI) relationshipsCommand() *cobra.Command {
	var opts relationshipsOpts

	cmd := &cobra.Command{
		Use:   "relationships [file]",
		Short: "Print the compacted relationship graph",
		Long: `Print the relationships between packages as a Graph::Easy description.

Packages with identical inbound and outbound relationships are merged into a
single node listing all of them. Relationships referencing anything other
than a package are skipped. Packages without relationships are merged too
but, having no edges, do not appear in the output.

Pipe the output to graph-easy to draw it:

  spdxgraph relationships sbom.spdx.json | graph-easy --as boxart`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runRelationships(cmd, args[0], &opts)
		},
	}

	opts.register(cmd)
	cmd.Flags().StringVarP(&opts.format, "format", "f", "", "output format: easy (default), dot, json")

	return cmd
}

func (c *CLI) runRelationships(cmd *cobra.Command, path string, opts *relationshipsOpts) error {
	cfg, err := c.loadConfig()
	if err != nil {
		return err
	}

	format := cfg.Relationships.Format
	if cmd.Flags().Changed("format") {
		format = opts.format
	}
	if err := pipeline.ValidateTextFormat(format); err != nil {
		return err
	}

	doc, err := c.readDocument(cmd.InOrStdin(), path, cfg)
	if err != nil {
		return err
	}

	res := c.newRunner().Relationships(cmd.Context(), doc, opts.apply(cmd, cfg))
	c.logResult(res)
	return res.WriteText(cmd.OutOrStdout(), format)
}

// logResult reports compaction statistics at debug level.
func (c *CLI) logResult(res *pipeline.Result) {
	s := res.Stats
	c.Logger.Debug("compacted graph",
		"edges", s.Edges,
		"merged", s.Merged,
		"skipped", s.Unknown,
		"rounds", s.Rounds,
		"duration", s.Duration)
	if s.Ambiguous > 0 {
		c.Logger.Warn("some labels are still ambiguous", "packages", s.Ambiguous)
	}
}
