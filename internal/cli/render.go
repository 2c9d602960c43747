package cli

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/spdxgraph/pkg/errors"
	"github.com/matzehuels/spdxgraph/pkg/pipeline"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	relationshipsOpts
	output string // output file path; stdout when empty
}

// renderCommand creates the render command for drawing the compacted graph
// with Graphviz.
//
// The image format is taken from --format, then from the extension of
// --output, then from the config file (svg by default).
func (c *CLI) renderCommand() *cobra.Command {
	var opts renderOpts

	cmd := &cobra.Command{
		Use:   "render [file]",
		Short: "Render the compacted relationship graph to SVG, PNG or PDF",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runRender(cmd, args[0], &opts)
		},
	}

	opts.register(cmd)
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default stdout)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", "", "image format: svg (default), png, pdf")

	return cmd
}

func (c *CLI) runRender(cmd *cobra.Command, path string, opts *renderOpts) error {
	cfg, err := c.loadConfig()
	if err != nil {
		return err
	}

	format := renderFormat(cmd.Flags().Changed("format"), opts.format, opts.output, cfg.Render.Format)
	if err := pipeline.ValidateImageFormat(format); err != nil {
		return err
	}
	if opts.output != "" {
		if err := errors.ValidateOutputPath(opts.output, format); err != nil {
			return err
		}
	}

	doc, err := c.readDocument(cmd.InOrStdin(), path, cfg)
	if err != nil {
		return err
	}
	res := c.newRunner().Relationships(cmd.Context(), doc, opts.apply(cmd, cfg))
	c.logResult(res)

	data, err := c.renderWithSpinner(cmd.Context(), res, format, opts.output != "")
	if err != nil {
		return err
	}

	if opts.output == "" {
		_, err := cmd.OutOrStdout().Write(data)
		return err
	}
	if err := os.WriteFile(opts.output, data, 0o644); err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	printSuccess(out, "Rendered %d nodes, %d edges", len(res.Nodes), len(res.Edges))
	printFile(out, opts.output)
	return nil
}

// renderWithSpinner renders res, showing a spinner on stderr when the
// output does not go to stdout.
func (c *CLI) renderWithSpinner(ctx context.Context, res *pipeline.Result, format string, spin bool) ([]byte, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	prog := newProgress(c.Logger)
	if !spin {
		data, err := res.Render(ctx, format)
		if err == nil {
			prog.debug("Rendered " + format)
		}
		return data, err
	}

	s := newSpinnerWithContext(ctx, c.errOut, "Rendering "+format+"...")
	s.Start()
	data, err := res.Render(ctx, format)
	s.Stop()
	if err != nil {
		return nil, err
	}
	prog.done("Rendered " + format)
	return data, nil
}

// renderFormat picks the image format for the render command.
func renderFormat(flagSet bool, flag, output, configured string) string {
	if flagSet {
		return flag
	}
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(output)), ".")
	if pipeline.ValidateImageFormat(ext) == nil {
		return ext
	}
	if configured != "" {
		return configured
	}
	return pipeline.FormatSVG
}
