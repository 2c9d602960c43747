// Package cli implements the spdxgraph command-line interface.
//
// # Commands
//
//   - packages: print one label per package
//   - relationships: print the compacted relationship graph (Graph::Easy or DOT)
//   - render: render the compacted graph to SVG, PNG or PDF
//   - stats: summarize compaction and labelling of a document
//   - browse: interactively browse package labels
//   - completion: generate shell completion scripts
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging on stderr.
// Command output always goes to stdout.
package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/spdxgraph/pkg/buildinfo"
	"github.com/matzehuels/spdxgraph/pkg/errors"
	"github.com/matzehuels/spdxgraph/pkg/pipeline"
	"github.com/matzehuels/spdxgraph/pkg/spdx"
)

// =============================================================================
// Constants
// =============================================================================

// appName is the application name used for display.
const appName = "spdxgraph"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	errOut      io.Writer // spinners and other terminal decorations
	configPath  string
	inputFormat string
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level), errOut: w}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
// Running it without a subcommand prints help and fails with UNSUPPORTED.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "Spdxgraph shows SPDX documents as compact graphs",
		Long:         `Spdxgraph renders the packages and relationships of an SPDX software bill of materials as a compact, human-readable graph description. Packages with identical relationships are merged into one node and labels are derived from package URLs.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			_ = cmd.Help()
			return errors.New(errors.ErrCodeUnsupported, "no command given")
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "TOML configuration file")
	root.PersistentFlags().StringVar(&c.inputFormat, "input-format", "", "input format: auto (default), json, yaml")

	// Register all subcommands
	root.AddCommand(c.packagesCommand())
	root.AddCommand(c.relationshipsCommand())
	root.AddCommand(c.renderCommand())
	root.AddCommand(c.statsCommand())
	root.AddCommand(c.browseCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Shared Helpers
// =============================================================================

// newRunner creates a pipeline runner for CLI use.
func (c *CLI) newRunner() *pipeline.Runner {
	return pipeline.NewRunner(c.Logger)
}

// loadConfig reads the --config file, or returns defaults when none is set.
func (c *CLI) loadConfig() (Config, error) {
	if c.configPath == "" {
		return DefaultConfig(), nil
	}
	cfg, err := LoadConfig(c.configPath)
	if err != nil {
		return Config{}, err
	}
	c.Logger.Debug("loaded config", "path", c.configPath)
	return cfg, nil
}

// readDocument decodes the SPDX document at path. The path "-" reads stdin.
func (c *CLI) readDocument(stdin io.Reader, path string, cfg Config) (*spdx.Document, error) {
	name := c.inputFormat
	if name == "" {
		name = cfg.Input.Format
	}
	format, err := spdx.ParseFormat(name)
	if err != nil {
		return nil, err
	}

	prog := newProgress(c.Logger)
	var doc *spdx.Document
	if path == "-" {
		doc, err = spdx.Read(stdin, format)
	} else {
		doc, err = spdx.ReadFile(path, format)
	}
	if err != nil {
		return nil, err
	}
	c.Logger.Debug("read document", "path", path, "packages", len(doc.Packages), "relationships", len(doc.Relationships))
	prog.debug("Loaded " + path)
	return doc, nil
}
