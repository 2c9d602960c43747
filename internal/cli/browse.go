package cli

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

// browseCommand creates the browse command, an interactive list of package
// labels with their identifiers, purls and merged peers.
func (c *CLI) browseCommand() *cobra.Command {
	var opts relationshipsOpts

	cmd := &cobra.Command{
		Use:   "browse [file]",
		Short: "Interactively browse package labels",
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

			title := doc.Name
			if title == "" {
				title = args[0]
			}
			popts := []tea.ProgramOption{
				tea.WithContext(cmd.Context()),
				tea.WithOutput(cmd.OutOrStdout()),
				tea.WithAltScreen(),
			}
			if args[0] == "-" {
				// stdin held the document; read keys from the terminal.
				popts = append(popts, tea.WithInputTTY())
			}
			model := NewPackageListModel(title, newPackageEntries(doc, res))
			_, err = tea.NewProgram(model, popts...).Run()
			return err
		},
	}

	opts.register(cmd)
	return cmd
}
