// Package sources provides the sources command, which lists the
// configured news sources in a formatted table.
package sources

import (
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	internalsources "github.com/rmgpulse/rmgpulse/internal/sources"
)

// Command creates the sources command with its subcommands.
func Command() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sources",
		Short: "Manage news sources",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List all configured news sources",
		Long:  `Lists the fixed news source registry in harvest order.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			renderSources()
			return nil
		},
	})

	return cmd
}

func renderSources() {
	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.SetStyle(table.StyleLight)

	t.AppendHeader(table.Row{"ID", "Name", "URL", "Base URL"})

	for _, source := range internalsources.All() {
		t.AppendRow(table.Row{source.ID, source.Name, source.URL, source.BaseURL})
	}

	t.Render()
}
