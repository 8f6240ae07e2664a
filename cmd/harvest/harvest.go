// Package harvest provides the harvest command, which runs one scraping
// pass over every configured source.
package harvest

import (
	"fmt"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/rmgpulse/rmgpulse/cmd/common"
	"github.com/rmgpulse/rmgpulse/internal/sources"
)

var articlesPerSource int

// Command creates the harvest command.
func Command() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "harvest",
		Short: "Run one harvest pass over all news sources",
		Long: `Fetches each source homepage, classifies article links, extracts
and stores new articles, then prints a per-source summary.`,
		RunE: runHarvest,
	}

	cmd.Flags().IntVarP(&articlesPerSource, "articles-per-source", "n", 0,
		"max articles to store per source (default from config)")

	return cmd
}

func runHarvest(cmd *cobra.Command, args []string) error {
	deps, err := common.NewCommandDeps()
	if err != nil {
		return fmt.Errorf("failed to get dependencies: %w", err)
	}

	db, err := common.ConnectDatabase(cmd.Context(), deps)
	if err != nil {
		return err
	}
	defer db.Close()

	perSource := articlesPerSource
	if perSource <= 0 {
		perSource = deps.Config.Harvester.ArticlesPerSource
	}

	h := common.BuildHarvester(deps, db)
	results := h.HarvestAll(cmd.Context(), perSource)

	renderResults(results)
	return nil
}

// renderResults prints the per-source stored counts in registry order.
func renderResults(results map[string]int) {
	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.SetStyle(table.StyleLight)

	t.AppendHeader(table.Row{"Source", "URL", "Stored"})

	total := 0
	for _, source := range sources.All() {
		count := results[source.ID]
		total += count
		t.AppendRow(table.Row{source.Name, source.URL, count})
	}
	t.AppendFooter(table.Row{"Total", "", total})

	t.Render()
}
