// Package httpd provides the httpd command, which runs the HTTP API
// server and, when configured, the scheduled harvester.
package httpd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/rmgpulse/rmgpulse/cmd/common"
	"github.com/rmgpulse/rmgpulse/internal/ai"
	"github.com/rmgpulse/rmgpulse/internal/api"
	"github.com/rmgpulse/rmgpulse/internal/database"
	"github.com/rmgpulse/rmgpulse/internal/harvester"
	"github.com/rmgpulse/rmgpulse/internal/sources"
)

// Command creates the httpd command.
func Command() *cobra.Command {
	return &cobra.Command{
		Use:   "httpd",
		Short: "Start the HTTP API server",
		Long: `Starts the news API server. When harvester.schedule is set,
harvest passes also run on that cron schedule until shutdown.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context())
		},
	}
}

func run(ctx context.Context) error {
	deps, err := common.NewCommandDeps()
	if err != nil {
		return fmt.Errorf("failed to get dependencies: %w", err)
	}

	db, err := common.ConnectDatabase(ctx, deps)
	if err != nil {
		return err
	}
	defer db.Close()

	h := common.BuildHarvester(deps, db)

	aiClient := ai.NewClient(deps.Config.AI, deps.Logger)
	analyzer := ai.NewAnalyzer(aiClient, deps.Logger)

	server := api.NewServer(api.Params{
		Config:    deps.Config.Server,
		Store:     database.NewArticleRepository(db),
		Harvester: h,
		Analyzer:  analyzer,
		Sources:   sources.All(),
		Logger:    deps.Logger,
	})

	// Cancelled on SIGINT or SIGTERM; the server shuts down gracefully.
	runCtx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	if schedule := deps.Config.Harvester.Schedule; schedule != "" {
		scheduler := harvester.NewScheduler(h, deps.Config.Harvester.ArticlesPerSource, deps.Logger)
		if err := scheduler.Start(runCtx, schedule); err != nil {
			return err
		}
		defer scheduler.Stop()
	}

	return server.Start(runCtx)
}
