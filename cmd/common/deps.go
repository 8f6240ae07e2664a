// Package common provides shared dependency construction for subcommands.
package common

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/spf13/viper"

	"github.com/rmgpulse/rmgpulse/internal/ai"
	"github.com/rmgpulse/rmgpulse/internal/config"
	"github.com/rmgpulse/rmgpulse/internal/content/articles"
	"github.com/rmgpulse/rmgpulse/internal/content/links"
	"github.com/rmgpulse/rmgpulse/internal/database"
	"github.com/rmgpulse/rmgpulse/internal/fetcher"
	"github.com/rmgpulse/rmgpulse/internal/harvester"
	"github.com/rmgpulse/rmgpulse/internal/logger"
	"github.com/rmgpulse/rmgpulse/internal/sources"
)

// Deps holds the dependencies every subcommand starts from.
type Deps struct {
	Config *config.Config
	Logger logger.Interface
}

// NewCommandDeps loads configuration and creates the logger.
func NewCommandDeps() (*Deps, error) {
	cfg, err := config.Load(viper.GetViper())
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	log, err := logger.New(&logger.Config{
		Level:       cfg.Log.Level,
		Encoding:    cfg.Log.Encoding,
		Development: cfg.Log.Development,
	})
	if err != nil {
		return nil, fmt.Errorf("create logger: %w", err)
	}

	return &Deps{Config: cfg, Logger: log}, nil
}

// ConnectDatabase opens the PostgreSQL connection and ensures the schema
// exists.
func ConnectDatabase(ctx context.Context, deps *Deps) (*sqlx.DB, error) {
	db, err := database.NewPostgresConnection(deps.Config.Database.DSN())
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}

	if err := database.EnsureSchema(ctx, db); err != nil {
		db.Close()
		return nil, fmt.Errorf("ensure schema: %w", err)
	}

	return db, nil
}

// BuildHarvester wires the full scraping pipeline over the given
// database connection.
func BuildHarvester(deps *Deps, db *sqlx.DB) *harvester.Harvester {
	cfg := deps.Config
	log := deps.Logger

	pageFetcher := fetcher.New(fetcher.Config{
		UserAgent: cfg.Harvester.UserAgent,
		Timeout:   cfg.Harvester.FetchTimeout,
	}, log)

	aiClient := ai.NewClient(cfg.AI, log)
	normalizer := ai.NewNormalizer(aiClient, log)

	return harvester.New(
		sources.All(),
		pageFetcher,
		links.NewClassifier(log),
		articles.NewExtractor(log),
		normalizer,
		database.NewArticleRepository(db),
		log,
	)
}
