package database

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

const articlesSchema = `
CREATE TABLE IF NOT EXISTS news_articles (
	id           uuid PRIMARY KEY,
	title        text NOT NULL,
	body         text NOT NULL DEFAULT '',
	summary      text NOT NULL DEFAULT '',
	url          text NOT NULL UNIQUE,
	source_id    text NOT NULL,
	source_url   text NOT NULL,
	author       text NOT NULL DEFAULT '',
	published_at timestamptz NOT NULL,
	created_at   timestamptz NOT NULL DEFAULT now(),
	updated_at   timestamptz NOT NULL DEFAULT now()
);

CREATE INDEX IF NOT EXISTS idx_news_articles_source_id ON news_articles (source_id);
CREATE INDEX IF NOT EXISTS idx_news_articles_published_at ON news_articles (published_at DESC);
`

// EnsureSchema creates the news_articles table and its indexes if missing.
func EnsureSchema(ctx context.Context, db *sqlx.DB) error {
	if _, err := db.ExecContext(ctx, articlesSchema); err != nil {
		return fmt.Errorf("failed to ensure schema: %w", err)
	}
	return nil
}
