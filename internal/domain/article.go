// Package domain provides domain models used across the application.
package domain

import "time"

// Article is a stored news article.
type Article struct {
	ID          string    `db:"id"           json:"id"`
	Title       string    `db:"title"        json:"title"`
	Body        string    `db:"body"         json:"body"`
	Summary     string    `db:"summary"      json:"summary"`
	URL         string    `db:"url"          json:"url"`
	SourceID    string    `db:"source_id"    json:"source_id"`
	SourceURL   string    `db:"source_url"   json:"source_url"`
	Author      string    `db:"author"       json:"author"`
	PublishedAt time.Time `db:"published_at" json:"published_at"`
	CreatedAt   time.Time `db:"created_at"   json:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"   json:"updated_at"`
}

// ExtractedArticle is the result of extracting a single article page,
// before it is merged with candidate metadata and persisted.
type ExtractedArticle struct {
	Title       string
	Body        string
	Author      string
	PublishedAt time.Time
	URL         string
}
