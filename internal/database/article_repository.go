package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/rmgpulse/rmgpulse/internal/domain"
)

// pq error code for unique_violation.
const uniqueViolation = "23505"

// ArticleRepository handles database operations for news articles.
type ArticleRepository struct {
	db *sqlx.DB
}

// NewArticleRepository creates a new article repository.
func NewArticleRepository(db *sqlx.DB) *ArticleRepository {
	return &ArticleRepository{db: db}
}

// Exists reports whether an article with the given URL is already stored.
func (r *ArticleRepository) Exists(ctx context.Context, url string) (bool, error) {
	var exists bool
	query := `SELECT EXISTS (SELECT 1 FROM news_articles WHERE url = $1)`

	if err := r.db.GetContext(ctx, &exists, query, url); err != nil {
		return false, fmt.Errorf("failed to check article existence: %w", err)
	}

	return exists, nil
}

// Insert stores a new article. A unique_violation on the URL column is
// mapped to ErrDuplicateURL so callers can skip rather than fail.
func (r *ArticleRepository) Insert(ctx context.Context, article *domain.Article) error {
	if article.ID == "" {
		article.ID = uuid.New().String()
	}
	if article.PublishedAt.IsZero() {
		article.PublishedAt = time.Now()
	}

	query := `
		INSERT INTO news_articles (id, title, body, summary, url, source_id,
		                           source_url, author, published_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING created_at, updated_at
	`

	err := r.db.QueryRowContext(
		ctx,
		query,
		article.ID,
		article.Title,
		article.Body,
		article.Summary,
		article.URL,
		article.SourceID,
		article.SourceURL,
		article.Author,
		article.PublishedAt,
	).Scan(&article.CreatedAt, &article.UpdatedAt)

	if err != nil {
		return insertError(err)
	}

	return nil
}

// insertError maps a unique_violation on the URL column to
// ErrDuplicateURL; anything else is wrapped.
func insertError(err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
		return ErrDuplicateURL
	}
	return fmt.Errorf("failed to insert article: %w", err)
}

// ListFilters represents filtering options for listing articles.
type ListFilters struct {
	SourceID string
	Search   string // matches title or body
	Limit    int
	Offset   int
}

func (f ListFilters) whereClause() (string, []any) {
	whereClauses := []string{}
	args := []any{}
	argIndex := 1

	if f.SourceID != "" {
		whereClauses = append(whereClauses, fmt.Sprintf("source_id = $%d", argIndex))
		args = append(args, f.SourceID)
		argIndex++
	}

	if f.Search != "" {
		whereClauses = append(whereClauses,
			fmt.Sprintf("(title ILIKE $%d OR body ILIKE $%d)", argIndex, argIndex))
		args = append(args, "%"+f.Search+"%")
	}

	if len(whereClauses) == 0 {
		return "", args
	}
	return "WHERE " + strings.Join(whereClauses, " AND "), args
}

// List retrieves articles newest first with optional filtering.
func (r *ArticleRepository) List(ctx context.Context, filters ListFilters) ([]*domain.Article, error) {
	var articles []*domain.Article

	whereClause, args := filters.whereClause()

	limit := filters.Limit
	if limit <= 0 {
		limit = 10
	}
	offset := filters.Offset
	if offset < 0 {
		offset = 0
	}

	query := fmt.Sprintf(`
		SELECT id, title, body, summary, url, source_id, source_url, author,
		       published_at, created_at, updated_at
		FROM news_articles
		%s
		ORDER BY published_at DESC, created_at DESC
		LIMIT $%d OFFSET $%d
	`, whereClause, len(args)+1, len(args)+2)

	args = append(args, limit, offset)

	if err := r.db.SelectContext(ctx, &articles, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list articles: %w", err)
	}

	if articles == nil {
		articles = []*domain.Article{}
	}

	return articles, nil
}

// Count returns the total number of articles matching the filters.
func (r *ArticleRepository) Count(ctx context.Context, filters ListFilters) (int, error) {
	var count int

	whereClause, args := filters.whereClause()
	query := fmt.Sprintf(`SELECT COUNT(*) FROM news_articles %s`, whereClause)

	if err := r.db.GetContext(ctx, &count, query, args...); err != nil {
		return 0, fmt.Errorf("failed to count articles: %w", err)
	}

	return count, nil
}

// GetByID retrieves an article by its ID.
func (r *ArticleRepository) GetByID(ctx context.Context, id string) (*domain.Article, error) {
	var article domain.Article
	query := `
		SELECT id, title, body, summary, url, source_id, source_url, author,
		       published_at, created_at, updated_at
		FROM news_articles
		WHERE id = $1
	`

	if err := r.db.GetContext(ctx, &article, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get article: %w", err)
	}

	return &article, nil
}

// ListRecent retrieves articles published within the given window, newest
// first, capped at limit. Used by the analytics endpoints.
func (r *ArticleRepository) ListRecent(ctx context.Context, since time.Time, limit int) ([]*domain.Article, error) {
	var articles []*domain.Article

	if limit <= 0 {
		limit = 10
	}

	query := `
		SELECT id, title, body, summary, url, source_id, source_url, author,
		       published_at, created_at, updated_at
		FROM news_articles
		WHERE published_at >= $1
		ORDER BY published_at DESC
		LIMIT $2
	`

	if err := r.db.SelectContext(ctx, &articles, query, since, limit); err != nil {
		return nil, fmt.Errorf("failed to list recent articles: %w", err)
	}

	if articles == nil {
		articles = []*domain.Article{}
	}

	return articles, nil
}
