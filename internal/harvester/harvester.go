// Package harvester orchestrates the per-source scraping pipeline:
// homepage fetch, link classification, duplicate check, article
// extraction, normalization, and persistence.
package harvester

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/rmgpulse/rmgpulse/internal/database"
	"github.com/rmgpulse/rmgpulse/internal/domain"
	"github.com/rmgpulse/rmgpulse/internal/logger"
)

// summaryLen is the stored summary length before truncation marker.
const summaryLen = 200

// Store is the persistence surface the harvester needs.
type Store interface {
	Exists(ctx context.Context, url string) (bool, error)
	Insert(ctx context.Context, article *domain.Article) error
}

// Fetcher retrieves a page as a parsed document.
type Fetcher interface {
	Fetch(ctx context.Context, pageURL string) (*goquery.Document, error)
}

// Normalizer cleans an extracted body, falling back to the input.
type Normalizer interface {
	CleanContent(ctx context.Context, body, title string) string
}

// Classifier turns a homepage document into candidate links.
type Classifier interface {
	Classify(doc *goquery.Document, baseURL string, maxResults int) []domain.CandidateLink
}

// Extractor pulls structured fields from an article page.
type Extractor interface {
	Extract(doc *goquery.Document, pageURL string) (*domain.ExtractedArticle, error)
}

// Harvester runs the scraping pipeline over a fixed source registry.
// Sources are processed strictly one at a time, and candidates within a
// source one at a time, to keep outbound request pacing polite and writes
// to the store non-overlapping.
type Harvester struct {
	sources    []domain.Source
	fetcher    Fetcher
	classifier Classifier
	extractor  Extractor
	normalizer Normalizer
	store      Store
	log        logger.Interface
	now        func() time.Time
}

// New creates a harvester over the given source registry.
func New(
	sources []domain.Source,
	f Fetcher,
	c Classifier,
	e Extractor,
	n Normalizer,
	store Store,
	log logger.Interface,
) *Harvester {
	return &Harvester{
		sources:    sources,
		fetcher:    f,
		classifier: c,
		extractor:  e,
		normalizer: n,
		store:      store,
		log:        log.WithComponent("harvester"),
		now:        time.Now,
	}
}

// HarvestAll runs one harvest pass across every source in registry order
// and returns the per-source count of newly stored articles. A source
// failure records zero for that source and never aborts the pass.
func (h *Harvester) HarvestAll(ctx context.Context, perSource int) map[string]int {
	results := make(map[string]int, len(h.sources))
	for _, source := range h.sources {
		count, err := h.HarvestSource(ctx, source, perSource)
		if err != nil {
			h.log.Error("source harvest failed",
				"source", source.ID,
				"error", err,
			)
		}
		results[source.ID] = count
	}
	return results
}

// HarvestSource harvests one source and returns the number of newly
// stored articles. Candidate-level failures are logged and skipped.
func (h *Harvester) HarvestSource(ctx context.Context, source domain.Source, maxArticles int) (int, error) {
	log := h.log.WithSource(source.ID)
	log.Info("harvesting source", "url", source.URL, "max_articles", maxArticles)

	homepage, err := h.fetcher.Fetch(ctx, source.URL)
	if err != nil {
		return 0, fmt.Errorf("failed to fetch homepage: %w", err)
	}

	candidates := h.classifier.Classify(homepage, source.BaseURL, maxArticles)
	log.Info("candidates classified", "count", len(candidates))

	stored := 0
	skipped := 0
	failed := 0
	for _, candidate := range candidates {
		ok, candErr := h.processCandidate(ctx, source, candidate)
		switch {
		case candErr == nil && ok:
			stored++
		case candErr == nil:
			skipped++
		default:
			failed++
			log.Warn("candidate skipped",
				"url", candidate.URL,
				"error", candErr,
			)
		}
	}

	log.Info("source harvested",
		"stored", stored,
		"duplicates", skipped,
		"failed", failed,
	)
	return stored, nil
}

// processCandidate runs one candidate through existence check, fetch,
// extraction, normalization, and persistence. Returns (false, nil) for a
// duplicate and (false, err) for any recoverable failure.
func (h *Harvester) processCandidate(
	ctx context.Context,
	source domain.Source,
	candidate domain.CandidateLink,
) (bool, error) {
	exists, err := h.store.Exists(ctx, candidate.URL)
	if err != nil {
		return false, fmt.Errorf("existence check failed: %w", err)
	}
	if exists {
		// Known URL: never re-fetched.
		return false, nil
	}

	page, err := h.fetcher.Fetch(ctx, candidate.URL)
	if err != nil {
		return false, fmt.Errorf("article fetch failed: %w", err)
	}

	extracted, err := h.extractor.Extract(page, candidate.URL)
	if err != nil {
		return false, fmt.Errorf("extraction failed: %w", err)
	}

	body := h.normalizer.CleanContent(ctx, extracted.Body, extracted.Title)

	article := h.buildArticle(source, candidate, extracted, body)
	if err := h.store.Insert(ctx, article); err != nil {
		if errors.Is(err, database.ErrDuplicateURL) {
			return false, nil
		}
		return false, fmt.Errorf("insert failed: %w", err)
	}

	return true, nil
}

// buildArticle merges candidate metadata with extraction results. The
// classifier's anchor title wins over the page title when present, and
// the author defaults to the source display name.
func (h *Harvester) buildArticle(
	source domain.Source,
	candidate domain.CandidateLink,
	extracted *domain.ExtractedArticle,
	body string,
) *domain.Article {
	title := candidate.Title
	if title == "" {
		title = extracted.Title
	}

	author := extracted.Author
	if author == "" {
		author = source.Name
	}

	publishedAt := extracted.PublishedAt
	if publishedAt.IsZero() {
		publishedAt = h.now()
	}

	return &domain.Article{
		Title:       title,
		Body:        body,
		Summary:     summarize(body),
		URL:         candidate.URL,
		SourceID:    source.ID,
		SourceURL:   source.URL,
		Author:      author,
		PublishedAt: publishedAt,
	}
}

// summarize truncates the body to the stored summary length.
func summarize(body string) string {
	runes := []rune(body)
	if len(runes) <= summaryLen {
		return body
	}
	return string(runes[:summaryLen]) + "..."
}
