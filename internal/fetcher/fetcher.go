// Package fetcher retrieves and parses remote HTML pages.
package fetcher

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/PuerkitoBio/goquery"
	colly "github.com/gocolly/colly/v2"

	"github.com/rmgpulse/rmgpulse/internal/logger"
)

// Defaults applied when Config fields are zero.
const (
	// DefaultTimeout bounds one outbound request.
	DefaultTimeout = 30 * time.Second
	// DefaultMaxBodySize caps response bodies at 10 MB.
	DefaultMaxBodySize = 10 * 1024 * 1024
	// DefaultUserAgent identifies the scraper as a desktop browser.
	DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 " +
		"(KHTML, like Gecko) Chrome/120.0 Safari/537.36"
)

// Config holds fetcher settings.
type Config struct {
	UserAgent   string
	Timeout     time.Duration
	MaxBodySize int
}

func (c Config) withDefaults() Config {
	if c.UserAgent == "" {
		c.UserAgent = DefaultUserAgent
	}
	if c.Timeout <= 0 {
		c.Timeout = DefaultTimeout
	}
	if c.MaxBodySize <= 0 {
		c.MaxBodySize = DefaultMaxBodySize
	}
	return c
}

// Fetcher performs single-page fetches. Each fetch uses a fresh collector
// so request contexts never leak between calls.
type Fetcher struct {
	cfg Config
	log logger.Interface
}

// New creates a page fetcher.
func New(cfg Config, log logger.Interface) *Fetcher {
	return &Fetcher{
		cfg: cfg.withDefaults(),
		log: log.WithComponent("fetcher"),
	}
}

// Fetch retrieves the page and parses it into a document. Transport
// errors, timeouts, and non-success statuses are returned as errors;
// callers treat them as recoverable.
func (f *Fetcher) Fetch(ctx context.Context, pageURL string) (*goquery.Document, error) {
	collector := colly.NewCollector(
		colly.StdlibContext(ctx),
		colly.UserAgent(f.cfg.UserAgent),
		colly.MaxDepth(1),
		colly.MaxBodySize(f.cfg.MaxBodySize),
		colly.IgnoreRobotsTxt(),
	)
	collector.SetRequestTimeout(f.cfg.Timeout)

	var body []byte
	var fetchErr error
	collector.OnResponse(func(r *colly.Response) {
		body = r.Body
	})
	collector.OnError(func(_ *colly.Response, err error) {
		fetchErr = err
	})

	start := time.Now()
	if err := collector.Visit(pageURL); err != nil {
		return nil, fmt.Errorf("failed to fetch %s: %w", pageURL, err)
	}
	if fetchErr != nil {
		return nil, fmt.Errorf("failed to fetch %s: %w", pageURL, fetchErr)
	}
	if len(body) == 0 {
		return nil, fmt.Errorf("empty response from %s", pageURL)
	}

	f.log.Debug("page fetched",
		"url", pageURL,
		"bytes", len(body),
		"duration", time.Since(start),
	)

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", pageURL, err)
	}
	return doc, nil
}
