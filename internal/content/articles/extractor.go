// Package articles extracts structured article fields from a single
// article page.
package articles

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/rmgpulse/rmgpulse/internal/content"
	"github.com/rmgpulse/rmgpulse/internal/content/links"
	"github.com/rmgpulse/rmgpulse/internal/domain"
	"github.com/rmgpulse/rmgpulse/internal/logger"
)

// Extraction thresholds.
const (
	// minTitleLen is the minimum accepted title length.
	minTitleLen = 10
	// minParagraphLen filters out stray short text nodes.
	minParagraphLen = 20
	// minAuthorLen filters out single-character author artifacts.
	minAuthorLen = 2
	// MinBodyLen is the minimum body length of a valid article.
	MinBodyLen = 100
	// MaxBoilerplateHits is the highest tolerated count of distinct
	// boilerplate terms in a body.
	MaxBoilerplateHits = 3
)

// Extraction failures. These are expected outcomes for candidate links
// that resolve to non-article pages; callers skip and continue.
var (
	// ErrNoContent is returned when no usable body text was found.
	ErrNoContent = errors.New("no article content found")
	// ErrBodyTooShort is returned when the body is under MinBodyLen.
	ErrBodyTooShort = errors.New("article body too short")
	// ErrBoilerplate is returned when the body scores as site furniture.
	ErrBoilerplate = errors.New("article body looks like boilerplate")
)

// Selector cascades, most specific first.
var (
	titleSelectors = []string{
		"h1",
		".article-title",
		".post-title",
		".entry-title",
		".headline",
		"title",
	}

	bodySelectors = []string{
		".article-content",
		".post-content",
		".entry-content",
		".content",
		"article",
		".article-body",
		".post-body",
		".story-content",
	}

	authorSelectors = []string{
		".author",
		".post-author",
		".article-author",
		".byline",
		".writer",
	}

	dateSelectors = []string{
		".published-date",
		".post-date",
		".article-date",
		".date",
		"time",
		".timestamp",
	}
)

// strippedElements are removed from the document before any extraction.
const strippedElements = "script, style, nav, header, footer, aside"

// Extractor pulls title, body, author, and publish date out of a parsed
// article page.
type Extractor struct {
	log logger.Interface
	now func() time.Time
}

// NewExtractor creates a new article extractor.
func NewExtractor(log logger.Interface) *Extractor {
	return &Extractor{
		log: log.WithComponent("article_extractor"),
		now: time.Now,
	}
}

// Extract produces an ExtractedArticle from the page, or an extraction
// failure. The document is mutated: non-content elements are stripped.
func (e *Extractor) Extract(doc *goquery.Document, pageURL string) (*domain.ExtractedArticle, error) {
	doc.Find(strippedElements).Remove()

	body := e.extractBody(doc)
	if body == "" {
		return nil, fmt.Errorf("%w: %s", ErrNoContent, pageURL)
	}
	if len(body) < MinBodyLen {
		return nil, fmt.Errorf("%w: %d chars: %s", ErrBodyTooShort, len(body), pageURL)
	}
	if hits := BoilerplateHits(body); hits > MaxBoilerplateHits {
		return nil, fmt.Errorf("%w: %d boilerplate hits: %s", ErrBoilerplate, hits, pageURL)
	}

	return &domain.ExtractedArticle{
		Title:       content.FirstText(doc, titleSelectors, content.MinLength(minTitleLen)),
		Body:        body,
		Author:      content.FirstText(doc, authorSelectors, content.MinLength(minAuthorLen)),
		PublishedAt: e.extractDate(doc),
		URL:         pageURL,
	}, nil
}

// extractBody collects paragraph text from the first matching content
// container, falling back to every paragraph on the page.
func (e *Extractor) extractBody(doc *goquery.Document) string {
	container, selector := content.FirstSelection(doc, bodySelectors)
	if container != nil {
		if body := collectParagraphs(container.First().Find("p, div")); body != "" {
			e.log.Debug("body extracted", "selector", selector)
			return body
		}
	}

	return collectParagraphs(doc.Find("p"))
}

// collectParagraphs joins text nodes longer than minParagraphLen with
// blank-line separators.
func collectParagraphs(sel *goquery.Selection) string {
	var parts []string
	sel.Each(func(_ int, p *goquery.Selection) {
		text := strings.TrimSpace(p.Text())
		if len(text) > minParagraphLen {
			parts = append(parts, text)
		}
	})
	return strings.Join(parts, "\n\n")
}

// extractDate parses the first date-bearing element it can, defaulting to
// the extraction time when no element yields a parseable value.
func (e *Extractor) extractDate(doc *goquery.Document) time.Time {
	for _, selector := range dateSelectors {
		sel := doc.Find(selector).First()
		if sel.Length() == 0 {
			continue
		}
		if attr, ok := sel.Attr("datetime"); ok {
			if parsed := parseDate(attr); !parsed.IsZero() {
				return parsed
			}
		}
		if parsed := parseDate(sel.Text()); !parsed.IsZero() {
			return parsed
		}
	}
	return e.now()
}

// BoilerplateHits counts distinct boilerplate terms present in the text.
func BoilerplateHits(text string) int {
	lower := strings.ToLower(text)
	hits := 0
	for _, term := range links.BoilerplateTerms {
		if strings.Contains(lower, term) {
			hits++
		}
	}
	return hits
}

// dateFormats are tried in order by parseDate.
var dateFormats = []string{
	time.RFC3339,
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
	time.RFC1123,
	time.RFC1123Z,
	time.RFC850,
	"Mon, 02 Jan 2006 15:04:05 MST",
	"02 Jan 2006 15:04:05 MST",
	"January 2, 2006",
	"2 January 2006",
	"Jan 2, 2006",
}

// parseDate attempts to parse a date string in various formats, returning
// the zero time when nothing matches.
func parseDate(dateStr string) time.Time {
	dateStr = strings.TrimSpace(dateStr)
	if dateStr == "" {
		return time.Time{}
	}

	for _, format := range dateFormats {
		if parsed, err := time.Parse(format, dateStr); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
