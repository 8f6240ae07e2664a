// Package links classifies homepage anchors into news-article candidates.
package links

import (
	"net/url"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"

	"github.com/rmgpulse/rmgpulse/internal/content"
	"github.com/rmgpulse/rmgpulse/internal/domain"
	"github.com/rmgpulse/rmgpulse/internal/logger"
)

// Headline shape bounds for the accept stage.
const (
	minHeadlineLen = 20
	maxHeadlineLen = 200
)

// linkSelectors is the cascade tried against a homepage, most specific
// first. The trailing "a[href]" catch-all only runs when nothing else on
// the page matched at all.
var linkSelectors = []string{
	// generic article URL patterns
	`a[href*="/article/"]`,
	`a[href*="/news/"]`,
	`a[href*="/story/"]`,
	`a[href*="/post/"]`,
	`a[href*="/page/"]`,
	`a[href*="/category/"]`,

	// common article containers
	"article a",
	".article a",
	".news-item a",
	".post a",
	".news a",
	".content a",
	".main-content a",

	// headings with links
	"h1 a",
	"h2 a",
	"h3 a",
	"h4 a",
	".entry-title a",
	".post-title a",
	".article-title a",
	".headline a",
	".title a",

	// publisher-specific listing blocks
	".news-list a",
	".news-container a",
	".news-block a",
	".news-section a",
	".all-news a",
	".special-issues a",
	".rmg-textile a",
	".news-analysis a",
	".textile-apparel a",
	".content-area a",
	".article-list a",
	".news-grid a",
	".post-grid a",

	// WordPress themes
	".entry a",
	".blog-post a",
	".news-post a",

	// last resort, filtered hard by the validity gate
	"a[href]",
}

// Classifier turns a parsed homepage into an ordered list of candidate
// article links.
type Classifier struct {
	log logger.Interface
}

// NewClassifier creates a new link classifier.
func NewClassifier(log logger.Interface) *Classifier {
	return &Classifier{log: log.WithComponent("link_classifier")}
}

// Classify enumerates anchors through the selector cascade, resolves each
// href against baseURL, and returns at most maxResults candidates that
// survive the two-stage validity gate, in discovery order. Returned URLs
// are unique within one call.
func (c *Classifier) Classify(doc *goquery.Document, baseURL string, maxResults int) []domain.CandidateLink {
	if maxResults <= 0 {
		return nil
	}

	base, err := url.Parse(baseURL)
	if err != nil {
		c.log.Warn("invalid base url", "base_url", baseURL, "error", err)
		return nil
	}

	matches, selector := content.FirstSelection(doc, linkSelectors)
	if matches == nil {
		c.log.Debug("no anchors found on page", "base_url", baseURL)
		return nil
	}
	c.log.Debug("selector matched",
		"selector", selector,
		"anchors", matches.Length(),
	)

	seen := make(map[string]bool)
	candidates := make([]domain.CandidateLink, 0, maxResults)

	matches.EachWithBreak(func(_ int, anchor *goquery.Selection) bool {
		href, ok := anchor.Attr("href")
		href = strings.TrimSpace(href)
		if !ok || href == "" {
			return true
		}

		ref, parseErr := url.Parse(href)
		if parseErr != nil {
			return true
		}
		absolute := base.ResolveReference(ref).String()

		if seen[absolute] {
			return true
		}
		seen[absolute] = true

		title := strings.TrimSpace(anchor.Text())
		if title == "" {
			title = strings.TrimSpace(anchor.Closest("h1, h2, h3, h4, h5, h6").Text())
		}

		if !Valid(title, absolute) {
			return true
		}

		candidates = append(candidates, domain.CandidateLink{
			URL:   absolute,
			Title: title,
		})
		return len(candidates) < maxResults
	})

	return candidates
}

// Valid applies the full validity gate: an empty title always fails, the
// reject stage has priority over the accept stage.
func Valid(title, linkURL string) bool {
	if title == "" {
		return false
	}
	if Rejected(title, linkURL) {
		return false
	}
	return Accepted(title, linkURL)
}

// Rejected reports whether the reject stage disqualifies the candidate:
// any RejectTitleTerms hit on the title, or any RejectPathTerms hit on the
// URL path.
func Rejected(title, linkURL string) bool {
	lowerTitle := strings.ToLower(title)
	for _, term := range RejectTitleTerms {
		if strings.Contains(lowerTitle, term) {
			return true
		}
	}

	path := lowerPath(linkURL)
	for _, term := range RejectPathTerms {
		if strings.Contains(path, term) {
			return true
		}
	}

	return false
}

// Accepted reports whether the accept stage admits the candidate. All
// three conditions must hold: the title has headline shape or contains a
// news-action word, the URL path carries an article marker, and the title
// does not begin with a digit.
func Accepted(title, linkURL string) bool {
	lowerTitle := strings.ToLower(title)

	titleLen := utf8.RuneCountInString(title)
	headlineShape := titleLen >= minHeadlineLen && titleLen <= maxHeadlineLen
	if !headlineShape && !containsAny(lowerTitle, AcceptTitleTerms) {
		return false
	}

	if !containsAny(lowerPath(linkURL), AcceptPathTerms) {
		return false
	}

	first, _ := utf8.DecodeRuneInString(title)
	return !unicode.IsDigit(first)
}

func containsAny(s string, terms []string) bool {
	for _, term := range terms {
		if strings.Contains(s, term) {
			return true
		}
	}
	return false
}

func lowerPath(linkURL string) string {
	u, err := url.Parse(linkURL)
	if err != nil {
		return strings.ToLower(linkURL)
	}
	return strings.ToLower(u.Path)
}
