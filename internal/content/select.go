// Package content provides shared HTML extraction helpers for the link
// classifier and the article extractor.
package content

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// FirstSelection tries selectors in order and returns the match set of the
// first one that yields at least one node, along with the selector that
// produced it. Later selectors are never consulted once an earlier one
// matched, so a trailing catch-all only runs as a last resort.
func FirstSelection(doc *goquery.Document, selectors []string) (*goquery.Selection, string) {
	for _, selector := range selectors {
		sel := doc.Find(selector)
		if sel.Length() > 0 {
			return sel, selector
		}
	}
	return nil, ""
}

// FirstText tries selectors in order and returns the trimmed text of the
// first single match accepted by the predicate. Returns "" when no
// selector produces acceptable text.
func FirstText(doc *goquery.Document, selectors []string, accept func(string) bool) string {
	for _, selector := range selectors {
		sel := doc.Find(selector).First()
		if sel.Length() == 0 {
			continue
		}
		text := strings.TrimSpace(sel.Text())
		if accept(text) {
			return text
		}
	}
	return ""
}

// MinLength returns an acceptance predicate requiring trimmed text strictly
// longer than n characters.
func MinLength(n int) func(string) bool {
	return func(s string) bool {
		return len(s) > n
	}
}

// NonEmpty accepts any non-empty trimmed text.
func NonEmpty(s string) bool {
	return s != ""
}
