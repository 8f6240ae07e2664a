package links_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rmgpulse/rmgpulse/internal/content/links"
)

func assertAllLowercase(t *testing.T, name string, terms []string) {
	t.Helper()
	for _, term := range terms {
		assert.Equal(t, strings.ToLower(term), term,
			"%s entry %q must be lowercase", name, term)
	}
}

func assertNoDuplicates(t *testing.T, name string, terms []string) {
	t.Helper()
	seen := make(map[string]bool, len(terms))
	for _, term := range terms {
		assert.False(t, seen[term], "%s has duplicate entry %q", name, term)
		seen[term] = true
	}
}

func TestTermTablesWellFormed(t *testing.T) {
	t.Parallel()

	tables := map[string][]string{
		"RejectTitleTerms": links.RejectTitleTerms,
		"RejectPathTerms":  links.RejectPathTerms,
		"AcceptTitleTerms": links.AcceptTitleTerms,
		"AcceptPathTerms":  links.AcceptPathTerms,
		"BoilerplateTerms": links.BoilerplateTerms,
	}
	for name, terms := range tables {
		assert.NotEmpty(t, terms, name)
		assertAllLowercase(t, name, terms)
		assertNoDuplicates(t, name, terms)
	}
}

func TestRejectPathTermsArePathFragments(t *testing.T) {
	t.Parallel()

	for _, term := range links.RejectPathTerms {
		assert.True(t, strings.HasPrefix(term, "/"),
			"RejectPathTerms entry %q must start with a slash", term)
	}
	for _, term := range links.AcceptPathTerms {
		assert.True(t, strings.HasPrefix(term, "/"),
			"AcceptPathTerms entry %q must start with a slash", term)
	}
}

func TestRejectedMatchesEveryTitleTerm(t *testing.T) {
	t.Parallel()

	for _, term := range links.RejectTitleTerms {
		assert.True(t, links.Rejected("prefix "+term+" suffix", "https://example.com/ok"),
			"title containing %q must be rejected", term)
	}
}

func TestRejectedMatchesEveryPathTerm(t *testing.T) {
	t.Parallel()

	for _, term := range links.RejectPathTerms {
		url := "https://example.com" + term + "x"
		assert.True(t, links.Rejected("A Perfectly Ordinary Headline", url),
			"url with path %q must be rejected", term)
	}
}
