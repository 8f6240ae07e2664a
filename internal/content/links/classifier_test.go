package links_test

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rmgpulse/rmgpulse/internal/content/links"
	"github.com/rmgpulse/rmgpulse/internal/logger"
)

func parseHTML(t *testing.T, html string) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	require.NoError(t, err)
	return doc
}

func newClassifier() *links.Classifier {
	return links.NewClassifier(logger.NewNoOp())
}

func TestClassifyAcceptsNewsLink(t *testing.T) {
	t.Parallel()

	doc := parseHTML(t, `
		<article>
			<a href="/news/2025/bgmea-announces-growth">BGMEA Announces New Export Growth Initiative for 2025</a>
		</article>
	`)

	got := newClassifier().Classify(doc, "https://www.bgmea.com.bd", 10)
	require.Len(t, got, 1)
	assert.Equal(t, "https://www.bgmea.com.bd/news/2025/bgmea-announces-growth", got[0].URL)
	assert.Equal(t, "BGMEA Announces New Export Growth Initiative for 2025", got[0].Title)
}

func TestClassifyRejectsContactLink(t *testing.T) {
	t.Parallel()

	doc := parseHTML(t, `
		<article>
			<a href="/contact-us">Contact Us</a>
			<a href="/news/2025/trade-deal">Garment Exporters Sign Landmark Trade Agreement</a>
		</article>
	`)

	got := newClassifier().Classify(doc, "https://example.com", 10)
	require.Len(t, got, 1)
	assert.Equal(t, "https://example.com/news/2025/trade-deal", got[0].URL)
}

func TestClassifyNeverReturnsDuplicateURLs(t *testing.T) {
	t.Parallel()

	doc := parseHTML(t, `
		<article>
			<a href="/news/2025/same-story">Apparel Industry Reports Strong Quarterly Results</a>
			<a href="/news/2025/same-story">Apparel Industry Reports Strong Quarterly Results</a>
			<a href="https://example.com/news/2025/same-story">Apparel Industry Reports Strong Quarterly Results</a>
		</article>
	`)

	got := newClassifier().Classify(doc, "https://example.com", 10)
	assert.Len(t, got, 1)
}

func TestClassifyRespectsMaxResults(t *testing.T) {
	t.Parallel()

	var b strings.Builder
	b.WriteString("<article>")
	titles := []string{
		"Textile Mills Expand Capacity Ahead of Peak Season",
		"Knitwear Exporters Report Record Shipment Volumes",
		"Factory Safety Programme Launches Nationwide Audit",
		"Spinning Sector Invests in Energy Efficient Machinery",
		"Denim Makers Partner With European Retail Chains",
	}
	for i, title := range titles {
		b.WriteString(`<a href="/news/2025/item-` + string(rune('a'+i)) + `">` + title + `</a>`)
	}
	b.WriteString("</article>")

	got := newClassifier().Classify(parseHTML(t, b.String()), "https://example.com", 3)
	assert.Len(t, got, 3)
}

func TestClassifyStopsAtFirstMatchingSelector(t *testing.T) {
	t.Parallel()

	// The span anchor is reachable only through the catch-all, which must
	// not run because the article selector already matched.
	doc := parseHTML(t, `
		<article>
			<a href="/2025/inside-article">Garment Sector Announces Fresh Investment Plans</a>
		</article>
		<span><a href="/2025/outside-article">Outside Anchor Reports Export Volume Gains</a></span>
	`)

	got := newClassifier().Classify(doc, "https://example.com", 10)
	require.Len(t, got, 1)
	assert.Equal(t, "https://example.com/2025/inside-article", got[0].URL)
}

func TestClassifyCatchAllRunsWhenNothingElseMatches(t *testing.T) {
	t.Parallel()

	doc := parseHTML(t, `
		<span><a href="/2025/lone-anchor">Lone Anchor Reveals Export Market Expansion</a></span>
	`)

	got := newClassifier().Classify(doc, "https://example.com", 10)
	require.Len(t, got, 1)
	assert.Equal(t, "https://example.com/2025/lone-anchor", got[0].URL)
}

func TestClassifyTitleFromAncestorHeading(t *testing.T) {
	t.Parallel()

	doc := parseHTML(t, `
		<h2>Sustainability Compliance Workshop Draws Global Brands<a href="/news/2025/workshop"></a></h2>
	`)

	got := newClassifier().Classify(doc, "https://example.com", 10)
	require.Len(t, got, 1)
	assert.Equal(t, "Sustainability Compliance Workshop Draws Global Brands", got[0].Title)
}

func TestClassifyZeroMaxResults(t *testing.T) {
	t.Parallel()

	doc := parseHTML(t, `<a href="/news/2025/x">Factory Owners Announce Wage Board Agreement</a>`)
	assert.Nil(t, newClassifier().Classify(doc, "https://example.com", 0))
}

func TestValidEmptyTitleAlwaysRejected(t *testing.T) {
	t.Parallel()

	assert.False(t, links.Valid("", "https://example.com/news/2025/story"))
}

func TestRejectStageHasPriority(t *testing.T) {
	t.Parallel()

	// Accept-stage signals are all present, but the title carries a
	// denylist term.
	title := "Facebook Announces Garment Industry Trade Partnership"
	url := "https://example.com/news/2025/facebook-deal"

	assert.True(t, links.Accepted(title, url))
	assert.True(t, links.Rejected(title, url))
	assert.False(t, links.Valid(title, url))
}

func TestAcceptedRequiresArticlePath(t *testing.T) {
	t.Parallel()

	assert.False(t, links.Accepted(
		"Garment Exporters Sign Landmark Trade Agreement",
		"https://example.com/some-random-path"))
}

func TestAcceptedRejectsLeadingDigit(t *testing.T) {
	t.Parallel()

	assert.False(t, links.Accepted(
		"10 Factories Expand Production Capacity This Year",
		"https://example.com/news/2025/factories"))
}

func TestAcceptedShortTitleNeedsNewsTerm(t *testing.T) {
	t.Parallel()

	// Under 20 characters, no news-action word.
	assert.False(t, links.Accepted("Cotton prices", "https://example.com/news/2025/cotton"))
	// Under 20 characters, but contains an action word.
	assert.True(t, links.Accepted("BGMEA announces", "https://example.com/news/2025/bgmea"))
}

func TestAcceptedMonthSegmentCountsAsArticlePath(t *testing.T) {
	t.Parallel()

	assert.True(t, links.Accepted(
		"Spinning Mills Report Higher Yarn Output Figures",
		"https://example.com/business/jan/spinning-mills"))
}
