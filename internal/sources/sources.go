// Package sources holds the fixed registry of monitored news publishers.
package sources

import (
	"fmt"

	"github.com/rmgpulse/rmgpulse/internal/domain"
)

// registry lists the monitored publishers in harvest order. The set is
// fixed at build time; there is no runtime mutation.
var registry = []domain.Source{
	{
		ID:      "textiletoday",
		Name:    "Textile Today",
		URL:     "https://www.textiletoday.com.bd/category/news-analysis-textile-apparel",
		BaseURL: "https://www.textiletoday.com.bd",
	},
	{
		ID:      "tbsnews",
		Name:    "TBS News RMG",
		URL:     "http://tbsnews.net/economy/rmg",
		BaseURL: "http://tbsnews.net",
	},
	{
		ID:      "rmgbd",
		Name:    "RMG Bangladesh",
		URL:     "https://rmgbd.net/",
		BaseURL: "https://rmgbd.net",
	},
	{
		ID:      "bgmea",
		Name:    "BGMEA",
		URL:     "https://www.bgmea.com.bd/page/all-news",
		BaseURL: "https://www.bgmea.com.bd",
	},
	{
		ID:      "financialexpress",
		Name:    "Financial Express RMG",
		URL:     "https://today.thefinancialexpress.com.bd/special-issues/rmg-textile",
		BaseURL: "https://today.thefinancialexpress.com.bd",
	},
	{
		ID:      "textilefocus",
		Name:    "Textile Focus",
		URL:     "https://textilefocus.com/",
		BaseURL: "https://textilefocus.com",
	},
}

// All returns every configured source in harvest order. The returned
// slice is a copy; callers may not mutate the registry through it.
func All() []domain.Source {
	out := make([]domain.Source, len(registry))
	copy(out, registry)
	return out
}

// Get returns the source with the given ID.
func Get(id string) (domain.Source, error) {
	for _, s := range registry {
		if s.ID == id {
			return s, nil
		}
	}
	return domain.Source{}, fmt.Errorf("unknown source: %q", id)
}

// Exists reports whether a source with the given ID is configured.
func Exists(id string) bool {
	_, err := Get(id)
	return err == nil
}
