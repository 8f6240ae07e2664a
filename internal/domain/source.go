package domain

// Source describes one configured news publisher.
type Source struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	URL     string `json:"url"`
	BaseURL string `json:"base_url"`
}
