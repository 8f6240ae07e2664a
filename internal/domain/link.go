package domain

// CandidateLink is a homepage anchor judged likely to point at a news
// article. The URL is always absolute.
type CandidateLink struct {
	URL      string `json:"url"`
	Title    string `json:"title"`
	SourceID string `json:"source_id"`
}
