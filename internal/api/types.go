package api

import "github.com/rmgpulse/rmgpulse/internal/domain"

// PaginatedArticles is the envelope returned by every article listing
// endpoint.
type PaginatedArticles struct {
	Articles   []*domain.Article `json:"articles"`
	Total      int               `json:"total"`
	Page       int               `json:"page"`
	PerPage    int               `json:"per_page"`
	TotalPages int               `json:"total_pages"`
	HasNext    bool              `json:"has_next"`
	HasPrev    bool              `json:"has_prev"`
	NextPage   *int              `json:"next_page"`
	PrevPage   *int              `json:"prev_page"`
}

// paginate wraps a page of articles with navigation metadata. TotalPages
// is a ceiling division; NextPage and PrevPage are null at the edges.
func paginate(articles []*domain.Article, total, page, perPage int) PaginatedArticles {
	totalPages := (total + perPage - 1) / perPage

	resp := PaginatedArticles{
		Articles:   articles,
		Total:      total,
		Page:       page,
		PerPage:    perPage,
		TotalPages: totalPages,
		HasNext:    page < totalPages,
		HasPrev:    page > 1,
	}
	if resp.HasNext {
		next := page + 1
		resp.NextPage = &next
	}
	if resp.HasPrev {
		prev := page - 1
		resp.PrevPage = &prev
	}
	return resp
}
