package api

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rmgpulse/rmgpulse/internal/database"
)

// getNews handles GET /api/news with optional source and free-text
// filters.
func (s *Server) getNews(c *gin.Context) {
	page, perPage := parsePagination(c)

	filters := database.ListFilters{
		SourceID: c.Query("source"),
		Search:   c.Query("query"),
		Limit:    perPage,
		Offset:   (page - 1) * perPage,
	}

	s.respondPage(c, filters, page, perPage)
}

// getHeadlines handles GET /api/headlines. Headlines are the same rows
// as /api/news; clients typically request them with a small per_page and
// render titles only.
func (s *Server) getHeadlines(c *gin.Context) {
	page, perPage := parsePagination(c)

	filters := database.ListFilters{
		Limit:  perPage,
		Offset: (page - 1) * perPage,
	}

	s.respondPage(c, filters, page, perPage)
}

// getNewsBySource handles GET /api/news/sources/:id.
func (s *Server) getNewsBySource(c *gin.Context) {
	sourceID := c.Param("id")
	if !s.knownSource(sourceID) {
		respondNotFound(c, fmt.Sprintf("Source '%s' not found", sourceID))
		return
	}

	page, perPage := parsePagination(c)

	filters := database.ListFilters{
		SourceID: sourceID,
		Limit:    perPage,
		Offset:   (page - 1) * perPage,
	}

	s.respondPage(c, filters, page, perPage)
}

// getSources handles GET /api/sources.
func (s *Server) getSources(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"sources": s.sources,
		"total":   len(s.sources),
	})
}

// respondPage runs the shared list-count-paginate flow.
func (s *Server) respondPage(c *gin.Context, filters database.ListFilters, page, perPage int) {
	ctx := c.Request.Context()

	articles, err := s.store.List(ctx, filters)
	if err != nil {
		s.log.Error("failed to list articles", "error", err)
		respondInternalError(c, "failed to fetch articles")
		return
	}

	total, err := s.store.Count(ctx, filters)
	if err != nil {
		s.log.Error("failed to count articles", "error", err)
		respondInternalError(c, "failed to fetch articles")
		return
	}

	c.JSON(http.StatusOK, paginate(articles, total, page, perPage))
}

func (s *Server) knownSource(id string) bool {
	for _, source := range s.sources {
		if source.ID == id {
			return true
		}
	}
	return false
}
