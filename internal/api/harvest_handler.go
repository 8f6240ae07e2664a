package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
)

const (
	defaultPerSource = 15
	maxPerSource     = 50
)

// postHarvest handles POST /api/harvest. The pass runs synchronously and
// the response reports newly stored counts per source.
func (s *Server) postHarvest(c *gin.Context) {
	perSource, err := strconv.Atoi(c.DefaultQuery("articles_per_source", strconv.Itoa(defaultPerSource)))
	if err != nil || perSource < 1 || perSource > maxPerSource {
		respondBadRequest(c, "articles_per_source must be between 1 and 50")
		return
	}

	s.log.Info("harvest triggered via api", "articles_per_source", perSource)

	results := s.harvester.HarvestAll(c.Request.Context(), perSource)

	total := 0
	for _, count := range results {
		total += count
	}

	c.JSON(http.StatusOK, gin.H{
		"message":        "News fetch completed",
		"results":        results,
		"total_articles": total,
		"timestamp":      time.Now().UTC().Format(time.RFC3339),
	})
}
