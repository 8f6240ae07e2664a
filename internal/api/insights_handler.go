package api

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/rmgpulse/rmgpulse/internal/ai"
	"github.com/rmgpulse/rmgpulse/internal/database"
	"github.com/rmgpulse/rmgpulse/internal/domain"
)

const (
	defaultHoursBack = 24
	// analyticsWindow caps how many recent articles feed the analytics
	// endpoints.
	analyticsWindow = 20
	// trendingTextCap bounds the texts handed to trending analysis.
	trendingTextCap = 10
	// sentimentSampleSize bounds the per-article analyses for insights.
	sentimentSampleSize = 5
	trendingThreshold   = 0.5
)

type analyzeRequest struct {
	Title string `json:"title"`
	Text  string `json:"text"`
}

// postAnalyze handles POST /api/analyze for a single article text.
func (s *Server) postAnalyze(c *gin.Context) {
	var req analyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Text == "" {
		respondBadRequest(c, "text is required")
		return
	}

	analysis := s.analyzer.AnalyzeArticle(c.Request.Context(), req.Text, req.Title)
	c.JSON(http.StatusOK, analysis)
}

// getSentiment handles GET /api/sentiment for quick ad-hoc scoring.
func (s *Server) getSentiment(c *gin.Context) {
	text := c.Query("text")
	if text == "" {
		respondBadRequest(c, "text query parameter is required")
		return
	}

	analysis := s.analyzer.AnalyzeArticle(c.Request.Context(), text, "")
	c.JSON(http.StatusOK, gin.H{
		"sentiment":  analysis.Sentiment.Label,
		"confidence": analysis.Sentiment.Confidence,
		"method":     analysis.Method,
	})
}

// getTrending handles GET /api/trending over a recent time window.
func (s *Server) getTrending(c *gin.Context) {
	hoursBack, err := strconv.Atoi(c.DefaultQuery("hours_back", strconv.Itoa(defaultHoursBack)))
	if err != nil || hoursBack < 1 {
		hoursBack = defaultHoursBack
	}

	ctx := c.Request.Context()
	since := time.Now().Add(-time.Duration(hoursBack) * time.Hour)

	articles, err := s.store.ListRecent(ctx, since, analyticsWindow)
	if err != nil {
		s.log.Error("failed to list recent articles", "error", err)
		respondInternalError(c, "failed to fetch articles")
		return
	}

	topics := s.analyzer.TrendingTopics(ctx, articleTexts(articles, trendingTextCap))

	items := make([]gin.H, 0, len(topics))
	for _, topic := range topics {
		items = append(items, gin.H{
			"name":        topic.Name,
			"category":    topic.Category,
			"trend_score": topic.Score,
			"is_trending": topic.Score > trendingThreshold,
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"topics":        items,
		"hours_back":    hoursBack,
		"article_count": len(articles),
		"last_updated":  time.Now().UTC().Format(time.RFC3339),
	})
}

// getInsights handles GET /api/insights, a dashboard summary combining
// trending topics with a sampled sentiment overview.
func (s *Server) getInsights(c *gin.Context) {
	ctx := c.Request.Context()

	articles, err := s.store.List(ctx, database.ListFilters{Limit: analyticsWindow})
	if err != nil {
		s.log.Error("failed to list articles", "error", err)
		respondInternalError(c, "failed to fetch articles")
		return
	}

	topics := s.analyzer.TrendingTopics(ctx, articleTexts(articles, trendingTextCap))

	sample := articles
	if len(sample) > sentimentSampleSize {
		sample = sample[:sentimentSampleSize]
	}

	// Sample articles are analyzed concurrently; each completion has its
	// own timeout inside the client.
	analyses := make([]ai.Analysis, len(sample))
	var wg sync.WaitGroup
	for i, article := range sample {
		wg.Add(1)
		go func(i int, article *domain.Article) {
			defer wg.Done()
			analyses[i] = s.analyzer.AnalyzeArticle(ctx, article.Body, article.Title)
		}(i, article)
	}
	wg.Wait()

	positive, negative, neutral := 0, 0, 0
	for _, analysis := range analyses {
		switch analysis.Sentiment.Label {
		case "positive":
			positive++
		case "negative":
			negative++
		default:
			neutral++
		}
	}
	sampled := len(sample)

	c.JSON(http.StatusOK, gin.H{
		"trending_topics": topics,
		"sentiment_overview": gin.H{
			"positive": ratio(positive, sampled),
			"negative": ratio(negative, sampled),
			"neutral":  ratio(neutral, sampled),
		},
		"total_articles": len(articles),
		"last_updated":   time.Now().UTC().Format(time.RFC3339),
	})
}

// articleTexts joins title and body per article, capped at limit texts.
func articleTexts(articles []*domain.Article, limit int) []string {
	if len(articles) > limit {
		articles = articles[:limit]
	}
	texts := make([]string, 0, len(articles))
	for _, article := range articles {
		texts = append(texts, article.Title+" "+article.Body)
	}
	return texts
}

func ratio(n, total int) string {
	return strconv.Itoa(n) + "/" + strconv.Itoa(total)
}
