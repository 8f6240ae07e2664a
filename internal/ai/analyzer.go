package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/rmgpulse/rmgpulse/internal/logger"
)

// Analysis request parameters.
const (
	analyzeTemperature = 0.3
	analyzeMaxTokens   = 1000
	trendingMaxTokens  = 500
	// trendingSampleSize bounds the combined prompt for trending topics.
	trendingSampleSize = 5
	maxTopics          = 5
)

const analyzeSystemPrompt = "You are an expert analyst specializing in the Ready-Made Garment (RMG) " +
	"industry. Provide accurate, insightful analysis of news articles with focus on market impact, " +
	"trends, and business implications. Always respond with valid JSON format."

const trendingSystemPrompt = "You are an expert in identifying trending topics in the Ready-Made " +
	"Garment industry. Always respond with valid JSON format."

// Sentiment is a label with a score in [-1, 1] and a confidence in [0, 1].
type Sentiment struct {
	Label      string  `json:"label"`
	Score      float64 `json:"score"`
	Confidence float64 `json:"confidence"`
}

// Analysis is the structured result of analyzing one article.
type Analysis struct {
	Sentiment            Sentiment `json:"sentiment"`
	KeyInsights          string    `json:"key_insights"`
	MarketImpact         string    `json:"market_impact"`
	Topics               []string  `json:"topics"`
	GeographicImpact     string    `json:"geographic_impact,omitempty"`
	IndustrySectors      []string  `json:"industry_sectors,omitempty"`
	BusinessImplications string    `json:"business_implications,omitempty"`
	Method               string    `json:"method"`
}

// Topic is one trending topic with a relevance score.
type Topic struct {
	Name     string  `json:"name"`
	Category string  `json:"category"`
	Score    float64 `json:"score"`
}

// Keyword tables for the no-credential fallback scoring.
var (
	positiveKeywords = []string{"growth", "increase", "profit", "expansion", "success", "boost", "rise"}
	negativeKeywords = []string{"decline", "loss", "crisis", "drop", "fall", "recession", "problem"}

	topicKeywords = []string{
		"garment", "textile", "fashion", "apparel", "clothing",
		"manufacturing", "export", "cotton", "fabric", "factory",
	}
)

// fallbackTopics is returned when trending analysis is unavailable.
var fallbackTopics = []Topic{
	{Name: "Ready-Made Garments", Category: "RMG", Score: 0.7},
	{Name: "Textile Industry", Category: "Manufacturing", Score: 0.6},
	{Name: "Fashion Trends", Category: "Fashion", Score: 0.5},
}

// Analyzer produces sentiment and trending-topic analytics. It always
// returns a usable result; every failure degrades to keyword scoring.
type Analyzer struct {
	client Completer
	log    logger.Interface
}

// NewAnalyzer creates an article analyzer.
func NewAnalyzer(client Completer, log logger.Interface) *Analyzer {
	return &Analyzer{
		client: client,
		log:    log.WithComponent("article_analyzer"),
	}
}

// AnalyzeArticle analyzes one article. Unconfigured or failing completion
// falls back to keyword scoring; a non-JSON completion falls back to a
// sentiment scan of the response text.
func (a *Analyzer) AnalyzeArticle(ctx context.Context, text, title string) Analysis {
	if !a.client.Configured() {
		return a.fallbackAnalysis(text, title)
	}

	prompt := fmt.Sprintf(`Analyze this RMG (Ready-Made Garment) industry news article and provide detailed insights.

Title: %s
Article: %s

Please provide analysis in the following JSON format:
{
    "sentiment": {"label": "positive/negative/neutral", "score": -1.0 to 1.0, "confidence": 0.0 to 1.0},
    "key_insights": "2-3 key insights about the article",
    "market_impact": "high/medium/low",
    "topics": ["topic1", "topic2", "topic3"],
    "geographic_impact": "regions affected",
    "industry_sectors": ["sector1", "sector2"],
    "business_implications": "what this means for businesses"
}

Focus on the RMG industry context and provide actionable insights.`, title, text)

	response, err := a.client.Complete(ctx, analyzeSystemPrompt, prompt, analyzeTemperature, analyzeMaxTokens)
	if err != nil {
		a.log.Warn("article analysis failed, using keyword fallback", "error", err)
		return a.fallbackAnalysis(text, title)
	}

	var analysis Analysis
	if json.Unmarshal([]byte(response), &analysis) != nil {
		if extracted := extractJSON(response); extracted == "" || json.Unmarshal([]byte(extracted), &analysis) != nil {
			return a.parseTextResponse(response, text)
		}
	}
	analysis.Method = "deepseek"
	if analysis.Sentiment.Label == "" {
		analysis.Sentiment = Sentiment{Label: "neutral", Score: 0, Confidence: 0.5}
	}
	if analysis.MarketImpact == "" {
		analysis.MarketImpact = "medium"
	}
	return analysis
}

// parseTextResponse salvages sentiment from a free-text completion.
func (a *Analyzer) parseTextResponse(response, articleText string) Analysis {
	lower := strings.ToLower(response)

	sentiment := Sentiment{Label: "neutral", Score: 0, Confidence: 0.7}
	switch {
	case containsAny(lower, []string{"positive", "growth", "increase", "success"}):
		sentiment = Sentiment{Label: "positive", Score: 0.7, Confidence: 0.7}
	case containsAny(lower, []string{"negative", "decline", "crisis", "problem"}):
		sentiment = Sentiment{Label: "negative", Score: -0.7, Confidence: 0.7}
	}

	insights := response
	if len(insights) > 200 {
		insights = insights[:200] + "..."
	}

	return Analysis{
		Sentiment:    sentiment,
		KeyInsights:  insights,
		MarketImpact: "medium",
		Topics:       extractSimpleTopics(strings.ToLower(articleText)),
		Method:       "deepseek_text",
	}
}

// fallbackAnalysis scores sentiment from fixed keyword tables.
func (a *Analyzer) fallbackAnalysis(text, title string) Analysis {
	lower := strings.ToLower(text + " " + title)

	positive := countHits(lower, positiveKeywords)
	negative := countHits(lower, negativeKeywords)

	sentiment := Sentiment{Label: "neutral", Score: 0, Confidence: 0.6}
	switch {
	case positive > negative:
		sentiment = Sentiment{Label: "positive", Score: min(0.8, float64(positive)*0.1), Confidence: 0.6}
	case negative > positive:
		sentiment = Sentiment{Label: "negative", Score: max(-0.8, -float64(negative)*0.1), Confidence: 0.6}
	}

	impact := "low"
	if sentiment.Score > 0.3 || sentiment.Score < -0.3 {
		impact = "medium"
	}

	return Analysis{
		Sentiment:    sentiment,
		KeyInsights:  "Analysis performed using fallback method.",
		MarketImpact: impact,
		Topics:       extractSimpleTopics(lower),
		Method:       "fallback",
	}
}

type trendingPayload struct {
	Topics []Topic `json:"topics"`
}

// TrendingTopics identifies trending topics across the given article
// texts, falling back to a fixed list when analysis is unavailable.
func (a *Analyzer) TrendingTopics(ctx context.Context, texts []string) []Topic {
	if !a.client.Configured() || len(texts) == 0 {
		return fallbackTopics
	}

	sample := texts
	if len(sample) > trendingSampleSize {
		sample = sample[:trendingSampleSize]
	}

	prompt := fmt.Sprintf(`Analyze these RMG industry articles and identify the top 5 trending topics:

Articles: %s

Please provide analysis in JSON format:
{
    "topics": [
        {"name": "topic_name", "category": "category", "score": 0.0 to 1.0}
    ]
}`, strings.Join(sample, " "))

	response, err := a.client.Complete(ctx, trendingSystemPrompt, prompt, analyzeTemperature, trendingMaxTokens)
	if err != nil {
		a.log.Warn("trending analysis failed, using fallback topics", "error", err)
		return fallbackTopics
	}

	var payload trendingPayload
	if json.Unmarshal([]byte(response), &payload) != nil {
		if extracted := extractJSON(response); extracted == "" || json.Unmarshal([]byte(extracted), &payload) != nil {
			return fallbackTopics
		}
	}
	if len(payload.Topics) == 0 {
		return fallbackTopics
	}
	return payload.Topics
}

// extractSimpleTopics lists industry keywords present in the text.
func extractSimpleTopics(lower string) []string {
	var topics []string
	for _, keyword := range topicKeywords {
		if strings.Contains(lower, keyword) {
			topics = append(topics, strings.ToUpper(keyword[:1])+keyword[1:])
			if len(topics) == maxTopics {
				break
			}
		}
	}
	return topics
}

func containsAny(s string, terms []string) bool {
	for _, term := range terms {
		if strings.Contains(s, term) {
			return true
		}
	}
	return false
}

func countHits(s string, terms []string) int {
	hits := 0
	for _, term := range terms {
		if strings.Contains(s, term) {
			hits++
		}
	}
	return hits
}
