package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/rmgpulse/rmgpulse/internal/logger"
)

// Normalization request parameters. The low temperature keeps cleaning
// deterministic; the prompt body is truncated to stay inside token limits.
const (
	cleanTemperature = 0.1
	cleanMaxTokens   = 2500
	maxPromptBody    = 3000
)

const cleanSystemPrompt = "You are an expert content editor specializing in RMG industry news. " +
	"Clean article content only, no summaries."

// Completer is the single-shot completion interface the normalizer and
// analyzer consume.
type Completer interface {
	Complete(ctx context.Context, systemPrompt, userPrompt string, temperature float64, maxTokens int) (string, error)
	Configured() bool
}

// Normalizer strips scraping artifacts from article bodies through the
// completion API, passing the body through unchanged on any failure.
type Normalizer struct {
	client Completer
	log    logger.Interface
}

// NewNormalizer creates a content normalizer.
func NewNormalizer(client Completer, log logger.Interface) *Normalizer {
	return &Normalizer{
		client: client,
		log:    log.WithComponent("content_normalizer"),
	}
}

type cleanedPayload struct {
	CleanedContent string `json:"cleaned_content"`
}

// CleanContent returns a cleaned version of body, or body unchanged when
// the completion service is unconfigured, unreachable, or returns an
// unusable payload. When unconfigured, no network call is made.
func (n *Normalizer) CleanContent(ctx context.Context, body, title string) string {
	if !n.client.Configured() {
		return body
	}

	truncated := body
	if len(truncated) > maxPromptBody {
		truncated = truncated[:maxPromptBody]
	}

	prompt := fmt.Sprintf(`Please clean this RMG industry news article content:

Title: %s
Raw Content: %s

Please return ONLY the cleaned article content in this exact JSON format:
{
    "cleaned_content": "Pure article content with proper formatting, no title or metadata"
}

Important:
- Return ONLY the article content in cleaned_content (no title, no JSON wrapper, no metadata)
- Make the content readable and well-formatted
- Remove any HTML artifacts or formatting issues
- Keep all important information and details
- Do NOT generate any summary, just clean the content`, title, truncated)

	response, err := n.client.Complete(ctx, cleanSystemPrompt, prompt, cleanTemperature, cleanMaxTokens)
	if err != nil {
		n.log.Warn("content cleaning failed, keeping original body", "error", err)
		return body
	}

	var payload cleanedPayload
	if unmarshalErr := json.Unmarshal([]byte(response), &payload); unmarshalErr != nil {
		extracted := extractJSON(response)
		if extracted == "" || json.Unmarshal([]byte(extracted), &payload) != nil {
			n.log.Warn("content cleaning returned unparseable payload, keeping original body")
			return body
		}
	}

	cleaned := payload.CleanedContent
	if cleaned == "" {
		return body
	}

	// The model sometimes echoes its JSON wrapper instead of content.
	if strings.HasPrefix(cleaned, "{") || strings.HasPrefix(cleaned, `"`) {
		n.log.Warn("cleaned content contains JSON artifacts, keeping original body")
		return body
	}

	n.log.Debug("content cleaned", "original_len", len(body), "cleaned_len", len(cleaned))
	return cleaned
}
