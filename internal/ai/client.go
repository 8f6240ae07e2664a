// Package ai integrates a DeepSeek-compatible chat-completions API for
// content cleaning and article analytics. Every consumer has a
// deterministic fallback; a missing API key is a supported state.
package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rmgpulse/rmgpulse/internal/config"
	"github.com/rmgpulse/rmgpulse/internal/logger"
)

// ErrNotConfigured is returned when no API key is set.
var ErrNotConfigured = errors.New("ai: api key not configured")

// maxResponseSize caps completion response bodies.
const maxResponseSize = 1 << 20

// Client is a minimal chat-completions client.
type Client struct {
	apiKey     string
	endpoint   string
	model      string
	httpClient *http.Client
	log        logger.Interface
}

// NewClient creates a completion client from config. With an empty API key
// the client is still constructed; Complete returns ErrNotConfigured.
func NewClient(cfg config.AIConfig, log logger.Interface) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		apiKey:   cfg.APIKey,
		endpoint: cfg.Endpoint,
		model:    cfg.Model,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log.WithComponent("ai_client"),
	}
}

// Configured reports whether an API key is set.
func (c *Client) Configured() bool {
	return c.apiKey != ""
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// Complete sends a single chat-completion request and returns the first
// choice's message content.
func (c *Client) Complete(
	ctx context.Context,
	systemPrompt, userPrompt string,
	temperature float64,
	maxTokens int,
) (string, error) {
	if !c.Configured() {
		return "", ErrNotConfigured
	}

	payload, err := json.Marshal(chatRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: userPrompt},
		},
		Temperature: temperature,
		MaxTokens:   maxTokens,
	})
	if err != nil {
		return "", fmt.Errorf("failed to marshal completion request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("failed to build completion request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("completion request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return "", fmt.Errorf("failed to read completion response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("completion request returned status %d", resp.StatusCode)
	}

	var parsed chatResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", fmt.Errorf("failed to decode completion response: %w", err)
	}
	if len(parsed.Choices) == 0 {
		return "", errors.New("completion response has no choices")
	}

	return parsed.Choices[0].Message.Content, nil
}

// extractJSON pulls the first balanced JSON object out of a completion
// that may wrap it in prose or a code fence.
func extractJSON(s string) string {
	start := -1
	depth := 0
	inString := false
	escaped := false

	for i, r := range s {
		if start >= 0 && inString {
			switch {
			case escaped:
				escaped = false
			case r == '\\':
				escaped = true
			case r == '"':
				inString = false
			}
			continue
		}
		switch r {
		case '{':
			if start < 0 {
				start = i
			}
			depth++
		case '}':
			if start >= 0 {
				depth--
				if depth == 0 {
					return s[start : i+1]
				}
			}
		case '"':
			if start >= 0 {
				inString = true
			}
		}
	}
	return ""
}
