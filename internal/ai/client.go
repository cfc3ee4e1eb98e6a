// internal/ai/client.go
package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"bizfit-workers/internal/common/config"
	stderrors "bizfit-workers/internal/common/errors"
	commonhttp "bizfit-workers/internal/common/http"
	"bizfit-workers/internal/common/logger"
	"bizfit-workers/internal/common/metrics"
)

// ChatClient is the LLM dependency of the analysis orchestrator. JSON mode
// means the completion content is guaranteed (by the provider) to be a
// single JSON object.
type ChatClient interface {
	// Configured reports whether a credential is present. False is a normal
	// state, not an error: analysis then runs the deterministic path.
	Configured() bool
	// CompleteJSON sends a system+user message pair in JSON-response mode
	// and returns the raw completion content.
	CompleteJSON(ctx context.Context, system, user string) (string, error)
}

// Client talks to an OpenAI-compatible chat-completions endpoint.
type Client struct {
	apiKey      string
	baseURL     string
	model       string
	temperature float64
	maxTokens   int
	http        *commonhttp.Client
	logger      logger.Logger
}

func NewClient(cfg config.AIConfig, log logger.Logger) *Client {
	return &Client{
		apiKey:      cfg.APIKey,
		baseURL:     strings.TrimRight(cfg.BaseURL, "/"),
		model:       cfg.Model,
		temperature: cfg.Temperature,
		maxTokens:   cfg.MaxTokens,
		// No transport timeout: the caller's context carries the hard
		// deadline, and two competing timeouts make failures ambiguous.
		http:   commonhttp.NewClient(0),
		logger: log.WithFields(map[string]interface{}{"component": "ai-client"}),
	}
}

func (c *Client) Configured() bool {
	return c.apiKey != ""
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model          string        `json:"model"`
	Messages       []chatMessage `json:"messages"`
	ResponseFormat struct {
		Type string `json:"type"`
	} `json:"response_format"`
	Temperature float64 `json:"temperature"`
	MaxTokens   int     `json:"max_tokens"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
		FinishReason string `json:"finish_reason"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error"`
}

func (c *Client) CompleteJSON(ctx context.Context, system, user string) (string, error) {
	if !c.Configured() {
		return "", stderrors.New(stderrors.ErrCodeAICredentialMissing, "no API key configured")
	}

	reqBody := chatRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "system", Content: system},
			{Role: "user", Content: user},
		},
		Temperature: c.temperature,
		MaxTokens:   c.maxTokens,
	}
	reqBody.ResponseFormat.Type = "json_object"

	body, err := json.Marshal(reqBody)
	if err != nil {
		return "", stderrors.Wrap(stderrors.ErrCodeAIRequestFailed, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/v1/chat/completions", bytes.NewReader(body))
	if err != nil {
		return "", stderrors.Wrap(stderrors.ErrCodeAIRequestFailed, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	start := time.Now()
	resp, err := c.http.Do(req)
	metrics.AIRequestDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		if ctx.Err() != nil {
			return "", stderrors.Wrap(stderrors.ErrCodeAITimeout, ctx.Err())
		}
		return "", stderrors.Wrap(stderrors.ErrCodeAIRequestFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		return "", stderrors.New(stderrors.ErrCodeAIRateLimited, "provider throttled the request")
	}
	if resp.StatusCode != http.StatusOK {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return "", stderrors.New(stderrors.ErrCodeAIRequestFailed,
			fmt.Sprintf("status %d: %s", resp.StatusCode, strings.TrimSpace(string(snippet))))
	}

	var parsed chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", stderrors.Wrap(stderrors.ErrCodeAIResponseInvalid, err)
	}
	if parsed.Error != nil {
		return "", stderrors.New(stderrors.ErrCodeAIRequestFailed, parsed.Error.Message)
	}
	if len(parsed.Choices) == 0 {
		return "", stderrors.New(stderrors.ErrCodeAIResponseInvalid, "no choices in response")
	}

	content := strings.TrimSpace(parsed.Choices[0].Message.Content)
	if content == "" {
		return "", stderrors.New(stderrors.ErrCodeAIResponseInvalid, "empty completion content")
	}

	c.logger.Debug("completion received", map[string]interface{}{
		"model":        c.model,
		"finishReason": parsed.Choices[0].FinishReason,
		"durationMs":   time.Since(start).Milliseconds(),
	})

	return content, nil
}
