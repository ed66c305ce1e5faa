// Package openrouter is a chat completions client for OpenRouter.ai and any
// other OpenAI-compatible endpoint.
package openrouter

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/teranos/milassist/errors"
	"github.com/teranos/milassist/internal/httpclient"
	"github.com/teranos/milassist/internal/util"
	"github.com/teranos/milassist/logger"
)

const (
	// DefaultModel should match the default in am/defaults.go
	DefaultModel = "openai/gpt-4o-mini"

	DefaultBaseURL = "https://openrouter.ai/api/v1"

	defaultTemperature = 0.2
	defaultMaxTokens   = 1000
	maxRetries         = 3
)

// Client talks to the chat completions endpoint.
type Client struct {
	baseURL    string
	httpClient *httpclient.Client
	config     Config
	logger     *zap.SugaredLogger
}

// Config holds client configuration.
type Config struct {
	APIKey      string
	Model       string
	BaseURL     string   // "" = DefaultBaseURL
	Temperature *float64 // nil = 0.2
	MaxTokens   *int     // nil = 1000
	Timeout     time.Duration

	// RequestsPerMinute caps outbound calls; 0 = unlimited.
	RequestsPerMinute int
	// Title is sent as X-Title for the OpenRouter dashboard.
	Title  string
	Logger *zap.SugaredLogger
}

// NewClient creates a client, filling in defaults.
func NewClient(config Config) *Client {
	if config.Model == "" {
		config.Model = DefaultModel
	}
	if config.Temperature == nil {
		config.Temperature = util.Ptr(defaultTemperature)
	}
	if config.MaxTokens == nil {
		config.MaxTokens = util.Ptr(defaultMaxTokens)
	}
	if config.Timeout <= 0 {
		config.Timeout = 120 * time.Second
	}
	if config.Title == "" {
		config.Title = "milassist"
	}
	baseURL := strings.TrimRight(config.BaseURL, "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	return &Client{
		baseURL: baseURL,
		httpClient: httpclient.NewWithOptions(config.Timeout, httpclient.Options{
			RequestsPerMinute: config.RequestsPerMinute,
		}),
		config: config,
		logger: logger.OrNop(config.Logger),
	}
}

// ChatCompletionRequest is the wire request.
type ChatCompletionRequest struct {
	Model          string          `json:"model"`
	Messages       []Message       `json:"messages"`
	Temperature    *float64        `json:"temperature,omitempty"` // nil omits; 0 is sent
	MaxTokens      int             `json:"max_tokens,omitempty"`
	ResponseFormat *ResponseFormat `json:"response_format,omitempty"`
}

// ResponseFormat requests structured output.
type ResponseFormat struct {
	Type string `json:"type"` // "json_object"
}

// ChatRequest is a high-level request.
type ChatRequest struct {
	SystemPrompt string
	UserPrompt   string
	Temperature  *float64
	MaxTokens    *int
	Model        *string
	// JSON asks the model for a single JSON object.
	JSON bool
}

// ChatResponse is the model's answer.
type ChatResponse struct {
	Content string
	Model   string
	Usage   Usage
}

// Message is one chat message.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ChatCompletionResponse is the wire response.
type ChatCompletionResponse struct {
	ID      string   `json:"id"`
	Model   string   `json:"model"`
	Choices []Choice `json:"choices"`
	Usage   Usage    `json:"usage"`
}

// Choice is a completion choice.
type Choice struct {
	Index        int     `json:"index"`
	Message      Message `json:"message"`
	FinishReason string  `json:"finish_reason"`
}

// Usage is token accounting.
type Usage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

// APIError is a non-200 answer from the endpoint.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("API request failed with status %d: %s", e.StatusCode, e.Body)
}

// CreateChatCompletion sends one request without retries. A 503 or an
// "overloaded" body is marked errors.ErrModelBusy.
func (c *Client) CreateChatCompletion(ctx context.Context, req ChatCompletionRequest) (*ChatCompletionResponse, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal request")
	}
	if logger.TraceEnabled() {
		c.logger.Debugw("Chat request body", "body", string(body))
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return nil, errors.Wrap(err, "failed to create request")
	}
	httpReq.Header.Set("Content-Type", "application/json")
	if c.config.APIKey != "" {
		httpReq.Header.Set("Authorization", "Bearer "+c.config.APIKey)
	}
	httpReq.Header.Set("X-Title", c.config.Title)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, errors.Wrap(err, "failed to send request")
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read response")
	}
	if logger.TraceEnabled() {
		c.logger.Debugw("Chat response body", logger.FieldStatus, resp.StatusCode, "body", string(respBody))
	}

	if resp.StatusCode != http.StatusOK {
		apiErr := &APIError{StatusCode: resp.StatusCode, Body: string(respBody)}
		if resp.StatusCode == http.StatusServiceUnavailable || strings.Contains(strings.ToLower(apiErr.Body), "overloaded") {
			return nil, errors.Mark(apiErr, errors.ErrModelBusy)
		}
		return nil, apiErr
	}

	var out ChatCompletionResponse
	if err := json.Unmarshal(respBody, &out); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal response")
	}
	return &out, nil
}

// Chat sends req with up to three attempts on network errors.
func (c *Client) Chat(ctx context.Context, req ChatRequest) (*ChatResponse, error) {
	if c.config.APIKey == "" {
		return nil, errors.Mark(errors.New("OpenRouter API key not configured"), errors.ErrServiceUnavailable)
	}

	temperature := *c.config.Temperature
	if req.Temperature != nil {
		temperature = *req.Temperature
	}
	maxTokens := *c.config.MaxTokens
	if req.MaxTokens != nil {
		maxTokens = *req.MaxTokens
	}
	model := c.config.Model
	if req.Model != nil {
		model = *req.Model
	}

	c.logger.Debugw("AI chat request",
		"model", model,
		"temperature", temperature,
		"max_tokens", maxTokens,
		"json", req.JSON,
	)

	messages := []Message{{Role: "user", Content: req.UserPrompt}}
	if req.SystemPrompt != "" {
		messages = append([]Message{{Role: "system", Content: req.SystemPrompt}}, messages...)
	}
	wire := ChatCompletionRequest{
		Model:       model,
		Messages:    messages,
		Temperature: &temperature,
		MaxTokens:   maxTokens,
	}
	if req.JSON {
		wire.ResponseFormat = &ResponseFormat{Type: "json_object"}
	}

	var (
		resp *ChatCompletionResponse
		err  error
	)
	for attempt := 0; attempt < maxRetries; attempt++ {
		if attempt > 0 {
			delay := time.Duration(attempt) * time.Second
			c.logger.Debugw("Retrying chat request", "attempt", attempt, "delay", delay)
			select {
			case <-ctx.Done():
				return nil, errors.Wrap(ctx.Err(), "chat request cancelled")
			case <-time.After(delay):
			}
		}

		resp, err = c.CreateChatCompletion(ctx, wire)
		if err == nil {
			if attempt > 0 {
				c.logger.Infow("Chat request succeeded after retries", "attempts", attempt+1, "model", model)
			}
			break
		}

		c.logger.Warnw("Chat API error", "attempt", attempt+1, "error", err, "model", model)
		if !isRetryableError(err) {
			return nil, errors.Wrap(err, "OpenRouter API error")
		}
	}
	if err != nil {
		return nil, errors.Wrapf(err, "OpenRouter API error after %d attempts", maxRetries)
	}

	if len(resp.Choices) == 0 {
		return nil, errors.New("no response choices from OpenRouter")
	}
	content := strings.TrimSpace(resp.Choices[0].Message.Content)

	c.logger.Debugw("Chat response",
		"content_length", len(content),
		"total_tokens", resp.Usage.TotalTokens,
		"estimated_cost_usd", CalculateCost(model, resp.Usage.PromptTokens, resp.Usage.CompletionTokens),
	)

	return &ChatResponse{Content: content, Model: model, Usage: resp.Usage}, nil
}

// isRetryableError reports network-level failures worth another attempt.
// HTTP status errors are never retried here.
func isRetryableError(err error) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return false
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return true
	}
	var errno syscall.Errno
	if errors.As(err, &errno) {
		switch errno {
		case syscall.ECONNREFUSED, syscall.ECONNRESET, syscall.ETIMEDOUT:
			return true
		}
	}

	msg := strings.ToLower(err.Error())
	for _, s := range []string{
		"connection reset by peer",
		"connection refused",
		"temporary failure",
		"network is unreachable",
		"i/o timeout",
	} {
		if strings.Contains(msg, s) {
			return true
		}
	}
	return false
}

// IsConfigured reports whether an API key is set.
func (c *Client) IsConfigured() bool {
	return c.config.APIKey != ""
}

// SetHTTPClient swaps in a plain client. Tests only: it disables private IP
// blocking so httptest servers are reachable.
func (c *Client) SetHTTPClient(client *http.Client) {
	c.httpClient = httpclient.Wrap(client)
}
