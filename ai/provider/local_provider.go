package provider

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/teranos/milassist/ai/openrouter"
	"github.com/teranos/milassist/errors"
	"github.com/teranos/milassist/internal/httpclient"
	"github.com/teranos/milassist/logger"
)

// LocalConfig configures a local inference server.
type LocalConfig struct {
	BaseURL     string
	Model       string
	Timeout     time.Duration // 0 = 120s
	Temperature float64       // 0 = 0.2
	Logger      *zap.SugaredLogger
}

// LocalProvider talks to Ollama, LocalAI or any server exposing
// /v1/chat/completions.
type LocalProvider struct {
	baseURL     string
	model       string
	temperature float64
	httpClient  *httpclient.Client
	logger      *zap.SugaredLogger
}

// NewLocalProvider creates a local client. Private addresses are allowed
// since the server normally runs on loopback.
func NewLocalProvider(cfg LocalConfig) *LocalProvider {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 120 * time.Second
	}
	if cfg.Temperature == 0 {
		cfg.Temperature = 0.2
	}
	allowPrivate := false
	return &LocalProvider{
		baseURL:     strings.TrimRight(cfg.BaseURL, "/"),
		model:       cfg.Model,
		temperature: cfg.Temperature,
		httpClient:  httpclient.NewWithOptions(cfg.Timeout, httpclient.Options{BlockPrivateIP: &allowPrivate}),
		logger:      logger.OrNop(cfg.Logger),
	}
}

type localRequest struct {
	Model          string                     `json:"model"`
	Messages       []openrouter.Message       `json:"messages"`
	Stream         bool                       `json:"stream"`
	Temperature    *float64                   `json:"temperature,omitempty"`
	MaxTokens      int                        `json:"max_tokens,omitempty"`
	ResponseFormat *openrouter.ResponseFormat `json:"response_format,omitempty"`
}

// Chat implements AIClient.
func (lp *LocalProvider) Chat(ctx context.Context, req openrouter.ChatRequest) (*openrouter.ChatResponse, error) {
	model := lp.model
	if req.Model != nil && *req.Model != "" {
		model = *req.Model
	}
	temperature := lp.temperature
	if req.Temperature != nil {
		temperature = *req.Temperature
	}

	body := localRequest{
		Model:       model,
		Stream:      false,
		Temperature: &temperature,
	}
	if req.MaxTokens != nil {
		body.MaxTokens = *req.MaxTokens
	}
	if req.SystemPrompt != "" {
		body.Messages = append(body.Messages, openrouter.Message{Role: "system", Content: req.SystemPrompt})
	}
	body.Messages = append(body.Messages, openrouter.Message{Role: "user", Content: req.UserPrompt})
	if req.JSON {
		body.ResponseFormat = &openrouter.ResponseFormat{Type: "json_object"}
	}

	data, err := json.Marshal(body)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal request")
	}
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, lp.baseURL+"/v1/chat/completions", bytes.NewReader(data))
	if err != nil {
		return nil, errors.Wrap(err, "failed to create request")
	}
	httpReq.Header.Set("Content-Type", "application/json")

	lp.logger.Debugw("Local inference request", "model", model, "base_url", lp.baseURL)
	if logger.TraceEnabled() {
		lp.logger.Debugw("Local inference request body", "body", string(data))
	}

	resp, err := lp.httpClient.Do(httpReq)
	if err != nil {
		return nil, errors.Mark(errors.Wrap(err, "local inference request failed"), errors.ErrServiceUnavailable)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		apiErr := &openrouter.APIError{StatusCode: resp.StatusCode, Body: string(raw)}
		if resp.StatusCode == http.StatusServiceUnavailable {
			return nil, errors.Mark(apiErr, errors.ErrModelBusy)
		}
		return nil, errors.Wrap(apiErr, "local inference error")
	}

	var completion openrouter.ChatCompletionResponse
	if err := json.NewDecoder(resp.Body).Decode(&completion); err != nil {
		return nil, errors.Wrap(err, "failed to decode response")
	}
	if len(completion.Choices) == 0 {
		return nil, errors.New("no completion choices returned")
	}

	return &openrouter.ChatResponse{
		Content: strings.TrimSpace(completion.Choices[0].Message.Content),
		Model:   model,
		Usage:   completion.Usage,
	}, nil
}

// Model returns the configured model name.
func (lp *LocalProvider) Model() string { return lp.model }
