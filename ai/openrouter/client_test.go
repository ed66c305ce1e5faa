package openrouter

import (
	"context"
	"encoding/json"
	"net"
	"net/http"
	"net/http/httptest"
	"syscall"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/teranos/milassist/errors"
	"github.com/teranos/milassist/logger"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	c := NewClient(Config{APIKey: "test-key", BaseURL: srv.URL})
	c.SetHTTPClient(srv.Client())
	return c
}

func TestClient_Configuration(t *testing.T) {
	t.Run("applies default values", func(t *testing.T) {
		c := NewClient(Config{APIKey: "test-key"})
		assert.Equal(t, "openai/gpt-4o-mini", c.config.Model)
		assert.Equal(t, 0.2, *c.config.Temperature)
		assert.Equal(t, 1000, *c.config.MaxTokens)
		assert.Equal(t, DefaultBaseURL, c.baseURL)
	})

	t.Run("preserves custom values", func(t *testing.T) {
		temp := 0.8
		tokens := 2000
		c := NewClient(Config{
			APIKey:      "test-key",
			Model:       "custom/model",
			BaseURL:     "https://example.com/v1/",
			Temperature: &temp,
			MaxTokens:   &tokens,
		})
		assert.Equal(t, "custom/model", c.config.Model)
		assert.Equal(t, 0.8, *c.config.Temperature)
		assert.Equal(t, 2000, *c.config.MaxTokens)
		assert.Equal(t, "https://example.com/v1", c.baseURL)
	})
}

func TestClient_IsConfigured(t *testing.T) {
	assert.True(t, NewClient(Config{APIKey: "k"}).IsConfigured())
	assert.False(t, NewClient(Config{}).IsConfigured())
}

func TestChat_MissingAPIKey(t *testing.T) {
	_, err := NewClient(Config{}).Chat(context.Background(), ChatRequest{UserPrompt: "hi"})
	require.Error(t, err)
	assert.True(t, errors.IsServiceUnavailableError(err))
}

func TestChat_Success(t *testing.T) {
	var got ChatCompletionRequest
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		assert.Equal(t, "milassist", r.Header.Get("X-Title"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		_ = json.NewEncoder(w).Encode(ChatCompletionResponse{
			Choices: []Choice{{Message: Message{Role: "assistant", Content: "  {\"type\":\"symbol\"}  "}}},
			Usage:   Usage{PromptTokens: 10, CompletionTokens: 5, TotalTokens: 15},
		})
	})

	resp, err := c.Chat(context.Background(), ChatRequest{
		SystemPrompt: "system",
		UserPrompt:   "friendly infantry at Lahore",
		JSON:         true,
	})
	require.NoError(t, err)
	assert.Equal(t, `{"type":"symbol"}`, resp.Content)
	assert.Equal(t, 15, resp.Usage.TotalTokens)

	require.Len(t, got.Messages, 2)
	assert.Equal(t, "system", got.Messages[0].Role)
	assert.Equal(t, "user", got.Messages[1].Role)
	assert.Equal(t, DefaultModel, got.Model)
	require.NotNil(t, got.ResponseFormat)
	assert.Equal(t, "json_object", got.ResponseFormat.Type)
}

func TestChat_Overrides(t *testing.T) {
	var got ChatCompletionRequest
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewDecoder(r.Body).Decode(&got)
		_ = json.NewEncoder(w).Encode(ChatCompletionResponse{Choices: []Choice{{Message: Message{Content: "ok"}}}})
	})
	model := "anthropic/claude-3-haiku"
	temp := 0.0
	tokens := 50
	_, err := c.Chat(context.Background(), ChatRequest{UserPrompt: "x", Model: &model, Temperature: &temp, MaxTokens: &tokens})
	require.NoError(t, err)
	assert.Equal(t, model, got.Model)
	assert.Equal(t, 50, got.MaxTokens)
	require.NotNil(t, got.Temperature, "an explicit zero temperature is sent")
	assert.Equal(t, 0.0, *got.Temperature)
	assert.Nil(t, got.ResponseFormat)
	assert.Len(t, got.Messages, 1)
}

func TestChat_TraceLogsBodies(t *testing.T) {
	require.NoError(t, logger.Initialize(false, logger.VerbosityTrace))
	t.Cleanup(func() { require.NoError(t, logger.Initialize(false, logger.VerbosityUser)) })

	core, logs := observer.New(zapcore.DebugLevel)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"choices":[{"message":{"content":"ok"}}]}`))
	}))
	t.Cleanup(srv.Close)
	c := NewClient(Config{APIKey: "test-key", BaseURL: srv.URL, Logger: zap.New(core).Sugar()})
	c.SetHTTPClient(srv.Client())

	_, err := c.Chat(context.Background(), ChatRequest{UserPrompt: "hostile armour at Lahore"})
	require.NoError(t, err)

	req := logs.FilterMessage("Chat request body").All()
	require.Len(t, req, 1)
	assert.Contains(t, req[0].ContextMap()["body"], "hostile armour at Lahore")
	assert.Equal(t, 1, logs.FilterMessage("Chat response body").Len())
}

func TestChat_NoBodiesBelowTrace(t *testing.T) {
	require.NoError(t, logger.Initialize(false, logger.VerbosityDebug))
	t.Cleanup(func() { require.NoError(t, logger.Initialize(false, logger.VerbosityUser)) })

	core, logs := observer.New(zapcore.DebugLevel)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"choices":[{"message":{"content":"ok"}}]}`))
	}))
	t.Cleanup(srv.Close)
	c := NewClient(Config{APIKey: "test-key", BaseURL: srv.URL, Logger: zap.New(core).Sugar()})
	c.SetHTTPClient(srv.Client())

	_, err := c.Chat(context.Background(), ChatRequest{UserPrompt: "x"})
	require.NoError(t, err)
	assert.Zero(t, logs.FilterMessage("Chat request body").Len())
}

func TestChat_ServiceUnavailableIsModelBusy(t *testing.T) {
	calls := 0
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
		http.Error(w, "upstream unavailable", http.StatusServiceUnavailable)
	})
	_, err := c.Chat(context.Background(), ChatRequest{UserPrompt: "x"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrModelBusy))
	assert.Contains(t, err.Error(), "503")
	assert.Equal(t, 1, calls, "status errors are not retried")

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusServiceUnavailable, apiErr.StatusCode)
}

func TestChat_OverloadedBody(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"Model is overloaded"}`, http.StatusTooManyRequests)
	})
	_, err := c.Chat(context.Background(), ChatRequest{UserPrompt: "x"})
	assert.True(t, errors.Is(err, errors.ErrModelBusy))
}

func TestChat_OtherStatus(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "bad key", http.StatusUnauthorized)
	})
	_, err := c.Chat(context.Background(), ChatRequest{UserPrompt: "x"})
	require.Error(t, err)
	assert.False(t, errors.Is(err, errors.ErrModelBusy))
	assert.Contains(t, err.Error(), "401")
}

func TestChat_NoChoices(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"choices":[]}`))
	})
	_, err := c.Chat(context.Background(), ChatRequest{UserPrompt: "x"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no response choices")
}

func TestIsRetryableError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"connection refused errno", &net.OpError{Op: "dial", Err: syscall.ECONNREFUSED}, true},
		{"reset string", errors.New("read: connection reset by peer"), true},
		{"io timeout string", errors.New("dial tcp: i/o timeout"), true},
		{"api error", &APIError{StatusCode: 500, Body: "connection refused"}, false},
		{"cancelled", errors.Wrap(context.Canceled, "send"), false},
		{"plain", errors.New("boom"), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isRetryableError(tt.err))
		})
	}
}
