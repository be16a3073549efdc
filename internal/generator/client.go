// Package generator talks to the text-generation backend that personalizes
// campaign emails and enriches contacts.
package generator

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync/atomic"
	"time"

	"github.com/ollama/ollama/api"
	"github.com/sendsafe/sendsafe-api/internal/config"
	"go.uber.org/zap"
)

// ErrCircuitOpen is returned while the backend is considered unavailable
var ErrCircuitOpen = errors.New("generator circuit open")

// ClientConfig configures the Ollama-compatible client
type ClientConfig struct {
	BaseURL                 string
	Model                   string
	APIKey                  string
	Timeout                 time.Duration
	Retries                 int
	Backoff                 time.Duration
	CircuitFailureThreshold int
	CircuitReset            time.Duration
}

// ClientConfigFrom builds the client settings from application config
func ClientConfigFrom(cfg *config.GeneratorConfig) ClientConfig {
	return ClientConfig{
		BaseURL:                 cfg.BaseURL,
		Model:                   cfg.Model,
		APIKey:                  cfg.APIKey,
		Timeout:                 cfg.TimeoutDuration(),
		Retries:                 cfg.Retries,
		Backoff:                 500 * time.Millisecond,
		CircuitFailureThreshold: cfg.CircuitFailureThreshold,
		CircuitReset:            cfg.CircuitResetDuration(),
	}
}

// OllamaClient wraps the Ollama API client with a per-request timeout,
// optional retries and a simple circuit breaker.
type OllamaClient struct {
	api    *api.Client
	cfg    ClientConfig
	http   *http.Client
	logger *zap.Logger

	failures  int32
	openUntil int64 // unix nano
	closed    int32
}

// bearerTransport adds an API key to every request for hosted deployments
type bearerTransport struct {
	key  string
	base http.RoundTripper
}

func (t *bearerTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	r := req.Clone(req.Context())
	r.Header.Set("Authorization", "Bearer "+t.key)
	return t.base.RoundTrip(r)
}

func (t *bearerTransport) CloseIdleConnections() {
	if c, ok := t.base.(interface{ CloseIdleConnections() }); ok {
		c.CloseIdleConnections()
	}
}

// NewOllamaClient creates a client. A nil httpClient gets a default transport.
func NewOllamaClient(cfg ClientConfig, httpClient *http.Client, logger *zap.Logger) (*OllamaClient, error) {
	u, err := url.ParseRequestURI(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid generator base url: %w", err)
	}
	if cfg.Model == "" {
		return nil, errors.New("generator model is required")
	}
	if httpClient == nil {
		httpClient = &http.Client{Transport: http.DefaultTransport.(*http.Transport).Clone()}
	}
	if cfg.APIKey != "" {
		base := httpClient.Transport
		if base == nil {
			base = http.DefaultTransport
		}
		wrapped := *httpClient
		wrapped.Transport = &bearerTransport{key: cfg.APIKey, base: base}
		httpClient = &wrapped
	}

	logger.Info("Generator client created",
		zap.String("base_url", cfg.BaseURL),
		zap.String("model", cfg.Model),
		zap.Duration("timeout", cfg.Timeout),
	)

	return &OllamaClient{
		api:    api.NewClient(u, httpClient),
		cfg:    cfg,
		http:   httpClient,
		logger: logger,
	}, nil
}

func (c *OllamaClient) isCircuitOpen() bool {
	if c.cfg.CircuitFailureThreshold <= 0 || atomic.LoadInt32(&c.failures) < int32(c.cfg.CircuitFailureThreshold) {
		return false
	}
	if time.Now().UnixNano() < atomic.LoadInt64(&c.openUntil) {
		return true
	}
	// half-open: let one request through
	atomic.StoreInt32(&c.failures, 0)
	return false
}

func (c *OllamaClient) recordFailure() {
	v := atomic.AddInt32(&c.failures, 1)
	if c.cfg.CircuitFailureThreshold > 0 && v >= int32(c.cfg.CircuitFailureThreshold) {
		atomic.StoreInt64(&c.openUntil, time.Now().Add(c.cfg.CircuitReset).UnixNano())
	}
}

// Generate sends one non-streaming prompt and returns the model's text.
// format, when set, is passed as the structured output schema.
func (c *OllamaClient) Generate(ctx context.Context, prompt string, format json.RawMessage) (string, error) {
	if c.isCircuitOpen() {
		return "", ErrCircuitOpen
	}

	stream := false
	var lastErr error
	for attempt := 0; attempt <= c.cfg.Retries; attempt++ {
		ctxReq := ctx
		cancel := func() {}
		if c.cfg.Timeout > 0 {
			ctxReq, cancel = context.WithTimeout(ctx, c.cfg.Timeout)
		}

		var out strings.Builder
		start := time.Now()
		err := c.api.Generate(ctxReq, &api.GenerateRequest{
			Model:   c.cfg.Model,
			Prompt:  prompt,
			Stream:  &stream,
			Format:  format,
			Options: map[string]any{"temperature": 0.7},
		}, func(r api.GenerateResponse) error {
			out.WriteString(r.Response)
			return nil
		})
		cancel()

		if err == nil {
			atomic.StoreInt32(&c.failures, 0)
			c.logger.Debug("Generation completed",
				zap.String("model", c.cfg.Model),
				zap.Duration("latency", time.Since(start)),
			)
			return out.String(), nil
		}

		lastErr = err
		c.recordFailure()
		if ctx.Err() != nil || attempt == c.cfg.Retries {
			break
		}
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(c.cfg.Backoff * time.Duration(attempt+1)):
		}
		if c.isCircuitOpen() {
			return "", ErrCircuitOpen
		}
	}

	return "", fmt.Errorf("generate: %w", lastErr)
}

// Close releases idle connections. It is safe to call more than once.
func (c *OllamaClient) Close() error {
	if c == nil || !atomic.CompareAndSwapInt32(&c.closed, 0, 1) {
		return nil
	}
	if c.http != nil {
		c.http.CloseIdleConnections()
	}
	return nil
}
