package generator

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// fakeOllama serves /api/generate, failing the first `fail` requests
func fakeOllama(t *testing.T, fail int32, response string) (*httptest.Server, *int32) {
	t.Helper()
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/generate" {
			http.NotFound(w, r)
			return
		}
		n := atomic.AddInt32(&calls, 1)
		if n <= fail {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusInternalServerError)
			_, _ = w.Write([]byte(`{"error":"model crashed"}`))
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"model":    "test-model",
			"response": response,
			"done":     true,
		})
	}))
	t.Cleanup(srv.Close)
	return srv, &calls
}

func newTestClient(t *testing.T, baseURL string, retries, threshold int) *OllamaClient {
	t.Helper()
	c, err := NewOllamaClient(ClientConfig{
		BaseURL:                 baseURL,
		Model:                   "test-model",
		Timeout:                 5 * time.Second,
		Retries:                 retries,
		Backoff:                 time.Millisecond,
		CircuitFailureThreshold: threshold,
		CircuitReset:            time.Minute,
	}, nil, zap.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Close() })
	return c
}

func TestNewOllamaClient_Validation(t *testing.T) {
	_, err := NewOllamaClient(ClientConfig{BaseURL: "not a url", Model: "m"}, nil, zap.NewNop())
	assert.Error(t, err)

	_, err = NewOllamaClient(ClientConfig{BaseURL: "http://localhost:11434"}, nil, zap.NewNop())
	assert.Error(t, err)
}

func TestOllamaClient_Generate(t *testing.T) {
	srv, calls := fakeOllama(t, 0, `{"subject":"Hi","body":"Hello"}`)
	c := newTestClient(t, srv.URL, 0, 0)

	out, err := c.Generate(context.Background(), "prompt", nil)
	require.NoError(t, err)
	assert.Equal(t, `{"subject":"Hi","body":"Hello"}`, out)
	assert.Equal(t, int32(1), atomic.LoadInt32(calls))
}

func TestOllamaClient_GenerateRetries(t *testing.T) {
	srv, calls := fakeOllama(t, 2, "ok")
	c := newTestClient(t, srv.URL, 2, 0)

	out, err := c.Generate(context.Background(), "prompt", nil)
	require.NoError(t, err)
	assert.Equal(t, "ok", out)
	assert.Equal(t, int32(3), atomic.LoadInt32(calls))
}

func TestOllamaClient_NoRetriesByDefault(t *testing.T) {
	srv, calls := fakeOllama(t, 1, "ok")
	c := newTestClient(t, srv.URL, 0, 0)

	_, err := c.Generate(context.Background(), "prompt", nil)
	assert.Error(t, err)
	assert.Equal(t, int32(1), atomic.LoadInt32(calls))
}

func TestOllamaClient_CircuitOpens(t *testing.T) {
	srv, calls := fakeOllama(t, 100, "ok")
	c := newTestClient(t, srv.URL, 0, 2)

	_, err := c.Generate(context.Background(), "prompt", nil)
	assert.Error(t, err)
	_, err = c.Generate(context.Background(), "prompt", nil)
	assert.Error(t, err)

	_, err = c.Generate(context.Background(), "prompt", nil)
	assert.ErrorIs(t, err, ErrCircuitOpen)
	assert.Equal(t, int32(2), atomic.LoadInt32(calls))
}

func TestOllamaClient_SendsAPIKey(t *testing.T) {
	var auth atomic.Value
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth.Store(r.Header.Get("Authorization"))
		_, _ = w.Write([]byte(`{"model":"test-model","response":"ok","done":true}`))
	}))
	defer srv.Close()

	c, err := NewOllamaClient(ClientConfig{BaseURL: srv.URL, Model: "test-model", APIKey: "secret"}, nil, zap.NewNop())
	require.NoError(t, err)
	defer c.Close()

	_, err = c.Generate(context.Background(), "prompt", nil)
	require.NoError(t, err)
	assert.Equal(t, "Bearer secret", auth.Load())
}

func TestOllamaClient_CloseIsIdempotent(t *testing.T) {
	srv, _ := fakeOllama(t, 0, "ok")
	c := newTestClient(t, srv.URL, 0, 0)
	assert.NoError(t, c.Close())
	assert.NoError(t, c.Close())
}
