package server

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingMiddlewareRedactsSecrets(t *testing.T) {
	var buf bytes.Buffer
	// Debug level so the header dump is emitted
	slog.SetDefault(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))

	handler := loggingMiddleware(okHandler())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/slots/spin", nil)
	req.Header.Set(HeaderAPIKey, "secret-key-123")
	req.Header.Set(HeaderAuthorization, "Bearer mytoken")
	req.Header.Set("User-Agent", "TestAgent")

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	logOutput := buf.String()
	require.Contains(t, logOutput, LogMsgRequestHeaders)

	assert.NotContains(t, logOutput, "secret-key-123", "API key leaked into logs")
	assert.NotContains(t, logOutput, "Bearer mytoken", "Authorization header leaked into logs")
	assert.Contains(t, logOutput, "TestAgent", "non-sensitive headers should still be logged")
}

func TestLoggingMiddlewareSkipsOperationalEndpoints(t *testing.T) {
	var buf bytes.Buffer
	slog.SetDefault(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))

	handler := loggingMiddleware(okHandler())

	for _, path := range []string{"/healthz", "/readyz", "/metrics"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
	}

	assert.Empty(t, buf.String(), "probe endpoints should not be request-logged")
}
