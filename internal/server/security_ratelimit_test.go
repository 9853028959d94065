package server

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSecurityLoggingMiddlewareRateLimiting(t *testing.T) {
	detector := NewSuspiciousActivityDetector()
	handler := SecurityLoggingMiddleware(nil, detector)(okHandler())

	ip := "192.168.1.100"
	req := httptest.NewRequest(http.MethodGet, "/api/v1/roulette/spin", nil)
	req.RemoteAddr = ip + ":1234"

	for i := 0; i < requestRateLimit; i++ {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		require.Equal(t, http.StatusOK, rec.Code, "request %d should pass", i)
	}

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)

	detector.mu.Lock()
	count := detector.requestCountByIP[ip]
	detector.mu.Unlock()
	assert.Equal(t, requestRateLimit+1, count)
}

func TestDetectorRateLimitIsPerIP(t *testing.T) {
	detector := NewSuspiciousActivityDetector()

	for i := 0; i < requestRateLimit+10; i++ {
		detector.RecordRequest("10.0.0.1")
	}

	assert.False(t, detector.RecordRequest("10.0.0.1"))
	assert.True(t, detector.RecordRequest("10.0.0.2"))
}

func TestDetectorWindowRollsOver(t *testing.T) {
	detector := NewSuspiciousActivityDetector()

	for i := 0; i < requestRateLimit+1; i++ {
		detector.RecordRequest("10.0.0.1")
	}
	require.False(t, detector.RecordRequest("10.0.0.1"))

	// Age the window past its span; the next request starts fresh
	detector.mu.Lock()
	detector.windowStart = time.Now().Add(-detectorWindow - time.Second)
	detector.mu.Unlock()

	assert.True(t, detector.RecordRequest("10.0.0.1"))
}
