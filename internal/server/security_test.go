package server

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestAuthMiddleware(t *testing.T) {
	apiKey := "table-stakes"
	middleware := AuthMiddleware(apiKey, nil, NewSuspiciousActivityDetector())

	tests := []struct {
		name           string
		providedKey    string
		path           string
		expectedStatus int
	}{
		{
			name:           "valid key",
			providedKey:    apiKey,
			path:           "/api/v1/slots/spin",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "wrong key",
			providedKey:    "busted",
			path:           "/api/v1/slots/spin",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "missing key",
			providedKey:    "",
			path:           "/api/v1/blackjack/deal",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "healthz is public",
			providedKey:    "",
			path:           "/healthz",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "metrics is public",
			providedKey:    "",
			path:           "/metrics",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "version is public",
			providedKey:    "",
			path:           "/version",
			expectedStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			if tt.providedKey != "" {
				req.Header.Set(HeaderAPIKey, tt.providedKey)
			}
			rec := httptest.NewRecorder()

			middleware(okHandler()).ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
		})
	}
}

func TestAuthMiddlewareRecordsFailedAttempts(t *testing.T) {
	detector := NewSuspiciousActivityDetector()
	middleware := AuthMiddleware("real-key", nil, detector)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/dice/roll", nil)
	req.RemoteAddr = "203.0.113.9:4242"
	req.Header.Set(HeaderAPIKey, "guess")

	for i := 0; i < 3; i++ {
		rec := httptest.NewRecorder()
		middleware(okHandler()).ServeHTTP(rec, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	}

	detector.mu.Lock()
	count := detector.failedAuthByIP["203.0.113.9"]
	detector.mu.Unlock()
	assert.Equal(t, 3, count)
}

func TestSecurityHeadersMiddleware(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	SecurityHeadersMiddleware()(okHandler()).ServeHTTP(rec, req)

	assert.Equal(t, HeaderValueNoSniff, rec.Header().Get(HeaderContentType))
	assert.Equal(t, HeaderValueSameOrigin, rec.Header().Get(HeaderFrameOptions))
	assert.Equal(t, HeaderValueXSSBlock, rec.Header().Get(HeaderXSSProtection))
	assert.Equal(t, HeaderValueReferrerStrictOrigin, rec.Header().Get(HeaderReferrerPolicy))
}

func TestClientIP(t *testing.T) {
	tests := []struct {
		name           string
		remoteAddr     string
		forwardedFor   string
		trustedProxies []string
		want           string
	}{
		{
			name:       "direct connection",
			remoteAddr: "198.51.100.7:9000",
			want:       "198.51.100.7",
		},
		{
			name:         "forwarded header ignored from untrusted peer",
			remoteAddr:   "198.51.100.7:9000",
			forwardedFor: "10.0.0.1",
			want:         "198.51.100.7",
		},
		{
			name:           "forwarded header honored from trusted proxy",
			remoteAddr:     "192.0.2.1:443",
			forwardedFor:   "203.0.113.50",
			trustedProxies: []string{"192.0.2.1"},
			want:           "203.0.113.50",
		},
		{
			name:           "rightmost forwarded entry wins",
			remoteAddr:     "192.0.2.1:443",
			forwardedFor:   "203.0.113.50, 10.1.1.1",
			trustedProxies: []string{"192.0.2.1"},
			want:           "10.1.1.1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.RemoteAddr = tt.remoteAddr
			if tt.forwardedFor != "" {
				req.Header.Set(HeaderForwardedFor, tt.forwardedFor)
			}

			assert.Equal(t, tt.want, clientIP(req, tt.trustedProxies))
		})
	}
}
