package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/dynatrace-oss/Perform-Hackathon-2026/internal/blackjack"
	"github.com/dynatrace-oss/Perform-Hackathon-2026/internal/database"
	"github.com/dynatrace-oss/Perform-Hackathon-2026/internal/dice"
	"github.com/dynatrace-oss/Perform-Hackathon-2026/internal/handler"
	"github.com/dynatrace-oss/Perform-Hackathon-2026/internal/logger"
	"github.com/dynatrace-oss/Perform-Hackathon-2026/internal/metrics"
	"github.com/dynatrace-oss/Perform-Hackathon-2026/internal/roulette"
	"github.com/dynatrace-oss/Perform-Hackathon-2026/internal/scoring"
	"github.com/dynatrace-oss/Perform-Hackathon-2026/internal/slots"
)

// Services bundles everything the HTTP surface exposes
type Services struct {
	Slots     slots.Service
	Dice      dice.Service
	Roulette  roulette.Service
	Blackjack blackjack.Service
	Scoring   scoring.Service
}

type Server struct {
	httpServer *http.Server
	dbPool     database.Pool
	services   Services
}

// NewServer creates a new Server instance
func NewServer(port int, apiKey string, trustedProxies []string, dbPool database.Pool, services Services) *Server {
	r := chi.NewRouter()

	// Middleware stack
	// Chi middleware executes in order defined (outermost to innermost)
	detector := NewSuspiciousActivityDetector()

	r.Use(SecurityHeadersMiddleware())
	r.Use(AuthMiddleware(apiKey, trustedProxies, detector))
	r.Use(SecurityLoggingMiddleware(trustedProxies, detector))
	r.Use(RequestSizeLimitMiddleware(1 << 20)) // 1MB limit
	r.Use(metrics.MetricsMiddleware)
	r.Use(loggingMiddleware)

	// Health check routes (unversioned)
	r.Get("/healthz", handler.HandleHealthz())
	r.Get("/readyz", handler.HandleReadyz(dbPool))

	// Version endpoint (public, for deployment verification)
	r.Get("/version", handler.HandleVersion())

	// Metrics endpoint (public, for Prometheus scraping)
	r.Handle("/metrics", promhttp.Handler())

	// API v1 routes
	r.Route("/api/v1", func(r chi.Router) {
		slotsHandler := handler.NewSlotsHandler(services.Slots)
		r.Route("/slots", func(r chi.Router) {
			r.Post("/spin", slotsHandler.HandleSpin)
		})

		diceHandler := handler.NewDiceHandler(services.Dice)
		r.Route("/dice", func(r chi.Router) {
			r.Post("/roll", diceHandler.HandleRoll)
		})

		rouletteHandler := handler.NewRouletteHandler(services.Roulette)
		r.Route("/roulette", func(r chi.Router) {
			r.Post("/spin", rouletteHandler.HandleSpin)
		})

		blackjackHandler := handler.NewBlackjackHandler(services.Blackjack)
		r.Route("/blackjack", func(r chi.Router) {
			r.Post("/deal", blackjackHandler.HandleDeal)
			r.Post("/hit", blackjackHandler.HandleHit)
			r.Post("/stand", blackjackHandler.HandleStand)
			r.Post("/double", blackjackHandler.HandleDouble)
			r.Get("/session", blackjackHandler.HandleGetSession)
		})

		scoringHandler := handler.NewScoringHandler(services.Scoring)
		r.Route("/scoring", func(r chi.Router) {
			r.Post("/game-result", scoringHandler.HandleRecordResult)
			r.Get("/dashboard", scoringHandler.HandleGetDashboard)
			r.Get("/dashboard/{game}", scoringHandler.HandleGetGameDashboard)
			r.Get("/top-players/{game}", scoringHandler.HandleGetTopPlayers)
		})
	})

	// Swagger documentation
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", port),
			Handler:           r,
			ReadHeaderTimeout: 5 * time.Second,
		},
		dbPool:   dbPool,
		services: services,
	}
}

// responseWriter wraps http.ResponseWriter to capture the status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
	written    bool
}

func newResponseWriter(w http.ResponseWriter) *responseWriter {
	return &responseWriter{
		ResponseWriter: w,
		statusCode:     http.StatusOK, // default status
	}
}

func (rw *responseWriter) WriteHeader(statusCode int) {
	if !rw.written {
		rw.statusCode = statusCode
		rw.written = true
		rw.ResponseWriter.WriteHeader(statusCode)
	}
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	if !rw.written {
		rw.WriteHeader(http.StatusOK)
	}
	return rw.ResponseWriter.Write(b)
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		// Skip logging for health check endpoints and metrics
		if strings.HasPrefix(r.URL.Path, "/healthz") ||
			strings.HasPrefix(r.URL.Path, "/readyz") ||
			strings.HasPrefix(r.URL.Path, "/metrics") {
			next.ServeHTTP(w, r)
			return
		}

		requestID := logger.GenerateRequestID()
		ctx := logger.WithRequestID(r.Context(), requestID)
		r = r.WithContext(ctx)

		log := logger.FromContext(ctx)

		log.Info(LogMsgRequestStarted,
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr,
			"content_length", r.ContentLength,
			"user_agent", r.UserAgent())

		// Sanitize headers for logging
		sanitizedHeaders := make(http.Header)
		for k, v := range r.Header {
			if strings.EqualFold(k, HeaderAPIKey) || strings.EqualFold(k, HeaderAuthorization) {
				sanitizedHeaders[k] = []string{RedactedValue}
			} else {
				sanitizedHeaders[k] = v
			}
		}
		log.Debug(LogMsgRequestHeaders, "headers", sanitizedHeaders)

		rw := newResponseWriter(w)

		next.ServeHTTP(rw, r)

		duration := time.Since(start)
		log.Info(LogMsgRequestCompleted,
			"method", r.Method,
			"path", r.URL.Path,
			"status", rw.statusCode,
			"duration_ms", duration.Milliseconds(),
			"duration", duration)
	})
}

// Start starts the server
func (s *Server) Start() error {
	slog.Default().Info(LogMsgServerStarting, "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Stop stops the server gracefully
func (s *Server) Stop(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
