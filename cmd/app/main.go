package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dynatrace-oss/Perform-Hackathon-2026/internal/blackjack"
	"github.com/dynatrace-oss/Perform-Hackathon-2026/internal/bootstrap"
	"github.com/dynatrace-oss/Perform-Hackathon-2026/internal/concurrency"
	"github.com/dynatrace-oss/Perform-Hackathon-2026/internal/config"
	"github.com/dynatrace-oss/Perform-Hackathon-2026/internal/dice"
	"github.com/dynatrace-oss/Perform-Hackathon-2026/internal/features"
	"github.com/dynatrace-oss/Perform-Hackathon-2026/internal/handler"
	"github.com/dynatrace-oss/Perform-Hackathon-2026/internal/random"
	"github.com/dynatrace-oss/Perform-Hackathon-2026/internal/roulette"
	"github.com/dynatrace-oss/Perform-Hackathon-2026/internal/scoring"
	"github.com/dynatrace-oss/Perform-Hackathon-2026/internal/server"
	"github.com/dynatrace-oss/Perform-Hackathon-2026/internal/slots"
	"github.com/dynatrace-oss/Perform-Hackathon-2026/internal/worker"
)

const shutdownTimeout = 30 * time.Second

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Configuration failed", "error", err)
		os.Exit(1)
	}

	// Setup logging
	logFile, err := bootstrap.SetupLogger(cfg)
	if err != nil {
		slog.Error("Logger setup failed", "error", err)
		os.Exit(1)
	}
	defer logFile.Close()

	handler.InitValidator()

	// Database and repositories
	dbPool, err := bootstrap.InitializeDatabase(context.Background(), cfg)
	if err != nil {
		slog.Error("Database connection failed", "error", err)
		os.Exit(1)
	}
	repos := bootstrap.InitializeRepositories(dbPool)

	// Event bus, resilient publisher, dead-letter sink
	eventBus, publisher, deadLetter, err := bootstrap.InitializeEventSystem(cfg)
	if err != nil {
		slog.Error("Event system initialization failed", "error", err)
		os.Exit(1)
	}

	// Blackjack session store
	sessionStore, sweepSource, redisClient, err := bootstrap.InitializeSessionStore(cfg)
	if err != nil {
		slog.Error("Session store initialization failed", "error", err)
		os.Exit(1)
	}

	// Shared game dependencies
	locks := concurrency.NewLockManager()
	rng := random.NewCryptoSource()
	flags := features.NewEnvProvider()

	// Game and scoring services
	scoringService := scoring.NewService(repos.Rounds, repos.Scores, locks)
	scoring.RegisterEventHandlers(eventBus, scoringService)

	services := server.Services{
		Slots:     slots.NewService(locks, publisher, flags, rng),
		Dice:      dice.NewService(locks, publisher, rng, dice.UnknownBetPolicy(cfg.DiceUnknownBetPolicy)),
		Roulette:  roulette.NewService(locks, publisher, flags, rng),
		Blackjack: blackjack.NewService(sessionStore, locks, publisher, flags, rng),
		Scoring:   scoringService,
	}

	// Session cleanup sweep only runs against stores that can enumerate
	// their sessions; redis relies on key TTLs instead
	var cleanup *worker.SessionCleanup
	if sweepSource != nil {
		cleanup = worker.NewSessionCleanup(sweepSource, publisher, locks, cfg.SessionSweepInterval, cfg.SessionTTL)
		cleanup.Start()
	}

	srv := server.NewServer(cfg.Port, cfg.APIKey, cfg.TrustedProxies, dbPool, services)

	// Run the server until interrupted
	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-quit:
		slog.Info("Shutdown signal received", "signal", sig.String())
	case err := <-errCh:
		if err != nil && err != http.ErrServerClosed {
			slog.Error("Server failed", "error", err)
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	bootstrap.GracefulShutdown(ctx, bootstrap.ShutdownComponents{
		Server:             srv,
		SessionCleanup:     cleanup,
		ResilientPublisher: publisher,
		DeadLetter:         deadLetter,
		RedisClient:        redisClient,
		DBPool:             dbPool,
	})
}
