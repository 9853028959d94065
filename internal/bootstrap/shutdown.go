package bootstrap

import (
	"context"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	"github.com/dynatrace-oss/Perform-Hackathon-2026/internal/event"
	"github.com/dynatrace-oss/Perform-Hackathon-2026/internal/server"
	"github.com/dynatrace-oss/Perform-Hackathon-2026/internal/worker"
)

// ShutdownComponents holds all components that need graceful shutdown.
// Nil fields are skipped.
type ShutdownComponents struct {
	Server             *server.Server
	SessionCleanup     *worker.SessionCleanup
	ResilientPublisher *event.ResilientPublisher
	DeadLetter         *event.DeadLetterWriter
	RedisClient        *redis.Client
	DBPool             *pgxpool.Pool
}

// GracefulShutdown stops all application components in dependency order:
//  1. HTTP server (stop accepting new requests)
//  2. Session cleanup worker (stop sweeping, drain expiry notifications)
//  3. Event publisher (flush pending retries so settled rounds are not lost)
//  4. Backing stores (redis client, dead-letter file, database pool)
//
// Errors during shutdown are logged but do not stop the sequence.
func GracefulShutdown(ctx context.Context, components ShutdownComponents) {
	slog.Info(LogMsgShuttingDownServer)

	if components.Server != nil {
		if err := components.Server.Stop(ctx); err != nil {
			slog.Error(LogMsgServerForcedShutdown, "error", err)
		}
	}

	if components.SessionCleanup != nil {
		if err := components.SessionCleanup.Stop(ctx); err != nil {
			slog.Error(LogMsgCleanupWorkerStopFailed, "error", err)
		}
	}

	slog.Info(LogMsgShuttingDownEventPublisher)
	if components.ResilientPublisher != nil {
		if err := components.ResilientPublisher.Shutdown(ctx); err != nil {
			slog.Error(LogMsgResilientPublisherFailed, "error", err)
		}
	}

	if components.RedisClient != nil {
		if err := components.RedisClient.Close(); err != nil {
			slog.Error(LogMsgRedisCloseFailed, "error", err)
		}
	}

	if components.DeadLetter != nil {
		components.DeadLetter.Close()
	}

	if components.DBPool != nil {
		components.DBPool.Close()
	}

	slog.Info(LogMsgServerStopped)
}
