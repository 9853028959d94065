package bootstrap

import (
	"context"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dynatrace-oss/Perform-Hackathon-2026/internal/config"
	"github.com/dynatrace-oss/Perform-Hackathon-2026/internal/database"
	"github.com/dynatrace-oss/Perform-Hackathon-2026/internal/database/postgres"
	"github.com/dynatrace-oss/Perform-Hackathon-2026/internal/repository"
)

// Repositories holds all repository implementations used by the application.
type Repositories struct {
	Rounds repository.Rounds
	Scores repository.Scores
}

// InitializeDatabase opens the PostgreSQL connection pool with the
// application's tuning defaults.
func InitializeDatabase(ctx context.Context, cfg *config.Config) (*pgxpool.Pool, error) {
	return database.NewPool(ctx, cfg.GetDBConnString(), cfg.DBMaxConns, DBMaxConnIdleTime, DBMaxConnLifetime)
}

// InitializeRepositories creates all repository implementations over the pool.
func InitializeRepositories(dbPool *pgxpool.Pool) *Repositories {
	repos := &Repositories{
		Rounds: postgres.NewRoundsRepository(dbPool),
		Scores: postgres.NewScoresRepository(dbPool),
	}
	slog.Info(LogMsgRepositoriesInitialized)
	return repos
}
