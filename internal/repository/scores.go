package repository

import (
	"context"
	"time"

	"github.com/dynatrace-oss/Perform-Hackathon-2026/internal/domain"
)

// Scores defines the interface for best-score storage, one row per
// (player, game) pair. Rows are never deleted.
type Scores interface {
	// Get returns the score row for a player and game, nil when absent
	Get(ctx context.Context, playerID string, game domain.Game) (*domain.PlayerScore, error)

	// Save inserts or fully replaces the row for (score.PlayerID, score.Game)
	Save(ctx context.Context, score domain.PlayerScore) error

	// Touch advances only the last-activity timestamp of an existing row
	Touch(ctx context.Context, playerID string, game domain.Game, at time.Time) error

	// TopByGame returns up to limit rows for one game, best payout first,
	// ties broken by most recent activity
	TopByGame(ctx context.Context, game domain.Game, limit int) ([]domain.PlayerScore, error)

	// TopAllGames reduces to each player's single best row across games,
	// then orders and truncates like TopByGame
	TopAllGames(ctx context.Context, limit int) ([]domain.PlayerScore, error)
}
