package repository

import (
	"context"
	"time"

	"github.com/dynatrace-oss/Perform-Hackathon-2026/internal/domain"
)

// RoundAggregate is the per-game rollup the dashboard is computed from
type RoundAggregate struct {
	TotalGames  int64
	TotalWins   int64
	TotalBets   float64
	TotalPayout float64
	RecentGames int64
}

// Rounds defines the interface for settled round storage.
// Rounds are append-only; nothing updates or deletes them.
type Rounds interface {
	// Insert stores a settled round
	Insert(ctx context.Context, result domain.RoundResult) error

	// Aggregate rolls up all rounds for a game; RecentGames counts
	// rounds played at or after recentSince
	Aggregate(ctx context.Context, game domain.Game, recentSince time.Time) (RoundAggregate, error)
}
