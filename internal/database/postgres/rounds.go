package postgres

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dynatrace-oss/Perform-Hackathon-2026/internal/domain"
	"github.com/dynatrace-oss/Perform-Hackathon-2026/internal/repository"
)

type roundsRepository struct {
	db *pgxpool.Pool
}

// NewRoundsRepository creates a new PostgreSQL rounds repository
func NewRoundsRepository(db *pgxpool.Pool) repository.Rounds {
	return &roundsRepository{db: db}
}

// roundDetail is the JSONB payload stored alongside a round
type roundDetail struct {
	Slots     *domain.SlotsOutcome     `json:"slots,omitempty"`
	Dice      *domain.DiceOutcome      `json:"dice,omitempty"`
	Roulette  *domain.RouletteOutcome  `json:"roulette,omitempty"`
	Blackjack *domain.BlackjackOutcome `json:"blackjack,omitempty"`
}

// Insert stores a settled round
func (r *roundsRepository) Insert(ctx context.Context, result domain.RoundResult) error {
	query := `
		INSERT INTO game_results (id, player_id, game, bet_amount, payout, won, cheat_applied, detail, played_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	detailJSON, err := json.Marshal(roundDetail{
		Slots:     result.Slots,
		Dice:      result.Dice,
		Roulette:  result.Roulette,
		Blackjack: result.Blackjack,
	})
	if err != nil {
		return fmt.Errorf("marshal round detail: %w", err)
	}

	_, err = r.db.Exec(ctx, query,
		result.ID,
		result.PlayerID,
		result.Game.String(),
		result.BetAmount,
		result.Payout,
		result.Won,
		result.CheatApplied,
		detailJSON,
		result.PlayedAt,
	)
	if err != nil {
		return fmt.Errorf("insert game result: %w", err)
	}
	return nil
}

// Aggregate rolls up all rounds for a game
func (r *roundsRepository) Aggregate(ctx context.Context, game domain.Game, recentSince time.Time) (repository.RoundAggregate, error) {
	query := `
		SELECT
			COUNT(*),
			COUNT(*) FILTER (WHERE won),
			COALESCE(SUM(bet_amount), 0),
			COALESCE(SUM(payout), 0),
			COUNT(*) FILTER (WHERE played_at >= $2)
		FROM game_results
		WHERE game = $1 AND bet_amount > 0
	`

	var agg repository.RoundAggregate
	err := r.db.QueryRow(ctx, query, game.String(), recentSince).Scan(
		&agg.TotalGames,
		&agg.TotalWins,
		&agg.TotalBets,
		&agg.TotalPayout,
		&agg.RecentGames,
	)
	if err != nil {
		return repository.RoundAggregate{}, fmt.Errorf("aggregate game results: %w", err)
	}
	return agg, nil
}
