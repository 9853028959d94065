package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dynatrace-oss/Perform-Hackathon-2026/internal/domain"
	"github.com/dynatrace-oss/Perform-Hackathon-2026/internal/repository"
)

type scoresRepository struct {
	db *pgxpool.Pool
}

// NewScoresRepository creates a new PostgreSQL scores repository
func NewScoresRepository(db *pgxpool.Pool) repository.Scores {
	return &scoresRepository{db: db}
}

// Get returns the score row for a player and game, nil when absent
func (r *scoresRepository) Get(ctx context.Context, playerID string, game domain.Game) (*domain.PlayerScore, error) {
	query := `
		SELECT player_id, game, best_payout, metadata, updated_at
		FROM player_scores
		WHERE player_id = $1 AND game = $2
	`

	score, err := scanScore(r.db.QueryRow(ctx, query, playerID, game.String()))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get player score: %w", err)
	}
	return score, nil
}

// Save inserts the row for (score.PlayerID, score.Game) or replaces it
// when the new best payout is strictly higher. A save carrying a lower
// best is a no-op, so the stored best never regresses even when writers
// race across instances.
func (r *scoresRepository) Save(ctx context.Context, score domain.PlayerScore) error {
	query := `
		INSERT INTO player_scores (player_id, game, best_payout, metadata, updated_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (player_id, game) DO UPDATE
		SET best_payout = EXCLUDED.best_payout,
		    metadata = EXCLUDED.metadata,
		    updated_at = EXCLUDED.updated_at
		WHERE player_scores.best_payout < EXCLUDED.best_payout
	`

	metadataJSON, err := json.Marshal(score.Metadata)
	if err != nil {
		return fmt.Errorf("marshal score metadata: %w", err)
	}

	_, err = r.db.Exec(ctx, query,
		score.PlayerID,
		score.Game.String(),
		score.BestPayout,
		metadataJSON,
		score.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("save player score: %w", err)
	}
	return nil
}

// Touch advances only the last-activity timestamp of an existing row
func (r *scoresRepository) Touch(ctx context.Context, playerID string, game domain.Game, at time.Time) error {
	query := `
		UPDATE player_scores
		SET updated_at = $3
		WHERE player_id = $1 AND game = $2
	`

	tag, err := r.db.Exec(ctx, query, playerID, game.String(), at)
	if err != nil {
		return fmt.Errorf("touch player score: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: %s/%s", domain.ErrScoreNotFound, playerID, game)
	}
	return nil
}

// TopByGame returns up to limit rows for one game, best payout first
func (r *scoresRepository) TopByGame(ctx context.Context, game domain.Game, limit int) ([]domain.PlayerScore, error) {
	query := `
		SELECT player_id, game, best_payout, metadata, updated_at
		FROM player_scores
		WHERE game = $1
		ORDER BY best_payout DESC, updated_at DESC
		LIMIT $2
	`

	rows, err := r.db.Query(ctx, query, game.String(), limit)
	if err != nil {
		return nil, fmt.Errorf("query top scores: %w", err)
	}
	defer rows.Close()

	return scanScores(rows)
}

// TopAllGames reduces to each player's single best row across games
func (r *scoresRepository) TopAllGames(ctx context.Context, limit int) ([]domain.PlayerScore, error) {
	query := `
		SELECT DISTINCT ON (player_id)
			player_id, game, best_payout, metadata, updated_at
		FROM player_scores
		ORDER BY player_id, best_payout DESC, updated_at DESC
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query cross-game scores: %w", err)
	}
	defer rows.Close()

	scores, err := scanScores(rows)
	if err != nil {
		return nil, err
	}

	// DISTINCT ON orders by player_id; re-rank by best payout here
	sort.SliceStable(scores, func(i, j int) bool {
		if scores[i].BestPayout != scores[j].BestPayout {
			return scores[i].BestPayout > scores[j].BestPayout
		}
		return scores[i].UpdatedAt.After(scores[j].UpdatedAt)
	})
	if len(scores) > limit {
		scores = scores[:limit]
	}
	return scores, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanScore(row rowScanner) (*domain.PlayerScore, error) {
	var (
		score        domain.PlayerScore
		game         string
		metadataJSON []byte
	)

	if err := row.Scan(&score.PlayerID, &game, &score.BestPayout, &metadataJSON, &score.UpdatedAt); err != nil {
		return nil, err
	}

	score.Game = domain.Game(game)
	if len(metadataJSON) > 0 {
		if err := json.Unmarshal(metadataJSON, &score.Metadata); err != nil {
			return nil, fmt.Errorf("unmarshal score metadata: %w", err)
		}
	}
	return &score, nil
}

func scanScores(rows pgx.Rows) ([]domain.PlayerScore, error) {
	var scores []domain.PlayerScore
	for rows.Next() {
		score, err := scanScore(rows)
		if err != nil {
			return nil, fmt.Errorf("scan player score: %w", err)
		}
		scores = append(scores, *score)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate player scores: %w", err)
	}
	return scores, nil
}
