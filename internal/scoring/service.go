package scoring

import (
	"context"
	"fmt"
	"time"

	"github.com/dynatrace-oss/Perform-Hackathon-2026/internal/concurrency"
	"github.com/dynatrace-oss/Perform-Hackathon-2026/internal/domain"
	"github.com/dynatrace-oss/Perform-Hackathon-2026/internal/logger"
	"github.com/dynatrace-oss/Perform-Hackathon-2026/internal/repository"
)

// Service defines the interface for result recording and score aggregation
type Service interface {
	// Record persists a settled round and maintains the player's best score.
	// The returned score reflects the row after the round was applied.
	Record(ctx context.Context, result domain.RoundResult) (*domain.PlayerScore, error)

	// GetDashboard aggregates recorded rounds for one game
	GetDashboard(ctx context.Context, game domain.Game) (domain.DashboardStats, error)

	// GetAllDashboards aggregates every game; a failing game yields a
	// zero-valued stats row instead of failing the whole summary
	GetAllDashboards(ctx context.Context) []domain.DashboardStats

	// GetTopPlayers returns the ranked leaderboard for a game, or across
	// all games when game is "all"
	GetTopPlayers(ctx context.Context, game string, limit int) ([]domain.TopPlayer, error)
}

type service struct {
	rounds repository.Rounds
	scores repository.Scores
	locks  *concurrency.LockManager
}

// NewService creates a new scoring service
func NewService(rounds repository.Rounds, scores repository.Scores, locks *concurrency.LockManager) Service {
	return &service{
		rounds: rounds,
		scores: scores,
		locks:  locks,
	}
}

// Record persists a settled round and upserts the player's best score
func (s *service) Record(ctx context.Context, result domain.RoundResult) (*domain.PlayerScore, error) {
	log := logger.FromContext(ctx)

	// Reject before any side effect
	if result.BetAmount <= 0 {
		return nil, fmt.Errorf("%w: got %v", domain.ErrInvalidBetAmount, result.BetAmount)
	}
	if _, err := domain.ParseGame(result.Game.String()); err != nil {
		return nil, err
	}

	// Serialize per (player, game): concurrently settled rounds would
	// otherwise interleave the read-compare-save below and let a lower
	// payout land last
	var score *domain.PlayerScore
	err := s.locks.WithLock(concurrency.ScoreKey(result.PlayerID, result.Game.String()), func() error {
		if err := s.rounds.Insert(ctx, result); err != nil {
			return fmt.Errorf("inserting round %s: %w", result.ID, err)
		}

		var err error
		score, err = s.applyToScore(ctx, result)
		return err
	})
	if err != nil {
		return nil, err
	}

	log.Info(LogMsgRoundRecorded,
		"player_id", result.PlayerID,
		"game", result.Game,
		"payout", result.Payout,
		"best_payout", score.BestPayout)

	return score, nil
}

// applyToScore implements the best-payout rule: the stored best only ever
// increases, and metadata always describes the round that set it. Every
// recorded round advances UpdatedAt regardless. Callers hold the score
// lock for the pair; the repository's Save guard covers writers on other
// instances.
func (s *service) applyToScore(ctx context.Context, result domain.RoundResult) (*domain.PlayerScore, error) {
	existing, err := s.scores.Get(ctx, result.PlayerID, result.Game)
	if err != nil {
		return nil, fmt.Errorf("loading score for %s/%s: %w", result.PlayerID, result.Game, err)
	}

	now := time.Now().UTC()

	if existing == nil || result.Payout > existing.BestPayout {
		score := domain.PlayerScore{
			PlayerID:   result.PlayerID,
			Game:       result.Game,
			BestPayout: result.Payout,
			Metadata: domain.ScoreMetadata{
				InitialBet:  result.BetAmount,
				Winnings:    result.Payout,
				NetWinnings: result.Net(),
			},
			UpdatedAt: now,
		}
		if err := s.scores.Save(ctx, score); err != nil {
			return nil, fmt.Errorf("saving score for %s/%s: %w", result.PlayerID, result.Game, err)
		}

		if existing != nil {
			logger.FromContext(ctx).Info(LogMsgNewBestPayout,
				"player_id", result.PlayerID,
				"game", result.Game,
				"previous_best", existing.BestPayout,
				"best_payout", score.BestPayout)
		}
		return &score, nil
	}

	// Best stands; only the activity timestamp moves
	if err := s.scores.Touch(ctx, result.PlayerID, result.Game, now); err != nil {
		return nil, fmt.Errorf("touching score for %s/%s: %w", result.PlayerID, result.Game, err)
	}

	refreshed := *existing
	refreshed.UpdatedAt = now
	return &refreshed, nil
}

// GetDashboard aggregates recorded rounds for one game
func (s *service) GetDashboard(ctx context.Context, game domain.Game) (domain.DashboardStats, error) {
	agg, err := s.rounds.Aggregate(ctx, game, time.Now().UTC().Add(-RecentWindow))
	if err != nil {
		return domain.DashboardStats{}, fmt.Errorf("aggregating rounds for %s: %w", game, err)
	}

	stats := buildStats(game, agg)

	top, err := s.scores.TopByGame(ctx, game, DefaultTopLimit)
	if err != nil {
		return domain.DashboardStats{}, fmt.Errorf("loading top players for %s: %w", game, err)
	}
	stats.TopPlayers = rankPlayers(top)

	return stats, nil
}

// GetAllDashboards aggregates every game, substituting zero stats for
// games whose aggregation failed
func (s *service) GetAllDashboards(ctx context.Context) []domain.DashboardStats {
	log := logger.FromContext(ctx)

	all := make([]domain.DashboardStats, 0, len(domain.AllGames))
	for _, game := range domain.AllGames {
		stats, err := s.GetDashboard(ctx, game)
		if err != nil {
			log.Warn(LogMsgDashboardFailed, "game", game, "error", err)
			stats = domain.EmptyDashboardStats(game)
		}
		all = append(all, stats)
	}
	return all
}

// GetTopPlayers returns the ranked leaderboard for one game or "all"
func (s *service) GetTopPlayers(ctx context.Context, game string, limit int) ([]domain.TopPlayer, error) {
	if limit <= 0 {
		limit = DefaultTopLimit
	}
	if limit > MaxTopLimit {
		limit = MaxTopLimit
	}

	var (
		scores []domain.PlayerScore
		err    error
	)
	if game == GameAll {
		scores, err = s.scores.TopAllGames(ctx, limit)
	} else {
		var parsed domain.Game
		parsed, err = domain.ParseGame(game)
		if err != nil {
			return nil, err
		}
		scores, err = s.scores.TopByGame(ctx, parsed, limit)
	}
	if err != nil {
		return nil, fmt.Errorf("loading leaderboard for %s: %w", game, err)
	}

	return rankPlayers(scores), nil
}

// buildStats derives dashboard figures from a round aggregate, guarding
// every division by the round count
func buildStats(game domain.Game, agg repository.RoundAggregate) domain.DashboardStats {
	stats := domain.DashboardStats{
		Game:         game,
		TotalGames:   agg.TotalGames,
		TotalWins:    agg.TotalWins,
		TotalLosses:  agg.TotalGames - agg.TotalWins,
		TotalBets:    agg.TotalBets,
		TotalPayouts: agg.TotalPayout,
		NetRevenue:   agg.TotalBets - agg.TotalPayout,
		RecentGames:  agg.RecentGames,
		TopPlayers:   []domain.TopPlayer{},
	}

	if agg.TotalGames > 0 {
		stats.WinRate = float64(agg.TotalWins) / float64(agg.TotalGames) * 100
		stats.AverageBet = agg.TotalBets / float64(agg.TotalGames)
		stats.AveragePayout = agg.TotalPayout / float64(agg.TotalGames)
	}
	if stats.WinRate < 0 {
		stats.WinRate = 0
	}
	if stats.WinRate > 100 {
		stats.WinRate = 100
	}

	return stats
}

// rankPlayers converts ordered score rows into leaderboard entries
func rankPlayers(scores []domain.PlayerScore) []domain.TopPlayer {
	players := make([]domain.TopPlayer, 0, len(scores))
	for i, score := range scores {
		players = append(players, domain.TopPlayer{
			Rank:       i + 1,
			PlayerID:   score.PlayerID,
			BestPayout: score.BestPayout,
			InitialBet: score.Metadata.InitialBet,
			Winnings:   score.Metadata.Winnings,
		})
	}
	return players
}
