package scoring

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/dynatrace-oss/Perform-Hackathon-2026/internal/domain"
	"github.com/dynatrace-oss/Perform-Hackathon-2026/internal/repository"
)

// fakeRounds is an in-memory repository.Rounds that aggregates like the
// real SQL does
type fakeRounds struct {
	mu        sync.Mutex
	rounds    []domain.RoundResult
	insertErr error
	aggErr    error
}

func (f *fakeRounds) Insert(_ context.Context, result domain.RoundResult) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.insertErr != nil {
		return f.insertErr
	}
	f.rounds = append(f.rounds, result)
	return nil
}

func (f *fakeRounds) Aggregate(_ context.Context, game domain.Game, recentSince time.Time) (repository.RoundAggregate, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.aggErr != nil {
		return repository.RoundAggregate{}, f.aggErr
	}

	var agg repository.RoundAggregate
	for _, r := range f.rounds {
		if r.Game != game {
			continue
		}
		agg.TotalGames++
		if r.Won {
			agg.TotalWins++
		}
		agg.TotalBets += r.BetAmount
		agg.TotalPayout += r.Payout
		if !r.PlayedAt.Before(recentSince) {
			agg.RecentGames++
		}
	}
	return agg, nil
}

func (f *fakeRounds) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.rounds)
}

type scoreKey struct {
	playerID string
	game     domain.Game
}

// fakeScores is an in-memory repository.Scores
type fakeScores struct {
	mu      sync.Mutex
	rows    map[scoreKey]domain.PlayerScore
	saveErr error
	getErr  error
	topErr  error
}

func newFakeScores() *fakeScores {
	return &fakeScores{rows: make(map[scoreKey]domain.PlayerScore)}
}

func (f *fakeScores) Get(_ context.Context, playerID string, game domain.Game) (*domain.PlayerScore, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.getErr != nil {
		return nil, f.getErr
	}
	row, ok := f.rows[scoreKey{playerID, game}]
	if !ok {
		return nil, nil
	}
	return &row, nil
}

func (f *fakeScores) Save(_ context.Context, score domain.PlayerScore) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.saveErr != nil {
		return f.saveErr
	}
	// Mirrors the SQL upsert guard: a lower best never overwrites
	key := scoreKey{score.PlayerID, score.Game}
	if cur, ok := f.rows[key]; ok && cur.BestPayout >= score.BestPayout {
		return nil
	}
	f.rows[key] = score
	return nil
}

func (f *fakeScores) Touch(_ context.Context, playerID string, game domain.Game, at time.Time) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	row, ok := f.rows[scoreKey{playerID, game}]
	if !ok {
		return domain.ErrScoreNotFound
	}
	row.UpdatedAt = at
	f.rows[scoreKey{playerID, game}] = row
	return nil
}

func (f *fakeScores) TopByGame(_ context.Context, game domain.Game, limit int) ([]domain.PlayerScore, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.topErr != nil {
		return nil, f.topErr
	}

	var out []domain.PlayerScore
	for key, row := range f.rows {
		if key.game == game {
			out = append(out, row)
		}
	}
	return orderAndTrim(out, limit), nil
}

func (f *fakeScores) TopAllGames(_ context.Context, limit int) ([]domain.PlayerScore, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.topErr != nil {
		return nil, f.topErr
	}

	best := make(map[string]domain.PlayerScore)
	for key, row := range f.rows {
		if cur, ok := best[key.playerID]; !ok || row.BestPayout > cur.BestPayout {
			best[key.playerID] = row
		}
	}
	out := make([]domain.PlayerScore, 0, len(best))
	for _, row := range best {
		out = append(out, row)
	}
	return orderAndTrim(out, limit), nil
}

func orderAndTrim(rows []domain.PlayerScore, limit int) []domain.PlayerScore {
	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].BestPayout != rows[j].BestPayout {
			return rows[i].BestPayout > rows[j].BestPayout
		}
		return rows[i].UpdatedAt.After(rows[j].UpdatedAt)
	})
	if len(rows) > limit {
		rows = rows[:limit]
	}
	return rows
}
