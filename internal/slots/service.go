package slots

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/dynatrace-oss/Perform-Hackathon-2026/internal/concurrency"
	"github.com/dynatrace-oss/Perform-Hackathon-2026/internal/domain"
	"github.com/dynatrace-oss/Perform-Hackathon-2026/internal/event"
	"github.com/dynatrace-oss/Perform-Hackathon-2026/internal/features"
	"github.com/dynatrace-oss/Perform-Hackathon-2026/internal/logger"
	"github.com/dynatrace-oss/Perform-Hackathon-2026/internal/random"
)

// Service defines the interface for slots operations
type Service interface {
	Spin(ctx context.Context, playerID string, betAmount float64, cheat domain.CheatRequest) (*domain.RoundResult, error)
}

type service struct {
	locks     *concurrency.LockManager
	publisher *event.ResilientPublisher
	flags     features.Provider
	rng       random.Source // Injectable for testing
}

// NewService creates a new slots service
func NewService(locks *concurrency.LockManager, publisher *event.ResilientPublisher, flags features.Provider, rng random.Source) Service {
	return &service{
		locks:     locks,
		publisher: publisher,
		flags:     flags,
		rng:       rng,
	}
}

// Spin processes a single slots spin for the given bet amount
func (s *service) Spin(ctx context.Context, playerID string, betAmount float64, cheat domain.CheatRequest) (*domain.RoundResult, error) {
	log := logger.FromContext(ctx)

	// Validate bet amount before any side effect
	if betAmount <= 0 {
		return nil, fmt.Errorf("%w: got %v", domain.ErrInvalidBetAmount, betAmount)
	}
	if betAmount > MaxBetAmount {
		return nil, fmt.Errorf("%w: maximum bet is %v", domain.ErrInvalidBetAmount, MaxBetAmount)
	}

	var result *domain.RoundResult

	err := s.locks.WithLock(concurrency.RoundKey(playerID, domain.GameSlots.String()), func() error {
		result = s.executeSpin(ctx, playerID, betAmount, cheat)
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.Info("Slots spin settled",
		"player_id", playerID,
		"reels", result.Slots.Reels,
		"payout", result.Payout,
		"win", result.Won)

	// Fire-and-forget persistence; settlement never waits on it
	s.publisher.Publish(ctx, event.NewRoundSettledEvent(*result)) //nolint:errcheck // resilient publisher never errors

	return result, nil
}

func (s *service) executeSpin(ctx context.Context, playerID string, betAmount float64, cheat domain.CheatRequest) *domain.RoundResult {
	reel1, reel2, reel3 := s.spinReels()
	cheatApplied := false

	if cheat.Active && s.flags.Enabled(features.FlagSlotsCheat) {
		if chance, ok := CheatForceChances[cheat.Type]; ok && s.rng.Float64() < chance {
			// Explicit override path: force the jackpot line
			reel1, reel2, reel3 = SymbolSeven, SymbolSeven, SymbolSeven
			cheatApplied = true

			logger.FromContext(ctx).Warn("Cheat override applied",
				"game", domain.GameSlots,
				"player_id", playerID,
				"cheat_type", cheat.Type)
		}
	}

	multiplier := 0.0
	if reel1 == reel2 && reel2 == reel3 {
		multiplier = PayoutMultipliers[reel1]
	}

	payout := betAmount * multiplier

	return &domain.RoundResult{
		ID:           uuid.New(),
		PlayerID:     playerID,
		Game:         domain.GameSlots,
		BetAmount:    betAmount,
		Payout:       payout,
		Won:          multiplier > 0,
		CheatApplied: cheatApplied,
		PlayedAt:     time.Now().UTC(),
		Slots: &domain.SlotsOutcome{
			Reels:      []string{reel1, reel2, reel3},
			Multiplier: multiplier,
		},
	}
}

// spinReels generates three random symbols using weighted distribution
func (s *service) spinReels() (string, string, string) {
	return s.selectWeightedSymbol(), s.selectWeightedSymbol(), s.selectWeightedSymbol()
}

// selectWeightedSymbol performs weighted random selection of a symbol
func (s *service) selectWeightedSymbol() string {
	totalWeight := 0
	for _, symbol := range symbolOrder {
		totalWeight += SymbolWeights[symbol]
	}

	roll := s.rng.IntN(totalWeight)

	cumulative := 0
	for _, symbol := range symbolOrder {
		cumulative += SymbolWeights[symbol]
		if roll < cumulative {
			return symbol
		}
	}

	// Unreachable while weights sum to totalWeight
	return symbolOrder[len(symbolOrder)-1]
}
