package dice

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/dynatrace-oss/Perform-Hackathon-2026/internal/concurrency"
	"github.com/dynatrace-oss/Perform-Hackathon-2026/internal/domain"
	"github.com/dynatrace-oss/Perform-Hackathon-2026/internal/event"
	"github.com/dynatrace-oss/Perform-Hackathon-2026/internal/logger"
	"github.com/dynatrace-oss/Perform-Hackathon-2026/internal/random"
)

// Service defines the interface for dice operations
type Service interface {
	Roll(ctx context.Context, playerID string, betAmount float64, betType string) (*domain.RoundResult, error)
}

type service struct {
	locks         *concurrency.LockManager
	publisher     *event.ResilientPublisher
	rng           random.Source // Injectable for testing
	unknownPolicy UnknownBetPolicy
}

// NewService creates a new dice service
func NewService(locks *concurrency.LockManager, publisher *event.ResilientPublisher, rng random.Source, unknownPolicy UnknownBetPolicy) Service {
	if unknownPolicy == "" {
		unknownPolicy = UnknownBetFallback
	}
	return &service{
		locks:         locks,
		publisher:     publisher,
		rng:           rng,
		unknownPolicy: unknownPolicy,
	}
}

// Roll processes a single two-die roll for the given bet
func (s *service) Roll(ctx context.Context, playerID string, betAmount float64, betType string) (*domain.RoundResult, error) {
	log := logger.FromContext(ctx)

	// Validate bet amount before any side effect
	if betAmount <= 0 {
		return nil, fmt.Errorf("%w: got %v", domain.ErrInvalidBetAmount, betAmount)
	}
	if betAmount > MaxBetAmount {
		return nil, fmt.Errorf("%w: maximum bet is %v", domain.ErrInvalidBetAmount, MaxBetAmount)
	}

	betType, err := s.normalizeBetType(ctx, betType)
	if err != nil {
		return nil, err
	}

	var result *domain.RoundResult

	lockErr := s.locks.WithLock(concurrency.RoundKey(playerID, domain.GameDice.String()), func() error {
		result = s.executeRoll(playerID, betAmount, betType)
		return nil
	})
	if lockErr != nil {
		return nil, lockErr
	}

	log.Info("Dice roll settled",
		"player_id", playerID,
		"die1", result.Dice.Die1,
		"die2", result.Dice.Die2,
		"bet_type", betType,
		"payout", result.Payout,
		"win", result.Won)

	s.publisher.Publish(ctx, event.NewRoundSettledEvent(*result)) //nolint:errcheck

	return result, nil
}

// normalizeBetType resolves unknown bet types per the configured policy:
// empty defaults to pass; unrecognized values either fall back to pass
// (logged) or are rejected.
func (s *service) normalizeBetType(ctx context.Context, betType string) (string, error) {
	switch betType {
	case "":
		return BetPass, nil
	case BetPass, BetDontPass, BetField, BetSnakeEyes, BetBoxcars, BetSevenOut:
		return betType, nil
	}

	if s.unknownPolicy == UnknownBetReject {
		return "", fmt.Errorf("%w: %q", domain.ErrUnsupportedBetType, betType)
	}

	logger.FromContext(ctx).Warn("Unknown dice bet type, falling back to pass", "bet_type", betType)
	return BetPass, nil
}

func (s *service) executeRoll(playerID string, betAmount float64, betType string) *domain.RoundResult {
	die1 := s.rng.IntN(6) + 1
	die2 := s.rng.IntN(6) + 1
	total := die1 + die2

	win, multiplier := settle(die1, die2, total, betType)

	payout := 0.0
	if win {
		payout = betAmount * multiplier
	}

	return &domain.RoundResult{
		ID:        uuid.New(),
		PlayerID:  playerID,
		Game:      domain.GameDice,
		BetAmount: betAmount,
		Payout:    payout,
		Won:       win,
		PlayedAt:  time.Now().UTC(),
		Dice: &domain.DiceOutcome{
			Die1:       die1,
			Die2:       die2,
			Total:      total,
			BetType:    betType,
			Multiplier: multiplier,
		},
	}
}

// settle applies the bet-type rule table to a roll
func settle(die1, die2, total int, betType string) (bool, float64) {
	switch betType {
	case BetPass:
		return total == 7 || total == 11, MultiplierPass
	case BetDontPass:
		return total == 2 || total == 3, MultiplierDontPass
	case BetField:
		return fieldNumbers[total], MultiplierField
	case BetSnakeEyes:
		return die1 == 1 && die2 == 1, MultiplierSnakeEyes
	case BetBoxcars:
		return die1 == 6 && die2 == 6, MultiplierBoxcars
	case BetSevenOut:
		return total == 7, MultiplierSevenOut
	default:
		return total == 7 || total == 11, MultiplierPass
	}
}
