package roulette

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/dynatrace-oss/Perform-Hackathon-2026/internal/concurrency"
	"github.com/dynatrace-oss/Perform-Hackathon-2026/internal/domain"
	"github.com/dynatrace-oss/Perform-Hackathon-2026/internal/event"
	"github.com/dynatrace-oss/Perform-Hackathon-2026/internal/features"
	"github.com/dynatrace-oss/Perform-Hackathon-2026/internal/logger"
	"github.com/dynatrace-oss/Perform-Hackathon-2026/internal/random"
)

// Bet is one wager within a multi-bet spin
type Bet struct {
	Type   string  `json:"type"`
	Value  int     `json:"value,omitempty"` // pocket number for straight bets
	Amount float64 `json:"amount"`
}

// SpinRequest describes one roulette spin. Either Bets (multi-bet map)
// or the simple BetType color wager is used; Bets wins when both are set.
type SpinRequest struct {
	PlayerID  string
	BetAmount float64        // simple bet stake
	BetType   string         // simple bet color, defaults to red
	Bets      map[string]Bet // multi-bet map, keyed by caller-chosen labels
	Cheat     domain.CheatRequest
}

// Service defines the interface for roulette operations
type Service interface {
	Spin(ctx context.Context, req SpinRequest) (*domain.RoundResult, error)
}

type service struct {
	locks     *concurrency.LockManager
	publisher *event.ResilientPublisher
	flags     features.Provider
	rng       random.Source // Injectable for testing
}

// NewService creates a new roulette service
func NewService(locks *concurrency.LockManager, publisher *event.ResilientPublisher, flags features.Provider, rng random.Source) Service {
	return &service{
		locks:     locks,
		publisher: publisher,
		flags:     flags,
		rng:       rng,
	}
}

// Spin settles one wheel spin against the request's bets
func (s *service) Spin(ctx context.Context, req SpinRequest) (*domain.RoundResult, error) {
	log := logger.FromContext(ctx)

	totalBet, err := validate(req)
	if err != nil {
		return nil, err
	}

	var result *domain.RoundResult

	lockErr := s.locks.WithLock(concurrency.RoundKey(req.PlayerID, domain.GameRoulette.String()), func() error {
		result = s.executeSpin(ctx, req, totalBet)
		return nil
	})
	if lockErr != nil {
		return nil, lockErr
	}

	log.Info("Roulette spin settled",
		"player_id", req.PlayerID,
		"number", result.Roulette.Number,
		"color", result.Roulette.Color,
		"payout", result.Payout,
		"win", result.Won)

	s.publisher.Publish(ctx, event.NewRoundSettledEvent(*result)) //nolint:errcheck

	return result, nil
}

// validate checks the request and returns the total stake
func validate(req SpinRequest) (float64, error) {
	if len(req.Bets) > 0 {
		total := 0.0
		for label, bet := range req.Bets {
			if bet.Amount <= 0 {
				return 0, fmt.Errorf("%w: bet %q has amount %v", domain.ErrInvalidBetAmount, label, bet.Amount)
			}
			if _, ok := betMultipliers[bet.Type]; !ok {
				return 0, fmt.Errorf("%w: %q", domain.ErrUnsupportedBetType, bet.Type)
			}
			if bet.Type == BetStraight && (bet.Value < 0 || bet.Value >= WheelSize) {
				return 0, fmt.Errorf("%w: straight bet on %d", domain.ErrInvalidInput, bet.Value)
			}
			total += bet.Amount
		}
		if total > MaxBetAmount {
			return 0, fmt.Errorf("%w: maximum total stake is %v", domain.ErrInvalidBetAmount, MaxBetAmount)
		}
		return total, nil
	}

	if req.BetAmount <= 0 {
		return 0, fmt.Errorf("%w: got %v", domain.ErrInvalidBetAmount, req.BetAmount)
	}
	if req.BetAmount > MaxBetAmount {
		return 0, fmt.Errorf("%w: maximum bet is %v", domain.ErrInvalidBetAmount, MaxBetAmount)
	}
	if req.BetType != "" && req.BetType != ColorRed && req.BetType != ColorBlack {
		return 0, fmt.Errorf("%w: %q", domain.ErrUnsupportedBetType, req.BetType)
	}
	return req.BetAmount, nil
}

func (s *service) executeSpin(ctx context.Context, req SpinRequest, totalBet float64) *domain.RoundResult {
	number := s.rng.IntN(WheelSize)
	cheatApplied := false

	// The cheat only re-aims multi-bet spins: it needs the bet map to
	// know which pockets would pay.
	if req.Cheat.Active && len(req.Bets) > 0 && s.flags.Enabled(features.FlagRouletteCheat) {
		if chance, ok := CheatBoostChances[req.Cheat.Type]; ok && s.rng.Float64() < chance {
			if winners := winningPockets(req.Bets); len(winners) > 0 {
				number = winners[s.rng.IntN(len(winners))]
				cheatApplied = true

				logger.FromContext(ctx).Warn("Cheat override applied",
					"game", domain.GameRoulette,
					"player_id", req.PlayerID,
					"cheat_type", req.Cheat.Type)
			}
		}
	}

	color := ColorOf(number)
	payout := 0.0
	won := false
	var winningBets []string
	var betsDetail map[string]float64

	if len(req.Bets) > 0 {
		betsDetail = make(map[string]float64, len(req.Bets))
		for label, bet := range req.Bets {
			betsDetail[label] = bet.Amount
			if betWins(bet, number, color) {
				payout += bet.Amount * (betMultipliers[bet.Type] + 1)
				won = true
				winningBets = append(winningBets, label)
			}
		}
		sort.Strings(winningBets)
	} else {
		betType := req.BetType
		if betType == "" {
			betType = ColorRed
		}
		if color == betType {
			payout = req.BetAmount * 2
			won = true
		}
	}

	return &domain.RoundResult{
		ID:           uuid.New(),
		PlayerID:     req.PlayerID,
		Game:         domain.GameRoulette,
		BetAmount:    totalBet,
		Payout:       payout,
		Won:          won,
		CheatApplied: cheatApplied,
		PlayedAt:     time.Now().UTC(),
		Roulette: &domain.RouletteOutcome{
			Number:      number,
			Color:       color,
			Bets:        betsDetail,
			WinningBets: winningBets,
		},
	}
}

// betWins applies one bet against a settled pocket
func betWins(bet Bet, number int, color string) bool {
	switch bet.Type {
	case BetStraight:
		return number == bet.Value
	case BetRed:
		return color == ColorRed
	case BetBlack:
		return color == ColorBlack
	case BetEven:
		return number > 0 && number%2 == 0
	case BetOdd:
		return number > 0 && number%2 == 1
	case BetLow:
		return number >= 1 && number <= 18
	case BetHigh:
		return number >= 19 && number <= 36
	default:
		return false
	}
}

// winningPockets lists every pocket where at least one of the bets pays
func winningPockets(bets map[string]Bet) []int {
	var pockets []int
	for number := 0; number < WheelSize; number++ {
		color := ColorOf(number)
		for _, bet := range bets {
			if betWins(bet, number, color) {
				pockets = append(pockets, number)
				break
			}
		}
	}
	return pockets
}
