package blackjack

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
	"github.com/dynatrace-oss/Perform-Hackathon-2026/internal/session"
)

// Service defines the interface for blackjack operations.
// Deal starts a round; Hit, Stand and Double act on it. Methods return
// a PlayerSession while the round is open and a RoundResult once it
// settles; exactly one of the two is non-nil.
type Service interface {
	Deal(ctx context.Context, playerID string, betAmount float64) (*domain.PlayerSession, error)
	Hit(ctx context.Context, playerID string) (*domain.PlayerSession, *domain.RoundResult, error)
	Stand(ctx context.Context, playerID string) (*domain.RoundResult, error)
	Double(ctx context.Context, playerID string) (*domain.RoundResult, error)
	GetSession(ctx context.Context, playerID string) (*domain.PlayerSession, error)
}

type service struct {
	sessions  session.Store
	locks     *concurrency.LockManager
	publisher *event.ResilientPublisher
	flags     features.Provider
	rng       random.Source // Injectable for testing
}

// NewService creates a new blackjack service
func NewService(sessions session.Store, locks *concurrency.LockManager, publisher *event.ResilientPublisher, flags features.Provider, rng random.Source) Service {
	return &service{
		sessions:  sessions,
		locks:     locks,
		publisher: publisher,
		flags:     flags,
		rng:       rng,
	}
}

// Deal starts a new round: two cards each to player and dealer, then PlayerTurn
func (s *service) Deal(ctx context.Context, playerID string, betAmount float64) (*domain.PlayerSession, error) {
	if betAmount <= 0 {
		return nil, fmt.Errorf("%w: got %v", domain.ErrInvalidBetAmount, betAmount)
	}
	if betAmount > MaxBetAmount {
		return nil, fmt.Errorf("%w: maximum bet is %v", domain.ErrInvalidBetAmount, MaxBetAmount)
	}

	var sess *domain.PlayerSession

	err := s.locks.WithLock(s.lockKey(playerID), func() error {
		existing, err := s.sessions.Get(ctx, playerID)
		if err != nil {
			return fmt.Errorf("load session: %w", err)
		}
		if existing.Active() {
			return fmt.Errorf("%w: player %s", domain.ErrRoundAlreadyActive, playerID)
		}

		now := time.Now().UTC()
		sess = &domain.PlayerSession{
			PlayerID:   playerID,
			Game:       domain.GameBlackjack,
			State:      domain.StatePlayerTurn,
			BetAmount:  betAmount,
			PlayerHand: []string{s.drawCard(), s.drawCard()},
			DealerHand: []string{s.drawCard(), s.drawCard()},
			CreatedAt:  now,
			UpdatedAt:  now,
		}
		return s.sessions.Put(ctx, sess)
	})
	if err != nil {
		return nil, err
	}

	logger.FromContext(ctx).Info("Blackjack round dealt",
		"player_id", playerID,
		"player_score", Score(sess.PlayerHand),
		"bet_amount", betAmount)

	return sess, nil
}

// Hit draws one card; the round settles immediately if the player busts
func (s *service) Hit(ctx context.Context, playerID string) (*domain.PlayerSession, *domain.RoundResult, error) {
	var (
		sess   *domain.PlayerSession
		result *domain.RoundResult
	)

	err := s.locks.WithLock(s.lockKey(playerID), func() error {
		var err error
		sess, err = s.activeSession(ctx, playerID)
		if err != nil {
			return err
		}

		sess.PlayerHand = append(sess.PlayerHand, s.drawCard())
		sess.UpdatedAt = time.Now().UTC()

		if Score(sess.PlayerHand) > BustThreshold {
			result = s.settle(ctx, sess)
			sess = nil
			return nil
		}

		return s.sessions.Put(ctx, sess)
	})
	if err != nil {
		return nil, nil, err
	}

	return sess, result, nil
}

// Stand ends the player turn and resolves the dealer
func (s *service) Stand(ctx context.Context, playerID string) (*domain.RoundResult, error) {
	var result *domain.RoundResult

	err := s.locks.WithLock(s.lockKey(playerID), func() error {
		sess, err := s.activeSession(ctx, playerID)
		if err != nil {
			return err
		}

		sess.State = domain.StateDealerTurn
		s.resolveDealer(sess)
		result = s.settle(ctx, sess)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

// Double doubles the bet, draws exactly one card and forces dealer resolution
func (s *service) Double(ctx context.Context, playerID string) (*domain.RoundResult, error) {
	if !s.flags.Enabled(features.FlagBlackjackDoubleDown) {
		return nil, fmt.Errorf("%w: double down", domain.ErrFeatureDisabled)
	}

	var result *domain.RoundResult

	err := s.locks.WithLock(s.lockKey(playerID), func() error {
		sess, err := s.activeSession(ctx, playerID)
		if err != nil {
			return err
		}

		sess.BetAmount *= 2
		sess.Doubled = true
		sess.PlayerHand = append(sess.PlayerHand, s.drawCard())
		sess.UpdatedAt = time.Now().UTC()

		if Score(sess.PlayerHand) <= BustThreshold {
			sess.State = domain.StateDealerTurn
			s.resolveDealer(sess)
		}
		result = s.settle(ctx, sess)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

// GetSession returns the player's open round
func (s *service) GetSession(ctx context.Context, playerID string) (*domain.PlayerSession, error) {
	sess, err := s.sessions.Get(ctx, playerID)
	if err != nil {
		return nil, fmt.Errorf("load session: %w", err)
	}
	if !sess.Active() {
		return nil, fmt.Errorf("%w: player %s", domain.ErrNoActiveRound, playerID)
	}
	return sess, nil
}

func (s *service) lockKey(playerID string) string {
	return concurrency.RoundKey(playerID, domain.GameBlackjack.String())
}

// activeSession loads a session in PlayerTurn, erroring otherwise
func (s *service) activeSession(ctx context.Context, playerID string) (*domain.PlayerSession, error) {
	sess, err := s.sessions.Get(ctx, playerID)
	if err != nil {
		return nil, fmt.Errorf("load session: %w", err)
	}
	if !sess.Active() {
		return nil, fmt.Errorf("%w: player %s", domain.ErrNoActiveRound, playerID)
	}
	if sess.State != domain.StatePlayerTurn {
		return nil, fmt.Errorf("%w: state %s", domain.ErrInvalidAction, sess.State)
	}
	return sess, nil
}

// resolveDealer draws until the dealer reaches the stand score
func (s *service) resolveDealer(sess *domain.PlayerSession) {
	for Score(sess.DealerHand) < DealerStandScore {
		sess.DealerHand = append(sess.DealerHand, s.drawCard())
	}
}

// settle computes the final result, removes the session and publishes the round
func (s *service) settle(ctx context.Context, sess *domain.PlayerSession) *domain.RoundResult {
	playerScore := Score(sess.PlayerHand)
	dealerScore := Score(sess.DealerHand)

	var (
		outcome string
		payout  float64
		won     bool
	)

	switch {
	case playerScore > BustThreshold:
		outcome = domain.BlackjackResultBust
	case dealerScore > BustThreshold || playerScore > dealerScore:
		outcome = domain.BlackjackResultWin
		payout = sess.BetAmount * 2
		won = true
	case playerScore == dealerScore:
		outcome = domain.BlackjackResultPush
		payout = sess.BetAmount // bet returned
	default:
		outcome = domain.BlackjackResultLose
	}

	sess.State = domain.StateSettled

	if err := s.sessions.Delete(ctx, sess.PlayerID); err != nil {
		logger.FromContext(ctx).Warn("Failed to delete settled session",
			"player_id", sess.PlayerID, "error", err)
	}

	result := &domain.RoundResult{
		ID:        uuid.New(),
		PlayerID:  sess.PlayerID,
		Game:      domain.GameBlackjack,
		BetAmount: sess.BetAmount,
		Payout:    payout,
		Won:       won,
		PlayedAt:  time.Now().UTC(),
		Blackjack: &domain.BlackjackOutcome{
			PlayerHand:  sess.PlayerHand,
			DealerHand:  sess.DealerHand,
			PlayerTotal: playerScore,
			DealerTotal: dealerScore,
			Result:      outcome,
			Doubled:     sess.Doubled,
		},
	}

	logger.FromContext(ctx).Info("Blackjack round settled",
		"player_id", sess.PlayerID,
		"result", outcome,
		"player_score", playerScore,
		"dealer_score", dealerScore,
		"payout", payout)

	s.publisher.Publish(ctx, event.NewRoundSettledEvent(*result)) //nolint:errcheck

	return result
}

// drawCard deals one card from the infinite shoe
func (s *service) drawCard() string {
	rank := ranks[s.rng.IntN(len(ranks))]
	suit := suits[s.rng.IntN(len(suits))]
	return Card(rank, suit)
}
