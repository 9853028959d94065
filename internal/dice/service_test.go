package dice

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dynatrace-oss/Perform-Hackathon-2026/internal/concurrency"
	"github.com/dynatrace-oss/Perform-Hackathon-2026/internal/domain"
	"github.com/dynatrace-oss/Perform-Hackathon-2026/internal/event"
)

// stubSource replays scripted random draws
type stubSource struct {
	ints []int
}

func (s *stubSource) IntN(int) int {
	v := s.ints[0]
	s.ints = s.ints[1:]
	return v
}

func (s *stubSource) Float64() float64 { return 0 }

// captureBus records published events
type captureBus struct {
	mu     sync.Mutex
	events []event.Event
}

func (b *captureBus) Publish(_ context.Context, evt event.Event) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.events = append(b.events, evt)
	return nil
}

func (b *captureBus) Subscribe(event.Type, event.Handler) {}

func (b *captureBus) Count() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.events)
}

func newTestService(dies []int, policy UnknownBetPolicy) (Service, *captureBus) {
	bus := &captureBus{}
	publisher := event.NewResilientPublisher(bus, event.ResilientConfig{
		MaxRetries: 1,
		RetryDelay: time.Millisecond,
	})
	// IntN yields die-1
	ints := make([]int, len(dies))
	for i, d := range dies {
		ints[i] = d - 1
	}
	return NewService(concurrency.NewLockManager(), publisher, &stubSource{ints: ints}, policy), bus
}

func TestRollPassSevenWins(t *testing.T) {
	svc, bus := newTestService([]int{4, 3}, UnknownBetFallback)

	result, err := svc.Roll(context.Background(), "alice", 25, BetPass)
	require.NoError(t, err)

	assert.Equal(t, 4, result.Dice.Die1)
	assert.Equal(t, 3, result.Dice.Die2)
	assert.Equal(t, 7, result.Dice.Total)
	assert.True(t, result.Won)
	assert.Equal(t, 50.0, result.Payout)
	// The settled round reaches the bus asynchronously
	assert.Eventually(t, func() bool { return bus.Count() == 1 }, time.Second, time.Millisecond)
}

func TestRollPassLoses(t *testing.T) {
	svc, _ := newTestService([]int{2, 2}, UnknownBetFallback)

	result, err := svc.Roll(context.Background(), "alice", 25, BetPass)
	require.NoError(t, err)

	assert.False(t, result.Won)
	assert.Equal(t, 0.0, result.Payout)
}

func TestRollBetTypes(t *testing.T) {
	tests := []struct {
		name       string
		dies       []int
		betType    string
		wantWin    bool
		wantPayout float64
	}{
		{"dont_pass wins on 3", []int{1, 2}, BetDontPass, true, 20},
		{"dont_pass loses on 7", []int{4, 3}, BetDontPass, false, 0},
		{"field wins on 9", []int{4, 5}, BetField, true, 20},
		{"field loses on 7", []int{3, 4}, BetField, false, 0},
		{"snake eyes pays 30x", []int{1, 1}, BetSnakeEyes, true, 300},
		{"snake eyes needs both ones", []int{1, 2}, BetSnakeEyes, false, 0},
		{"boxcars pays 30x", []int{6, 6}, BetBoxcars, true, 300},
		{"seven out pays 4x", []int{5, 2}, BetSevenOut, true, 40},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _ := newTestService(tt.dies, UnknownBetFallback)

			result, err := svc.Roll(context.Background(), "bob", 10, tt.betType)
			require.NoError(t, err)

			assert.Equal(t, tt.wantWin, result.Won)
			assert.Equal(t, tt.wantPayout, result.Payout)
			assert.Equal(t, tt.betType, result.Dice.BetType)
		})
	}
}

func TestRollEmptyBetTypeDefaultsToPass(t *testing.T) {
	svc, _ := newTestService([]int{5, 6}, UnknownBetFallback)

	result, err := svc.Roll(context.Background(), "carol", 10, "")
	require.NoError(t, err)

	assert.Equal(t, BetPass, result.Dice.BetType)
	assert.True(t, result.Won, "11 wins under the pass rule")
}

func TestRollUnknownBetTypeFallsBack(t *testing.T) {
	svc, _ := newTestService([]int{4, 3}, UnknownBetFallback)

	result, err := svc.Roll(context.Background(), "carol", 10, "martingale")
	require.NoError(t, err)

	assert.Equal(t, BetPass, result.Dice.BetType)
	assert.True(t, result.Won)
}

func TestRollUnknownBetTypeRejected(t *testing.T) {
	svc, bus := newTestService([]int{4, 3}, UnknownBetReject)

	_, err := svc.Roll(context.Background(), "carol", 10, "martingale")
	assert.ErrorIs(t, err, domain.ErrUnsupportedBetType)
	assert.Zero(t, bus.Count(), "rejected rolls must not be recorded")
}

func TestRollRejectsNonPositiveBet(t *testing.T) {
	svc, bus := newTestService(nil, UnknownBetFallback)

	_, err := svc.Roll(context.Background(), "dave", 0, BetPass)
	assert.ErrorIs(t, err, domain.ErrInvalidBetAmount)

	_, err = svc.Roll(context.Background(), "dave", -1, BetPass)
	assert.ErrorIs(t, err, domain.ErrInvalidBetAmount)

	assert.Zero(t, bus.Count())
}
