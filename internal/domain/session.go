package domain

import "time"

// RoundState is the lifecycle state of an in-flight round.
type RoundState string

const (
	StateAwaitingDeal RoundState = "awaiting_deal"
	StatePlayerTurn   RoundState = "player_turn"
	StateDealerTurn   RoundState = "dealer_turn"
	StateSettled      RoundState = "settled"
)

// PlayerSession holds the in-flight state of a multi-step round.
// Blackjack is the only game with multi-step rounds; single-spin games
// never create a session. Hands are stored as card codes ("A♠", "10♥")
// so sessions serialize cleanly to external stores.
type PlayerSession struct {
	PlayerID   string     `json:"playerId"`
	Game       Game       `json:"game"`
	State      RoundState `json:"state"`
	BetAmount  float64    `json:"betAmount"`
	PlayerHand []string   `json:"playerHand,omitempty"`
	DealerHand []string   `json:"dealerHand,omitempty"`
	Doubled    bool       `json:"doubled,omitempty"`
	CreatedAt  time.Time  `json:"createdAt"`
	UpdatedAt  time.Time  `json:"updatedAt"`
}

// Active reports whether the session still accepts player actions.
func (s *PlayerSession) Active() bool {
	return s != nil && s.State != StateSettled
}
