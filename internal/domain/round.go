package domain

import (
	"time"

	"github.com/google/uuid"
)

// RoundResult is the settled outcome of a single game round.
// Exactly one of the per-game outcome fields is set, matching Game.
type RoundResult struct {
	ID           uuid.UUID         `json:"id"`
	PlayerID     string            `json:"playerId"`
	Game         Game              `json:"game"`
	BetAmount    float64           `json:"betAmount"`
	Payout       float64           `json:"payout"`
	Won          bool              `json:"won"`
	CheatApplied bool              `json:"cheatApplied,omitempty"`
	PlayedAt     time.Time         `json:"playedAt"`
	Slots        *SlotsOutcome     `json:"slots,omitempty"`
	Dice         *DiceOutcome      `json:"dice,omitempty"`
	Roulette     *RouletteOutcome  `json:"roulette,omitempty"`
	Blackjack    *BlackjackOutcome `json:"blackjack,omitempty"`
}

// Net returns the player's net winnings for the round (payout minus bet).
func (r RoundResult) Net() float64 {
	return r.Payout - r.BetAmount
}

// SlotsOutcome describes a slot machine spin.
type SlotsOutcome struct {
	Reels      []string `json:"reels"`
	Multiplier float64  `json:"multiplier"`
}

// DiceOutcome describes a two-die roll and the bet it settled.
type DiceOutcome struct {
	Die1       int     `json:"die1"`
	Die2       int     `json:"die2"`
	Total      int     `json:"total"`
	BetType    string  `json:"betType"`
	Multiplier float64 `json:"multiplier"`
}

// RouletteOutcome describes a roulette spin against one or more bets.
type RouletteOutcome struct {
	Number      int                `json:"number"`
	Color       string             `json:"color"`
	Bets        map[string]float64 `json:"bets,omitempty"`
	WinningBets []string           `json:"winningBets,omitempty"`
}

// BlackjackOutcome describes a settled blackjack round.
type BlackjackOutcome struct {
	PlayerHand  []string `json:"playerHand"`
	DealerHand  []string `json:"dealerHand"`
	PlayerTotal int      `json:"playerTotal"`
	DealerTotal int      `json:"dealerTotal"`
	Result      string   `json:"result"`
	Doubled     bool     `json:"doubled,omitempty"`
}

// Blackjack round results.
const (
	BlackjackResultWin  = "win"
	BlackjackResultLose = "lose"
	BlackjackResultBust = "bust"
	BlackjackResultPush = "push"
)
