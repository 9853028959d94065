package domain

import "fmt"

// Game identifies one of the supported casino games.
type Game string

const (
	GameSlots     Game = "slots"
	GameRoulette  Game = "roulette"
	GameDice      Game = "dice"
	GameBlackjack Game = "blackjack"
)

// AllGames lists every supported game in dashboard display order.
var AllGames = []Game{GameSlots, GameRoulette, GameDice, GameBlackjack}

// ParseGame validates a game identifier from external input.
func ParseGame(s string) (Game, error) {
	switch Game(s) {
	case GameSlots, GameRoulette, GameDice, GameBlackjack:
		return Game(s), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownGame, s)
	}
}

func (g Game) String() string {
	return string(g)
}
