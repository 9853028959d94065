package blackjack

// Table rules
const (
	DealerStandScore = 17
	BustThreshold    = 21

	MaxBetAmount = 10000.0
)

// Card ranks and suits. Cards are dealt from an infinite shoe: each
// draw is an independent rank/suit pick.
var (
	ranks = []string{"A", "2", "3", "4", "5", "6", "7", "8", "9", "10", "J", "Q", "K"}
	suits = []string{"♠", "♥", "♦", "♣"}
)

// rankValues maps a rank to its base score. Aces start at 11 and are
// reduced to 1 as needed by the soft-ace adjustment.
var rankValues = map[string]int{
	"A": 11, "2": 2, "3": 3, "4": 4, "5": 5, "6": 6, "7": 7,
	"8": 8, "9": 9, "10": 10, "J": 10, "Q": 10, "K": 10,
}
