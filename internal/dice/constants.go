package dice

// Bet type constants
const (
	BetPass      = "pass"
	BetDontPass  = "dont_pass"
	BetField     = "field"
	BetSnakeEyes = "snake_eyes"
	BetBoxcars   = "boxcars"
	BetSevenOut  = "seven_out"
)

// Payout multipliers per bet type
const (
	MultiplierPass      = 2.0
	MultiplierDontPass  = 2.0
	MultiplierField     = 2.0
	MultiplierSnakeEyes = 30.0
	MultiplierBoxcars   = 30.0
	MultiplierSevenOut  = 4.0
)

// Betting limits
const (
	MaxBetAmount = 10000.0
)

// UnknownBetPolicy controls how unrecognized bet types settle
type UnknownBetPolicy string

const (
	// UnknownBetFallback settles unknown bet types under the pass rule
	UnknownBetFallback UnknownBetPolicy = "fallback"

	// UnknownBetReject fails unknown bet types with a validation error
	UnknownBetReject UnknownBetPolicy = "reject"
)

// fieldNumbers are the totals that win a field bet
var fieldNumbers = map[int]bool{
	2: true, 3: true, 4: true, 9: true, 10: true, 11: true, 12: true,
}
