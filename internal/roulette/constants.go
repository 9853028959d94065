package roulette

// Wheel constants (European wheel, single zero)
const (
	WheelSize = 37 // 0-36
)

// Colors
const (
	ColorGreen = "green"
	ColorRed   = "red"
	ColorBlack = "black"
)

// Bet type constants
const (
	BetStraight = "straight"
	BetRed      = "red"
	BetBlack    = "black"
	BetEven     = "even"
	BetOdd      = "odd"
	BetLow      = "low"
	BetHigh     = "high"
)

// Payout multipliers (winnings relative to stake; a winning bet pays
// stake * (multiplier + 1), stake returned plus winnings)
var betMultipliers = map[string]float64{
	BetStraight: 35,
	BetRed:      1,
	BetBlack:    1,
	BetEven:     1,
	BetOdd:      1,
	BetLow:      1,
	BetHigh:     1,
}

// Betting limits
const (
	MaxBetAmount = 10000.0
)

// redNumbers on a European wheel
var redNumbers = map[int]bool{
	1: true, 3: true, 5: true, 7: true, 9: true, 12: true,
	14: true, 16: true, 18: true, 19: true, 21: true, 23: true,
	25: true, 27: true, 30: true, 32: true, 34: true, 36: true,
}

// CheatBoostChances gives the per-type probability that an opted-in
// cheat request re-aims the ball at a winning pocket.
var CheatBoostChances = map[string]float64{
	"ballControl":      0.30,
	"wheelBias":        0.25,
	"magneticField":    0.40,
	"sectorPrediction": 0.35,
}

// ColorOf returns the color of a wheel pocket
func ColorOf(number int) string {
	if number == 0 {
		return ColorGreen
	}
	if redNumbers[number] {
		return ColorRed
	}
	return ColorBlack
}
