package slots

// Symbol constants
const (
	SymbolSeven   = "7️⃣"
	SymbolStar    = "⭐"
	SymbolDiamond = "💎"
	SymbolCherry  = "🍒"
	SymbolLemon   = "🍋"
)

// Betting limits
const (
	MaxBetAmount = 10000.0
)

// Symbol weights for weighted random selection (out of 1000)
var SymbolWeights = map[string]int{
	SymbolLemon:   400, // 40%
	SymbolCherry:  300, // 30%
	SymbolDiamond: 180, // 18%
	SymbolStar:    90,  // 9%
	SymbolSeven:   30,  // 3%
}

// symbolOrder fixes the iteration order for weighted selection
var symbolOrder = []string{SymbolLemon, SymbolCherry, SymbolDiamond, SymbolStar, SymbolSeven}

// PayoutMultipliers defines the payout for 3 matching symbols
var PayoutMultipliers = map[string]float64{
	SymbolLemon:   2.0,   // Double bet
	SymbolCherry:  5.0,   // 5x payout
	SymbolDiamond: 10.0,  // 10x payout
	SymbolStar:    25.0,  // 25x payout
	SymbolSeven:   100.0, // 100x jackpot
}

// Cheat force chances per cheat type. A cheat request with an unknown
// type gets no boost.
var CheatForceChances = map[string]float64{
	"leverGlitch":  0.30,
	"chipRig":      0.40,
	"magnetAssist": 0.25,
}
