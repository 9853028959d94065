package features

// Flag keys. Values are read from FLAG_<UPPERCASED KEY> environment
// variables, falling back to the registered default.
const (
	// FlagSlotsCheat allows opted-in slots spins to force a winning line.
	FlagSlotsCheat = "slots_cheat_enabled"

	// FlagRouletteCheat allows opted-in roulette spins to boost win chance.
	FlagRouletteCheat = "roulette_cheat_enabled"

	// FlagBlackjackDoubleDown gates the blackjack double-down action.
	FlagBlackjackDoubleDown = "blackjack_double_down"
)

// EnvPrefix is prepended to uppercased flag keys for environment lookup
const EnvPrefix = "FLAG_"

// Flag defaults, applied when no environment override exists
var defaults = map[string]bool{
	FlagSlotsCheat:          false,
	FlagRouletteCheat:       false,
	FlagBlackjackDoubleDown: true,
}
