package features

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEnvProviderDefaults(t *testing.T) {
	p := NewEnvProvider()

	assert.False(t, p.Enabled(FlagSlotsCheat))
	assert.False(t, p.Enabled(FlagRouletteCheat))
	assert.True(t, p.Enabled(FlagBlackjackDoubleDown))
	assert.False(t, p.Enabled("nonexistent_flag"))
}

func TestEnvProviderEnvironmentOverride(t *testing.T) {
	p := NewEnvProvider()

	t.Setenv("FLAG_SLOTS_CHEAT_ENABLED", "true")
	assert.True(t, p.Enabled(FlagSlotsCheat))

	t.Setenv("FLAG_BLACKJACK_DOUBLE_DOWN", "false")
	assert.False(t, p.Enabled(FlagBlackjackDoubleDown))

	// Malformed values fall back to the default
	t.Setenv("FLAG_ROULETTE_CHEAT_ENABLED", "banana")
	assert.False(t, p.Enabled(FlagRouletteCheat))
}

func TestEnvProviderStaticOverride(t *testing.T) {
	p := NewEnvProvider()
	t.Setenv("FLAG_SLOTS_CHEAT_ENABLED", "false")

	p.SetOverride(FlagSlotsCheat, true)
	assert.True(t, p.Enabled(FlagSlotsCheat), "override shadows environment")

	p.ClearOverride(FlagSlotsCheat)
	assert.False(t, p.Enabled(FlagSlotsCheat))
}

func TestStaticProvider(t *testing.T) {
	p := Static{FlagBlackjackDoubleDown: true}

	assert.True(t, p.Enabled(FlagBlackjackDoubleDown))
	assert.False(t, p.Enabled(FlagSlotsCheat))
}
