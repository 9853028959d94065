package handler

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateGameTag(t *testing.T) {
	InitValidator()

	type request struct {
		Game string `validate:"required,game"`
	}

	tests := []struct {
		name    string
		game    string
		wantErr bool
	}{
		{"slots", "slots", false},
		{"roulette", "roulette", false},
		{"dice", "dice", false},
		{"blackjack", "blackjack", false},
		{"uppercase accepted", "SLOTS", false},
		{"unknown game", "poker", true},
		{"empty fails required", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := GetValidator().ValidateStruct(request{Game: tt.game})
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestFormatValidationError(t *testing.T) {
	InitValidator()

	type request struct {
		PlayerID  string  `validate:"required,max=64"`
		Game      string  `validate:"required,game"`
		BetAmount float64 `validate:"required,gt=0"`
	}

	err := GetValidator().ValidateStruct(request{Game: "poker"})
	require.Error(t, err)

	fields := FormatValidationError(err)
	assert.Equal(t, "This field is required", fields["playerid"])
	assert.Equal(t, "Unknown game", fields["game"])
	assert.Contains(t, fields, "betamount")
}

func TestFormatValidationErrorNonValidatorError(t *testing.T) {
	fields := FormatValidationError(errors.New("boom"))
	assert.Equal(t, map[string]string{"error": "Invalid request format"}, fields)
}

func TestFormatValidationErrorNil(t *testing.T) {
	assert.Nil(t, FormatValidationError(nil))
}
