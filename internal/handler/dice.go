package handler

import (
	"net/http"

	"github.com/dynatrace-oss/Perform-Hackathon-2026/internal/dice"
)

// DiceHandler exposes the dice table over HTTP
type DiceHandler struct {
	service dice.Service
}

// NewDiceHandler creates a new dice handler
func NewDiceHandler(service dice.Service) *DiceHandler {
	return &DiceHandler{service: service}
}

// RollDiceRequest is the request body for a dice roll
type RollDiceRequest struct {
	PlayerID  string  `json:"playerId" validate:"required,max=64"`
	BetAmount float64 `json:"betAmount" validate:"required,gt=0"`
	BetType   string  `json:"betType" validate:"omitempty,max=32"`
}

// HandleRoll processes a two-die roll
// @Summary Roll the dice
// @Description Rolls two dice and settles the given bet type
// @Tags dice
// @Accept json
// @Produce json
// @Param request body RollDiceRequest true "Roll request"
// @Success 200 {object} domain.RoundResult
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/dice/roll [post]
func (h *DiceHandler) HandleRoll(w http.ResponseWriter, r *http.Request) {
	var req RollDiceRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Roll dice"); err != nil {
		return
	}

	result, err := h.service.Roll(r.Context(), req.PlayerID, req.BetAmount, req.BetType)
	if err != nil {
		respondServiceError(w, r, ErrMsgRollDiceFailed, err)
		return
	}

	respondJSON(w, http.StatusOK, result)
}
