package handler

import (
	"net/http"

	"github.com/dynatrace-oss/Perform-Hackathon-2026/internal/domain"
	"github.com/dynatrace-oss/Perform-Hackathon-2026/internal/roulette"
)

// RouletteHandler exposes the roulette wheel over HTTP
type RouletteHandler struct {
	service roulette.Service
}

// NewRouletteHandler creates a new roulette handler
func NewRouletteHandler(service roulette.Service) *RouletteHandler {
	return &RouletteHandler{service: service}
}

// SpinRouletteRequest is the request body for a roulette spin. Either
// the bets map (multi-bet) or the simple betAmount/betType pair is used.
type SpinRouletteRequest struct {
	PlayerID    string                  `json:"playerId" validate:"required,max=64"`
	BetAmount   float64                 `json:"betAmount" validate:"omitempty,gt=0"`
	BetType     string                  `json:"betType" validate:"omitempty,max=32"`
	Bets        map[string]roulette.Bet `json:"bets" validate:"omitempty,dive"`
	CheatActive bool                    `json:"cheatActive"`
	CheatType   string                  `json:"cheatType" validate:"omitempty,max=32"`
}

// HandleSpin processes a roulette spin
// @Summary Spin the roulette wheel
// @Description Spins a European wheel and settles one or more bets
// @Tags roulette
// @Accept json
// @Produce json
// @Param request body SpinRouletteRequest true "Spin request"
// @Success 200 {object} domain.RoundResult
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/roulette/spin [post]
func (h *RouletteHandler) HandleSpin(w http.ResponseWriter, r *http.Request) {
	var req SpinRouletteRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Spin roulette"); err != nil {
		return
	}

	result, err := h.service.Spin(r.Context(), roulette.SpinRequest{
		PlayerID:  req.PlayerID,
		BetAmount: req.BetAmount,
		BetType:   req.BetType,
		Bets:      req.Bets,
		Cheat:     domain.CheatRequest{Active: req.CheatActive, Type: req.CheatType},
	})
	if err != nil {
		respondServiceError(w, r, ErrMsgSpinRouletteFailed, err)
		return
	}

	respondJSON(w, http.StatusOK, result)
}
