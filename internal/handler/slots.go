package handler

import (
	"net/http"

	"github.com/dynatrace-oss/Perform-Hackathon-2026/internal/domain"
	"github.com/dynatrace-oss/Perform-Hackathon-2026/internal/slots"
)

// SlotsHandler exposes the slot machine over HTTP
type SlotsHandler struct {
	service slots.Service
}

// NewSlotsHandler creates a new slots handler
func NewSlotsHandler(service slots.Service) *SlotsHandler {
	return &SlotsHandler{service: service}
}

// SpinSlotsRequest is the request body for a slots spin
type SpinSlotsRequest struct {
	PlayerID    string  `json:"playerId" validate:"required,max=64"`
	BetAmount   float64 `json:"betAmount" validate:"required,gt=0"`
	CheatActive bool    `json:"cheatActive"`
	CheatType   string  `json:"cheatType" validate:"omitempty,max=32"`
}

// HandleSpin processes a slots spin
// @Summary Spin the slot machine
// @Description Spins three weighted reels and settles the bet
// @Tags slots
// @Accept json
// @Produce json
// @Param request body SpinSlotsRequest true "Spin request"
// @Success 200 {object} domain.RoundResult
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/slots/spin [post]
func (h *SlotsHandler) HandleSpin(w http.ResponseWriter, r *http.Request) {
	var req SpinSlotsRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Spin slots"); err != nil {
		return
	}

	cheat := domain.CheatRequest{Active: req.CheatActive, Type: req.CheatType}

	result, err := h.service.Spin(r.Context(), req.PlayerID, req.BetAmount, cheat)
	if err != nil {
		respondServiceError(w, r, ErrMsgSpinSlotsFailed, err)
		return
	}

	respondJSON(w, http.StatusOK, result)
}
