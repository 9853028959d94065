package handler

import (
	"net/http"

	"github.com/dynatrace-oss/Perform-Hackathon-2026/internal/blackjack"
	"github.com/dynatrace-oss/Perform-Hackathon-2026/internal/domain"
)

// BlackjackHandler exposes the blackjack table over HTTP
type BlackjackHandler struct {
	service blackjack.Service
}

// NewBlackjackHandler creates a new blackjack handler
func NewBlackjackHandler(service blackjack.Service) *BlackjackHandler {
	return &BlackjackHandler{service: service}
}

// DealRequest is the request body for starting a blackjack round
type DealRequest struct {
	PlayerID  string  `json:"playerId" validate:"required,max=64"`
	BetAmount float64 `json:"betAmount" validate:"required,gt=0"`
}

// ActionRequest is the request body for hit, stand and double
type ActionRequest struct {
	PlayerID string `json:"playerId" validate:"required,max=64"`
}

// BlackjackResponse carries the round state after an action. Result is
// set once the round settled; Session while the round is still open.
type BlackjackResponse struct {
	Session *domain.PlayerSession `json:"session,omitempty"`
	Result  *domain.RoundResult   `json:"result,omitempty"`
}

// HandleDeal starts a new blackjack round
// @Summary Deal a blackjack round
// @Description Deals two cards each to player and dealer and opens the round
// @Tags blackjack
// @Accept json
// @Produce json
// @Param request body DealRequest true "Deal request"
// @Success 201 {object} BlackjackResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /api/v1/blackjack/deal [post]
func (h *BlackjackHandler) HandleDeal(w http.ResponseWriter, r *http.Request) {
	var req DealRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Deal blackjack"); err != nil {
		return
	}

	sess, err := h.service.Deal(r.Context(), req.PlayerID, req.BetAmount)
	if err != nil {
		respondServiceError(w, r, ErrMsgDealFailed, err)
		return
	}

	respondJSON(w, http.StatusCreated, BlackjackResponse{Session: sess})
}

// HandleHit draws one more card for the player
// @Summary Hit
// @Description Draws a card; a bust settles the round immediately
// @Tags blackjack
// @Accept json
// @Produce json
// @Param request body ActionRequest true "Hit request"
// @Success 200 {object} BlackjackResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/blackjack/hit [post]
func (h *BlackjackHandler) HandleHit(w http.ResponseWriter, r *http.Request) {
	var req ActionRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Hit"); err != nil {
		return
	}

	sess, result, err := h.service.Hit(r.Context(), req.PlayerID)
	if err != nil {
		respondServiceError(w, r, ErrMsgHitFailed, err)
		return
	}

	respondJSON(w, http.StatusOK, BlackjackResponse{Session: sess, Result: result})
}

// HandleStand ends the player's turn and resolves the dealer
// @Summary Stand
// @Description Stops drawing; the dealer plays out and the round settles
// @Tags blackjack
// @Accept json
// @Produce json
// @Param request body ActionRequest true "Stand request"
// @Success 200 {object} BlackjackResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/blackjack/stand [post]
func (h *BlackjackHandler) HandleStand(w http.ResponseWriter, r *http.Request) {
	var req ActionRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Stand"); err != nil {
		return
	}

	result, err := h.service.Stand(r.Context(), req.PlayerID)
	if err != nil {
		respondServiceError(w, r, ErrMsgStandFailed, err)
		return
	}

	respondJSON(w, http.StatusOK, BlackjackResponse{Result: result})
}

// HandleDouble doubles the bet, draws one card and resolves the round
// @Summary Double down
// @Description Doubles the bet, draws exactly one card and settles
// @Tags blackjack
// @Accept json
// @Produce json
// @Param request body ActionRequest true "Double request"
// @Success 200 {object} BlackjackResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/blackjack/double [post]
func (h *BlackjackHandler) HandleDouble(w http.ResponseWriter, r *http.Request) {
	var req ActionRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Double down"); err != nil {
		return
	}

	result, err := h.service.Double(r.Context(), req.PlayerID)
	if err != nil {
		respondServiceError(w, r, ErrMsgDoubleFailed, err)
		return
	}

	respondJSON(w, http.StatusOK, BlackjackResponse{Result: result})
}

// HandleGetSession returns the open round for a player, if any
// @Summary Get the open blackjack round
// @Tags blackjack
// @Produce json
// @Param playerId query string true "Player ID"
// @Success 200 {object} BlackjackResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/blackjack/session [get]
func (h *BlackjackHandler) HandleGetSession(w http.ResponseWriter, r *http.Request) {
	playerID, ok := GetQueryParam(r, w, "playerId")
	if !ok {
		return
	}

	sess, err := h.service.GetSession(r.Context(), playerID)
	if err != nil {
		respondServiceError(w, r, ErrMsgGetSessionFailed, err)
		return
	}

	respondJSON(w, http.StatusOK, BlackjackResponse{Session: sess})
}
