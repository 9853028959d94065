package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/dynatrace-oss/Perform-Hackathon-2026/internal/domain"
	"github.com/dynatrace-oss/Perform-Hackathon-2026/internal/scoring"
)

// ScoringHandler exposes result recording and dashboards over HTTP
type ScoringHandler struct {
	service scoring.Service
}

// NewScoringHandler creates a new scoring handler
func NewScoringHandler(service scoring.Service) *ScoringHandler {
	return &ScoringHandler{service: service}
}

// GameResultRequest is the request body for recording an externally
// settled round
type GameResultRequest struct {
	PlayerID  string  `json:"playerId" validate:"required,max=64"`
	Game      string  `json:"game" validate:"required,game"`
	BetAmount float64 `json:"betAmount" validate:"required,gt=0"`
	Payout    float64 `json:"payout" validate:"gte=0"`
	Won       bool    `json:"won"`
}

// HandleRecordResult records a game result
// @Summary Record a game result
// @Description Persists a settled round and updates the player's best score
// @Tags scoring
// @Accept json
// @Produce json
// @Param request body GameResultRequest true "Game result"
// @Success 201 {object} domain.PlayerScore
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/scoring/game-result [post]
func (h *ScoringHandler) HandleRecordResult(w http.ResponseWriter, r *http.Request) {
	var req GameResultRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Record game result"); err != nil {
		return
	}

	game, err := domain.ParseGame(req.Game)
	if err != nil {
		respondServiceError(w, r, ErrMsgRecordResultFailed, err)
		return
	}

	score, err := h.service.Record(r.Context(), domain.RoundResult{
		ID:        uuid.New(),
		PlayerID:  req.PlayerID,
		Game:      game,
		BetAmount: req.BetAmount,
		Payout:    req.Payout,
		Won:       req.Won,
		PlayedAt:  time.Now().UTC(),
	})
	if err != nil {
		respondServiceError(w, r, ErrMsgRecordResultFailed, err)
		return
	}

	respondJSON(w, http.StatusCreated, score)
}

// HandleGetDashboard returns aggregated stats for every game
// @Summary Dashboard for all games
// @Tags scoring
// @Produce json
// @Success 200 {array} domain.DashboardStats
// @Router /api/v1/scoring/dashboard [get]
func (h *ScoringHandler) HandleGetDashboard(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.service.GetAllDashboards(r.Context()))
}

// HandleGetGameDashboard returns aggregated stats for one game
// @Summary Dashboard for one game
// @Tags scoring
// @Produce json
// @Param game path string true "Game" Enums(slots, roulette, dice, blackjack)
// @Success 200 {object} domain.DashboardStats
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/scoring/dashboard/{game} [get]
func (h *ScoringHandler) HandleGetGameDashboard(w http.ResponseWriter, r *http.Request) {
	game, err := domain.ParseGame(chi.URLParam(r, "game"))
	if err != nil {
		respondServiceError(w, r, ErrMsgGetDashboardFailed, err)
		return
	}

	stats, err := h.service.GetDashboard(r.Context(), game)
	if err != nil {
		respondServiceError(w, r, ErrMsgGetDashboardFailed, err)
		return
	}

	respondJSON(w, http.StatusOK, stats)
}

// HandleGetTopPlayers returns the leaderboard for one game or "all"
// @Summary Leaderboard
// @Tags scoring
// @Produce json
// @Param game path string true "Game or 'all'"
// @Param limit query int false "Maximum entries" default(10)
// @Success 200 {array} domain.TopPlayer
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/scoring/top-players/{game} [get]
func (h *ScoringHandler) HandleGetTopPlayers(w http.ResponseWriter, r *http.Request) {
	game := chi.URLParam(r, "game")

	limitStr := GetOptionalQueryParam(r, "limit", strconv.Itoa(scoring.DefaultTopLimit))
	limit, err := strconv.Atoi(limitStr)
	if err != nil || limit < 0 {
		http.Error(w, ErrMsgInvalidLimit, http.StatusBadRequest)
		return
	}

	players, err := h.service.GetTopPlayers(r.Context(), game, limit)
	if err != nil {
		respondServiceError(w, r, ErrMsgGetTopPlayersFailed, err)
		return
	}

	respondJSON(w, http.StatusOK, players)
}
