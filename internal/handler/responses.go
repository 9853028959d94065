package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/dynatrace-oss/Perform-Hackathon-2026/internal/domain"
	"github.com/dynatrace-oss/Perform-Hackathon-2026/internal/logger"
)

// Standard response types for consistent API responses

// SuccessResponse represents a simple successful operation message
type SuccessResponse struct {
	Message string `json:"message"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// respondJSON sends a JSON response with the given status code and payload
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	// Encode through a pooled buffer to reduce allocations
	buf := getBuffer()
	defer putBuffer(buf)

	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		// Headers are already written; nothing left to do but log
		slog.Error("Failed to encode JSON response", "error", err)
		return
	}

	if _, err := buf.WriteTo(w); err != nil {
		slog.Error("Failed to write response buffer", "error", err)
	}
}

// respondError sends a JSON error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}

// respondServiceError logs a failed service call and writes the mapped
// HTTP response
func respondServiceError(w http.ResponseWriter, r *http.Request, opName string, err error) {
	logger.FromContext(r.Context()).Error(opName, "error", err)
	statusCode, userMsg := mapServiceErrorToUserMessage(err)
	respondError(w, statusCode, userMsg)
}

// User-facing error messages for service errors
const (
	ErrMsgGenericServerError = "Something went wrong"
	ErrMsgUnknownError       = "Unknown error"

	ErrMsgBetAmountError      = "Bet amount must be positive"
	ErrMsgBetTypeError        = "Unsupported bet type"
	ErrMsgUnknownGameError    = "Unknown game"
	ErrMsgInvalidInputError   = "Invalid request. Please check your inputs."
	ErrMsgNoActiveRoundError  = "No active round. Deal first."
	ErrMsgRoundActiveError    = "A round is already in progress"
	ErrMsgRoundSettledError   = "That round is already settled"
	ErrMsgInvalidActionError  = "That action is not allowed right now"
	ErrMsgFeatureOffError     = "That feature is disabled"
	ErrMsgScoreNotFoundError  = "No score recorded for that player"
)

// mapServiceErrorToUserMessage maps domain errors to user-friendly HTTP
// status codes and messages.
func mapServiceErrorToUserMessage(err error) (int, string) {
	if err == nil {
		return http.StatusInternalServerError, ErrMsgUnknownError
	}

	switch {
	case errors.Is(err, domain.ErrInvalidBetAmount):
		return http.StatusBadRequest, ErrMsgBetAmountError
	case errors.Is(err, domain.ErrUnsupportedBetType):
		return http.StatusBadRequest, ErrMsgBetTypeError
	case errors.Is(err, domain.ErrUnknownGame):
		return http.StatusBadRequest, ErrMsgUnknownGameError
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest, ErrMsgInvalidInputError
	case errors.Is(err, domain.ErrNoActiveRound):
		return http.StatusNotFound, ErrMsgNoActiveRoundError
	case errors.Is(err, domain.ErrScoreNotFound):
		return http.StatusNotFound, ErrMsgScoreNotFoundError
	case errors.Is(err, domain.ErrRoundAlreadyActive):
		return http.StatusConflict, ErrMsgRoundActiveError
	case errors.Is(err, domain.ErrRoundSettled):
		return http.StatusConflict, ErrMsgRoundSettledError
	case errors.Is(err, domain.ErrInvalidAction):
		return http.StatusConflict, ErrMsgInvalidActionError
	case errors.Is(err, domain.ErrFeatureDisabled):
		return http.StatusForbidden, ErrMsgFeatureOffError
	case errors.Is(err, domain.ErrDatabaseError),
		errors.Is(err, domain.ErrConnectionTimeout):
		return http.StatusInternalServerError, ErrMsgGenericServerError
	}

	return http.StatusInternalServerError, ErrMsgGenericServerError
}
