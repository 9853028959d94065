package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Bet validation errors
	ErrMsgInvalidBetAmount   = "bet amount must be positive"
	ErrMsgUnsupportedBetType = "unsupported bet type"

	// Game errors
	ErrMsgUnknownGame = "unknown game"

	// Session/round errors
	ErrMsgNoActiveRound      = "no active round for player"
	ErrMsgRoundAlreadyActive = "a round is already active"
	ErrMsgRoundSettled       = "round is already settled"
	ErrMsgInvalidAction      = "action not allowed in current round state"

	// Feature errors
	ErrMsgFeatureDisabled = "feature is disabled"

	// Score errors
	ErrMsgScoreNotFound = "score not found"

	// Database/System errors
	ErrMsgConnectionTimeout = "connection timeout"
	ErrMsgDatabaseError     = "database error"

	// Input errors
	ErrMsgInvalidInput = "invalid input"
)

// Common domain errors
// These errors should be used consistently across all layers of the application.
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	// Bet validation errors
	ErrInvalidBetAmount   = errors.New(ErrMsgInvalidBetAmount)
	ErrUnsupportedBetType = errors.New(ErrMsgUnsupportedBetType)

	// Game errors
	ErrUnknownGame = errors.New(ErrMsgUnknownGame)

	// Session/round errors
	ErrNoActiveRound      = errors.New(ErrMsgNoActiveRound)
	ErrRoundAlreadyActive = errors.New(ErrMsgRoundAlreadyActive)
	ErrRoundSettled       = errors.New(ErrMsgRoundSettled)
	ErrInvalidAction      = errors.New(ErrMsgInvalidAction)

	// Feature errors
	ErrFeatureDisabled = errors.New(ErrMsgFeatureDisabled)

	// Score errors
	ErrScoreNotFound = errors.New(ErrMsgScoreNotFound)

	// Database/System errors
	ErrConnectionTimeout = errors.New(ErrMsgConnectionTimeout)
	ErrDatabaseError     = errors.New(ErrMsgDatabaseError)

	// Input errors
	ErrInvalidInput = errors.New(ErrMsgInvalidInput)
)
