package handler

// Generic HTTP error messages for client responses.
// These messages intentionally do not expose internal error details.
// Both handlers and tests should reference these constants to maintain consistency.
const (
	// HTTP status messages
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"

	// Query parameter error messages
	ErrMsgMissingQueryParam = "Missing %s query parameter"
	ErrMsgInvalidLimit      = "Invalid limit parameter"

	// Game operation error messages
	ErrMsgSpinSlotsFailed    = "Failed to spin slots"
	ErrMsgRollDiceFailed     = "Failed to roll dice"
	ErrMsgSpinRouletteFailed = "Failed to spin roulette"
	ErrMsgDealFailed         = "Failed to deal blackjack round"
	ErrMsgHitFailed          = "Failed to hit"
	ErrMsgStandFailed        = "Failed to stand"
	ErrMsgDoubleFailed       = "Failed to double down"
	ErrMsgGetSessionFailed   = "Failed to get blackjack session"

	// Scoring operation error messages
	ErrMsgRecordResultFailed  = "Failed to record game result"
	ErrMsgGetDashboardFailed  = "Failed to retrieve dashboard"
	ErrMsgGetTopPlayersFailed = "Failed to retrieve top players"
)
