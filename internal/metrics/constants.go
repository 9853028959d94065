package metrics

// ============================================================================
// Metric Names
// ============================================================================

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
)

// Event metric names
const (
	MetricNameEventsPublished    = "events_published_total"
	MetricNameEventHandlerErrors = "event_handler_errors_total"
)

// Business metric names
const (
	MetricNameRoundsPlayed    = "casino_rounds_played_total"
	MetricNameRoundsWon       = "casino_rounds_won_total"
	MetricNameBetAmount       = "casino_bet_amount_total"
	MetricNamePayoutAmount    = "casino_payout_amount_total"
	MetricNameCheatsApplied   = "casino_cheats_applied_total"
	MetricNameActiveSessions  = "casino_active_sessions"
	MetricNameSessionsExpired = "casino_sessions_expired_total"
)

// ============================================================================
// Metric Help Text
// ============================================================================

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
)

// Event metric help text
const (
	HelpTextEventsPublished    = "Total number of events published"
	HelpTextEventHandlerErrors = "Total number of event handler errors"
)

// Business metric help text
const (
	HelpTextRoundsPlayed    = "Total number of game rounds settled"
	HelpTextRoundsWon       = "Total number of game rounds won by players"
	HelpTextBetAmount       = "Total amount wagered across all rounds"
	HelpTextPayoutAmount    = "Total amount paid out across all rounds"
	HelpTextCheatsApplied   = "Total number of rounds settled with a cheat override"
	HelpTextActiveSessions  = "Current number of in-flight multi-step rounds"
	HelpTextSessionsExpired = "Total number of abandoned sessions evicted"
)

// ============================================================================
// Metric Label Names
// ============================================================================

// Common label names used across metrics
const (
	LabelMethod = "method"
	LabelPath   = "path"
	LabelStatus = "status"
	LabelType   = "type"
	LabelGame   = "game"
)

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets defines the histogram buckets for HTTP request duration
// in seconds. These buckets range from 1ms to 10s to capture various latency
// patterns: fast (1-10ms), normal (10-100ms), slow (100ms-1s), very slow (1-10s)
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}

// ============================================================================
// Log Messages
// ============================================================================

// Debug log messages
const (
	LogMsgMetricsRecorded = "Metrics recorded for event"
)
