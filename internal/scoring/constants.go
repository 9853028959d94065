package scoring

import "time"

// Leaderboard limits
const (
	DefaultTopLimit = 10
	MaxTopLimit     = 100
)

// GameAll selects the cross-game leaderboard (best row per player)
const GameAll = "all"

// RecentWindow is the sliding window for the dashboard's recent-games count
const RecentWindow = 24 * time.Hour

// Log messages
const (
	LogMsgRoundRecorded       = "Round recorded"
	LogMsgNewBestPayout       = "New best payout for player"
	LogMsgDashboardFailed     = "Dashboard aggregation failed, returning zero stats"
	LogMsgRecordHandlerFailed = "Recording settled round failed"
)
