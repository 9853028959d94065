package domain

import "time"

// ScoreMetadata captures the round that produced a player's best payout.
type ScoreMetadata struct {
	InitialBet  float64 `json:"initialBet"`
	Winnings    float64 `json:"winnings"`
	NetWinnings float64 `json:"netWinnings"`
}

// PlayerScore is a player's best recorded payout for one game.
// BestPayout is monotone: it only ever increases, and Metadata always
// describes the round that set the current BestPayout.
type PlayerScore struct {
	PlayerID   string        `json:"playerId"`
	Game       Game          `json:"game"`
	BestPayout float64       `json:"bestPayout"`
	Metadata   ScoreMetadata `json:"metadata"`
	UpdatedAt  time.Time     `json:"updatedAt"`
}

// TopPlayer is one leaderboard row.
type TopPlayer struct {
	Rank       int     `json:"rank"`
	PlayerID   string  `json:"playerId"`
	BestPayout float64 `json:"bestPayout"`
	InitialBet float64 `json:"initialBet"`
	Winnings   float64 `json:"winnings"`
}

// DashboardStats aggregates recorded rounds for one game.
// WinRate is a percentage in [0,100]; all fields are zero when no
// rounds exist for the game.
type DashboardStats struct {
	Game          Game        `json:"game"`
	TotalGames    int64       `json:"totalGames"`
	TotalWins     int64       `json:"totalWins"`
	TotalLosses   int64       `json:"totalLosses"`
	WinRate       float64     `json:"winRate"`
	TotalBets     float64     `json:"totalBets"`
	TotalPayouts  float64     `json:"totalPayouts"`
	NetRevenue    float64     `json:"netRevenue"`
	AverageBet    float64     `json:"averageBet"`
	AveragePayout float64     `json:"averagePayout"`
	RecentGames   int64       `json:"recentGames"`
	TopPlayers    []TopPlayer `json:"topPlayers"`
}

// EmptyDashboardStats returns zeroed stats for a game with no rounds.
func EmptyDashboardStats(game Game) DashboardStats {
	return DashboardStats{
		Game:       game,
		TopPlayers: []TopPlayer{},
	}
}
