package api

import (
	"time"

	"github.com/vovakirdan/whack-arcade/internal/storage"
)

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Error string `json:"error"`
}

// HealthResponse reports liveness.
type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	Uptime    string `json:"uptime"`
	Games     int    `json:"games"`
	Database  bool   `json:"database"`
}

// GameInfo describes one registered game.
type GameInfo struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	HighScore int    `json:"high_score"`
}

// GamesResponse lists registered games.
type GamesResponse struct {
	Games []GameInfo `json:"games"`
}

// ScoreInfo is a leaderboard row.
type ScoreInfo struct {
	Rank      int    `json:"rank"`
	Score     int    `json:"score"`
	CreatedAt string `json:"created_at"`
}

// ScoresResponse is a game's leaderboard.
type ScoresResponse struct {
	GameID string      `json:"game_id"`
	Scores []ScoreInfo `json:"scores"`
}

// StatsResponse carries aggregated stats for a game.
type StatsResponse struct {
	GameID     string  `json:"game_id"`
	Games      int     `json:"games"`
	HighScore  int     `json:"high_score"`
	AvgScore   float64 `json:"avg_score"`
	TotalScore int64   `json:"total_score"`
	Misses     int     `json:"misses"`
	Timeouts   int     `json:"timeouts"`
	LastPlayed string  `json:"last_played,omitempty"`
}

// AllStatsResponse carries stats for every game that has been played.
type AllStatsResponse struct {
	Games []StatsResponse `json:"games"`
}

// RoundInfo is a persisted round.
type RoundInfo struct {
	RoundID       string  `json:"round_id"`
	GameID        string  `json:"game_id"`
	Score         int     `json:"score"`
	Taps          int     `json:"taps"`
	EndReason     string  `json:"end_reason"`
	DurationSec   float64 `json:"duration_sec"`
	FinalFlashMs  int64   `json:"final_flash_ms"`
	FinalRevertMs int64   `json:"final_revert_ms"`
	CreatedAt     string  `json:"created_at"`
}

// RoundsResponse lists recent rounds, newest first.
type RoundsResponse struct {
	Rounds []RoundInfo `json:"rounds"`
}

func newRoundInfo(r storage.RoundRecord) RoundInfo {
	return RoundInfo{
		RoundID:       r.RoundID,
		GameID:        r.GameID,
		Score:         r.Score,
		Taps:          r.Taps,
		EndReason:     r.EndReason,
		DurationSec:   r.Duration.Seconds(),
		FinalFlashMs:  r.FinalFlash.Milliseconds(),
		FinalRevertMs: r.FinalRevert.Milliseconds(),
		CreatedAt:     r.CreatedAt.UTC().Format(time.RFC3339),
	}
}

func newStatsResponse(stats *storage.GameStats) StatsResponse {
	resp := StatsResponse{
		GameID:     stats.GameID,
		Games:      stats.GamesCount,
		HighScore:  stats.HighScore,
		AvgScore:   stats.AvgScore,
		TotalScore: stats.TotalScore,
		Misses:     stats.Misses,
		Timeouts:   stats.Timeouts,
	}
	if !stats.LastPlayed.IsZero() {
		resp.LastPlayed = stats.LastPlayed.UTC().Format(time.RFC3339)
	}
	return resp
}
