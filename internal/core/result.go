package core

import "time"

// RoundResult summarises a finished round for persistence.
type RoundResult struct {
	RoundID     string
	GameID      string
	Score       int
	Taps        int
	Reason      string // "timeout" or "miss"
	Duration    time.Duration
	FinalFlash  time.Duration
	FinalRevert time.Duration
}

// ResultSaver persists finished rounds.
// Lets games report results without depending on the storage package.
type ResultSaver interface {
	SaveRoundResult(result RoundResult) error
}
