package whack

import "time"

// Event is a state change published by a Round for the presentation layer.
// Rounds queue events as they happen; the host collects them with Drain.
type Event interface {
	roundEvent()
}

// ScoreChanged is published after a successful tap.
type ScoreChanged struct {
	Score int
	Text  string
}

func (ScoreChanged) roundEvent() {}

// ScoreHidden is published when the score display is removed at round end.
type ScoreHidden struct{}

func (ScoreHidden) roundEvent() {}

// CountdownChanged is published when the remaining seconds become visible.
// Only sent while 0 < Seconds <= the configured countdown threshold.
type CountdownChanged struct {
	Seconds int
	Text    string
}

func (CountdownChanged) roundEvent() {}

// TileChanged is published whenever a tile flips state.
type TileChanged struct {
	Index int
	State TileState
}

func (TileChanged) roundEvent() {}

// DifficultyChanged is published after each ramp step.
type DifficultyChanged struct {
	Flash  time.Duration
	Revert time.Duration
}

func (DifficultyChanged) roundEvent() {}

// RoundEnded is published once, when the round is lost.
type RoundEnded struct {
	RoundID string
	Score   int
	Reason  EndReason
	Text    string
}

func (RoundEnded) roundEvent() {}

// ResetRequested asks the host to discard the round and start a new one.
type ResetRequested struct {
	RoundID string
}

func (ResetRequested) roundEvent() {}

// EndReason describes why a round ended.
type EndReason int

const (
	EndNone    EndReason = iota // Round still running
	EndTimeout                  // Countdown ran out
	EndMiss                     // A neutral tile was tapped
)

func (r EndReason) String() string {
	switch r {
	case EndNone:
		return "none"
	case EndTimeout:
		return "timeout"
	case EndMiss:
		return "miss"
	default:
		return "unknown"
	}
}
