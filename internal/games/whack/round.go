package whack

import (
	"fmt"
	"math/rand"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/vovakirdan/whack-arcade/internal/config"
	"github.com/vovakirdan/whack-arcade/internal/core"
)

// GameOverLabel is shown once a round has ended.
const GameOverLabel = "Game Over"

// countdownPeriod is how often secondsRemaining drops by one.
const countdownPeriod = time.Second

// Round is the state machine for a single play session.
//
// A Round owns its tiles, score, countdown and a private scheduler that
// drives three periodic actions: the countdown, the spawn cycle that flashes
// a random tile, and the difficulty ramp. Nothing runs on its own; the host
// calls Advance with elapsed simulation time and Tap with player input.
//
// Rounds are never reused. When a round ends it publishes ResetRequested
// after the configured delay and the host replaces it with NewRound.
type Round struct {
	id    string
	cfg   config.WhackConfig
	ramp  config.Ramp
	sched *core.Scheduler
	rng   *rand.Rand

	tiles            [TileCount]Tile
	score            int
	taps             int
	secondsRemaining int
	alive            bool
	flash            time.Duration
	revert           time.Duration

	headline       string
	scoreVisible   bool
	endReason      EndReason
	endedAt        time.Duration
	resetRequested bool

	events []Event
}

// NewRound creates a round and schedules its periodic actions.
func NewRound(cfg config.WhackConfig, seed int64) *Round {
	r := &Round{
		id:               uuid.NewString(),
		cfg:              cfg,
		ramp:             config.NewRamp(cfg.Difficulty),
		sched:            core.NewScheduler(),
		rng:              rand.New(rand.NewSource(seed)),
		secondsRemaining: cfg.Round.StartSeconds,
		alive:            true,
		flash:            cfg.FlashDuration(),
		revert:           cfg.RevertDuration(),
		headline:         cfg.Round.Prompt,
		scoreVisible:     true,
	}
	for i := range r.tiles {
		r.tiles[i] = Tile{Index: i, State: TileNeutral}
	}

	r.sched.Every(countdownPeriod, r.countdownTick)
	// The spawn period stays at the starting flash+revert; the ramp only
	// shortens the intervals inside each cycle.
	r.sched.Every(r.flash+r.revert, r.spawnCycle)
	if r.ramp.Enabled() {
		r.sched.Every(r.ramp.Period(), r.difficultyRamp)
	}
	return r
}

// Advance moves the round clock forward, running every action that falls due.
func (r *Round) Advance(d time.Duration) {
	r.sched.Advance(d)
}

// Tap handles the player selecting a tile.
// Out-of-range indices and taps after the round has ended are ignored.
func (r *Round) Tap(index int) {
	if index < 0 || index >= TileCount || !r.alive {
		return
	}
	r.taps++

	if r.tiles[index].State != TileActive {
		r.End(EndMiss)
		return
	}

	// The tile stays green until its own revert fires
	r.score++
	r.emit(ScoreChanged{Score: r.score, Text: r.ScoreText()})
}

// End finishes the round. Only the first call has any effect.
//
// Every pending continuation of the round is cancelled, so no tile flips
// after the round is over, and the reset request is scheduled on the
// clean queue.
func (r *Round) End(reason EndReason) {
	if !r.alive {
		return
	}
	r.alive = false
	r.secondsRemaining = 0
	r.scoreVisible = false
	r.headline = GameOverLabel
	r.endReason = reason
	r.endedAt = r.sched.Now()

	r.emit(ScoreHidden{})
	r.emit(RoundEnded{RoundID: r.id, Score: r.score, Reason: reason, Text: GameOverLabel})

	r.sched.CancelAll()
	r.sched.After(r.cfg.ResetDelayDuration(), r.requestReset)
}

func (r *Round) countdownTick() {
	if !r.alive {
		return
	}
	r.secondsRemaining--

	// Nothing happens at exactly zero; the round ends one tick later.
	if r.secondsRemaining > 0 && r.secondsRemaining <= r.cfg.Round.CountdownFrom {
		text := strconv.Itoa(r.secondsRemaining)
		r.headline = text
		r.emit(CountdownChanged{Seconds: r.secondsRemaining, Text: text})
	}
	if r.secondsRemaining < 0 {
		r.End(EndTimeout)
	}
}

func (r *Round) spawnCycle() {
	if !r.alive {
		return
	}
	index := r.rng.Intn(TileCount)
	flash, revert := r.flash, r.revert

	r.sched.After(flash, func() {
		r.setTile(index, TileActive)
		r.sched.After(revert, func() {
			r.setTile(index, TileNeutral)
		})
	})
}

func (r *Round) difficultyRamp() {
	if !r.alive {
		return
	}
	r.flash = r.ramp.Apply(r.flash)
	r.revert = r.ramp.Apply(r.revert)
	r.emit(DifficultyChanged{Flash: r.flash, Revert: r.revert})
}

func (r *Round) setTile(index int, state TileState) {
	if !r.alive || r.tiles[index].State == state {
		return
	}
	r.tiles[index].State = state
	r.emit(TileChanged{Index: index, State: state})
}

func (r *Round) requestReset() {
	if r.resetRequested {
		return
	}
	r.resetRequested = true
	r.emit(ResetRequested{RoundID: r.id})
}

func (r *Round) emit(e Event) {
	r.events = append(r.events, e)
}

// Drain returns the events published since the last call.
func (r *Round) Drain() []Event {
	out := r.events
	r.events = nil
	return out
}

// ID returns the round's unique identifier.
func (r *Round) ID() string { return r.id }

// Score returns the number of successful taps.
func (r *Round) Score() int { return r.score }

// SecondsRemaining returns the countdown value.
func (r *Round) SecondsRemaining() int { return r.secondsRemaining }

// Alive reports whether the round is still being played.
func (r *Round) Alive() bool { return r.alive }

// FlashInterval returns the current delay before a chosen tile turns Active.
func (r *Round) FlashInterval() time.Duration { return r.flash }

// RevertInterval returns the current time a tile stays Active.
func (r *Round) RevertInterval() time.Duration { return r.revert }

// Elapsed returns the simulated time since the round started.
func (r *Round) Elapsed() time.Duration { return r.sched.Now() }

// ResetRequested reports whether the round has asked to be replaced.
func (r *Round) ResetRequested() bool { return r.resetRequested }

// EndReason returns why the round ended, or EndNone while it is running.
func (r *Round) EndReason() EndReason { return r.endReason }

// Tiles returns a copy of the tiles.
func (r *Round) Tiles() [TileCount]Tile { return r.tiles }

// Tile returns the tile at index.
func (r *Round) Tile(index int) (Tile, bool) {
	if index < 0 || index >= TileCount {
		return Tile{}, false
	}
	return r.tiles[index], true
}

// ActiveTile returns the index of the Active tile, if there is one.
func (r *Round) ActiveTile() (int, bool) {
	for _, t := range r.tiles {
		if t.State == TileActive {
			return t.Index, true
		}
	}
	return 0, false
}

// Headline returns the main label: the prompt, the countdown, or "Game Over".
func (r *Round) Headline() string { return r.headline }

// ScoreText returns the score label, or "" once it has been removed.
func (r *Round) ScoreText() string {
	if !r.scoreVisible {
		return ""
	}
	return fmt.Sprintf("Score: %d", r.score)
}

// CountdownText returns the remaining seconds while they are displayable.
func (r *Round) CountdownText() string {
	if !r.alive || r.secondsRemaining <= 0 || r.secondsRemaining > r.cfg.Round.CountdownFrom {
		return ""
	}
	return strconv.Itoa(r.secondsRemaining)
}

// GameOverText returns "Game Over" once the round has ended.
func (r *Round) GameOverText() string {
	if r.alive {
		return ""
	}
	return GameOverLabel
}

// Result summarises the round for persistence.
func (r *Round) Result() core.RoundResult {
	duration := r.sched.Now()
	if !r.alive {
		duration = r.endedAt
	}
	return core.RoundResult{
		RoundID:     r.id,
		Score:       r.score,
		Taps:        r.taps,
		Reason:      r.endReason.String(),
		Duration:    duration,
		FinalFlash:  r.flash,
		FinalRevert: r.revert,
	}
}
