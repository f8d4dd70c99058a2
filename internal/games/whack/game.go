// Package whack implements Whack-a-Block, a reaction-time game.
// Four tiles flash green one at a time; tapping the green tile scores,
// tapping any other tile ends the round, and a countdown ends it anyway.
package whack

import (
	"fmt"

	"github.com/vovakirdan/whack-arcade/internal/config"
	"github.com/vovakirdan/whack-arcade/internal/core"
	"github.com/vovakirdan/whack-arcade/internal/registry"
)

// Visual characters for rendering
const (
	TileChar = '█'
)

// configPath stores the custom config path set via CLI
var configPath string
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.ParsePreset(preset)
}

// Game adapts rounds to the platform's registry.Game interface.
// It owns the current Round and swaps in a fresh one whenever the round
// asks to be reset.
type Game struct {
	runtime core.RuntimeConfig
	cfg     config.WhackConfig
	layout  Layout
	round   *Round
	rounds  int // rounds started since Reset, used to derive per-round seeds
	tick    uint64
	paused  bool
	saver   core.ResultSaver
}

// New creates a new Whack-a-Block game instance.
func New() *Game {
	return &Game{}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "whack"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Whack-a-Block"
}

// SetResultSaver attaches persistence for finished rounds.
func (g *Game) SetResultSaver(s core.ResultSaver) {
	g.saver = s
}

// Reset loads configuration and starts the first round.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	cfg, err := config.LoadWhack(configPath)
	if err != nil {
		cfg = config.DefaultWhackConfig()
	}
	if difficultyPreset != "" {
		config.ApplyWhackPreset(&cfg, difficultyPreset)
	}
	g.cfg = cfg

	g.layout = NewLayout(runtime.ScreenW, runtime.ScreenH)
	g.paused = false
	g.rounds = 0
	g.tick = 0
	g.startRound()
}

// startRound replaces the current round with a brand new one.
func (g *Game) startRound() {
	g.rounds++
	g.round = NewRound(g.cfg, g.runtime.Seed+int64(g.rounds))
}

// Round returns the round currently being played.
func (g *Game) Round() *Round {
	return g.round
}

// Step delivers this tick's taps in arrival order and advances the round
// by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionPause) && g.round.Alive() {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.tick++
	for _, index := range in.Tiles() {
		g.round.Tap(index)
	}
	g.round.Advance(g.runtime.TickDuration())
	g.handleEvents()

	return core.StepResult{State: g.State()}
}

// handleEvents reacts to the events the round published this tick.
func (g *Game) handleEvents() {
	for _, ev := range g.round.Drain() {
		switch e := ev.(type) {
		case RoundEnded:
			if g.saver != nil {
				result := g.round.Result()
				result.GameID = g.ID()
				//nolint:errcheck // Best-effort save, game continues regardless
				g.saver.SaveRoundResult(result)
			}
		case ResetRequested:
			if e.RoundID == g.round.ID() {
				g.startRound()
				return
			}
		}
	}
}

// HitTest maps a mouse click to a tile action.
func (g *Game) HitTest(x, y int) (core.Action, bool) {
	index, ok := g.layout.TileAt(x, y)
	if !ok {
		return core.ActionNone, false
	}
	return core.TileAction(index), true
}

// Resize recomputes the layout without restarting the round.
func (g *Game) Resize(screenW, screenH int) {
	g.runtime.ScreenW = screenW
	g.runtime.ScreenH = screenH
	g.layout = NewLayout(screenW, screenH)
}

// Render draws the current round to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	r := g.round

	headColor := core.ColorBrightWhite
	if !r.Alive() {
		headColor = core.ColorBrightRed
	}
	dst.DrawTextCentered(g.layout.HeadlineRow, r.Headline(), headColor)

	for i, t := range r.Tiles() {
		rect := g.layout.Tiles[i]
		dst.DrawBox(rect, core.ColorGray)
		dst.FillRect(rect.Inset(1), TileChar, t.State.Color())
		dst.DrawTextColored(rect.X+1, rect.Y, fmt.Sprintf("[%d]", i+1), core.ColorWhite)
	}

	if text := r.ScoreText(); text != "" {
		dst.DrawTextCentered(g.layout.ScoreRow, text, core.ColorBrightWhite)
	}

	footer := "1-4/click: tap  P: pause  B: menu  Q: quit"
	if g.paused {
		footer = "PAUSED - press P to resume"
	}
	dst.DrawTextCentered(g.layout.FooterRow, footer, core.ColorGray)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.round.Score(),
		GameOver: !g.round.Alive(),
		Paused:   g.paused,
	}
}

// Register the game with the registry
func init() {
	registry.Register("whack", func() registry.Game {
		return New()
	})
}
