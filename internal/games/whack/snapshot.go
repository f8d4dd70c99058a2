package whack

import "time"

// Snapshot captures the observable game state for determinism testing.
type Snapshot struct {
	Tick             uint64
	Round            int // rounds started since Reset, 1-indexed
	RoundID          string
	Score            int
	SecondsRemaining int
	Alive            bool
	Paused           bool
	Tiles            [TileCount]TileState
	Flash            time.Duration
	Revert           time.Duration
	Headline         string
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	r := g.round
	var tiles [TileCount]TileState
	for i, t := range r.Tiles() {
		tiles[i] = t.State
	}
	return Snapshot{
		Tick:             g.tick,
		Round:            g.rounds,
		RoundID:          r.ID(),
		Score:            r.Score(),
		SecondsRemaining: r.SecondsRemaining(),
		Alive:            r.Alive(),
		Paused:           g.paused,
		Tiles:            tiles,
		Flash:            r.FlashInterval(),
		Revert:           r.RevertInterval(),
		Headline:         r.Headline(),
	}
}
