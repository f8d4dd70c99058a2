package whack

import "github.com/vovakirdan/whack-arcade/internal/core"

// TileCount is the number of tiles in a round.
const TileCount = core.TileCount

// TileState is the color state of a tile.
type TileState int

const (
	TileNeutral TileState = iota // red, tapping it loses the round
	TileActive                   // green, tapping it scores
)

// String returns a human-readable name for the state.
func (s TileState) String() string {
	switch s {
	case TileNeutral:
		return "Neutral"
	case TileActive:
		return "Active"
	default:
		return "Unknown"
	}
}

// Color returns the screen color used to draw a tile in this state.
func (s TileState) Color() core.Color {
	if s == TileActive {
		return core.ColorBrightGreen
	}
	return core.ColorRed
}

// Tile is one of the four tap targets.
type Tile struct {
	Index int
	State TileState
}
