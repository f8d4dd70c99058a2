package core

// Action represents a semantic game action, abstracted from physical key presses
// and mouse clicks. Games work with these intents rather than raw input.
type Action int

const (
	ActionNone    Action = iota
	ActionTile1          // 1 key, or a click on the top-left tile
	ActionTile2          // 2 key, or a click on the top-right tile
	ActionTile3          // 3 key, or a click on the bottom-left tile
	ActionTile4          // 4 key, or a click on the bottom-right tile
	ActionConfirm        // Enter - confirm selection in menu
	ActionBack           // B, Escape - go back to menu
	ActionQuit           // Q, Ctrl+C - exit game/session
	ActionPause          // P - pause/unpause game
)

// TileCount is the number of tile actions.
const TileCount = 4

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionTile1:
		return "Tile1"
	case ActionTile2:
		return "Tile2"
	case ActionTile3:
		return "Tile3"
	case ActionTile4:
		return "Tile4"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionQuit:
		return "Quit"
	case ActionPause:
		return "Pause"
	default:
		return "Unknown"
	}
}

// TileAction returns the action that taps the tile at index (0-based).
// Returns ActionNone for indices outside the grid.
func TileAction(index int) Action {
	if index < 0 || index >= TileCount {
		return ActionNone
	}
	return ActionTile1 + Action(index)
}

// TileIndex returns the 0-based tile index for a tile action.
func (a Action) TileIndex() (int, bool) {
	if a < ActionTile1 || a > ActionTile4 {
		return 0, false
	}
	return int(a - ActionTile1), true
}

// InputFrame represents the input state for a single simulation tick.
// It contains all actions that were triggered during this frame.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	Actions map[Action]bool

	// taps holds tile indices in arrival order, repeats included.
	taps []int
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
// Tile actions are also queued as taps, so every press counts.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
	if index, ok := a.TileIndex(); ok {
		f.taps = append(f.taps, index)
	}
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Tiles returns the tapped tile indices in the order they arrived.
func (f InputFrame) Tiles() []int {
	return f.taps
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.taps = nil
}
