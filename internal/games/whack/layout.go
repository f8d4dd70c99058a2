package whack

import "github.com/vovakirdan/whack-arcade/internal/core"

// Tile size bounds in terminal cells.
const (
	minTileW = 8
	maxTileW = 24
	minTileH = 3
	maxTileH = 9
	gapX     = 2
	gapY     = 1
	topRows  = 3 // headline area above the grid
)

// Layout places the 2x2 tile grid and the text rows on screen.
// Tile 0 is top-left, 1 top-right, 2 bottom-left, 3 bottom-right.
type Layout struct {
	Tiles       [TileCount]core.Rect
	HeadlineRow int
	ScoreRow    int
	FooterRow   int
}

// NewLayout computes a centered grid for the given screen size.
func NewLayout(screenW, screenH int) Layout {
	tileW := core.Clamp((screenW-gapX-4)/2, minTileW, maxTileW)
	tileH := core.Clamp((screenH-topRows-gapY-4)/2, minTileH, maxTileH)

	gridW := 2*tileW + gapX
	gridH := 2*tileH + gapY
	left := core.Max((screenW-gridW)/2, 0)
	top := topRows + core.Max((screenH-topRows-gridH-4)/2, 0)

	var l Layout
	for i := range l.Tiles {
		col, row := i%2, i/2
		l.Tiles[i] = core.NewRect(left+col*(tileW+gapX), top+row*(tileH+gapY), tileW, tileH)
	}
	l.HeadlineRow = 1
	l.ScoreRow = top + gridH + 1
	l.FooterRow = core.Max(screenH-1, l.ScoreRow+1)
	return l
}

// TileAt returns the tile index under the screen cell (x, y).
func (l Layout) TileAt(x, y int) (int, bool) {
	for i, r := range l.Tiles {
		if r.Contains(x, y) {
			return i, true
		}
	}
	return 0, false
}
