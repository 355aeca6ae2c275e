package recycle

import (
	"github.com/btnghn34-art/geri-d-n-m-oyunu/internal/core"
)

// Minimum terminal size the game can be played in.
const (
	MinWidth  = 40
	MinHeight = 14
)

// Layout maps the play area onto terminal cells. The play area spans every
// row between the HUD and the help line; the bins fill its bottom part, below
// the bin line.
type Layout struct {
	HUD    core.Rect
	Play   core.Rect
	Help   core.Rect
	BinTop int          // First row of the bins
	Bins   [3]core.Rect // Indexed by Category
}

// NewLayout computes the layout for a screen of w x h cells.
func NewLayout(w, h int, boundaryY float64, bins Bins) Layout {
	l := Layout{
		HUD:  core.NewRect(0, 0, w, 1),
		Play: core.NewRect(0, 1, w, core.Clamp(h-2, 0, h)),
		Help: core.NewRect(0, h-1, w, 1),
	}
	l.BinTop = core.Clamp(l.Play.CellY(boundaryY)+1, l.Play.Y, l.Play.Bottom())

	// A column belongs to the bin its percentage resolves to.
	start := l.Play.X
	for i, c := range Categories {
		end := l.Play.Right()
		if i < len(bins.Edges) {
			end = l.firstColumnAt(bins.Edges[i])
		}
		l.Bins[c] = core.NewRect(start, l.BinTop, end-start, l.Play.Bottom()-l.BinTop)
		start = end
	}
	return l
}

// firstColumnAt returns the leftmost play column whose percentage is >= pct.
func (l Layout) firstColumnAt(pct float64) int {
	for x := l.Play.X; x < l.Play.Right(); x++ {
		if l.Play.PercentX(x) >= pct {
			return x
		}
	}
	return l.Play.Right()
}

// TooSmall reports whether the screen cannot hold the game.
func (l Layout) TooSmall() bool {
	return l.Play.W < MinWidth || l.Play.H+2 < MinHeight
}

// ToPercent converts a cell to play-area percentages.
func (l Layout) ToPercent(x, y int) (xPct, yPct float64) {
	return l.Play.PercentX(x), l.Play.PercentY(y)
}

// ToCell converts play-area percentages to a cell.
func (l Layout) ToCell(xPct, yPct float64) (x, y int) {
	return l.Play.CellX(xPct), l.Play.CellY(yPct)
}

// Tolerance returns the pick box half-size in percent: two columns and one row,
// enough to grab an item by any cell of its label.
func (l Layout) Tolerance() (tolX, tolY float64) {
	if l.Play.W > 1 {
		tolX = 2 * 100 / float64(l.Play.W-1)
	}
	if l.Play.H > 0 {
		tolY = 100 / float64(l.Play.H)
	}
	return tolX, tolY
}
