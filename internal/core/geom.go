// Package core provides fundamental types and utilities for the game shell.
// It contains no external dependencies (especially no Bubble Tea) so the game
// logic stays pure and testable.
package core

import "math"

// Rect represents an axis-aligned area of terminal cells.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate just past the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate just past the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Empty reports whether the rectangle covers no cells.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Contains returns true if the cell (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// PercentX converts a cell column into a percentage of the rectangle width.
// The leftmost column maps to 0 and the rightmost to 100.
func (r Rect) PercentX(x int) float64 {
	if r.W <= 1 {
		return 0
	}
	return float64(x-r.X) / float64(r.W-1) * 100
}

// PercentY converts a cell row into a percentage of the rectangle height.
func (r Rect) PercentY(y int) float64 {
	if r.H <= 0 {
		return 0
	}
	return (float64(y-r.Y) + 0.5) / float64(r.H) * 100
}

// CellX converts a horizontal percentage into a cell column.
func (r Rect) CellX(pct float64) int {
	if r.W <= 1 {
		return r.X
	}
	return r.X + int(pct/100*float64(r.W-1)+0.5)
}

// CellY converts a vertical percentage into a cell row. Percentages above the
// rectangle yield rows above r.Y.
func (r Rect) CellY(pct float64) int {
	return r.Y + int(math.Floor(pct/100*float64(r.H)))
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}
