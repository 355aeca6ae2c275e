// Package recycle implements the Recycling Hunter sorting game.
// Waste items fall toward three bins and the player drags each one over the
// bin matching its category before it crosses the bin line.
package recycle

// SpawnY is the height at which new items appear, above the visible area.
const SpawnY = -10.0

// ItemID identifies an item within one session. IDs grow monotonically.
type ItemID uint64

// Category is the waste class of an item and of the bin accepting it.
type Category int

const (
	Plastic Category = iota
	Glass
	Metal
)

// Categories lists every category in bin order, left to right.
var Categories = [...]Category{Plastic, Glass, Metal}

// String returns the display name of the category.
func (c Category) String() string {
	switch c {
	case Plastic:
		return "PLASTIC"
	case Glass:
		return "GLASS"
	case Metal:
		return "METAL"
	default:
		return "UNKNOWN"
	}
}

// Item is a single falling piece of waste. Positions are percentages of the
// play area: X across its width, Y down its height.
type Item struct {
	ID       ItemID
	Category Category
	X        float64
	Y        float64
	Speed    float64 // Percent of play-area height per second
	Held     bool
}

// NewItem creates an item at the spawn height.
func NewItem(id ItemID, category Category, x, speed float64) Item {
	return Item{
		ID:       id,
		Category: category,
		X:        x,
		Y:        SpawnY,
		Speed:    speed,
	}
}

// Advance returns a copy of it moved down by Speed * dtFactor.
// A non-positive factor leaves the item where it is.
func Advance(it Item, dtFactor float64) Item {
	if dtFactor <= 0 {
		return it
	}
	it.Y += it.Speed * dtFactor
	return it
}
