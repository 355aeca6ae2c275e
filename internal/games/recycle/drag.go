package recycle

import (
	"math"

	"github.com/btnghn34-art/geri-d-n-m-oyunu/internal/core"
)

// drag tracks the single item under pointer control.
type drag struct {
	id      ItemID
	holding bool
}

// PointerDown grabs an item. It fails outside PLAYING, for unknown ids and
// while another item is already held.
func (s *Session) PointerDown(id ItemID) bool {
	if s.closed || s.phase != PhasePlaying || s.drag.holding {
		return false
	}
	i := s.index(id)
	if i < 0 {
		return false
	}
	s.items[i].Held = true
	s.drag = drag{id: id, holding: true}
	return true
}

// PointerMove moves the held item to xPct, clamped to the drag range.
// Without a held item it does nothing.
func (s *Session) PointerMove(xPct float64) {
	if s.closed || !s.drag.holding {
		return
	}
	i := s.index(s.drag.id)
	if i < 0 {
		s.drag = drag{}
		return
	}
	s.items[i].X = core.ClampF(xPct, s.cfg.Field.DragXMin, s.cfg.Field.DragXMax)
}

// PointerUp releases the held item. It is idempotent.
func (s *Session) PointerUp() {
	s.release()
}

// PointerCancel abandons the drag. The item keeps its current position.
func (s *Session) PointerCancel() {
	s.release()
}

func (s *Session) release() {
	if !s.drag.holding {
		return
	}
	if i := s.index(s.drag.id); i >= 0 {
		s.items[i].Held = false
	}
	s.drag = drag{}
}

// Held returns the id of the held item, if any.
func (s *Session) Held() (ItemID, bool) {
	return s.drag.id, s.drag.holding
}

// Pick returns the item nearest to (xPct, yPct) whose distance along each
// axis is within the given tolerance. Lower items win ties.
func (s *Session) Pick(xPct, yPct, tolX, tolY float64) (ItemID, bool) {
	best := -1
	bestDist := math.Inf(1)
	for i, it := range s.items {
		dx := math.Abs(it.X - xPct)
		dy := math.Abs(it.Y - yPct)
		if dx > tolX || dy > tolY {
			continue
		}
		// Normalize so both axes weigh the same inside the box.
		d := math.Hypot(dx/math.Max(tolX, 1e-9), dy/math.Max(tolY, 1e-9))
		if d < bestDist || (d == bestDist && it.Y > s.items[best].Y) {
			best, bestDist = i, d
		}
	}
	if best < 0 {
		return 0, false
	}
	return s.items[best].ID, true
}

// Lowest returns the item closest to the bin line.
func (s *Session) Lowest() (ItemID, bool) {
	best := -1
	for i, it := range s.items {
		if best < 0 || it.Y > s.items[best].Y {
			best = i
		}
	}
	if best < 0 {
		return 0, false
	}
	return s.items[best].ID, true
}

// index returns the slice position of an item or -1.
func (s *Session) index(id ItemID) int {
	for i := range s.items {
		if s.items[i].ID == id {
			return i
		}
	}
	return -1
}
