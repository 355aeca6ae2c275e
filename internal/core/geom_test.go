package core

import "testing"

func TestRectContains(t *testing.T) {
	r := NewRect(10, 10, 20, 15)

	tests := []struct {
		name     string
		x, y     int
		expected bool
	}{
		{"inside", 15, 15, true},
		{"top-left corner", 10, 10, true},
		{"bottom-right edge (exclusive)", 30, 25, false},
		{"outside left", 5, 15, false},
		{"outside right", 35, 15, false},
		{"outside top", 15, 5, false},
		{"outside bottom", 15, 30, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := r.Contains(tc.x, tc.y)
			if result != tc.expected {
				t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, result, tc.expected)
			}
		})
	}
}

func TestRectEdges(t *testing.T) {
	r := NewRect(5, 10, 20, 15)

	if r.Right() != 25 {
		t.Errorf("Right() = %d, expected 25", r.Right())
	}
	if r.Bottom() != 25 {
		t.Errorf("Bottom() = %d, expected 25", r.Bottom())
	}
	if r.Empty() {
		t.Error("Empty() should be false for a 20x15 rect")
	}
	if !NewRect(0, 0, 0, 5).Empty() {
		t.Error("Empty() should be true for a zero-width rect")
	}
}

func TestRectPercentRoundTrip(t *testing.T) {
	r := NewRect(0, 1, 81, 20)

	if got := r.PercentX(0); got != 0 {
		t.Errorf("PercentX(left) = %f, expected 0", got)
	}
	if got := r.PercentX(80); got != 100 {
		t.Errorf("PercentX(right) = %f, expected 100", got)
	}
	for _, col := range []int{0, 10, 40, 79, 80} {
		if got := r.CellX(r.PercentX(col)); got != col {
			t.Errorf("CellX(PercentX(%d)) = %d", col, got)
		}
	}
	for row := r.Y; row < r.Bottom(); row++ {
		if got := r.CellY(r.PercentY(row)); got != row {
			t.Errorf("CellY(PercentY(%d)) = %d", row, got)
		}
	}
}

func TestRectCellYAbove(t *testing.T) {
	r := NewRect(0, 1, 10, 20)

	// -10% of 20 rows is two rows above the area
	if got := r.CellY(-10); got != -1 {
		t.Errorf("CellY(-10) = %d, expected -1", got)
	}
	if got := r.CellY(-1); got != 0 {
		t.Errorf("CellY(-1) = %d, expected 0", got)
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},   // within range
		{-5, 0, 10, 0},  // below min
		{15, 0, 10, 10}, // above max
		{0, 0, 10, 0},   // at min
		{10, 0, 10, 10}, // at max
	}

	for _, tc := range tests {
		result := Clamp(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestClampF(t *testing.T) {
	tests := []struct {
		val, min, max, expected float64
	}{
		{50, 5, 95, 50},
		{-3, 5, 95, 5},
		{120, 5, 95, 95},
	}

	for _, tc := range tests {
		result := ClampF(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("ClampF(%f, %f, %f) = %f, expected %f", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}
