package recycle

import (
	"testing"
)

func TestPointerDownOnlyWhilePlaying(t *testing.T) {
	s, _, _ := newTestSession()
	id := addItem(s, Plastic, 20, 30, 10)
	if s.PointerDown(id) {
		t.Error("PointerDown succeeded in menu")
	}

	s.Start(t0)
	suppressSpawns(s)
	id = addItem(s, Plastic, 20, 30, 10)
	for s.Phase() == PhasePlaying {
		s.Second()
	}
	if s.PointerDown(id) {
		t.Error("PointerDown succeeded after game over")
	}
}

func TestSingleHold(t *testing.T) {
	s, _, _ := newTestSession()
	s.Start(t0)
	suppressSpawns(s)
	a := addItem(s, Plastic, 20, 30, 10)
	b := addItem(s, Glass, 50, 30, 10)

	if !s.PointerDown(a) {
		t.Fatal("first PointerDown failed")
	}
	if s.PointerDown(b) {
		t.Error("second hold accepted")
	}
	if id, ok := s.Held(); !ok || id != a {
		t.Errorf("Held = %d, %v; want %d", id, ok, a)
	}
	held := 0
	for _, it := range s.Items() {
		if it.Held {
			held++
		}
	}
	if held != 1 {
		t.Errorf("%d items marked held, want 1", held)
	}
}

func TestPointerDownUnknownID(t *testing.T) {
	s, _, _ := newTestSession()
	s.Start(t0)
	if s.PointerDown(999) {
		t.Error("PointerDown on unknown id succeeded")
	}
	if _, ok := s.Held(); ok {
		t.Error("unknown id became held")
	}
}

func TestPointerMoveClamps(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{50, 50},
		{-20, 5},
		{0, 5},
		{5, 5},
		{95, 95},
		{99.9, 95},
		{300, 95},
	}
	for _, tt := range tests {
		s, _, _ := newTestSession()
		s.Start(t0)
		id := addItem(s, Metal, 40, 30, 10)
		s.PointerDown(id)
		s.PointerMove(tt.in)
		it, _ := findItem(s, id)
		if it.X != tt.want {
			t.Errorf("PointerMove(%g): X = %g, want %g", tt.in, it.X, tt.want)
		}
	}
}

func TestPointerMoveWithoutHold(t *testing.T) {
	s, _, _ := newTestSession()
	s.Start(t0)
	id := addItem(s, Metal, 40, 30, 10)
	s.PointerMove(90)
	if it, _ := findItem(s, id); it.X != 40 {
		t.Errorf("unheld item moved to %g", it.X)
	}
}

func TestPointerUpIdempotent(t *testing.T) {
	s, _, _ := newTestSession()
	s.PointerUp()
	s.PointerCancel()

	s.Start(t0)
	id := addItem(s, Glass, 50, 30, 10)
	s.PointerDown(id)
	s.PointerMove(70)
	s.PointerCancel()
	s.PointerCancel()
	s.PointerUp()

	it, _ := findItem(s, id)
	if it.Held {
		t.Error("item still held")
	}
	if it.X != 70 {
		t.Errorf("cancel moved item to %g, want it to stay at 70", it.X)
	}
	if _, ok := s.Held(); ok {
		t.Error("drag not cleared")
	}
}

func TestPick(t *testing.T) {
	s, _, _ := newTestSession()
	s.Start(t0)
	near := addItem(s, Plastic, 20, 30, 10)
	addItem(s, Glass, 25, 30, 10)
	lower := addItem(s, Metal, 60, 52, 10)
	upper := addItem(s, Metal, 60, 48, 10)

	tests := []struct {
		name   string
		x, y   float64
		want   ItemID
		wantOK bool
	}{
		{"exact hit", 20, 30, near, true},
		{"nearest wins", 21, 31, near, true},
		{"outside tolerance", 40, 30, 0, false},
		{"tie goes to the lower item", 60, 50, lower, true},
		{"closer upper item", 60, 48.5, upper, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, ok := s.Pick(tt.x, tt.y, 3, 3)
			if ok != tt.wantOK || (ok && id != tt.want) {
				t.Errorf("Pick(%g, %g) = %d, %v; want %d, %v", tt.x, tt.y, id, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestLowest(t *testing.T) {
	s, _, _ := newTestSession()
	if _, ok := s.Lowest(); ok {
		t.Error("Lowest on empty session reported an item")
	}
	s.Start(t0)
	addItem(s, Plastic, 20, 30, 10)
	want := addItem(s, Glass, 50, 70, 10)
	addItem(s, Metal, 80, 10, 10)
	if id, ok := s.Lowest(); !ok || id != want {
		t.Errorf("Lowest = %d, %v; want %d", id, ok, want)
	}
}
