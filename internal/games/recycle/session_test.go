package recycle

import (
	"math"
	"testing"
	"time"

	"github.com/btnghn34-art/geri-d-n-m-oyunu/internal/config"
)

var t0 = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

type cueRecorder struct {
	cues []Cue
}

func (r *cueRecorder) PlayCue(c Cue) { r.cues = append(r.cues, c) }

func (r *cueRecorder) count(c Cue) int {
	n := 0
	for _, got := range r.cues {
		if got == c {
			n++
		}
	}
	return n
}

type binCall struct {
	category Category
	outcome  Outcome
}

type binRecorder struct {
	calls []binCall
}

func (r *binRecorder) HighlightBin(c Category, o Outcome) {
	r.calls = append(r.calls, binCall{c, o})
}

func newTestSession() (*Session, *cueRecorder, *binRecorder) {
	cues := &cueRecorder{}
	bins := &binRecorder{}
	return NewSession(config.DefaultRecycleConfig(), 42, cues, bins), cues, bins
}

// suppressSpawns keeps the spawner quiet so tests control every item.
func suppressSpawns(s *Session) {
	s.lastSpawn = s.startedAt.Add(time.Hour)
}

// addItem places an item directly into the session.
func addItem(s *Session, c Category, x, y, speed float64) ItemID {
	s.nextID++
	it := NewItem(s.nextID, c, x, speed)
	it.Y = y
	s.items = append(s.items, it)
	return it.ID
}

func findItem(s *Session, id ItemID) (Item, bool) {
	for _, it := range s.items {
		if it.ID == id {
			return it, true
		}
	}
	return Item{}, false
}

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestSessionStartsInMenu(t *testing.T) {
	s, _, _ := newTestSession()
	if s.Phase() != PhaseMenu {
		t.Errorf("Phase = %v, want menu", s.Phase())
	}
	if s.TimeRemaining() != 60 {
		t.Errorf("TimeRemaining = %d, want 60", s.TimeRemaining())
	}
	if s.Epoch() != 0 {
		t.Errorf("Epoch = %d, want 0", s.Epoch())
	}
}

func TestStartResetsFromAnyPhase(t *testing.T) {
	tests := []struct {
		name  string
		setup func(s *Session)
	}{
		{"from menu", func(s *Session) {}},
		{"from game over", func(s *Session) {
			s.Start(t0)
			addItem(s, Glass, 20, 50, 10)
			s.score = 35
			for s.Phase() == PhasePlaying {
				s.Second()
			}
		}},
		{"while playing", func(s *Session) {
			s.Start(t0)
			id := addItem(s, Metal, 50, 40, 10)
			s.PointerDown(id)
			s.score = -15
			s.Second()
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, cues, _ := newTestSession()
			tt.setup(s)
			before := s.Epoch()

			s.Start(t0.Add(2 * time.Minute))

			if s.Phase() != PhasePlaying {
				t.Errorf("Phase = %v, want playing", s.Phase())
			}
			if s.Score() != 0 {
				t.Errorf("Score = %d, want 0", s.Score())
			}
			if s.TimeRemaining() != 60 {
				t.Errorf("TimeRemaining = %d, want 60", s.TimeRemaining())
			}
			if len(s.Items()) != 0 {
				t.Errorf("Items = %d, want empty", len(s.Items()))
			}
			if _, held := s.Held(); held {
				t.Error("drag should be cleared")
			}
			if s.Stats() != (Stats{}) {
				t.Errorf("Stats = %+v, want zero", s.Stats())
			}
			if s.Epoch() != before+1 {
				t.Errorf("Epoch = %d, want %d", s.Epoch(), before+1)
			}
			if cues.cues[len(cues.cues)-1] != CueStart {
				t.Errorf("last cue = %v, want start", cues.cues[len(cues.cues)-1])
			}
		})
	}
}

func TestTimerEndsSessionOnce(t *testing.T) {
	s, cues, _ := newTestSession()
	s.Start(t0)

	ends := 0
	for i := 0; i < 60; i++ {
		if s.Second() {
			ends++
			if i != 59 {
				t.Fatalf("session ended after %d seconds", i+1)
			}
		}
	}
	if s.TimeRemaining() != 0 {
		t.Errorf("TimeRemaining = %d, want 0", s.TimeRemaining())
	}
	if s.Phase() != PhaseGameOver {
		t.Errorf("Phase = %v, want gameover", s.Phase())
	}

	// Stale driver callbacks after the end must not fire again.
	for i := 0; i < 5; i++ {
		if s.Second() {
			ends++
		}
	}
	if ends != 1 {
		t.Errorf("game over fired %d times, want 1", ends)
	}
	if n := cues.count(CueGameOver); n != 1 {
		t.Errorf("gameover cue played %d times, want 1", n)
	}
	if s.TimeRemaining() != 0 {
		t.Errorf("TimeRemaining went to %d", s.TimeRemaining())
	}
}

func TestGameOverReleasesDrag(t *testing.T) {
	s, _, _ := newTestSession()
	s.Start(t0)
	id := addItem(s, Plastic, 20, 30, 10)
	s.PointerDown(id)

	for s.Phase() == PhasePlaying {
		s.Second()
	}
	if _, held := s.Held(); held {
		t.Error("drag should be released at game over")
	}
	it, _ := findItem(s, id)
	if it.Held {
		t.Error("item still marked held")
	}
}

func TestTickNoopOutsidePlaying(t *testing.T) {
	s, _, _ := newTestSession()

	res := s.Tick(t0.Add(time.Second))
	if len(res.Spawned) != 0 || len(s.Items()) != 0 {
		t.Error("tick in menu should not spawn")
	}

	s.Start(t0)
	for s.Phase() == PhasePlaying {
		s.Second()
	}
	items := s.Items()
	score := s.Score()
	s.Tick(t0.Add(10 * time.Second))
	if len(s.Items()) != len(items) || s.Score() != score {
		t.Error("tick after game over changed state")
	}
}

func TestClosedSessionIgnoresEverything(t *testing.T) {
	s, cues, _ := newTestSession()
	s.Start(t0)
	id := addItem(s, Plastic, 20, 84, 10)
	s.Close()
	cuesBefore := len(cues.cues)

	s.Tick(t0.Add(200 * time.Millisecond))
	if s.Second() {
		t.Error("Second on closed session reported game over")
	}
	if s.PointerDown(id) {
		t.Error("PointerDown on closed session succeeded")
	}
	s.PointerMove(90)
	s.PointerUp()
	s.Start(t0.Add(time.Minute))

	if s.Score() != 0 || s.TimeRemaining() != 60 || s.Epoch() != 1 {
		t.Errorf("closed session changed: score %d time %d epoch %d", s.Score(), s.TimeRemaining(), s.Epoch())
	}
	if it, _ := findItem(s, id); it.Y != 84 {
		t.Errorf("item moved after close: y=%g", it.Y)
	}
	if len(cues.cues) != cuesBefore {
		t.Error("closed session played cues")
	}
	if !s.Closed() {
		t.Error("Closed() = false")
	}
}

func TestElapsed(t *testing.T) {
	s, _, _ := newTestSession()
	if s.Elapsed(t0) != 0 {
		t.Error("elapsed before start should be 0")
	}
	s.Start(t0)
	if got := s.Elapsed(t0.Add(1500 * time.Millisecond)); got != 1500*time.Millisecond {
		t.Errorf("Elapsed = %v", got)
	}
	if got := s.Elapsed(t0.Add(-time.Second)); got != 0 {
		t.Errorf("Elapsed before start time = %v, want 0", got)
	}
}

func TestStatsAccuracy(t *testing.T) {
	tests := []struct {
		st   Stats
		want float64
	}{
		{Stats{}, 0},
		{Stats{Correct: 3, Wrong: 1}, 0.75},
		{Stats{Correct: 0, Wrong: 4}, 0},
		{Stats{Correct: 5}, 1},
	}
	for _, tt := range tests {
		if got := tt.st.Accuracy(); !approx(got, tt.want) {
			t.Errorf("Accuracy(%+v) = %g, want %g", tt.st, got, tt.want)
		}
	}
}
