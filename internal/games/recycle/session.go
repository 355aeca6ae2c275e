package recycle

import (
	"time"

	"github.com/btnghn34-art/geri-d-n-m-oyunu/internal/config"
)

// Phase is the session state.
type Phase int

const (
	PhaseMenu Phase = iota
	PhasePlaying
	PhaseGameOver
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseMenu:
		return "menu"
	case PhasePlaying:
		return "playing"
	case PhaseGameOver:
		return "gameover"
	default:
		return "unknown"
	}
}

// Stats counts what happened during the current session.
type Stats struct {
	Spawned int
	Correct int
	Wrong   int
}

// Accuracy returns the share of resolved items that were sorted correctly.
func (st Stats) Accuracy() float64 {
	total := st.Correct + st.Wrong
	if total == 0 {
		return 0
	}
	return float64(st.Correct) / float64(total)
}

// Session holds the whole state of one play attempt. All methods must be
// called from a single goroutine. Invalid calls are silent no-ops.
type Session struct {
	cfg       config.RecycleConfig
	bins      Bins
	spawner   *Spawner
	cues      CueSink
	highlight BinHighlighter

	phase         Phase
	score         int
	timeRemaining int
	items         []Item
	drag          drag
	stats         Stats
	nextID        ItemID

	epoch     int
	closed    bool
	startedAt time.Time
	lastTick  time.Time
	lastSpawn time.Time
}

// NewSession creates a session in the MENU phase. Nil collaborators are
// replaced with no-op implementations.
func NewSession(cfg config.RecycleConfig, seed int64, cues CueSink, highlight BinHighlighter) *Session {
	if cues == nil {
		cues = NopCues{}
	}
	if highlight == nil {
		highlight = nopHighlighter{}
	}
	return &Session{
		cfg:           cfg,
		bins:          NewBins(cfg.Bins),
		spawner:       NewSpawner(cfg, seed),
		cues:          cues,
		highlight:     highlight,
		phase:         PhaseMenu,
		timeRemaining: cfg.Session.DurationSecs,
	}
}

// Start begins a fresh session. It works from every phase and restarts a
// running session. Drivers from the previous epoch become stale.
func (s *Session) Start(now time.Time) {
	if s.closed {
		return
	}
	s.phase = PhasePlaying
	s.score = 0
	s.timeRemaining = s.cfg.Session.DurationSecs
	clear(s.items)
	s.items = s.items[:0]
	s.drag = drag{}
	s.stats = Stats{}
	s.startedAt = now
	s.lastTick = now
	s.lastSpawn = time.Time{}
	s.epoch++
	s.cues.PlayCue(CueStart)
}

// Second advances the countdown by one second. It returns true exactly once
// per session, on the call that ends it.
func (s *Session) Second() bool {
	if s.closed || s.phase != PhasePlaying {
		return false
	}
	s.timeRemaining--
	if s.timeRemaining > 0 {
		return false
	}
	s.timeRemaining = 0
	s.release()
	s.phase = PhaseGameOver
	s.cues.PlayCue(CueGameOver)
	return true
}

// Close tears the session down. Every later call is a no-op.
func (s *Session) Close() {
	if s.closed {
		return
	}
	s.release()
	s.closed = true
}

// Phase returns the current phase.
func (s *Session) Phase() Phase { return s.phase }

// Score returns the current score.
func (s *Session) Score() int { return s.score }

// TimeRemaining returns the whole seconds left on the clock.
func (s *Session) TimeRemaining() int { return s.timeRemaining }

// Items returns a copy of the active items in spawn order.
func (s *Session) Items() []Item {
	out := make([]Item, len(s.items))
	copy(out, s.items)
	return out
}

// Stats returns the session counters.
func (s *Session) Stats() Stats { return s.stats }

// Epoch returns the number of times the session has been started.
func (s *Session) Epoch() int { return s.epoch }

// Closed reports whether Close has been called.
func (s *Session) Closed() bool { return s.closed }

// Bins returns the bin partition.
func (s *Session) Bins() Bins { return s.bins }

// Config returns the rules the session runs with.
func (s *Session) Config() config.RecycleConfig { return s.cfg }

// Elapsed returns the game time since Start.
func (s *Session) Elapsed(now time.Time) time.Duration {
	if s.startedAt.IsZero() {
		return 0
	}
	if d := now.Sub(s.startedAt); d > 0 {
		return d
	}
	return 0
}

// Level returns the difficulty ramp progress, 0.0 to 1.0.
func (s *Session) Level(now time.Time) float64 {
	return s.spawner.Level(s.Elapsed(now))
}
