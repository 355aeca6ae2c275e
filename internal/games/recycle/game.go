package recycle

import (
	"time"

	"github.com/btnghn34-art/geri-d-n-m-oyunu/internal/config"
	"github.com/btnghn34-art/geri-d-n-m-oyunu/internal/core"
)

// NudgeStep is how far one key press moves the held item, in percent.
const NudgeStep = 5.0

// flash is a transient bin highlight.
type flash struct {
	until   time.Time
	outcome Outcome
}

// Game adapts a Session to the terminal: it translates cell coordinates into
// play-area percentages, keeps bin flashes and draws the session.
type Game struct {
	cfg     config.RecycleConfig
	rt      core.RuntimeConfig
	cues    CueSink
	session *Session
	layout  Layout
	flashes [len(Categories)]flash
	now     time.Time // Timestamp of the latest driver callback
	epochs  int       // Epochs used by closed sessions
}

// New creates a game with the given rules. A nil cue sink plays nothing.
func New(cfg config.RecycleConfig, cues CueSink) *Game {
	if cues == nil {
		cues = NopCues{}
	}
	return &Game{
		cfg:  cfg,
		cues: cues,
	}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "recycle"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Recycling Hunter"
}

// Reset discards the current session and opens a new one in the menu.
func (g *Game) Reset(rt core.RuntimeConfig) {
	if g.session != nil {
		g.session.Close()
		g.epochs += g.session.Epoch()
	}
	seed := rt.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	g.rt = rt
	g.session = NewSession(g.cfg, seed, g.cues, g)
	g.flashes = [len(Categories)]flash{}
	g.Resize(rt.ScreenW, rt.ScreenH)
}

// Resize recomputes the layout. Item positions are percentages, so a running
// session is unaffected.
func (g *Game) Resize(w, h int) {
	g.rt.ScreenW, g.rt.ScreenH = w, h
	g.layout = NewLayout(w, h, g.cfg.Field.BoundaryY, NewBins(g.cfg.Bins))
}

// Start begins a new session at now.
func (g *Game) Start(now time.Time) core.StepResult {
	g.now = now
	g.flashes = [len(Categories)]flash{}
	g.session.Start(now)
	return core.StepResult{State: g.State()}
}

// Step runs one frame at now.
func (g *Game) Step(now time.Time) (core.StepResult, TickResult) {
	g.now = now
	res := g.session.Tick(now)
	return core.StepResult{State: g.State()}, res
}

// Second advances the countdown. ended is true on the call that ends the session.
func (g *Game) Second() (result core.StepResult, ended bool) {
	ended = g.session.Second()
	if ended {
		// Frames stop with the session, so pending flashes would never expire.
		g.flashes = [len(Categories)]flash{}
	}
	return core.StepResult{State: g.State()}, ended
}

// Pointer feeds a pointer event given in screen cells.
func (g *Game) Pointer(ev core.PointerEvent) {
	switch ev.Kind {
	case core.PointerDown:
		if !g.layout.Play.Contains(ev.X, ev.Y) {
			return
		}
		xPct, yPct := g.layout.ToPercent(ev.X, ev.Y)
		tolX, tolY := g.layout.Tolerance()
		if id, ok := g.session.Pick(xPct, yPct, tolX, tolY); ok {
			g.session.PointerDown(id)
		}
	case core.PointerMove:
		xPct, _ := g.layout.ToPercent(ev.X, ev.Y)
		g.session.PointerMove(xPct)
	case core.PointerUp:
		g.session.PointerUp()
	case core.PointerCancel:
		g.session.PointerCancel()
	}
}

// Nudge moves the held item one step left (dir < 0) or right (dir > 0).
// With nothing held it first grabs the item closest to the bin line.
func (g *Game) Nudge(dir int) {
	id, ok := g.session.Held()
	if !ok {
		if id, ok = g.session.Lowest(); !ok || !g.session.PointerDown(id) {
			return
		}
	}
	for _, it := range g.session.items {
		if it.ID == id {
			g.session.PointerMove(it.X + float64(dir)*NudgeStep)
			return
		}
	}
}

// Drop releases the held item.
func (g *Game) Drop() {
	g.session.PointerUp()
}

// HighlightBin implements BinHighlighter. The flash lasts Feedback.HighlightMS
// of frame time.
func (g *Game) HighlightBin(c Category, o Outcome) {
	if c < 0 || int(c) >= len(g.flashes) {
		return
	}
	g.flashes[c] = flash{
		until:   g.now.Add(time.Duration(g.cfg.Feedback.HighlightMS) * time.Millisecond),
		outcome: o,
	}
}

// flashing returns the active highlight of a bin.
func (g *Game) flashing(c Category) (Outcome, bool) {
	f := g.flashes[c]
	if f.until.IsZero() || !g.now.Before(f.until) {
		return 0, false
	}
	return f.outcome, true
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.session.Score(),
		TimeLeft: g.session.TimeRemaining(),
		Running:  g.session.Phase() == PhasePlaying,
		GameOver: g.session.Phase() == PhaseGameOver,
	}
}

// Session returns the underlying session.
func (g *Game) Session() *Session {
	return g.session
}

// Epoch returns the epoch drivers must match. It keeps growing across Reset.
func (g *Game) Epoch() int {
	return g.epochs + g.session.Epoch()
}

// Layout returns the current layout.
func (g *Game) Layout() Layout {
	return g.layout
}

// Close tears the session down.
func (g *Game) Close() {
	if g.session != nil {
		g.session.Close()
	}
}
