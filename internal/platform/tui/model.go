package tui

import (
	"fmt"
	"io"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/btnghn34-art/geri-d-n-m-oyunu/internal/audio"
	"github.com/btnghn34-art/geri-d-n-m-oyunu/internal/config"
	"github.com/btnghn34-art/geri-d-n-m-oyunu/internal/core"
	"github.com/btnghn34-art/geri-d-n-m-oyunu/internal/games/recycle"
	"github.com/btnghn34-art/geri-d-n-m-oyunu/internal/storage"
)

// Options configures a Model.
type Options struct {
	Rules      config.RecycleConfig
	Difficulty string // Label scores are filed under
	Runtime    core.RuntimeConfig
	Store      *storage.Store // Optional
	Audio      *audio.Player  // Optional, silent when nil
	Logger     *log.Logger    // Optional, discards when nil
	User       string         // Remote user for SSH sessions
}

// view is the screen the model shows.
type view int

const (
	viewGame view = iota
	viewScoreboard
)

// Model is the Bubble Tea model running one game.
type Model struct {
	game       *recycle.Game
	screen     *core.Screen
	store      *storage.Store
	player     *audio.Player
	logger     *log.Logger
	config     core.RuntimeConfig
	difficulty string
	keys       *KeyMapper
	view       view
	scoreboard ScoreboardModel
	best       int
	savedEpoch int // Epoch whose result was stored last
	quitting   bool
}

// NewModel creates a new Bubble Tea model with the game in its menu.
func NewModel(opts Options) Model {
	cfg := opts.Runtime
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}
	player := opts.Audio
	if player == nil {
		player = audio.Silent()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	difficulty := opts.Difficulty
	if difficulty == "" {
		difficulty = config.CustomLabel
	}

	game := recycle.New(opts.Rules, player)
	game.Reset(cfg)

	logger = logger.With("game", game.ID())
	if opts.User != "" {
		logger = logger.With("user", opts.User)
	}

	m := Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      opts.Store,
		player:     player,
		logger:     logger,
		config:     cfg,
		difficulty: difficulty,
		keys:       NewKeyMapper(),
	}
	m.best = m.loadBest()
	return m
}

// Init implements tea.Model. Drivers start with the first session.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		return m.handleResize(wsm)
	}

	switch msg := msg.(type) {
	case FrameMsg:
		return m.handleFrame(msg)
	case SecondMsg:
		return m.handleSecond(msg)
	}

	if m.view == viewScoreboard {
		return m.updateScoreboard(msg)
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.MouseMsg:
		if ev, ok := m.keys.MapMouse(msg); ok {
			m.game.Pointer(ev)
		}
	}
	return m, nil
}

// handleResize keeps the session running; positions are relative.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	m.game.Resize(msg.Width, msg.Height)
	if m.view == viewScoreboard {
		var cmd tea.Cmd
		m.scoreboard, cmd = m.scoreboard.Update(msg)
		return m, cmd
	}
	return m, nil
}

// handleKey processes keyboard input on the game view.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	running := m.game.State().Running

	switch m.keys.MapKey(msg) {
	case core.ActionQuit:
		return m.quit()
	case core.ActionConfirm:
		if running {
			m.game.Drop()
			return m, nil
		}
		return m.start()
	case core.ActionRestart:
		return m.start()
	case core.ActionLeft:
		if running {
			m.game.Nudge(-1)
		}
	case core.ActionRight:
		if running {
			m.game.Nudge(+1)
		}
	case core.ActionDrop:
		m.game.Drop()
	case core.ActionMute:
		muted := m.player.ToggleMute()
		m.logger.Debug("sound toggled", "muted", muted)
	case core.ActionScoreboard:
		if !running {
			m.scoreboard = NewScoreboardModel(m.store, m.difficulty, m.config.ScreenW, m.config.ScreenH)
			m.view = viewScoreboard
		}
	case core.ActionBack:
		if m.game.State().GameOver {
			m.game.Reset(m.config)
		}
	}
	return m, nil
}

// updateScoreboard forwards input to the scoreboard until it is closed.
func (m Model) updateScoreboard(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.scoreboard, cmd = m.scoreboard.Update(msg)

	if m.scoreboard.IsQuitting() {
		return m.quit()
	}
	if m.scoreboard.IsGoingBack() {
		m.view = viewGame
		m.game.Reset(m.config)
		return m, nil
	}
	return m, cmd
}

// start begins a new session and schedules both drivers for its epoch.
// Drivers of a previous session see a different epoch and stop.
func (m Model) start() (tea.Model, tea.Cmd) {
	m.game.Start(time.Now())
	epoch := m.game.Epoch()
	m.logger.Debug("session started", "epoch", epoch, "difficulty", m.difficulty)
	return m, tea.Batch(frameCmd(epoch, m.config.TickRate), secondCmd(epoch))
}

// live reports whether a driver message still belongs to the running session.
func (m Model) live(epoch int) bool {
	return epoch == m.game.Epoch() && m.game.State().Running && !m.game.Session().Closed()
}

// handleFrame runs one simulation frame.
func (m Model) handleFrame(msg FrameMsg) (tea.Model, tea.Cmd) {
	if !m.live(msg.Epoch) {
		return m, nil
	}
	m.game.Step(msg.Time)
	return m, frameCmd(msg.Epoch, m.config.TickRate)
}

// handleSecond advances the countdown and records the result when it ends.
func (m Model) handleSecond(msg SecondMsg) (tea.Model, tea.Cmd) {
	if !m.live(msg.Epoch) {
		return m, nil
	}
	if _, ended := m.game.Second(); ended {
		m.saveResult()
		return m, nil
	}
	return m, secondCmd(msg.Epoch)
}

// saveResult stores the finished session once per epoch.
func (m *Model) saveResult() {
	epoch := m.game.Epoch()
	if epoch == m.savedEpoch {
		return
	}
	m.savedEpoch = epoch

	s := m.game.Session()
	st := s.Stats()
	rec := storage.SessionRecord{
		Difficulty:   m.difficulty,
		Score:        s.Score(),
		Correct:      st.Correct,
		Wrong:        st.Wrong,
		Spawned:      st.Spawned,
		DurationSecs: s.Config().Session.DurationSecs,
	}
	m.logger.Info("session finished",
		"score", rec.Score,
		"correct", rec.Correct,
		"wrong", rec.Wrong,
		"spawned", rec.Spawned,
		"difficulty", rec.Difficulty,
	)

	if rec.Score > m.best {
		m.best = rec.Score
	}
	if m.store == nil {
		return
	}
	if _, err := m.store.SaveSession(rec); err != nil {
		m.logger.Warn("could not save session", "err", err)
	}
}

// loadBest reads the best score for the current difficulty.
func (m Model) loadBest() int {
	if m.store == nil {
		return 0
	}
	best, err := m.store.HighScore(m.difficulty)
	if err != nil {
		m.logger.Warn("could not read high score", "err", err)
		return 0
	}
	return best
}

// quit tears the session down so late driver messages are no-ops.
func (m Model) quit() (tea.Model, tea.Cmd) {
	m.game.Close()
	m.quitting = true
	return m, tea.Quit
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.view == viewScoreboard {
		return m.scoreboard.View()
	}

	m.game.Render(m.screen)
	m.drawStatus()
	return RenderScreen(m.screen)
}

// drawStatus adds platform state to the game's HUD row.
func (m Model) drawStatus() {
	if m.game.Layout().TooSmall() {
		return
	}
	x := m.screen.Width()/2 + 10
	if m.best > 0 {
		m.screen.DrawTextColored(x, 0, fmt.Sprintf("Best %d", m.best), core.ColorGray)
	}
	if m.player.Muted() {
		m.screen.DrawTextColored(m.screen.Width()/2-18, 0, "muted", core.ColorOrange)
	}
}

// Game returns the game the model drives.
func (m Model) Game() *recycle.Game {
	return m.game
}

// IsQuitting returns true if the user asked to quit.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// Run starts the Bubble Tea program on the local terminal.
func Run(opts Options) error {
	model := NewModel(opts)
	defer model.game.Close()

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err := p.Run()
	return err
}
