// Package audio synthesizes the game's sound cues with beep.
// Sound is optional: when the output device cannot be opened the player
// stays silent and the game runs unchanged.
package audio

import (
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/btnghn34-art/geri-d-n-m-oyunu/internal/config"
	"github.com/btnghn34-art/geri-d-n-m-oyunu/internal/games/recycle"
)

// Player plays cues through the speaker. It is safe for concurrent use and
// all methods are no-ops once the player is silent or closed.
type Player struct {
	mu     sync.Mutex
	rate   beep.SampleRate
	volume float64
	mixer  *beep.Mixer
	ready  bool // Speaker initialized and playing the mixer
	muted  bool
}

// Open initializes the speaker. It never fails: a disabled config or an
// unavailable device yields a silent player.
func Open(cfg config.AudioConfig, logger *log.Logger) *Player {
	p := &Player{
		rate:   beep.SampleRate(cfg.SampleRate),
		volume: cfg.Volume,
		mixer:  &beep.Mixer{},
	}
	if !cfg.Enabled {
		logger.Debug("audio disabled by config")
		return p
	}
	if p.rate <= 0 {
		p.rate = beep.SampleRate(44100)
	}

	if err := speaker.Init(p.rate, p.rate.N(100*time.Millisecond)); err != nil {
		logger.Warn("audio unavailable, continuing without sound", "err", err)
		return p
	}
	speaker.Play(p.mixer)
	p.ready = true
	logger.Debug("audio ready", "sample_rate", int(p.rate), "volume", p.volume)
	return p
}

// Silent returns a player that never makes a sound.
func Silent() *Player {
	return &Player{mixer: &beep.Mixer{}}
}

// PlayCue implements recycle.CueSink. It returns immediately.
func (p *Player) PlayCue(cue recycle.Cue) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.ready || p.muted {
		return
	}
	s := CueSound(p.rate, cue, p.volume)
	if s == nil {
		return
	}
	speaker.Lock()
	p.mixer.Add(s)
	speaker.Unlock()
}

// Enabled reports whether sound reaches the device.
func (p *Player) Enabled() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.ready
}

// Muted reports whether cues are currently suppressed.
func (p *Player) Muted() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.muted
}

// ToggleMute flips the mute state and returns the new value.
func (p *Player) ToggleMute() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.muted = !p.muted
	if p.muted && p.ready {
		speaker.Lock()
		p.mixer.Clear()
		speaker.Unlock()
	}
	return p.muted
}

// SetMuted sets the mute state.
func (p *Player) SetMuted(muted bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.muted = muted
}

// Close stops every playing cue. The speaker itself stays open for the life
// of the process.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.ready {
		return
	}
	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	speaker.Clear()
	p.ready = false
}
