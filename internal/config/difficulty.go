package config

import (
	"math"
	"time"
)

// Ramp derives spawn pacing and speed bonus from elapsed session time.
// Every method is a pure function of its argument.
type Ramp struct {
	spawn SpawnConfig
	cfg   DifficultyConfig
}

// NewRamp creates a ramp for the given rules.
func NewRamp(cfg RecycleConfig) *Ramp {
	return &Ramp{
		spawn: cfg.Spawn,
		cfg:   cfg.Difficulty,
	}
}

// IsEnabled returns whether difficulty progression is active.
func (r *Ramp) IsEnabled() bool {
	return r.cfg.Enabled
}

// effective returns the elapsed seconds the ramp is evaluated at.
func (r *Ramp) effective(elapsed time.Duration) float64 {
	if !r.cfg.Enabled {
		return 0
	}
	secs := elapsed.Seconds() + r.cfg.HeadStartSecs
	if secs < 0 {
		return 0
	}
	return secs
}

// SpawnInterval returns the minimum gap between spawns. It shrinks linearly
// from the start interval and never leaves [floor, start].
func (r *Ramp) SpawnInterval(elapsed time.Duration) time.Duration {
	start := float64(r.spawn.StartIntervalMS)
	floor := float64(r.spawn.FloorIntervalMS)
	ms := start - r.effective(elapsed)*float64(r.spawn.IntervalStepMS)
	ms = clampF(ms, floor, start)
	return time.Duration(ms * float64(time.Millisecond))
}

// SpeedBonus returns the fall speed added to items spawned at this point.
func (r *Ramp) SpeedBonus(elapsed time.Duration) float64 {
	return r.effective(elapsed) * r.cfg.SpeedRamp
}

// Level returns how far the spawn interval has moved toward its floor, 0.0 to 1.0.
func (r *Ramp) Level(elapsed time.Duration) float64 {
	span := float64(r.spawn.StartIntervalMS - r.spawn.FloorIntervalMS)
	if span <= 0 {
		return 1
	}
	done := float64(r.spawn.StartIntervalMS) - float64(r.SpawnInterval(elapsed))/float64(time.Millisecond)
	return clampF(done/span, 0, 1)
}

// clampF restricts a float64 to [min, max].
func clampF(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}
