// Package config provides YAML-based rule loading and difficulty management
// for the sorting game.
package config

// RecycleConfig contains every tunable rule of the sorting game.
type RecycleConfig struct {
	Session    SessionConfig    `yaml:"session"`
	Field      FieldConfig      `yaml:"field"`
	Bins       BinsConfig       `yaml:"bins"`
	Scoring    ScoringConfig    `yaml:"scoring"`
	Spawn      SpawnConfig      `yaml:"spawn"`
	Physics    PhysicsConfig    `yaml:"physics"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
	Feedback   FeedbackConfig   `yaml:"feedback"`
	Audio      AudioConfig      `yaml:"audio"`
}

// SessionConfig defines the session clock.
type SessionConfig struct {
	DurationSecs int `yaml:"duration_secs"`
	MaxFrameMS   int `yaml:"max_frame_ms"` // Upper bound on a single frame delta
}

// FieldConfig defines the play area in percent of its width and height.
type FieldConfig struct {
	BoundaryY float64 `yaml:"boundary_y"` // Items crossing this line are resolved
	SpawnY    float64 `yaml:"spawn_y"`
	SpawnXMin float64 `yaml:"spawn_x_min"`
	SpawnXMax float64 `yaml:"spawn_x_max"`
	DragXMin  float64 `yaml:"drag_x_min"`
	DragXMax  float64 `yaml:"drag_x_max"`
}

// BinsConfig defines the two vertical edges splitting the width into three bins.
type BinsConfig struct {
	Edges [2]float64 `yaml:"edges"`
}

// ScoringConfig defines the score delta per resolution.
type ScoringConfig struct {
	Correct int `yaml:"correct"`
	Wrong   int `yaml:"wrong"`
}

// SpawnConfig defines spawn pacing.
type SpawnConfig struct {
	StartIntervalMS int `yaml:"start_interval_ms"`
	FloorIntervalMS int `yaml:"floor_interval_ms"`
	IntervalStepMS  int `yaml:"interval_step_ms"` // Interval reduction per elapsed second
}

// PhysicsConfig defines falling speeds in percent of play-area height per second.
type PhysicsConfig struct {
	BaseSpeed   float64 `yaml:"base_speed"`
	SpeedJitter float64 `yaml:"speed_jitter"`
	HoldFactor  float64 `yaml:"hold_factor"` // Fall speed multiplier while dragged
}

// DifficultyConfig defines how the ramp progresses over a session.
type DifficultyConfig struct {
	Enabled       bool    `yaml:"enabled"`
	HeadStartSecs float64 `yaml:"head_start_secs"` // Added to elapsed time before ramping
	SpeedRamp     float64 `yaml:"speed_ramp"`      // Speed added per elapsed second
}

// FeedbackConfig defines cosmetic feedback timing.
type FeedbackConfig struct {
	HighlightMS int `yaml:"highlight_ms"`
}

// AudioConfig defines sound cue output.
type AudioConfig struct {
	Enabled    bool    `yaml:"enabled"`
	Volume     float64 `yaml:"volume"` // 0.0 - 1.0
	SampleRate int     `yaml:"sample_rate"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// Presets lists the presets in display order.
var Presets = []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed}

// ParsePreset maps a CLI string onto a preset. Unknown or empty input yields
// an empty preset, meaning "use the config as loaded".
func ParsePreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s)
	default:
		return ""
	}
}

// HeadStartForPreset returns the ramp head start for a difficulty preset.
func HeadStartForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyNormal:
		return 15
	case DifficultyHard:
		return 30
	default:
		return 0
	}
}

// CustomLabel names sessions played without a preset.
const CustomLabel = "custom"

// Label returns the name scores are filed under for a preset.
func Label(preset DifficultyPreset) string {
	if preset == "" {
		return CustomLabel
	}
	return string(preset)
}

// ScoreLabels lists every label scores can be filed under, in display order.
func ScoreLabels() []string {
	labels := make([]string, 0, len(Presets)+1)
	for _, p := range Presets {
		labels = append(labels, string(p))
	}
	return append(labels, CustomLabel)
}
