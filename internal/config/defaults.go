package config

import (
	_ "embed"
)

//go:embed defaults/recycle.yaml
var defaultRecycleYAML []byte

// DefaultRecycleConfig returns the built-in rules. It mirrors
// defaults/recycle.yaml and is used when the embedded file cannot be parsed.
func DefaultRecycleConfig() RecycleConfig {
	return RecycleConfig{
		Session: SessionConfig{
			DurationSecs: 60,
			MaxFrameMS:   250,
		},
		Field: FieldConfig{
			BoundaryY: 85,
			SpawnY:    -10,
			SpawnXMin: 10,
			SpawnXMax: 90,
			DragXMin:  5,
			DragXMax:  95,
		},
		Bins: BinsConfig{
			Edges: [2]float64{33.33, 66.66},
		},
		Scoring: ScoringConfig{
			Correct: 10,
			Wrong:   -5,
		},
		Spawn: SpawnConfig{
			StartIntervalMS: 1500,
			FloorIntervalMS: 500,
			IntervalStepMS:  20,
		},
		Physics: PhysicsConfig{
			BaseSpeed:   12,  // 0.2% per frame at 60 FPS
			SpeedJitter: 6,   // 0.1% per frame at 60 FPS
			HoldFactor:  0.3, // Dragged items fall at 30% speed
		},
		Difficulty: DifficultyConfig{
			Enabled:       true,
			HeadStartSecs: 0,
			SpeedRamp:     0.3,
		},
		Feedback: FeedbackConfig{
			HighlightMS: 200,
		},
		Audio: AudioConfig{
			Enabled:    true,
			Volume:     0.6,
			SampleRate: 44100,
		},
	}
}

// DefaultYAML returns the embedded default rule file.
func DefaultYAML() []byte {
	return defaultRecycleYAML
}
