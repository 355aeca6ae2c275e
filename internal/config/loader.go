package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Environment overrides for the audio section.
const (
	EnvAudioEnabled = "RECYCLE_AUDIO_ENABLED"
	EnvVolume       = "RECYCLE_VOLUME"
)

// Load loads the game rules.
// Search order: customPath -> ~/.recycle/configs/recycle.yaml -> ./configs/recycle.yaml -> embedded default.
// Files only need to mention the keys they change; everything else keeps its default.
func Load(customPath string) (RecycleConfig, error) {
	cfg, err := load(customPath)
	if err != nil {
		return cfg, err
	}
	applyAudioEnv(&cfg.Audio)
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config: invalid rules: %w", err)
	}
	return cfg, nil
}

func load(customPath string) (RecycleConfig, error) {
	cfg := DefaultRecycleConfig()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory, then the local configs directory
	for _, path := range []string{userConfigPath("recycle.yaml"), filepath.Join("configs", "recycle.yaml")} {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		candidate := DefaultRecycleConfig()
		if err := yaml.Unmarshal(data, &candidate); err == nil {
			return candidate, nil
		}
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultRecycleYAML, &cfg); err != nil {
		return DefaultRecycleConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// userConfigPath returns the path to a user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".recycle", "configs", filename)
}

// applyAudioEnv lets the environment switch sound off or change volume
// without editing the rule file.
func applyAudioEnv(cfg *AudioConfig) {
	if v := os.Getenv(EnvAudioEnabled); v != "" {
		if enabled, err := strconv.ParseBool(v); err == nil {
			cfg.Enabled = enabled
		}
	}
	if v := os.Getenv(EnvVolume); v != "" {
		if vol, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.Volume = clampF(vol, 0, 1)
		}
	}
}

// ApplyPreset modifies the config based on a difficulty preset.
// An empty preset leaves the config untouched.
func ApplyPreset(cfg *RecycleConfig, preset DifficultyPreset) {
	switch preset {
	case "":
		return
	case DifficultyFixed:
		cfg.Difficulty.Enabled = false
		cfg.Difficulty.HeadStartSecs = 0
	default:
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.HeadStartSecs = HeadStartForPreset(preset)
	}
}

// Validate reports every rule that would break the game loop.
func (c RecycleConfig) Validate() error {
	var errs []error
	if c.Session.DurationSecs <= 0 {
		errs = append(errs, fmt.Errorf("session.duration_secs must be positive, got %d", c.Session.DurationSecs))
	}
	if c.Session.MaxFrameMS <= 0 {
		errs = append(errs, fmt.Errorf("session.max_frame_ms must be positive, got %d", c.Session.MaxFrameMS))
	}
	if c.Field.BoundaryY <= c.Field.SpawnY {
		errs = append(errs, fmt.Errorf("field.boundary_y (%g) must be below field.spawn_y (%g)", c.Field.BoundaryY, c.Field.SpawnY))
	}
	if c.Field.SpawnXMin < 0 || c.Field.SpawnXMax > 100 || c.Field.SpawnXMin > c.Field.SpawnXMax {
		errs = append(errs, fmt.Errorf("field spawn range [%g, %g] must lie within [0, 100]", c.Field.SpawnXMin, c.Field.SpawnXMax))
	}
	if c.Field.DragXMin < 0 || c.Field.DragXMax > 100 || c.Field.DragXMin > c.Field.DragXMax {
		errs = append(errs, fmt.Errorf("field drag range [%g, %g] must lie within [0, 100]", c.Field.DragXMin, c.Field.DragXMax))
	}
	if !(0 < c.Bins.Edges[0] && c.Bins.Edges[0] < c.Bins.Edges[1] && c.Bins.Edges[1] < 100) {
		errs = append(errs, fmt.Errorf("bins.edges %v must be increasing and inside (0, 100)", c.Bins.Edges))
	}
	if c.Spawn.FloorIntervalMS <= 0 || c.Spawn.FloorIntervalMS > c.Spawn.StartIntervalMS {
		errs = append(errs, fmt.Errorf("spawn.floor_interval_ms (%d) must be in (0, start_interval_ms=%d]", c.Spawn.FloorIntervalMS, c.Spawn.StartIntervalMS))
	}
	if c.Spawn.IntervalStepMS < 0 {
		errs = append(errs, fmt.Errorf("spawn.interval_step_ms must not be negative, got %d", c.Spawn.IntervalStepMS))
	}
	if c.Physics.BaseSpeed <= 0 || c.Physics.SpeedJitter < 0 {
		errs = append(errs, fmt.Errorf("physics speeds must be positive (base %g, jitter %g)", c.Physics.BaseSpeed, c.Physics.SpeedJitter))
	}
	if c.Physics.HoldFactor <= 0 || c.Physics.HoldFactor > 1 {
		errs = append(errs, fmt.Errorf("physics.hold_factor must be in (0, 1], got %g", c.Physics.HoldFactor))
	}
	if c.Difficulty.SpeedRamp < 0 || c.Difficulty.HeadStartSecs < 0 {
		errs = append(errs, errors.New("difficulty ramp values must not be negative"))
	}
	if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		errs = append(errs, fmt.Errorf("audio.volume must be in [0, 1], got %g", c.Audio.Volume))
	}
	return errors.Join(errs...)
}

// Marshal renders the config as YAML.
func Marshal(cfg RecycleConfig) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("config: failed to encode: %w", err)
	}
	return data, nil
}
