package config

import "math"

// DifficultyManager calculates dynamic board parameters based on score/stages.
type DifficultyManager struct {
	cfg          DifficultyConfig
	initialLevel float64
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{
		cfg:          cfg,
		initialLevel: cfg.InitialLevel,
	}
}

// SetInitialLevel overrides the initial difficulty level (0.0 to 1.0).
func (d *DifficultyManager) SetInitialLevel(level float64) {
	d.initialLevel = clampF(level, 0.0, 1.0)
}

// SetEnabled enables or disables difficulty progression.
func (d *DifficultyManager) SetEnabled(enabled bool) {
	d.cfg.Enabled = enabled
}

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.Progression.Type != "none"
}

// Level returns the current difficulty level (0.0 to 1.0) based on score/stages.
func (d *DifficultyManager) Level(score int, stages int) float64 {
	if !d.cfg.Enabled || d.cfg.Progression.Type == "none" {
		return d.initialLevel
	}

	var progress float64
	maxAt := float64(d.cfg.Progression.MaxAt)
	if maxAt <= 0 {
		maxAt = 1 // Prevent division by zero
	}

	switch d.cfg.Progression.Type {
	case "score":
		progress = float64(score) / maxAt
	case "stages":
		progress = float64(stages) / maxAt
	default:
		return d.initialLevel
	}

	// Clamp progress to [0, 1]
	progress = clampF(progress, 0.0, 1.0)

	// Interpolate from initial level to 1.0
	return d.initialLevel + progress*(1.0-d.initialLevel)
}

// GridSize returns the current board edge based on difficulty level.
func (d *DifficultyManager) GridSize(base int, score int, stages int) int {
	level := d.Level(score, stages)
	// Board grows from base toward the configured maximum
	growth := int(level * float64(d.cfg.Scaling.MaxGridSize-base))
	result := base + growth
	if result < 2 { // Minimum playable board
		result = 2
	}
	return result
}

// HazardCount returns the current trap count based on difficulty level.
func (d *DifficultyManager) HazardCount(base int, score int, stages int) int {
	level := d.Level(score, stages)
	// Traps accumulate from base toward the configured maximum
	growth := int(level * float64(d.cfg.Scaling.MaxHazards-base))
	result := base + growth
	if result < 0 {
		result = 0
	}
	return result
}

// TimeLimitSecs returns the current time limit based on difficulty level.
func (d *DifficultyManager) TimeLimitSecs(base int, score int, stages int) int {
	level := d.Level(score, stages)
	// Clock shrinks from base toward the configured floor
	reduction := int(level * float64(base-d.cfg.Scaling.MinTimeSecs))
	result := base - reduction
	if result < d.cfg.Scaling.MinTimeSecs {
		result = d.cfg.Scaling.MinTimeSecs
	}
	if result < 10 { // Never drop below a playable clock
		result = 10
	}
	return result
}

// clampF restricts a float64 to [min, max].
func clampF(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}
