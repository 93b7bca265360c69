// Package config provides YAML-based game configuration loading and
// difficulty management for the circuit platform.
package config

// CircuitConfig contains all configuration for the circuit game family.
// Campaign stages override the gameplay block per stage; endless and duel
// runs use it directly.
type CircuitConfig struct {
	Gameplay   CircuitGameplay  `yaml:"gameplay"`
	Scoring    CircuitScoring   `yaml:"scoring"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// CircuitGameplay defines the board and alarm parameters for a run.
type CircuitGameplay struct {
	GridSize       int     `yaml:"grid_size"`
	HazardCount    int     `yaml:"hazard_count"`
	TimeLimitSecs  int     `yaml:"time_limit_secs"`
	AlertThreshold int     `yaml:"alert_threshold"`
	RevealSecs     float64 `yaml:"reveal_secs"`
}

// CircuitScoring defines how cleared stages convert into points.
type CircuitScoring struct {
	ClearBonus      int `yaml:"clear_bonus"`
	TimeBonusPerSec int `yaml:"time_bonus_per_sec"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over a run.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "stages", or "none"
	MaxAt int    `yaml:"max_at"` // Score/stages at which max difficulty is reached
}

// ScalingConfig defines the endgame parameters reached at max difficulty.
type ScalingConfig struct {
	MaxGridSize int `yaml:"max_grid_size"` // Board edge at max difficulty
	MaxHazards  int `yaml:"max_hazards"`   // Trap count at max difficulty
	MinTimeSecs int `yaml:"min_time_secs"` // Time limit floor at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
