package config

import (
	_ "embed"
)

//go:embed defaults/circuit.yaml
var defaultCircuitYAML []byte

// DefaultCircuitConfig returns the default circuit configuration.
// The gameplay block matches the classic board: 5x5, three traps,
// 120 seconds, one-strike alarm.
func DefaultCircuitConfig() CircuitConfig {
	return CircuitConfig{
		Gameplay: CircuitGameplay{
			GridSize:       5,
			HazardCount:    3,
			TimeLimitSecs:  120,
			AlertThreshold: 1,
			RevealSecs:     2.0,
		},
		Scoring: CircuitScoring{
			ClearBonus:      100,
			TimeBonusPerSec: 2,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "stages",
				MaxAt: 8,
			},
			Scaling: ScalingConfig{
				MaxGridSize: 8,
				MaxHazards:  9,
				MinTimeSecs: 60,
			},
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
// All circuit modes share one config file.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "circuit", "circuit_endless", "circuit_duel":
		return defaultCircuitYAML
	default:
		return nil
	}
}
