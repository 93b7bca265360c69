package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadCircuit loads the circuit configuration.
// Search order: customPath -> ~/.circuit/configs/circuit.yaml -> ./configs/circuit.yaml -> embedded default
func LoadCircuit(customPath string) (CircuitConfig, error) {
	var cfg CircuitConfig

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("circuit.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile("configs/circuit.yaml"); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultCircuitYAML, &cfg); err != nil {
		return DefaultCircuitConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".circuit", "configs", filename)
}

// ApplyCircuitPreset modifies the config based on a difficulty preset.
func ApplyCircuitPreset(cfg *CircuitConfig, preset DifficultyPreset) {
	if IsFixedPreset(preset) {
		cfg.Difficulty.Enabled = false
	} else {
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}

	// Adjust gameplay based on difficulty
	switch preset {
	case DifficultyEasy:
		cfg.Gameplay.AlertThreshold++
		cfg.Gameplay.TimeLimitSecs += 30
	case DifficultyHard:
		cfg.Gameplay.HazardCount++
		cfg.Gameplay.TimeLimitSecs -= 30
		if cfg.Gameplay.TimeLimitSecs < 30 {
			cfg.Gameplay.TimeLimitSecs = 30
		}
	}
}
