package config

import (
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestLoadCircuitExplicitPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := []byte(`
gameplay:
  grid_size: 7
  hazard_count: 5
  time_limit_secs: 90
  alert_threshold: 2
  reveal_secs: 1.5
scoring:
  clear_bonus: 250
  time_bonus_per_sec: 3
difficulty:
  enabled: false
`)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}

	cfg, err := LoadCircuit(path)
	if err != nil {
		t.Fatalf("LoadCircuit() failed: %v", err)
	}

	if cfg.Gameplay.GridSize != 7 {
		t.Errorf("GridSize = %d, want 7", cfg.Gameplay.GridSize)
	}
	if cfg.Gameplay.HazardCount != 5 {
		t.Errorf("HazardCount = %d, want 5", cfg.Gameplay.HazardCount)
	}
	if cfg.Gameplay.TimeLimitSecs != 90 {
		t.Errorf("TimeLimitSecs = %d, want 90", cfg.Gameplay.TimeLimitSecs)
	}
	if cfg.Gameplay.RevealSecs != 1.5 {
		t.Errorf("RevealSecs = %v, want 1.5", cfg.Gameplay.RevealSecs)
	}
	if cfg.Scoring.ClearBonus != 250 {
		t.Errorf("ClearBonus = %d, want 250", cfg.Scoring.ClearBonus)
	}
	if cfg.Difficulty.Enabled {
		t.Error("Difficulty should be disabled by the custom file")
	}
}

func TestLoadCircuitExplicitPathMissing(t *testing.T) {
	_, err := LoadCircuit(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Error("Expected error for missing explicit config path, got nil")
	}
}

func TestLoadCircuitExplicitPathMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.yaml")
	if err := os.WriteFile(path, []byte("gameplay: [not a map"), 0o644); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}

	if _, err := LoadCircuit(path); err == nil {
		t.Error("Expected parse error for malformed config, got nil")
	}
}

func TestEmbeddedDefaultMatchesHardcoded(t *testing.T) {
	// The embedded YAML and the hardcoded fallback must describe the
	// same stock board, or the fallback silently changes the game.
	var embedded CircuitConfig
	if err := yaml.Unmarshal(defaultCircuitYAML, &embedded); err != nil {
		t.Fatalf("embedded default does not parse: %v", err)
	}

	hard := DefaultCircuitConfig()
	if embedded.Gameplay != hard.Gameplay {
		t.Errorf("Gameplay drift: embedded %+v, hardcoded %+v",
			embedded.Gameplay, hard.Gameplay)
	}
	if embedded.Scoring != hard.Scoring {
		t.Errorf("Scoring drift: embedded %+v, hardcoded %+v",
			embedded.Scoring, hard.Scoring)
	}
	if embedded.Difficulty != hard.Difficulty {
		t.Errorf("Difficulty drift: embedded %+v, hardcoded %+v",
			embedded.Difficulty, hard.Difficulty)
	}
}

func TestGetDefaultYAML(t *testing.T) {
	for _, id := range []string{"circuit", "circuit_endless", "circuit_duel"} {
		if GetDefaultYAML(id) == nil {
			t.Errorf("GetDefaultYAML(%q) = nil, want embedded config", id)
		}
	}
	if GetDefaultYAML("tetris") != nil {
		t.Error("GetDefaultYAML for unknown game should be nil")
	}
}

func TestInitialLevelForPreset(t *testing.T) {
	tests := []struct {
		preset DifficultyPreset
		want   float64
	}{
		{DifficultyEasy, 0.0},
		{DifficultyNormal, 0.3},
		{DifficultyHard, 0.7},
		{DifficultyFixed, 0.0},
		{"", 0.0},
	}

	for _, tt := range tests {
		if got := InitialLevelForPreset(tt.preset); got != tt.want {
			t.Errorf("InitialLevelForPreset(%q) = %v, want %v", tt.preset, got, tt.want)
		}
	}
}

func TestApplyCircuitPreset(t *testing.T) {
	t.Run("easy loosens the alarm and the clock", func(t *testing.T) {
		cfg := DefaultCircuitConfig()
		ApplyCircuitPreset(&cfg, DifficultyEasy)

		if cfg.Gameplay.AlertThreshold != 2 {
			t.Errorf("AlertThreshold = %d, want 2", cfg.Gameplay.AlertThreshold)
		}
		if cfg.Gameplay.TimeLimitSecs != 150 {
			t.Errorf("TimeLimitSecs = %d, want 150", cfg.Gameplay.TimeLimitSecs)
		}
		if !cfg.Difficulty.Enabled {
			t.Error("Easy preset should keep progression enabled")
		}
		if cfg.Difficulty.InitialLevel != 0.0 {
			t.Errorf("InitialLevel = %v, want 0.0", cfg.Difficulty.InitialLevel)
		}
	})

	t.Run("normal only sets the initial level", func(t *testing.T) {
		cfg := DefaultCircuitConfig()
		ApplyCircuitPreset(&cfg, DifficultyNormal)

		if cfg.Gameplay != DefaultCircuitConfig().Gameplay {
			t.Errorf("Normal preset changed gameplay: %+v", cfg.Gameplay)
		}
		if cfg.Difficulty.InitialLevel != 0.3 {
			t.Errorf("InitialLevel = %v, want 0.3", cfg.Difficulty.InitialLevel)
		}
	})

	t.Run("hard adds a trap and shortens the clock", func(t *testing.T) {
		cfg := DefaultCircuitConfig()
		ApplyCircuitPreset(&cfg, DifficultyHard)

		if cfg.Gameplay.HazardCount != 4 {
			t.Errorf("HazardCount = %d, want 4", cfg.Gameplay.HazardCount)
		}
		if cfg.Gameplay.TimeLimitSecs != 90 {
			t.Errorf("TimeLimitSecs = %d, want 90", cfg.Gameplay.TimeLimitSecs)
		}
		if cfg.Difficulty.InitialLevel != 0.7 {
			t.Errorf("InitialLevel = %v, want 0.7", cfg.Difficulty.InitialLevel)
		}
	})

	t.Run("hard clock never drops below 30", func(t *testing.T) {
		cfg := DefaultCircuitConfig()
		cfg.Gameplay.TimeLimitSecs = 45
		ApplyCircuitPreset(&cfg, DifficultyHard)

		if cfg.Gameplay.TimeLimitSecs != 30 {
			t.Errorf("TimeLimitSecs = %d, want floor of 30", cfg.Gameplay.TimeLimitSecs)
		}
	})

	t.Run("fixed disables progression and keeps gameplay", func(t *testing.T) {
		cfg := DefaultCircuitConfig()
		ApplyCircuitPreset(&cfg, DifficultyFixed)

		if cfg.Difficulty.Enabled {
			t.Error("Fixed preset should disable progression")
		}
		if cfg.Gameplay != DefaultCircuitConfig().Gameplay {
			t.Errorf("Fixed preset changed gameplay: %+v", cfg.Gameplay)
		}
	})
}

func TestDifficultyManagerLevel(t *testing.T) {
	cfg := DifficultyConfig{
		Enabled:      true,
		InitialLevel: 0.0,
		Progression:  ProgressionConfig{Type: "score", MaxAt: 1000},
		Scaling:      ScalingConfig{MaxGridSize: 8, MaxHazards: 9, MinTimeSecs: 60},
	}
	dm := NewDifficultyManager(cfg)

	if lvl := dm.Level(0, 0); lvl != 0.0 {
		t.Errorf("Level at start = %v, want 0.0", lvl)
	}
	if lvl := dm.Level(500, 0); lvl != 0.5 {
		t.Errorf("Level at half progress = %v, want 0.5", lvl)
	}
	if lvl := dm.Level(1000, 0); lvl != 1.0 {
		t.Errorf("Level at max = %v, want 1.0", lvl)
	}
	if lvl := dm.Level(5000, 0); lvl != 1.0 {
		t.Errorf("Level past max = %v, want clamp to 1.0", lvl)
	}
}

func TestDifficultyManagerLevelStages(t *testing.T) {
	cfg := DifficultyConfig{
		Enabled:      true,
		InitialLevel: 0.5,
		Progression:  ProgressionConfig{Type: "stages", MaxAt: 4},
	}
	dm := NewDifficultyManager(cfg)

	// Interpolates from the initial level, not from zero
	if lvl := dm.Level(0, 2); lvl != 0.75 {
		t.Errorf("Level at half stages = %v, want 0.75", lvl)
	}
	if lvl := dm.Level(0, 4); lvl != 1.0 {
		t.Errorf("Level at max stages = %v, want 1.0", lvl)
	}
}

func TestDifficultyManagerDisabled(t *testing.T) {
	cfg := DifficultyConfig{
		Enabled:      false,
		InitialLevel: 0.4,
		Progression:  ProgressionConfig{Type: "score", MaxAt: 100},
	}
	dm := NewDifficultyManager(cfg)

	if dm.IsEnabled() {
		t.Error("IsEnabled() = true for disabled config")
	}
	if lvl := dm.Level(99999, 99); lvl != 0.4 {
		t.Errorf("Disabled Level = %v, want frozen initial 0.4", lvl)
	}

	dm.SetEnabled(true)
	if !dm.IsEnabled() {
		t.Error("IsEnabled() = false after SetEnabled(true)")
	}
}

func TestDifficultyManagerNoneType(t *testing.T) {
	cfg := DifficultyConfig{
		Enabled:      true,
		InitialLevel: 0.2,
		Progression:  ProgressionConfig{Type: "none", MaxAt: 100},
	}
	dm := NewDifficultyManager(cfg)

	if dm.IsEnabled() {
		t.Error(`IsEnabled() = true for progression type "none"`)
	}
	if lvl := dm.Level(500, 5); lvl != 0.2 {
		t.Errorf("Level = %v, want frozen initial 0.2", lvl)
	}
}

func TestDifficultyManagerScaling(t *testing.T) {
	cfg := DifficultyConfig{
		Enabled:      true,
		InitialLevel: 0.0,
		Progression:  ProgressionConfig{Type: "score", MaxAt: 100},
		Scaling:      ScalingConfig{MaxGridSize: 8, MaxHazards: 9, MinTimeSecs: 60},
	}
	dm := NewDifficultyManager(cfg)

	// At level 0 everything stays at base
	if got := dm.GridSize(5, 0, 0); got != 5 {
		t.Errorf("GridSize at start = %d, want 5", got)
	}
	if got := dm.HazardCount(3, 0, 0); got != 3 {
		t.Errorf("HazardCount at start = %d, want 3", got)
	}
	if got := dm.TimeLimitSecs(120, 0, 0); got != 120 {
		t.Errorf("TimeLimitSecs at start = %d, want 120", got)
	}

	// At max level the scaling caps take over
	if got := dm.GridSize(5, 100, 0); got != 8 {
		t.Errorf("GridSize at max = %d, want 8", got)
	}
	if got := dm.HazardCount(3, 100, 0); got != 9 {
		t.Errorf("HazardCount at max = %d, want 9", got)
	}
	if got := dm.TimeLimitSecs(120, 100, 0); got != 60 {
		t.Errorf("TimeLimitSecs at max = %d, want 60", got)
	}
}

func TestDifficultyManagerClockFloor(t *testing.T) {
	cfg := DifficultyConfig{
		Enabled:     true,
		Progression: ProgressionConfig{Type: "score", MaxAt: 100},
		Scaling:     ScalingConfig{MaxGridSize: 8, MaxHazards: 9, MinTimeSecs: 0},
	}
	dm := NewDifficultyManager(cfg)

	// Even with a zero configured floor the clock stays playable
	if got := dm.TimeLimitSecs(12, 100, 0); got != 10 {
		t.Errorf("TimeLimitSecs = %d, want hard floor of 10", got)
	}
}

func TestDifficultyManagerSetInitialLevel(t *testing.T) {
	dm := NewDifficultyManager(DifficultyConfig{Enabled: false})

	dm.SetInitialLevel(1.7)
	if lvl := dm.Level(0, 0); lvl != 1.0 {
		t.Errorf("Level = %v, want clamp to 1.0", lvl)
	}

	dm.SetInitialLevel(-0.3)
	if lvl := dm.Level(0, 0); lvl != 0.0 {
		t.Errorf("Level = %v, want clamp to 0.0", lvl)
	}
}
