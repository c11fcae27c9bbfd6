package config

import (
	"math"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestEmbeddedYAMLMatchesDefaults(t *testing.T) {
	cfg, err := decode(DefaultYAML())
	if err != nil {
		t.Fatalf("decode(embedded) failed: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultShooterConfig()) {
		t.Errorf("embedded YAML and DefaultShooterConfig() disagree:\nyaml: %+v\ncode: %+v", cfg, DefaultShooterConfig())
	}
}

func TestDefaultConfigValid(t *testing.T) {
	if err := DefaultShooterConfig().Validate(); err != nil {
		t.Errorf("default config should be valid: %v", err)
	}
}

func TestValidateRejectsBadDimensions(t *testing.T) {
	cfg := DefaultShooterConfig()
	cfg.World.Width = 0
	cfg.Obstacles.Count = 0

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected validation error")
	}
	if !strings.Contains(err.Error(), "world dimensions") || !strings.Contains(err.Error(), "obstacles count") {
		t.Errorf("error should mention both problems, got %v", err)
	}
}

func TestLoadShooterCustomPathPartial(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := "player:\n  lives: 7\nobstacles:\n  count: 12\n"
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadShooter(path)
	if err != nil {
		t.Fatalf("LoadShooter() failed: %v", err)
	}
	if cfg.Player.Lives != 7 || cfg.Obstacles.Count != 12 {
		t.Errorf("overrides not applied: lives=%d count=%d", cfg.Player.Lives, cfg.Obstacles.Count)
	}
	if cfg.World.Width != 480 {
		t.Errorf("unset fields should keep defaults, world width = %v", cfg.World.Width)
	}
}

func TestLoadShooterCustomPathErrors(t *testing.T) {
	if _, err := LoadShooter(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("missing custom config should fail")
	}

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(bad, []byte("world: [1, 2"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadShooter(bad); err == nil {
		t.Error("unparseable custom config should fail")
	}

	invalid := filepath.Join(t.TempDir(), "invalid.yaml")
	if err := os.WriteFile(invalid, []byte("obstacles:\n  count: 0\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadShooter(invalid); err == nil {
		t.Error("invalid custom config should fail validation")
	}
}

func TestApplyShooterPreset(t *testing.T) {
	tests := []struct {
		preset       DifficultyPreset
		lives, count int
		enabled      bool
		level        float64
	}{
		{DifficultyEasy, 5, 20, true, 0.0},
		{DifficultyNormal, 3, 30, true, 0.3},
		{DifficultyHard, 2, 45, true, 0.7},
		{DifficultyFixed, 3, 30, false, 0.0},
	}

	for _, tc := range tests {
		t.Run(string(tc.preset), func(t *testing.T) {
			cfg := DefaultShooterConfig()
			ApplyShooterPreset(&cfg, tc.preset)
			if cfg.Player.Lives != tc.lives || cfg.Obstacles.Count != tc.count {
				t.Errorf("lives=%d count=%d, expected %d/%d", cfg.Player.Lives, cfg.Obstacles.Count, tc.lives, tc.count)
			}
			if cfg.Difficulty.Enabled != tc.enabled {
				t.Errorf("enabled=%v, expected %v", cfg.Difficulty.Enabled, tc.enabled)
			}
			if tc.enabled && cfg.Difficulty.InitialLevel != tc.level {
				t.Errorf("initial level=%v, expected %v", cfg.Difficulty.InitialLevel, tc.level)
			}
		})
	}
}

func TestParsePreset(t *testing.T) {
	if p, err := ParsePreset("hard"); err != nil || p != DifficultyHard {
		t.Errorf("ParsePreset(hard) = %q, %v", p, err)
	}
	if p, err := ParsePreset(""); err != nil || p != "" {
		t.Errorf("ParsePreset(\"\") = %q, %v", p, err)
	}
	if _, err := ParsePreset("nightmare"); err == nil {
		t.Error("unknown preset should fail")
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	out, err := Marshal(DefaultShooterConfig())
	if err != nil {
		t.Fatalf("Marshal() failed: %v", err)
	}
	cfg, err := decode(out)
	if err != nil {
		t.Fatalf("decode() failed: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultShooterConfig()) {
		t.Error("marshalled config should decode to the same value")
	}
}

func TestDifficultyManager(t *testing.T) {
	t.Run("default keeps base speed", func(t *testing.T) {
		d := NewDifficultyManager(DefaultShooterConfig().Difficulty)
		if s := d.SpeedScale(500, 10000); s != 1.0 {
			t.Errorf("SpeedScale() = %v, expected 1.0", s)
		}
		if d.IsEnabled() {
			t.Error("progression type none should not be enabled")
		}
	})

	t.Run("preset initial level", func(t *testing.T) {
		cfg := DefaultShooterConfig().Difficulty
		cfg.InitialLevel = 0.7
		d := NewDifficultyManager(cfg)
		if s := d.SpeedScale(0, 0); math.Abs(s-1.35) > 1e-9 {
			t.Errorf("SpeedScale() = %v, expected 1.35", s)
		}
	})

	t.Run("score progression", func(t *testing.T) {
		cfg := DifficultyConfig{
			Enabled:     true,
			Progression: ProgressionConfig{Type: "score", MaxAt: 100},
			Scaling:     ScalingConfig{SpeedMultiplier: 1.0},
		}
		d := NewDifficultyManager(cfg)
		if l := d.Level(50, 0); l != 0.5 {
			t.Errorf("Level(50) = %v, expected 0.5", l)
		}
		if l := d.Level(1000, 0); l != 1.0 {
			t.Errorf("Level should clamp at 1.0, got %v", l)
		}
		if s := d.SpeedScale(100, 0); s != 2.0 {
			t.Errorf("SpeedScale(100) = %v, expected 2.0", s)
		}
	})

	t.Run("disabled", func(t *testing.T) {
		cfg := DifficultyConfig{Enabled: false, InitialLevel: 0.7}
		d := NewDifficultyManager(cfg)
		if l := d.Level(0, 0); l != 0 {
			t.Errorf("disabled manager Level() = %v, expected 0", l)
		}
	})
}
