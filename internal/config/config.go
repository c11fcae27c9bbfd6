// Package config provides YAML-based game configuration loading and
// difficulty management for the shooter.
package config

import (
	"errors"
	"fmt"
	"time"
)

// ShooterConfig contains all tuning for a session.
type ShooterConfig struct {
	World      WorldConfig      `yaml:"world"`
	Player     PlayerConfig     `yaml:"player"`
	Obstacles  ObstacleConfig   `yaml:"obstacles"`
	Enemies    EnemyConfig      `yaml:"enemies"`
	Bullets    BulletConfig     `yaml:"bullets"`
	PowerUps   PowerUpConfig    `yaml:"powerups"`
	Explosions ExplosionConfig  `yaml:"explosions"`
	HighScore  HighScoreConfig  `yaml:"highscore"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// WorldConfig defines the logical playfield in world units.
type WorldConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PlayerConfig defines the player craft.
type PlayerConfig struct {
	Width          float64 `yaml:"width"`
	Height         float64 `yaml:"height"`
	Radius         float64 `yaml:"radius"`
	Speed          float64 `yaml:"speed"`         // Horizontal speed per tick
	BottomMargin   float64 `yaml:"bottom_margin"` // Gap between craft and bottom edge
	Lives          int     `yaml:"lives"`
	MaxHealth      int     `yaml:"max_health"`
	RespawnDelayMS int     `yaml:"respawn_delay_ms"`
	ShootDelayMS   int     `yaml:"shoot_delay_ms"`
	MaxWeaponLevel int     `yaml:"max_weapon_level"`
}

// ObstacleConfig defines asteroids and debris. Count is the difficulty constant:
// asteroids = Count, debris = Count/3, enemy ships = Count/5.
type ObstacleConfig struct {
	Count           int     `yaml:"count"`
	AsteroidMinSize int     `yaml:"asteroid_min_size"`
	AsteroidMaxSize int     `yaml:"asteroid_max_size"`
	DebrisMinSize   int     `yaml:"debris_min_size"`
	DebrisMaxSize   int     `yaml:"debris_max_size"`
	RadiusScale     float64 `yaml:"radius_scale"` // radius = width * scale / 2
	SpawnMinY       int     `yaml:"spawn_min_y"`
	SpawnMaxY       int     `yaml:"spawn_max_y"`
	MinVX           int     `yaml:"min_vx"`
	MaxVX           int     `yaml:"max_vx"`
	MinVY           int     `yaml:"min_vy"`
	MaxVY           int     `yaml:"max_vy"`
	SpinMin         int     `yaml:"spin_min"` // Degrees per spin step
	SpinMax         int     `yaml:"spin_max"`
	SpinIntervalMS  int     `yaml:"spin_interval_ms"`
}

// EnemyConfig defines hostile ships and the replacement die.
type EnemyConfig struct {
	Width      float64 `yaml:"width"`
	Height     float64 `yaml:"height"`
	MinVY      int     `yaml:"min_vy"`
	MaxVY      int     `yaml:"max_vy"`
	FireMinMS  int     `yaml:"fire_min_ms"`
	FireMaxMS  int     `yaml:"fire_max_ms"`
	DieSides   int     `yaml:"die_sides"`
	EnemyAbove int     `yaml:"enemy_above"` // Replacement is an enemy when the roll exceeds this
}

// BulletConfig defines player and enemy shots.
type BulletConfig struct {
	Width      float64 `yaml:"width"`
	Height     float64 `yaml:"height"`
	Speed      float64 `yaml:"speed"`
	EnemySpeed float64 `yaml:"enemy_speed"`
}

// PowerUpConfig defines drops.
type PowerUpConfig struct {
	DropAbove        int     `yaml:"drop_above"` // Drop when a d100 roll exceeds this
	Size             float64 `yaml:"size"`
	Speed            float64 `yaml:"speed"`
	HealMin          int     `yaml:"heal_min"`
	HealMax          int     `yaml:"heal_max"`
	WeaponDurationMS int     `yaml:"weapon_duration_ms"`
}

// ExplosionConfig defines the cosmetic explosion animation.
type ExplosionConfig struct {
	Frames  int `yaml:"frames"`
	FrameMS int `yaml:"frame_ms"`
}

// HighScoreConfig defines name entry and the leaderboard.
type HighScoreConfig struct {
	NameMaxLen        int `yaml:"name_max_len"`
	EasterEggScore    int `yaml:"easter_egg_score"`
	LeaderboardSize   int `yaml:"leaderboard_size"`
	GameOverLockoutMS int `yaml:"game_over_lockout_ms"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Added to obstacle speed at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a CLI string to a preset. Empty input means no preset.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch DifficultyPreset(s) {
	case "":
		return "", nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s), nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", s)
	}
}

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

// Ms converts a millisecond setting to a duration.
func Ms(v int) time.Duration {
	return time.Duration(v) * time.Millisecond
}

// Validate checks the invariants the simulation relies on.
func (c ShooterConfig) Validate() error {
	var errs []error
	if c.World.Width <= 0 || c.World.Height <= 0 {
		errs = append(errs, errors.New("world dimensions must be positive"))
	}
	if c.Player.Width <= 0 || c.Player.Height <= 0 || c.Player.Radius <= 0 {
		errs = append(errs, errors.New("player dimensions must be positive"))
	}
	if c.Player.Width >= c.World.Width {
		errs = append(errs, errors.New("player must be narrower than the world"))
	}
	if c.Player.Lives < 1 || c.Player.MaxHealth < 1 {
		errs = append(errs, errors.New("player lives and max_health must be at least 1"))
	}
	if c.Player.MaxWeaponLevel < 1 {
		errs = append(errs, errors.New("player max_weapon_level must be at least 1"))
	}
	if c.Obstacles.Count < 1 {
		errs = append(errs, errors.New("obstacles count must be at least 1"))
	}
	if c.Obstacles.AsteroidMinSize < 1 || c.Obstacles.AsteroidMaxSize <= c.Obstacles.AsteroidMinSize {
		errs = append(errs, errors.New("asteroid size range is empty"))
	}
	if c.Obstacles.DebrisMinSize < 1 || c.Obstacles.DebrisMaxSize <= c.Obstacles.DebrisMinSize {
		errs = append(errs, errors.New("debris size range is empty"))
	}
	if c.Obstacles.SpawnMaxY <= c.Obstacles.SpawnMinY ||
		c.Obstacles.MaxVX <= c.Obstacles.MinVX ||
		c.Obstacles.MaxVY <= c.Obstacles.MinVY ||
		c.Obstacles.SpinMax <= c.Obstacles.SpinMin {
		errs = append(errs, errors.New("obstacle random ranges must be non-empty"))
	}
	if c.Enemies.Width <= 0 || c.Enemies.Height <= 0 {
		errs = append(errs, errors.New("enemy dimensions must be positive"))
	}
	if c.Enemies.MaxVY <= c.Enemies.MinVY || c.Enemies.FireMaxMS <= c.Enemies.FireMinMS || c.Enemies.DieSides < 1 {
		errs = append(errs, errors.New("enemy random ranges must be non-empty"))
	}
	if c.Bullets.Width <= 0 || c.Bullets.Height <= 0 {
		errs = append(errs, errors.New("bullet dimensions must be positive"))
	}
	if c.PowerUps.Size <= 0 || c.PowerUps.HealMax <= c.PowerUps.HealMin {
		errs = append(errs, errors.New("powerup size and heal range must be positive"))
	}
	if c.Explosions.Frames < 1 || c.Explosions.FrameMS < 1 {
		errs = append(errs, errors.New("explosion frames and frame_ms must be at least 1"))
	}
	if c.HighScore.NameMaxLen < 1 || c.HighScore.LeaderboardSize < 1 {
		errs = append(errs, errors.New("highscore name_max_len and leaderboard_size must be at least 1"))
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("config: invalid: %w", err)
	}
	return nil
}
