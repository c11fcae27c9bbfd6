package config

import (
	_ "embed"
)

//go:embed defaults/starfall.yaml
var defaultShooterYAML []byte

// DefaultShooterConfig returns the hardcoded default configuration.
// It mirrors defaults/starfall.yaml and is used when the embedded YAML fails to parse.
func DefaultShooterConfig() ShooterConfig {
	return ShooterConfig{
		World: WorldConfig{
			Width:  480,
			Height: 600,
		},
		Player: PlayerConfig{
			Width:          50,
			Height:         40,
			Radius:         20,
			Speed:          9,
			BottomMargin:   30,
			Lives:          3,
			MaxHealth:      100,
			RespawnDelayMS: 1000,
			ShootDelayMS:   250,
			MaxWeaponLevel: 3,
		},
		Obstacles: ObstacleConfig{
			Count:           30,
			AsteroidMinSize: 20,
			AsteroidMaxSize: 40,
			DebrisMinSize:   10,
			DebrisMaxSize:   16,
			RadiusScale:     0.85,
			SpawnMinY:       -300,
			SpawnMaxY:       -20,
			MinVX:           -2,
			MaxVX:           2,
			MinVY:           1,
			MaxVY:           5,
			SpinMin:         -8,
			SpinMax:         8,
			SpinIntervalMS:  50,
		},
		Enemies: EnemyConfig{
			Width:      40,
			Height:     30,
			MinVY:      2,
			MaxVY:      7,
			FireMinMS:  1000,
			FireMaxMS:  4000,
			DieSides:   6,
			EnemyAbove: 4,
		},
		Bullets: BulletConfig{
			Width:      10,
			Height:     20,
			Speed:      10,
			EnemySpeed: 7,
		},
		PowerUps: PowerUpConfig{
			DropAbove:        90,
			Size:             20,
			Speed:            2,
			HealMin:          10,
			HealMax:          30,
			WeaponDurationMS: 4000,
		},
		Explosions: ExplosionConfig{
			Frames:  9,
			FrameMS: 50,
		},
		HighScore: HighScoreConfig{
			NameMaxLen:        12,
			EasterEggScore:    42,
			LeaderboardSize:   10,
			GameOverLockoutMS: 1000,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "none",
				MaxAt: 200,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 0.5,
			},
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultShooterYAML
}
