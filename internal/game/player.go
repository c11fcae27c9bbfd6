package game

import (
	"time"

	"github.com/vovakirdan/starfall/internal/config"
	"github.com/vovakirdan/starfall/internal/core"
)

// Player is the craft controlled by the user.
type Player struct {
	Pos    core.Vec
	W, H   float64
	Radius float64

	Lives        int
	Health       int
	WeaponLevel  int
	WeaponExpiry time.Duration

	// Hidden is set for the grace period after losing a life, and for good
	// once the last life is gone. A hidden player ignores input and collisions.
	Hidden      bool
	HiddenUntil time.Duration

	NextShot time.Duration
}

func newPlayer(cfg config.PlayerConfig, world config.WorldConfig) *Player {
	p := &Player{
		W:           cfg.Width,
		H:           cfg.Height,
		Radius:      cfg.Radius,
		Lives:       cfg.Lives,
		Health:      cfg.MaxHealth,
		WeaponLevel: 1,
	}
	p.Pos = spawnPosition(cfg, world)
	return p
}

// spawnPosition is the default position: horizontally centered near the bottom.
func spawnPosition(cfg config.PlayerConfig, world config.WorldConfig) core.Vec {
	return core.Vec{
		X: world.Width/2 - cfg.Width/2,
		Y: world.Height - cfg.Height - cfg.BottomMargin,
	}
}

// Rect returns the player's bounding box.
func (p *Player) Rect() core.Rect {
	return core.NewRect(p.Pos.X, p.Pos.Y, p.W, p.H)
}

// Center returns the center of the player's bounding box.
func (p *Player) Center() core.Vec {
	return core.Vec{X: p.Pos.X + p.W/2, Y: p.Pos.Y + p.H/2}
}

// steer moves the player horizontally and clamps it to the world.
func (p *Player) steer(in core.InputFrame, speed, worldW float64) {
	var dx float64
	if in.Has(core.ActionLeft) {
		dx -= speed
	}
	if in.Has(core.ActionRight) {
		dx += speed
	}
	p.Pos.X = core.ClampF(p.Pos.X+dx, 0, worldW-p.W)
}

// hide moves the player off-screen until the given time.
func (p *Player) hide(until time.Duration, worldH float64) {
	p.Hidden = true
	p.HiddenUntil = until
	p.Pos.Y = worldH + p.H*4
}
