// Package game implements the shooter simulation: entities, spawning,
// collision resolution and the session state machine.
//
// The package is pure: it never touches the terminal, the speaker or the
// filesystem directly. Rendering reads a Frame, audio goes through the Audio
// interface and scores go through a storage.Ledger.
package game

import (
	"math"
	"time"

	"github.com/vovakirdan/starfall/internal/core"
)

// Kind discriminates entity variants.
type Kind int

const (
	KindAsteroid Kind = iota
	KindDebris
	KindEnemyShip
	KindBullet
	KindPowerUp
	KindExplosion
)

// String returns the name of the kind.
func (k Kind) String() string {
	switch k {
	case KindAsteroid:
		return "asteroid"
	case KindDebris:
		return "debris"
	case KindEnemyShip:
		return "enemy"
	case KindBullet:
		return "bullet"
	case KindPowerUp:
		return "powerup"
	case KindExplosion:
		return "explosion"
	default:
		return "unknown"
	}
}

// Owner identifies who fired a bullet.
type Owner int

const (
	OwnerPlayer Owner = iota
	OwnerEnemy
)

// PowerKind is the effect of a powerup.
type PowerKind int

const (
	PowerHealth PowerKind = iota
	PowerWeapon
)

// String returns the name of the powerup kind.
func (p PowerKind) String() string {
	if p == PowerWeapon {
		return "weapon"
	}
	return "health"
}

// Entity is a tagged variant covering every non-player object in the world.
// Pos is the top-left corner of the bounding box.
type Entity struct {
	ID     uint64
	Kind   Kind
	Pos    core.Vec
	Vel    core.Vec
	W, H   float64
	Radius float64 // Collision radius for circle tests
	Dead   bool

	// Asteroid
	Angle    float64 // Degrees, cosmetic
	Spin     float64 // Degrees per spin step
	NextSpin time.Duration

	// EnemyShip
	FireAt time.Duration

	// Bullet
	Owner Owner
	Dir   int // -1 up, +1 down

	// PowerUp
	Power PowerKind

	// Explosion
	Frame      int
	FrameUntil time.Duration
	Large      bool // Player death explosion
}

// Rect returns the entity's bounding box.
func (e *Entity) Rect() core.Rect {
	return core.NewRect(e.Pos.X, e.Pos.Y, e.W, e.H)
}

// Center returns the center of the bounding box.
func (e *Entity) Center() core.Vec {
	return core.Vec{X: e.Pos.X + e.W/2, Y: e.Pos.Y + e.H/2}
}

// Hostile reports whether the entity can shoot at the player.
func (e *Entity) Hostile() bool {
	return e.Kind == KindEnemyShip
}

// Damage is the health an entity removes from the player on contact.
func (e *Entity) Damage() int {
	return int(math.Round(2 * e.Radius))
}

// move applies one tick of velocity.
func (e *Entity) move() {
	e.Pos = e.Pos.Add(e.Vel)
}

// spin advances the cosmetic rotation every interval of session time.
// The collision radius does not depend on the angle.
func (e *Entity) spin(now, interval time.Duration) {
	if now < e.NextSpin {
		return
	}
	e.Angle = math.Mod(e.Angle+e.Spin+360, 360)
	e.NextSpin = now + interval
}

// advanceFrame steps an explosion animation; it dies after the last frame.
func (e *Entity) advanceFrame(now, frameDur time.Duration, frames int) {
	for !e.Dead && now >= e.FrameUntil {
		e.Frame++
		e.FrameUntil += frameDur
		if e.Frame >= frames {
			e.Dead = true
		}
	}
}

// compact removes dead entities in place, preserving order.
func compact(list []*Entity) []*Entity {
	n := 0
	for _, e := range list {
		if !e.Dead {
			list[n] = e
			n++
		}
	}
	for i := n; i < len(list); i++ {
		list[i] = nil
	}
	return list[:n]
}

// countAlive returns the number of live entities in list.
func countAlive(list []*Entity) int {
	n := 0
	for _, e := range list {
		if !e.Dead {
			n++
		}
	}
	return n
}
