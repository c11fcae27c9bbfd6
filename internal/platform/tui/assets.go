package tui

import (
	"github.com/vovakirdan/starfall/internal/core"
	"github.com/vovakirdan/starfall/internal/game"
)

// Glyph is how one cell of a sprite is drawn.
type Glyph struct {
	Rune  rune
	Color core.Color
}

// Assets maps entity kinds to glyphs. It is built once and passed to the
// renderer explicitly.
type Assets struct {
	Player       Glyph
	PlayerNose   Glyph
	Asteroid     []Glyph // Indexed by rotation quadrant
	Debris       Glyph
	Enemy        Glyph
	PlayerBullet Glyph
	EnemyBullet  Glyph
	Health       Glyph
	Weapon       Glyph
	Explosion    []Glyph // Animation sequence
	Large        []Glyph // Player death sequence
	Star         Glyph
}

// DefaultAssets returns the built-in glyph set.
func DefaultAssets() Assets {
	return Assets{
		Player:     Glyph{'█', core.ColorBrightCyan},
		PlayerNose: Glyph{'▲', core.ColorBrightWhite},
		Asteroid: []Glyph{
			{'◐', core.ColorGray},
			{'◓', core.ColorGray},
			{'◑', core.ColorGray},
			{'◒', core.ColorGray},
		},
		Debris:       Glyph{'▪', core.ColorWhite},
		Enemy:        Glyph{'▼', core.ColorBrightRed},
		PlayerBullet: Glyph{'│', core.ColorBrightYellow},
		EnemyBullet:  Glyph{'╎', core.ColorRed},
		Health:       Glyph{'✚', core.ColorBrightGreen},
		Weapon:       Glyph{'⚡', core.ColorBrightMagenta},
		Explosion: []Glyph{
			{'·', core.ColorBrightYellow},
			{'*', core.ColorBrightYellow},
			{'✶', core.ColorYellow},
			{'✷', core.ColorOrange},
			{'✸', core.ColorOrange},
			{'✹', core.ColorRed},
			{'░', core.ColorGray},
		},
		Large: []Glyph{
			{'*', core.ColorBrightWhite},
			{'✺', core.ColorBrightYellow},
			{'█', core.ColorOrange},
			{'▓', core.ColorOrange},
			{'▒', core.ColorRed},
			{'░', core.ColorGray},
		},
		Star: Glyph{'.', core.ColorGray},
	}
}

// For returns the glyph for a sprite. frames is the length of an explosion.
func (a Assets) For(sp game.Sprite, frames int) Glyph {
	switch sp.Kind {
	case game.KindAsteroid:
		q := int(sp.Angle/90) % len(a.Asteroid)
		if q < 0 {
			q += len(a.Asteroid)
		}
		return a.Asteroid[q]
	case game.KindDebris:
		return a.Debris
	case game.KindEnemyShip:
		return a.Enemy
	case game.KindBullet:
		if sp.Owner == game.OwnerEnemy {
			return a.EnemyBullet
		}
		return a.PlayerBullet
	case game.KindPowerUp:
		if sp.Power == game.PowerWeapon {
			return a.Weapon
		}
		return a.Health
	case game.KindExplosion:
		seq := a.Explosion
		if sp.Large {
			seq = a.Large
		}
		return seq[sequenceIndex(sp.Frame, frames, len(seq))]
	}
	return Glyph{'?', core.ColorDefault}
}

// sequenceIndex maps frame out of frames onto a sequence of n glyphs.
func sequenceIndex(frame, frames, n int) int {
	if frames <= 0 {
		return 0
	}
	return core.Clamp(frame*n/frames, 0, n-1)
}
