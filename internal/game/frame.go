package game

import (
	"math"

	"github.com/vovakirdan/starfall/internal/storage"
)

// Sprite is the render view of one entity.
type Sprite struct {
	ID    uint64
	Kind  Kind
	X, Y  float64
	W, H  float64
	Angle float64
	Frame int
	Owner Owner
	Power PowerKind
	Large bool
}

// HUD holds the scalars drawn over the playfield.
type HUD struct {
	Score          int
	Lives          int
	Health         int
	MaxHealth      int
	WeaponLevel    int
	MaxWeaponLevel int
}

// Frame is a read-only snapshot of the session for rendering. It shares no
// memory with the session.
type Frame struct {
	Phase         Phase
	Width, Height float64

	// Sprites are in draw order: obstacles, powerups, bullets, explosions.
	Sprites         []Sprite
	Player          Sprite
	PlayerVisible   bool
	ExplosionFrames int

	HUD HUD

	// Name entry
	Prompt       Prompt
	Name         string
	NameMax      int
	HighScore    storage.Record
	HasHighScore bool

	// Leaderboard and game over
	Leaderboard []storage.Record
	Err         error
	CanRestart  bool
}

// Frame builds the render snapshot for the current tick.
func (s *Session) Frame() Frame {
	p := s.player
	f := Frame{
		Phase:  s.phase,
		Width:  s.cfg.World.Width,
		Height: s.cfg.World.Height,
		Player: Sprite{
			X: p.Pos.X, Y: p.Pos.Y, W: p.W, H: p.H,
		},
		PlayerVisible:   !p.Hidden,
		ExplosionFrames: s.cfg.Explosions.Frames,
		HUD: HUD{
			Score:          s.score,
			Lives:          p.Lives,
			Health:         p.Health,
			MaxHealth:      s.cfg.Player.MaxHealth,
			WeaponLevel:    p.WeaponLevel,
			MaxWeaponLevel: s.cfg.Player.MaxWeaponLevel,
		},
		Prompt:       s.prompt,
		Name:         string(s.name),
		NameMax:      s.cfg.HighScore.NameMaxLen,
		HighScore:    s.best,
		HasHighScore: s.hasBest,
		Err:          s.Err(),
		CanRestart:   s.CanRestart(),
	}
	if len(s.board) > 0 {
		f.Leaderboard = append([]storage.Record(nil), s.board...)
	}

	n := len(s.obstacles) + len(s.powerups) + len(s.bullets) + len(s.explosions)
	f.Sprites = make([]Sprite, 0, n)
	for _, list := range [][]*Entity{s.obstacles, s.powerups, s.bullets, s.explosions} {
		for _, e := range list {
			if e.Dead {
				continue
			}
			f.Sprites = append(f.Sprites, Sprite{
				ID:    e.ID,
				Kind:  e.Kind,
				X:     e.Pos.X,
				Y:     e.Pos.Y,
				W:     e.W,
				H:     e.H,
				Angle: e.Angle,
				Frame: e.Frame,
				Owner: e.Owner,
				Power: e.Power,
				Large: e.Large,
			})
		}
	}
	return f
}

// Count returns the number of sprites of kind k.
func (f Frame) Count(k Kind) int {
	n := 0
	for _, sp := range f.Sprites {
		if sp.Kind == k {
			n++
		}
	}
	return n
}

// Obstacles returns the number of live obstacles of every variant.
func (f Frame) Obstacles() int {
	return f.Count(KindAsteroid) + f.Count(KindDebris) + f.Count(KindEnemyShip)
}

// Hash returns a simple hash of the frame for determinism testing.
func (f Frame) Hash() uint64 {
	h := uint64(f.Phase)
	h = h*31 + uint64(f.HUD.Score)       //#nosec G115 -- hash computation
	h = h*31 + uint64(f.HUD.Lives)       //#nosec G115 -- hash computation
	h = h*31 + uint64(f.HUD.Health)      //#nosec G115 -- hash computation
	h = h*31 + uint64(f.HUD.WeaponLevel) //#nosec G115 -- hash computation
	h = h*31 + math.Float64bits(f.Player.X)
	h = h*31 + math.Float64bits(f.Player.Y)
	for _, sp := range f.Sprites {
		h = h*31 + sp.ID
		h = h*31 + uint64(sp.Kind) //#nosec G115 -- hash computation
		h = h*31 + math.Float64bits(sp.X)
		h = h*31 + math.Float64bits(sp.Y)
		h = h*31 + math.Float64bits(sp.Angle)
		h = h*31 + uint64(sp.Frame) //#nosec G115 -- hash computation
	}
	return h
}
