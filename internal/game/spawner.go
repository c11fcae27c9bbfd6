package game

import (
	"time"

	"github.com/vovakirdan/starfall/internal/config"
	"github.com/vovakirdan/starfall/internal/core"
)

// Roller is the source of randomness; *rand.Rand satisfies it.
type Roller interface {
	Intn(n int) int
}

// Spawner creates entities and owns the replacement and drop policies.
// All randomness flows through its rng so that a seed fixes the session.
type Spawner struct {
	rng    Roller
	cfg    config.ShooterConfig
	nextID uint64

	// enemies counts every enemy ship ever spawned in the session.
	enemies int
}

// NewSpawner creates a spawner drawing from rng.
func NewSpawner(rng Roller, cfg config.ShooterConfig) *Spawner {
	return &Spawner{rng: rng, cfg: cfg}
}

// EnemyTally returns how many enemy ships have been spawned. It never decreases.
func (s *Spawner) EnemyTally() int {
	return s.enemies
}

// between returns an int in [lo, hi). An empty range returns lo.
func (s *Spawner) between(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + s.rng.Intn(hi-lo)
}

// roll returns a die result in [1, sides].
func (s *Spawner) roll(sides int) int {
	if sides < 1 {
		return 1
	}
	return 1 + s.rng.Intn(sides)
}

func (s *Spawner) id() uint64 {
	s.nextID++
	return s.nextID
}

// Initial populates the obstacle field for a new session: N asteroids,
// N/3 debris and N/5 enemy ships.
func (s *Spawner) Initial(now time.Duration, speed float64) []*Entity {
	n := s.cfg.Obstacles.Count
	out := make([]*Entity, 0, n+n/3+n/5)
	for range n {
		out = append(out, s.Asteroid(now, speed))
	}
	for range n / 3 {
		out = append(out, s.Debris(now, speed))
	}
	for range n / 5 {
		out = append(out, s.Enemy(now, speed))
	}
	return out
}

// Asteroid creates a spinning asteroid above the screen.
func (s *Spawner) Asteroid(now time.Duration, speed float64) *Entity {
	oc := s.cfg.Obstacles
	size := float64(s.between(oc.AsteroidMinSize, oc.AsteroidMaxSize))
	e := &Entity{
		ID:       s.id(),
		Kind:     KindAsteroid,
		W:        size,
		H:        size,
		Radius:   size * oc.RadiusScale / 2,
		Spin:     float64(s.between(oc.SpinMin, oc.SpinMax)),
		NextSpin: now + config.Ms(oc.SpinIntervalMS),
	}
	s.Respawn(e, now, speed)
	return e
}

// Debris creates a small non-spinning obstacle above the screen.
func (s *Spawner) Debris(now time.Duration, speed float64) *Entity {
	oc := s.cfg.Obstacles
	size := float64(s.between(oc.DebrisMinSize, oc.DebrisMaxSize))
	e := &Entity{
		ID:     s.id(),
		Kind:   KindDebris,
		W:      size,
		H:      size,
		Radius: size * oc.RadiusScale / 2,
	}
	s.Respawn(e, now, speed)
	return e
}

// Enemy creates a hostile ship above the screen with a randomized fire cooldown.
func (s *Spawner) Enemy(now time.Duration, speed float64) *Entity {
	ec := s.cfg.Enemies
	e := &Entity{
		ID:     s.id(),
		Kind:   KindEnemyShip,
		W:      ec.Width,
		H:      ec.Height,
		Radius: ec.Width * s.cfg.Obstacles.RadiusScale / 2,
	}
	s.Respawn(e, now, speed)
	s.enemies++
	return e
}

// Respawn moves an obstacle back above the screen with a fresh position and
// velocity. It is used both for new obstacles and for wrapping.
func (s *Spawner) Respawn(e *Entity, now time.Duration, speed float64) {
	oc := s.cfg.Obstacles
	e.Pos = core.Vec{
		X: float64(s.between(0, int(s.cfg.World.Width-e.W))),
		Y: float64(s.between(oc.SpawnMinY, oc.SpawnMaxY)),
	}
	if e.Kind == KindEnemyShip {
		ec := s.cfg.Enemies
		e.Vel = core.Vec{Y: float64(s.between(ec.MinVY, ec.MaxVY)) * speed}
		e.FireAt = s.NextFire(now)
		return
	}
	e.Vel = core.Vec{
		X: float64(s.between(oc.MinVX, oc.MaxVX)) * speed,
		Y: float64(s.between(oc.MinVY, oc.MaxVY)) * speed,
	}
}

// NextFire returns the time of an enemy's next shot.
func (s *Spawner) NextFire(now time.Duration) time.Duration {
	ec := s.cfg.Enemies
	return now + config.Ms(s.between(ec.FireMinMS, ec.FireMaxMS))
}

// Replacement creates the obstacle that takes the place of one destroyed by
// a bullet: an enemy ship when a d6 roll exceeds the threshold, otherwise an
// asteroid.
func (s *Spawner) Replacement(now time.Duration, speed float64) *Entity {
	if s.roll(s.cfg.Enemies.DieSides) > s.cfg.Enemies.EnemyAbove {
		return s.Enemy(now, speed)
	}
	return s.Asteroid(now, speed)
}

// MaybePowerUp rolls a d100 and, on a hit, drops a powerup centered at pos.
// The kind is chosen with equal odds.
func (s *Spawner) MaybePowerUp(pos core.Vec) *Entity {
	pc := s.cfg.PowerUps
	if s.roll(100) <= pc.DropAbove {
		return nil
	}
	kind := PowerHealth
	if s.rng.Intn(2) == 1 {
		kind = PowerWeapon
	}
	return &Entity{
		ID:    s.id(),
		Kind:  KindPowerUp,
		Pos:   core.Vec{X: pos.X - pc.Size/2, Y: pos.Y - pc.Size/2},
		Vel:   core.Vec{Y: pc.Speed},
		W:     pc.Size,
		H:     pc.Size,
		Power: kind,
	}
}

// Heal returns a random heal amount for a health powerup.
func (s *Spawner) Heal() int {
	return s.between(s.cfg.PowerUps.HealMin, s.cfg.PowerUps.HealMax)
}

// Bullet creates a bullet whose top edge sits at y and which is centered on x.
func (s *Spawner) Bullet(x, y float64, owner Owner) *Entity {
	bc := s.cfg.Bullets
	dir, speed := -1, bc.Speed
	if owner == OwnerEnemy {
		dir, speed = 1, bc.EnemySpeed
	}
	return &Entity{
		ID:     s.id(),
		Kind:   KindBullet,
		Pos:    core.Vec{X: x - bc.Width/2, Y: y},
		Vel:    core.Vec{Y: float64(dir) * speed},
		W:      bc.Width,
		H:      bc.Height,
		Radius: bc.Width / 2,
		Owner:  owner,
		Dir:    dir,
	}
}

// Explosion creates an explosion animation centered at center.
func (s *Spawner) Explosion(center core.Vec, size float64, large bool, now time.Duration) *Entity {
	return &Entity{
		ID:         s.id(),
		Kind:       KindExplosion,
		Pos:        core.Vec{X: center.X - size/2, Y: center.Y - size/2},
		W:          size,
		H:          size,
		Large:      large,
		FrameUntil: now + config.Ms(s.cfg.Explosions.FrameMS),
	}
}
