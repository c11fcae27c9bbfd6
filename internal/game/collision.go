package game

import (
	"time"

	"github.com/vovakirdan/starfall/internal/config"
	"github.com/vovakirdan/starfall/internal/core"
)

// resolveCollisions runs the collision passes in a fixed order. Entities
// destroyed by an earlier pass are marked dead and skipped by later ones.
func (s *Session) resolveCollisions(now time.Duration, speed float64) {
	s.collidePlayer(now)
	s.collidePowerUps(now)
	s.collideBullets(now, speed)
}

// collidePlayer handles obstacles and hostile bullets touching the player.
// Obstacles destroyed here are not replaced.
func (s *Session) collidePlayer(now time.Duration) {
	p := s.player
	if p.Hidden {
		return
	}
	for _, o := range s.obstacles {
		if o.Dead || !core.CirclesOverlap(p.Center(), p.Radius, o.Center(), o.Radius) {
			continue
		}
		o.Dead = true
		s.explode(o, now)
		if s.damagePlayer(o.Damage(), now) {
			return
		}
	}
	for _, b := range s.bullets {
		if b.Dead || b.Owner != OwnerEnemy || !p.Rect().Intersects(b.Rect()) {
			continue
		}
		b.Dead = true
		if s.damagePlayer(b.Damage(), now) {
			return
		}
	}
}

// damagePlayer subtracts health and reports whether the player lost a life.
func (s *Session) damagePlayer(amount int, now time.Duration) bool {
	p := s.player
	p.Health -= amount
	if p.Health > 0 {
		return false
	}
	p.Health = 0
	s.loseLife(now)
	return true
}

// loseLife blows up the player and hides it for the respawn delay. With no
// lives left the player stays hidden and the blast is remembered so the
// session can end once it has played out.
func (s *Session) loseLife(now time.Duration) {
	p := s.player
	blast := s.spawner.Explosion(p.Center(), p.W*1.5, true, now)
	s.explosions = append(s.explosions, blast)
	s.audio.Play(EffectExplosion)

	p.Lives--
	p.Health = s.cfg.Player.MaxHealth
	p.hide(now+config.Ms(s.cfg.Player.RespawnDelayMS), s.cfg.World.Height)
	if p.Lives == 0 {
		s.deathBlast = blast
	}
	s.log.Debug("life lost", "lives", p.Lives, "score", s.score)
}

// collidePowerUps applies every powerup the player touches.
func (s *Session) collidePowerUps(now time.Duration) {
	p := s.player
	if p.Hidden {
		return
	}
	for _, u := range s.powerups {
		if u.Dead || !p.Rect().Intersects(u.Rect()) {
			continue
		}
		u.Dead = true
		switch u.Power {
		case PowerHealth:
			p.Health = core.Min(p.Health+s.spawner.Heal(), s.cfg.Player.MaxHealth)
		case PowerWeapon:
			p.WeaponLevel = core.Min(p.WeaponLevel+1, s.cfg.Player.MaxWeaponLevel)
			p.WeaponExpiry = now + config.Ms(s.cfg.PowerUps.WeaponDurationMS)
		}
		s.audio.Play(EffectPowerUp)
	}
}

// collideBullets matches player bullets against obstacles. Every struck
// obstacle and every bullet that struck one die together, so an obstacle hit
// by two bullets scores once. Each destroyed obstacle is replaced at once.
func (s *Session) collideBullets(now time.Duration, speed float64) {
	var struck, spent []*Entity
	for _, o := range s.obstacles {
		if o.Dead {
			continue
		}
		r := o.Rect()
		hit := false
		for _, b := range s.bullets {
			if b.Dead || b.Owner != OwnerPlayer || !r.Intersects(b.Rect()) {
				continue
			}
			hit = true
			spent = append(spent, b)
		}
		if hit {
			struck = append(struck, o)
		}
	}
	for _, b := range spent {
		b.Dead = true
	}

	var fresh []*Entity
	for _, o := range struck {
		o.Dead = true
		s.score++
		fresh = append(fresh, s.spawner.Replacement(now, speed))
		if u := s.spawner.MaybePowerUp(o.Center()); u != nil {
			s.powerups = append(s.powerups, u)
		}
		s.explode(o, now)
	}
	s.obstacles = append(s.obstacles, fresh...)
}

// explode spawns a cosmetic explosion the size of e at its center.
func (s *Session) explode(e *Entity, now time.Duration) {
	s.explosions = append(s.explosions, s.spawner.Explosion(e.Center(), e.W, false, now))
	s.audio.Play(EffectExplosion)
}
