package game

import (
	"testing"
	"time"

	"github.com/vovakirdan/starfall/internal/core"
)

func TestCollisionObstacleDamage(t *testing.T) {
	// Health 100 against a radius 30 obstacle leaves 40 and keeps every life.
	s, _ := newTestSession(t, 1)
	o := obstacleAt(s.player.Center(), 30)
	s.obstacles = []*Entity{o}

	s.collidePlayer(0)

	p := s.player
	if p.Health != 40 {
		t.Errorf("Health = %d, expected 40", p.Health)
	}
	if p.Lives != 3 || p.Hidden {
		t.Errorf("Lives = %d, Hidden = %v; expected 3 lives and visible", p.Lives, p.Hidden)
	}
	if !o.Dead {
		t.Error("obstacle should be destroyed")
	}
	if len(s.explosions) != 1 {
		t.Errorf("explosions = %d, expected 1", len(s.explosions))
	}
	if s.score != 0 {
		t.Errorf("score = %d, player collisions must not score", s.score)
	}
}

func TestCollisionLifeLost(t *testing.T) {
	// Health 30 against a radius 20 obstacle drops to zero and costs a life.
	s, _ := newTestSession(t, 1)
	s.player.Health = 30
	s.obstacles = []*Entity{obstacleAt(s.player.Center(), 20)}

	s.collidePlayer(0)

	p := s.player
	if p.Lives != 2 {
		t.Errorf("Lives = %d, expected 2", p.Lives)
	}
	if p.Health != 100 {
		t.Errorf("Health = %d, expected reset to 100", p.Health)
	}
	if !p.Hidden || p.HiddenUntil != time.Second {
		t.Errorf("Hidden = %v until %v, expected hidden until 1s", p.Hidden, p.HiddenUntil)
	}
	if s.deathBlast != nil {
		t.Error("deathBlast should only be set on the last life")
	}
}

func TestCollisionHiddenPlayerIgnoresFurtherHits(t *testing.T) {
	s, _ := newTestSession(t, 1)
	s.player.Health = 30
	first := obstacleAt(s.player.Center(), 20)
	second := obstacleAt(s.player.Center(), 20)
	s.obstacles = []*Entity{first, second}

	s.collidePlayer(0)

	if s.player.Lives != 2 || s.player.Health != 100 {
		t.Errorf("Lives = %d, Health = %d; expected exactly one life lost", s.player.Lives, s.player.Health)
	}
	if second.Dead {
		t.Error("second obstacle should survive once the player is hidden")
	}

	s.collidePlayer(0)
	if s.player.Lives != 2 {
		t.Errorf("hidden player lost another life: %d", s.player.Lives)
	}
}

func TestCollisionRespawnAfterDelay(t *testing.T) {
	s, _ := newTestSession(t, 1)
	s.player.Health = 1
	s.obstacles = []*Entity{obstacleAt(s.player.Center(), 20)}
	s.collidePlayer(0)
	park(s)

	for range 59 {
		s.Step(idle())
	}
	if !s.player.Hidden {
		t.Fatal("player reappeared before the respawn delay")
	}
	s.Step(idle())
	if s.player.Hidden {
		t.Fatal("player should reappear after one second")
	}
	if s.player.Pos != spawnPosition(s.cfg.Player, s.cfg.World) {
		t.Errorf("player respawned at %+v", s.player.Pos)
	}
}

func TestCollisionHostileBullet(t *testing.T) {
	s, _ := newTestSession(t, 1)
	c := s.player.Center()
	hostile := s.spawner.Bullet(c.X, c.Y, OwnerEnemy)
	friendly := s.spawner.Bullet(c.X, c.Y, OwnerPlayer)
	s.bullets = []*Entity{friendly, hostile}

	s.collidePlayer(0)

	if s.player.Health != 90 {
		t.Errorf("Health = %d, expected 90 after a hostile bullet", s.player.Health)
	}
	if !hostile.Dead || friendly.Dead {
		t.Errorf("hostile dead = %v, friendly dead = %v", hostile.Dead, friendly.Dead)
	}
}

func TestCollisionPowerUps(t *testing.T) {
	tests := []struct {
		name        string
		power       PowerKind
		health      int
		level       int
		wantHealthG int // Inclusive lower bound
		wantHealthL int // Exclusive upper bound
		wantLevel   int
	}{
		{"heal", PowerHealth, 50, 1, 60, 80, 1},
		{"heal capped", PowerHealth, 95, 1, 100, 101, 1},
		{"weapon up", PowerWeapon, 100, 1, 100, 101, 2},
		{"weapon capped", PowerWeapon, 100, 3, 100, 101, 3},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s, _ := newTestSession(t, 1)
			p := s.player
			p.Health = tc.health
			p.WeaponLevel = tc.level
			c := p.Center()
			s.powerups = []*Entity{{
				Kind:  KindPowerUp,
				Pos:   core.Vec{X: c.X - 10, Y: c.Y - 10},
				W:     20,
				H:     20,
				Power: tc.power,
			}}

			s.collidePowerUps(time.Second)

			if p.Health < tc.wantHealthG || p.Health >= tc.wantHealthL {
				t.Errorf("Health = %d, expected [%d,%d)", p.Health, tc.wantHealthG, tc.wantHealthL)
			}
			if p.WeaponLevel != tc.wantLevel {
				t.Errorf("WeaponLevel = %d, expected %d", p.WeaponLevel, tc.wantLevel)
			}
			if tc.power == PowerWeapon && p.WeaponExpiry != 5*time.Second {
				t.Errorf("WeaponExpiry = %v, expected 5s", p.WeaponExpiry)
			}
			if !s.powerups[0].Dead {
				t.Error("powerup should be consumed")
			}
		})
	}
}

func TestCollisionBulletKillReplaces(t *testing.T) {
	// A die showing 5 replaces the destroyed asteroid with an enemy ship.
	s, _ := newTestSession(t, 1)
	s.spawner = NewSpawner(&scriptRoller{vals: []int{4}}, s.cfg)
	target := obstacleAt(core.Vec{X: 100, Y: 100}, 15)
	s.obstacles = []*Entity{target}
	s.bullets = []*Entity{s.spawner.Bullet(100, 95, OwnerPlayer)}
	s.score = 7

	s.collideBullets(0, 1)

	if s.score != 8 {
		t.Errorf("score = %d, expected 8", s.score)
	}
	if !target.Dead || !s.bullets[0].Dead {
		t.Error("asteroid and bullet should both be destroyed")
	}
	if len(s.obstacles) != 2 || s.obstacles[1].Kind != KindEnemyShip {
		t.Fatalf("obstacles = %d, expected the enemy replacement appended", len(s.obstacles))
	}
	if countAlive(s.obstacles) != 1 {
		t.Errorf("live obstacles = %d, expected population conserved", countAlive(s.obstacles))
	}
	if len(s.powerups) != 0 {
		t.Error("a d100 roll of 1 must not drop a powerup")
	}
	if s.spawner.EnemyTally() != 1 {
		t.Errorf("EnemyTally() = %d, expected 1", s.spawner.EnemyTally())
	}
}

func TestCollisionTwoBulletsScoreOnce(t *testing.T) {
	s, _ := newTestSession(t, 1)
	s.spawner = NewSpawner(&scriptRoller{}, s.cfg)
	target := obstacleAt(core.Vec{X: 100, Y: 100}, 15)
	b1 := s.spawner.Bullet(95, 95, OwnerPlayer)
	b2 := s.spawner.Bullet(105, 95, OwnerPlayer)
	miss := s.spawner.Bullet(300, 95, OwnerPlayer)
	s.obstacles = []*Entity{target}
	s.bullets = []*Entity{b1, b2, miss}

	s.collideBullets(0, 1)

	if s.score != 1 {
		t.Errorf("score = %d, expected 1", s.score)
	}
	if !b1.Dead || !b2.Dead || miss.Dead {
		t.Errorf("dead = %v %v %v, expected true true false", b1.Dead, b2.Dead, miss.Dead)
	}
	if countAlive(s.obstacles) != 1 {
		t.Errorf("live obstacles = %d, expected one replacement", countAlive(s.obstacles))
	}
}

func TestCollisionEnemyBulletsDoNotScore(t *testing.T) {
	s, _ := newTestSession(t, 1)
	target := obstacleAt(core.Vec{X: 100, Y: 100}, 15)
	s.obstacles = []*Entity{target}
	s.bullets = []*Entity{s.spawner.Bullet(100, 95, OwnerEnemy)}

	s.collideBullets(0, 1)

	if target.Dead || s.score != 0 {
		t.Error("hostile bullets must pass through obstacles")
	}
}

func TestCollisionSkipsObstaclesDestroyedEarlier(t *testing.T) {
	// An obstacle that hit the player this tick cannot also be shot.
	s, _ := newTestSession(t, 1)
	o := obstacleAt(s.player.Center(), 10)
	s.obstacles = []*Entity{o}
	c := o.Center()
	s.bullets = []*Entity{s.spawner.Bullet(c.X, c.Y-5, OwnerPlayer)}

	s.resolveCollisions(0, 1)

	if s.score != 0 {
		t.Errorf("score = %d, expected the player pass to claim the obstacle", s.score)
	}
	if s.bullets[0].Dead {
		t.Error("bullet should survive when its target was already destroyed")
	}
}
