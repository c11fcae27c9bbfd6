package game

import (
	"testing"
	"time"

	"github.com/vovakirdan/starfall/internal/core"
)

func TestEntitySpin(t *testing.T) {
	e := &Entity{Kind: KindAsteroid, Spin: -5, Radius: 10}

	e.spin(0, 50*time.Millisecond)
	if e.Angle != 355 {
		t.Errorf("Angle = %v, expected 355", e.Angle)
	}
	e.spin(10*time.Millisecond, 50*time.Millisecond)
	if e.Angle != 355 {
		t.Errorf("Angle changed before the interval: %v", e.Angle)
	}
	e.spin(50*time.Millisecond, 50*time.Millisecond)
	if e.Angle != 350 {
		t.Errorf("Angle = %v, expected 350", e.Angle)
	}
	if e.Radius != 10 {
		t.Errorf("spin changed the radius to %v", e.Radius)
	}
}

func TestEntityExplosionFrames(t *testing.T) {
	frame := 50 * time.Millisecond
	e := &Entity{Kind: KindExplosion, FrameUntil: frame}

	e.advanceFrame(40*time.Millisecond, frame, 9)
	if e.Frame != 0 {
		t.Fatalf("Frame = %d before the first interval", e.Frame)
	}
	e.advanceFrame(120*time.Millisecond, frame, 9)
	if e.Frame != 2 {
		t.Fatalf("Frame = %d, expected 2 after 120ms", e.Frame)
	}
	e.advanceFrame(449*time.Millisecond, frame, 9)
	if e.Dead {
		t.Fatal("explosion died before its last frame")
	}
	e.advanceFrame(450*time.Millisecond, frame, 9)
	if !e.Dead {
		t.Fatal("explosion should be dead after 9 frames")
	}
}

func TestCompactKeepsOrder(t *testing.T) {
	a := &Entity{ID: 1}
	b := &Entity{ID: 2, Dead: true}
	c := &Entity{ID: 3}

	got := compact([]*Entity{a, b, c})
	if len(got) != 2 || got[0] != a || got[1] != c {
		t.Errorf("compact() = %v, expected [1 3]", got)
	}
}

func TestEntityDamage(t *testing.T) {
	e := obstacleAt(core.Vec{}, 30)
	if e.Damage() != 60 {
		t.Errorf("Damage() = %d, expected 60", e.Damage())
	}
}
