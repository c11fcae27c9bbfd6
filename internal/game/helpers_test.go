package game

import (
	"testing"

	"github.com/vovakirdan/starfall/internal/config"
	"github.com/vovakirdan/starfall/internal/core"
	"github.com/vovakirdan/starfall/internal/storage"
)

// memLedger is an in-memory ledger that can be made to fail.
type memLedger struct {
	recs      []storage.Record
	appendErr error
	readErr   error
	reads     int
}

func (m *memLedger) Append(r storage.Record) error {
	if m.appendErr != nil {
		return m.appendErr
	}
	m.recs = append(m.recs, r)
	return nil
}

func (m *memLedger) Records() ([]storage.Record, error) {
	m.reads++
	if m.readErr != nil {
		return nil, m.readErr
	}
	return append([]storage.Record(nil), m.recs...), nil
}

// scriptRoller returns queued values, then zeros.
type scriptRoller struct {
	vals []int
}

func (r *scriptRoller) Intn(n int) int {
	if len(r.vals) == 0 {
		return 0
	}
	v := r.vals[0]
	r.vals = r.vals[1:]
	return v % n
}

func testRuntime(seed int64) core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: seed}
}

func newTestSession(t *testing.T, seed int64) (*Session, *memLedger) {
	t.Helper()
	led := &memLedger{}
	s := New(config.DefaultShooterConfig(), testRuntime(seed), Deps{Ledger: led})
	return s, led
}

// park replaces the obstacle field with one motionless debris far above the
// screen, so the run neither ends nor sees collisions.
func park(s *Session) {
	s.obstacles = []*Entity{{
		ID:     9999,
		Kind:   KindDebris,
		Pos:    core.Vec{X: 0, Y: -1000},
		W:      10,
		H:      10,
		Radius: 4,
	}}
}

// obstacleAt returns an asteroid of the given radius centered on c.
func obstacleAt(c core.Vec, radius float64) *Entity {
	size := radius * 2
	return &Entity{
		Kind:   KindAsteroid,
		Pos:    core.Vec{X: c.X - size/2, Y: c.Y - size/2},
		W:      size,
		H:      size,
		Radius: radius,
	}
}

func idle() core.InputFrame {
	return core.NewInputFrame()
}

func withActions(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

func typed(text string, actions ...core.Action) core.InputFrame {
	in := withActions(actions...)
	for _, r := range text {
		in.Type(r)
	}
	return in
}
