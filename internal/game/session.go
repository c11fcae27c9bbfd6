package game

import (
	"errors"
	"fmt"
	"io"
	"math/rand"
	"strings"
	"time"
	"unicode"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/starfall/internal/config"
	"github.com/vovakirdan/starfall/internal/core"
	"github.com/vovakirdan/starfall/internal/storage"
)

// Phase is the session state.
type Phase int

const (
	PhasePlaying Phase = iota
	PhaseHighScoreEntry
	PhaseLeaderboard
	PhaseGameOver
)

// String returns the name of the phase.
func (p Phase) String() string {
	switch p {
	case PhasePlaying:
		return "playing"
	case PhaseHighScoreEntry:
		return "highscore-entry"
	case PhaseLeaderboard:
		return "leaderboard"
	case PhaseGameOver:
		return "game-over"
	default:
		return "unknown"
	}
}

// Prompt selects the message shown during name entry.
type Prompt int

const (
	PromptNone Prompt = iota
	PromptNewRecord
	PromptTiedRecord
	PromptBelowRecord
	PromptEasterEgg
)

// promptFor compares a final score with the best persisted score.
// The easter egg score wins over every comparison.
func promptFor(score, best, easterEgg int) Prompt {
	switch {
	case score == easterEgg:
		return PromptEasterEgg
	case score > best:
		return PromptNewRecord
	case score == best:
		return PromptTiedRecord
	default:
		return PromptBelowRecord
	}
}

//go:generate go tool mockgen -destination=mocks/ledger_mock.go -package=mocks github.com/vovakirdan/starfall/internal/storage Ledger

// Deps are the collaborators of a session.
type Deps struct {
	Ledger storage.Ledger // Required
	Audio  Audio          // Defaults to NopAudio
	Logger *log.Logger    // Defaults to a discarding logger
}

// StepResult reports the outcome of one tick.
type StepResult struct {
	Phase Phase
	// Err is set on the tick a name commit failed to persist.
	Err error
}

// Session owns the player, every entity collection and the phase.
// It is not safe for concurrent use; one goroutine drives Step and Frame.
type Session struct {
	cfg        config.ShooterConfig
	runtime    core.RuntimeConfig
	difficulty *config.DifficultyManager

	ledger  storage.Ledger
	audio   Audio
	baseLog *log.Logger
	log     *log.Logger
	runID   string

	seed    int64
	rng     *rand.Rand
	spawner *Spawner

	phase      Phase
	simTicks   int64 // Advances only while playing
	phaseTicks int64 // Ticks since the current phase was entered

	score      int
	player     *Player
	obstacles  []*Entity
	bullets    []*Entity
	powerups   []*Entity
	explosions []*Entity
	deathBlast *Entity // Set when the last life is lost

	// Name entry
	name    []rune
	prompt  Prompt
	best    storage.Record
	hasBest bool

	// Leaderboard
	board     []storage.Record
	commitErr error
	boardErr  error
}

// New creates a session and starts the first run.
func New(cfg config.ShooterConfig, rt core.RuntimeConfig, deps Deps) *Session {
	if deps.Audio == nil {
		deps.Audio = NopAudio{}
	}
	if deps.Logger == nil {
		deps.Logger = log.New(io.Discard)
	}
	s := &Session{
		cfg:        cfg,
		runtime:    rt,
		difficulty: config.NewDifficultyManager(cfg.Difficulty),
		ledger:     deps.Ledger,
		audio:      deps.Audio,
		baseLog:    deps.Logger,
		seed:       rt.Seed,
	}
	s.Reset()
	return s
}

// Reset rebuilds the session from scratch. The first run uses the configured
// seed; later runs draw their seed from the previous run's generator.
func (s *Session) Reset() {
	if s.rng != nil {
		s.seed = s.rng.Int63()
	}
	s.rng = rand.New(rand.NewSource(s.seed)) //#nosec G404 -- gameplay randomness
	s.spawner = NewSpawner(s.rng, s.cfg)
	s.runID = uuid.NewString()
	s.log = s.baseLog.With("run", s.runID)

	s.phase = PhasePlaying
	s.simTicks = 0
	s.phaseTicks = 0
	s.score = 0
	s.player = newPlayer(s.cfg.Player, s.cfg.World)
	s.obstacles = s.spawner.Initial(0, s.speedScale())
	s.bullets = nil
	s.powerups = nil
	s.explosions = nil
	s.deathBlast = nil
	s.name = s.name[:0]
	s.prompt = PromptNone
	s.best, s.hasBest = storage.Record{}, false
	s.board = nil
	s.commitErr = nil
	s.boardErr = nil

	s.audio.Loop(TrackBackground)
	s.log.Debug("session started", "seed", s.seed, "obstacles", len(s.obstacles))
}

// Step advances the session by one tick.
func (s *Session) Step(in core.InputFrame) StepResult {
	s.phaseTicks++

	var err error
	switch s.phase {
	case PhasePlaying:
		s.stepPlaying(in)
	case PhaseHighScoreEntry:
		err = s.stepNameEntry(in)
	case PhaseLeaderboard:
		if in.Has(core.ActionConfirm) {
			s.setPhase(PhaseGameOver)
		}
	case PhaseGameOver:
		if s.CanRestart() && pressed(in) {
			s.Reset()
		}
	}
	return StepResult{Phase: s.phase, Err: err}
}

// pressed reports whether the frame carries any key press.
func pressed(in core.InputFrame) bool {
	if len(in.Runes) > 0 {
		return true
	}
	for _, on := range in.Actions {
		if on {
			return true
		}
	}
	return false
}

// now is the simulated session time.
func (s *Session) now() time.Duration {
	return s.runtime.Elapsed(s.simTicks)
}

func (s *Session) speedScale() float64 {
	return s.difficulty.SpeedScale(s.score, s.simTicks)
}

func (s *Session) setPhase(p Phase) {
	s.log.Debug("phase", "from", s.phase, "to", p, "score", s.score)
	s.phase = p
	s.phaseTicks = 0
}

func (s *Session) stepPlaying(in core.InputFrame) {
	s.simTicks++
	now := s.now()
	speed := s.speedScale()
	p := s.player

	// Input
	if p.Hidden && p.Lives > 0 && now >= p.HiddenUntil {
		p.Hidden = false
		p.Pos = spawnPosition(s.cfg.Player, s.cfg.World)
	}
	if !p.Hidden {
		p.steer(in, s.cfg.Player.Speed, s.cfg.World.Width)
		if in.Has(core.ActionFire) && now >= p.NextShot {
			s.fire(now)
		}
	}

	// Update
	s.decayWeapon(now)
	s.updateObstacles(now, speed)
	s.updateBullets()
	s.updatePowerUps()
	s.updateExplosions(now)

	// Collisions
	s.resolveCollisions(now, speed)
	s.obstacles = compact(s.obstacles)
	s.bullets = compact(s.bullets)
	s.powerups = compact(s.powerups)
	s.explosions = compact(s.explosions)

	// Phase
	switch {
	case len(s.obstacles) == 0:
		s.enterHighScore()
	case p.Lives == 0 && s.deathBlast != nil && s.deathBlast.Dead:
		s.enterHighScore()
	}
}

func (s *Session) fire(now time.Duration) {
	p := s.player
	n := p.WeaponLevel
	for i := 1; i <= n; i++ {
		x := p.Pos.X + p.W*float64(i)/float64(n+1)
		s.bullets = append(s.bullets, s.spawner.Bullet(x, p.Pos.Y, OwnerPlayer))
	}
	p.NextShot = now + config.Ms(s.cfg.Player.ShootDelayMS)
	s.audio.Play(EffectShoot)
}

// decayWeapon drops one weapon level each time the upgrade expires.
func (s *Session) decayWeapon(now time.Duration) {
	p := s.player
	if p.WeaponLevel >= 2 && now >= p.WeaponExpiry {
		p.WeaponLevel--
		p.WeaponExpiry = now + config.Ms(s.cfg.PowerUps.WeaponDurationMS)
	}
}

func (s *Session) updateObstacles(now time.Duration, speed float64) {
	worldH := s.cfg.World.Height
	spinEvery := config.Ms(s.cfg.Obstacles.SpinIntervalMS)
	for _, o := range s.obstacles {
		if o.Dead {
			continue
		}
		o.move()
		if o.Kind == KindAsteroid {
			o.spin(now, spinEvery)
		}
		if o.Pos.Y > worldH+o.H {
			s.spawner.Respawn(o, now, speed)
			continue
		}
		if o.Hostile() && now >= o.FireAt && o.Pos.Y >= 0 && o.Pos.Y < worldH {
			c := o.Center()
			s.bullets = append(s.bullets, s.spawner.Bullet(c.X, o.Pos.Y+o.H, OwnerEnemy))
			o.FireAt = s.spawner.NextFire(now)
			s.audio.Play(EffectEnemyFire)
		}
	}
}

func (s *Session) updateBullets() {
	worldH := s.cfg.World.Height
	for _, b := range s.bullets {
		if b.Dead {
			continue
		}
		b.move()
		if (b.Dir < 0 && b.Pos.Y+b.H < 0) || (b.Dir > 0 && b.Pos.Y > worldH) {
			b.Dead = true
		}
	}
}

func (s *Session) updatePowerUps() {
	for _, u := range s.powerups {
		if u.Dead {
			continue
		}
		u.move()
		if u.Pos.Y > s.cfg.World.Height {
			u.Dead = true
		}
	}
}

func (s *Session) updateExplosions(now time.Duration) {
	frameDur := config.Ms(s.cfg.Explosions.FrameMS)
	for _, e := range s.explosions {
		e.advanceFrame(now, frameDur, s.cfg.Explosions.Frames)
	}
}

// enterHighScore freezes the simulation and prepares name entry.
func (s *Session) enterHighScore() {
	records, err := s.ledger.Records()
	if err != nil {
		s.log.Warn("could not read high scores", "err", err)
	}
	s.best, s.hasBest = storage.HighScore(records)
	s.prompt = promptFor(s.score, s.best.Score, s.cfg.HighScore.EasterEggScore)
	s.name = s.name[:0]
	s.setPhase(PhaseHighScoreEntry)
}

func (s *Session) stepNameEntry(in core.InputFrame) error {
	if in.Has(core.ActionBack) {
		s.log.Debug("name entry cancelled")
		s.setPhase(PhaseGameOver)
		return nil
	}
	if in.Has(core.ActionBackspace) && len(s.name) > 0 {
		s.name = s.name[:len(s.name)-1]
	}
	for _, r := range in.Runes {
		if !unicode.IsPrint(r) || r == ',' {
			continue
		}
		if len(s.name) >= s.cfg.HighScore.NameMaxLen {
			break
		}
		s.name = append(s.name, r)
	}
	if in.Has(core.ActionConfirm) {
		return s.commit()
	}
	return nil
}

// commit persists the entered name and shows the leaderboard. An empty name
// skips straight to game over without touching the ledger.
func (s *Session) commit() error {
	name := strings.TrimSpace(string(s.name))
	if name == "" {
		s.setPhase(PhaseGameOver)
		return nil
	}

	var err error
	if appendErr := s.ledger.Append(storage.Record{Name: name, Score: s.score}); appendErr != nil {
		err = fmt.Errorf("game: save score: %w", appendErr)
		s.log.Error("could not save score", "name", name, "score", s.score, "err", appendErr)
	} else {
		s.log.Info("score saved", "name", name, "score", s.score)
	}
	s.commitErr = err

	s.board, s.boardErr = storage.Top(s.ledger, s.cfg.HighScore.LeaderboardSize)
	if s.boardErr != nil {
		s.log.Warn("could not read leaderboard", "err", s.boardErr)
	}
	s.setPhase(PhaseLeaderboard)
	return err
}

// CanRestart reports whether game over has outlasted its input lockout.
func (s *Session) CanRestart() bool {
	return s.phase == PhaseGameOver &&
		s.runtime.Elapsed(s.phaseTicks) >= config.Ms(s.cfg.HighScore.GameOverLockoutMS)
}

// Phase returns the current phase.
func (s *Session) Phase() Phase { return s.phase }

// Score returns the current score.
func (s *Session) Score() int { return s.score }

// Seed returns the seed of the current run.
func (s *Session) Seed() int64 { return s.seed }

// RunID identifies the current run in logs.
func (s *Session) RunID() string { return s.runID }

// Elapsed returns the simulated time of the current run.
func (s *Session) Elapsed() time.Duration { return s.now() }

// EnemyTally returns the number of enemy ships spawned this run.
func (s *Session) EnemyTally() int { return s.spawner.EnemyTally() }

// Err returns the errors to show on the leaderboard, if any.
func (s *Session) Err() error {
	return errors.Join(s.commitErr, s.boardErr)
}
