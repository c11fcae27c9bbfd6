package game

//go:generate go tool mockgen -source=audio.go -destination=mocks/audio_mock.go -package=mocks

// Effect is a one-shot sound.
type Effect int

const (
	EffectShoot Effect = iota
	EffectExplosion
	EffectEnemyFire
	EffectPowerUp
)

// String returns the name of the effect.
func (e Effect) String() string {
	switch e {
	case EffectShoot:
		return "shoot"
	case EffectExplosion:
		return "explosion"
	case EffectEnemyFire:
		return "enemy-fire"
	case EffectPowerUp:
		return "powerup"
	default:
		return "unknown"
	}
}

// Track is a looping background track.
type Track int

const (
	TrackBackground Track = iota
)

// Audio plays sounds on behalf of the session. Implementations must not block
// and must swallow their own errors.
type Audio interface {
	Play(effect Effect)
	Loop(track Track)
}

// NopAudio discards every sound.
type NopAudio struct{}

func (NopAudio) Play(Effect) {}
func (NopAudio) Loop(Track)  {}
