package audio

import (
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/starfall/internal/game"
)

const sampleRate = beep.SampleRate(44100)

// Player mixes effects and the background track onto the speaker.
type Player struct {
	mu     sync.Mutex
	mixer  *beep.Mixer
	music  *beep.Ctrl
	musicV float64
	log    *log.Logger
}

// New opens the speaker and returns an audio sink for the game. When mute is
// set, or no audio device is available, it returns a silent sink instead.
// The returned function releases the device.
func New(mute bool, logger *log.Logger) (game.Audio, func()) {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if mute {
		return game.NopAudio{}, func() {}
	}
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		logger.Warn("audio disabled", "err", err)
		return game.NopAudio{}, func() {}
	}

	p := &Player{mixer: &beep.Mixer{}, musicV: 0.08, log: logger}
	speaker.Play(p.mixer)
	logger.Debug("audio ready", "rate", int(sampleRate))
	return p, p.Close
}

// Play starts a one-shot effect.
func (p *Player) Play(e game.Effect) {
	s := Effect(e, sampleRate)
	if s == nil {
		p.log.Warn("unknown effect", "effect", e)
		return
	}
	speaker.Lock()
	p.mixer.Add(s)
	speaker.Unlock()
}

// Loop starts a background track. Only one track plays at a time; looping
// the track that is already playing does nothing.
func (p *Player) Loop(t game.Track) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.music != nil {
		speaker.Lock()
		p.music.Paused = false
		speaker.Unlock()
		return
	}
	switch t {
	case game.TrackBackground:
		p.music = &beep.Ctrl{Streamer: withVolume(NewBassLine(sampleRate), p.musicV)}
	default:
		p.log.Warn("unknown track", "track", t)
		return
	}
	speaker.Lock()
	p.mixer.Add(p.music)
	speaker.Unlock()
}

// Close silences everything and releases the speaker.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	speaker.Clear()
	speaker.Close()
	p.music = nil
}
