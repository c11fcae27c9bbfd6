package core

import "time"

// RuntimeConfig contains configuration passed to the session at initialization.
type RuntimeConfig struct {
	ScreenW  int   // Terminal width in characters
	ScreenH  int   // Terminal height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// Elapsed converts a tick count to simulated time at the configured rate.
// Computed from the tick count rather than summing tick intervals, so that
// 240 ticks at 60 Hz is exactly four seconds.
func (c RuntimeConfig) Elapsed(ticks int64) time.Duration {
	rate := c.TickRate
	if rate <= 0 {
		rate = 60
	}
	return time.Duration(ticks) * time.Second / time.Duration(rate)
}
