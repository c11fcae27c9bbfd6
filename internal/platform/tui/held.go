package tui

import (
	"time"

	"github.com/vovakirdan/starfall/internal/core"
)

// defaultHold is how long a key counts as held after its last press.
// Terminals report repeats rather than releases, so holding a key shows up
// as a stream of presses spaced by the keyboard repeat rate.
const defaultHold = 120 * time.Millisecond

// HeldKeys approximates key state from press events. Each press keeps the
// action active for a fixed number of ticks.
type HeldKeys struct {
	ticks  int
	remain map[core.Action]int
}

// NewHeldKeys creates a tracker that holds actions for hold at tickRate.
func NewHeldKeys(hold time.Duration, tickRate int) *HeldKeys {
	if tickRate <= 0 {
		tickRate = 60
	}
	ticks := int(hold * time.Duration(tickRate) / time.Second)
	return &HeldKeys{
		ticks:  core.Max(ticks, 1),
		remain: make(map[core.Action]int),
	}
}

// Press marks an action as held.
func (h *HeldKeys) Press(a core.Action) {
	h.remain[a] = h.ticks
	// Opposite directions cancel so that a quick reversal is not a stall.
	switch a {
	case core.ActionLeft:
		delete(h.remain, core.ActionRight)
	case core.ActionRight:
		delete(h.remain, core.ActionLeft)
	}
}

// Apply sets every held action on frame and ages the holds by one tick.
func (h *HeldKeys) Apply(frame *core.InputFrame) {
	for a, n := range h.remain {
		frame.Set(a)
		if n <= 1 {
			delete(h.remain, a)
		} else {
			h.remain[a] = n - 1
		}
	}
}

// Release drops every hold.
func (h *HeldKeys) Release() {
	clear(h.remain)
}
