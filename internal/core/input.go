package core

import "unicode"

// Action represents a semantic game action, abstracted from physical key presses.
// This allows the simulation to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone      Action = iota
	ActionLeft             // A, Left arrow - move craft left (held)
	ActionRight            // D, Right arrow - move craft right (held)
	ActionFire             // Space - fire weapon (held)
	ActionConfirm          // Enter - commit name, dismiss leaderboard
	ActionBack             // Escape - cancel name entry
	ActionBackspace        // Backspace - delete last rune of the name
	ActionAnyKey           // Set for every key press; restarts from game over
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionFire:
		return "Fire"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionBackspace:
		return "Backspace"
	case ActionAnyKey:
		return "AnyKey"
	default:
		return "Unknown"
	}
}

// InputFrame represents the input state during one simulation tick.
type InputFrame struct {
	// Actions maps action types to whether they were active this frame.
	Actions map[Action]bool

	// Runes holds printable characters typed this frame, in order.
	Runes []rune
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Type appends a typed character. Non-printable runes are dropped.
func (f *InputFrame) Type(r rune) {
	if !unicode.IsPrint(r) {
		return
	}
	f.Runes = append(f.Runes, r)
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.Runes = f.Runes[:0]
}
