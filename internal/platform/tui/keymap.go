package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/starfall/internal/core"
	"github.com/vovakirdan/starfall/internal/game"
)

// KeyMap defines the key bindings for play and the overlays.
type KeyMap struct {
	Left      key.Binding
	Right     key.Binding
	Fire      key.Binding
	Confirm   key.Binding
	Back      key.Binding
	Backspace key.Binding
	Quit      key.Binding
	ForceQuit key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Fire, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Fire},
		{k.Confirm, k.Back, k.Quit},
	}
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left: key.NewBinding(
			key.WithKeys("left", "a"),
			key.WithHelp("←/a", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d"),
			key.WithHelp("→/d", "right"),
		),
		Fire: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "fire"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "confirm"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "skip"),
		),
		Backspace: key.NewBinding(
			key.WithKeys("backspace"),
			key.WithHelp("⌫", "delete"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
	}
}

// nameEntryHelp is the help shown while typing a name, where q is a letter.
func (k KeyMap) nameEntryHelp() []key.Binding {
	return []key.Binding{k.Confirm, k.Backspace, k.Back, k.ForceQuit}
}

// KeyMapper translates Bubble Tea key messages to game input.
type KeyMapper struct {
	keys KeyMap
}

// NewKeyMapper creates a new key mapper with the given bindings.
func NewKeyMapper(keys KeyMap) *KeyMapper {
	return &KeyMapper{keys: keys}
}

// IsQuit reports whether msg quits in the given phase. During name entry
// only ctrl+c quits so that every letter can be typed.
func (km *KeyMapper) IsQuit(msg tea.KeyMsg, phase game.Phase) bool {
	if phase == game.PhaseHighScoreEntry {
		return key.Matches(msg, km.keys.ForceQuit)
	}
	return key.Matches(msg, km.keys.Quit)
}

// MapKey records a key press. Movement and fire go to held, which keeps them
// active across ticks; everything else is a one-shot event in frame.
func (km *KeyMapper) MapKey(msg tea.KeyMsg, phase game.Phase, frame *core.InputFrame, held *HeldKeys) {
	frame.Set(core.ActionAnyKey)

	if phase == game.PhaseHighScoreEntry {
		switch {
		case key.Matches(msg, km.keys.Confirm):
			frame.Set(core.ActionConfirm)
		case key.Matches(msg, km.keys.Back):
			frame.Set(core.ActionBack)
		case key.Matches(msg, km.keys.Backspace):
			frame.Set(core.ActionBackspace)
		case msg.Type == tea.KeySpace:
			frame.Type(' ')
		case msg.Type == tea.KeyRunes:
			for _, r := range msg.Runes {
				frame.Type(r)
			}
		}
		return
	}

	switch {
	case key.Matches(msg, km.keys.Left):
		held.Press(core.ActionLeft)
	case key.Matches(msg, km.keys.Right):
		held.Press(core.ActionRight)
	case key.Matches(msg, km.keys.Fire):
		held.Press(core.ActionFire)
	case key.Matches(msg, km.keys.Confirm):
		frame.Set(core.ActionConfirm)
	case key.Matches(msg, km.keys.Back):
		frame.Set(core.ActionBack)
	}
}
