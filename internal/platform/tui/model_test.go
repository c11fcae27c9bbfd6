package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/starfall/internal/config"
	"github.com/vovakirdan/starfall/internal/core"
	"github.com/vovakirdan/starfall/internal/game"
	"github.com/vovakirdan/starfall/internal/storage"
)

func newTestModel(t *testing.T) *Model {
	t.Helper()
	ledger, err := storage.OpenFile(filepath.Join(t.TempDir(), "scores.txt"))
	if err != nil {
		t.Fatalf("open ledger: %v", err)
	}
	rt := core.RuntimeConfig{ScreenW: 60, ScreenH: 30, TickRate: 60, Seed: 7}
	s := game.New(config.DefaultShooterConfig(), rt, game.Deps{Ledger: ledger})
	return NewModel(s, rt, nil)
}

func isQuitCmd(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func TestModelQuit(t *testing.T) {
	m := newTestModel(t)
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	if !isQuitCmd(cmd) {
		t.Fatal("ctrl+c should quit")
	}
	if m.View() != "" {
		t.Error("view should be empty after quit")
	}
}

func TestModelTickAdvancesSession(t *testing.T) {
	m := newTestModel(t)
	for range 60 {
		_, cmd := m.Update(TickMsg{})
		if cmd == nil {
			t.Fatal("tick should schedule the next tick")
		}
	}
	if got := m.session.Elapsed().Seconds(); got != 1 {
		t.Errorf("elapsed = %vs after 60 ticks, expected 1s", got)
	}
}

func TestModelHeldFireShoots(t *testing.T) {
	m := newTestModel(t)
	m.Update(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	m.Update(TickMsg{})

	if m.frame.Count(game.KindBullet) == 0 {
		t.Error("fire press should spawn a bullet on the next tick")
	}
}

func TestModelViewShowsHUD(t *testing.T) {
	m := newTestModel(t)
	m.Update(TickMsg{})

	if out := m.View(); !strings.Contains(out, "SCORE 0") {
		t.Errorf("view missing HUD:\n%s", out)
	}
}

func TestModelResize(t *testing.T) {
	m := newTestModel(t)
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})

	if m.screen.Width() != 100 || m.screen.Height() != 39 {
		t.Errorf("screen = %dx%d, expected 100x39", m.screen.Width(), m.screen.Height())
	}
}
