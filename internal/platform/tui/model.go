package tui

import (
	"io"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/starfall/internal/core"
	"github.com/vovakirdan/starfall/internal/game"
)

// Model is the Bubble Tea model driving one session.
type Model struct {
	session  *game.Session
	screen   *core.Screen
	config   core.RuntimeConfig
	renderer *Renderer
	board    *Leaderboard
	theme    Theme
	keys     KeyMap
	mapper   *KeyMapper
	help     help.Model
	held     *HeldKeys
	log      *log.Logger

	inputFrame core.InputFrame
	frame      game.Frame
	boardShown bool
	quitting   bool
}

// NewModel creates a Bubble Tea model for the given session.
func NewModel(session *game.Session, cfg core.RuntimeConfig, logger *log.Logger) *Model {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	keys := DefaultKeyMap()
	theme := DefaultTheme()
	h := help.New()
	h.Width = cfg.ScreenW

	m := &Model{
		session:    session,
		screen:     core.NewScreen(cfg.ScreenW, playfieldHeight(cfg.ScreenH)),
		config:     cfg,
		renderer:   NewRenderer(DefaultAssets()),
		board:      NewLeaderboard(theme, cfg.ScreenH),
		theme:      theme,
		keys:       keys,
		mapper:     NewKeyMapper(keys),
		help:       h,
		held:       NewHeldKeys(defaultHold, cfg.TickRate),
		log:        logger,
		inputFrame: core.NewInputFrame(),
	}
	m.frame = session.Frame()
	return m
}

// playfieldHeight leaves the last terminal row for the help bar.
func playfieldHeight(screenH int) int {
	return max(screenH-1, 2)
}

// Init starts the tick loop.
func (m *Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input. Quit is honored in every phase.
func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	phase := m.session.Phase()
	if m.mapper.IsQuit(msg, phase) {
		m.quitting = true
		m.log.Info("quit", "phase", phase, "score", m.session.Score())
		return m, tea.Quit
	}
	m.mapper.MapKey(msg, phase, &m.inputFrame, m.held)
	return m, nil
}

// handleResize processes window resize events. The world is fixed in size,
// so only the cell mapping changes.
func (m *Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, playfieldHeight(msg.Height))
	m.help.Width = msg.Width
	m.board = NewLeaderboard(m.theme, msg.Height)
	m.boardShown = false
	return m, nil
}

// handleTick runs one simulation step with the input gathered since the last tick.
func (m *Model) handleTick() (tea.Model, tea.Cmd) {
	if m.session.Phase() == game.PhasePlaying {
		m.held.Apply(&m.inputFrame)
	} else {
		m.held.Release()
	}

	res := m.session.Step(m.inputFrame)
	if res.Err != nil {
		m.log.Error("score not saved", "err", res.Err)
	}
	m.inputFrame.Clear()

	m.frame = m.session.Frame()
	if m.frame.Phase == game.PhaseLeaderboard {
		if !m.boardShown {
			m.board.SetRecords(m.frame.Leaderboard)
			m.boardShown = true
		}
	} else {
		m.boardShown = false
	}

	return m, tickCmd(m.config.TickRate)
}

// View renders the current state to a string for display.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	if m.frame.Phase == game.PhaseLeaderboard {
		return m.board.View(m.config.ScreenW, m.frame.Err) + "\n" + m.helpView()
	}

	m.renderer.Draw(m.screen, m.frame)
	return RenderScreen(m.screen) + "\n" + m.helpView()
}

func (m *Model) helpView() string {
	if m.frame.Phase == game.PhaseHighScoreEntry {
		return m.theme.Help.Render(m.help.ShortHelpView(m.keys.nameEntryHelp()))
	}
	return m.theme.Help.Render(m.help.View(m.keys))
}

// Run starts the Bubble Tea program for session and blocks until quit.
func Run(session *game.Session, cfg core.RuntimeConfig, logger *log.Logger) error {
	model := NewModel(session, cfg, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
