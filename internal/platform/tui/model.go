package tui

import (
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/fifteen/internal/core"
	"github.com/vovakirdan/fifteen/internal/puzzle"
	"github.com/vovakirdan/fifteen/internal/storage"
)

// Model is the Bubble Tea model for one puzzle session.
type Model struct {
	session  *puzzle.Session
	store    *storage.Store
	screen   *core.Screen
	config   core.RuntimeConfig
	keys     KeyMap
	help     help.Model
	logger   *log.Logger
	started  bool // A game has been dealt; restart has a board to reload
	saved    bool // Result for the current victory has been stored
	quitting bool
}

// NewModel creates a model driving the given session. store may be nil, in
// which case results are not recorded.
func NewModel(session *puzzle.Session, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) Model {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if cfg.Unit <= 0 {
		cfg.Unit = core.DefaultConfig().Unit
	}
	return Model{
		session: session,
		store:   store,
		screen:  core.NewScreen(cfg.ScreenW, screenRows),
		config:  cfg,
		keys:    DefaultKeyMap(),
		help:    help.New(),
		logger:  logger,
		started: session.TimerRunning(),
	}
}

// Init starts the tick loop when the session already holds a dealt board.
// A fresh session sits idle on the solved board until a game is dealt.
func (m Model) Init() tea.Cmd {
	if !m.session.TimerRunning() {
		return nil
	}
	return tickCmd(m.config.Unit, m.session.TimerEpoch())
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, screenRows)
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		if m.session.TickFor(msg.Epoch) {
			return m, tickCmd(m.config.Unit, msg.Epoch)
		}
		return m, nil
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keys.MapKey(msg)
	switch action {
	case core.ActionQuit:
		m.quitting = true
		m.session.Close()
		return m, tea.Quit

	case core.ActionNewGame:
		m.session.NewGame()
		m.started = true
		m.saved = false
		return m, tickCmd(m.config.Unit, m.session.TimerEpoch())

	case core.ActionRestart:
		if !m.started {
			return m, nil
		}
		m.session.RestartGame()
		m.saved = false
		return m, tickCmd(m.config.Unit, m.session.TimerEpoch())

	case core.ActionHelp:
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case core.ActionUp, core.ActionDown, core.ActionLeft, core.ActionRight:
		target := SlideTarget(action, m.session.FreeIndex())
		if target < 0 {
			return m, nil
		}
		m.move(target)
	}

	return m, nil
}

func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}
	if !fits(m.screen.Width()) {
		return m, nil
	}
	target := layoutFor(m.screen.Width()).IndexAt(msg.X, msg.Y)
	if target < 0 {
		return m, nil
	}
	m.move(target)
	return m, nil
}

// move forwards a move to the session and records a win once.
func (m *Model) move(target int) {
	if !m.session.AttemptMove(target) {
		return
	}
	if m.session.Status() != puzzle.StatusVictory || m.saved {
		return
	}
	m.saved = true

	if m.store == nil {
		return
	}
	_, err := m.store.SaveResult(storage.Result{
		Moves:   m.session.Moves(),
		Elapsed: m.session.Elapsed(),
		Rule:    m.session.Rule(),
		Start:   m.session.Reference(),
	})
	if err != nil {
		m.logger.Warn("failed to save result", "err", err)
	}
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	drawGame(m.screen, m.session.Snapshot(), m.config.Unit)

	var b strings.Builder
	b.WriteString(RenderScreen(m.screen))
	b.WriteString("\n")

	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	b.WriteString(lipgloss.PlaceHorizontal(m.screen.Width(), lipgloss.Center, helpStyle.Render(m.help.View(m.keys))))
	return b.String()
}

// Run starts the Bubble Tea program for a session and closes the session on
// exit.
func Run(session *puzzle.Session, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) error {
	defer session.Close()

	model := NewModel(session, store, cfg, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err := p.Run()
	return err
}
