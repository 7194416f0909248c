// Package tui hosts the Pong simulation in a Bubble Tea program, locally or over SSH.
// The frame loop runs on its own goroutine; this package only routes input to it and
// draws the snapshots it publishes.
package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jtfleetwood/Pong/internal/core"
	"github.com/jtfleetwood/Pong/internal/games/pong"
)

// Model is the Bubble Tea model for a game session.
type Model struct {
	session   *Session
	keys      KeyMap
	help      help.Model
	screen    *core.Screen
	snap      pong.Snapshot
	width     int
	height    int
	suspended bool // Frame loop paused with the pause key
	quitting  bool
	err       error
}

// NewModel creates a model for session sized to the terminal.
func NewModel(session *Session, width, height int) Model {
	h := help.New()
	h.Width = width
	return Model{
		session: session,
		keys:    DefaultKeyMap(),
		help:    h,
		screen:  core.NewScreen(width, core.Max(height-HelpRows, 1)),
		snap:    session.Scheduler().Snapshot(),
		width:   width,
		height:  height,
	}
}

// Init starts the frame loop and waits for its first frame.
func (m Model) Init() tea.Cmd {
	if err := m.session.Start(); err != nil {
		m.session.logger.Error("cannot start frame loop", "err", err)
		return tea.Quit
	}
	return m.session.Surface().Next()
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case FrameMsg:
		m.snap = pong.Snapshot(msg)
		return m, m.session.Surface().Next()

	case tea.KeyMsg:
		return m.handleAction(m.keys.ActionFor(msg))

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.screen.Resize(msg.Width, core.Max(msg.Height-HelpRows, 1))
		m.help.Width = msg.Width
		return m, nil
	}

	return m, nil
}

// handleAction applies a semantic action to the session.
func (m Model) handleAction(action core.Action) (tea.Model, tea.Cmd) {
	sched := m.session.Scheduler()

	switch action {
	case core.ActionLeft:
		sched.SetPaddleMovement(pong.MovingLeft)
	case core.ActionRight:
		sched.SetPaddleMovement(pong.MovingRight)
	case core.ActionStop:
		sched.SetPaddleMovement(pong.Stopped)
	case core.ActionPause:
		m.toggleSuspended()
	case core.ActionNewGame:
		sched.StartNewGame()
		m.snap = sched.Snapshot()
	case core.ActionHelp:
		m.help.ShowAll = !m.help.ShowAll
	case core.ActionQuit:
		m.quitting = true
		if err := m.session.Close(); err != nil {
			m.err = err
		}
		return m, tea.Quit
	}

	return m, nil
}

func (m *Model) toggleSuspended() {
	sched := m.session.Scheduler()
	if m.suspended {
		if err := sched.Resume(); err != nil {
			m.err = err
			return
		}
		m.suspended = false
		return
	}
	if err := sched.Pause(); err != nil {
		m.err = err
		m.session.logger.Error("cannot pause frame loop", "err", err)
	}
	m.suspended = true
	m.snap = sched.Snapshot()
}

// handleMouse treats a mouse button like a touch screen: pressing on the left or right
// half moves the paddle that way, releasing stops it.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	sched := m.session.Scheduler()

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		if msg.X < m.width/2 {
			sched.SetPaddleMovement(pong.MovingLeft)
		} else {
			sched.SetPaddleMovement(pong.MovingRight)
		}
	case tea.MouseActionRelease:
		sched.SetPaddleMovement(pong.Stopped)
	}

	return m, nil
}

// Err returns the last lifecycle error, if any.
func (m Model) Err() error {
	return m.err
}

// View renders the current frame.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	DrawSnapshot(m.screen, m.snap, DrawOptions{
		Debug:     m.session.opts.Debug,
		Suspended: m.suspended,
		HighScore: m.session.opts.HighScore,
	})

	var b strings.Builder
	b.WriteString(RenderScreen(m.screen))
	b.WriteString("\n")
	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))
	return b.String()
}

// Run starts the Bubble Tea program for session and closes the session on exit.
func Run(session *Session, width, height int) error {
	model := NewModel(session, width, height)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Mouse presses act as touches
	)

	final, err := p.Run()
	closeErr := session.Close()
	if err != nil {
		return err
	}
	if fm, ok := final.(Model); ok && fm.Err() != nil {
		return fm.Err()
	}
	return closeErr
}
