package tui

import (
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/hari/internal/core"
	"github.com/vovakirdan/hari/internal/games/seagull"
)

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// Model is the Bubble Tea model that hosts a game.
type Model struct {
	game     *seagull.Game
	screen   *core.Screen
	config   core.RuntimeConfig
	keys     KeyMap
	help     help.Model
	hold     *HoldTracker
	pending  core.InputFrame // One-shot actions pressed since the last frame
	lastTick time.Time
	logger   *log.Logger
	quitting bool
}

// NewModel creates a new Bubble Tea model for the given game.
// A nil logger discards output.
func NewModel(game *seagull.Game, cfg core.RuntimeConfig, logger *log.Logger) Model {
	if logger == nil {
		logger = log.New(io.Discard)
	}

	h := help.New()
	h.ShowAll = false

	return Model{
		game:    game,
		screen:  core.NewScreen(cfg.ScreenW, max(cfg.ScreenH-1, 0)),
		config:  cfg,
		keys:    DefaultKeyMap(),
		help:    h,
		hold:    NewHoldTracker(DefaultHoldWindow),
		pending: core.NewInputFrame(),
		logger:  logger,
	}
}

// Init starts the frame loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.FrameFPS)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey records held directions and queues one-shot actions for the
// next frame.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Help) {
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	action := m.keys.MapKey(msg)
	switch {
	case action == core.ActionNone:
	case IsMovement(action):
		m.hold.Press(action, time.Now())
	default:
		m.pending.Set(action)
	}
	return m, nil
}

// handleResize keeps one row below the playfield for the help line.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, max(msg.Height-1, 0))
	m.help.Width = msg.Width
	return m, nil
}

// handleTick runs one render-rate step of the game with the real elapsed time.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	var dt time.Duration
	if !m.lastTick.IsZero() {
		dt = now.Sub(m.lastTick)
	}
	m.lastTick = now

	frame := core.NewInputFrame()
	for a := range m.pending.Actions {
		frame.Set(a)
	}
	m.pending.Clear()
	if frame.Has(core.ActionRestart) {
		m.hold.Reset()
	}
	m.hold.Apply(&frame, now)

	res := m.game.Frame(frame, dt)
	logFrame(m.logger, res)

	if res.Quit {
		m.quitting = true
		return m, tea.Quit
	}
	return m, tickCmd(m.config.FrameFPS)
}

// logFrame reports score changes and misses.
func logFrame(logger *log.Logger, res seagull.FrameResult) {
	if res.ScoreChanged {
		logger.Info("seagull caught", "caught", res.Caught, "score", res.Score)
	}
	if res.Missed > 0 {
		logger.Debug("seagull missed", "missed", res.Missed, "score", res.Score)
	}
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)

	var b strings.Builder
	b.WriteString(RenderScreen(m.screen))
	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))
	return b.String()
}

// Game returns the hosted game.
func (m Model) Game() *seagull.Game {
	return m.game
}

// Run starts the Bubble Tea program for the game and blocks until it exits.
func Run(game *seagull.Game, cfg core.RuntimeConfig, logger *log.Logger) error {
	if logger == nil {
		logger = log.New(io.Discard)
	}

	model := NewModel(game, cfg, logger)
	logger.Info("session started", "game", game.ID(), "fps", cfg.FrameFPS, "seed", cfg.Seed)

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return err
	}

	stats := game.Stats()
	logger.Info("session ended",
		"score", game.State().Score,
		"caught", stats.Caught,
		"missed", stats.Missed,
		"ticks", stats.Ticks)
	return nil
}
