package tui

import (
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/crossroad/internal/config"
	"github.com/vovakirdan/crossroad/internal/core"
	"github.com/vovakirdan/crossroad/internal/platform/eventlog"
	"github.com/vovakirdan/crossroad/internal/registry"
)

// helpRows is the number of terminal rows reserved below the field.
const helpRows = 1

// ConfigReloadMsg delivers a re-read config file to the model.
type ConfigReloadMsg config.Reload

// configurable is implemented by games that accept a new config mid-session.
type configurable interface {
	ApplyConfig(cfg config.CrossingConfig)
}

// Options carries the optional collaborators of a Model.
type Options struct {
	Logger  *log.Logger          // Defaults to a discarding logger
	Reloads <-chan config.Reload // Config file updates, may be nil
}

// Model is the Bubble Tea model for running a game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	config     core.RuntimeConfig
	keys       KeyMap
	help       help.Model
	logger     *log.Logger
	reloads    <-chan config.Reload
	inputFrame core.InputFrame
	gameState  core.GameState
	quitting   bool
}

// NewModel creates a new Bubble Tea model for the given game.
// cfg holds the full terminal size; the help line is taken off the bottom.
func NewModel(game registry.Game, cfg core.RuntimeConfig, opts Options) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	cfg.ScreenH = max(cfg.ScreenH-helpRows, 0)

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	h := help.New()
	h.Width = cfg.ScreenW

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		config:     cfg,
		keys:       DefaultKeyMap(),
		help:       h,
		logger:     logger,
		reloads:    opts.Reloads,
		inputFrame: core.NewInputFrame(),
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.logger.Info("game started", "game", m.game.ID(), "width", m.config.ScreenW,
		"height", m.config.ScreenH, "seed", m.config.Seed)
	// Note: gameState will be set on first tick (value receiver limitation)

	return tea.Batch(tickCmd(m.config.TickRate), waitForReload(m.reloads))
}

// waitForReload blocks until the next config update arrives.
func waitForReload(ch <-chan config.Reload) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		r, ok := <-ch
		if !ok {
			return nil
		}
		return ConfigReloadMsg(r)
	}
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()

	case ConfigReloadMsg:
		return m.handleReload(msg)
	}

	return m, nil
}

// handleKey records the key's action for the next tick.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.keys.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		m.logger.Info("quit", "score", m.gameState.Score, "best", m.gameState.Best)
		return m, tea.Quit
	}
	return m, nil
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = max(msg.Height-helpRows, 0)
	m.screen.Resize(m.config.ScreenW, m.config.ScreenH)
	m.help.Width = msg.Width

	if g, ok := m.game.(registry.Resizer); ok {
		g.Resize(m.config)
		m.gameState = m.game.State()
		m.logger.Debug("field resized", "width", m.config.ScreenW, "height", m.config.ScreenH)
		return m, nil
	}

	// A finished run stays on screen until the player restarts it
	if !m.gameState.GameOver {
		m.game.Reset(m.config)
		m.gameState = m.game.State()
		m.logger.Debug("field rebuilt", "width", m.config.ScreenW, "height", m.config.ScreenH)
	}

	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	eventlog.Log(m.logger, result)

	// Clear input for next frame
	m.inputFrame.Clear()

	return m, tickCmd(m.config.TickRate)
}

// handleReload hands a re-read config to the game.
func (m Model) handleReload(msg ConfigReloadMsg) (tea.Model, tea.Cmd) {
	next := waitForReload(m.reloads)

	if msg.Err != nil {
		m.logger.Warn("config reload failed", "path", msg.Path, "error", msg.Err)
		return m, next
	}

	g, ok := m.game.(configurable)
	if !ok {
		m.logger.Debug("game ignores config reloads", "game", m.game.ID())
		return m, next
	}
	g.ApplyConfig(msg.Config)
	m.logger.Info("config reloaded, applies on restart", "path", msg.Path)
	return m, next
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + m.help.View(m.keys)
}

// Run starts the Bubble Tea program for game and blocks until it exits.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) error {
	p := tea.NewProgram(
		NewModel(game, cfg, opts),
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
