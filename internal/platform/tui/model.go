package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/fluctus/internal/core"
)

// Game is what the platform drives. Games contain pure logic with no
// Bubble Tea dependency; the platform handles input mapping, timing and
// terminal output.
type Game interface {
	// ID returns a short identifier used for file names.
	ID() string

	// Title returns a human-readable name.
	Title() string

	// Reset initializes the game for the given screen and seed.
	Reset(cfg core.RuntimeConfig)

	// Step advances the simulation by one tick.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current state into dst.
	Render(dst *core.Screen)

	// State returns the current game state.
	State() core.GameState
}

// Option configures a Model.
type Option func(*Model)

// WithLogger sets the logger for platform events.
func WithLogger(logger *log.Logger) Option {
	return func(m *Model) {
		if logger != nil {
			m.logger = logger
		}
	}
}

// WithScreenshotDir overrides where ctrl+s writes screenshots.
func WithScreenshotDir(dir string) Option {
	return func(m *Model) {
		m.screenshotDir = dir
	}
}

// WithKeyMap replaces the default key bindings.
func WithKeyMap(keys KeyMap) Option {
	return func(m *Model) {
		m.keys = keys
	}
}

// Model is the Bubble Tea model for running a game.
type Model struct {
	game          Game
	screen        *core.Screen
	renderer      *Renderer
	config        core.RuntimeConfig
	keys          KeyMap
	help          help.Model
	logger        *log.Logger
	screenshotDir string
	inputFrame    core.InputFrame
	gameState     core.GameState
	status        string // Last screenshot result, shown in the footer
	quitting      bool
}

// NewModel creates a new Bubble Tea model for the given game.
// The bottom rows of the terminal are reserved for the help footer.
func NewModel(game Game, cfg core.RuntimeConfig, opts ...Option) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	m := Model{
		game:          game,
		renderer:      NewRenderer(),
		config:        cfg,
		keys:          DefaultKeyMap(),
		help:          help.New(),
		logger:        log.New(io.Discard),
		screenshotDir: defaultScreenshotDir(),
		inputFrame:    core.NewInputFrame(),
	}
	for _, opt := range opts {
		opt(&m)
	}
	m.screen = core.NewScreen(cfg.ScreenW, m.playfieldHeight())
	m.help.Width = cfg.ScreenW

	// Reset here rather than in Init so the state survives the value receiver.
	game.Reset(cfg)
	m.gameState = game.State()
	return m
}

func defaultScreenshotDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "screenshots"
	}
	return filepath.Join(home, ".fluctus", "screenshots")
}

// playfieldHeight returns the rows left for the game after the help footer.
func (m Model) playfieldHeight() int {
	footer := 1
	if m.help.ShowAll {
		for _, col := range m.keys.FullHelp() {
			footer = max(footer, len(col))
		}
	}
	return max(m.config.ScreenH-footer, 1)
}

// Init sets the window title and starts the tick loop.
func (m Model) Init() tea.Cmd {
	m.logger.Info("starting", "game", m.game.ID(), "size", fmt.Sprintf("%dx%d", m.config.ScreenW, m.config.ScreenH), "tps", m.config.TickRate, "seed", m.config.Seed)
	return tea.Batch(tea.SetWindowTitle(m.game.Title()), tickCmd(m.config.TickRate))
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
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.status = ""

	switch {
	case key.Matches(msg, m.keys.Screenshot):
		m.status = m.saveScreenshot()
		return m, nil
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.screen.Resize(m.config.ScreenW, m.playfieldHeight())
		return m, nil
	}

	action := m.keys.Action(msg)
	if action == core.ActionQuit {
		m.quitting = true
		m.logger.Info("quit", "score", m.gameState.Score)
		return m, tea.Quit
	}
	if action != core.ActionNone {
		m.inputFrame.Set(action)
	}

	return m, nil
}

// handleResize processes window resize events. The game world is scaled to
// the terminal, so the running game is kept.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, m.playfieldHeight())
	m.help.Width = msg.Width
	m.logger.Debug("resize", "width", msg.Width, "height", msg.Height)
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	result := m.game.Step(m.inputFrame)
	m.inputFrame.Clear()

	if result.State.GameOver && !m.gameState.GameOver {
		m.logger.Info("game over", "score", result.State.Score)
	}
	m.gameState = result.State

	if result.Quit {
		m.quitting = true
		return m, tea.Quit
	}

	return m, tickCmd(m.config.TickRate)
}

// saveScreenshot writes the current frame as plain text and returns a status line.
func (m *Model) saveScreenshot() string {
	m.game.Render(m.screen)

	if err := os.MkdirAll(m.screenshotDir, 0o755); err != nil {
		m.logger.Warn("screenshot failed", "err", err)
		return "screenshot failed"
	}

	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp)
	path := filepath.Join(m.screenshotDir, filename)

	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "path", path, "err", err)
		return "screenshot failed"
	}
	m.logger.Info("screenshot saved", "path", path)
	return "saved " + path
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)

	footer := m.help.View(m.keys)
	if m.status != "" {
		footer = m.status
	}
	return m.renderer.Render(m.screen) + "\n" + footer
}

// Run starts the Bubble Tea program for game and blocks until it exits.
func Run(game Game, cfg core.RuntimeConfig, opts ...Option) error {
	model := NewModel(game, cfg, opts...)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui: run %s: %w", game.ID(), err)
	}
	return nil
}
