package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/registry"
)

// helpHeight is the number of rows reserved below the game for the help bar.
const helpHeight = 1

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// Model is the Bubble Tea model for running a game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	gameState  core.GameState
	keys       KeyMap
	help       help.Model
	logger     *log.Logger
	quitting   bool
}

// NewModel creates a new Bubble Tea model for the given game.
// cfg carries the full terminal size; the help bar is taken off the bottom.
func NewModel(game registry.Game, logger *log.Logger, cfg core.RuntimeConfig) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}
	cfg.ScreenH = max(cfg.ScreenH-helpHeight, 0)

	h := help.New()
	h.Width = cfg.ScreenW

	m := Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		keys:       DefaultKeyMap(),
		help:       h,
		logger:     logger,
	}

	// Init has a value receiver, so the game is reset here.
	m.game.Reset(m.config)
	m.gameState = m.game.State()
	m.logStart()
	return m
}

func (m Model) logStart() {
	if m.logger == nil {
		return
	}
	m.logger.Info("session started",
		"game", m.game.ID(),
		"seed", m.config.Seed,
		"tick_rate", m.config.TickRate,
		"screen", fmt.Sprintf("%dx%d", m.config.ScreenW, m.config.ScreenH),
		"level", m.gameState.Level,
	)
	if cr, ok := m.game.(interface{ ConfigError() error }); ok && cr.ConfigError() != nil {
		m.logger.Warn("using default rules", "error", cr.ConfigError())
	}
	if r, ok := m.game.(registry.Reporter); ok {
		logEvents(m.logger, r.Report())
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickInterval())
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
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		if m.logger != nil {
			m.logger.Info("session ended", "score", m.gameState.Score, "level", m.gameState.Level)
		}
		return m, tea.Quit
	case key.Matches(msg, m.keys.Screenshot):
		m.saveScreenshot()
		return m, nil
	}

	// Queue the action; the next tick applies everything in order.
	m.inputFrame.Push(m.keys.Action(msg))
	return m, nil
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = max(msg.Height-helpHeight, 0)
	m.screen.Resize(m.config.ScreenW, m.config.ScreenH)
	m.help.Width = msg.Width

	if r, ok := m.game.(registry.Resizer); ok {
		r.Resize(m.config.ScreenW, m.config.ScreenH)
	} else if !m.gameState.GameOver {
		// Games that cannot follow a resize start over.
		m.game.Reset(m.config)
	}
	m.gameState = m.game.State()

	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.logger != nil && m.inputFrame.Len() > 0 {
		m.logger.Debug("input", "actions", m.inputFrame.Len())
	}

	// The game may keep the frame; the buffer is reused for the next one.
	result := m.game.Step(m.inputFrame.Clone())
	m.gameState = result.State

	if r, ok := m.game.(registry.Reporter); ok {
		logEvents(m.logger, r.Report())
	}

	// Clear input for next frame
	m.inputFrame.Clear()

	// Continue ticking
	return m, tickCmd(m.config.TickInterval())
}

// screenshotDir returns where ctrl+s captures are written.
func screenshotDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, config.AppDir, "screenshots"), nil
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	path, err := writeScreenshot(m.game.ID(), m.screen, time.Now())
	if m.logger == nil {
		return
	}
	if err != nil {
		m.logger.Warn("screenshot failed", "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// writeScreenshot stores the plain-text screen under the screenshots dir,
// one line per row without trailing blanks.
func writeScreenshot(gameID string, s *core.Screen, at time.Time) (string, error) {
	dir, err := screenshotDir()
	if err != nil {
		return "", fmt.Errorf("tui: cannot resolve screenshot dir: %w", err)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("tui: cannot create %s: %w", dir, err)
	}

	var sb strings.Builder
	for y := range s.Height() {
		sb.WriteString(strings.TrimRight(s.Row(y), " "))
		sb.WriteByte('\n')
	}

	filename := fmt.Sprintf("%s_%s.txt", gameID, at.Format("20060102_150405"))
	path := filepath.Join(dir, filename)
	if err := os.WriteFile(path, []byte(sb.String()), 0o600); err != nil {
		return "", fmt.Errorf("tui: cannot write %s: %w", path, err)
	}
	return path, nil
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	// Render game to screen buffer
	m.game.Render(m.screen)

	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// State returns the last observed game state.
func (m Model) State() core.GameState {
	return m.gameState
}

// Run starts the Bubble Tea program with the given game and returns the
// final game state.
func Run(game registry.Game, logger *log.Logger, cfg core.RuntimeConfig) (core.GameState, error) {
	model := NewModel(game, logger, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	finalModel, err := p.Run()
	if err != nil {
		return model.State(), err
	}
	if m, ok := finalModel.(Model); ok {
		return m.State(), nil
	}
	return model.State(), nil
}
