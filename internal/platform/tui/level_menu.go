package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/games/tetris"
)

// LevelMenuModel lets the player pick a start level before a game.
type LevelMenuModel struct {
	rules    tetris.Rules
	table    table.Model
	help     help.Model
	keys     MenuKeyMap
	width    int
	height   int
	level    int // Chosen level, 0 while choosing
	quitting bool
}

// NewLevelMenuModel creates a level menu with the cursor on initial.
func NewLevelMenuModel(rules tetris.Rules, initial, width, height int) LevelMenuModel {
	h := help.New()
	h.Width = width

	m := LevelMenuModel{
		rules:  rules,
		help:   h,
		keys:   DefaultMenuKeyMap(),
		width:  width,
		height: height,
	}
	m.table = m.createTable()
	m.table.SetCursor(core.Clamp(initial, 1, config.MaxStartLevel) - 1)
	return m
}

// createTable builds the level table sized to the window.
func (m *LevelMenuModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "Level", Width: 7},
		{Title: "Fall delay", Width: 12},
		{Title: "Next level at", Width: 14},
	}

	rows := make([]table.Row, config.MaxStartLevel)
	for i := range rows {
		level := i + 1
		rows[i] = table.Row{
			fmt.Sprintf("%d", level),
			fmt.Sprintf("%dms", m.rules.DelayForLevel(level).Milliseconds()),
			fmt.Sprintf("%d", level*m.rules.LevelThreshold),
		}
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(core.Clamp(m.height-8, 3, config.MaxStartLevel)), // Leave room for title and help
	)

	// Table styles
	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// Init initializes the model.
func (m LevelMenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m LevelMenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit), key.Matches(msg, m.keys.Back):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Select):
			m.level = m.table.Cursor() + 1
			return m, tea.Quit

		case key.Matches(msg, m.keys.Up):
			m.table.MoveUp(1)
			return m, nil

		case key.Matches(msg, m.keys.Down):
			m.table.MoveDown(1)
			return m, nil
		}

	case tea.WindowSizeMsg:
		cursor := m.table.Cursor()
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.createTable()
		m.table.SetCursor(cursor)
		m.help.Width = msg.Width
		return m, nil
	}

	// Pass other messages to table
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the level selection.
func (m LevelMenuModel) View() string {
	if m.quitting || m.level > 0 {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229"))

	b.WriteString("\n")
	b.WriteString(titleStyle.Render(centerText("T E T R I S", m.width)))
	b.WriteString("\n\n")
	b.WriteString(centerText("Select start level", m.width))
	b.WriteString("\n\n")

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	tableView := tableStyle.Render(m.table.View())
	b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, tableView))
	b.WriteString("\n\n")

	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// Selected returns the chosen level, or 0 if none was chosen.
func (m LevelMenuModel) Selected() int {
	return m.level
}

// IsQuitting returns true if user wants to quit.
func (m LevelMenuModel) IsQuitting() bool {
	return m.quitting
}

// Config returns cfg updated with the last known window size.
func (m LevelMenuModel) Config(cfg core.RuntimeConfig) core.RuntimeConfig {
	if m.width > 0 && m.height > 0 {
		cfg.ScreenW = m.width
		cfg.ScreenH = m.height
	}
	return cfg
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	n := lipgloss.Width(text)
	if n >= width {
		return text
	}
	padding := (width - n) / 2
	return strings.Repeat(" ", padding) + text
}

// LevelMenuResult holds the result of running the level menu.
type LevelMenuResult struct {
	Level  int
	Config core.RuntimeConfig
	Quit   bool
}

// RunLevelMenu shows the level menu and returns the choice.
func RunLevelMenu(cfg core.RuntimeConfig, rules tetris.Rules, initial int) (LevelMenuResult, error) {
	model := NewLevelMenuModel(rules, initial, cfg.ScreenW, cfg.ScreenH)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return LevelMenuResult{Config: cfg}, err
	}

	m, ok := finalModel.(LevelMenuModel)
	if !ok {
		return LevelMenuResult{Config: cfg, Quit: true}, nil
	}

	result := LevelMenuResult{Config: m.Config(cfg)}
	if m.IsQuitting() || m.Selected() == 0 {
		result.Quit = true
		return result, nil
	}
	result.Level = m.Selected()
	return result, nil
}
