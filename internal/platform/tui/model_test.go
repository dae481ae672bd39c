package tui

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/games/tetris"
	"github.com/vovakirdan/tui-tetris/internal/registry"
)

// fakeGame records what the platform asks of it.
type fakeGame struct {
	resets  int
	steps   [][]core.Action
	resized [2]int
	state   core.GameState
	events  []registry.Event
}

func (g *fakeGame) ID() string { return "fake" }
func (g *fakeGame) Title() string { return "Fake" }
func (g *fakeGame) Reset(core.RuntimeConfig) {
	g.resets++
	g.state = core.GameState{Level: 1}
}

func (g *fakeGame) Step(in core.InputFrame) core.StepResult {
	g.steps = append(g.steps, in.Actions())
	g.state.Score += 10
	return core.StepResult{State: g.state}
}

func (g *fakeGame) Render(dst *core.Screen) {
	dst.Clear()
	dst.DrawTextColored(0, 0, "FAKE", core.ColorCyan)
}

func (g *fakeGame) State() core.GameState { return g.state }

func (g *fakeGame) Report() []registry.Event {
	ev := g.events
	g.events = nil
	return ev
}

// resizingGame follows resizes itself.
type resizingGame struct{ fakeGame }

func (g *resizingGame) Resize(w, h int) { g.resized = [2]int{w, h} }

func testRuntime() core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 10, Seed: 1}
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	require.True(t, ok)
	return nm, cmd
}

func TestNewModelReservesHelpRow(t *testing.T) {
	g := &fakeGame{}
	m := NewModel(g, nil, testRuntime())

	assert.Equal(t, 1, g.resets)
	assert.Equal(t, 80, m.screen.Width())
	assert.Equal(t, 23, m.screen.Height())
	assert.Equal(t, 1, m.State().Level)
}

func TestNewModelDefaults(t *testing.T) {
	m := NewModel(&fakeGame{}, nil, core.RuntimeConfig{ScreenW: 80, ScreenH: 24})

	assert.NotZero(t, m.config.Seed)
	assert.Equal(t, core.DefaultConfig().TickRate, m.config.TickRate)
}

func TestKeysQueuedUntilTick(t *testing.T) {
	g := &fakeGame{}
	m := NewModel(g, nil, testRuntime())

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	assert.Nil(t, cmd)
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune(" ")})
	assert.Empty(t, g.steps)

	m, cmd = update(t, m, TickMsg(time.Now()))
	assert.NotNil(t, cmd, "tick loop continues")
	require.Len(t, g.steps, 1)
	assert.Equal(t, []core.Action{core.ActionLeft, core.ActionLeft, core.ActionDrop}, g.steps[0])
	assert.Equal(t, 10, m.State().Score)

	_, _ = update(t, m, TickMsg(time.Now()))
	require.Len(t, g.steps, 2)
	assert.Empty(t, g.steps[1], "frame cleared after a tick")
}

func TestStepGetsOwnFrame(t *testing.T) {
	g := &fakeGame{}
	m := NewModel(g, nil, testRuntime())

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	m, _ = update(t, m, TickMsg(time.Now()))
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRight})
	_, _ = update(t, m, TickMsg(time.Now()))

	require.Len(t, g.steps, 2)
	assert.Equal(t, []core.Action{core.ActionLeft}, g.steps[0], "earlier frame not overwritten")
	assert.Equal(t, []core.Action{core.ActionRight}, g.steps[1])
}

func TestQuit(t *testing.T) {
	m := NewModel(&fakeGame{}, nil, testRuntime())

	m, cmd := update(t, m, runes("q"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.Empty(t, m.View())
}

func TestResizeWithResizer(t *testing.T) {
	g := &resizingGame{}
	m := NewModel(g, nil, testRuntime())

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})

	assert.Equal(t, [2]int{100, 39}, g.resized)
	assert.Equal(t, 1, g.resets, "resizable games are not reset")
	assert.Equal(t, 39, m.screen.Height())
}

func TestResizeFallsBackToReset(t *testing.T) {
	g := &fakeGame{}
	m := NewModel(g, nil, testRuntime())

	_, _ = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})

	assert.Equal(t, 2, g.resets)
}

func TestViewIncludesHelp(t *testing.T) {
	m := NewModel(&fakeGame{}, nil, testRuntime())

	view := m.View()
	assert.Contains(t, view, "FAKE")
	assert.Contains(t, view, "quit")
	assert.Equal(t, 24, strings.Count(view, "\n")+1)
}

func TestEventsLogged(t *testing.T) {
	var buf bytes.Buffer
	logger := log.NewWithOptions(&buf, log.Options{Level: log.DebugLevel})

	g := &fakeGame{}
	m := NewModel(g, logger, testRuntime())
	g.events = []registry.Event{
		{Name: "lines cleared", Fields: []any{"lines", 2}},
		{Name: "spawned", Debug: true},
	}
	_, _ = update(t, m, TickMsg(time.Now()))

	out := buf.String()
	assert.Contains(t, out, "session started")
	assert.Contains(t, out, "INFO lines cleared lines=2")
	assert.Contains(t, out, "DEBU spawned")
}

func TestWriteScreenshot(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	s := core.NewScreen(4, 2)
	s.DrawText(0, 0, "ab")
	at := time.Date(2024, 3, 1, 12, 30, 0, 0, time.UTC)

	path, err := writeScreenshot("tetris", s, at)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, config.AppDir, "screenshots", "tetris_20240301_123000.txt"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "ab\n\n", string(data))
}

func TestRunsRealGame(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	g := tetris.NewWithRandomizer(tetris.NewSequence(tetris.KindT))
	m := NewModel(g, nil, testRuntime())

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune(" ")})
	m, _ = update(t, m, TickMsg(time.Now()))

	assert.False(t, m.State().GameOver)
	assert.Contains(t, m.View(), "Score")
}
