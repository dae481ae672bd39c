package registry

import (
	"testing"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

type stubGame struct {
	id string
}

func (g *stubGame) ID() string { return g.id }
func (g *stubGame) Title() string { return "Stub " + g.id }
func (g *stubGame) Reset(core.RuntimeConfig) {}
func (g *stubGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (g *stubGame) Render(*core.Screen) {}
func (g *stubGame) State() core.GameState { return core.GameState{} }

func TestRegisterAndCreate(t *testing.T) {
	Register("stub_b", func() Game { return &stubGame{id: "stub_b"} })
	Register("stub_a", func() Game { return &stubGame{id: "stub_a"} })

	if !Exists("stub_a") {
		t.Fatal("stub_a should exist")
	}

	g, err := Create("stub_b")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if g.ID() != "stub_b" {
		t.Errorf("ID = %q", g.ID())
	}

	list := List()
	var ids []string
	for _, info := range list {
		ids = append(ids, info.ID)
	}
	if len(ids) < 2 || ids[0] != "stub_a" || ids[1] != "stub_b" {
		t.Errorf("List not sorted: %v", ids)
	}
	if list[0].Title != "Stub stub_a" {
		t.Errorf("Title = %q", list[0].Title)
	}
}

func TestCreateUnknown(t *testing.T) {
	if _, err := Create("no_such_game"); err == nil {
		t.Error("expected error for unknown game")
	}
	if Exists("no_such_game") {
		t.Error("unknown game should not exist")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("stub_dup", func() Game { return &stubGame{id: "stub_dup"} })

	defer func() {
		if recover() == nil {
			t.Error("expected panic on duplicate registration")
		}
	}()
	Register("stub_dup", func() Game { return &stubGame{id: "stub_dup"} })
}
