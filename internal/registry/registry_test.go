package registry

import (
	"errors"
	"testing"

	"github.com/vovakirdan/crossroad/internal/core"
)

type stubGame struct{ id string }

func (g *stubGame) ID() string                           { return g.id }
func (g *stubGame) Title() string                        { return "Stub " + g.id }
func (g *stubGame) Reset(core.RuntimeConfig)             {}
func (g *stubGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (g *stubGame) Render(*core.Screen)                  {}
func (g *stubGame) State() core.GameState                { return core.GameState{} }

func TestRegisterAndCreate(t *testing.T) {
	Register("stub-b", func() Game { return &stubGame{id: "stub-b"} })
	Register("stub-a", func() Game { return &stubGame{id: "stub-a"} })

	if !Exists("stub-a") || Exists("stub-missing") {
		t.Error("Exists returned wrong result")
	}

	g, err := Create("stub-a")
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	if g.ID() != "stub-a" {
		t.Errorf("created game ID = %q", g.ID())
	}

	if _, err := Create("stub-missing"); !errors.Is(err, ErrUnknownGame) {
		t.Errorf("Create(unknown) error = %v, expected ErrUnknownGame", err)
	}

	var seen []GameInfo
	for _, info := range List() {
		if info.ID == "stub-a" || info.ID == "stub-b" {
			seen = append(seen, info)
		}
	}
	if len(seen) != 2 || seen[0].ID != "stub-a" || seen[1].Title != "Stub stub-b" {
		t.Errorf("List() = %+v, expected sorted stubs with titles", seen)
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("stub-dup", func() Game { return &stubGame{id: "stub-dup"} })

	defer func() {
		if recover() == nil {
			t.Error("duplicate Register should panic")
		}
	}()
	Register("stub-dup", func() Game { return &stubGame{id: "stub-dup"} })
}

func TestRegisterEmptyIDPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("empty id should panic")
		}
	}()
	Register("", func() Game { return &stubGame{} })
}

func TestRegisterMismatchedIDPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("factory building a different ID should panic")
		}
	}()
	Register("stub-alias", func() Game { return &stubGame{id: "stub-real"} })
}
