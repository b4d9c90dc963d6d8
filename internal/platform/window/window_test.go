package window

import (
	"errors"
	"image/color"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/colornames"

	"github.com/vovakirdan/crossroad/internal/config"
	"github.com/vovakirdan/crossroad/internal/core"
)

// stubGame counts resets and steps.
type stubGame struct {
	reset core.RuntimeConfig
	steps int
}

func (g *stubGame) ID() string                   { return "stub" }
func (g *stubGame) Title() string                { return "Stub" }
func (g *stubGame) Reset(cfg core.RuntimeConfig) { g.reset = cfg }
func (g *stubGame) Render(dst *core.Screen)      {}
func (g *stubGame) State() core.GameState        { return core.GameState{} }

func (g *stubGame) Step(in core.InputFrame) core.StepResult {
	g.steps++
	return core.StepResult{}
}

func TestLayoutIs800x600(t *testing.T) {
	w := New(&stubGame{}, core.RuntimeConfig{TickRate: 60, Seed: 1}, Options{})

	for _, size := range [][2]int{{800, 600}, {1920, 1080}, {320, 200}} {
		gotW, gotH := w.Layout(size[0], size[1])
		if gotW != 800 || gotH != 600 {
			t.Errorf("Layout(%d, %d) = (%d, %d), expected (800, 600)", size[0], size[1], gotW, gotH)
		}
	}
}

func TestNewResetsToGrid(t *testing.T) {
	g := &stubGame{}
	New(g, core.RuntimeConfig{ScreenW: 10, ScreenH: 10, TickRate: 30, Seed: 5}, Options{})

	if g.reset.ScreenW != Cols || g.reset.ScreenH != Rows {
		t.Errorf("game reset to %dx%d, expected %dx%d", g.reset.ScreenW, g.reset.ScreenH, Cols, Rows)
	}
	if g.reset.Seed != 5 || g.reset.TickRate != 30 {
		t.Errorf("runtime not passed through: %+v", g.reset)
	}
}

func TestNewPicksSeed(t *testing.T) {
	g := &stubGame{}
	New(g, core.RuntimeConfig{TickRate: 60}, Options{})
	if g.reset.Seed == 0 {
		t.Error("zero seed should be replaced")
	}
}

func TestCellOrigin(t *testing.T) {
	tests := []struct {
		x, y   int
		px, py float32
	}{
		{0, 0, 0, 0},
		{1, 1, 10, 20},
		{79, 29, 790, 580},
	}
	for _, tc := range tests {
		px, py := cellOrigin(tc.x, tc.y)
		if px != tc.px || py != tc.py {
			t.Errorf("cellOrigin(%d, %d) = (%v, %v), expected (%v, %v)", tc.x, tc.y, px, py, tc.px, tc.py)
		}
	}
}

func TestPalette(t *testing.T) {
	tests := []struct {
		name string
		c    core.Color
		want color.RGBA
	}{
		{"road", core.ColorGray, colornames.Dimgray},
		{"grass", core.ColorDarkGreen, colornames.Darkgreen},
		{"player", core.ColorBrightGreen, colornames.Lime},
		{"default falls back", core.ColorDefault, colornames.Black},
		{"unknown falls back", core.Color(200), colornames.Black},
	}
	for _, tc := range tests {
		if got := rgba(tc.c, colornames.Black); got != tc.want {
			t.Errorf("%s: rgba(%v) = %v, expected %v", tc.name, tc.c, got, tc.want)
		}
	}

	for c := core.ColorRed; c <= core.ColorBlack; c++ {
		if _, ok := palette[c]; !ok {
			t.Errorf("color %d has no palette entry", c)
		}
	}
}

func TestActionFor(t *testing.T) {
	tests := []struct {
		key  ebiten.Key
		want core.Action
	}{
		{ebiten.KeyArrowUp, core.ActionUp},
		{ebiten.KeyW, core.ActionUp},
		{ebiten.KeyArrowDown, core.ActionDown},
		{ebiten.KeyArrowLeft, core.ActionLeft},
		{ebiten.KeyD, core.ActionRight},
		{ebiten.KeyR, core.ActionRestart},
		{ebiten.KeyP, core.ActionPause},
		{ebiten.KeyEscape, core.ActionQuit},
		{ebiten.KeyQ, core.ActionQuit},
		{ebiten.KeySpace, core.ActionNone},
	}
	for _, tc := range tests {
		if got := actionFor(tc.key); got != tc.want {
			t.Errorf("actionFor(%v) = %v, expected %v", tc.key, got, tc.want)
		}
	}
}

type reloadGame struct {
	stubGame
	applied []config.CrossingConfig
}

func (g *reloadGame) ApplyConfig(cfg config.CrossingConfig) {
	g.applied = append(g.applied, cfg)
}

func TestDrainReloads(t *testing.T) {
	g := &reloadGame{}
	ch := make(chan config.Reload, 3)
	w := New(g, core.RuntimeConfig{TickRate: 60, Seed: 1}, Options{Reloads: ch})

	ch <- config.Reload{Path: "a.yaml", Config: config.DefaultCrossingConfig()}
	ch <- config.Reload{Path: "a.yaml", Err: errors.New("broken")}
	ch <- config.Reload{Path: "a.yaml", Config: config.DefaultCrossingConfig()}
	w.drainReloads()

	if len(g.applied) != 2 {
		t.Errorf("applied %d configs, expected 2", len(g.applied))
	}

	// Nothing queued: returns immediately
	w.drainReloads()

	close(ch)
	w.drainReloads()
	if w.reloads != nil {
		t.Error("closed channel should be dropped")
	}
}
