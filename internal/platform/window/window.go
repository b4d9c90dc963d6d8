// Package window runs games in a desktop window with Ebitengine.
// The game's cell screen is painted as a fixed grid of pixel cells.
package window

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/crossroad/internal/config"
	"github.com/vovakirdan/crossroad/internal/core"
	"github.com/vovakirdan/crossroad/internal/platform/eventlog"
	"github.com/vovakirdan/crossroad/internal/registry"
)

// Grid geometry: 80x30 cells of 10x20 px give an 800x600 window.
const (
	CellW = 10
	CellH = 20
	Cols  = 80
	Rows  = 30
)

// blockRune is painted as a solid cell instead of a glyph.
const blockRune = '█'

// glyphInsetX centers the 6 px debug font inside a cell.
const glyphInsetX = (CellW - 6) / 2

// Options carries the optional collaborators of a Window.
type Options struct {
	Logger  *log.Logger          // Defaults to a discarding logger
	Reloads <-chan config.Reload // Config file updates, may be nil
}

// Window adapts a registry.Game to ebiten.Game.
type Window struct {
	game    registry.Game
	screen  *core.Screen
	frame   core.InputFrame
	state   core.GameState
	logger  *log.Logger
	reloads <-chan config.Reload
}

// New creates a window front end and resets game to the fixed grid.
func New(game registry.Game, cfg core.RuntimeConfig, opts Options) *Window {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	cfg.ScreenW, cfg.ScreenH = Cols, Rows
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	game.Reset(cfg)
	logger.Info("game started", "game", game.ID(), "seed", cfg.Seed)

	return &Window{
		game:    game,
		screen:  core.NewScreen(Cols, Rows),
		frame:   core.NewInputFrame(),
		state:   game.State(),
		logger:  logger,
		reloads: opts.Reloads,
	}
}

// Update advances the game one tick.
func (w *Window) Update() error {
	if pollInput(&w.frame) {
		w.logger.Info("quit", "score", w.state.Score, "best", w.state.Best)
		return ebiten.Termination
	}

	w.drainReloads()

	result := w.game.Step(w.frame)
	w.state = result.State
	eventlog.Log(w.logger, result)

	w.frame.Clear()
	return nil
}

// drainReloads applies config updates without blocking the tick.
func (w *Window) drainReloads() {
	for {
		select {
		case r, ok := <-w.reloads:
			if !ok {
				w.reloads = nil
				return
			}
			w.applyReload(r)
		default:
			return
		}
	}
}

func (w *Window) applyReload(r config.Reload) {
	if r.Err != nil {
		w.logger.Warn("config reload failed", "path", r.Path, "error", r.Err)
		return
	}
	g, ok := w.game.(interface{ ApplyConfig(config.CrossingConfig) })
	if !ok {
		return
	}
	g.ApplyConfig(r.Config)
	w.logger.Info("config reloaded, applies on restart", "path", r.Path)
}

// Draw paints the game's cell screen.
func (w *Window) Draw(screen *ebiten.Image) {
	w.game.Render(w.screen)
	screen.Fill(defaultBg)

	for y := 0; y < w.screen.Height(); y++ {
		for x := 0; x < w.screen.Width(); x++ {
			drawCell(screen, x, y, w.screen.GetCell(x, y))
		}
	}
}

// Layout keeps the logical size fixed; ebiten scales it to the window.
func (w *Window) Layout(outsideWidth, outsideHeight int) (int, int) {
	return Cols * CellW, Rows * CellH
}

// cellOrigin returns the top-left pixel of cell (x, y).
func cellOrigin(x, y int) (float32, float32) {
	return float32(x * CellW), float32(y * CellH)
}

func drawCell(dst *ebiten.Image, x, y int, c core.Cell) {
	px, py := cellOrigin(x, y)

	if c.Bg != core.ColorDefault {
		vector.FillRect(dst, px, py, CellW, CellH, rgba(c.Bg, defaultBg), false)
	}

	switch c.Rune {
	case ' ', 0:
	case blockRune:
		vector.FillRect(dst, px, py, CellW, CellH, rgba(c.Fg, defaultFg), false)
	default:
		// The debug font is white only
		ebitenutil.DebugPrintAt(dst, string(c.Rune), int(px)+glyphInsetX, int(py))
	}
}

// Run opens the window and blocks until it is closed or a quit key is pressed.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) error {
	w := New(game, cfg, opts)

	ebiten.SetWindowSize(Cols*CellW, Rows*CellH)
	ebiten.SetWindowTitle(game.Title())
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if cfg.TickRate > 0 {
		ebiten.SetTPS(cfg.TickRate)
	}

	if err := ebiten.RunGame(w); err != nil {
		return fmt.Errorf("window: %w", err)
	}
	return nil
}
