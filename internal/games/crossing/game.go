// Package crossing implements a lane-crossing arcade game.
// The player hops a token from the bottom safe zone, across lanes of
// wrapping traffic, to the goal zone at the top. Each crossing scores a
// point; any contact with a car ends the run.
package crossing

import (
	"fmt"

	"github.com/vovakirdan/crossroad/internal/config"
	"github.com/vovakirdan/crossroad/internal/core"
	"github.com/vovakirdan/crossroad/internal/registry"
)

// Visual characters for rendering
const (
	PlayerChar = '█'
	CarChar    = '█'
	MarkerChar = '─'
)

// Marker dashes: markerDash cells drawn every markerPeriod cells.
const (
	markerPeriod = 4
	markerDash   = 2
)

// Game implements the road crossing game logic.
type Game struct {
	runtime    core.RuntimeConfig
	cfg        config.CrossingConfig
	override   *config.CrossingConfig // Fixed config, bypasses file loading
	pending    *config.CrossingConfig // Hot-reloaded config for the next run
	difficulty *config.DifficultyManager
	layout     Layout
	player     *Player
	traffic    *Traffic

	score       int
	best        int
	gameOver    bool
	paused      bool
	tooSmall    bool
	bannerTicks int // Remaining ticks of the win banner
	tickCount   int // Ticks since the run started
	runs        int // Runs started since Reset, used to vary the seed
}

var _ registry.Resizer = (*Game)(nil)

// configPath stores the custom config path set via CLI
var configPath string
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown values fall back
// to the config file's own difficulty settings.
func SetDifficultyPreset(preset string) {
	p, err := config.ParsePreset(preset)
	if err != nil {
		p = ""
	}
	difficultyPreset = p
}

// New creates a new road crossing game that loads its config on Reset.
func New() *Game {
	return &Game{}
}

// NewWithConfig creates a game that always uses cfg.
func NewWithConfig(cfg config.CrossingConfig) *Game {
	return &Game{override: &cfg}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "crossing"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Road Crossing"
}

// ApplyConfig queues cfg to take effect when the next run starts.
// The run in progress keeps its current lanes. The session's difficulty
// preset is applied on top, as it is for configs loaded from disk.
func (g *Game) ApplyConfig(cfg config.CrossingConfig) {
	config.ApplyPreset(&cfg, difficultyPreset)
	g.pending = &cfg
}

// Reset initializes the game for a screen. The best score survives.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.runs = 0

	g.takePending()
	switch {
	case g.override != nil:
		g.cfg = *g.override
	default:
		cfg, err := config.LoadCrossing(configPath)
		if err != nil {
			cfg = config.DefaultCrossingConfig()
		}
		config.ApplyPreset(&cfg, difficultyPreset)
		g.cfg = cfg
	}

	g.startRun()
}

// Resize adapts the game to a new screen size without ending the session.
// A live run is laid out again and keeps its score and elapsed ticks.
// A finished run keeps its game-over box; the next restart uses the new size.
func (g *Game) Resize(runtime core.RuntimeConfig) {
	if g.difficulty == nil {
		g.Reset(runtime)
		return
	}
	g.runtime = runtime
	if g.gameOver {
		return
	}

	score, ticks, banner := g.score, g.tickCount, g.bannerTicks
	paused := g.paused
	g.startRun()
	g.score, g.tickCount, g.bannerTicks = score, ticks, banner
	g.paused = paused
}

// takePending promotes a queued config to the one used from now on.
func (g *Game) takePending() bool {
	if g.pending == nil {
		return false
	}
	g.override = g.pending
	g.pending = nil
	return true
}

// startRun lays out the field and places a fresh player and traffic.
func (g *Game) startRun() {
	g.difficulty = config.NewDifficultyManager(g.cfg.Difficulty)
	g.score = 0
	g.gameOver = false
	g.paused = false
	g.bannerTicks = 0
	g.tickCount = 0

	g.tooSmall = g.runtime.ScreenW < g.cfg.MinScreenWidth() ||
		g.runtime.ScreenH < g.cfg.MinScreenHeight()
	if g.tooSmall {
		g.player = nil
		g.traffic = nil
		return
	}

	g.layout = NewLayout(g.cfg, g.runtime.ScreenW, g.runtime.ScreenH)
	g.player = NewPlayer(g.layout, g.cfg.Player.Width, g.cfg.Player.Height, g.cfg.Player.StepXOrWidth())
	g.traffic = NewTraffic(g.runtime.Seed+int64(g.runs), g.layout, g.cfg.Lanes, g.cfg.Player.Height)
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.tooSmall || g.player == nil {
		return core.StepResult{State: g.State()}
	}

	if g.gameOver {
		if !in.Has(core.ActionRestart) {
			return core.StepResult{State: g.State()}
		}
		g.runs++
		if g.takePending() {
			g.cfg = *g.override
		}
		g.startRun()
		return core.StepResult{State: g.State(), Events: []core.Event{core.EventRestarted}}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	var events []core.Event
	g.tickCount++
	if g.bannerTicks > 0 {
		g.bannerTicks--
	}

	if g.applyMovement(in) {
		events = append(events, core.EventMoved)
	}

	g.traffic.Update(g.difficulty.SpeedScale(g.score, g.tickCount))

	if g.traffic.Collides(g.player.Rect()) {
		g.gameOver = true
		events = append(events, core.EventHit)
		return core.StepResult{State: g.State(), Events: events}
	}

	if g.player.Y < g.layout.GoalBottom() {
		g.score++
		if g.score > g.best {
			g.best = g.score
		}
		g.bannerTicks = g.cfg.Gameplay.WinBannerTicks
		g.player.Reset()
		events = append(events, core.EventCrossed)
	}

	return core.StepResult{State: g.State(), Events: events}
}

// applyMovement performs at most one move per tick.
func (g *Game) applyMovement(in core.InputFrame) bool {
	switch {
	case in.Has(core.ActionUp):
		return g.player.MoveUp()
	case in.Has(core.ActionDown):
		return g.player.MoveDown()
	case in.Has(core.ActionLeft):
		return g.player.MoveLeft()
	case in.Has(core.ActionRight):
		return g.player.MoveRight()
	}
	return false
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall || g.player == nil {
		g.drawTooSmall(dst)
		return
	}

	oy := g.layout.OriginY

	// Zones
	dst.FillBackground(g.layout.Goal().Translate(0, oy), core.ColorDarkGreen)
	dst.FillBackground(g.layout.Road().Translate(0, oy), core.ColorGray)
	dst.FillBackground(g.layout.Start().Translate(0, oy), core.ColorDarkGreen)

	// Dashed markers on the last row of every lane but the bottom one
	if g.layout.LaneH > 1 {
		for i := 1; i < g.layout.Lanes; i++ {
			y := oy + g.layout.LaneTop(i) - 1
			for x := 0; x < dst.Width(); x += markerPeriod {
				for d := 0; d < markerDash; d++ {
					dst.SetStyled(x+d, y, MarkerChar, core.ColorYellow)
				}
			}
		}
	}

	for _, c := range g.traffic.Cars() {
		dst.DrawStyledRect(c.Rect().Translate(0, oy), CarChar, c.Color)
	}

	dst.DrawStyledRect(g.player.Rect().Translate(0, oy), PlayerChar, core.ColorBrightGreen)

	g.drawHUD(dst)

	switch {
	case g.gameOver:
		g.drawCenteredMessage(dst, "GAME OVER", "Press 'R' to Restart", core.ColorBrightRed)
	case g.paused:
		g.drawCenteredMessage(dst, "PAUSED", "Press P to resume", core.ColorBrightWhite)
	case g.bannerTicks > 0:
		// Play continues, so the banner stays inside the goal zone
		banner := " YOU MADE IT! "
		dst.DrawStyledText((dst.Width()-len(banner))/2, g.bannerRow(), banner, core.ColorBrightWhite)
	}
}

// bannerRow picks a goal zone row that the HUD line does not use.
// A one-row goal zone under the HUD has no such row and the banner wins.
func (g *Game) bannerRow() int {
	row := g.layout.OriginY + (g.layout.SafeH-1)/2
	if row == hudRow && g.layout.SafeH > 1 {
		row = g.layout.OriginY + g.layout.SafeH - 1
	}
	return row
}

// hudRow is the top screen row. With hud_rows 0 and no spare rows it
// overlaps the goal zone.
const hudRow = 0

// drawHUD writes the score line on the top screen row.
func (g *Game) drawHUD(dst *core.Screen) {
	y := hudRow

	hud := fmt.Sprintf(" SCORE: %d   BEST: %d ", g.score, g.best)
	x := (dst.Width() - len(hud)) / 2
	dst.DrawStyledText(x, y, hud, core.ColorBrightWhite)

	if g.difficulty.IsEnabled() {
		spd := fmt.Sprintf(" SPD x%.1f ", g.difficulty.SpeedScale(g.score, g.tickCount))
		dst.DrawStyledText(dst.Width()-len(spd)-1, y, spd, core.ColorCyan)
	}
}

// drawCenteredMessage draws a message box in the center of the field.
func (g *Game) drawCenteredMessage(dst *core.Screen, title, subtitle string, titleColor core.Color) {
	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (dst.Width() - boxW) / 2
	boxY := g.layout.OriginY + (g.layout.Height()-boxH)/2
	box := core.NewRect(boxX, boxY, boxW, boxH)

	for y := box.Y; y < box.Bottom(); y++ {
		for x := box.X; x < box.Right(); x++ {
			dst.SetCell(x, y, core.Cell{Rune: ' ', Fg: core.ColorWhite, Bg: core.ColorBlack})
		}
	}
	dst.DrawBox(box)

	dst.DrawStyledText(boxX+(boxW-len(title))/2, boxY+1, title, titleColor)
	dst.DrawStyledText(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle, core.ColorWhite)
}

// drawTooSmall explains why nothing is running.
func (g *Game) drawTooSmall(dst *core.Screen) {
	need := fmt.Sprintf("Need %dx%d, have %dx%d",
		g.cfg.MinScreenWidth(), g.cfg.MinScreenHeight(), dst.Width(), dst.Height())
	mid := dst.Height() / 2
	dst.DrawTextCentered(mid-1, "Screen too small")
	dst.DrawTextCentered(mid+1, need)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		Best:     g.best,
		GameOver: g.gameOver,
		Won:      g.bannerTicks > 0,
		Paused:   g.paused,
	}
}

// Register the game with the registry
func init() {
	registry.Register("crossing", func() registry.Game {
		return New()
	})
}
