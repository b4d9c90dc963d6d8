package crossing

import (
	"github.com/vovakirdan/crossroad/internal/config"
	"github.com/vovakirdan/crossroad/internal/core"
)

// Layout maps the playfield onto screen rows.
//
// Field rows, top to bottom: goal zone, lanes[0..n), start zone.
// All row values returned by Layout methods are field-relative; add
// OriginY to get a screen row.
type Layout struct {
	OriginY int // Screen row of the field's top edge
	Width   int // Field width in cells (the screen width)
	SafeH   int // Height of each safe zone
	LaneH   int // Height of one lane
	Lanes   int // Number of lanes
}

// NewLayout fits the configured field into a screen, centering it
// vertically below the HUD rows when there is spare space.
func NewLayout(cfg config.CrossingConfig, screenW, screenH int) Layout {
	l := Layout{
		Width: screenW,
		SafeH: cfg.Field.SafeZoneHeight,
		LaneH: cfg.Field.LaneHeight,
		Lanes: len(cfg.Lanes),
	}
	spare := screenH - cfg.Field.HUDRows - l.Height()
	l.OriginY = cfg.Field.HUDRows + core.Max(spare/2, 0)
	return l
}

// Height returns the total field height.
func (l Layout) Height() int {
	return 2*l.SafeH + l.Lanes*l.LaneH
}

// GoalBottom returns the first row below the goal zone. A player whose
// top row is above it has crossed.
func (l Layout) GoalBottom() int {
	return l.SafeH
}

// LaneTop returns the first row of lane i.
func (l Layout) LaneTop(i int) int {
	return l.SafeH + i*l.LaneH
}

// StartTop returns the first row of the start zone.
func (l Layout) StartTop() int {
	return l.LaneTop(l.Lanes)
}

// CarRow returns the row of a body of height h centered in lane i.
func (l Layout) CarRow(i, h int) int {
	return l.LaneTop(i) + (l.LaneH-h)/2
}

// StartPos returns the player spawn point for a w x h token: centered
// horizontally and vertically inside the start zone.
func (l Layout) StartPos(w, h int) (int, int) {
	return (l.Width - w) / 2, l.StartTop() + (l.SafeH-h)/2
}

// Goal, Road and Start return the zone rectangles in field coordinates.
func (l Layout) Goal() core.Rect {
	return core.NewRect(0, 0, l.Width, l.SafeH)
}

func (l Layout) Road() core.Rect {
	return core.NewRect(0, l.SafeH, l.Width, l.Lanes*l.LaneH)
}

func (l Layout) Start() core.Rect {
	return core.NewRect(0, l.StartTop(), l.Width, l.SafeH)
}
