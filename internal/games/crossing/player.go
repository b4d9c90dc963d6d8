package crossing

import "github.com/vovakirdan/crossroad/internal/core"

// Player is the token steered across the road, in field coordinates.
type Player struct {
	X, Y   int
	W, H   int
	startX int
	startY int
	stepX  int
	stepY  int
	maxX   int
}

// NewPlayer creates a player at its spawn point.
// stepY is the distance of one vertical hop (one lane).
func NewPlayer(l Layout, w, h, stepX int) *Player {
	sx, sy := l.StartPos(w, h)
	p := &Player{
		W:      w,
		H:      h,
		startX: sx,
		startY: sy,
		stepX:  stepX,
		stepY:  l.LaneH,
		maxX:   core.Max(l.Width-w, 0),
	}
	p.Reset()
	return p
}

// Reset moves the player back to the spawn point.
func (p *Player) Reset() {
	p.X = p.startX
	p.Y = p.startY
}

// Rect returns the player's collision rectangle.
func (p *Player) Rect() core.Rect {
	return core.NewRect(p.X, p.Y, p.W, p.H)
}

// MoveUp hops one lane up, stopping at the top of the field.
func (p *Player) MoveUp() bool {
	return p.moveTo(p.X, core.Max(p.Y-p.stepY, 0))
}

// MoveDown hops one lane down, never below the spawn row.
func (p *Player) MoveDown() bool {
	return p.moveTo(p.X, core.Min(p.Y+p.stepY, p.startY))
}

// MoveLeft steps left, stopping at the left edge.
func (p *Player) MoveLeft() bool {
	return p.moveTo(core.Clamp(p.X-p.stepX, 0, p.maxX), p.Y)
}

// MoveRight steps right, stopping with the right edge on the screen edge.
func (p *Player) MoveRight() bool {
	return p.moveTo(core.Clamp(p.X+p.stepX, 0, p.maxX), p.Y)
}

// moveTo reports whether the position changed.
func (p *Player) moveTo(x, y int) bool {
	if x == p.X && y == p.Y {
		return false
	}
	p.X, p.Y = x, y
	return true
}
