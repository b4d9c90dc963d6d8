package crossing

import (
	"math/rand"

	"github.com/vovakirdan/crossroad/internal/config"
	"github.com/vovakirdan/crossroad/internal/core"
)

// carColors is the palette cars are painted from.
var carColors = []core.Color{
	core.ColorMagenta,
	core.ColorPurple,
	core.ColorBrightYellow,
	core.ColorBrightMagenta,
	core.ColorOrange,
}

// Car is a single obstacle driving along its lane.
type Car struct {
	X     float64 // Left edge; fractional so slow lanes move smoothly
	Y     int     // Row in field coordinates
	W, H  int
	Speed float64 // Cells per tick; sign is the direction
	Color core.Color
}

// Rect returns the car's collision rectangle.
func (c Car) Rect() core.Rect {
	return core.RectAt(c.X, c.Y, c.W, c.H)
}

// Update moves the car by speed*scale and wraps it around the field.
// A car that fully leaves one side re-enters flush with the other.
func (c *Car) Update(scale float64, fieldW int) {
	c.X += c.Speed * scale

	w := float64(fieldW)
	switch {
	case c.Speed > 0 && c.X > w:
		c.X = -float64(c.W)
	case c.Speed < 0 && c.X+float64(c.W) < 0:
		c.X = w
	}
}

// Traffic owns every car on the road.
type Traffic struct {
	cars   []Car
	rng    *rand.Rand
	fieldW int
}

// NewTraffic populates each lane with evenly spaced cars, offset by a
// seeded random jitter so runs are reproducible.
func NewTraffic(seed int64, l Layout, lanes []config.LaneConfig, carH int) *Traffic {
	t := &Traffic{
		rng:    rand.New(rand.NewSource(seed)),
		fieldW: l.Width,
	}

	for i, lane := range lanes {
		if lane.Cars <= 0 {
			continue
		}
		y := l.CarRow(i, carH)
		spacing := float64(l.Width) / float64(lane.Cars)
		for j := 0; j < lane.Cars; j++ {
			x := spacing * float64(j)
			if lane.Jitter > 0 {
				x += float64(t.rng.Intn(2*lane.Jitter+1) - lane.Jitter)
			}
			t.cars = append(t.cars, Car{
				X:     x,
				Y:     y,
				W:     lane.CarWidth,
				H:     carH,
				Speed: lane.Speed,
				Color: carColors[t.rng.Intn(len(carColors))],
			})
		}
	}
	return t
}

// Update advances every car one tick.
func (t *Traffic) Update(scale float64) {
	for i := range t.cars {
		t.cars[i].Update(scale, t.fieldW)
	}
}

// Collides reports whether r overlaps any car.
func (t *Traffic) Collides(r core.Rect) bool {
	for _, c := range t.cars {
		if r.Intersects(c.Rect()) {
			return true
		}
	}
	return false
}

// Cars returns the current cars.
func (t *Traffic) Cars() []Car {
	return t.cars
}
