package window

import (
	"image/color"

	"golang.org/x/image/colornames"

	"github.com/vovakirdan/crossroad/internal/core"
)

// palette maps core colors onto named RGB colors.
var palette = map[core.Color]color.RGBA{
	core.ColorRed:           colornames.Firebrick,
	core.ColorGreen:         colornames.Green,
	core.ColorYellow:        colornames.Gold,
	core.ColorBlue:          colornames.Royalblue,
	core.ColorMagenta:       colornames.Darkmagenta,
	core.ColorCyan:          colornames.Darkcyan,
	core.ColorWhite:         colornames.Lightgray,
	core.ColorBrightRed:     colornames.Red,
	core.ColorBrightGreen:   colornames.Lime,
	core.ColorBrightYellow:  colornames.Yellow,
	core.ColorBrightBlue:    colornames.Dodgerblue,
	core.ColorBrightMagenta: colornames.Magenta,
	core.ColorBrightCyan:    colornames.Cyan,
	core.ColorBrightWhite:   colornames.White,
	core.ColorOrange:        colornames.Orange,
	core.ColorGray:          colornames.Dimgray,
	core.ColorDarkGreen:     colornames.Darkgreen,
	core.ColorPurple:        colornames.Purple,
	core.ColorBlack:         colornames.Black,
}

// Colors used where a cell leaves its color at ColorDefault.
var (
	defaultFg = colornames.White
	defaultBg = colornames.Black
)

// rgba resolves c, falling back for ColorDefault and unknown values.
func rgba(c core.Color, fallback color.RGBA) color.RGBA {
	if v, ok := palette[c]; ok {
		return v
	}
	return fallback
}
