package core

// Color represents a palette entry for a screen cell.
// Platforms map it to ANSI codes (terminal) or RGBA (window).
type Color uint8

// Predefined colors for game elements.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
	ColorGray
	ColorDarkGreen
	ColorPurple
	ColorBlack
)

// Cell is a single styled character on a Screen.
type Cell struct {
	Rune rune
	Fg   Color // Foreground (glyph) color
	Bg   Color // Background color, ColorDefault leaves it untouched
}
