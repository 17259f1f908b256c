package core

// Color is the foreground color of a screen cell. The terminal frontend
// maps each value to an ANSI 256-color code.
type Color uint8

// Palette used by the renderer.
const (
	ColorDefault Color = iota
	ColorRed
	ColorYellow
	ColorGray
	ColorBrightGreen
	ColorBrightCyan
	ColorBrightWhite
)
