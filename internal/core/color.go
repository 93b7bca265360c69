package core

// Color represents a foreground color for a screen cell.
// The platform renderer maps these to ANSI 256-color codes.
type Color uint8

// Predefined colors for game elements (entry node, exit port, trap alerts,
// alarm states, HUD text).
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
)
