package core

// Color represents a foreground color for a screen cell.
// Uses ANSI 256-color codes for terminal compatibility.
type Color uint8

// Palette used by the games. ColorDefault leaves the terminal color untouched.
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
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
	ColorGray
)

// Semantic aliases for feedback and widget states.
const (
	ColorCorrect = ColorBrightGreen
	ColorWrong   = ColorBrightRed
	ColorNotice  = ColorBrightYellow
	ColorFocus   = ColorBrightCyan
	ColorMuted   = ColorGray
)
