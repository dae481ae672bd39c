package core

// Color represents a foreground color for a screen cell.
// Uses ANSI 256-color codes for terminal compatibility.
//
// The zero value doubles as "transparent": board cells holding ColorNone
// are empty, any other color marks an occupied cell.
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
	ColorPurple
)

// ColorNone is the transparent color.
const ColorNone = ColorDefault

// Opaque reports whether the color marks an occupied cell.
func (c Color) Opaque() bool {
	return c != ColorNone
}

// String returns a lowercase color name.
func (c Color) String() string {
	switch c {
	case ColorDefault:
		return "none"
	case ColorRed, ColorBrightRed:
		return "red"
	case ColorGreen, ColorBrightGreen:
		return "green"
	case ColorYellow, ColorBrightYellow:
		return "yellow"
	case ColorBlue, ColorBrightBlue:
		return "blue"
	case ColorMagenta, ColorBrightMagenta:
		return "magenta"
	case ColorCyan, ColorBrightCyan:
		return "cyan"
	case ColorWhite, ColorBrightWhite:
		return "white"
	case ColorOrange:
		return "orange"
	case ColorGray:
		return "gray"
	case ColorPurple:
		return "purple"
	default:
		return "unknown"
	}
}
