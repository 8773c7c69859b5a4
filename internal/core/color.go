package core

// Color represents a foreground color for a screen cell and a colour tag for
// simulation entities. Uses ANSI 256-color codes for terminal compatibility.
type Color uint8

// Predefined colors for game elements.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorWhite
	ColorBrightWhite
	ColorGray
	ColorBrown // obstacles
	ColorGold  // coins and coin particles
	ColorSky   // clouds
	ColorGrass // ground
	ColorCoral // player
)

// ANSI returns the ANSI 256-color code for the color, or "" for the terminal default.
func (c Color) ANSI() string {
	switch c {
	case ColorRed:
		return "1"
	case ColorGreen:
		return "2"
	case ColorYellow:
		return "3"
	case ColorBlue:
		return "4"
	case ColorWhite:
		return "7"
	case ColorBrightWhite:
		return "15"
	case ColorGray:
		return "245"
	case ColorBrown:
		return "130"
	case ColorGold:
		return "220"
	case ColorSky:
		return "153"
	case ColorGrass:
		return "64"
	case ColorCoral:
		return "210"
	default:
		return ""
	}
}
