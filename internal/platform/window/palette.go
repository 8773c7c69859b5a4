package window

import (
	"image/color"

	"github.com/vovakirdan/float-runner/internal/core"
)

var (
	skyTopColor    = color.RGBA{135, 206, 235, 255} // SkyBlue
	skyBottomColor = color.RGBA{152, 251, 152, 255} // PaleGreen
	cloudColor     = color.RGBA{204, 204, 204, 204} // White at 0.8, premultiplied
	groundColor    = color.RGBA{74, 93, 35, 255}
	grassColor     = color.RGBA{90, 114, 51, 255}
	spikeColor     = color.RGBA{101, 67, 33, 255}
	coinShineColor = color.RGBA{255, 248, 220, 255} // Cornsilk
	eyeColor       = color.RGBA{255, 255, 255, 255}
	pupilColor     = color.RGBA{0, 0, 0, 255}
	smileColor     = color.RGBA{255, 20, 147, 255} // DeepPink
	overlayColor   = color.RGBA{0, 0, 0, 178}      // Black at 0.7
)

// paletteColor maps an entity colour tag to an RGB colour.
func paletteColor(c core.Color) color.RGBA {
	switch c {
	case core.ColorRed:
		return color.RGBA{220, 50, 47, 255}
	case core.ColorGreen:
		return color.RGBA{80, 160, 60, 255}
	case core.ColorYellow:
		return color.RGBA{240, 200, 40, 255}
	case core.ColorBlue:
		return color.RGBA{60, 110, 200, 255}
	case core.ColorGray:
		return color.RGBA{138, 138, 138, 255}
	case core.ColorBrown:
		return color.RGBA{139, 69, 19, 255} // SaddleBrown
	case core.ColorGold:
		return color.RGBA{255, 215, 0, 255}
	case core.ColorSky:
		return skyTopColor
	case core.ColorGrass:
		return grassColor
	case core.ColorCoral:
		return color.RGBA{255, 107, 107, 255}
	default:
		return color.RGBA{255, 255, 255, 255}
	}
}

// fade scales a colour by alpha in [0, 1]. color.RGBA is premultiplied, so
// every channel scales.
func fade(c color.RGBA, alpha float64) color.RGBA {
	alpha = core.ClampF(alpha, 0, 1)
	return color.RGBA{
		R: uint8(float64(c.R) * alpha),
		G: uint8(float64(c.G) * alpha),
		B: uint8(float64(c.B) * alpha),
		A: uint8(float64(c.A) * alpha),
	}
}

// lerp blends from a to b by t in [0, 1].
func lerp(a, b color.RGBA, t float64) color.RGBA {
	t = core.ClampF(t, 0, 1)
	mix := func(x, y uint8) uint8 {
		return uint8(float64(x) + (float64(y)-float64(x))*t)
	}
	return color.RGBA{mix(a.R, b.R), mix(a.G, b.G), mix(a.B, b.B), mix(a.A, b.A)}
}

// Colour tags for sprites whose colour is not carried by the entity.
const (
	playerColorTag = core.ColorCoral
	coinColorTag   = core.ColorGold
)
