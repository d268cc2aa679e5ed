package types

import "image/color"

// Interface palette, warm tones around the lemon yellow.
var (
	ColorBackground    = color.RGBA{28, 34, 24, 255}
	ColorFieldBg       = color.RGBA{46, 64, 40, 255}
	ColorFieldBorder   = color.RGBA{120, 160, 100, 255}
	ColorText          = color.RGBA{240, 236, 220, 255}
	ColorTextDim       = color.RGBA{160, 156, 140, 255}
	ColorTextHighlight = color.RGBA{255, 226, 64, 255}
	ColorButton        = color.RGBA{74, 84, 58, 255}
	ColorButtonHover   = color.RGBA{98, 112, 74, 255}
	ColorButtonText    = color.RGBA{245, 240, 210, 255}
	ColorInputBg       = color.RGBA{40, 48, 34, 255}
	ColorInputBorder   = color.RGBA{110, 124, 90, 255}
	ColorInputFocused  = color.RGBA{230, 200, 60, 255}
	ColorOverlay       = color.RGBA{0, 0, 0, 170}
	ColorError         = color.RGBA{240, 90, 70, 255}
)

// Stand-ins drawn when a sprite failed to load.
var (
	ColorHead     = color.RGBA{40, 150, 60, 255}
	ColorSegment  = color.RGBA{90, 200, 100, 255}
	ColorLemon    = color.RGBA{250, 230, 60, 255}
	ColorRotten   = color.RGBA{130, 120, 40, 255}
	ColorApple    = color.RGBA{220, 40, 40, 255}
	ColorBanana   = color.RGBA{255, 200, 90, 255}
	ColorObstacle = color.RGBA{160, 160, 170, 255}
)

// Darken scales the color channels by factor, keeping alpha.
func Darken(c color.RGBA, factor float64) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * factor),
		G: uint8(float64(c.G) * factor),
		B: uint8(float64(c.B) * factor),
		A: c.A,
	}
}
