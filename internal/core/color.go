package core

import "image/color"

// Color is a 15-bit packed color: [unused:1][blue:5][green:5][red:5].
type Color uint16

// channelMax is the largest value of a 5-bit channel.
const channelMax = 0x1F

// RGB15 packs three 5-bit channels. Each channel is masked to 5 bits.
func RGB15(r, g, b int) Color {
	return Color((r & channelMax) | (g&channelMax)<<5 | (b&channelMax)<<10)
}

// RGB8 packs 8-bit channels by dropping their low three bits.
func RGB8(r, g, b uint8) Color {
	return RGB15(int(r>>3), int(g>>3), int(b>>3))
}

// Predefined colors.
const (
	ColorBlack    Color = 0
	ColorWhite    Color = 0x7FFF
	ColorRed      Color = 0x001F
	ColorGreen    Color = 0x03E0
	ColorBlue     Color = 0x7C00
	ColorYellow   Color = ColorRed | ColorGreen
	ColorMagenta  Color = ColorRed | ColorBlue
	ColorCyan     Color = ColorGreen | ColorBlue
	ColorGray     Color = 16 | 16<<5 | 16<<10
	ColorDarkGray Color = 8 | 8<<5 | 8<<10
)

// R returns the red channel (0-31).
func (c Color) R() int { return int(c) & channelMax }

// G returns the green channel (0-31).
func (c Color) G() int { return int(c>>5) & channelMax }

// B returns the blue channel (0-31).
func (c Color) B() int { return int(c>>10) & channelMax }

// Scale multiplies every channel by num/den using integer division.
// A non-positive denominator yields black.
func (c Color) Scale(num, den int) Color {
	if den <= 0 {
		return ColorBlack
	}
	return RGB15(c.R()*num/den, c.G()*num/den, c.B()*num/den)
}

// ToRGBA expands the color to 8 bits per channel.
func (c Color) ToRGBA() color.RGBA {
	return color.RGBA{
		R: expand5(c.R()),
		G: expand5(c.G()),
		B: expand5(c.B()),
		A: 0xFF,
	}
}

// ColorFromRGBA converts any color to the 15-bit format.
func ColorFromRGBA(c color.Color) Color {
	rgba := color.RGBAModel.Convert(c).(color.RGBA)
	return RGB8(rgba.R, rgba.G, rgba.B)
}

func expand5(v int) uint8 {
	return uint8(v<<3 | v>>2)
}
