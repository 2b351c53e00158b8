package core

import (
	"image/color"
	"testing"
)

func TestRGB15(t *testing.T) {
	tests := []struct {
		name    string
		r, g, b int
		want    Color
	}{
		{"black", 0, 0, 0, ColorBlack},
		{"white", 31, 31, 31, ColorWhite},
		{"red", 31, 0, 0, 0x001F},
		{"green", 0, 31, 0, 0x03E0},
		{"blue", 0, 0, 31, 0x7C00},
		{"masked", 33, 0, 0, 1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := RGB15(tc.r, tc.g, tc.b); got != tc.want {
				t.Errorf("RGB15(%d, %d, %d) = %#04x, expected %#04x", tc.r, tc.g, tc.b, got, tc.want)
			}
		})
	}
}

func TestColorChannels(t *testing.T) {
	c := RGB15(3, 17, 29)
	if c.R() != 3 || c.G() != 17 || c.B() != 29 {
		t.Errorf("channels = (%d, %d, %d), expected (3, 17, 29)", c.R(), c.G(), c.B())
	}
	if c&0x8000 != 0 {
		t.Error("bit 15 must stay clear")
	}
}

func TestRGB8(t *testing.T) {
	if got := RGB8(255, 128, 7); got != RGB15(31, 16, 0) {
		t.Errorf("RGB8() = %#04x", got)
	}
}

func TestColorScale(t *testing.T) {
	tests := []struct {
		num, den int
		want     Color
	}{
		{31, 31, ColorWhite},
		{0, 31, ColorBlack},
		{15, 31, RGB15(15, 15, 15)},
		{1, 0, ColorBlack},
	}

	for _, tc := range tests {
		if got := ColorWhite.Scale(tc.num, tc.den); got != tc.want {
			t.Errorf("Scale(%d, %d) = %#04x, expected %#04x", tc.num, tc.den, got, tc.want)
		}
	}
}

func TestColorRGBA(t *testing.T) {
	if got := ColorWhite.ToRGBA(); got != (color.RGBA{255, 255, 255, 255}) {
		t.Errorf("white ToRGBA() = %v", got)
	}
	if got := ColorBlack.ToRGBA(); got != (color.RGBA{0, 0, 0, 255}) {
		t.Errorf("black ToRGBA() = %v", got)
	}
	for _, c := range []Color{ColorRed, ColorCyan, ColorGray, RGB15(5, 10, 20)} {
		if back := ColorFromRGBA(c.ToRGBA()); back != c {
			t.Errorf("ColorFromRGBA(%#04x.ToRGBA()) = %#04x", c, back)
		}
	}
}
