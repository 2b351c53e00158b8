// Package text draws bitmap strings onto a core.Canvas using tinyfont.
package text

import (
	"image/color"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/proggy"

	"github.com/vovakirdan/fbcore/internal/core"
)

// Face is a font bound to the canvas adapter.
type Face struct {
	font tinyfont.Fonter
}

// Default is the small proportional font used by the demo games.
var Default = NewFace(&proggy.TinySZ8pt7b)

// NewFace wraps any tinyfont font.
func NewFace(f tinyfont.Fonter) *Face {
	return &Face{font: f}
}

// Draw writes s with its baseline at y, starting at x.
func (f *Face) Draw(c *core.Canvas, x, y int, s string, col core.Color) {
	tinyfont.WriteLine(&canvasDisplay{c: c}, f.font, int16(x), int16(y), s, col.ToRGBA())
}

// DrawCentered writes s horizontally centered on the canvas.
func (f *Face) DrawCentered(c *core.Canvas, y int, s string, col core.Color) {
	f.Draw(c, (c.Width()-f.Width(s))/2, y, s, col)
}

// Width returns the advance width of s in pixels.
func (f *Face) Width(s string) int {
	_, outbox := tinyfont.LineWidth(f.font, s)
	return int(outbox)
}

// LineHeight returns the distance between baselines.
func (f *Face) LineHeight() int {
	return int(f.font.GetYAdvance())
}

// Draw writes s with the default face.
func Draw(c *core.Canvas, x, y int, s string, col core.Color) {
	Default.Draw(c, x, y, s, col)
}

// DrawCentered writes s centered with the default face.
func DrawCentered(c *core.Canvas, y int, s string, col core.Color) {
	Default.DrawCentered(c, y, s, col)
}

// Width measures s in the default face.
func Width(s string) int {
	return Default.Width(s)
}

// canvasDisplay lets tinyfont draw into a Canvas. Every pixel goes through
// PlotPixel, so text is clipped like any other primitive.
type canvasDisplay struct {
	c *core.Canvas
}

var _ drivers.Displayer = (*canvasDisplay)(nil)

func (d *canvasDisplay) Size() (x, y int16) {
	return int16(d.c.Width()), int16(d.c.Height())
}

func (d *canvasDisplay) SetPixel(x, y int16, c color.RGBA) {
	d.c.PlotPixel(int(x), int(y), core.ColorFromRGBA(c))
}

func (d *canvasDisplay) Display() error {
	return nil
}
