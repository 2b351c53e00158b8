package core

import (
	"image"
	"image/color"
)

// Native display dimensions.
const (
	ScreenWidth  = 240
	ScreenHeight = 160
)

// Canvas draws into a linear, row-major buffer of colors.
// The buffer belongs to the video device; the canvas only addresses it.
//
// Every primitive funnels its writes through PlotPixel, so no geometry,
// however malformed, can write outside the buffer.
type Canvas struct {
	buf    []Color
	width  int
	height int
}

// NewCanvas wraps buf as a width x height surface. If buf is shorter than
// width*height the addressable height shrinks to the rows it can hold.
func NewCanvas(buf []Color, width, height int) *Canvas {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	if width > 0 && len(buf) < width*height {
		height = len(buf) / width
	}
	return &Canvas{buf: buf, width: width, height: height}
}

// Width returns the canvas width in pixels.
func (c *Canvas) Width() int {
	return c.width
}

// Height returns the canvas height in pixels.
func (c *Canvas) Height() int {
	return c.height
}

// Buffer exposes the underlying pixels.
func (c *Canvas) Buffer() []Color {
	return c.buf
}

// InBounds reports whether (x, y) addresses a pixel.
func (c *Canvas) InBounds(x, y int) bool {
	return x >= 0 && x < c.width && y >= 0 && y < c.height
}

// PlotPixel writes col at (x, y). Out-of-range coordinates are ignored.
func (c *Canvas) PlotPixel(x, y int, col Color) {
	if c.InBounds(x, y) {
		c.buf[y*c.width+x] = col
	}
}

// Pixel returns the color at (x, y), or black when out of range.
func (c *Canvas) Pixel(x, y int) Color {
	if c.InBounds(x, y) {
		return c.buf[y*c.width+x]
	}
	return ColorBlack
}

// Clear fills the whole buffer with col.
func (c *Canvas) Clear(col Color) {
	n := c.width * c.height
	for i := 0; i < n; i++ {
		c.buf[i] = col
	}
}

// Blit copies src into the buffer starting at the first pixel.
// Extra source pixels are dropped.
func (c *Canvas) Blit(src []Color) {
	copy(c.buf[:c.width*c.height], src)
}

// DrawRect fills a rectangle. Non-positive sizes draw nothing.
func (c *Canvas) DrawRect(x, y, w, h int, col Color) {
	for dy := 0; dy < h; dy++ {
		for dx := 0; dx < w; dx++ {
			c.PlotPixel(x+dx, y+dy, col)
		}
	}
}

// DrawRectOutline draws the one pixel border of a rectangle.
func (c *Canvas) DrawRectOutline(x, y, w, h int, col Color) {
	// Top and bottom
	for dx := 0; dx < w; dx++ {
		c.PlotPixel(x+dx, y, col)
		c.PlotPixel(x+dx, y+h-1, col)
	}
	// Left and right, corners already drawn
	for dy := 1; dy < h-1; dy++ {
		c.PlotPixel(x, y+dy, col)
		c.PlotPixel(x+w-1, y+dy, col)
	}
}

// DrawLine draws a line with Bresenham's algorithm. Both endpoints are
// included and exactly one pixel is plotted per step along the major axis.
func (c *Canvas) DrawLine(x1, y1, x2, y2 int, col Color) {
	dx := x2 - x1
	dy := y2 - y1
	dxAbs := Abs(dx)
	dyAbs := Abs(dy)
	xInc, yInc := 1, 1
	if dx < 0 {
		xInc = -1
	}
	if dy < 0 {
		yInc = -1
	}

	x, y := x1, y1

	if dxAbs >= dyAbs {
		// X-major
		e := dyAbs - dxAbs/2
		for i := 0; i <= dxAbs; i++ {
			c.PlotPixel(x, y, col)
			if e >= 0 && dyAbs != 0 {
				y += yInc
				e -= dxAbs
			}
			e += dyAbs
			x += xInc
		}
		return
	}

	// Y-major
	e := dxAbs - dyAbs/2
	for i := 0; i <= dyAbs; i++ {
		c.PlotPixel(x, y, col)
		if e >= 0 && dxAbs != 0 {
			x += xInc
			e -= dyAbs
		}
		e += dxAbs
		y += yInc
	}
}

// DrawCircle draws a circle outline with the midpoint algorithm, mirroring
// each computed offset into all eight octants. Radius 0 plots the center;
// a negative radius draws nothing.
func (c *Canvas) DrawCircle(cx, cy, r int, col Color) {
	x := 0
	y := r
	d := 3 - 2*r

	for x <= y {
		c.PlotPixel(cx+x, cy+y, col)
		c.PlotPixel(cx-x, cy+y, col)
		c.PlotPixel(cx+x, cy-y, col)
		c.PlotPixel(cx-x, cy-y, col)
		c.PlotPixel(cx+y, cy+x, col)
		c.PlotPixel(cx-y, cy+x, col)
		c.PlotPixel(cx+y, cy-x, col)
		c.PlotPixel(cx-y, cy-x, col)

		x++
		if d > 0 {
			y--
			d += 4*(x-y) + 10
		} else {
			d += 4*x + 6
		}
	}
}

// DrawSprite copies a w x h block of colors to (x, y). Rows missing from
// a short source are skipped.
func (c *Canvas) DrawSprite(src []Color, x, y, w, h int) {
	for sy := 0; sy < h; sy++ {
		for sx := 0; sx < w; sx++ {
			i := sy*w + sx
			if i >= len(src) {
				return
			}
			c.PlotPixel(x+sx, y+sy, src[i])
		}
	}
}

// DrawScaledSprite draws a sprite enlarged by an integer factor using
// nearest-neighbour sampling.
func (c *Canvas) DrawScaledSprite(src []Color, x, y, srcW, srcH, scale int) {
	if scale <= 0 {
		return
	}
	for sy := 0; sy < srcH; sy++ {
		for sx := 0; sx < srcW; sx++ {
			i := sy*srcW + sx
			if i >= len(src) {
				return
			}
			c.DrawRect(x+sx*scale, y+sy*scale, scale, scale, src[i])
		}
	}
}

// ColorModel implements image.Image.
func (c *Canvas) ColorModel() color.Model {
	return color.RGBAModel
}

// Bounds implements image.Image.
func (c *Canvas) Bounds() image.Rectangle {
	return image.Rect(0, 0, c.width, c.height)
}

// At implements image.Image.
func (c *Canvas) At(x, y int) color.Color {
	return c.Pixel(x, y).ToRGBA()
}
