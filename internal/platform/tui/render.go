package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/fbcore/internal/core"
)

// halfBlock paints the upper half of a cell in the foreground color and
// the lower half in the background color, so one cell shows two pixels.
const halfBlock = "▀"

// cellColors is a (top, bottom) pixel pair.
type cellColors struct {
	top, bottom core.Color
}

// styleCache keeps one lipgloss style per color pair seen so far.
type styleCache map[cellColors]lipgloss.Style

func (c styleCache) get(cc cellColors) lipgloss.Style {
	if s, ok := c[cc]; ok {
		return s
	}
	s := lipgloss.NewStyle().
		Foreground(lipgloss.Color(hexColor(cc.top))).
		Background(lipgloss.Color(hexColor(cc.bottom)))
	c[cc] = s
	return s
}

func hexColor(c core.Color) string {
	rgba := c.ToRGBA()
	return fmt.Sprintf("#%02x%02x%02x", rgba.R, rgba.G, rgba.B)
}

// Downsample returns the smallest integer step at which a w x h frame
// fits into cols x rows terminal cells, two pixel rows per cell.
func Downsample(w, h, cols, rows int) int {
	if cols <= 0 || rows <= 0 {
		return 1
	}
	step := 1
	for (w+step-1)/step > cols || (h+2*step-1)/(2*step) > rows {
		step++
		if step >= w && step >= h {
			break
		}
	}
	return step
}

// RenderFrame converts a frame to styled half-block text, sampling every
// step-th pixel. Adjacent cells with the same colors share one styled run
// to keep the escape sequences short.
func RenderFrame(pixels []core.Color, w, h, step int, styles styleCache) string {
	if step < 1 {
		step = 1
	}
	if styles == nil {
		styles = make(styleCache)
	}
	at := func(x, y int) core.Color {
		if y >= h {
			return core.ColorBlack
		}
		i := y*w + x
		if i < 0 || i >= len(pixels) {
			return core.ColorBlack
		}
		return pixels[i]
	}

	var sb strings.Builder
	cols := (w + step - 1) / step
	sb.Grow(cols * h / step * 2)

	for y := 0; y < h; y += 2 * step {
		if y > 0 {
			sb.WriteRune('\n')
		}
		x := 0
		for x < w {
			start := cellColors{at(x, y), at(x, y+step)}
			n := 0
			for x < w {
				cc := cellColors{at(x, y), at(x, y+step)}
				if cc != start {
					break
				}
				n++
				x += step
			}
			sb.WriteString(styles.get(start).Render(strings.Repeat(halfBlock, n)))
		}
	}
	return sb.String()
}
