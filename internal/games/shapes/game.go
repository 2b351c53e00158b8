// Package shapes cycles through the canvas primitives: a rotating line
// fan, concentric circles, nested outlines and a scaled sprite.
package shapes

import (
	"github.com/vovakirdan/fbcore/internal/core"
	"github.com/vovakirdan/fbcore/internal/loop"
	"github.com/vovakirdan/fbcore/internal/registry"
	"github.com/vovakirdan/fbcore/internal/text"
)

const (
	fanSpokes = 12
	fanRadius = 50
	rings     = 6
)

// palettes are selected with A.
var palettes = [][]core.Color{
	{core.ColorRed, core.ColorYellow, core.ColorGreen, core.ColorCyan, core.ColorBlue, core.ColorMagenta},
	{core.ColorWhite, core.ColorGray, core.ColorDarkGray},
	{core.RGB15(31, 20, 0), core.RGB15(31, 10, 10), core.RGB15(20, 0, 31)},
}

// smiley is an 8x8 sprite on a black background.
var smiley = func() []core.Color {
	rows := []string{
		"..####..",
		".#....#.",
		"#.#..#.#",
		"#......#",
		"#.#..#.#",
		"#..##..#",
		".#....#.",
		"..####..",
	}
	out := make([]core.Color, 0, 64)
	for _, row := range rows {
		for _, ch := range row {
			if ch == '#' {
				out = append(out, core.ColorYellow)
			} else {
				out = append(out, core.ColorBlack)
			}
		}
	}
	return out
}()

// Game is the primitive showcase.
type Game struct {
	palette int
	angle   core.Fixed
	tick    int
}

// New creates the showcase.
func New() *Game {
	return &Game{}
}

func init() {
	registry.Register("shapes", func() registry.Game { return New() })
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string { return "shapes" }

// Title returns the display name for this game.
func (g *Game) Title() string { return "Shapes" }

// Palette returns the selected palette index.
func (g *Game) Palette() int { return g.palette }

func (g *Game) Init(r *loop.Runner) {
	r.SetPhase(loop.PhasePlaying)
}

func (g *Game) HandleInput(r *loop.Runner) {
	in := r.Input()
	if in.Pressed(core.ButtonA) {
		g.palette = (g.palette + 1) % len(palettes)
	}
	if in.Pressed(core.ButtonB) {
		g.palette = (g.palette + len(palettes) - 1) % len(palettes)
	}
	if in.Pressed(core.ButtonStart) {
		if r.Phase() == loop.PhasePaused {
			r.SetPhase(loop.PhasePlaying)
		} else {
			r.SetPhase(loop.PhasePaused)
		}
	}
}

func (g *Game) Update(r *loop.Runner) {
	if r.Phase() != loop.PhasePlaying {
		return
	}
	g.tick++
	// About one turn every four seconds at 60 Hz.
	g.angle = g.angle.Add(core.FixedFromRaw(7))
	if g.angle >= core.FixedTwoPi {
		g.angle = g.angle.Sub(core.FixedTwoPi)
	}
}

func (g *Game) color(i int) core.Color {
	p := palettes[g.palette]
	return p[i%len(p)]
}

func (g *Game) Render(r *loop.Runner) {
	c := r.Canvas()
	c.Clear(core.ColorBlack)

	// Line fan, left half.
	cx, cy := 60, 80
	step := core.FixedTwoPi.Raw() / fanSpokes
	for i := 0; i < fanSpokes; i++ {
		a := g.angle.Add(core.FixedFromRaw(int32(i) * step))
		x := cx + core.Cos(a).Mul(core.FixedFromInt(fanRadius)).Int()
		y := cy + core.Sin(a).Mul(core.FixedFromInt(fanRadius)).Int()
		c.DrawLine(cx, cy, x, y, g.color(i))
	}

	// Concentric circles, right half, breathing with the tick.
	ccx, ccy := 180, 80
	pulse := (g.tick / 4) % 8
	for i := 0; i < rings; i++ {
		c.DrawCircle(ccx, ccy, 8+i*8+pulse, g.color(i))
	}

	// Nested outlines around the whole scene.
	for i := 0; i < 3; i++ {
		c.DrawRectOutline(2+i*3, 2+i*3, c.Width()-4-i*6, c.Height()-4-i*6, g.color(i+1))
	}

	c.DrawScaledSprite(smiley, ccx-8, ccy-8, 8, 8, 2)
	c.DrawSprite(smiley, cx-4, cy-4, 8, 8)

	if r.Phase() == loop.PhasePaused {
		text.DrawCentered(c, c.Height()-14, "PAUSED", core.ColorWhite)
	}
}
