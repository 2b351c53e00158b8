// Package hello is the wave animation demo: a bobbing HELLO, two rows of
// squares riding sine and cosine waves, and a blinking border.
package hello

import (
	"github.com/vovakirdan/fbcore/internal/core"
	"github.com/vovakirdan/fbcore/internal/loop"
	"github.com/vovakirdan/fbcore/internal/registry"
	"github.com/vovakirdan/fbcore/internal/text"
)

const (
	letterStep  = 10 // Horizontal distance between letters
	blinkPeriod = 30 // Frames per border on/off half cycle
	squares     = 8
	squareSize  = 4
)

// Game animates purely from its own tick counter, so pausing freezes the
// picture in place.
type Game struct {
	tick int
}

// New creates the demo.
func New() *Game {
	return &Game{}
}

func init() {
	registry.Register("hello", func() registry.Game { return New() })
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string { return "hello" }

// Title returns the display name for this game.
func (g *Game) Title() string { return "Hello Wave" }

// Tick returns the number of animated frames.
func (g *Game) Tick() int { return g.tick }

// Init starts the animation right away.
func (g *Game) Init(r *loop.Runner) {
	g.tick = 0
	r.SetPhase(loop.PhasePlaying)
}

// HandleInput toggles pause on Start and restarts on Select.
func (g *Game) HandleInput(r *loop.Runner) {
	in := r.Input()
	if in.Pressed(core.ButtonSelect) {
		g.tick = 0
	}
	if !in.Pressed(core.ButtonStart) {
		return
	}
	if r.Phase() == loop.PhasePaused {
		r.SetPhase(loop.PhasePlaying)
	} else {
		r.SetPhase(loop.PhasePaused)
	}
}

// Update advances the animation clock.
func (g *Game) Update(r *loop.Runner) {
	if r.Phase() == loop.PhasePlaying {
		g.tick++
	}
}

// wave returns amp * fn(step * rateNum/rateDen), the angle in radians.
func wave(step, rateNum, rateDen, amp int, fn func(core.Fixed) core.Fixed) int {
	angle := core.FixedFromRaw(int32(step * rateNum << core.FixedShift / rateDen))
	return fn(angle).Mul(core.FixedFromInt(amp)).Int()
}

// Render draws the whole scene from scratch.
func (g *Game) Render(r *loop.Runner) {
	c := r.Canvas()
	c.Clear(core.ColorBlack)

	baseX := (c.Width() - 5*letterStep) / 2
	baseY := c.Height()/2 - 4
	for i, ch := range "HELLO" {
		dy := wave(g.tick+i*8, 1, 10, 10, core.Sin)
		col := core.ColorWhite
		if i%2 == 1 {
			col = core.ColorYellow
		}
		text.Draw(c, baseX+i*letterStep, baseY+dy+8, string(ch), col)
	}
	text.Draw(c, baseX-5, baseY+38, "WORLD", core.ColorGreen)

	for i := 0; i < squares; i++ {
		x := 20 + i*25
		y := 20 + wave(g.tick+i*10, 15, 100, 15, core.Sin)
		c.DrawRect(x, y, squareSize, squareSize, core.ColorRed)
		y = 120 + wave(g.tick+i*12, 12, 100, 10, core.Cos)
		c.DrawRect(x, y, squareSize, squareSize, core.ColorBlue)
	}

	border := core.ColorBlack
	if (g.tick/blinkPeriod)%2 == 1 {
		border = core.ColorMagenta
	}
	w, h := c.Width(), c.Height()
	c.DrawLine(0, 0, w-1, 0, border)
	c.DrawLine(0, 0, 0, h-1, border)
	c.DrawLine(w-1, 0, w-1, h-1, border)
	c.DrawLine(0, h-1, w-1, h-1, border)

	if r.Phase() == loop.PhasePaused {
		text.DrawCentered(c, h-12, "PAUSED", core.ColorGray)
	}
}
