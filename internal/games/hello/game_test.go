package hello

import (
	"testing"

	"github.com/vovakirdan/fbcore/internal/core"
	"github.com/vovakirdan/fbcore/internal/loop"
	"github.com/vovakirdan/fbcore/internal/platform/headless"
)

func run(frames int, script ...core.Buttons) (*Game, *loop.Runner) {
	r, _ := headless.NewRunner(headless.NewScript(script...))
	g := New()
	r.Start(g)
	for i := 0; i < frames; i++ {
		r.Step(g)
	}
	return g, r
}

func count(c *core.Canvas, col core.Color) int {
	n := 0
	for _, px := range c.Buffer() {
		if px == col {
			n++
		}
	}
	return n
}

func TestBorderBlinks(t *testing.T) {
	tests := []struct {
		frames int
		want   core.Color
	}{
		{1, core.ColorBlack},
		{29, core.ColorBlack},
		{30, core.ColorMagenta},
		{59, core.ColorMagenta},
		{60, core.ColorBlack},
	}
	for _, tc := range tests {
		_, r := run(tc.frames)
		c := r.Canvas()
		for _, p := range [][2]int{{0, 0}, {239, 0}, {0, 159}, {239, 159}, {120, 0}} {
			if got := c.Pixel(p[0], p[1]); got != tc.want {
				t.Errorf("frame %d: border pixel %v = %#04x, expected %#04x", tc.frames, p, got, tc.want)
			}
		}
	}
}

func TestSquaresDrawn(t *testing.T) {
	_, r := run(5)
	c := r.Canvas()
	if n := count(c, core.ColorRed); n != squares*squareSize*squareSize {
		t.Errorf("red pixels = %d, expected %d", n, squares*squareSize*squareSize)
	}
	if n := count(c, core.ColorBlue); n != squares*squareSize*squareSize {
		t.Errorf("blue pixels = %d, expected %d", n, squares*squareSize*squareSize)
	}
	if count(c, core.ColorGreen) == 0 {
		t.Error("WORLD not drawn")
	}
	if count(c, core.ColorWhite) == 0 || count(c, core.ColorYellow) == 0 {
		t.Error("HELLO letters not drawn")
	}
}

func TestWaveStaysInAmplitude(t *testing.T) {
	for step := -200; step < 400; step++ {
		if v := wave(step, 1, 10, 10, core.Sin); v < -10 || v > 10 {
			t.Fatalf("wave(%d) = %d outside [-10, 10]", step, v)
		}
	}
	if v := wave(0, 12, 100, 10, core.Cos); v != 10 {
		t.Errorf("cos wave at 0 = %d, expected 10", v)
	}
}

func TestPauseFreezes(t *testing.T) {
	script := []core.Buttons{0, 0, core.ButtonStart, 0, 0, 0}
	g, r := run(len(script), script...)
	if r.Phase() != loop.PhasePaused {
		t.Fatalf("phase = %v, expected paused", r.Phase())
	}
	if g.Tick() != 2 {
		t.Errorf("Tick() = %d, expected 2", g.Tick())
	}

	script = append(script, core.ButtonStart, 0)
	g, r = run(len(script), script...)
	if r.Phase() != loop.PhasePlaying || g.Tick() != 4 {
		t.Errorf("after resume: phase %v tick %d, expected playing and 4", r.Phase(), g.Tick())
	}
}

func TestSelectRestarts(t *testing.T) {
	g, _ := run(10, 0, 0, 0, 0, 0, 0, 0, 0, core.ButtonSelect, 0)
	if g.Tick() != 2 {
		t.Errorf("Tick() = %d, expected 2", g.Tick())
	}
}
