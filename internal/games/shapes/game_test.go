package shapes

import (
	"testing"

	"github.com/vovakirdan/fbcore/internal/core"
	"github.com/vovakirdan/fbcore/internal/loop"
	"github.com/vovakirdan/fbcore/internal/platform/headless"
)

func TestPaletteCycles(t *testing.T) {
	tests := []struct {
		name   string
		script []core.Buttons
		want   int
	}{
		{"none", nil, 0},
		{"A once", []core.Buttons{core.ButtonA, 0}, 1},
		{"A held", []core.Buttons{core.ButtonA, core.ButtonA, core.ButtonA}, 1},
		{"A wraps", []core.Buttons{core.ButtonA, 0, core.ButtonA, 0, core.ButtonA, 0}, 0},
		{"B back", []core.Buttons{core.ButtonB, 0}, len(palettes) - 1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r, _ := headless.NewRunner(headless.NewScript(tc.script...))
			g := New()
			r.Start(g)
			for i := 0; i < 8; i++ {
				r.Step(g)
			}
			if g.Palette() != tc.want {
				t.Errorf("Palette() = %d, expected %d", g.Palette(), tc.want)
			}
		})
	}
}

func TestRenderUsesPalette(t *testing.T) {
	r, _ := headless.NewRunner(nil)
	g := New()
	r.Start(g)
	r.Step(g)

	c := r.Canvas()
	seen := map[core.Color]bool{}
	for _, px := range c.Buffer() {
		seen[px] = true
	}
	for _, col := range palettes[0] {
		if !seen[col] {
			t.Errorf("palette color %#04x never drawn", col)
		}
	}

	// Outline corners do not move.
	if c.Pixel(2, 2) != palettes[0][1] {
		t.Errorf("outer outline corner = %#04x", c.Pixel(2, 2))
	}
}

func TestPauseStopsRotation(t *testing.T) {
	script := []core.Buttons{0, core.ButtonStart, 0, 0, 0}
	r, _ := headless.NewRunner(headless.NewScript(script...))
	g := New()
	r.Start(g)
	for range script {
		r.Step(g)
	}
	if r.Phase() != loop.PhasePaused {
		t.Fatalf("phase = %v, expected paused", r.Phase())
	}
	if g.angle != core.FixedFromRaw(7) {
		t.Errorf("angle = %d, expected one step", g.angle.Raw())
	}
}

func TestAngleWraps(t *testing.T) {
	r, _ := headless.NewRunner(nil)
	g := New()
	r.Start(g)
	for i := 0; i < 1000; i++ {
		r.Step(g)
		if g.angle < 0 || g.angle >= core.FixedTwoPi {
			t.Fatalf("angle %d out of [0, 2pi)", g.angle.Raw())
		}
	}
}
