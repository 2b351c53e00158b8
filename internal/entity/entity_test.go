package entity

import (
	"testing"

	"github.com/vovakirdan/fbcore/internal/core"
)

func TestEntityCollision(t *testing.T) {
	tests := []struct {
		name     string
		ax, ay   int
		bx, by   int
		expected bool
	}{
		{"same spot", 10, 10, 10, 10, true},
		{"overlap", 10, 10, 17, 17, true},
		{"edge touch", 10, 10, 18, 10, false},
		{"corner touch", 10, 10, 18, 18, false},
		{"apart", 0, 0, 50, 50, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			a := NewEntity(tc.ax, tc.ay)
			b := NewEntity(tc.bx, tc.by)
			if got := a.CollidesWith(&b, DefaultBoxSize, DefaultBoxSize); got != tc.expected {
				t.Errorf("CollidesWith() = %v, expected %v", got, tc.expected)
			}
			if got := b.CollidesWith(&a, DefaultBoxSize, DefaultBoxSize); got != tc.expected {
				t.Errorf("CollidesWith() (reversed) = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestEntityCollisionUsesTruncatedPosition(t *testing.T) {
	a := NewEntity(0, 0)
	b := NewEntity(0, 0)
	// 7.9 truncates to 7, which still overlaps an 8-wide box at 0.
	b.Pos.X = core.FixedFromFloat(7.9)
	if !a.CollidesWith(&b, 8, 8) {
		t.Error("expected overlap at x=7.9")
	}
	b.Pos.X = core.FixedFromInt(8)
	if a.CollidesWith(&b, 8, 8) {
		t.Error("expected no overlap at x=8")
	}
}

func TestEntityCollisionIgnoresActive(t *testing.T) {
	a := NewEntity(5, 5)
	b := NewEntity(5, 5)
	b.Active = false
	if !a.CollidesWith(&b, 8, 8) {
		t.Error("CollidesWith() = false for overlapping boxes with one inactive")
	}

	a.Active = false
	if !a.CollidesWith(&b, 8, 8) {
		t.Error("CollidesWith() = false for overlapping inactive boxes")
	}

	b.Pos = core.V2(13, 5)
	if a.CollidesWith(&b, 8, 8) {
		t.Error("CollidesWith() = true for boxes that only touch")
	}
}

func TestBody(t *testing.T) {
	buf := make([]core.Color, 32*32)
	c := core.NewCanvas(buf, 32, 32)

	b := NewBody(2, 3, 4, 5, core.ColorGreen)
	b.Vel = core.V2(1, 0)
	b.Update()
	b.Render(c)

	count := 0
	for _, px := range buf {
		if px == core.ColorGreen {
			count++
		}
	}
	if count != 20 {
		t.Errorf("body covered %d pixels, expected 20", count)
	}
	if c.Pixel(3, 3) != core.ColorGreen || c.Pixel(2, 3) != core.ColorBlack {
		t.Error("body drawn at the wrong position")
	}

	b.Pos = core.V2(30, -4)
	b.Vel = core.V2(2, -1)
	b.KeepInside(32, 32)
	if x, y := b.Pos.IntXY(); x != 28 || y != 0 {
		t.Errorf("KeepInside() position = (%d, %d), expected (28, 0)", x, y)
	}
	if b.Vel.X != 0 || b.Vel.Y != 0 {
		t.Error("KeepInside() should stop motion into the wall")
	}

	other := NewBody(29, 4, 2, 2, core.ColorRed)
	if !b.Overlaps(other) {
		t.Error("expected bodies to overlap")
	}
	other.Pos = core.V2(29, 5)
	if b.Overlaps(other) {
		t.Error("bodies touching at an edge should not overlap")
	}

	other.Pos = core.V2(29, 4)
	other.Active = false
	if !b.Overlaps(other) {
		t.Error("Overlaps() should compare positions only")
	}
}
