package entity

import "github.com/vovakirdan/fbcore/internal/core"

// Body is a filled, axis-aligned box that moves with constant velocity
// unless its owner steers it.
type Body struct {
	Entity
	W, H  int
	Color core.Color
}

// NewBody returns an active w x h body at (x, y).
func NewBody(x, y, w, h int, c core.Color) *Body {
	return &Body{Entity: NewEntity(x, y), W: w, H: h, Color: c}
}

// Rect returns the body's box.
func (b *Body) Rect() core.Rect {
	return b.Bounds(b.W, b.H)
}

// Overlaps reports whether two bodies overlap, using each body's own
// size. The active flags are not consulted.
func (b *Body) Overlaps(other *Body) bool {
	return b.Rect().Intersects(other.Rect())
}

// Update integrates velocity.
func (b *Body) Update() {
	if !b.Active {
		return
	}
	b.Move()
}

// Render fills the body's box.
func (b *Body) Render(c *core.Canvas) {
	if !b.Active {
		return
	}
	x, y := b.Pos.IntXY()
	c.DrawRect(x, y, b.W, b.H, b.Color)
}

// KeepInside clamps the body into the w x h area and stops motion on the
// axis that hit a wall.
func (b *Body) KeepInside(w, h int) {
	x, y := b.Pos.IntXY()
	cx := core.Clamp(x, 0, core.Max(0, w-b.W))
	cy := core.Clamp(y, 0, core.Max(0, h-b.H))
	if cx != x {
		b.Pos.X = core.FixedFromInt(cx)
		b.Vel.X = 0
	}
	if cy != y {
		b.Pos.Y = core.FixedFromInt(cy)
		b.Vel.Y = 0
	}
}

func (*Body) object() {}
