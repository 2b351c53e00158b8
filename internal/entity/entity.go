// Package entity provides the moving objects games build on: plain
// entities with an AABB, short-lived particles under gravity, and solid
// bodies. Games own their objects through a Set.
package entity

import "github.com/vovakirdan/fbcore/internal/core"

// DefaultBoxSize is the collision box edge used when a game has no better
// idea of an object's size.
const DefaultBoxSize = 8

// Entity is a point with a velocity and an active flag.
type Entity struct {
	Pos    core.Vec2
	Vel    core.Vec2
	Active bool
}

// NewEntity returns an active, stationary entity at (x, y).
func NewEntity(x, y int) Entity {
	return Entity{Pos: core.V2(x, y), Active: true}
}

// Bounds returns the w x h box anchored at the truncated position.
func (e *Entity) Bounds(w, h int) core.Rect {
	return core.RectAt(e.Pos, w, h)
}

// CollidesWith reports whether the w x h boxes of e and other overlap.
// Touching edges do not count. Only positions are compared; callers skip
// inactive entities themselves.
func (e *Entity) CollidesWith(other *Entity, w, h int) bool {
	return e.Bounds(w, h).Intersects(other.Bounds(w, h))
}

// Move integrates one frame of velocity.
func (e *Entity) Move() {
	e.Pos.Accumulate(e.Vel)
}
