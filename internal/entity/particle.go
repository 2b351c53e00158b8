package entity

import "github.com/vovakirdan/fbcore/internal/core"

// Gravity is added to a particle's vertical velocity every update
// (0.1 pixel per frame squared, raw value 25).
var Gravity = core.FixedFromFloat(0.1)

// fadeSteps is the number of brightness levels a particle fades through.
const fadeSteps = 31

// Particle is a single pixel that moves, falls and fades out over a fixed
// number of frames.
type Particle struct {
	Entity
	Color       core.Color
	Lifetime    int
	MaxLifetime int
}

// NewParticle spawns a particle at (x, y) with velocity (vx, vy) that lives
// for life frames. A non-positive life yields a particle that is already
// dead.
func NewParticle(x, y int, vx, vy core.Fixed, c core.Color, life int) *Particle {
	p := &Particle{
		Entity: Entity{
			Pos:    core.V2(x, y),
			Vel:    core.Vec2{X: vx, Y: vy},
			Active: true,
		},
		Color:       c,
		Lifetime:    life,
		MaxLifetime: life,
	}
	if life <= 0 {
		p.Active = false
		p.Lifetime = 0
		p.MaxLifetime = 1
	}
	return p
}

// Update advances the particle by one frame. Gravity still applies on the
// frame the particle expires.
func (p *Particle) Update() {
	if !p.Active {
		return
	}
	p.Move()
	p.Lifetime--
	if p.Lifetime <= 0 {
		p.Active = false
	}
	p.Vel.Y = p.Vel.Y.Add(Gravity)
}

// Fade returns the remaining brightness in [0, 31].
func (p *Particle) Fade() int {
	if p.MaxLifetime <= 0 || p.Lifetime <= 0 {
		return 0
	}
	return p.Lifetime * fadeSteps / p.MaxLifetime
}

// Render plots the particle with its color dimmed by Fade.
func (p *Particle) Render(c *core.Canvas) {
	if !p.Active {
		return
	}
	x, y := p.Pos.IntXY()
	c.PlotPixel(x, y, p.Color.Scale(p.Fade(), fadeSteps))
}

func (*Particle) object() {}
