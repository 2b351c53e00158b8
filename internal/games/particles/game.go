// Package particles implements a small arcade round around the particle
// system: steer an emitter, fire bursts with A and hit the wandering
// target before time runs out.
package particles

import (
	"fmt"
	"sync/atomic"

	"github.com/vovakirdan/fbcore/internal/core"
	"github.com/vovakirdan/fbcore/internal/entity"
	"github.com/vovakirdan/fbcore/internal/loop"
	"github.com/vovakirdan/fbcore/internal/registry"
	"github.com/vovakirdan/fbcore/internal/text"
)

const (
	framesPerSecond = 60
	emitterSize     = 10
	emitterSpeed    = 2
	targetSize      = entity.DefaultBoxSize
	wanderInterval  = 30 // Frames between target direction changes
	attractInterval = 40 // Frames between idle fireworks on the title screen
	hudHeight       = 12
)

var palette = []core.Color{
	core.ColorWhite,
	core.ColorYellow,
	core.ColorCyan,
	core.ColorMagenta,
	core.RGB15(31, 16, 0),
}

// Game is the particles demo.
type Game struct {
	tuning  Tuning
	pending atomic.Pointer[Tuning]

	emitter   *entity.Body
	target    *entity.Body
	particles *entity.Set

	score    int
	best     int
	timeLeft int // Frames
	tick     int
}

// New creates a game with the given tuning.
func New(t Tuning) *Game {
	t = t.Normalize()
	return &Game{
		tuning:    t,
		particles: entity.NewSet(t.MaxParticles),
	}
}

func init() {
	registry.Register("particles", func() registry.Game {
		return New(DefaultTuning())
	})
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "particles"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Particle Burst"
}

// SetTuning hands new settings to the game. They take effect at the start
// of the next frame, never in the middle of one. Safe to call from
// any goroutine.
func (g *Game) SetTuning(t Tuning) {
	t = t.Normalize()
	g.pending.Store(&t)
}

// Tuning returns the settings in effect.
func (g *Game) Tuning() Tuning {
	return g.tuning
}

// Score returns the score of the current or last round.
func (g *Game) Score() int {
	return g.score
}

// Best returns the highest score since the game was created.
func (g *Game) Best() int {
	return g.best
}

// TimeLeft returns the remaining round time in frames.
func (g *Game) TimeLeft() int {
	return g.timeLeft
}

// Live returns the number of objects currently simulated.
func (g *Game) Live() int {
	return g.particles.Len()
}

// Init places the emitter and target and shows the title screen.
func (g *Game) Init(r *loop.Runner) {
	g.resetRound(r)
	r.SetPhase(loop.PhaseTitle)
}

func (g *Game) resetRound(r *loop.Runner) {
	c := r.Canvas()
	g.emitter = entity.NewBody((c.Width()-emitterSize)/2, c.Height()-emitterSize-4, emitterSize, emitterSize, core.ColorGreen)
	g.target = entity.NewBody(0, 0, targetSize, targetSize, core.ColorRed)
	g.placeTarget(r)
	g.particles.Reset()
	g.score = 0
	g.timeLeft = g.tuning.RoundSeconds * framesPerSecond
}

// HandleInput drives the phase machine and steers the emitter.
func (g *Game) HandleInput(r *loop.Runner) {
	// Reloaded tuning applies from the first hook of the frame.
	if t := g.pending.Swap(nil); t != nil {
		g.tuning = *t
	}
	in := r.Input()

	switch r.Phase() {
	case loop.PhaseTitle:
		if in.Pressed(core.ButtonStart) {
			g.resetRound(r)
			r.SetPhase(loop.PhasePlaying)
		}

	case loop.PhasePlaying:
		if in.Pressed(core.ButtonStart) {
			r.SetPhase(loop.PhasePaused)
			return
		}
		g.steer(in)
		if in.Pressed(core.ButtonA) {
			g.burst(r, g.emitterCenter(), g.tuning.Burst, palette)
		}
		if in.Held(core.ButtonB) {
			g.burst(r, g.emitterCenter(), 1, palette[1:2])
		}

	case loop.PhasePaused:
		if in.Pressed(core.ButtonStart) {
			r.SetPhase(loop.PhasePlaying)
		}

	case loop.PhaseGameOver:
		if in.Pressed(core.ButtonStart) {
			r.SetPhase(loop.PhaseTitle)
		}
	}
}

func (g *Game) steer(in *core.Input) {
	var vx, vy int
	if in.Held(core.ButtonLeft) {
		vx -= emitterSpeed
	}
	if in.Held(core.ButtonRight) {
		vx += emitterSpeed
	}
	if in.Held(core.ButtonUp) {
		vy -= emitterSpeed
	}
	if in.Held(core.ButtonDown) {
		vy += emitterSpeed
	}
	g.emitter.Vel = core.V2(vx, vy)
}

// Update advances the simulation. Particles keep moving in every phase
// except Paused so bursts finish their arc behind the title and game over
// screens.
func (g *Game) Update(r *loop.Runner) {
	if r.Phase() == loop.PhasePaused {
		return
	}
	g.tick++

	c := r.Canvas()
	switch r.Phase() {
	case loop.PhaseTitle:
		if g.tick%attractInterval == 0 {
			x := r.Rand().Range(20, c.Width()-20)
			y := r.Rand().Range(30, c.Height()/2)
			g.burst(r, core.V2(x, y), g.tuning.Burst/2, palette)
		}

	case loop.PhasePlaying:
		g.emitter.Update()
		g.emitter.KeepInside(c.Width(), c.Height())
		g.wander(r)
		g.collide(r)

		g.timeLeft--
		if g.timeLeft <= 0 {
			g.timeLeft = 0
			if g.score > g.best {
				g.best = g.score
			}
			r.SetPhase(loop.PhaseGameOver)
		}
	}

	g.particles.Update()
	g.particles.Compact()
}

func (g *Game) wander(r *loop.Runner) {
	if g.tick%wanderInterval == 0 {
		g.target.Vel = core.Vec2{
			X: core.FixedFromRaw(int32(r.Rand().Range(-256, 256))),
			Y: core.FixedFromRaw(int32(r.Rand().Range(-256, 256))),
		}
	}
	g.target.Update()

	c := r.Canvas()
	x, y := g.target.Pos.IntXY()
	if x <= 0 || x >= c.Width()-targetSize {
		g.target.Vel.X = g.target.Vel.X.Neg()
	}
	if y <= hudHeight || y >= c.Height()-targetSize {
		g.target.Vel.Y = g.target.Vel.Y.Neg()
	}
	g.target.KeepInside(c.Width(), c.Height())
	if y < hudHeight {
		g.target.Pos.Y = core.FixedFromInt(hudHeight)
	}
}

// collide scores the first live particle that overlaps the target this
// frame, then moves the target somewhere else.
func (g *Game) collide(r *loop.Runner) {
	hit := false
	g.particles.Each(func(o entity.Object) bool {
		p, ok := o.(*entity.Particle)
		if !ok {
			return true
		}
		if p.Active && g.target.Rect().Contains(p.Pos.IntXY()) {
			p.Active = false
			hit = true
			return false
		}
		return true
	})
	if !hit {
		return
	}

	g.score++
	x, y := g.target.Rect().Center()
	g.burst(r, core.V2(x, y), g.tuning.Burst/2, []core.Color{core.ColorRed, core.ColorYellow})
	g.placeTarget(r)
}

func (g *Game) placeTarget(r *loop.Runner) {
	c := r.Canvas()
	x := r.Rand().Range(0, c.Width()-targetSize)
	y := r.Rand().Range(hudHeight, c.Height()/2)
	g.target.Pos = core.V2(x, y)
	g.target.Vel = core.Vec2{}
}

func (g *Game) emitterCenter() core.Vec2 {
	x, y := g.emitter.Rect().Center()
	return core.V2(x, y)
}

// burst launches n particles from at, upward-biased, colors drawn from
// colors. The live cap is never exceeded.
func (g *Game) burst(r *loop.Runner, at core.Vec2, n int, colors []core.Color) {
	rng := r.Rand()
	speed := int(core.FixedFromInt(g.tuning.Speed).Raw())
	x, y := at.IntXY()
	for i := 0; i < n && g.particles.Len() < g.tuning.MaxParticles; i++ {
		vx := core.FixedFromRaw(int32(rng.Range(-speed, speed)))
		vy := core.FixedFromRaw(int32(rng.Range(-2*speed, speed/2)))
		col := colors[rng.Range(0, len(colors)-1)]
		life := rng.Range(g.tuning.LifeMin, g.tuning.LifeMax)
		g.particles.Add(entity.NewParticle(x, y, vx, vy, col, life))
	}
}

// Render draws the playfield, then the overlay for the current phase.
func (g *Game) Render(r *loop.Runner) {
	c := r.Canvas()
	c.Clear(core.ColorBlack)
	c.DrawRectOutline(0, 0, c.Width(), c.Height(), core.ColorDarkGray)

	switch r.Phase() {
	case loop.PhaseTitle:
		g.particles.Render(c)
		text.DrawCentered(c, c.Height()/2-8, "PARTICLE BURST", core.ColorWhite)
		if (r.Frame()/30)%2 == 0 {
			text.DrawCentered(c, c.Height()/2+12, "PRESS START", core.ColorYellow)
		}
		if g.best > 0 {
			text.DrawCentered(c, c.Height()-8, fmt.Sprintf("BEST %d", g.best), core.ColorGray)
		}
		return

	case loop.PhaseGameOver:
		g.particles.Render(c)
		text.DrawCentered(c, c.Height()/2-8, "TIME UP", core.ColorRed)
		text.DrawCentered(c, c.Height()/2+12, fmt.Sprintf("SCORE %d", g.score), core.ColorWhite)
		return
	}

	g.target.Render(c)
	g.emitter.Render(c)
	g.particles.Render(c)

	text.Draw(c, 4, hudHeight-2, fmt.Sprintf("SCORE %d", g.score), core.ColorWhite)
	secs := fmt.Sprintf("%d", (g.timeLeft+framesPerSecond-1)/framesPerSecond)
	text.Draw(c, c.Width()-4-text.Width(secs), hudHeight-2, secs, core.ColorWhite)

	if r.Phase() == loop.PhasePaused {
		text.DrawCentered(c, c.Height()/2, "PAUSED", core.ColorYellow)
	}
}
