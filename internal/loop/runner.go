// Package loop drives a game at the display's refresh rate. Each frame it
// samples input, lets the game handle it and update, waits for the
// vertical blank and then lets the game draw.
package loop

import (
	"context"

	"github.com/vovakirdan/fbcore/internal/core"
)

// PhaseObserver is notified after the phase changes.
type PhaseObserver func(from, to Phase)

// FrameObserver is called after every completed frame with the new frame
// count.
type FrameObserver func(frame uint32)

// Option configures a Runner.
type Option func(*Runner)

// WithSeed seeds the random source. The default is core.DefaultSeed.
func WithSeed(seed uint32) Option {
	return func(r *Runner) {
		r.rng.Seed(seed)
	}
}

// WithPhaseObserver registers fn for phase changes.
func WithPhaseObserver(fn PhaseObserver) Option {
	return func(r *Runner) {
		r.onPhase = append(r.onPhase, fn)
	}
}

// WithFrameObserver registers fn for completed frames.
func WithFrameObserver(fn FrameObserver) Option {
	return func(r *Runner) {
		r.onFrame = append(r.onFrame, fn)
	}
}

// Runner owns the per-game services (canvas, input, random source) and
// the frame counter. It is not safe for concurrent use; hooks run on the
// goroutine that calls Step or Run.
type Runner struct {
	video  VideoOutput
	source RawInputSource
	vblank VBlankSignal

	canvas *core.Canvas
	input  core.Input
	rng    core.Rand
	phase  Phase
	frame  uint32

	started bool
	onPhase []PhaseObserver
	onFrame []FrameObserver
}

// New builds a Runner over the three devices. The canvas addresses the
// video buffer directly.
func New(video VideoOutput, source RawInputSource, vblank VBlankSignal, opts ...Option) *Runner {
	r := &Runner{
		video:  video,
		source: source,
		vblank: vblank,
		canvas: core.NewCanvas(video.Buffer(), video.Width(), video.Height()),
		rng:    *core.NewRand(core.DefaultSeed),
		phase:  PhaseTitle,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Start selects the bitmap display mode and runs the game's Init hook.
// Calling it again has no effect.
func (r *Runner) Start(h Hooks) {
	if r.started {
		return
	}
	r.started = true
	r.video.SetMode(ModeBitmap)
	h.Init(r)
}

// Step runs exactly one frame. Start must have been called.
func (r *Runner) Step(h Hooks) {
	r.input.Sample(r.source.Buttons())
	h.HandleInput(r)
	h.Update(r)
	r.vblank.WaitVBlank()
	h.Render(r)
	r.frame++
	for _, fn := range r.onFrame {
		fn(r.frame)
	}
}

// Run starts the game and steps it until ctx is cancelled. The check
// happens between frames, so a frame is never cut short. Run returns
// ctx.Err().
func (r *Runner) Run(ctx context.Context, h Hooks) error {
	r.Start(h)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		r.Step(h)
	}
}

// Delay waits for n vertical blanks without running any hooks.
func (r *Runner) Delay(n int) {
	for i := 0; i < n; i++ {
		r.vblank.WaitVBlank()
	}
}

// Canvas returns the drawing surface over the video buffer.
func (r *Runner) Canvas() *core.Canvas {
	return r.canvas
}

// Input returns the input state sampled for the current frame.
func (r *Runner) Input() *core.Input {
	return &r.input
}

// Rand returns the game's random source.
func (r *Runner) Rand() *core.Rand {
	return &r.rng
}

// Phase returns the current phase.
func (r *Runner) Phase() Phase {
	return r.phase
}

// SetPhase moves to p. Any transition is allowed; observers are only
// called when the phase actually changes.
func (r *Runner) SetPhase(p Phase) {
	if p == r.phase {
		return
	}
	from := r.phase
	r.phase = p
	for _, fn := range r.onPhase {
		fn(from, p)
	}
}

// Frame returns the number of completed frames. It wraps at 2^32.
func (r *Runner) Frame() uint32 {
	return r.frame
}
