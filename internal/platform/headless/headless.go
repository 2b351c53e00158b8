// Package headless runs games without a display: an in-memory
// framebuffer, scripted input and a vertical blank that is either
// immediate or paced by a ticker.
package headless

import (
	"context"
	"errors"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/fbcore/internal/core"
	"github.com/vovakirdan/fbcore/internal/logging"
	"github.com/vovakirdan/fbcore/internal/loop"
	"github.com/vovakirdan/fbcore/internal/platform/host"
	"github.com/vovakirdan/fbcore/internal/registry"
)

// Script replays one button mask per frame. After the last entry the
// final mask repeats; an empty script reports no buttons.
type Script struct {
	frames []core.Buttons
	pos    int
}

// NewScript returns a script over frames.
func NewScript(frames ...core.Buttons) *Script {
	return &Script{frames: frames}
}

// Buttons returns the mask for the current frame and advances.
func (s *Script) Buttons() core.Buttons {
	if len(s.frames) == 0 {
		return 0
	}
	i := min(s.pos, len(s.frames)-1)
	s.pos++
	return s.frames[i]
}

// Hold returns a script with b held for n frames followed by release.
func Hold(b core.Buttons, n int) []core.Buttons {
	out := make([]core.Buttons, n+1)
	for i := 0; i < n; i++ {
		out[i] = b
	}
	return out
}

// Tap returns b pressed for one frame, then released, after skip idle
// frames.
func Tap(b core.Buttons, skip int) []core.Buttons {
	out := make([]core.Buttons, skip+2)
	out[skip] = b
	return out
}

// Options configure Run.
type Options struct {
	Frames int                 // Frames to run; <= 0 runs until ctx is done
	Hz     int                 // Frame rate; <= 0 runs unthrottled
	Seed   uint32              // RNG seed; 0 keeps core.DefaultSeed
	Input  loop.RawInputSource // Defaults to no buttons
	Logger *log.Logger         // Optional
}

// Result describes a finished headless run.
type Result struct {
	Canvas  *core.Canvas
	Frames  uint32
	Phase   loop.Phase
	Elapsed time.Duration
}

// NewRunner builds a runner over a fresh 240x160 framebuffer with an
// immediate vertical blank. Tests drive it with Start and Step.
func NewRunner(input loop.RawInputSource, opts ...loop.Option) (*loop.Runner, *host.Framebuffer) {
	if input == nil {
		input = NewScript()
	}
	fb := host.NewFramebuffer(core.ScreenWidth, core.ScreenHeight)
	return loop.New(fb, input, host.NewPacer(fb, 0), opts...), fb
}

// Run plays game for opts.Frames frames, or until ctx is cancelled.
// Cancellation after at least one frame is not an error.
func Run(ctx context.Context, game registry.Game, opts Options) (Result, error) {
	fb := host.NewFramebuffer(core.ScreenWidth, core.ScreenHeight)
	pacer := host.NewPacer(fb, opts.Hz)
	defer pacer.Close()

	input := opts.Input
	if input == nil {
		input = NewScript()
	}

	var lopts []loop.Option
	if opts.Seed != 0 {
		lopts = append(lopts, loop.WithSeed(opts.Seed))
	}
	if opts.Logger != nil {
		lopts = append(lopts, logging.Observers(opts.Logger, 600)...)
	}

	r := loop.New(fb, input, pacer, lopts...)
	start := time.Now()

	var err error
	if opts.Frames > 0 {
		r.Start(game)
		for i := 0; i < opts.Frames; i++ {
			if err = ctx.Err(); err != nil {
				break
			}
			r.Step(game)
		}
	} else {
		err = r.Run(ctx, game)
	}

	res := Result{
		Canvas:  r.Canvas(),
		Frames:  r.Frame(),
		Phase:   r.Phase(),
		Elapsed: time.Since(start),
	}
	if opts.Logger != nil {
		opts.Logger.Info("headless run finished", "frames", res.Frames, "phase", res.Phase, "elapsed", res.Elapsed)
	}
	if errors.Is(err, context.Canceled) && res.Frames > 0 {
		err = nil
	}
	return res, err
}
