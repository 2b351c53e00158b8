package loop

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/vovakirdan/fbcore/internal/core"
)

type memVideo struct {
	buf   []core.Color
	modes []DisplayMode
}

func newMemVideo() *memVideo {
	return &memVideo{buf: make([]core.Color, core.ScreenWidth*core.ScreenHeight)}
}

func (v *memVideo) Buffer() []core.Color     { return v.buf }
func (v *memVideo) Width() int               { return core.ScreenWidth }
func (v *memVideo) Height() int              { return core.ScreenHeight }
func (v *memVideo) SetMode(mode DisplayMode) { v.modes = append(v.modes, mode) }

type scriptInput struct {
	frames []core.Buttons
	n      int
}

func (s *scriptInput) Buttons() core.Buttons {
	if len(s.frames) == 0 {
		return 0
	}
	i := s.n
	if i >= len(s.frames) {
		i = len(s.frames) - 1
	}
	s.n++
	return s.frames[i]
}

type logVBlank struct {
	log *[]string
}

func (v logVBlank) WaitVBlank() { *v.log = append(*v.log, "vblank") }

type recorder struct {
	log     *[]string
	pressed []bool
	inits   int
}

func (g *recorder) Init(r *Runner) {
	g.inits++
	*g.log = append(*g.log, "init")
}

func (g *recorder) HandleInput(r *Runner) {
	*g.log = append(*g.log, "input")
	g.pressed = append(g.pressed, r.Input().Pressed(core.ButtonA))
}

func (g *recorder) Update(r *Runner) {
	*g.log = append(*g.log, "update")
}

func (g *recorder) Render(r *Runner) {
	*g.log = append(*g.log, "render")
	r.Canvas().PlotPixel(0, 0, core.ColorWhite)
}

func newTestRunner(frames []core.Buttons, opts ...Option) (*Runner, *recorder, *memVideo, *[]string) {
	var log []string
	video := newMemVideo()
	r := New(video, &scriptInput{frames: frames}, logVBlank{log: &log}, opts...)
	return r, &recorder{log: &log}, video, &log
}

func TestRunnerHookOrder(t *testing.T) {
	r, g, video, log := newTestRunner(nil)

	r.Start(g)
	r.Step(g)
	r.Step(g)

	want := "init input update vblank render input update vblank render"
	if got := strings.Join(*log, " "); got != want {
		t.Errorf("hook order = %q, expected %q", got, want)
	}
	if len(video.modes) != 1 || video.modes[0] != ModeBitmap {
		t.Errorf("SetMode calls = %v, expected one ModeBitmap", video.modes)
	}
	if r.Frame() != 2 {
		t.Errorf("Frame() = %d, expected 2", r.Frame())
	}
	if video.buf[0] != core.ColorWhite {
		t.Error("render did not reach the video buffer")
	}
}

func TestRunnerStartOnce(t *testing.T) {
	r, g, video, _ := newTestRunner(nil)
	r.Start(g)
	r.Start(g)
	if g.inits != 1 || len(video.modes) != 1 {
		t.Errorf("Start twice: inits %d, modes %d, expected 1 and 1", g.inits, len(video.modes))
	}
}

func TestRunnerSamplesBeforeHandleInput(t *testing.T) {
	a := core.ButtonA
	r, g, _, _ := newTestRunner([]core.Buttons{0, a, a, 0, a})

	r.Start(g)
	for i := 0; i < 5; i++ {
		r.Step(g)
	}

	want := []bool{false, true, false, false, true}
	for i := range want {
		if g.pressed[i] != want[i] {
			t.Errorf("frame %d: Pressed(A) = %v, expected %v", i, g.pressed[i], want[i])
		}
	}
}

func TestRunnerFrameWraps(t *testing.T) {
	r, g, _, _ := newTestRunner(nil)
	r.Start(g)
	r.frame = ^uint32(0)
	r.Step(g)
	if r.Frame() != 0 {
		t.Errorf("Frame() after wrap = %d, expected 0", r.Frame())
	}
}

func TestRunnerPhases(t *testing.T) {
	var changes []string
	r, _, _, _ := newTestRunner(nil, WithPhaseObserver(func(from, to Phase) {
		changes = append(changes, from.String()+"->"+to.String())
	}))

	if r.Phase() != PhaseTitle {
		t.Fatalf("initial phase = %v, expected title", r.Phase())
	}

	r.SetPhase(PhasePlaying)
	r.SetPhase(PhasePlaying)
	r.SetPhase(PhaseGameOver)
	r.SetPhase(PhaseTitle)

	want := []string{"title->playing", "playing->game over", "game over->title"}
	if strings.Join(changes, ",") != strings.Join(want, ",") {
		t.Errorf("phase changes = %v, expected %v", changes, want)
	}
}

func TestRunnerSeed(t *testing.T) {
	a, _, _, _ := newTestRunner(nil)
	if a.Rand().State() != core.DefaultSeed {
		t.Errorf("default seed = %d, expected %d", a.Rand().State(), core.DefaultSeed)
	}

	b, _, _, _ := newTestRunner(nil, WithSeed(7))
	c, _, _, _ := newTestRunner(nil, WithSeed(7))
	for i := 0; i < 10; i++ {
		if b.Rand().Next() != c.Rand().Next() {
			t.Fatal("equally seeded runners diverged")
		}
	}
}

func TestRunnerDelay(t *testing.T) {
	r, _, _, log := newTestRunner(nil)
	r.Delay(3)
	r.Delay(0)
	if len(*log) != 3 {
		t.Errorf("Delay(3) waited %d times, expected 3", len(*log))
	}
	if r.Frame() != 0 {
		t.Error("Delay should not count frames")
	}
}

type cancelAfter struct {
	recorder
	n      int
	cancel context.CancelFunc
}

func (g *cancelAfter) Update(r *Runner) {
	g.recorder.Update(r)
	if int(r.Frame())+1 == g.n {
		g.cancel()
	}
}

func TestRunnerRunStopsBetweenFrames(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var frames []uint32
	r, rec, _, log := newTestRunner(nil, WithFrameObserver(func(f uint32) {
		frames = append(frames, f)
	}))
	g := &cancelAfter{recorder: *rec, n: 4, cancel: cancel}

	err := r.Run(ctx, g)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("Run() = %v, expected context.Canceled", err)
	}
	if r.Frame() != 4 {
		t.Errorf("Frame() = %d, expected 4", r.Frame())
	}
	if len(frames) != 4 || frames[3] != 4 {
		t.Errorf("frame observer saw %v", frames)
	}
	if last := (*log)[len(*log)-1]; last != "render" {
		t.Errorf("last hook = %q, expected the cancelled frame to finish", last)
	}
}

func TestPhaseString(t *testing.T) {
	tests := []struct {
		p    Phase
		want string
	}{
		{PhaseTitle, "title"},
		{PhasePlaying, "playing"},
		{PhasePaused, "paused"},
		{PhaseGameOver, "game over"},
		{Phase(9), "unknown"},
	}
	for _, tc := range tests {
		if got := tc.p.String(); got != tc.want {
			t.Errorf("String() = %q, expected %q", got, tc.want)
		}
	}
}
