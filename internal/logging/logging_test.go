package logging

import (
	"bytes"
	"strings"
	"testing"

	"github.com/vovakirdan/fbcore/internal/core"
	"github.com/vovakirdan/fbcore/internal/loop"
)

func TestNewLevels(t *testing.T) {
	var buf bytes.Buffer
	l, err := New(&buf, "warn")
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	l.Info("hidden")
	l.Warn("shown")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Error("info line written at warn level")
	}
	if !strings.Contains(out, "shown") || !strings.Contains(out, Prefix) {
		t.Errorf("unexpected output %q", out)
	}

	if _, err := New(&buf, "loud"); err == nil {
		t.Error("expected an error for an unknown level")
	}
}

func TestWithRun(t *testing.T) {
	var buf bytes.Buffer
	l, _ := New(&buf, "info")
	WithRun(l, "hello").Info("start")

	out := buf.String()
	if !strings.Contains(out, "run=") || !strings.Contains(out, "game=hello") {
		t.Errorf("missing run fields in %q", out)
	}
}

type nopVideo struct{ buf []core.Color }

func (v *nopVideo) Buffer() []core.Color       { return v.buf }
func (v *nopVideo) Width() int                 { return 1 }
func (v *nopVideo) Height() int                { return 1 }
func (v *nopVideo) SetMode(_ loop.DisplayMode) {}

type nopInput struct{}

func (nopInput) Buttons() core.Buttons { return 0 }

type nopVBlank struct{}

func (nopVBlank) WaitVBlank() {}

type nopGame struct{}

func (nopGame) Init(*loop.Runner)        {}
func (nopGame) HandleInput(*loop.Runner) {}
func (nopGame) Update(r *loop.Runner) {
	if r.Frame() == 1 {
		r.SetPhase(loop.PhasePlaying)
	}
}
func (nopGame) Render(*loop.Runner) {}

func TestObservers(t *testing.T) {
	var buf bytes.Buffer
	l, _ := New(&buf, "debug")

	r := loop.New(&nopVideo{buf: make([]core.Color, 1)}, nopInput{}, nopVBlank{}, Observers(l, 2)...)
	var g nopGame
	r.Start(g)
	for i := 0; i < 4; i++ {
		r.Step(g)
	}

	out := buf.String()
	if !strings.Contains(out, "from=title") || !strings.Contains(out, "to=playing") {
		t.Errorf("phase change not logged: %q", out)
	}
	if strings.Count(out, "frames") != 2 {
		t.Errorf("expected 2 frame lines, got %q", out)
	}
}
