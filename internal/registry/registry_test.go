package registry

import (
	"testing"

	"github.com/vovakirdan/fbcore/internal/loop"
)

type stubGame struct{ id string }

func (g stubGame) ID() string               { return g.id }
func (g stubGame) Title() string            { return "Stub " + g.id }
func (stubGame) Init(r *loop.Runner)        {}
func (stubGame) HandleInput(r *loop.Runner) {}
func (stubGame) Update(r *loop.Runner)      {}
func (stubGame) Render(r *loop.Runner)      {}

func TestRegisterAndCreate(t *testing.T) {
	Register("test-zeta", func() Game { return stubGame{id: "test-zeta"} })
	Register("test-alpha", func() Game { return stubGame{id: "test-alpha"} })

	if !Exists("test-alpha") {
		t.Error("Exists(test-alpha) = false")
	}
	if Exists("test-missing") {
		t.Error("Exists(test-missing) = true")
	}

	g, err := Create("test-zeta")
	if err != nil {
		t.Fatalf("Create() error: %v", err)
	}
	if g.ID() != "test-zeta" {
		t.Errorf("Create() returned %q", g.ID())
	}

	if _, err := Create("test-missing"); err == nil {
		t.Error("Create() of unknown game should fail")
	}

	var ids []string
	for _, info := range List() {
		ids = append(ids, info.ID)
		if info.ID == "test-alpha" && info.Title != "Stub test-alpha" {
			t.Errorf("title = %q", info.Title)
		}
	}
	for i := 1; i < len(ids); i++ {
		if ids[i-1] > ids[i] {
			t.Errorf("List() not sorted: %v", ids)
		}
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("test-dup", func() Game { return stubGame{id: "test-dup"} })
	defer func() {
		if recover() == nil {
			t.Error("duplicate Register should panic")
		}
	}()
	Register("test-dup", func() Game { return stubGame{id: "test-dup"} })
}
