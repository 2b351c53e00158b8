package entity

import (
	"testing"

	"github.com/vovakirdan/fbcore/internal/core"
)

func TestSetLifecycle(t *testing.T) {
	s := NewSet(8)
	s.Add(
		NewParticle(1, 1, 0, 0, core.ColorWhite, 1),
		NewParticle(2, 2, 0, 0, core.ColorWhite, 3),
		NewBody(4, 4, 2, 2, core.ColorBlue),
	)

	if s.Len() != 3 || s.Active() != 3 {
		t.Fatalf("Len/Active = %d/%d, expected 3/3", s.Len(), s.Active())
	}

	s.Update()
	if s.Active() != 2 {
		t.Errorf("Active() = %d after one update, expected 2", s.Active())
	}
	if s.Len() != 3 {
		t.Errorf("Update should not remove objects, Len() = %d", s.Len())
	}

	s.Compact()
	if s.Len() != 2 {
		t.Errorf("Len() after Compact = %d, expected 2", s.Len())
	}

	var kinds []string
	s.Each(func(o Object) bool {
		switch o.(type) {
		case *Particle:
			kinds = append(kinds, "particle")
		case *Body:
			kinds = append(kinds, "body")
		}
		return true
	})
	if len(kinds) != 2 || kinds[0] != "particle" || kinds[1] != "body" {
		t.Errorf("order after Compact = %v", kinds)
	}

	s.Reset()
	if s.Len() != 0 {
		t.Errorf("Len() after Reset = %d", s.Len())
	}
}

func TestSetRenderSkipsInactive(t *testing.T) {
	buf := make([]core.Color, 8*8)
	c := core.NewCanvas(buf, 8, 8)

	dead := NewParticle(1, 1, 0, 0, core.ColorRed, 0)
	live := NewParticle(2, 2, 0, 0, core.ColorWhite, 31)

	s := NewSet(2)
	s.Add(dead, live)
	s.Render(c)

	if c.Pixel(1, 1) != core.ColorBlack {
		t.Error("inactive particle was drawn")
	}
	if c.Pixel(2, 2) != core.ColorWhite {
		t.Error("active particle was not drawn")
	}
}
