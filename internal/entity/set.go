package entity

import "github.com/vovakirdan/fbcore/internal/core"

// Object is one of the entity kinds a Set can hold. The set of kinds is
// closed: only *Particle and *Body implement it.
type Object interface {
	object()
}

// Set is a game-owned collection of objects updated and drawn together.
type Set struct {
	items []Object
}

// NewSet returns an empty set with room for capacity objects.
func NewSet(capacity int) *Set {
	return &Set{items: make([]Object, 0, capacity)}
}

// Add appends objects to the set.
func (s *Set) Add(objs ...Object) {
	s.items = append(s.items, objs...)
}

// Update advances every active object by one frame.
func (s *Set) Update() {
	for _, o := range s.items {
		switch v := o.(type) {
		case *Particle:
			v.Update()
		case *Body:
			v.Update()
		}
	}
}

// Render draws every active object in insertion order.
func (s *Set) Render(c *core.Canvas) {
	for _, o := range s.items {
		switch v := o.(type) {
		case *Particle:
			v.Render(c)
		case *Body:
			v.Render(c)
		}
	}
}

// Compact drops inactive objects, keeping the order of the rest.
func (s *Set) Compact() {
	n := 0
	for _, o := range s.items {
		if isActive(o) {
			s.items[n] = o
			n++
		}
	}
	for i := n; i < len(s.items); i++ {
		s.items[i] = nil
	}
	s.items = s.items[:n]
}

// Len returns the number of objects, active or not.
func (s *Set) Len() int {
	return len(s.items)
}

// Active returns the number of active objects.
func (s *Set) Active() int {
	n := 0
	for _, o := range s.items {
		if isActive(o) {
			n++
		}
	}
	return n
}

// Each calls fn for every object until fn returns false.
func (s *Set) Each(fn func(Object) bool) {
	for _, o := range s.items {
		if !fn(o) {
			return
		}
	}
}

// Reset removes all objects.
func (s *Set) Reset() {
	clear(s.items)
	s.items = s.items[:0]
}

func isActive(o Object) bool {
	switch v := o.(type) {
	case *Particle:
		return v.Active
	case *Body:
		return v.Active
	}
	return false
}
