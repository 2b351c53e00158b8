package core

import "strings"

// Buttons is a bitmask of logical buttons, 1 = held.
type Buttons uint16

// Logical buttons, in hardware bit order.
const (
	ButtonA Buttons = 1 << iota
	ButtonB
	ButtonSelect
	ButtonStart
	ButtonRight
	ButtonLeft
	ButtonUp
	ButtonDown
	ButtonR
	ButtonL
)

// ButtonMask covers every defined button bit.
const ButtonMask Buttons = 0x3FF

var buttonNames = []struct {
	b    Buttons
	name string
}{
	{ButtonA, "A"},
	{ButtonB, "B"},
	{ButtonSelect, "Select"},
	{ButtonStart, "Start"},
	{ButtonRight, "Right"},
	{ButtonLeft, "Left"},
	{ButtonUp, "Up"},
	{ButtonDown, "Down"},
	{ButtonR, "R"},
	{ButtonL, "L"},
}

// String returns the names of the set buttons joined with "+".
func (b Buttons) String() string {
	if b == 0 {
		return "None"
	}
	var parts []string
	for _, bn := range buttonNames {
		if b&bn.b != 0 {
			parts = append(parts, bn.name)
		}
	}
	if b&^ButtonMask != 0 {
		parts = append(parts, "Unknown")
	}
	return strings.Join(parts, "+")
}

// ParseButton looks up a single button by name, case-insensitively.
func ParseButton(name string) (Buttons, bool) {
	for _, bn := range buttonNames {
		if strings.EqualFold(bn.name, name) {
			return bn.b, true
		}
	}
	return 0, false
}

// AllButtons returns every defined button in bit order.
func AllButtons() []Buttons {
	out := make([]Buttons, 0, len(buttonNames))
	for _, bn := range buttonNames {
		out = append(out, bn.b)
	}
	return out
}

// Input tracks the current and previous button samples and classifies
// edges between them. The zero value has both masks clear.
type Input struct {
	current  Buttons
	previous Buttons
}

// Sample records a new raw reading. It must be called once per frame,
// before any game logic looks at the input.
func (in *Input) Sample(raw Buttons) {
	in.previous = in.current
	in.current = raw
}

// Pressed reports a rising edge: held now, not held last frame.
func (in *Input) Pressed(k Buttons) bool {
	return in.current&k != 0 && in.previous&k == 0
}

// Held reports whether k is currently held.
func (in *Input) Held(k Buttons) bool {
	return in.current&k != 0
}

// Released reports a falling edge: not held now, held last frame.
func (in *Input) Released(k Buttons) bool {
	return in.current&k == 0 && in.previous&k != 0
}

// Current returns the latest sample.
func (in *Input) Current() Buttons {
	return in.current
}

// Previous returns the sample before the latest one.
func (in *Input) Previous() Buttons {
	return in.previous
}

// Reset clears both samples.
func (in *Input) Reset() {
	in.current = 0
	in.previous = 0
}
