package loop

import "github.com/vovakirdan/fbcore/internal/core"

// DisplayMode selects how the video device interprets its buffer.
type DisplayMode uint16

// ModeBitmap is the 15-bit linear bitmap mode with background 2 enabled
// (mode 3 | BG2 on the original hardware).
const ModeBitmap DisplayMode = 0x0403

// VideoOutput is the device that owns the framebuffer.
type VideoOutput interface {
	// Buffer returns the pixel storage, row-major, Width*Height long.
	Buffer() []core.Color
	Width() int
	Height() int
	// SetMode configures the display. It is called once, before Init.
	SetMode(mode DisplayMode)
}

// RawInputSource reports which buttons are held right now, 1 = held.
type RawInputSource interface {
	Buttons() core.Buttons
}

// VBlankSignal blocks until the display enters its next vertical blank.
type VBlankSignal interface {
	WaitVBlank()
}

// Hooks are the game callbacks driven by the Runner.
type Hooks interface {
	// Init runs once after the display mode is set.
	Init(r *Runner)
	// HandleInput runs after the frame's input sample is taken.
	HandleInput(r *Runner)
	// Update advances game state by one frame.
	Update(r *Runner)
	// Render draws the frame. It runs inside the vertical blank.
	Render(r *Runner)
}
