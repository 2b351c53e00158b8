//go:build gameboyadvance

// Package gba drives the frame loop on Game Boy Advance hardware. VRAM is
// the framebuffer, KEYINPUT is the input source and the VCOUNT register
// marks the vertical blank.
package gba

import (
	"runtime/volatile"
	"unsafe"

	"github.com/vovakirdan/fbcore/internal/core"
	"github.com/vovakirdan/fbcore/internal/loop"
)

const (
	regDISPCNT  = 0x04000000
	regVCOUNT   = 0x04000006
	regKEYINPUT = 0x04000130
	vramAddr    = 0x06000000
)

var (
	dispcnt  = (*volatile.Register16)(unsafe.Pointer(uintptr(regDISPCNT)))
	vcount   = (*volatile.Register16)(unsafe.Pointer(uintptr(regVCOUNT)))
	keyinput = (*volatile.Register16)(unsafe.Pointer(uintptr(regKEYINPUT)))
)

// Video is the mode 3 bitmap in VRAM.
type Video struct{}

func (Video) Buffer() []core.Color {
	return unsafe.Slice((*core.Color)(unsafe.Pointer(uintptr(vramAddr))), core.ScreenWidth*core.ScreenHeight)
}

func (Video) Width() int  { return core.ScreenWidth }
func (Video) Height() int { return core.ScreenHeight }

func (Video) SetMode(mode loop.DisplayMode) {
	dispcnt.Set(uint16(mode))
}

// Keypad reads KEYINPUT. The register is active-low.
type Keypad struct{}

func (Keypad) Buttons() core.Buttons {
	return core.Buttons(^keyinput.Get()) & core.ButtonMask
}

// VBlank busy-waits on VCOUNT.
type VBlank struct{}

func (VBlank) WaitVBlank() {
	waitVBlank(vcount.Get)
}

// NewRunner wires the hardware devices into a frame loop.
func NewRunner(opts ...loop.Option) *loop.Runner {
	return loop.New(Video{}, Keypad{}, VBlank{}, opts...)
}

// Run plays h forever.
func Run(h loop.Hooks, opts ...loop.Option) {
	r := NewRunner(opts...)
	r.Start(h)
	for {
		r.Step(h)
	}
}
