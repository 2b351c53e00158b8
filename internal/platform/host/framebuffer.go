// Package host contains the plumbing shared by the desktop hosts: a
// double-buffered video device, a ticker-driven vertical blank and a
// thread-safe button source fed from key events.
package host

import (
	"sync"
	"sync/atomic"

	"github.com/vovakirdan/fbcore/internal/core"
	"github.com/vovakirdan/fbcore/internal/loop"
)

// Framebuffer is a loop.VideoOutput. The frame loop draws into the back
// buffer; Publish copies it to the front buffer, which display code reads
// through Snapshot from any goroutine.
type Framebuffer struct {
	width  int
	height int
	back   []core.Color

	mu    sync.Mutex
	front []core.Color
	seq   uint64
	mode  atomic.Uint32
}

// NewFramebuffer allocates a width x height framebuffer.
func NewFramebuffer(width, height int) *Framebuffer {
	width = clamp(width, 1, 4096)
	height = clamp(height, 1, 4096)
	return &Framebuffer{
		width:  width,
		height: height,
		back:   make([]core.Color, width*height),
		front:  make([]core.Color, width*height),
	}
}

// Buffer returns the back buffer.
func (f *Framebuffer) Buffer() []core.Color { return f.back }

// Width returns the width in pixels.
func (f *Framebuffer) Width() int { return f.width }

// Height returns the height in pixels.
func (f *Framebuffer) Height() int { return f.height }

// SetMode records the requested display mode.
func (f *Framebuffer) SetMode(mode loop.DisplayMode) {
	f.mode.Store(uint32(mode))
}

// Mode returns the last mode set.
func (f *Framebuffer) Mode() loop.DisplayMode {
	return loop.DisplayMode(f.mode.Load())
}

// Publish makes the back buffer visible. Only the frame loop goroutine
// may call it.
func (f *Framebuffer) Publish() {
	f.mu.Lock()
	copy(f.front, f.back)
	f.seq++
	f.mu.Unlock()
}

// Snapshot copies the front buffer into dst, growing it if needed, and
// returns it with the sequence number of the published frame.
func (f *Framebuffer) Snapshot(dst []core.Color) ([]core.Color, uint64) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if cap(dst) < len(f.front) {
		dst = make([]core.Color, len(f.front))
	}
	dst = dst[:len(f.front)]
	copy(dst, f.front)
	return dst, f.seq
}

// Seq returns the number of frames published so far.
func (f *Framebuffer) Seq() uint64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.seq
}

var _ loop.VideoOutput = (*Framebuffer)(nil)
