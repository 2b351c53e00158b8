package host

import (
	"time"

	"github.com/vovakirdan/fbcore/internal/loop"
)

// Pacer is a loop.VBlankSignal for hosts without a display interrupt.
// Each wait publishes the framebuffer and then blocks until the next tick.
type Pacer struct {
	fb     *Framebuffer
	ticker *time.Ticker
	signal <-chan struct{}
	done   chan struct{}
	closed bool
}

// NewPacer returns a pacer ticking at hz. A non-positive rate never
// blocks, which runs the loop as fast as it can.
func NewPacer(fb *Framebuffer, hz int) *Pacer {
	p := &Pacer{fb: fb, done: make(chan struct{})}
	if hz > 0 {
		p.ticker = time.NewTicker(time.Second / time.Duration(hz))
	}
	return p
}

// NewSignalPacer returns a pacer released by sends on signal. Window
// hosts use it to lock the loop to their own update rate.
func NewSignalPacer(fb *Framebuffer, signal <-chan struct{}) *Pacer {
	return &Pacer{fb: fb, signal: signal, done: make(chan struct{})}
}

// WaitVBlank publishes the finished frame, then waits for the next tick.
// After Close it returns immediately.
func (p *Pacer) WaitVBlank() {
	if p.fb != nil {
		p.fb.Publish()
	}
	switch {
	case p.ticker != nil:
		select {
		case <-p.ticker.C:
		case <-p.done:
		}
	case p.signal != nil:
		select {
		case <-p.signal:
		case <-p.done:
		}
	}
}

// Close stops the ticker and releases any blocked wait. It must be
// called once, by the goroutine that owns the pacer's lifetime.
func (p *Pacer) Close() {
	if p.closed {
		return
	}
	p.closed = true
	if p.ticker != nil {
		p.ticker.Stop()
	}
	close(p.done)
}

var _ loop.VBlankSignal = (*Pacer)(nil)
