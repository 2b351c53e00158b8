package host

import (
	"sync"

	"github.com/vovakirdan/fbcore/internal/core"
	"github.com/vovakirdan/fbcore/internal/loop"
)

// DefaultHold is how many frames a tapped key stays held. Terminals only
// report presses (plus auto-repeat), so a tap has to span several frames
// for games to see it as held.
const DefaultHold = 6

// Keys is a loop.RawInputSource fed from key events on another
// goroutine. Buttons can be held explicitly (Set) or for a number of
// frames (Tap).
type Keys struct {
	mu    sync.Mutex
	down  core.Buttons
	holds [16]int
}

// Set marks b as held or released until the next call.
func (k *Keys) Set(b core.Buttons, held bool) {
	k.mu.Lock()
	defer k.mu.Unlock()

	if held {
		k.down |= b
	} else {
		k.down &^= b
	}
}

// SetMask replaces the explicitly held buttons with mask. Hosts that
// poll the whole keyboard each tick use it.
func (k *Keys) SetMask(mask core.Buttons) {
	k.mu.Lock()
	defer k.mu.Unlock()

	k.down = mask
}

// Tap holds b for the next frames samples. A repeated tap extends the
// window.
func (k *Keys) Tap(b core.Buttons, frames int) {
	k.mu.Lock()
	defer k.mu.Unlock()

	for i := range k.holds {
		if b&(1<<i) != 0 {
			k.holds[i] = max(k.holds[i], frames)
		}
	}
}

// Buttons returns the current mask and ages tap windows by one frame.
// The runner calls it exactly once per frame.
func (k *Keys) Buttons() core.Buttons {
	k.mu.Lock()
	defer k.mu.Unlock()

	mask := k.down
	for i := range k.holds {
		if k.holds[i] > 0 {
			mask |= 1 << i
			k.holds[i]--
		}
	}
	return mask & core.ButtonMask
}

// Release drops every held and tapped button.
func (k *Keys) Release() {
	k.mu.Lock()
	defer k.mu.Unlock()

	k.down = 0
	k.holds = [16]int{}
}

var _ loop.RawInputSource = (*Keys)(nil)
