package window

import (
	"errors"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/fbcore/internal/platform/host"
)

// ErrNoWindow is returned by Run in builds without window support.
var ErrNoWindow = errors.New("window: not available in this build (requires cgo)")

// Options configure a window session.
type Options struct {
	TickRate int
	Scale    int
	Seed     uint32
	KeyMap   host.KeyMap
	ShotDir  string
	Logger   *log.Logger
}

func (o Options) withDefaults() Options {
	if o.TickRate <= 0 {
		o.TickRate = 60
	}
	o.Scale = max(o.Scale, 1)
	if len(o.KeyMap.Buttons) == 0 {
		o.KeyMap = host.DefaultKeyMap()
	}
	return o
}
