//go:build !cgo && !tinygo

package window

import (
	"context"

	"github.com/vovakirdan/fbcore/internal/registry"
)

// Run reports that windows are unavailable without cgo.
func Run(_ context.Context, _ registry.Game, _ Options) error {
	return ErrNoWindow
}
