// Package logging builds the structured loggers used by the hosts and
// the command line. Core packages never log; hosts attach loop observers
// from this package instead.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/fbcore/internal/loop"
)

// Prefix is shown in front of every log line.
const Prefix = "fbcore"

// New returns a logger writing to w at the named level ("debug", "info",
// "warn", "error").
func New(w io.Writer, level string) (*log.Logger, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("logging: %w", err)
	}
	l := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.RFC3339,
		Prefix:          Prefix,
		Level:           lvl,
	})
	return l, nil
}

// Default returns an info-level logger on stderr.
func Default() *log.Logger {
	l, _ := New(os.Stderr, "info")
	return l
}

// OpenFile creates a log file for hosts that own the terminal. The parent
// directory is created if needed; the caller closes the file.
func OpenFile(path string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("logging: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, fmt.Errorf("logging: %w", err)
	}
	return f, nil
}

// WithRun returns a child logger tagged with a fresh run id and the game.
func WithRun(l *log.Logger, game string) *log.Logger {
	return l.With("run", uuid.NewString(), "game", game)
}

// Observers returns loop options that log phase changes at debug level
// and a frame counter line every statsEvery frames at info level.
// statsEvery <= 0 disables frame lines.
func Observers(l *log.Logger, statsEvery uint32) []loop.Option {
	opts := []loop.Option{
		loop.WithPhaseObserver(func(from, to loop.Phase) {
			l.Debug("phase", "from", from, "to", to)
		}),
	}
	if statsEvery > 0 {
		start := time.Now()
		opts = append(opts, loop.WithFrameObserver(func(frame uint32) {
			if frame%statsEvery != 0 {
				return
			}
			elapsed := time.Since(start)
			fps := float64(frame) / elapsed.Seconds()
			l.Info("frames", "count", frame, "fps", fmt.Sprintf("%.1f", fps))
		}))
	}
	return opts
}
