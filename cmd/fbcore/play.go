package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/fbcore/internal/config"
	"github.com/vovakirdan/fbcore/internal/logging"
	"github.com/vovakirdan/fbcore/internal/platform/host"
	"github.com/vovakirdan/fbcore/internal/platform/tui"
	"github.com/vovakirdan/fbcore/internal/platform/window"
	"github.com/vovakirdan/fbcore/internal/registry"
)

var (
	flagBackend    string
	flagWatch      bool
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play <game>",
	Short: "Play a game",
	Long: `Start playing the specified game.

Default controls (change them under "keys" in the config):
  Arrows/WASD  - D-pad
  Z/J          - A
  X/K          - B
  Enter/Space  - Start
  Tab/Bksp     - Select
  Q/E          - L/R
  Ctrl+S       - Screenshot (F12 in a window)
  Esc/Ctrl+C   - Quit

Backends:
  tui     - Half-block rendering in this terminal
  window  - Desktop window (needs a cgo build)

Examples:
  fbcore play particles
  fbcore play particles --difficulty hard --watch
  fbcore play shapes --backend window`,
	Args: cobra.ExactArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagBackend, "backend", "", "Display backend: tui or window (default from config)")
	playCmd.Flags().BoolVar(&flagWatch, "watch", false, "Reload the config file when it changes")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
}

func runPlay(cmd *cobra.Command, args []string) error {
	cfg, src, err := loadConfig()
	if err != nil {
		return err
	}
	if flagBackend != "" {
		cfg.Display.Backend = flagBackend
	}
	if flagDifficulty != "" {
		d, err := config.ParseDifficulty(flagDifficulty)
		if err != nil {
			return err
		}
		cfg.Difficulty = d
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	return playGame(cmd.Context(), args[0], cfg, src)
}

// playGame runs one game on the configured backend until the player
// quits or the process is interrupted.
func playGame(parent context.Context, id string, cfg config.Config, src string) error {
	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer stop()

	game, err := createGame(id, cfg)
	if err != nil {
		return err
	}

	keymap, err := host.NewKeyMap(cfg.Keys)
	if err != nil {
		return err
	}

	logger, closeLog, err := hostLogger(cfg)
	if err != nil {
		return err
	}
	defer closeLog()
	logger = logging.WithRun(logger, id)
	logger.Info("starting", "backend", cfg.Display.Backend, "config", src, "tick_rate", cfg.Loop.TickRate, "seed", cfg.Loop.Seed)

	if flagWatch {
		startWatch(ctx, game, src, logger)
	}

	switch cfg.Display.Backend {
	case config.BackendWindow:
		err = window.Run(ctx, game, window.Options{
			TickRate: cfg.Loop.TickRate,
			Scale:    cfg.Display.Scale,
			Seed:     cfg.Loop.Seed,
			KeyMap:   keymap,
			Logger:   logger,
		})
	default:
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		err = tui.Run(ctx, game, tui.Options{
			TickRate: cfg.Loop.TickRate,
			Seed:     cfg.Loop.Seed,
			KeyMap:   keymap,
			Logger:   logger,
			Width:    width,
			Height:   height,
		})
	}
	if err != nil {
		logger.Error("game stopped", "err", err)
		return fmt.Errorf("running %s: %w", id, err)
	}
	logger.Info("finished")
	return nil
}

// hostLogger returns the logger for a play session. The terminal host
// owns the screen, so its log goes to the configured file.
func hostLogger(cfg config.Config) (*log.Logger, func(), error) {
	var w io.Writer = os.Stderr
	closeFn := func() {}

	if cfg.Display.Backend == config.BackendTUI {
		if cfg.Log.File == "" {
			w = io.Discard
		} else {
			f, err := logging.OpenFile(config.ExpandHome(cfg.Log.File))
			if err != nil {
				return nil, nil, err
			}
			w = f
			closeFn = func() { f.Close() }
		}
	}

	logger, err := logging.New(w, cfg.Log.Level)
	if err != nil {
		closeFn()
		return nil, nil, err
	}
	return logger, closeFn, nil
}

func startWatch(ctx context.Context, game registry.Game, src string, logger *log.Logger) {
	if src == config.SourceEmbedded {
		logger.Warn("--watch ignored: no config file in use")
		return
	}
	go func() {
		err := config.Watch(ctx, src, func(c config.Config) {
			configureGame(game, c)
		}, logger)
		if err != nil {
			logger.Error("config watch stopped", "err", err)
		}
	}()
}
