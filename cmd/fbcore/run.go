package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/fbcore/internal/core"
	"github.com/vovakirdan/fbcore/internal/games/particles"
	"github.com/vovakirdan/fbcore/internal/logging"
	"github.com/vovakirdan/fbcore/internal/platform/headless"
	"github.com/vovakirdan/fbcore/internal/platform/snapshot"
)

var (
	flagFrames     int
	flagHz         int
	flagScreenshot string
	flagHold       []string
)

var runCmd = &cobra.Command{
	Use:   "run <game>",
	Short: "Run a game headless",
	Long: `Runs a game without a display for a fixed number of frames and prints
a summary. Useful for smoke tests and for rendering reference frames.

Examples:
  fbcore run hello --frames 120 --screenshot hello.bmp
  fbcore run particles --frames 600 --hold start,a --seed 7`,
	Args: cobra.ExactArgs(1),
	RunE: runHeadless,
}

func init() {
	runCmd.Flags().IntVar(&flagFrames, "frames", 600, "Frames to run")
	runCmd.Flags().IntVar(&flagHz, "hz", 0, "Frame rate limit (0 = as fast as possible)")
	runCmd.Flags().StringVar(&flagScreenshot, "screenshot", "", "Write the last frame to this BMP file")
	runCmd.Flags().StringSliceVar(&flagHold, "hold", nil, "Buttons held for the whole run (e.g. start,a)")
}

func runHeadless(cmd *cobra.Command, args []string) error {
	cfg, _, err := loadConfig()
	if err != nil {
		return err
	}
	if flagFrames <= 0 {
		return fmt.Errorf("--frames must be positive, got %d", flagFrames)
	}

	held, err := parseButtons(flagHold)
	if err != nil {
		return err
	}

	game, err := createGame(args[0], cfg)
	if err != nil {
		return err
	}

	logger, err := logging.New(os.Stderr, cfg.Log.Level)
	if err != nil {
		return err
	}

	res, err := headless.Run(cmd.Context(), game, headless.Options{
		Frames: flagFrames,
		Hz:     flagHz,
		Seed:   cfg.Loop.Seed,
		Input:  headless.NewScript(held),
		Logger: logging.WithRun(logger, game.ID()),
	})
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s: %d frames in %s, phase %s\n", game.ID(), res.Frames, res.Elapsed.Round(time.Millisecond), res.Phase)
	if p, ok := game.(*particles.Game); ok {
		fmt.Fprintf(out, "score %d, best %d, %d live particles\n", p.Score(), p.Best(), p.Live())
	}

	if flagScreenshot != "" {
		if err := snapshot.Save(flagScreenshot, res.Canvas); err != nil {
			return err
		}
		fmt.Fprintf(out, "frame written to %s\n", flagScreenshot)
	}
	return nil
}

// parseButtons turns button names into a mask.
func parseButtons(names []string) (core.Buttons, error) {
	var mask core.Buttons
	for _, n := range names {
		n = strings.TrimSpace(n)
		if n == "" {
			continue
		}
		b, ok := core.ParseButton(n)
		if !ok {
			return 0, fmt.Errorf("unknown button %q", n)
		}
		mask |= b
	}
	return mask, nil
}
