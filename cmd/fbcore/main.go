// fbcore runs the framebuffer demo games on a desktop host.
//
// Usage:
//
//	fbcore list              - List available games
//	fbcore play <game>       - Play a game in the terminal or a window
//	fbcore menu              - Pick a game interactively
//	fbcore run <game>        - Run a game headless for a number of frames
//	fbcore config            - Print the effective configuration
//
// Global flags:
//
//	--config <path>     - Config file (default: ~/.fbcore/config.yaml)
//	--fps <rate>        - Override the tick rate
//	--seed <value>      - Override the RNG seed
//	--log-level <lvl>   - debug, info, warn or error
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/fbcore/internal/games/hello"
	_ "github.com/vovakirdan/fbcore/internal/games/particles"
	_ "github.com/vovakirdan/fbcore/internal/games/shapes"
)

var (
	// Global flags
	flagConfig   string
	flagFPS      int
	flagSeed     uint32
	flagLogLevel string
)

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "fbcore",
	Short: "fbcore - 240x160 framebuffer games on the desktop",
	Long: `fbcore runs small games written against a 240x160, 15-bit framebuffer
and a ten-button pad. The same games build for the handheld with TinyGo.

Available commands:
  list     - Show all available games
  play     - Play a game in the terminal or in a window
  menu     - Interactive game picker
  run      - Run a game headless, optionally saving a screenshot
  config   - Print the effective configuration

Examples:
  fbcore list
  fbcore play particles
  fbcore play shapes --backend window
  fbcore run hello --frames 120 --screenshot hello.bmp`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config file (YAML or TOML)")
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate override (0 = from config)")
	rootCmd.PersistentFlags().Uint32Var(&flagSeed, "seed", 0, "RNG seed override (0 = from config)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level override: debug, info, warn, error")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(configCmd)
}
