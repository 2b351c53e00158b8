package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/fbcore/internal/config"
	"github.com/vovakirdan/fbcore/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Interactive game picker",
	Long: `Opens a menu of all registered games. The chosen game starts in the
terminal; quitting it returns to the menu.`,
	RunE: runMenu,
}

func runMenu(cmd *cobra.Command, args []string) error {
	cfg, src, err := loadConfig()
	if err != nil {
		return err
	}
	cfg.Display.Backend = config.BackendTUI

	for {
		width := 80
		if w, _, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width = w
		}

		id, err := tui.RunMenu(width)
		if err != nil {
			return err
		}
		if id == "" {
			return nil
		}
		if err := playGame(cmd.Context(), id, cfg, src); err != nil {
			return err
		}
		if cmd.Context().Err() != nil {
			return nil
		}
	}
}
