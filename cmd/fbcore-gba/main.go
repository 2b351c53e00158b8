//go:build gameboyadvance

// fbcore-gba is the cartridge build. Pick the game at link time:
//
//	tinygo build -target gameboyadvance -ldflags "-X main.gameID=shapes" -o fbcore.gba ./cmd/fbcore-gba
package main

import (
	"github.com/vovakirdan/fbcore/internal/platform/gba"
	"github.com/vovakirdan/fbcore/internal/registry"

	_ "github.com/vovakirdan/fbcore/internal/games/hello"
	_ "github.com/vovakirdan/fbcore/internal/games/particles"
	_ "github.com/vovakirdan/fbcore/internal/games/shapes"
)

var gameID = "particles"

func main() {
	game, err := registry.Create(gameID)
	if err != nil {
		// Nothing to report to on the device.
		game, _ = registry.Create("hello")
	}
	gba.Run(game)
}
