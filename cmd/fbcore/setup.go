package main

import (
	"fmt"

	"github.com/vovakirdan/fbcore/internal/config"
	"github.com/vovakirdan/fbcore/internal/games/particles"
	"github.com/vovakirdan/fbcore/internal/registry"
)

// loadConfig loads the configuration and applies the global flag
// overrides. It also returns the file the configuration came from.
func loadConfig() (config.Config, string, error) {
	cfg, src, err := config.Load(flagConfig)
	if err != nil {
		return config.Config{}, "", err
	}
	applyOverrides(&cfg)
	if err := cfg.Validate(); err != nil {
		return config.Config{}, "", err
	}
	return cfg, src, nil
}

func applyOverrides(cfg *config.Config) {
	if flagFPS > 0 {
		cfg.Loop.TickRate = flagFPS
	}
	if flagSeed != 0 {
		cfg.Loop.Seed = flagSeed
	}
	if flagLogLevel != "" {
		cfg.Log.Level = flagLogLevel
	}
}

// createGame builds a registered game and hands it the configured
// tuning when it has any.
func createGame(id string, cfg config.Config) (registry.Game, error) {
	if !registry.Exists(id) {
		return nil, fmt.Errorf("unknown game %q (run 'fbcore list' to see available games)", id)
	}
	game, err := registry.Create(id)
	if err != nil {
		return nil, err
	}
	configureGame(game, cfg)
	return game, nil
}

// configureGame pushes tuning from cfg into a running or fresh game.
func configureGame(game registry.Game, cfg config.Config) {
	if p, ok := game.(*particles.Game); ok {
		p.SetTuning(cfg.ParticleTuning())
	}
}
