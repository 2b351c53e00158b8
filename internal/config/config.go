// Package config provides YAML/TOML configuration loading, validation,
// difficulty presets and hot reload for the fbcore hosts.
package config

import (
	"fmt"

	"github.com/vovakirdan/fbcore/internal/core"
	"github.com/vovakirdan/fbcore/internal/games/particles"
)

// Config is the complete host configuration.
type Config struct {
	Loop       LoopConfig          `yaml:"loop" toml:"loop"`
	Display    DisplayConfig       `yaml:"display" toml:"display"`
	Log        LogConfig           `yaml:"log" toml:"log"`
	Keys       map[string][]string `yaml:"keys" toml:"keys"` // Button name -> key names
	Difficulty DifficultyPreset    `yaml:"difficulty" toml:"difficulty"`
	Particles  particles.Tuning    `yaml:"particles" toml:"particles"`
}

// LoopConfig controls frame pacing and randomness.
type LoopConfig struct {
	TickRate int    `yaml:"tick_rate" toml:"tick_rate"` // Frames per second
	Seed     uint32 `yaml:"seed" toml:"seed"`           // 0 = default seed
}

// DisplayConfig selects and sizes the desktop host.
type DisplayConfig struct {
	Backend string `yaml:"backend" toml:"backend"` // "tui" or "window"
	Scale   int    `yaml:"scale" toml:"scale"`     // Window pixel scale
}

// LogConfig controls the host logger.
type LogConfig struct {
	Level string `yaml:"level" toml:"level"`
	File  string `yaml:"file" toml:"file"` // Used by the terminal host, which owns stderr
}

// Backends known to the play command.
const (
	BackendTUI    = "tui"
	BackendWindow = "window"
)

// Default returns the built-in configuration.
func Default() Config {
	rc := core.DefaultConfig()
	return Config{
		Loop: LoopConfig{
			TickRate: rc.TickRate,
			Seed:     rc.Seed,
		},
		Display: DisplayConfig{
			Backend: BackendTUI,
			Scale:   3,
		},
		Log: LogConfig{
			Level: "info",
			File:  "~/.fbcore/fbcore.log",
		},
		Difficulty: DifficultyNormal,
		Particles:  particles.DefaultTuning(),
	}
}

// Validate fills unset fields with defaults and rejects values no host
// can work with.
func (c *Config) Validate() error {
	d := Default()
	if c.Loop.TickRate <= 0 {
		c.Loop.TickRate = d.Loop.TickRate
	}
	if c.Loop.Seed == 0 {
		c.Loop.Seed = d.Loop.Seed
	}
	if c.Display.Backend == "" {
		c.Display.Backend = d.Display.Backend
	}
	if c.Display.Backend != BackendTUI && c.Display.Backend != BackendWindow {
		return fmt.Errorf("config: unknown display backend %q", c.Display.Backend)
	}
	if c.Display.Scale < 1 {
		c.Display.Scale = 1
	}
	if c.Log.Level == "" {
		c.Log.Level = d.Log.Level
	}
	if c.Difficulty == "" {
		c.Difficulty = DifficultyNormal
	}
	if _, err := ParseDifficulty(string(c.Difficulty)); err != nil {
		return err
	}
	for name, keys := range c.Keys {
		if _, ok := core.ParseButton(name); !ok {
			return fmt.Errorf("config: keys: unknown button %q", name)
		}
		if len(keys) == 0 {
			return fmt.Errorf("config: keys: button %q has no keys", name)
		}
	}
	c.Particles = c.Particles.Normalize()
	return nil
}

// Runtime returns the part of the configuration the frame loop needs.
func (c Config) Runtime() core.RuntimeConfig {
	return core.RuntimeConfig{
		TickRate: c.Loop.TickRate,
		Seed:     c.Loop.Seed,
	}
}

// ParticleTuning returns the particle tuning with the difficulty preset
// applied.
func (c Config) ParticleTuning() particles.Tuning {
	return ApplyDifficulty(c.Particles, c.Difficulty)
}
