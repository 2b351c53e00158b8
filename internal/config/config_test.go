package config

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/vovakirdan/fbcore/internal/games/particles"
)

func TestEmbeddedDefaultsMatchDefault(t *testing.T) {
	cfg, err := Parse(DefaultYAML(), ".yaml")
	if err != nil {
		t.Fatalf("embedded defaults do not parse: %v", err)
	}
	d := Default()
	if cfg.Loop != d.Loop || cfg.Display != d.Display || cfg.Particles != d.Particles {
		t.Errorf("embedded defaults drifted from Default():\n%+v\n%+v", cfg, d)
	}
	if len(cfg.Keys["start"]) != 2 {
		t.Errorf("start keys = %v", cfg.Keys["start"])
	}
}

func TestParseYAMLPartial(t *testing.T) {
	data := []byte("loop:\n  tick_rate: 30\nparticles:\n  burst: 5\n")
	cfg, err := Parse(data, ".yml")
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	if cfg.Loop.TickRate != 30 {
		t.Errorf("TickRate = %d, expected 30", cfg.Loop.TickRate)
	}
	if cfg.Loop.Seed != Default().Loop.Seed {
		t.Errorf("Seed = %d, expected the default", cfg.Loop.Seed)
	}
	if cfg.Particles.Burst != 5 || cfg.Particles.LifeMax != particles.DefaultTuning().LifeMax {
		t.Errorf("Particles = %+v", cfg.Particles)
	}
}

func TestParseTOML(t *testing.T) {
	data := []byte(`
difficulty = "hard"

[display]
backend = "window"
scale = 4

[keys]
a = ["space"]
`)
	cfg, err := Parse(data, ".toml")
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	if cfg.Display.Backend != BackendWindow || cfg.Display.Scale != 4 {
		t.Errorf("Display = %+v", cfg.Display)
	}
	if cfg.Difficulty != DifficultyHard {
		t.Errorf("Difficulty = %q", cfg.Difficulty)
	}
	if len(cfg.Keys["a"]) != 1 || cfg.Keys["a"][0] != "space" {
		t.Errorf("Keys = %v", cfg.Keys)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
		ext  string
	}{
		{"bad yaml", "loop: [", ".yaml"},
		{"bad toml", "loop = ", ".toml"},
		{"unknown backend", "display:\n  backend: vga\n", ".yaml"},
		{"unknown button", "keys:\n  turbo: [t]\n", ".yaml"},
		{"empty key list", "keys:\n  a: []\n", ".yaml"},
		{"unknown difficulty", "difficulty: insane\n", ".yaml"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := Parse([]byte(tc.data), tc.ext); err == nil {
				t.Error("expected an error")
			}
		})
	}

	if _, err := Parse([]byte("x"), ".ini"); !errors.Is(err, ErrUnknownFormat) {
		t.Errorf("Parse(.ini) error = %v, expected ErrUnknownFormat", err)
	}
}

func TestValidateNormalizes(t *testing.T) {
	cfg := Config{Loop: LoopConfig{TickRate: -5}, Display: DisplayConfig{Scale: 0}}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() error: %v", err)
	}
	if cfg.Loop.TickRate != 60 || cfg.Display.Scale != 1 || cfg.Display.Backend != BackendTUI {
		t.Errorf("not normalized: %+v", cfg)
	}
	if cfg.Particles.Burst <= 0 || cfg.Runtime().TickRate != 60 {
		t.Errorf("runtime/particles not filled: %+v", cfg)
	}
}

func TestDifficulty(t *testing.T) {
	base := particles.DefaultTuning()
	tests := []struct {
		preset DifficultyPreset
		check  func(particles.Tuning) bool
	}{
		{DifficultyNormal, func(tu particles.Tuning) bool { return tu == base }},
		{DifficultyEasy, func(tu particles.Tuning) bool {
			return tu.RoundSeconds > base.RoundSeconds && tu.Burst > base.Burst
		}},
		{DifficultyHard, func(tu particles.Tuning) bool {
			return tu.RoundSeconds < base.RoundSeconds && tu.Speed > base.Speed
		}},
	}
	for _, tc := range tests {
		if got := ApplyDifficulty(base, tc.preset); !tc.check(got) {
			t.Errorf("ApplyDifficulty(%s) = %+v", tc.preset, got)
		}
	}

	if _, err := ParseDifficulty("hard"); err != nil {
		t.Errorf("ParseDifficulty(hard) error: %v", err)
	}
	if _, err := ParseDifficulty("fixed"); err == nil {
		t.Error("ParseDifficulty(fixed) should fail")
	}
}

func TestLoadSearchOrder(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	cfg, src, err := Load("")
	if err != nil || src != SourceEmbedded {
		t.Fatalf("Load() = %q, %v, expected embedded", src, err)
	}
	if cfg.Loop.TickRate != 60 {
		t.Errorf("TickRate = %d", cfg.Loop.TickRate)
	}

	dir := filepath.Join(home, ".fbcore")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "config.toml"), []byte("[loop]\ntick_rate = 50\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	cfg, src, _ = Load("")
	if src != filepath.Join(dir, "config.toml") || cfg.Loop.TickRate != 50 {
		t.Errorf("Load() from %q tick %d, expected user toml", src, cfg.Loop.TickRate)
	}

	custom := filepath.Join(t.TempDir(), "mine.yaml")
	if err := os.WriteFile(custom, []byte("loop:\n  tick_rate: 25\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	cfg, src, err = Load(custom)
	if err != nil || src != custom || cfg.Loop.TickRate != 25 {
		t.Errorf("Load(custom) = %q tick %d err %v", src, cfg.Loop.TickRate, err)
	}

	if _, _, err := Load(filepath.Join(home, "missing.yaml")); err == nil {
		t.Error("missing custom path should be an error")
	}
}

func TestExpandHome(t *testing.T) {
	t.Setenv("HOME", "/home/tester")
	if got := ExpandHome("~/x/y.yaml"); got != "/home/tester/x/y.yaml" {
		t.Errorf("ExpandHome() = %q", got)
	}
	if got := ExpandHome("/abs"); got != "/abs" {
		t.Errorf("ExpandHome(/abs) = %q", got)
	}
}

func TestWatchReloads(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fbcore.yaml")
	if err := os.WriteFile(path, []byte("loop:\n  tick_rate: 30\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	got := make(chan Config, 4)
	done := make(chan error, 1)
	go func() {
		done <- Watch(ctx, path, func(c Config) {
			select {
			case got <- c:
			default:
			}
		}, nil)
	}()

	// Give the watcher time to register before editing.
	time.Sleep(100 * time.Millisecond)
	if err := os.WriteFile(path, []byte("loop:\n  tick_rate: 90\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	timeout := time.After(3 * time.Second)
	for reloaded := false; !reloaded; {
		select {
		case c := <-got:
			reloaded = c.Loop.TickRate == 90
		case <-timeout:
			t.Fatal("no reload with the new tick rate")
		}
	}

	cancel()
	if err := <-done; err != nil {
		t.Errorf("Watch() = %v", err)
	}
}
