package config

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

//go:embed defaults/fbcore.yaml
var defaultYAML []byte

// ErrUnknownFormat is returned for files that are neither YAML nor TOML.
var ErrUnknownFormat = errors.New("config: unknown file format")

// SourceEmbedded names the built-in defaults in Load's source result.
const SourceEmbedded = "embedded"

// Load finds and reads the configuration.
// Search order: customPath -> ~/.fbcore/config.yaml -> ~/.fbcore/config.toml ->
// ./configs/fbcore.yaml -> embedded default.
// A custom path that cannot be read or parsed is an error; the other
// locations are skipped when missing or broken. The second result names
// the file that was used.
func Load(customPath string) (Config, string, error) {
	if customPath != "" {
		cfg, err := LoadFile(customPath)
		if err != nil {
			return Config{}, "", err
		}
		return cfg, customPath, nil
	}

	candidates := []string{
		userConfigPath("config.yaml"),
		userConfigPath("config.toml"),
		filepath.Join("configs", "fbcore.yaml"),
	}
	for _, path := range candidates {
		if path == "" {
			continue
		}
		if cfg, err := LoadFile(path); err == nil {
			return cfg, path, nil
		}
	}

	cfg, err := Parse(defaultYAML, ".yaml")
	if err != nil {
		// Fallback to hardcoded if the embedded file is broken
		cfg = Default()
	}
	return cfg, SourceEmbedded, nil
}

// LoadFile reads and validates one configuration file. The format is
// chosen by extension.
func LoadFile(path string) (Config, error) {
	data, err := os.ReadFile(ExpandHome(path))
	if err != nil {
		return Config{}, fmt.Errorf("config: failed to read %s: %w", path, err)
	}
	cfg, err := Parse(data, filepath.Ext(path))
	if err != nil {
		return Config{}, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes data on top of Default() and validates the result, so a
// file only needs the fields it changes. ext is ".yaml", ".yml" or
// ".toml".
func Parse(data []byte, ext string) (Config, error) {
	cfg := Default()
	switch strings.ToLower(ext) {
	case ".yaml", ".yml":
		if len(bytes.TrimSpace(data)) > 0 {
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return Config{}, fmt.Errorf("parse yaml: %w", err)
			}
		}
	case ".toml":
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse toml: %w", err)
		}
	default:
		return Config{}, fmt.Errorf("%w: %q", ErrUnknownFormat, ext)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// DefaultYAML returns the embedded default file, for `fbcore config`.
func DefaultYAML() []byte {
	return defaultYAML
}

// ExpandHome replaces a leading "~/" with the user's home directory.
func ExpandHome(path string) string {
	if !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[2:])
}

// Dir returns ~/.fbcore, or "" if there is no home directory.
func Dir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".fbcore")
}

// userConfigPath returns the path to a user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	dir := Dir()
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, filename)
}
