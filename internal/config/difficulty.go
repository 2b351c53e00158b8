package config

import (
	"fmt"

	"github.com/vovakirdan/fbcore/internal/games/particles"
)

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParseDifficulty validates a preset name.
func ParseDifficulty(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		return p, nil
	}
	return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal or hard)", s)
}

// ApplyDifficulty scales a particle tuning for the preset. Normal leaves
// the tuning as configured.
func ApplyDifficulty(t particles.Tuning, preset DifficultyPreset) particles.Tuning {
	switch preset {
	case DifficultyEasy:
		t.RoundSeconds += t.RoundSeconds / 3
		t.Burst += t.Burst / 2
	case DifficultyHard:
		t.RoundSeconds -= t.RoundSeconds / 3
		t.Burst -= t.Burst / 3
		t.Speed++
	}
	return t.Normalize()
}
