package particles

// Tuning holds the knobs that shape a round. It can be swapped while the
// game runs; see Game.SetTuning.
type Tuning struct {
	Burst        int `yaml:"burst" toml:"burst"`                 // Particles per A press
	LifeMin      int `yaml:"life_min" toml:"life_min"`           // Shortest particle life, frames
	LifeMax      int `yaml:"life_max" toml:"life_max"`           // Longest particle life, frames
	Speed        int `yaml:"speed" toml:"speed"`                 // Max launch speed, pixels per frame
	RoundSeconds int `yaml:"round_seconds" toml:"round_seconds"` // Length of a round at 60 Hz
	MaxParticles int `yaml:"max_particles" toml:"max_particles"` // Live particle cap
}

// DefaultTuning returns the stock settings.
func DefaultTuning() Tuning {
	return Tuning{
		Burst:        24,
		LifeMin:      20,
		LifeMax:      60,
		Speed:        2,
		RoundSeconds: 45,
		MaxParticles: 512,
	}
}

// Normalize fills zero or inconsistent fields so the game never has to
// guard against them.
func (t Tuning) Normalize() Tuning {
	d := DefaultTuning()
	if t.Burst <= 0 {
		t.Burst = d.Burst
	}
	if t.LifeMin <= 0 {
		t.LifeMin = d.LifeMin
	}
	if t.LifeMax < t.LifeMin {
		t.LifeMax = t.LifeMin
	}
	if t.Speed <= 0 {
		t.Speed = d.Speed
	}
	if t.RoundSeconds <= 0 {
		t.RoundSeconds = d.RoundSeconds
	}
	if t.MaxParticles <= 0 {
		t.MaxParticles = d.MaxParticles
	}
	return t
}
