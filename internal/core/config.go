package core

// RuntimeConfig is the host-independent part of the configuration that
// reaches the frame loop.
type RuntimeConfig struct {
	TickRate int    // Frames per second on hosts without a real vblank
	Seed     uint32 // RNG seed for deterministic runs
}

// DefaultConfig returns the settings of the original device: 60 Hz and
// the fixed startup seed.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		TickRate: 60,
		Seed:     DefaultSeed,
	}
}
