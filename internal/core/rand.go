package core

import "fmt"

// DefaultSeed seeds the generator when nothing else is configured.
const DefaultSeed uint32 = 12345

// LCG constants (Numerical Recipes).
const (
	lcgMul uint32 = 1664525
	lcgInc uint32 = 1013904223
)

// Rand is a linear congruential generator. The whole state is one uint32,
// so a copy of a Rand replays the same sequence.
type Rand struct {
	state uint32
}

// NewRand returns a generator seeded with seed.
func NewRand(seed uint32) *Rand {
	return &Rand{state: seed}
}

// Seed resets the state.
func (r *Rand) Seed(seed uint32) {
	r.state = seed
}

// State returns the current state.
func (r *Rand) State() uint32 {
	return r.state
}

// Next advances the generator and returns the new state.
// Wraparound modulo 2^32 is part of the definition.
func (r *Rand) Next() uint32 {
	r.state = r.state*lcgMul + lcgInc
	return r.state
}

// Range returns a value in [min, max]. Callers must ensure max >= min
// and that the range holds at most 2^32 values; a reversed or wider range
// panics rather than producing a meaningless value.
func (r *Rand) Range(min, max int) int {
	if max < min {
		panic(fmt.Sprintf("core: Rand.Range called with max %d < min %d", max, min))
	}
	width := uint64(uint(max-min)) + 1
	if width > 1<<32 {
		panic(fmt.Sprintf("core: Rand.Range span [%d, %d] exceeds 2^32 values", min, max))
	}
	if width == 1<<32 {
		return min + int(r.Next())
	}
	span := uint32(width)
	return min + int(r.Next()%span)
}
