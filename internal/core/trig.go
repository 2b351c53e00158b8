package core

import "math"

// sineSteps is the number of table entries per full turn.
const sineSteps = 256

// FixedTwoPi is 2π in Q24.8 (6.28125).
const FixedTwoPi = Fixed(1608)

// sineTable holds sin(i * 2π / sineSteps) in Q24.8. It is built once at
// startup; lookups afterwards are integer-only.
var sineTable = func() [sineSteps]Fixed {
	var t [sineSteps]Fixed
	for i := range t {
		s := math.Sin(float64(i) * 2 * math.Pi / sineSteps)
		t[i] = Fixed(int32(math.Round(s * float64(FixedOne))))
	}
	return t
}()

// Sin returns the sine of angle, given in Q24.8 radians.
func Sin(angle Fixed) Fixed {
	return sineTable[sineIndex(angle)]
}

// Cos returns the cosine of angle, given in Q24.8 radians.
func Cos(angle Fixed) Fixed {
	return sineTable[(sineIndex(angle)+sineSteps/4)%sineSteps]
}

func sineIndex(angle Fixed) int {
	idx := int64(angle) * sineSteps / int64(FixedTwoPi)
	idx %= sineSteps
	if idx < 0 {
		idx += sineSteps
	}
	return int(idx)
}

// Sqrt returns the square root of v. Negative inputs yield zero.
func Sqrt(v Fixed) Fixed {
	if v <= 0 {
		return 0
	}
	// sqrt(raw/256) * 256 == sqrt(raw * 256)
	n := uint64(v) << FixedShift
	x := n
	y := (x + 1) / 2
	for y < x {
		x = y
		y = (x + n/x) / 2
	}
	return Fixed(int32(x))
}
