package core

// Fixed-point layout: Q24.8, value = raw / 256.
const (
	FixedShift = 8
	FixedOne   = Fixed(1 << FixedShift)
)

// Fixed is a signed Q24.8 fixed-point number.
// Arithmetic wraps on overflow like the underlying int32.
type Fixed int32

// FixedFromInt converts an integer to fixed-point.
func FixedFromInt(n int) Fixed {
	return Fixed(int32(n) << FixedShift)
}

// FixedFromFloat converts a float to fixed-point, truncating toward zero.
// Intended for constants; the simulation itself never touches floats.
func FixedFromFloat(f float32) Fixed {
	return Fixed(int32(f * float32(FixedOne)))
}

// FixedFromRaw wraps an already scaled value.
func FixedFromRaw(raw int32) Fixed {
	return Fixed(raw)
}

// Raw returns the scaled integer representation.
func (f Fixed) Raw() int32 {
	return int32(f)
}

// Int returns the integer part using an arithmetic shift,
// so negative values round toward negative infinity (-0.5 -> -1).
func (f Fixed) Int() int {
	return int(int32(f) >> FixedShift)
}

// Float returns the value as a float32.
func (f Fixed) Float() float32 {
	return float32(f) / float32(FixedOne)
}

// Add returns f + other.
func (f Fixed) Add(other Fixed) Fixed {
	return f + other
}

// Sub returns f - other.
func (f Fixed) Sub(other Fixed) Fixed {
	return f - other
}

// Mul returns f * other. The product is widened to 64 bits before the
// shift back down so the fractional bits survive.
func (f Fixed) Mul(other Fixed) Fixed {
	return Fixed((int64(f) * int64(other)) >> FixedShift)
}

// Div returns f / other. Division by zero yields zero.
func (f Fixed) Div(other Fixed) Fixed {
	if other == 0 {
		return 0
	}
	return Fixed((int64(f) << FixedShift) / int64(other))
}

// Neg returns -f.
func (f Fixed) Neg() Fixed {
	return -f
}

// Abs returns the absolute value.
func (f Fixed) Abs() Fixed {
	if f < 0 {
		return -f
	}
	return f
}
