package core

// Vec2 is a 2D vector of fixed-point coordinates.
type Vec2 struct {
	X, Y Fixed
}

// V2 builds a vector from integer coordinates.
func V2(x, y int) Vec2 {
	return Vec2{X: FixedFromInt(x), Y: FixedFromInt(y)}
}

// Add returns the component-wise sum.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns the component-wise difference.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

// Accumulate adds o to v in place.
func (v *Vec2) Accumulate(o Vec2) {
	v.X += o.X
	v.Y += o.Y
}

// IntXY returns the truncated integer coordinates.
func (v Vec2) IntXY() (int, int) {
	return v.X.Int(), v.Y.Int()
}
