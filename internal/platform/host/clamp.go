package host

import "golang.org/x/exp/constraints"

func clamp[T constraints.Integer | constraints.Float](v, lo, hi T) T {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Scale returns the largest integer factor at which a w x h image fits
// into availW x availH, never less than 1 and never more than limit.
func Scale(w, h, availW, availH, limit int) int {
	if w <= 0 || h <= 0 {
		return 1
	}
	return clamp(min(availW/w, availH/h), 1, max(limit, 1))
}
