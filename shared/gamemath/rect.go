package gamemath

// Rect is an axis-aligned rectangle with a top-left origin.
type Rect struct {
	X, Y, W, H float64
}

// NormalizeRect turns two opposite corners, given in any order, into a Rect
// whose origin is the componentwise minimum and whose size is never negative.
func NormalizeRect(x1, y1, x2, y2 float64) Rect {
	x, y := Min(x1, x2), Min(y1, y2)
	return Rect{
		X: x,
		Y: y,
		W: Max(x1, x2) - x,
		H: Max(y1, y2) - y,
	}
}
