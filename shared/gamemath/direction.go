package gamemath

import "math"

// Direction turns four movement flags into a unit vector. Opposing flags
// cancel out and no flags at all yield the zero vector.
func Direction(up, right, down, left bool) (x, y float64) {
	x = axis(right) - axis(left)
	y = axis(down) - axis(up)

	length := math.Hypot(x, y)
	if length == 0 {
		length = 1
	}
	return x / length, y / length
}

func axis(pressed bool) float64 {
	if pressed {
		return 1
	}
	return 0
}
