package gamemath

// Clamp limits v to the closed range [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	return Max(lo, Min(v, hi))
}

// Min returns the smaller of a and b.
func Min(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of a and b.
func Max(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
