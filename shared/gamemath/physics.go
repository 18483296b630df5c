package gamemath

// ClampSpeed clamps a value to [-max, max].
func ClampSpeed(speed, max float64) float64 {
	if speed > max {
		return max
	}
	if speed < -max {
		return -max
	}
	return speed
}

// ApplyGravity adds gravity to a vertical speed, capping the fall at maxFall.
func ApplyGravity(speedY, gravity, maxFall float64) float64 {
	speedY += gravity
	if speedY > maxFall {
		return maxFall
	}
	return speedY
}
