package gamemath

import "image/color"

// ClampChannel limits a color channel to [0, 255] and truncates it.
func ClampChannel(v float64) uint8 {
	return uint8(Clamp(v, 0, 255))
}

// ClampAlpha limits an opacity to [0, 1].
func ClampAlpha(a float64) float64 {
	return Clamp(a, 0, 1)
}

// PackRGB packs clamped channels into a single 0xRRGGBB integer.
func PackRGB(r, g, b float64) uint32 {
	return uint32(ClampChannel(r))<<16 | uint32(ClampChannel(g))<<8 | uint32(ClampChannel(b))
}

// UnpackRGB splits a packed 0xRRGGBB integer into its channels.
func UnpackRGB(packed uint32) (r, g, b uint8) {
	return uint8(packed >> 16), uint8(packed >> 8), uint8(packed)
}

// RGBA converts a packed color and an opacity into a non-premultiplied color.
func RGBA(packed uint32, alpha float64) color.NRGBA {
	r, g, b := UnpackRGB(packed)
	return color.NRGBA{R: r, G: g, B: b, A: uint8(ClampAlpha(alpha) * 255)}
}
