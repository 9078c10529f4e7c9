// Package colormath provides the per-pixel numeric building blocks shared by
// the tone, blend and filter packages: sRGB gamma decode/encode, RGB↔HSV
// conversion in linear-light space, and clamped re-quantization to 8 bits.
// All functions are total; out-of-range inputs clamp rather than fail.
package colormath

import (
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// SRGBToLinear gamma-decodes one 8-bit sRGB channel to linear light in [0, 1].
func SRGBToLinear(c uint8) float64 {
	r, _, _ := colorful.Color{R: float64(c) / 255}.LinearRgb()
	return r
}

// LinearToSRGB gamma-encodes one linear-light channel and quantizes it,
// clamping to [0, 1] first and rounding to nearest.
func LinearToSRGB(v float64) uint8 {
	c := colorful.LinearRgb(v, v, v).Clamped()
	return uint8(math.Round(c.R * 255))
}

// RGBToHSV converts a linear-light RGB triple to hue in [0, 360), saturation
// and value in [0, 1].
func RGBToHSV(r, g, b float64) (h, s, v float64) {
	return colorful.Color{R: r, G: g, B: b}.Hsv()
}

// HSVToRGB is the inverse of RGBToHSV.
func HSVToRGB(h, s, v float64) (r, g, b float64) {
	c := colorful.Hsv(h, s, v)
	return c.R, c.G, c.B
}

// Clamp limits v to [lo, hi]. NaN clamps to lo.
func Clamp(v, lo, hi float64) float64 {
	if math.IsNaN(v) || v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// QuantizeRound clamps v to [0, 255] and rounds to the nearest byte.
func QuantizeRound(v float64) uint8 {
	return uint8(math.Round(Clamp(v, 0, 255)))
}

// QuantizeTrunc clamps v to [0, 255] and truncates toward zero, matching the
// narrowing conversion used by the contrast and brightness remaps.
func QuantizeTrunc(v float64) uint8 {
	return uint8(Clamp(v, 0, 255))
}

// MapUnitRange linearly remaps v from [0, 2] onto [-255, 255], clamping v
// into [0, 2] first. 1.0 maps to 0.
func MapUnitRange(v float64) float64 {
	return (Clamp(v, 0, 2) - 1) * 255
}
