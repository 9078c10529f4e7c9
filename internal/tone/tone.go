// Package tone implements stateless per-pixel color adjustments. Each
// function maps a bitmap to a new bitmap of identical dimensions, leaves its
// input untouched, and clamps out-of-range parameters instead of failing.
package tone

import (
	"math"

	"github.com/FunkyPizza/ImageIOLibrary/internal/bitmap"
	"github.com/FunkyPizza/ImageIOLibrary/internal/colormath"
)

// AdjustHSL shifts hue by hueDelta degrees (wrapping into [0, 360)) and
// scales saturation and luminance by their multipliers, clamped to [0, 1].
// Pixels are gamma-decoded to linear light before the HSV conversion and
// re-encoded afterwards. Alpha passes through unchanged.
func AdjustHSL(src bitmap.Bitmap, hueDelta, satMult, lumMult float64) bitmap.Bitmap {
	out := make([]bitmap.Pixel, len(src.Pix))
	for i, p := range src.Pix {
		h, s, v := colormath.RGBToHSV(
			colormath.SRGBToLinear(p.R),
			colormath.SRGBToLinear(p.G),
			colormath.SRGBToLinear(p.B),
		)

		h = math.Mod(h+hueDelta, 360)
		if h < 0 {
			h += 360
		}
		s = colormath.Clamp(s*satMult, 0, 1)
		v = colormath.Clamp(v*lumMult, 0, 1)

		r, g, b := colormath.HSVToRGB(h, s, v)
		out[i] = bitmap.Pixel{
			R: colormath.LinearToSRGB(r),
			G: colormath.LinearToSRGB(g),
			B: colormath.LinearToSRGB(b),
			A: p.A,
		}
	}
	return bitmap.Bitmap{Width: src.Width, Height: src.Height, Pix: out}
}

// AdjustContrast remaps contrast on a [0, 2] scale where 1.0 is identity.
// The value is mapped to a signed offset in [-255, 255], converted to a
// multiplicative factor, and applied around the midpoint of each color
// channel. Alpha is unaffected.
func AdjustContrast(src bitmap.Bitmap, contrast float64) bitmap.Bitmap {
	offset := colormath.MapUnitRange(contrast)
	factor := (259 * (offset + 255)) / (255 * (259 - offset))

	out := make([]bitmap.Pixel, len(src.Pix))
	for i, p := range src.Pix {
		out[i] = bitmap.Pixel{
			R: colormath.QuantizeTrunc(factor*(float64(p.R)-128) + 128),
			G: colormath.QuantizeTrunc(factor*(float64(p.G)-128) + 128),
			B: colormath.QuantizeTrunc(factor*(float64(p.B)-128) + 128),
			A: p.A,
		}
	}
	return bitmap.Bitmap{Width: src.Width, Height: src.Height, Pix: out}
}

// AdjustBrightness remaps brightness on a [0, 2] scale where 1.0 is identity
// to an additive offset in [-255, 255] applied to each color channel with
// saturation at the byte bounds. Alpha is unaffected.
func AdjustBrightness(src bitmap.Bitmap, brightness float64) bitmap.Bitmap {
	offset := colormath.MapUnitRange(brightness)

	out := make([]bitmap.Pixel, len(src.Pix))
	for i, p := range src.Pix {
		out[i] = bitmap.Pixel{
			R: colormath.QuantizeTrunc(float64(p.R) + offset),
			G: colormath.QuantizeTrunc(float64(p.G) + offset),
			B: colormath.QuantizeTrunc(float64(p.B) + offset),
			A: p.A,
		}
	}
	return bitmap.Bitmap{Width: src.Width, Height: src.Height, Pix: out}
}
