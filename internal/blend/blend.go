// Package blend implements pairwise compositing of bitmaps and of a bitmap
// against a constant tint.
//
// When the two operands hold different pixel counts the operation is NOT an
// error: only the first min(len(a), len(b)) pixels are processed and the
// result takes the shorter operand's dimensions. This lenient truncation is
// the documented contract, kept for compatibility with the original engine.
// Empty operands yield an empty result.
package blend

import (
	"github.com/FunkyPizza/ImageIOLibrary/internal/bitmap"
	"github.com/FunkyPizza/ImageIOLibrary/internal/colormath"
)

// Add sums a and b per channel, alpha included, saturating at 255. A pixel
// pair that is fully transparent on both sides is pinned to transparent
// black instead of summed.
func Add(a, b bitmap.Bitmap) bitmap.Bitmap {
	n, short := truncated(a, b)
	if n == 0 {
		return bitmap.Bitmap{}
	}

	out := make([]bitmap.Pixel, n)
	for i := 0; i < n; i++ {
		pa, pb := a.Pix[i], b.Pix[i]
		if pa.A == 0 && pb.A == 0 {
			out[i] = bitmap.Pixel{}
			continue
		}
		out[i] = bitmap.Pixel{
			R: satAdd(pa.R, pb.R),
			G: satAdd(pa.G, pb.G),
			B: satAdd(pa.B, pb.B),
			A: satAdd(pa.A, pb.A),
		}
	}
	return bitmap.Bitmap{Width: short.Width, Height: short.Height, Pix: out}
}

// Multiply multiplies a and b per channel, alpha included, in the
// normalized [0, 1] domain.
func Multiply(a, b bitmap.Bitmap) bitmap.Bitmap {
	return normalizedOp(a, b, func(x, y float64) float64 { return x * y })
}

// Divide divides a by b per channel, alpha included, in the normalized
// [0, 1] domain. Division by a near-zero channel saturates to 1 rather than
// overflowing; 0/0 resolves to 0.
func Divide(a, b bitmap.Bitmap) bitmap.Bitmap {
	return normalizedOp(a, b, func(x, y float64) float64 {
		if y == 0 {
			if x == 0 {
				return 0
			}
			return 1
		}
		return x / y
	})
}

// AddTint is Add against a constant color broadcast to a's pixel count.
func AddTint(a bitmap.Bitmap, tint bitmap.Pixel) bitmap.Bitmap {
	return Add(a, broadcast(a, tint))
}

// MultiplyTint is Multiply against a constant color broadcast to a's pixel count.
func MultiplyTint(a bitmap.Bitmap, tint bitmap.Pixel) bitmap.Bitmap {
	return Multiply(a, broadcast(a, tint))
}

// DivideTint is Divide against a constant color broadcast to a's pixel count.
func DivideTint(a bitmap.Bitmap, tint bitmap.Pixel) bitmap.Bitmap {
	return Divide(a, broadcast(a, tint))
}

func normalizedOp(a, b bitmap.Bitmap, op func(x, y float64) float64) bitmap.Bitmap {
	n, short := truncated(a, b)
	if n == 0 {
		return bitmap.Bitmap{}
	}

	out := make([]bitmap.Pixel, n)
	for i := 0; i < n; i++ {
		pa, pb := a.Pix[i], b.Pix[i]
		out[i] = bitmap.Pixel{
			R: normChannel(pa.R, pb.R, op),
			G: normChannel(pa.G, pb.G, op),
			B: normChannel(pa.B, pb.B, op),
			A: normChannel(pa.A, pb.A, op),
		}
	}
	return bitmap.Bitmap{Width: short.Width, Height: short.Height, Pix: out}
}

func normChannel(x, y uint8, op func(x, y float64) float64) uint8 {
	v := colormath.Clamp(op(float64(x)/255, float64(y)/255), 0, 1)
	return colormath.QuantizeRound(v * 255)
}

// truncated returns the processed pixel count and whichever operand supplies
// the result's dimensions.
func truncated(a, b bitmap.Bitmap) (int, bitmap.Bitmap) {
	if a.Empty() || b.Empty() {
		return 0, bitmap.Bitmap{}
	}
	if len(b.Pix) < len(a.Pix) {
		return len(b.Pix), b
	}
	return len(a.Pix), a
}

func broadcast(a bitmap.Bitmap, tint bitmap.Pixel) bitmap.Bitmap {
	return bitmap.NewUniform(a.Width, a.Height, tint)
}

func satAdd(x, y uint8) uint8 {
	s := uint16(x) + uint16(y)
	if s > 255 {
		return 255
	}
	return uint8(s)
}
