package filter

import (
	"github.com/FunkyPizza/ImageIOLibrary/internal/bitmap"
)

// Apply convolves src with k and returns a bitmap of the same dimensions.
// An empty source yields an empty result.
//
// Two compatibility behaviors are deliberate and load-bearing:
//
//   - Out-of-range sample coordinates are clamped by LINEAR pixel index, not
//     per axis, so samples past the left or right border can wrap into the
//     neighboring row. Callers depending on exact historical output rely on
//     this.
//   - Each channel accumulates in an 8-bit register: after every kernel cell
//     the running float sum is truncated toward zero and narrowed mod 256.
//     Intermediate overflow wraps instead of clamping.
func Apply(src bitmap.Bitmap, k Kernel) (bitmap.Bitmap, error) {
	if err := k.validate(); err != nil {
		return bitmap.Bitmap{}, err
	}
	if src.Empty() {
		return bitmap.Bitmap{}, nil
	}

	out := make([]bitmap.Pixel, len(src.Pix))
	last := len(src.Pix) - 1

	for y := 0; y < src.Height; y++ {
		for x := 0; x < src.Width; x++ {
			idx := y*src.Width + x

			var accR, accG, accB uint8
			alpha := uint8(255)
			if k.Mode == ChannelRGBA || k.Mode == ChannelA {
				alpha = src.Pix[idx].A
			}

			for ky := 0; ky < k.Height; ky++ {
				for kx := 0; kx < k.Width; kx++ {
					nx := x + kx - k.Width/2
					ny := y + ky - k.Height/2
					n := clampInt(ny*src.Width+nx, 0, last)
					p := src.Pix[n]

					w := k.Weights[ky*k.Width+kx] * k.Factor
					accR = narrow(float32(accR) + float32(p.R)*w + k.Bias)
					accG = narrow(float32(accG) + float32(p.G)*w + k.Bias)
					accB = narrow(float32(accB) + float32(p.B)*w + k.Bias)
				}
			}

			px, err := project(accR, accG, accB, alpha, k.Mode)
			if err != nil {
				return bitmap.Bitmap{}, err
			}
			out[idx] = px
		}
	}
	return bitmap.Bitmap{Width: src.Width, Height: src.Height, Pix: out}, nil
}

// project routes a raw convolved RGB triple and the chosen alpha through the
// kernel's channel mode.
func project(r, g, b, alpha uint8, mode ChannelMode) (bitmap.Pixel, error) {
	switch mode {
	case ChannelRGB:
		return bitmap.Pixel{R: r, G: g, B: b, A: 255}, nil
	case ChannelRGBA:
		return bitmap.Pixel{R: r, G: g, B: b, A: alpha}, nil
	case ChannelR:
		return bitmap.Pixel{R: r, A: 255}, nil
	case ChannelG:
		return bitmap.Pixel{G: g, A: 255}, nil
	case ChannelB:
		return bitmap.Pixel{B: b, A: 255}, nil
	case ChannelA:
		return bitmap.Pixel{R: alpha, G: alpha, B: alpha, A: 0}, nil
	case ChannelGreyscale:
		grey := uint8(float32(r)*0.2989 + float32(g)*0.5870 + float32(b)*0.1140)
		return bitmap.Pixel{R: grey, G: grey, B: grey, A: 255}, nil
	default:
		return bitmap.Pixel{}, ErrUnsupportedChannelMode
	}
}

// narrow truncates toward zero and wraps mod 256, the byte-accumulator
// contract described on Apply.
func narrow(v float32) uint8 {
	return uint8(int32(v))
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
