package bitmap

import "math"

// Resize scales the bitmap to width x height using bilinear interpolation.
// Degenerate target dimensions or an empty source yield an empty bitmap.
func Resize(src Bitmap, width, height int) Bitmap {
	if src.Empty() || width <= 0 || height <= 0 {
		return Bitmap{}
	}

	out := make([]Pixel, width*height)
	xRatio := float64(src.Width) / float64(width)
	yRatio := float64(src.Height) / float64(height)

	for y := 0; y < height; y++ {
		sy := (float64(y)+0.5)*yRatio - 0.5
		y0 := int(math.Floor(sy))
		fy := sy - float64(y0)
		y1 := clampIndex(y0+1, src.Height)
		y0 = clampIndex(y0, src.Height)

		for x := 0; x < width; x++ {
			sx := (float64(x)+0.5)*xRatio - 0.5
			x0 := int(math.Floor(sx))
			fx := sx - float64(x0)
			x1 := clampIndex(x0+1, src.Width)
			x0 = clampIndex(x0, src.Width)

			p00 := src.Pix[y0*src.Width+x0]
			p10 := src.Pix[y0*src.Width+x1]
			p01 := src.Pix[y1*src.Width+x0]
			p11 := src.Pix[y1*src.Width+x1]

			out[y*width+x] = Pixel{
				R: lerp2(p00.R, p10.R, p01.R, p11.R, fx, fy),
				G: lerp2(p00.G, p10.G, p01.G, p11.G, fx, fy),
				B: lerp2(p00.B, p10.B, p01.B, p11.B, fx, fy),
				A: lerp2(p00.A, p10.A, p01.A, p11.A, fx, fy),
			}
		}
	}
	return Bitmap{Width: width, Height: height, Pix: out}
}

func clampIndex(i, n int) int {
	if i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}

func lerp2(c00, c10, c01, c11 uint8, fx, fy float64) uint8 {
	top := float64(c00) + (float64(c10)-float64(c00))*fx
	bot := float64(c01) + (float64(c11)-float64(c01))*fx
	return uint8(math.Round(top + (bot-top)*fy))
}
