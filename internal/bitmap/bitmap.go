package bitmap

import (
	"errors"
	"fmt"
)

// ErrDimensionMismatch is returned when a pixel sequence does not match the
// declared width and height.
var ErrDimensionMismatch = errors.New("bitmap: pixel count does not match dimensions")

// Pixel is one 8-bit RGBA sample.
type Pixel struct {
	R, G, B, A uint8
}

// Bitmap is a rectangular array of RGBA8 pixels, row-major, origin top-left.
// It is a value type: every transform in this module returns a fresh Bitmap
// and never mutates its input.
type Bitmap struct {
	Width  int
	Height int
	Pix    []Pixel // len = Width * Height
}

// New constructs a Bitmap from explicit dimensions and a pixel sequence.
// The sequence is copied, so the caller keeps ownership of pix.
func New(width, height int, pix []Pixel) (Bitmap, error) {
	if width < 0 || height < 0 {
		return Bitmap{}, fmt.Errorf("%w: %dx%d", ErrDimensionMismatch, width, height)
	}
	if len(pix) != width*height {
		return Bitmap{}, fmt.Errorf("%w: %d pixels for %dx%d", ErrDimensionMismatch, len(pix), width, height)
	}
	return Bitmap{Width: width, Height: height, Pix: append([]Pixel(nil), pix...)}, nil
}

// NewUniform returns a width x height bitmap filled with a single color.
func NewUniform(width, height int, p Pixel) Bitmap {
	if width <= 0 || height <= 0 {
		return Bitmap{}
	}
	pix := make([]Pixel, width*height)
	for i := range pix {
		pix[i] = p
	}
	return Bitmap{Width: width, Height: height, Pix: pix}
}

// At returns the pixel at (x, y). Coordinates outside the bitmap return the
// zero Pixel.
func (b Bitmap) At(x, y int) Pixel {
	if x < 0 || y < 0 || x >= b.Width || y >= b.Height {
		return Pixel{}
	}
	return b.Pix[y*b.Width+x]
}

// Empty reports whether the bitmap has no pixels. Transforms short-circuit
// to an empty result on empty input rather than failing.
func (b Bitmap) Empty() bool {
	return b.Width == 0 || b.Height == 0 || len(b.Pix) == 0
}

// Clone returns a deep copy.
func (b Bitmap) Clone() Bitmap {
	return Bitmap{Width: b.Width, Height: b.Height, Pix: append([]Pixel(nil), b.Pix...)}
}
