// Package codec converts between compressed image bytes and uncompressed
// RGBA bitmaps. PNG, JPEG (color and grayscale) and BMP round-trip; ICO,
// EXR and ICNS are detect-only.
package codec

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"

	"golang.org/x/image/bmp"

	"github.com/FunkyPizza/ImageIOLibrary/internal/bitmap"
	"github.com/FunkyPizza/ImageIOLibrary/internal/format"
)

// Boundary errors. Wrapped variants carry the format and cause.
var (
	ErrDecode = errors.New("codec: decode failed")
	ErrEncode = errors.New("codec: encode failed")
)

const defaultJPEGQuality = 90

// Codec is the byte-stream collaborator injected into the pipeline.
type Codec struct {
	// Quality is the JPEG encode quality in [1, 100].
	Quality int
}

// New returns a Codec with default settings.
func New() *Codec {
	return &Codec{Quality: defaultJPEGQuality}
}

// Decode decompresses data as the given format into an RGBA bitmap.
func (c *Codec) Decode(data []byte, f format.Format) (bitmap.Bitmap, error) {
	var (
		img image.Image
		err error
	)
	switch f {
	case format.PNG:
		img, err = png.Decode(bytes.NewReader(data))
	case format.JPEG, format.GrayscaleJPEG:
		img, err = jpeg.Decode(bytes.NewReader(data))
	case format.BMP:
		img, err = bmp.Decode(bytes.NewReader(data))
	default:
		return bitmap.Bitmap{}, fmt.Errorf("%w: no decoder for format %s", ErrDecode, f)
	}
	if err != nil {
		return bitmap.Bitmap{}, fmt.Errorf("%w: %s: %v", ErrDecode, f, err)
	}
	return fromImage(img), nil
}

// Encode compresses a bitmap as the given format.
func (c *Codec) Encode(b bitmap.Bitmap, f format.Format) ([]byte, error) {
	if b.Empty() {
		return nil, fmt.Errorf("%w: empty bitmap", ErrEncode)
	}

	quality := c.Quality
	if quality <= 0 || quality > 100 {
		quality = defaultJPEGQuality
	}

	var buf bytes.Buffer
	var err error
	switch f {
	case format.PNG:
		err = png.Encode(&buf, toNRGBA(b))
	case format.JPEG:
		err = jpeg.Encode(&buf, toNRGBA(b), &jpeg.Options{Quality: quality})
	case format.GrayscaleJPEG:
		err = jpeg.Encode(&buf, toGray(b), &jpeg.Options{Quality: quality})
	case format.BMP:
		err = bmp.Encode(&buf, toNRGBA(b))
	default:
		return nil, fmt.Errorf("%w: no encoder for format %s", ErrEncode, f)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrEncode, f, err)
	}
	return buf.Bytes(), nil
}

func fromImage(img image.Image) bitmap.Bitmap {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	pix := make([]bitmap.Pixel, 0, w*h)
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			c := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
			pix = append(pix, bitmap.Pixel{R: c.R, G: c.G, B: c.B, A: c.A})
		}
	}
	return bitmap.Bitmap{Width: w, Height: h, Pix: pix}
}

func toNRGBA(b bitmap.Bitmap) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, b.Width, b.Height))
	for i, p := range b.Pix {
		img.Pix[i*4+0] = p.R
		img.Pix[i*4+1] = p.G
		img.Pix[i*4+2] = p.B
		img.Pix[i*4+3] = p.A
	}
	return img
}

func toGray(b bitmap.Bitmap) *image.Gray {
	img := image.NewGray(image.Rect(0, 0, b.Width, b.Height))
	for i, p := range b.Pix {
		img.Pix[i] = uint8(float32(p.R)*0.2989 + float32(p.G)*0.5870 + float32(p.B)*0.1140)
	}
	return img
}
