package codec

import (
	"bytes"

	"github.com/FunkyPizza/ImageIOLibrary/internal/format"
)

var (
	pngMagic  = []byte{0x89, 'P', 'N', 'G', 0x0D, 0x0A, 0x1A, 0x0A}
	jpegMagic = []byte{0xFF, 0xD8, 0xFF}
	bmpMagic  = []byte{'B', 'M'}
	icoMagic  = []byte{0x00, 0x00, 0x01, 0x00}
	exrMagic  = []byte{0x76, 0x2F, 0x31, 0x01}
	icnsMagic = []byte{'i', 'c', 'n', 's'}
)

// DetectFormat classifies compressed image bytes by magic number. JPEG
// streams are additionally probed for their component count so that
// single-component files classify as GrayscaleJPEG. Unrecognized bytes
// return format.Invalid.
func (c *Codec) DetectFormat(data []byte) format.Format {
	switch {
	case bytes.HasPrefix(data, pngMagic):
		return format.PNG
	case bytes.HasPrefix(data, jpegMagic):
		if jpegComponents(data) == 1 {
			return format.GrayscaleJPEG
		}
		return format.JPEG
	case bytes.HasPrefix(data, bmpMagic):
		return format.BMP
	case bytes.HasPrefix(data, icoMagic):
		return format.ICO
	case bytes.HasPrefix(data, exrMagic):
		return format.EXR
	case bytes.HasPrefix(data, icnsMagic):
		return format.ICNS
	default:
		return format.Invalid
	}
}

// jpegComponents scans the marker stream for the first start-of-frame
// segment and returns its component count, or 0 if none is found before the
// stream ends or goes malformed.
func jpegComponents(data []byte) int {
	i := 2 // past SOI
	for i+3 < len(data) {
		if data[i] != 0xFF {
			return 0
		}
		marker := data[i+1]
		// Standalone markers carry no length field.
		if marker == 0xFF {
			i++
			continue
		}
		if marker == 0x01 || (marker >= 0xD0 && marker <= 0xD9) {
			i += 2
			continue
		}
		segLen := int(data[i+2])<<8 | int(data[i+3])
		if isSOF(marker) {
			// Segment layout: length(2) precision(1) height(2) width(2) components(1).
			if i+9 < len(data) {
				return int(data[i+9])
			}
			return 0
		}
		if segLen < 2 {
			return 0
		}
		i += 2 + segLen
	}
	return 0
}

func isSOF(marker byte) bool {
	if marker < 0xC0 || marker > 0xCF {
		return false
	}
	// C4, C8 and CC are huffman/arithmetic tables, not frames.
	return marker != 0xC4 && marker != 0xC8 && marker != 0xCC
}
