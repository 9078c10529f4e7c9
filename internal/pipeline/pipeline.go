package pipeline

import (
	"fmt"

	"github.com/FunkyPizza/ImageIOLibrary/internal/bitmap"
	"github.com/FunkyPizza/ImageIOLibrary/internal/format"
)

// Codec is the byte-stream collaborator: it detects container formats and
// converts between compressed bytes and bitmaps. It is always passed in
// explicitly; the pipeline holds no ambient state.
type Codec interface {
	DetectFormat(data []byte) format.Format
	Decode(data []byte, f format.Format) (bitmap.Bitmap, error)
	Encode(b bitmap.Bitmap, f format.Format) ([]byte, error)
}

// Op is one bitmap transform applied between decode and encode.
type Op func(bitmap.Bitmap) (bitmap.Bitmap, error)

// Options controls a pipeline run.
type Options struct {
	// Output selects the encode format. format.Invalid means "same as the
	// detected input format".
	Output format.Format
}

// Result holds the output of a pipeline run.
type Result struct {
	Data   []byte
	Format format.Format
	Width  int
	Height int
}

// Run executes the full pipeline: detect → decode → transform → encode.
func Run(data []byte, c Codec, ops []Op, opts Options) (*Result, error) {
	detected := c.DetectFormat(data)
	if detected == format.Invalid {
		return nil, fmt.Errorf("pipeline: unrecognized image format")
	}

	b, err := c.Decode(data, detected)
	if err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}

	for i, op := range ops {
		b, err = op(b)
		if err != nil {
			return nil, fmt.Errorf("transform %d: %w", i, err)
		}
	}

	out := opts.Output
	if out == format.Invalid {
		out = detected
	}

	encoded, err := c.Encode(b, out)
	if err != nil {
		return nil, fmt.Errorf("encode: %w", err)
	}

	return &Result{
		Data:   encoded,
		Format: out,
		Width:  b.Width,
		Height: b.Height,
	}, nil
}
