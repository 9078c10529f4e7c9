// Package filter implements convolution of a bitmap with an arbitrary-size
// weighted kernel, with channel-selective output.
package filter

import (
	"errors"
	"fmt"
)

// Errors reported by Apply.
var (
	ErrInvalidKernel          = errors.New("filter: invalid kernel")
	ErrUnsupportedChannelMode = errors.New("filter: unsupported channel mode")
)

// ChannelMode selects which output channels carry the convolved value.
type ChannelMode int

const (
	// ChannelRGB convolves the color channels and forces alpha to 255.
	ChannelRGB ChannelMode = iota
	// ChannelRGBA convolves the color channels and carries the center
	// source pixel's alpha through.
	ChannelRGBA
	// ChannelR keeps the convolved red channel only; green and blue are
	// zeroed and alpha forced to 255. ChannelG and ChannelB are analogous.
	ChannelR
	ChannelG
	ChannelB
	// ChannelA copies the center source pixel's alpha into all three color
	// channels and zeroes the output alpha.
	ChannelA
	// ChannelGreyscale broadcasts the Rec.601 luma of the convolved color
	// channels to R, G and B, with alpha forced to 255.
	ChannelGreyscale
)

// String returns the mode's canonical name.
func (m ChannelMode) String() string {
	switch m {
	case ChannelRGB:
		return "rgb"
	case ChannelRGBA:
		return "rgba"
	case ChannelR:
		return "r"
	case ChannelG:
		return "g"
	case ChannelB:
		return "b"
	case ChannelA:
		return "a"
	case ChannelGreyscale:
		return "greyscale"
	default:
		return fmt.Sprintf("ChannelMode(%d)", int(m))
	}
}

// ParseChannelMode converts a string name to a ChannelMode.
func ParseChannelMode(s string) (ChannelMode, error) {
	switch s {
	case "rgb":
		return ChannelRGB, nil
	case "rgba":
		return ChannelRGBA, nil
	case "r":
		return ChannelR, nil
	case "g":
		return ChannelG, nil
	case "b":
		return ChannelB, nil
	case "a":
		return ChannelA, nil
	case "greyscale", "grayscale":
		return ChannelGreyscale, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnsupportedChannelMode, s)
	}
}

// Kernel is an immutable convolution matrix. Weights are stored row-major
// with len(Weights) == Width*Height. Factor post-multiplies every weight and
// Bias is added per kernel cell. Odd dimensions center the kernel on the
// output pixel; even dimensions floor the center offset toward zero.
type Kernel struct {
	Width   int
	Height  int
	Weights []float32
	Factor  float32
	Bias    float32
	Mode    ChannelMode
}

// WithMode returns a copy of the kernel with its channel mode replaced.
func (k Kernel) WithMode(m ChannelMode) Kernel {
	k.Mode = m
	return k
}

func (k Kernel) validate() error {
	if k.Width <= 0 || k.Height <= 0 {
		return fmt.Errorf("%w: zero-area %dx%d", ErrInvalidKernel, k.Width, k.Height)
	}
	if len(k.Weights) != k.Width*k.Height {
		return fmt.Errorf("%w: %d weights for %dx%d", ErrInvalidKernel, len(k.Weights), k.Width, k.Height)
	}
	return nil
}
