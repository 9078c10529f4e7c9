package filter

import "fmt"

// Preset names a built-in kernel.
type Preset int

const (
	Identity Preset = iota
	BoxBlur
	Gaussian3
	Gaussian5
	Sharpen
	EdgeDetection
)

// String returns the preset's canonical name.
func (p Preset) String() string {
	switch p {
	case Identity:
		return "identity"
	case BoxBlur:
		return "box-blur"
	case Gaussian3:
		return "gaussian3"
	case Gaussian5:
		return "gaussian5"
	case Sharpen:
		return "sharpen"
	case EdgeDetection:
		return "edge-detection"
	default:
		return fmt.Sprintf("Preset(%d)", int(p))
	}
}

// ParsePreset converts a string name to a Preset.
func ParsePreset(s string) (Preset, error) {
	switch s {
	case "identity":
		return Identity, nil
	case "box-blur":
		return BoxBlur, nil
	case "gaussian3":
		return Gaussian3, nil
	case "gaussian5":
		return Gaussian5, nil
	case "sharpen":
		return Sharpen, nil
	case "edge-detection":
		return EdgeDetection, nil
	default:
		return 0, fmt.Errorf("unknown filter preset: %q", s)
	}
}

// Named returns the built-in kernel for a preset. Use WithMode to override
// the preset's default channel mode.
// See https://en.wikipedia.org/wiki/Kernel_(image_processing) for the
// matrices.
func Named(p Preset) Kernel {
	switch p {
	case BoxBlur:
		return Kernel{
			Width: 3, Height: 3,
			Weights: []float32{1, 1, 1, 1, 1, 1, 1, 1, 1},
			Factor:  1.0 / 9,
			Mode:    ChannelRGBA,
		}
	case Gaussian3:
		return Kernel{
			Width: 3, Height: 3,
			Weights: []float32{1, 2, 1, 2, 4, 2, 1, 2, 1},
			Factor:  1.0 / 16,
			Mode:    ChannelRGBA,
		}
	case Gaussian5:
		return Kernel{
			Width: 5, Height: 5,
			Weights: []float32{
				1, 4, 6, 4, 1,
				4, 16, 24, 16, 4,
				6, 24, 36, 24, 6,
				4, 16, 24, 16, 4,
				1, 4, 6, 4, 1,
			},
			Factor: 1.0 / 256,
			Mode:   ChannelRGBA,
		}
	case Sharpen:
		return Kernel{
			Width: 3, Height: 3,
			Weights: []float32{0, -1, 0, -1, 5, -1, 0, -1, 0},
			Factor:  1,
			Mode:    ChannelRGBA,
		}
	case EdgeDetection:
		return Kernel{
			Width: 3, Height: 3,
			Weights: []float32{-1, -1, -1, -1, 8, -1, -1, -1, -1},
			Factor:  1,
			Mode:    ChannelGreyscale,
		}
	default: // Identity
		return Kernel{
			Width: 3, Height: 3,
			Weights: []float32{0, 0, 0, 0, 1, 0, 0, 0, 0},
			Factor:  1,
			Mode:    ChannelRGBA,
		}
	}
}
