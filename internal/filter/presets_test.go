package filter

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestPresetTable(t *testing.T) {
	cases := []struct {
		preset Preset
		size   int
		factor float32
		mode   ChannelMode
	}{
		{Identity, 3, 1, ChannelRGBA},
		{BoxBlur, 3, 1.0 / 9, ChannelRGBA},
		{Gaussian3, 3, 1.0 / 16, ChannelRGBA},
		{Gaussian5, 5, 1.0 / 256, ChannelRGBA},
		{Sharpen, 3, 1, ChannelRGBA},
		{EdgeDetection, 3, 1, ChannelGreyscale},
	}
	for _, tc := range cases {
		k := Named(tc.preset)
		if k.Width != tc.size || k.Height != tc.size {
			t.Errorf("%s: size %dx%d, want %dx%d", tc.preset, k.Width, k.Height, tc.size, tc.size)
		}
		if len(k.Weights) != k.Width*k.Height {
			t.Errorf("%s: %d weights for %dx%d", tc.preset, len(k.Weights), k.Width, k.Height)
		}
		if k.Factor != tc.factor {
			t.Errorf("%s: factor %g, want %g", tc.preset, k.Factor, tc.factor)
		}
		if k.Bias != 0 {
			t.Errorf("%s: bias %g, want 0", tc.preset, k.Bias)
		}
		if k.Mode != tc.mode {
			t.Errorf("%s: mode %s, want %s", tc.preset, k.Mode, tc.mode)
		}
		if err := k.validate(); err != nil {
			t.Errorf("%s: validate: %v", tc.preset, err)
		}
	}
}

func TestPresetWeights(t *testing.T) {
	if diff := cmp.Diff([]float32{0, 0, 0, 0, 1, 0, 0, 0, 0}, Named(Identity).Weights); diff != "" {
		t.Errorf("identity weights:\n%s", diff)
	}
	if diff := cmp.Diff([]float32{-1, -1, -1, -1, 8, -1, -1, -1, -1}, Named(EdgeDetection).Weights); diff != "" {
		t.Errorf("edge-detection weights:\n%s", diff)
	}

	var sum float32
	for _, w := range Named(Gaussian5).Weights {
		sum += w
	}
	if sum != 256 {
		t.Errorf("gaussian5 weights sum to %g, want 256", sum)
	}
}

func TestWithModeDoesNotShareWeights(t *testing.T) {
	k := Named(EdgeDetection)
	m := k.WithMode(ChannelR)
	if m.Mode != ChannelR || k.Mode != ChannelGreyscale {
		t.Errorf("WithMode: got %s/%s, want r/greyscale", m.Mode, k.Mode)
	}
}

func TestParseRoundTrips(t *testing.T) {
	for _, p := range []Preset{Identity, BoxBlur, Gaussian3, Gaussian5, Sharpen, EdgeDetection} {
		got, err := ParsePreset(p.String())
		if err != nil {
			t.Errorf("ParsePreset(%q): %v", p.String(), err)
		}
		if got != p {
			t.Errorf("ParsePreset(%q) = %v, want %v", p.String(), got, p)
		}
	}
	if _, err := ParsePreset("emboss"); err == nil {
		t.Error("ParsePreset should reject unknown names")
	}

	for _, m := range []ChannelMode{ChannelRGB, ChannelRGBA, ChannelR, ChannelG, ChannelB, ChannelA, ChannelGreyscale} {
		got, err := ParseChannelMode(m.String())
		if err != nil {
			t.Errorf("ParseChannelMode(%q): %v", m.String(), err)
		}
		if got != m {
			t.Errorf("ParseChannelMode(%q) = %v, want %v", m.String(), got, m)
		}
	}
	if _, err := ParseChannelMode("cmyk"); err == nil {
		t.Error("ParseChannelMode should reject unknown names")
	}
}
