package colormath

import (
	"math"
	"testing"
)

func TestSRGBRoundTrip(t *testing.T) {
	for c := 0; c <= 255; c++ {
		got := LinearToSRGB(SRGBToLinear(uint8(c)))
		if got != uint8(c) {
			t.Fatalf("round trip of %d gave %d", c, got)
		}
	}
}

func TestSRGBEndpoints(t *testing.T) {
	if v := SRGBToLinear(0); v != 0 {
		t.Errorf("SRGBToLinear(0) = %g, want 0", v)
	}
	if v := SRGBToLinear(255); math.Abs(v-1) > 1e-9 {
		t.Errorf("SRGBToLinear(255) = %g, want 1", v)
	}
	if LinearToSRGB(-0.5) != 0 {
		t.Error("LinearToSRGB should clamp negative input to 0")
	}
	if LinearToSRGB(2) != 255 {
		t.Error("LinearToSRGB should clamp input above 1 to 255")
	}
}

func TestHSVRoundTrip(t *testing.T) {
	cases := []struct{ r, g, b float64 }{
		{1, 0, 0},
		{0, 1, 0},
		{0, 0, 1},
		{0.25, 0.5, 0.75},
		{0.5, 0.5, 0.5},
		{0, 0, 0},
	}
	for _, tc := range cases {
		h, s, v := RGBToHSV(tc.r, tc.g, tc.b)
		r, g, b := HSVToRGB(h, s, v)
		if math.Abs(r-tc.r) > 1e-9 || math.Abs(g-tc.g) > 1e-9 || math.Abs(b-tc.b) > 1e-9 {
			t.Errorf("round trip of (%g,%g,%g) gave (%g,%g,%g)", tc.r, tc.g, tc.b, r, g, b)
		}
	}
}

func TestHSVKnownValues(t *testing.T) {
	h, s, v := RGBToHSV(1, 0, 0)
	if h != 0 || s != 1 || v != 1 {
		t.Errorf("pure red → (%g,%g,%g), want (0,1,1)", h, s, v)
	}
	h, _, _ = RGBToHSV(0, 1, 0)
	if math.Abs(h-120) > 1e-9 {
		t.Errorf("pure green hue = %g, want 120", h)
	}
	h, _, _ = RGBToHSV(0, 0, 1)
	if math.Abs(h-240) > 1e-9 {
		t.Errorf("pure blue hue = %g, want 240", h)
	}
}

func TestClamp(t *testing.T) {
	if Clamp(-3, 0, 1) != 0 || Clamp(3, 0, 1) != 1 || Clamp(0.5, 0, 1) != 0.5 {
		t.Error("Clamp bounds wrong")
	}
	if Clamp(math.NaN(), 0, 1) != 0 {
		t.Error("Clamp(NaN) should pin to the lower bound")
	}
}

func TestQuantize(t *testing.T) {
	if QuantizeRound(127.5) != 128 {
		t.Errorf("QuantizeRound(127.5) = %d, want 128", QuantizeRound(127.5))
	}
	if QuantizeTrunc(227.9) != 227 {
		t.Errorf("QuantizeTrunc(227.9) = %d, want 227", QuantizeTrunc(227.9))
	}
	if QuantizeRound(300) != 255 || QuantizeTrunc(-4) != 0 {
		t.Error("quantizers should clamp before narrowing")
	}
}

func TestMapUnitRange(t *testing.T) {
	cases := []struct{ in, want float64 }{
		{1, 0},
		{0, -255},
		{2, 255},
		{1.5, 127.5},
		{-7, -255}, // clamps below
		{9, 255},   // clamps above
	}
	for _, tc := range cases {
		if got := MapUnitRange(tc.in); got != tc.want {
			t.Errorf("MapUnitRange(%g) = %g, want %g", tc.in, got, tc.want)
		}
	}
}
