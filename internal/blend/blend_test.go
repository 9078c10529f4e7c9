package blend

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/FunkyPizza/ImageIOLibrary/internal/bitmap"
)

func row(pix ...bitmap.Pixel) bitmap.Bitmap {
	return bitmap.Bitmap{Width: len(pix), Height: 1, Pix: pix}
}

func TestAddSaturates(t *testing.T) {
	a := row(bitmap.Pixel{R: 200, G: 10, B: 0, A: 250})
	b := row(bitmap.Pixel{R: 100, G: 20, B: 5, A: 10})

	out := Add(a, b)
	want := bitmap.Pixel{R: 255, G: 30, B: 5, A: 255}
	if out.Pix[0] != want {
		t.Errorf("got %v, want %v", out.Pix[0], want)
	}
}

func TestAddCommutative(t *testing.T) {
	a := row(
		bitmap.Pixel{R: 3, G: 250, B: 99, A: 0},
		bitmap.Pixel{R: 180, G: 180, B: 180, A: 128},
	)
	b := row(
		bitmap.Pixel{R: 90, G: 90, B: 200, A: 255},
		bitmap.Pixel{R: 100, G: 240, B: 2, A: 0},
	)
	if diff := cmp.Diff(Add(a, b).Pix, Add(b, a).Pix); diff != "" {
		t.Errorf("Add is not commutative:\n%s", diff)
	}
}

func TestAddTransparentPairPinsToTransparentBlack(t *testing.T) {
	a := row(bitmap.Pixel{R: 200, G: 100, B: 50, A: 0})
	b := row(bitmap.Pixel{R: 30, G: 40, B: 50, A: 0})

	out := Add(a, b)
	if out.Pix[0] != (bitmap.Pixel{}) {
		t.Errorf("got %v, want transparent black", out.Pix[0])
	}

	// One-sided transparency sums normally.
	c := row(bitmap.Pixel{R: 30, G: 40, B: 50, A: 9})
	out = Add(a, c)
	if out.Pix[0] != (bitmap.Pixel{R: 230, G: 140, B: 100, A: 9}) {
		t.Errorf("one transparent operand: got %v", out.Pix[0])
	}
}

func TestLengthMismatchTruncates(t *testing.T) {
	a := row(bitmap.Pixel{R: 1}, bitmap.Pixel{R: 2}, bitmap.Pixel{R: 3})
	b := row(bitmap.Pixel{R: 10}, bitmap.Pixel{R: 20})

	out := Add(a, b)
	if len(out.Pix) != 2 {
		t.Fatalf("got %d pixels, want 2 (truncated to shorter operand)", len(out.Pix))
	}
	if out.Width != 2 || out.Height != 1 {
		t.Errorf("got %dx%d, want the shorter operand's 2x1", out.Width, out.Height)
	}
}

func TestMultiplyByIdentityTint(t *testing.T) {
	a := row(
		bitmap.Pixel{R: 0, G: 128, B: 255, A: 7},
		bitmap.Pixel{R: 33, G: 66, B: 99, A: 255},
	)
	out := MultiplyTint(a, bitmap.Pixel{R: 255, G: 255, B: 255, A: 255})
	if diff := cmp.Diff(a.Pix, out.Pix); diff != "" {
		t.Errorf("multiply by white is not identity:\n%s", diff)
	}
}

func TestDivideByIdentityTint(t *testing.T) {
	a := row(
		bitmap.Pixel{R: 0, G: 128, B: 255, A: 7},
		bitmap.Pixel{R: 33, G: 66, B: 99, A: 255},
	)
	out := DivideTint(a, bitmap.Pixel{R: 255, G: 255, B: 255, A: 255})
	if diff := cmp.Diff(a.Pix, out.Pix); diff != "" {
		t.Errorf("divide by white is not identity:\n%s", diff)
	}
}

func TestDivideSaturatesNearZero(t *testing.T) {
	a := row(bitmap.Pixel{R: 100, G: 0, B: 5, A: 255})
	b := row(bitmap.Pixel{R: 0, G: 0, B: 255, A: 255})

	out := Divide(a, b)
	want := bitmap.Pixel{R: 255, G: 0, B: 5, A: 255}
	if out.Pix[0] != want {
		t.Errorf("got %v, want %v (x/0→1, 0/0→0)", out.Pix[0], want)
	}
}

func TestMultiplyHalves(t *testing.T) {
	a := row(bitmap.Pixel{R: 200, G: 100, B: 40, A: 255})
	out := MultiplyTint(a, bitmap.Pixel{R: 128, G: 128, B: 128, A: 255})

	// 128/255 ≈ 0.502
	want := bitmap.Pixel{R: 100, G: 50, B: 20, A: 255}
	got := out.Pix[0]
	if absDiff(got.R, want.R) > 1 || absDiff(got.G, want.G) > 1 || absDiff(got.B, want.B) > 1 {
		t.Errorf("got %v, want ~%v", got, want)
	}
}

func TestEmptyOperands(t *testing.T) {
	a := row(bitmap.Pixel{R: 1})
	if !Add(a, bitmap.Bitmap{}).Empty() {
		t.Error("Add with an empty operand should be empty")
	}
	if !Multiply(bitmap.Bitmap{}, a).Empty() {
		t.Error("Multiply with an empty operand should be empty")
	}
	if !DivideTint(bitmap.Bitmap{}, bitmap.Pixel{R: 255}).Empty() {
		t.Error("DivideTint of an empty bitmap should be empty")
	}
}

func absDiff(a, b uint8) int {
	d := int(a) - int(b)
	if d < 0 {
		return -d
	}
	return d
}
