// Package ttesting contains assertion helpers shared by the package tests.
package ttesting

import (
	"image"
	"image/color"
	"testing"
)

func AssertEqualInt(t *testing.T, name string, got, want int) {
	t.Run(name, func(t *testing.T) {
		if got != want {
			t.Errorf("got %d; want %d", got, want)
		}
	})
}

func AssertEqualString(t *testing.T, name string, got, want string) {
	t.Run(name, func(t *testing.T) {
		if got != want {
			t.Errorf("got %q; want %q", got, want)
		}
	})
}

func AssertEqualPoint(t *testing.T, name string, got, want image.Point) {
	t.Run(name, func(t *testing.T) {
		if got != want {
			t.Errorf("got %v; want %v", got, want)
		}
	})
}

func AssertEqualNRGBA(t *testing.T, name string, got, want color.NRGBA) {
	t.Run(name, func(t *testing.T) {
		if got != want {
			t.Errorf("got %d %d %d %d; want %d %d %d %d",
				got.R, got.G, got.B, got.A,
				want.R, want.G, want.B, want.A)
		}
	})
}

// AssertPixelNRGBA checks the non-premultiplied color of img at (x, y).
func AssertPixelNRGBA(t *testing.T, img image.Image, x, y int, want color.NRGBA) {
	t.Helper()
	got := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
	if got != want {
		t.Errorf("pixel (%d,%d): got %d %d %d %d; want %d %d %d %d",
			x, y,
			got.R, got.G, got.B, got.A,
			want.R, want.G, want.B, want.A)
	}
}
