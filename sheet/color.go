package sheet

import (
	"encoding/hex"
	"fmt"
	"image/color"
)

var (
	// Transparent is the color of an empty legend entry.
	Transparent = color.NRGBA{}
)

// ParseColor decodes a legend color.
//
// The string is decoded as hex bytes. An empty string is fully
// transparent; one byte is an opaque gray; three bytes are opaque RGB;
// four bytes are RGBA with straight (non-premultiplied) alpha. Any other
// length is an error.
func ParseColor(s string) (color.NRGBA, error) {
	v, err := hex.DecodeString(s)
	if err != nil {
		return color.NRGBA{}, err
	}

	switch len(v) {
	case 0:
		return Transparent, nil
	case 1:
		return color.NRGBA{R: v[0], G: v[0], B: v[0], A: 0xFF}, nil
	case 3:
		return color.NRGBA{R: v[0], G: v[1], B: v[2], A: 0xFF}, nil
	case 4:
		return color.NRGBA{R: v[0], G: v[1], B: v[2], A: v[3]}, nil
	default:
		return color.NRGBA{}, fmt.Errorf("got %d bytes, want 0, 1, 3 or 4", len(v))
	}
}

// FormatColor is the inverse of ParseColor. It returns the shortest hex
// string that ParseColor decodes back to c.
func FormatColor(c color.NRGBA) string {
	switch {
	case c == Transparent:
		return ""
	case c.A != 0xFF:
		return hex.EncodeToString([]byte{c.R, c.G, c.B, c.A})
	case c.R == c.G && c.G == c.B:
		return hex.EncodeToString([]byte{c.R})
	default:
		return hex.EncodeToString([]byte{c.R, c.G, c.B})
	}
}
