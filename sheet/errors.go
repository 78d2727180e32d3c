package sheet

import (
	"fmt"
)

// MalformedColorError is returned when a legend entry's color is not a
// valid 0, 1, 3 or 4 byte hex string.
type MalformedColorError struct {
	Line  int
	Key   string
	Color string
	Err   error
}

func (e *MalformedColorError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("line %d: malformed color %q for glyph %q: %v", e.Line, e.Color, e.Key, e.Err)
	}
	return fmt.Sprintf("line %d: malformed color %q for glyph %q", e.Line, e.Color, e.Key)
}

func (e *MalformedColorError) Unwrap() error {
	return e.Err
}

// MalformedLegendKeyError is returned when a legend entry's key is not
// exactly one character long.
type MalformedLegendKeyError struct {
	Line int
	Key  string
}

func (e *MalformedLegendKeyError) Error() string {
	return fmt.Sprintf("line %d: legend key %q is not a single character", e.Line, e.Key)
}

// MissingGlyphColorError is returned when a sprite row uses a glyph that
// has no entry in that sprite's legend.
//
// Sprite is the zero-based index of the sprite in the sheet. Line is the
// input line of the offending row, or 0 if the sprite was built by hand.
type MissingGlyphColorError struct {
	Sprite int
	Line   int
	Row    int
	Column int
	Glyph  rune
}

func (e *MissingGlyphColorError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("line %d: sprite %d: glyph %q at row %d, column %d has no legend entry", e.Line, e.Sprite, e.Glyph, e.Row, e.Column)
	}
	return fmt.Sprintf("sprite %d: glyph %q at row %d, column %d has no legend entry", e.Sprite, e.Glyph, e.Row, e.Column)
}
