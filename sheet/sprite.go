package sheet

import (
	"image"
	"unicode/utf8"
)

// Sprite is one glyph grid together with its legend.
type Sprite struct {
	Rows   []string
	Legend Legend

	// Line is the input line where the sprite's first legend entry or row
	// appeared. It is 0 for sprites without content or built by hand.
	Line int
	// RowLines holds the input line of each row, parallel to Rows. It may
	// be nil for sprites built by hand.
	RowLines []int
}

// NewSprite returns an empty sprite with an empty legend.
func NewSprite() *Sprite {
	return &Sprite{Legend: make(Legend)}
}

// AddRow appends a row of glyphs.
func (s *Sprite) AddRow(row string) {
	s.Rows = append(s.Rows, row)
}

// Width is the length, in glyphs, of the sprite's longest row.
func (s *Sprite) Width() int {
	w := 0
	for _, row := range s.Rows {
		if n := utf8.RuneCountInString(row); n > w {
			w = n
		}
	}
	return w
}

// Height is the number of rows in the sprite.
func (s *Sprite) Height() int {
	return len(s.Rows)
}

// Size returns Width and Height as a point.
func (s *Sprite) Size() image.Point {
	return image.Pt(s.Width(), s.Height())
}

// Empty reports whether the sprite has no rows.
func (s *Sprite) Empty() bool {
	return len(s.Rows) == 0
}

// rowLine returns the input line of row y, or 0 if unknown.
func (s *Sprite) rowLine(y int) int {
	if y < len(s.RowLines) {
		return s.RowLines[y]
	}
	return 0
}

// Check verifies that every glyph in the sprite's rows has a legend entry.
// idx is the sprite's index in its sheet, used in the returned error.
func (s *Sprite) Check(idx int) error {
	for y, row := range s.Rows {
		x := 0
		for _, g := range row {
			if _, ok := s.Legend[g]; !ok {
				return s.MissingGlyph(idx, x, y, g)
			}
			x++
		}
	}
	return nil
}

// MissingGlyph builds the error for glyph g at column x of row y.
func (s *Sprite) MissingGlyph(idx, x, y int, g rune) *MissingGlyphColorError {
	return &MissingGlyphColorError{
		Sprite: idx,
		Line:   s.rowLine(y),
		Row:    y,
		Column: x,
		Glyph:  g,
	}
}
