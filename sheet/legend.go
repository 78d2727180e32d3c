package sheet

import (
	"image/color"
	"sort"
)

// Legend maps glyphs to colors for a single sprite.
type Legend map[rune]color.NRGBA

// Set binds glyph to c, replacing any earlier binding.
func (l Legend) Set(glyph rune, c color.NRGBA) {
	l[glyph] = c
}

// Color returns the color bound to glyph.
func (l Legend) Color(glyph rune) (color.NRGBA, bool) {
	c, ok := l[glyph]
	return c, ok
}

// Glyphs returns the legend's glyphs in ascending order.
func (l Legend) Glyphs() []rune {
	glyphs := make([]rune, 0, len(l))
	for g := range l {
		glyphs = append(glyphs, g)
	}
	sort.Slice(glyphs, func(i, j int) bool { return glyphs[i] < glyphs[j] })
	return glyphs
}
