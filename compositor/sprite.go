package compositor

import (
	"image"

	"badc0de.net/pkg/ascii2png/sheet"
)

// compositeSprite writes s into img so that the sprite's bounding box ends
// at bottomRight. idx is used for error reporting only.
func compositeSprite(s *sheet.Sprite, idx int, img *image.NRGBA, bottomRight image.Point) error {
	dst := image.Rect(
		bottomRight.X-s.Width(), bottomRight.Y-s.Height(),
		bottomRight.X, bottomRight.Y)

	for y, row := range s.Rows {
		x := 0
		for _, g := range row {
			c, ok := s.Legend.Color(g)
			if !ok {
				return s.MissingGlyph(idx, x, y, g)
			}
			img.SetNRGBA(dst.Min.X+x, dst.Min.Y+y, c)
			x++
		}
	}
	return nil
}
