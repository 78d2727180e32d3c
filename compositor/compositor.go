// Package compositor paints a parsed sprite sheet into an image.Image.
//
// Sprites are laid out left to right in sheet order, each one as wide as
// its longest row. Sprites shorter than the tallest one are aligned to the
// bottom edge of the sheet. Pixels no glyph covers stay fully transparent.
package compositor

import (
	"image"

	"github.com/golang/glog"

	"badc0de.net/pkg/ascii2png/sheet"
)

// CompositeSheet renders every sprite of ss into a single image.
//
// A glyph without a legend entry in its sprite aborts compositing with a
// *sheet.MissingGlyphColorError.
func CompositeSheet(ss *sheet.SpriteSheet) (*image.NRGBA, error) {
	fullSize := image.Rectangle{Max: ss.Size()}
	img := image.NewNRGBA(fullSize)

	var bottomRight image.Point
	bottomRight.Y = fullSize.Max.Y

	for idx, s := range ss.Sprites {
		bottomRight.X += s.Width()

		glog.V(2).Infof("compositing sprite %d (%dx%d) with bottom right at %v", idx, s.Width(), s.Height(), bottomRight)
		if err := compositeSprite(s, idx, img, bottomRight); err != nil {
			return nil, err
		}
	}

	return img, nil
}

// CompositeSprite renders a single sprite on its own, tightly sized image.
func CompositeSprite(s *sheet.Sprite) (*image.NRGBA, error) {
	sz := s.Size()
	img := image.NewNRGBA(image.Rectangle{Max: sz})
	if err := compositeSprite(s, 0, img, sz); err != nil {
		return nil, err
	}
	return img, nil
}
