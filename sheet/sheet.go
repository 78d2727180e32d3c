package sheet

import (
	"bufio"
	"image"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/golang/glog"
	"github.com/pkg/errors"
)

// SpriteSheet is an ordered list of sprites. The order determines where
// each sprite is placed horizontally when the sheet is composited.
type SpriteSheet struct {
	Sprites []*Sprite
}

// Size returns the size of the composited sheet: the sum of the sprites'
// widths by the largest sprite height.
func (ss *SpriteSheet) Size() image.Point {
	var sz image.Point
	for _, s := range ss.Sprites {
		sz.X += s.Width()
		if h := s.Height(); h > sz.Y {
			sz.Y = h
		}
	}
	return sz
}

// Check verifies every sprite's legend covers its glyphs.
func (ss *SpriteSheet) Check() error {
	for idx, s := range ss.Sprites {
		if err := s.Check(idx); err != nil {
			return err
		}
	}
	return nil
}

// Decode parses a sprite sheet description from r.
func Decode(r io.Reader) (*SpriteSheet, error) {
	return DecodeAll(r)
}

// DecodeAll parses the concatenation of rs as one description. A sprite
// may begin in one reader and continue in the next.
func DecodeAll(rs ...io.Reader) (*SpriteSheet, error) {
	d := &decoder{
		ss:     &SpriteSheet{},
		sprite: NewSprite(),
	}

	for i, r := range rs {
		br := bufio.NewReader(r)
		for {
			line, err := br.ReadString('\n')
			if line != "" {
				d.line++
				if err := d.decodeLine(strings.TrimSuffix(line, "\n")); err != nil {
					return nil, err
				}
			}
			if err == io.EOF {
				break
			}
			if err != nil {
				return nil, errors.Wrapf(err, "reading input %d after line %d", i, d.line)
			}
		}
	}
	d.flush()

	glog.V(2).Infof("decoded %d sprites from %d lines", len(d.ss.Sprites), d.line)
	return d.ss, nil
}

type decoder struct {
	ss     *SpriteSheet
	sprite *Sprite
	line   int
}

// flush ends the sprite under construction, even if it is empty.
func (d *decoder) flush() {
	d.ss.Sprites = append(d.ss.Sprites, d.sprite)
	d.sprite = NewSprite()
}

func (d *decoder) decodeLine(line string) error {
	line = strings.TrimSpace(line)
	if line == "" {
		d.flush()
		return nil
	}

	if i := strings.IndexByte(line, '#'); i >= 0 {
		line = line[:i]
	}
	if line == "" {
		return nil
	}

	if d.sprite.Line == 0 {
		d.sprite.Line = d.line
	}

	if strings.HasPrefix(line, "+") {
		return d.decodeLegend(line[1:])
	}

	d.sprite.AddRow(line)
	d.sprite.RowLines = append(d.sprite.RowLines, d.line)
	return nil
}

func (d *decoder) decodeLegend(entry string) error {
	key, col := entry, ""
	if i := strings.IndexByte(entry, ':'); i >= 0 {
		key, col = entry[:i], entry[i+1:]
	}

	if utf8.RuneCountInString(key) != 1 {
		return &MalformedLegendKeyError{Line: d.line, Key: key}
	}
	glyph, _ := utf8.DecodeRuneInString(key)

	c, err := ParseColor(col)
	if err != nil {
		return &MalformedColorError{Line: d.line, Key: key, Color: col, Err: err}
	}

	if _, ok := d.sprite.Legend[glyph]; ok {
		glog.V(2).Infof("line %d: glyph %q redefined", d.line, glyph)
	}
	d.sprite.Legend.Set(glyph, c)
	return nil
}
