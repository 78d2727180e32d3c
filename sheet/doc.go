// Package sheet reads textual sprite sheet descriptions.
//
// A description is a sequence of sprites separated by blank lines. Each
// sprite consists of legend lines, which bind a glyph to a color, and rows
// of glyphs. For example:
//
//	# a red diagonal
//	+X:ff0000
//	+.:
//	XX.
//	.XX
//
// Legend colors are hex strings of 0, 1, 3 or 4 bytes: empty is fully
// transparent, one byte is an opaque gray, three bytes are opaque RGB and
// four bytes are RGBA. Everything from '#' onward is a comment.
//
// Legends are local to a sprite; a glyph defined in one sprite is not
// visible in the next one.
package sheet
