package main

import (
	"fmt"
	"io"

	"badc0de.net/pkg/ascii2png/sheet"
)

// dumpSheet prints a text representation of the parsed sprites, to allow
// the user to verify they were parsed as intended.
func dumpSheet(w io.Writer, ss *sheet.SpriteSheet) {
	sz := ss.Size()
	fmt.Fprintf(w, "sheet: %d sprites, %dx%d\n", len(ss.Sprites), sz.X, sz.Y)

	for idx, s := range ss.Sprites {
		if s.Empty() && len(s.Legend) == 0 {
			fmt.Fprintf(w, "sprite %d: empty\n", idx)
			continue
		}

		fmt.Fprintf(w, "sprite %d: %dx%d (line %d)\n", idx, s.Width(), s.Height(), s.Line)
		for _, g := range s.Legend.Glyphs() {
			fmt.Fprintf(w, "  +%c:%s\n", g, sheet.FormatColor(s.Legend[g]))
		}
		for _, row := range s.Rows {
			fmt.Fprintf(w, "  [%s]\n", row)
		}
	}
}
