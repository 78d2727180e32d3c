//go:build go1.13 && !windows
// +build go1.13,!windows

package imageprint

import (
	"fmt"
	"image"
	"io"

	"github.com/BourgeoisBear/rasterm"
)

// PrintRasTerm draws an image using the RasTerm library.
//
// This enables drawing in kitty, iTerm/WezTerm and sixel capable terminals.
// It returns ErrUnsupportedTerminal if none of these is detected.
func PrintRasTerm(w io.Writer, i image.Image) error {
	if rasterm.IsTermKitty() {
		if err := (rasterm.Settings{}).KittyWriteImage(w, i); err != nil {
			return err
		}
		fmt.Fprint(w, "\n")
		return nil
	}
	if rasterm.IsTermItermWez() {
		if err := (rasterm.Settings{}).ItermWriteImage(w, i); err != nil {
			return err
		}
		fmt.Fprint(w, "\n")
		return nil
	}
	if capable, err := rasterm.IsSixelCapable(); capable && err == nil {
		if err := (rasterm.Settings{}).SixelWriteImage(w, Quantize(i, sixelColors)); err != nil {
			return err
		}
		fmt.Fprint(w, "\n")
		return nil
	}
	return ErrUnsupportedTerminal
}
