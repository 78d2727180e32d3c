//go:build !go1.13 || windows
// +build !go1.13 windows

package imageprint

import (
	"image"
	"io"
)

// PrintRasTerm is not supported below Go 1.13 or on windows.
func PrintRasTerm(w io.Writer, i image.Image) error {
	return ErrUnsupportedTerminal
}
