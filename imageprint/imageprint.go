// Package imageprint prints images on terminal.
//
// It is used to preview a composited sprite sheet without leaving the
// terminal. Each pixel is printed as two character cells so that pixels
// come out roughly square.
package imageprint

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	ic "image/color"
	"image/png"
	"io"

	"github.com/andybons/gogif"
	"github.com/gookit/color"
)

// sixelColors is the palette size images are quantized to for sixel output.
const sixelColors = 64

// Mode selects how Print draws an image.
type Mode int

const (
	// Mode24bit changes the background with 24-bit color escape sequences.
	Mode24bit Mode = iota
	// Mode256Color uses the terminal's 256 color palette.
	Mode256Color
	// ModeNoColor prints without color escape sequences.
	ModeNoColor
	// ModeITerm uses iTerm2's inline image escape sequence.
	ModeITerm
	// ModeRasTerm picks kitty, iTerm or sixel output, whichever the terminal supports.
	ModeRasTerm
)

// Print draws i to w using the passed mode.
//
// blanks selects colored blanks over ASCII art shading for the modes that
// print characters. name is used as the file name in ModeITerm.
func Print(w io.Writer, i image.Image, mode Mode, blanks bool, name string) error {
	switch mode {
	case Mode256Color:
		Print256Color(w, i, blanks)
	case ModeNoColor:
		PrintNoColor(w, i, blanks)
	case ModeITerm:
		return PrintITerm(w, i, name)
	case ModeRasTerm:
		return PrintRasTerm(w, i)
	default:
		Print24bit(w, i, blanks)
	}
	return nil
}

func shade(w io.Writer, col ic.Color, escapesTrueColor, blanks, noColor bool) {
	cR, cG, cB, cA := col.RGBA()
	if cA == 0 {
		if noColor {
			fmt.Fprint(w, "  ")
		} else {
			fmt.Fprint(w, "\x1b[0m  ")
		}
		return
	}

	r, g, b := uint8(cR>>8), uint8(cG>>8), uint8(cB>>8)
	cell := "  "
	if !blanks {
		a := ((cR + cG + cB) / 3) >> 8
		switch {
		case a < 32:
			cell = ".."
		case a < 64:
			cell = "--"
		case a < 128:
			cell = "=="
		default:
			cell = "##"
		}
	}

	switch {
	case noColor:
		fmt.Fprint(w, cell)
	case escapesTrueColor:
		fmt.Fprintf(w, "\x1b[48;2;%d;%d;%dm%s\x1b[0m", r, g, b, cell)
	default:
		fmt.Fprint(w, color.RGB(r, g, b, true).Sprint(cell))
	}
}

func printRows(w io.Writer, i image.Image, escapesTrueColor, blanks, noColor bool) {
	for y := i.Bounds().Min.Y; y < i.Bounds().Max.Y; y++ {
		for x := i.Bounds().Min.X; x < i.Bounds().Max.X; x++ {
			shade(w, i.At(x, y), escapesTrueColor, blanks, noColor)
		}
		if !noColor {
			fmt.Fprint(w, "\x1b[0m")
		}
		fmt.Fprint(w, "\n")
	}
}

// Print256Color draws an image using 256color'd ascii art.
func Print256Color(w io.Writer, i image.Image, blanks bool) {
	printRows(w, i, false, blanks, false)
}

// Print24bit draws an image using 24bit color escape sequences by changing background.
func Print24bit(w io.Writer, i image.Image, blanks bool) {
	printRows(w, i, true, blanks, false)
}

// PrintNoColor draws an image without using color escape sequences. Only
// transparency is visible with blanks=true.
func PrintNoColor(w io.Writer, i image.Image, blanks bool) {
	printRows(w, i, false, blanks, true)
}

// PrintITerm draws an image using iTerm2's escape sequences.
//
// https://www.iterm2.com/documentation-images.html
func PrintITerm(w io.Writer, i image.Image, fn string) error {
	name := base64.StdEncoding.EncodeToString([]byte(fn))
	b := &bytes.Buffer{}
	bEnc := base64.NewEncoder(base64.StdEncoding, b)
	if err := png.Encode(bEnc, i); err != nil {
		return err
	}
	if err := bEnc.Close(); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "\n\033]1337;File=name=%s;inline=1;size=%d;width=%dpx;height=%dpx:%s\a\n", name, b.Len(), i.Bounds().Size().X, i.Bounds().Size().Y, b.String())
	return err
}

// Quantize reduces i to a paletted image of at most numColor colors.
func Quantize(i image.Image, numColor int) *image.Paletted {
	palettedImage := image.NewPaletted(i.Bounds(), nil)
	quantizer := gogif.MedianCutQuantizer{NumColor: numColor}
	quantizer.Quantize(palettedImage, i.Bounds(), i, i.Bounds().Min)
	return palettedImage
}
