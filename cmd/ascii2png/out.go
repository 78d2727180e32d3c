package main

import (
	"fmt"
	"image"
	"io"

	"github.com/golang/glog"
	"github.com/nfnt/resize"
	"github.com/pkg/errors"
	"github.com/vincent-petithory/dataurl"

	"badc0de.net/pkg/ascii2png/imageprint"
)

// out previews img on the terminal.
func out(w io.Writer, img image.Image, o options) {
	if img.Bounds().Empty() {
		return
	}

	if o.downsize {
		img = fitTerminal(img, o.mode)
	}

	if err := imageprint.Print(w, img, o.mode, o.blanks, o.outPath); err != nil {
		glog.Warningf("preview failed: %v", err)
	}
}

// fitTerminal shrinks img so that it fits on the terminal. Images that
// already fit are returned as they are.
func fitTerminal(img image.Image, mode imageprint.Mode) image.Image {
	termSize, err := GetTermSize()
	if err != nil {
		glog.V(2).Infof("not downsizing preview, no terminal size: %v", err)
		return img
	}

	if (termSize.WSXPixel != 0 && termSize.WSYPixel != 0) && (mode == imageprint.ModeRasTerm || mode == imageprint.ModeITerm) {
		// Images are drawn at native size; limit to half the window.
		return resize.Thumbnail(termSize.WSXPixel/2, termSize.WSYPixel/2, img, resize.NearestNeighbor)
	}
	// Every pixel takes two columns.
	return resize.Thumbnail(termSize.WSCol/2, termSize.WSRow, img, resize.NearestNeighbor)
}

// printDataURL prints PNG data as a data URL on its own line.
func printDataURL(w io.Writer, data []byte) error {
	byt, err := dataurl.New(data, "image/png").MarshalText()
	if err != nil {
		return errors.Wrap(err, "encoding data url")
	}
	_, err = fmt.Fprintf(w, "%s\n", byt)
	return err
}
