package main

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"io/ioutil"
	"os"
	"path/filepath"

	"github.com/nfnt/resize"
	"github.com/pkg/errors"

	"badc0de.net/pkg/ascii2png/compositor"
	"badc0de.net/pkg/ascii2png/paths"
	"badc0de.net/pkg/ascii2png/sheet"
)

type errInvalidScale int

func (e errInvalidScale) Error() string {
	return fmt.Sprintf("scale must be at least 1, got %d", int(e))
}

// load opens and parses every input as a single description.
func load(args []string) (*sheet.SpriteSheet, error) {
	files, err := paths.OpenAll(args)
	if err != nil {
		return nil, errors.Wrap(err, "opening inputs")
	}
	defer paths.CloseAll(files)

	ss, err := sheet.DecodeAll(paths.Readers(files)...)
	if err != nil {
		return nil, errors.Wrap(err, "parsing sprites")
	}
	return ss, nil
}

// render composites ss and upscales it by an integer factor.
func render(ss *sheet.SpriteSheet, factor int) (image.Image, error) {
	img, err := compositor.CompositeSheet(ss)
	if err != nil {
		return nil, errors.Wrap(err, "compositing sprites")
	}
	if factor == 1 || img.Bounds().Empty() {
		return img, nil
	}

	sz := img.Bounds().Size()
	return resize.Resize(uint(sz.X*factor), uint(sz.Y*factor), img, resize.NearestNeighbor), nil
}

func encodePNG(img image.Image) ([]byte, error) {
	buf := &bytes.Buffer{}
	if err := png.Encode(buf, img); err != nil {
		return nil, errors.Wrap(err, "encoding png")
	}
	return buf.Bytes(), nil
}

// writeFile writes data next to path and renames it into place, so that
// path is either left untouched or holds the complete image.
func writeFile(path string, data []byte) (err error) {
	f, err := ioutil.TempFile(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return errors.Wrapf(err, "creating %s", path)
	}
	defer func() {
		if err != nil {
			os.Remove(f.Name())
		}
	}()

	if _, err := f.Write(data); err != nil {
		f.Close()
		return errors.Wrapf(err, "writing %s", path)
	}
	if err := f.Close(); err != nil {
		return errors.Wrapf(err, "closing %s", path)
	}
	if err := os.Chmod(f.Name(), 0644); err != nil {
		return errors.Wrapf(err, "writing %s", path)
	}
	if err := os.Rename(f.Name(), path); err != nil {
		return errors.Wrapf(err, "writing %s", path)
	}
	return nil
}
