// ascii2png converts textual sprite descriptions into a PNG sprite sheet.
//
// Sprites are separated by blank lines. Each sprite defines its own legend
// with lines of the form "+<glyph>:<hex color>", followed by rows of glyphs:
//
//	+X:ff0000
//	+.:
//	XX.
//	.XX
//
// Usage:
//
//	ascii2png [flags] [input ...]
//
// Inputs are read in order as one stream; "-" or no inputs at all read
// standard input, and http or https URLs are fetched. The sprites are
// placed left to right, bottom aligned, and written to out.png unless -o
// says otherwise.
package main

import (
	"flag"
	"io"
	"os"

	"badc0de.net/pkg/flagutil/v1"
	"github.com/golang/glog"

	"badc0de.net/pkg/ascii2png/imageprint"
	"badc0de.net/pkg/ascii2png/paths"
)

var (
	outPath  = flag.String("o", "out.png", "path to write the sprite sheet to")
	scale    = flag.Int("scale", 1, "integer factor to upscale the written sheet by")
	dump     = flag.Bool("dump", false, "print the parsed sprites before compositing")
	printURL = flag.Bool("dataurl", false, "print the written sheet as a data URL")

	preview  = flag.Bool("preview", false, "print the sheet on the terminal after writing it")
	col      = flag.Bool("col", true, "whether to use color when previewing")
	col256   = flag.Bool("col256", false, "whether to use 256 col instead of 24 bit")
	iterm    = flag.Bool("iterm", false, "whether to print with iterm escape code instead of 24 bit")
	rasterm  = flag.Bool("rasterm", false, "whether to print with kitty, iterm or sixel images via rasterm")
	blanks   = flag.Bool("blanks", true, "whether to just use colored blanks instead of some bad ascii art")
	downsize = flag.Bool("downsize", true, "whether to shrink the preview to fit the terminal")
)

type options struct {
	outPath string
	scale   int
	dump    bool
	dataURL bool

	preview  bool
	mode     imageprint.Mode
	blanks   bool
	downsize bool
}

func optionsFromFlags() options {
	o := options{
		outPath: *outPath,
		scale:   *scale,
		dump:    *dump,
		dataURL: *printURL,

		preview:  *preview,
		blanks:   *blanks,
		downsize: *downsize,
	}

	switch {
	case *rasterm:
		o.mode = imageprint.ModeRasTerm
	case !*col:
		o.mode = imageprint.ModeNoColor
	case *iterm:
		o.mode = imageprint.ModeITerm
	case *col256:
		o.mode = imageprint.Mode256Color
	default:
		o.mode = imageprint.Mode24bit
	}
	return o
}

func main() {
	paths.SetupSearchPathFlag("sprite_path")
	flag.Set("logtostderr", "true")
	flagutil.Parse()

	if err := run(optionsFromFlags(), flag.Args(), os.Stdout); err != nil {
		glog.Exitf("ascii2png: %v", err)
	}
}

// run converts the inputs named in args and writes the sheet to o.outPath.
// Anything meant for the user, rather than the log, goes to stdout.
func run(o options, args []string, stdout io.Writer) error {
	if o.scale < 1 {
		return errInvalidScale(o.scale)
	}

	ss, err := load(args)
	if err != nil {
		return err
	}

	if o.dump {
		dumpSheet(stdout, ss)
	}

	img, err := render(ss, o.scale)
	if err != nil {
		return err
	}

	data, err := encodePNG(img)
	if err != nil {
		return err
	}
	if err := writeFile(o.outPath, data); err != nil {
		return err
	}
	glog.Infof("wrote %dx%d sheet of %d sprites to %s", img.Bounds().Dx(), img.Bounds().Dy(), len(ss.Sprites), o.outPath)

	if o.dataURL {
		if err := printDataURL(stdout, data); err != nil {
			return err
		}
	}
	if o.preview {
		out(stdout, img, o)
	}
	return nil
}
