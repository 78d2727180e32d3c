package main

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io/ioutil"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pkg/errors"

	"badc0de.net/pkg/ascii2png/sheet"
	"badc0de.net/pkg/ascii2png/ttesting"
)

const roundTripDocument = `+X:ff0000
+.:
XX.
.XX

`

func writeInput(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := ioutil.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
	return path
}

func decodeOutput(t *testing.T, path string) image.Image {
	t.Helper()
	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("failed to open output: %v", err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("failed to decode output: %v", err)
	}
	return img
}

func TestRunWritesSheet(t *testing.T) {
	dir := t.TempDir()
	in := writeInput(t, dir, "in.txt", roundTripDocument)
	o := options{outPath: filepath.Join(dir, "out.png"), scale: 1}

	if err := run(o, []string{in}, ioutil.Discard); err != nil {
		t.Fatal(err)
	}

	img := decodeOutput(t, o.outPath)
	red := color.NRGBA{R: 0xFF, A: 0xFF}
	ttesting.AssertEqualPoint(t, "size", img.Bounds().Size(), image.Pt(3, 2))
	ttesting.AssertPixelNRGBA(t, img, 0, 0, red)
	ttesting.AssertPixelNRGBA(t, img, 1, 0, red)
	ttesting.AssertPixelNRGBA(t, img, 2, 0, color.NRGBA{})
	ttesting.AssertPixelNRGBA(t, img, 0, 1, color.NRGBA{})
	ttesting.AssertPixelNRGBA(t, img, 1, 1, red)
	ttesting.AssertPixelNRGBA(t, img, 2, 1, red)

	matches, err := filepath.Glob(filepath.Join(dir, ".out.png.*"))
	if err != nil {
		t.Fatal(err)
	}
	ttesting.AssertEqualInt(t, "no temporary files left", len(matches), 0)
}

func TestRunConcatenatesInputs(t *testing.T) {
	dir := t.TempDir()
	a := writeInput(t, dir, "a.txt", "+a:ff0000\naa\naa\n\n")
	b := writeInput(t, dir, "b.txt", "+b:0000ff\nb\nb\nb\n")
	o := options{outPath: filepath.Join(dir, "out.png"), scale: 1}

	if err := run(o, []string{a, b}, ioutil.Discard); err != nil {
		t.Fatal(err)
	}

	img := decodeOutput(t, o.outPath)
	ttesting.AssertEqualPoint(t, "size", img.Bounds().Size(), image.Pt(3, 3))
	ttesting.AssertPixelNRGBA(t, img, 0, 0, color.NRGBA{})
	ttesting.AssertPixelNRGBA(t, img, 0, 1, color.NRGBA{R: 0xFF, A: 0xFF})
	ttesting.AssertPixelNRGBA(t, img, 2, 0, color.NRGBA{B: 0xFF, A: 0xFF})
}

func TestRunScale(t *testing.T) {
	dir := t.TempDir()
	in := writeInput(t, dir, "in.txt", roundTripDocument)
	o := options{outPath: filepath.Join(dir, "out.png"), scale: 4}

	if err := run(o, []string{in}, ioutil.Discard); err != nil {
		t.Fatal(err)
	}
	ttesting.AssertEqualPoint(t, "size", decodeOutput(t, o.outPath).Bounds().Size(), image.Pt(12, 8))
}

func TestRunInvalidScale(t *testing.T) {
	o := options{outPath: filepath.Join(t.TempDir(), "out.png"), scale: 0}
	if err := run(o, nil, ioutil.Discard); err == nil {
		t.Errorf("run succeeded with scale 0")
	}
}

func TestRunMissingGlyphWritesNothing(t *testing.T) {
	dir := t.TempDir()
	in := writeInput(t, dir, "in.txt", "+X:ff0000\nXY\n")
	o := options{outPath: filepath.Join(dir, "out.png"), scale: 1}

	err := run(o, []string{in}, ioutil.Discard)
	var missing *sheet.MissingGlyphColorError
	if !errors.As(err, &missing) {
		t.Fatalf("got %v; want MissingGlyphColorError", err)
	}
	if _, err := os.Stat(o.outPath); !os.IsNotExist(err) {
		t.Errorf("output exists after failure: %v", err)
	}
}

func TestRunMalformedLegend(t *testing.T) {
	dir := t.TempDir()
	in := writeInput(t, dir, "in.txt", "+AB:ff0000\nA\n")
	o := options{outPath: filepath.Join(dir, "out.png"), scale: 1}

	err := run(o, []string{in}, ioutil.Discard)
	var keyErr *sheet.MalformedLegendKeyError
	if !errors.As(err, &keyErr) {
		t.Fatalf("got %v; want MalformedLegendKeyError", err)
	}
}

func TestRunEmptySheetFails(t *testing.T) {
	dir := t.TempDir()
	in := writeInput(t, dir, "in.txt", "# nothing here\n")
	o := options{outPath: filepath.Join(dir, "out.png"), scale: 1}

	if err := run(o, []string{in}, ioutil.Discard); err == nil {
		t.Errorf("run succeeded for an empty sheet")
	}
}

func TestRunMissingInput(t *testing.T) {
	dir := t.TempDir()
	o := options{outPath: filepath.Join(dir, "out.png"), scale: 1}

	err := run(o, []string{filepath.Join(dir, "missing.txt")}, ioutil.Discard)
	if !os.IsNotExist(errors.Cause(err)) {
		t.Errorf("got %v; want a not exist error", err)
	}
}

func TestRunDataURLAndDump(t *testing.T) {
	dir := t.TempDir()
	in := writeInput(t, dir, "in.txt", roundTripDocument)
	o := options{outPath: filepath.Join(dir, "out.png"), scale: 1, dataURL: true, dump: true}

	stdout := &bytes.Buffer{}
	if err := run(o, []string{in}, stdout); err != nil {
		t.Fatal(err)
	}

	s := stdout.String()
	for _, want := range []string{
		"sheet: 2 sprites, 3x2\n",
		"sprite 0: 3x2 (line 1)\n",
		"  +.:\n",
		"  +X:ff0000\n",
		"  [XX.]\n",
		"sprite 1: empty\n",
		"data:image/png;base64,",
	} {
		if !strings.Contains(s, want) {
			t.Errorf("%q not found in output:\n%s", want, s)
		}
	}
}

// mainArgsEnv carries the command line for TestMainExitCode's child process,
// one argument per line.
const mainArgsEnv = "ASCII2PNG_TEST_MAIN_ARGS"

func TestMainExitCode(t *testing.T) {
	if args, ok := os.LookupEnv(mainArgsEnv); ok {
		os.Args = append([]string{"ascii2png"}, strings.Split(args, "\n")...)
		main()
		return
	}

	dir := t.TempDir()
	good := writeInput(t, dir, "good.txt", roundTripDocument)
	missingGlyph := writeInput(t, dir, "missing_glyph.txt", "+X:ff0000\nXY\n")
	badKey := writeInput(t, dir, "bad_key.txt", "+AB:ff0000\nA\n")

	tests := []struct {
		name     string
		input    string
		wantCode int
	}{
		{"success", good, 0},
		{"missing glyph", missingGlyph, 1},
		{"malformed legend key", badKey, 1},
		{"missing input", filepath.Join(dir, "missing.txt"), 1},
	}
	for i, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			outPath := filepath.Join(dir, fmt.Sprintf("out%d.png", i))
			cmd := exec.Command(os.Args[0], "-test.run=^TestMainExitCode$")
			cmd.Env = append(os.Environ(), mainArgsEnv+"="+strings.Join([]string{"-o", outPath, tt.input}, "\n"))
			output, err := cmd.CombinedOutput()

			code := 0
			if exitErr, ok := err.(*exec.ExitError); ok {
				code = exitErr.ExitCode()
			} else if err != nil {
				t.Fatalf("failed to run child process: %v", err)
			}
			if code != tt.wantCode {
				t.Errorf("exit code: got %d; want %d; output:\n%s", code, tt.wantCode, output)
			}

			_, statErr := os.Stat(outPath)
			if tt.wantCode == 0 && statErr != nil {
				t.Errorf("no output written: %v", statErr)
			}
			if tt.wantCode != 0 && !os.IsNotExist(statErr) {
				t.Errorf("output exists after failure: %v", statErr)
			}
		})
	}
}
