// Package paths resolves and opens the inputs named on the command line.
//
// An input is either a local file, "-" for standard input, or an http or
// https URL. Relative local files that do not exist in the working
// directory are looked up in the directories of SearchPath.
package paths

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/golang/glog"
	"github.com/pkg/errors"
)

// Stdin is the input name that stands for standard input.
const Stdin = "-"

// File is an opened input.
type File interface {
	io.ReadCloser
	io.Seeker
}

var (
	// SearchPath lists extra directories to look for relative inputs in.
	SearchPath []string

	stdin io.Reader = os.Stdin
)

// Find locates the passed input and returns a path it can be opened at.
//
// The name is tried as given first, then relative to each directory in
// SearchPath. An empty string is returned if the file was not found.
// Standard input and URLs are returned unchanged.
func Find(fileName string) string {
	if fileName == Stdin || isURL(fileName) {
		return fileName
	}

	for _, path := range getPossiblePaths(fileName) {
		if f, err := os.Open(path); err == nil {
			f.Close()
			glog.V(2).Infof("paths.Find(%q)=%s", fileName, path)
			return path
		}
	}

	return ""
}

func getPossiblePaths(fileName string) []string {
	possiblePaths := []string{fileName}
	if filepath.IsAbs(fileName) {
		return possiblePaths
	}
	for _, dir := range SearchPath {
		if dir == "" {
			continue
		}
		possiblePaths = append(possiblePaths, filepath.Join(dir, fileName))
	}
	return possiblePaths
}

// Open locates the passed input in the same locations that Find would look,
// and opens it. If Find returns an empty string, an error wrapping
// os.ErrNotExist is returned.
func Open(fileName string) (File, error) {
	switch {
	case fileName == Stdin:
		return openStdinImp()
	case isURL(fileName):
		return openHTTPImp(fileName)
	}

	path := Find(fileName)
	if path == "" {
		return nil, errors.Wrapf(os.ErrNotExist, "paths.Open(%q)", fileName)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "paths.Open(%q)", fileName)
	}
	return f, nil
}

// OpenAll opens every passed input, in order. With no inputs, standard input
// is opened. On error, the inputs opened so far are closed.
func OpenAll(fileNames []string) ([]File, error) {
	if len(fileNames) == 0 {
		fileNames = []string{Stdin}
	}

	files := make([]File, 0, len(fileNames))
	for _, fileName := range fileNames {
		f, err := Open(fileName)
		if err != nil {
			CloseAll(files)
			return nil, err
		}
		files = append(files, f)
	}
	return files, nil
}

// CloseAll closes every passed file, logging errors.
func CloseAll(files []File) {
	for _, f := range files {
		if err := f.Close(); err != nil {
			glog.Errorf("closing input: %v", err)
		}
	}
}

// Readers returns files as a slice of io.Reader.
func Readers(files []File) []io.Reader {
	rs := make([]io.Reader, len(files))
	for i, f := range files {
		rs[i] = f
	}
	return rs
}

func isURL(fileName string) bool {
	return strings.HasPrefix(fileName, "http://") || strings.HasPrefix(fileName, "https://")
}

// openStdinImp reads all of standard input so it can be seeked like any
// other input. Standard input itself is never closed.
func openStdinImp() (File, error) {
	buf := &bytes.Buffer{}
	if _, err := io.Copy(buf, stdin); err != nil {
		return nil, errors.Wrap(err, "reading standard input")
	}
	return &bytesReaderWithDummyClose{bytes.NewReader(buf.Bytes())}, nil
}

type bytesReaderWithDummyClose struct {
	*bytes.Reader
}

func (bytesReaderWithDummyClose) Close() error {
	return nil
}
