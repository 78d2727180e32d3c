package paths

import (
	"bytes"
	"io"
	"net/http"
	"os"
	"sync"

	"github.com/golang/glog"
	"github.com/pkg/errors"
)

var (
	cache     map[string]*bytes.Buffer
	cacheLock sync.Mutex

	// HTTPClient is used to fetch URL inputs.
	HTTPClient = http.DefaultClient
)

// openHTTPImp fetches fileName over HTTP into memory and returns a reader
// over it. Responses are cached for the lifetime of the process, so the
// same URL named twice is only fetched once.
func openHTTPImp(fileName string) (File, error) {
	cacheLock.Lock()
	defer cacheLock.Unlock()

	if cache == nil {
		cache = make(map[string]*bytes.Buffer)
	}

	if buf, ok := cache[fileName]; ok {
		glog.V(2).Infof("paths/http.go: Open(%q): returning reader for cached buffer", fileName)
		return &bytesReaderWithDummyClose{bytes.NewReader(buf.Bytes())}, nil
	}

	glog.V(2).Infof("paths/http.go: getting http file %q", fileName)
	response, err := HTTPClient.Get(fileName)
	if err != nil {
		return nil, errors.Wrapf(err, "paths.Open(%q): failed to fetch", fileName)
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusOK {
		e := os.ErrInvalid
		if response.StatusCode == http.StatusNotFound {
			e = os.ErrNotExist
		}
		return nil, errors.Wrapf(e, "paths.Open(%q): http response.StatusCode=%v, want 200", fileName, response.StatusCode)
	}

	buf := &bytes.Buffer{}
	if _, err := io.Copy(buf, response.Body); err != nil {
		return nil, errors.Wrap(err, "copying response to seekable buffer")
	}

	cache[fileName] = buf
	return &bytesReaderWithDummyClose{bytes.NewReader(buf.Bytes())}, nil
}
