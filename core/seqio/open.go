// core/seqio/open.go
package seqio

import (
	"bufio"
	"bytes"
	"compress/gzip"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/golang/snappy"
	"github.com/ulikunitz/xz"
)

// ErrInputNotFound reports an input path that does not exist or cannot be opened.
var ErrInputNotFound = errors.New("input not found")

var (
	gzipMagic   = []byte{0x1f, 0x8b}
	xzMagic     = []byte{0xfd, '7', 'z', 'X', 'Z', 0x00}
	snappyMagic = []byte{0xff, 0x06, 0x00, 0x00, 's', 'N', 'a', 'P', 'p', 'Y'}
)

// multiReadCloser closes multiple io.Closers when Close() is called.
type multiReadCloser struct {
	io.Reader
	closers []io.Closer
}

func (m *multiReadCloser) Close() error {
	var err error
	for _, c := range m.closers {
		if cerr := c.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}
	return err
}

// Open returns a reader for path. "-" reads stdin. gzip, xz and framed
// snappy streams are detected by magic number or by file suffix and
// decompressed transparently.
func Open(path string) (io.ReadCloser, error) {
	var (
		src    io.Reader
		closer io.Closer
	)
	if path == "-" {
		src, closer = os.Stdin, io.NopCloser(nil)
	} else {
		fh, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInputNotFound, err)
		}
		src, closer = fh, fh
	}

	br := bufio.NewReaderSize(src, 64*1024)
	sig, _ := br.Peek(len(snappyMagic))
	lower := strings.ToLower(path)

	switch {
	case bytes.HasPrefix(sig, gzipMagic) || strings.HasSuffix(lower, ".gz"):
		gr, err := gzip.NewReader(br)
		if err != nil {
			_ = closer.Close()
			return nil, fmt.Errorf("gzip %s: %w", path, err)
		}
		return &multiReadCloser{Reader: gr, closers: []io.Closer{gr, closer}}, nil
	case bytes.HasPrefix(sig, xzMagic) || strings.HasSuffix(lower, ".xz"):
		xr, err := xz.NewReader(br)
		if err != nil {
			_ = closer.Close()
			return nil, fmt.Errorf("xz %s: %w", path, err)
		}
		return &multiReadCloser{Reader: xr, closers: []io.Closer{closer}}, nil
	case bytes.HasPrefix(sig, snappyMagic) || strings.HasSuffix(lower, ".sz"):
		return &multiReadCloser{Reader: snappy.NewReader(br), closers: []io.Closer{closer}}, nil
	}
	return &multiReadCloser{Reader: br, closers: []io.Closer{closer}}, nil
}
