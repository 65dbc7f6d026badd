// Package output opens the destination of simulated reads: missing parent
// directories are created, compression follows the file suffix, and the
// uncompressed byte stream is hashed with BLAKE3 as it is written.
package output

import (
	"bufio"
	"compress/gzip"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/golang/snappy"
	"github.com/ulikunitz/xz"
	"github.com/zeebo/blake3"
)

// Sink is a buffered, hashed record destination. Close must be called on
// success and on failure alike; calls after the first are no-ops.
type Sink struct {
	w       *bufio.Writer
	hash    *blake3.Hasher
	n       int64
	closers []io.Closer
	closed  bool
}

// Create opens path for writing. "-" writes to stdout, which is never closed.
// Suffixes .gz, .xz and .sz select gzip, xz and framed snappy compression.
func Create(path string, stdout io.Writer) (*Sink, error) {
	s := &Sink{hash: blake3.New()}
	if path == "-" {
		s.w = bufio.NewWriterSize(io.MultiWriter(stdout, s.hash), 256*1024)
		return s, nil
	}

	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create output directory %s: %w", dir, err)
		}
	}
	fh, err := os.Create(path)
	if err != nil {
		return nil, err
	}

	var dst io.Writer = fh
	lower := strings.ToLower(path)
	switch {
	case strings.HasSuffix(lower, ".gz"):
		gw := gzip.NewWriter(fh)
		dst, s.closers = gw, []io.Closer{gw}
	case strings.HasSuffix(lower, ".xz"):
		xw, err := xz.NewWriter(fh)
		if err != nil {
			_ = fh.Close()
			return nil, fmt.Errorf("xz %s: %w", path, err)
		}
		dst, s.closers = xw, []io.Closer{xw}
	case strings.HasSuffix(lower, ".sz"):
		sw := snappy.NewBufferedWriter(fh)
		dst, s.closers = sw, []io.Closer{sw}
	}
	s.closers = append(s.closers, fh)
	s.w = bufio.NewWriterSize(io.MultiWriter(dst, s.hash), 256*1024)
	return s, nil
}

func (s *Sink) Write(p []byte) (int, error) {
	n, err := s.w.Write(p)
	s.n += int64(n)
	return n, err
}

// Bytes is the number of uncompressed bytes written so far.
func (s *Sink) Bytes() int64 { return s.n }

// Digest is the hex BLAKE3-256 of the uncompressed bytes flushed so far.
func (s *Sink) Digest() string { return hex.EncodeToString(s.hash.Sum(nil)) }

// Close flushes buffers, finishes compression and closes the file,
// returning the first error.
func (s *Sink) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	err := s.w.Flush()
	for _, c := range s.closers {
		if cerr := c.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}
	return err
}
