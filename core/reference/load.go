// Package reference loads a reference genome into one flat sequence and
// samples read-length windows from it.
package reference

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"

	"readsim/core/seqio"
)

// ErrEmptyReference is returned when a reference holds no sequence.
var ErrEmptyReference = errors.New("reference: empty sequence")

// LoadReader concatenates the sequence lines of r. The first line is the
// header and is dropped whatever it holds; later lines starting with '>'
// are headers of further records, whose sequences are appended too.
func LoadReader(ctx context.Context, r io.Reader) ([]byte, error) {
	sc := bufio.NewScanner(r)
	const maxLine = 64 * 1024 * 1024 // allow very long single-line sequences (64 MiB)
	buf := make([]byte, 64*1024)
	sc.Buffer(buf, maxLine)

	seq := make([]byte, 0, 1<<20)
	first := true
	for sc.Scan() {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}
		line := sc.Bytes()
		if first || (len(line) > 0 && line[0] == '>') {
			first = false
			continue
		}
		seq = append(seq, bytes.TrimSpace(line)...)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reference scan: %w", err)
	}
	if len(seq) == 0 {
		return nil, ErrEmptyReference
	}
	return seq, nil
}

// Load opens path (plain or compressed, "-" for stdin) and loads it.
func Load(ctx context.Context, path string) ([]byte, error) {
	rc, err := seqio.Open(path)
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	seq, err := LoadReader(ctx, rc)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return seq, nil
}
