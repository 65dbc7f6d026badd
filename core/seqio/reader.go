// core/seqio/reader.go
package seqio

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
)

// ErrTruncatedRecord is returned when the stream ends inside a quality block.
var ErrTruncatedRecord = errors.New("truncated record")

// Record is one FASTA or FASTQ entry.
type Record struct {
	Name    string
	Comment string // header text after the first whitespace, if any
	Raw     string // header line as read, without the marker; empty for built records
	Seq     []byte
	Qual    []byte // nil when the entry carried no quality block
}

// HasQuality reports whether the entry came with a quality block.
func (r Record) HasQuality() bool { return r.Qual != nil }

// Header returns the header line text without the marker: Raw when the
// record was read, Name and Comment joined by a space otherwise.
func (r Record) Header() string {
	if r.Raw != "" {
		return r.Raw
	}
	if r.Comment == "" {
		return r.Name
	}
	return r.Name + " " + r.Comment
}

// Reader yields records lazily from a single forward-only stream.
//
// Headers start with '>' or '@'. Sequence lines run until the next line
// starting with '@', '+' or '>'. A '+' separator switches to quality lines,
// which are consumed until at least len(Seq) quality characters were seen;
// this keeps '@' and '+' usable as quality characters.
type Reader struct {
	sc         *bufio.Scanner
	pending    []byte
	hasPending bool
	err        error
}

// NewReader wraps r. Lines up to 64 MiB are accepted so unwrapped
// long reads fit on one line.
func NewReader(r io.Reader) *Reader {
	sc := bufio.NewScanner(r)
	const maxLine = 64 * 1024 * 1024
	buf := make([]byte, 64*1024)
	sc.Buffer(buf, maxLine)
	return &Reader{sc: sc}
}

func isMarker(line []byte, markers string) bool {
	return len(line) > 0 && bytes.IndexByte([]byte(markers), line[0]) >= 0
}

// Next returns the next record, or io.EOF once the stream is exhausted.
// Errors are sticky.
func (r *Reader) Next() (Record, error) {
	if r.err != nil {
		return Record{}, r.err
	}

	hdr, ok := r.pending, r.hasPending
	r.pending, r.hasPending = nil, false
	if !ok {
		for r.sc.Scan() {
			line := r.sc.Bytes()
			if isMarker(line, ">@") {
				hdr, ok = append([]byte(nil), bytes.TrimSpace(line)...), true
				break
			}
		}
		if err := r.sc.Err(); err != nil {
			return Record{}, r.fail(fmt.Errorf("seqio scan: %w", err))
		}
		if !ok {
			return Record{}, r.fail(io.EOF)
		}
	}
	raw := string(bytes.TrimSpace(hdr[1:]))
	name, comment := parseHeader(hdr[1:])

	var (
		seq  []byte
		term []byte
	)
	for r.sc.Scan() {
		line := r.sc.Bytes()
		if isMarker(line, "@+>") {
			term = append([]byte(nil), bytes.TrimSpace(line)...)
			break
		}
		seq = append(seq, bytes.TrimSpace(line)...)
	}
	if err := r.sc.Err(); err != nil {
		return Record{}, r.fail(fmt.Errorf("seqio scan: %w", err))
	}
	if seq == nil {
		seq = []byte{}
	}

	if term == nil || term[0] != '+' {
		if term != nil {
			r.pending, r.hasPending = term, true
		}
		return Record{Name: name, Comment: comment, Raw: raw, Seq: seq}, nil
	}

	qual := make([]byte, 0, len(seq))
	for r.sc.Scan() {
		qual = append(qual, bytes.TrimSpace(r.sc.Bytes())...)
		if len(qual) >= len(seq) {
			return Record{Name: name, Comment: comment, Raw: raw, Seq: seq, Qual: qual}, nil
		}
	}
	if err := r.sc.Err(); err != nil {
		return Record{}, r.fail(fmt.Errorf("seqio scan: %w", err))
	}
	// an empty read needs no quality line, even at end of input
	if len(seq) == 0 {
		return Record{Name: name, Comment: comment, Raw: raw, Seq: seq, Qual: qual}, nil
	}
	return Record{}, r.fail(fmt.Errorf("%w: %q has %d quality characters for %d bases",
		ErrTruncatedRecord, name, len(qual), len(seq)))
}

func (r *Reader) fail(err error) error {
	r.err = err
	return err
}

// ForEach calls fn for every remaining record. Cancellation via ctx is
// checked between records.
func (r *Reader) ForEach(ctx context.Context, fn func(Record) error) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		rec, err := r.Next()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
		if err := fn(rec); err != nil {
			return err
		}
	}
}

func parseHeader(hdr []byte) (name, comment string) {
	hdr = bytes.TrimSpace(hdr)
	if i := bytes.IndexAny(hdr, " \t"); i >= 0 {
		return string(hdr[:i]), string(bytes.TrimSpace(hdr[i+1:]))
	}
	return string(hdr), ""
}
