// Package alignment adapts SAM and BAM files read with biogo/hts to the
// errprofile.Source capability.
package alignment

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/biogo/hts/bam"
	"github.com/biogo/hts/sam"

	"readsim/core/errprofile"
	"readsim/core/seqio"
)

// Reader yields one errprofile.Alignment per SAM/BAM record.
type Reader struct {
	read    func() (*sam.Record, error)
	closers []io.Closer
}

// IsSAM reports whether path names SAM text (optionally compressed).
func IsSAM(path string) bool {
	p := strings.ToLower(path)
	for _, ext := range []string{".sam", ".sam.gz", ".sam.xz", ".sam.sz"} {
		if strings.HasSuffix(p, ext) {
			return true
		}
	}
	return false
}

// Open reads path as SAM text when IsSAM says so and as BAM otherwise.
func Open(path string) (*Reader, error) {
	if IsSAM(path) {
		rc, err := seqio.Open(path)
		if err != nil {
			return nil, err
		}
		r, err := NewSAM(rc)
		if err != nil {
			_ = rc.Close()
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		r.closers = append(r.closers, rc)
		return r, nil
	}

	fh, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", seqio.ErrInputNotFound, err)
	}
	r, err := NewBAM(fh)
	if err != nil {
		_ = fh.Close()
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	r.closers = append(r.closers, fh)
	return r, nil
}

// NewBAM reads BGZF-compressed BAM from r.
func NewBAM(r io.Reader) (*Reader, error) {
	br, err := bam.NewReader(r, 1)
	if err != nil {
		return nil, err
	}
	return &Reader{read: br.Read, closers: []io.Closer{br}}, nil
}

// NewSAM reads SAM text from r.
func NewSAM(r io.Reader) (*Reader, error) {
	sr, err := sam.NewReader(r)
	if err != nil {
		return nil, err
	}
	return &Reader{read: sr.Read}, nil
}

// Next returns the next alignment or io.EOF.
func (r *Reader) Next() (errprofile.Alignment, error) {
	rec, err := r.read()
	if err != nil {
		return errprofile.Alignment{}, err
	}
	return Convert(rec), nil
}

// Close releases the underlying readers and files.
func (r *Reader) Close() error {
	var err error
	for _, c := range r.closers {
		if cerr := c.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}
	return err
}

// Convert maps a SAM record onto the estimator's view.
func Convert(rec *sam.Record) errprofile.Alignment {
	a := errprofile.Alignment{
		SeqLen: rec.Seq.Length,
		Ops:    make([]errprofile.Op, 0, len(rec.Cigar)),
	}
	for _, co := range rec.Cigar {
		a.Ops = append(a.Ops, errprofile.Op{Kind: kindOf(co.Type()), Len: co.Len()})
	}
	return a
}

func kindOf(t sam.CigarOpType) errprofile.OpKind {
	switch t {
	case sam.CigarMatch, sam.CigarEqual, sam.CigarMismatch:
		return errprofile.OpMatch
	case sam.CigarInsertion:
		return errprofile.OpInsertion
	case sam.CigarDeletion:
		return errprofile.OpDeletion
	case sam.CigarSoftClipped:
		return errprofile.OpSoftClip
	}
	return errprofile.OpOther
}
