package errprofile

import (
	"context"
	"errors"
	"io"
)

// OpKind is the alignment operation class the estimator distinguishes.
type OpKind uint8

const (
	OpMatch OpKind = iota
	OpInsertion
	OpDeletion
	OpSoftClip
	OpOther // hard clip, skip, padding: not counted
)

// Op is one (operation, length) pair of an alignment.
type Op struct {
	Kind OpKind
	Len  int
}

// Alignment is the minimal view of one aligned read.
type Alignment struct {
	SeqLen int
	Ops    []Op
}

// Source yields alignments one per call and io.EOF at the end.
type Source interface {
	Next() (Alignment, error)
}

// Estimate drains src and returns the rate profile with its counts.
// Cancellation via ctx is checked between records.
func Estimate(ctx context.Context, src Source) (Profile, Counts, error) {
	var c Counts
	for {
		select {
		case <-ctx.Done():
			return Profile{}, c, ctx.Err()
		default:
		}
		a, err := src.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return Profile{}, c, err
		}
		c.Add(a)
	}
	p, err := FromCounts(c)
	return p, c, err
}
