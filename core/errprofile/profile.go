// Package errprofile estimates per-base mismatch, insertion and deletion
// rates from aligned reads.
//
// Alignment storage formats stay outside this package: anything able to
// hand out one Alignment per call satisfies Source.
package errprofile

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyAlignment is returned when no aligned base was seen.
	ErrEmptyAlignment = errors.New("errprofile: empty or unusable alignment input")
	// ErrInvalidProfile is returned for rates that cannot drive injection.
	ErrInvalidProfile = errors.New("errprofile: invalid rates")
)

// Profile holds the per-base event probabilities. Events are mutually
// exclusive per base, so the three rates must sum to at most 1.
type Profile struct {
	Mismatch  float64 `json:"mismatch_rate"`
	Insertion float64 `json:"insertion_rate"`
	Deletion  float64 `json:"deletion_rate"`
}

// MatchRate is the probability that a base is copied unchanged.
func (p Profile) MatchRate() float64 {
	return 1 - p.Mismatch - p.Insertion - p.Deletion
}

func (p Profile) Validate() error {
	for _, r := range []struct {
		name string
		v    float64
	}{{"mismatch", p.Mismatch}, {"insertion", p.Insertion}, {"deletion", p.Deletion}} {
		if r.v < 0 || r.v > 1 || r.v != r.v {
			return fmt.Errorf("%w: %s rate %v outside [0,1]", ErrInvalidProfile, r.name, r.v)
		}
	}
	if sum := p.Mismatch + p.Insertion + p.Deletion; sum > 1 {
		return fmt.Errorf("%w: rates sum to %v", ErrInvalidProfile, sum)
	}
	return nil
}

// Counts are the raw event tallies behind a Profile.
type Counts struct {
	TotalBases int64 `json:"total_bases"`
	Mismatches int64 `json:"mismatches"`
	Insertions int64 `json:"insertions"`
	Deletions  int64 `json:"deletions"`
	Records    int64 `json:"records"`
}

// Add tallies one alignment. Alignments without sequence are ignored and
// Add reports false for them.
//
// Soft-clipped bases are counted as mismatches. This approximates the
// substitution rate from clipping instead of comparing bases.
func (c *Counts) Add(a Alignment) bool {
	if a.SeqLen <= 0 {
		return false
	}
	c.Records++
	c.TotalBases += int64(a.SeqLen)
	for _, op := range a.Ops {
		switch op.Kind {
		case OpInsertion:
			c.Insertions += int64(op.Len)
		case OpDeletion:
			c.Deletions += int64(op.Len)
		case OpSoftClip:
			c.Mismatches += int64(op.Len)
		}
	}
	return true
}

// FromCounts turns tallies into rates.
func FromCounts(c Counts) (Profile, error) {
	if c.TotalBases == 0 {
		return Profile{}, ErrEmptyAlignment
	}
	total := float64(c.TotalBases)
	return Profile{
		Mismatch:  float64(c.Mismatches) / total,
		Insertion: float64(c.Insertions) / total,
		Deletion:  float64(c.Deletions) / total,
	}, nil
}
