package reference

import (
	"errors"
	"fmt"

	"readsim/core/randsrc"
)

// ErrSampleTooLong is returned by bounded sampling when the requested
// window is longer than the reference.
var ErrSampleTooLong = errors.New("reference: sample longer than reference")

// Policy selects how windows are placed on the reference.
type Policy int

const (
	// Bounded places the window fully inside the reference.
	Bounded Policy = iota
	// Wrap treats the reference as circular.
	Wrap
)

func (p Policy) String() string {
	switch p {
	case Bounded:
		return "bounded"
	case Wrap:
		return "wrap"
	}
	return fmt.Sprintf("Policy(%d)", int(p))
}

// ParsePolicy maps "bounded" and "wrap" to a Policy.
func ParsePolicy(s string) (Policy, error) {
	switch s {
	case "bounded":
		return Bounded, nil
	case "wrap":
		return Wrap, nil
	}
	return 0, fmt.Errorf("unknown sampling policy %q", s)
}

// Sampler draws windows from an immutable reference.
type Sampler struct {
	ref    []byte
	policy Policy
	rng    randsrc.Rand
}

func NewSampler(ref []byte, policy Policy, rng randsrc.Rand) *Sampler {
	return &Sampler{ref: ref, policy: policy, rng: rng}
}

// Sample returns a window of n bases at a random start.
//
// Bounded: start is uniform in [0, len(ref)-n]; n > len(ref) yields
// ErrSampleTooLong. Wrap: start is uniform in [0, len(ref)], inclusive of
// len(ref) itself.
func (s *Sampler) Sample(n int) ([]byte, error) {
	if n < 0 {
		return nil, fmt.Errorf("reference: negative sample length %d", n)
	}
	if s.policy == Wrap {
		return s.SampleAt(s.rng.Intn(len(s.ref)+1), n)
	}
	if n > len(s.ref) {
		return nil, fmt.Errorf("%w: %d > %d", ErrSampleTooLong, n, len(s.ref))
	}
	return s.SampleAt(s.rng.Intn(len(s.ref)-n+1), n)
}

// SampleAt returns the window of n bases starting at start. Under Wrap the
// window continues from the head of the reference as often as needed, so
// the result always has n bases.
func (s *Sampler) SampleAt(start, n int) ([]byte, error) {
	size := len(s.ref)
	if n < 0 || start < 0 || start > size {
		return nil, fmt.Errorf("reference: window [%d,+%d) outside [0,%d]", start, n, size)
	}
	if s.policy == Bounded {
		if start+n > size {
			return nil, fmt.Errorf("%w: window [%d,%d) past end %d", ErrSampleTooLong, start, start+n, size)
		}
		return append([]byte(nil), s.ref[start:start+n]...), nil
	}

	out := make([]byte, 0, n)
	if n == 0 {
		return out, nil
	}
	if size == 0 {
		return nil, ErrEmptyReference
	}
	end := start + n
	if end > size {
		end = size
	}
	out = append(out, s.ref[start:end]...)
	for len(out) < n {
		k := n - len(out)
		if k > size {
			k = size
		}
		out = append(out, s.ref[:k]...)
	}
	return out, nil
}
