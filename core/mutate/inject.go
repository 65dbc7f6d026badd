// Package mutate applies a per-base error profile to a sequence.
package mutate

import (
	"readsim/core/errprofile"
	"readsim/core/randsrc"
)

var alphabet = [4]byte{'A', 'C', 'G', 'T'}

// Injector mutates sequences with one uniform draw per base. With r the
// draw, the first matching interval wins:
//
//	r < mismatch                        substitute a different base
//	r < mismatch+insertion              keep the base, append a random one
//	r < mismatch+insertion+deletion     drop the base
//	otherwise                           keep the base
type Injector struct {
	rng randsrc.Rand

	subCut float64
	insCut float64
	delCut float64
}

// New builds an Injector for p. The caller guarantees p.Validate() == nil.
func New(p errprofile.Profile, rng randsrc.Rand) *Injector {
	return &Injector{
		rng:    rng,
		subCut: p.Mismatch,
		insCut: p.Mismatch + p.Insertion,
		delCut: p.Mismatch + p.Insertion + p.Deletion,
	}
}

// Inject returns a mutated copy of seq; seq itself is not modified.
func (in *Injector) Inject(seq []byte) []byte {
	out := make([]byte, 0, len(seq)+len(seq)/16)
	for _, b := range seq {
		out = in.InjectBase(out, b)
	}
	return out
}

// InjectBase appends the outcome for base b to dst.
func (in *Injector) InjectBase(dst []byte, b byte) []byte {
	r := in.rng.Float64()
	switch {
	case r < in.subCut:
		return append(dst, in.substitute(b))
	case r < in.insCut:
		return append(dst, b, alphabet[in.rng.Intn(len(alphabet))])
	case r < in.delCut:
		return dst
	}
	return append(dst, b)
}

// substitute picks uniformly among the three other bases. Bases outside
// the alphabet (N, lowercase) are replaced by any of the four.
func (in *Injector) substitute(b byte) byte {
	idx := -1
	for i, a := range alphabet {
		if a == b {
			idx = i
			break
		}
	}
	if idx < 0 {
		return alphabet[in.rng.Intn(len(alphabet))]
	}
	j := in.rng.Intn(len(alphabet) - 1)
	if j >= idx {
		j++
	}
	return alphabet[j]
}
