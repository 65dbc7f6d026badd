// Package randsrc holds the random source shared by reference sampling and
// error injection. A run seeds exactly one source and hands it to every
// consumer; nothing in the simulator reaches for the math/rand globals.
package randsrc

import "math/rand"

// Rand is the subset of *rand.Rand the simulators draw from.
// Tests substitute scripted implementations to force offsets and outcomes.
type Rand interface {
	Intn(n int) int
	Float64() float64
}

// New returns a deterministic source for seed.
func New(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}
