// internal/runutil/runutil.go
package runutil

import (
	"fmt"
	"os"
	"path/filepath"

	"readsim/core/engine"
	"readsim/core/reference"
	"readsim/core/seqio"
)

// ResolvePolicy decides the sampling policy from the mode and the
// --sampling value, returning warnings worth showing.
// Rules:
//   - "auto" keeps the mode default (plain=bounded, error-modeled=wrap)
//   - "bounded" under error-modeled is honored but reads longer than the
//     reference will be skipped instead of wrapped
func ResolvePolicy(mode engine.Mode, sampling string) (reference.Policy, []string, error) {
	if sampling == "" || sampling == "auto" {
		return mode.DefaultPolicy(), nil, nil
	}
	p, err := reference.ParsePolicy(sampling)
	if err != nil {
		return 0, nil, err
	}
	var warns []string
	if mode == engine.ErrorModeled && p == reference.Bounded {
		warns = append(warns, "--sampling bounded with an alignment file: reads longer than the reference are skipped")
	}
	return p, warns, nil
}

// CheckInputs verifies that every input path (other than "-") exists and
// is a regular file.
func CheckInputs(paths ...string) error {
	for _, p := range paths {
		if p == "" || p == "-" {
			continue
		}
		fi, err := os.Stat(p)
		if err != nil {
			return fmt.Errorf("%w: %v", seqio.ErrInputNotFound, err)
		}
		if fi.IsDir() {
			return fmt.Errorf("%w: %s is a directory", seqio.ErrInputNotFound, p)
		}
	}
	return nil
}

// SamePath reports whether a and b name the same file after cleaning.
// "-" never collides.
func SamePath(a, b string) bool {
	if a == "-" || b == "-" {
		return false
	}
	aa, errA := filepath.Abs(a)
	bb, errB := filepath.Abs(b)
	if errA != nil || errB != nil {
		return filepath.Clean(a) == filepath.Clean(b)
	}
	return aa == bb
}
