// Package quality resizes quality strings to follow simulated sequences.
package quality

import "errors"

var (
	// ErrMissingQuality is returned for records that carried no quality.
	ErrMissingQuality = errors.New("quality: record has no quality string")
	// ErrEmptyQuality is returned when an empty quality has to grow.
	ErrEmptyQuality = errors.New("quality: cannot extend an empty quality string")
)

// Adjust returns qual resized to n characters: longer strings are
// truncated, shorter ones padded by repeating their last character.
// A nil qual means the record had none.
func Adjust(qual []byte, n int) ([]byte, error) {
	if qual == nil {
		return nil, ErrMissingQuality
	}
	if n <= len(qual) {
		return qual[:n:n], nil
	}
	if len(qual) == 0 {
		return nil, ErrEmptyQuality
	}
	out := make([]byte, n)
	copy(out, qual)
	last := qual[len(qual)-1]
	for i := len(qual); i < n; i++ {
		out[i] = last
	}
	return out, nil
}
