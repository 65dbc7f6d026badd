package output

import (
	"errors"
	"io"
	"syscall"
)

// ReaderGone reports whether err means the process reading our stdout
// went away, as `readsim ... - | head` does after a few records. The run
// counts as successful in that case.
func ReaderGone(err error) bool {
	if err == nil {
		return false
	}
	for _, gone := range []error{syscall.EPIPE, syscall.ECONNRESET, io.ErrClosedPipe} {
		if errors.Is(err, gone) {
			return true
		}
	}
	return false
}
