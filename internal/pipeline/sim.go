// internal/pipeline/sim.go
package pipeline

import "readsim/core/seqio"

// Simulator is the minimal capability the pipeline needs.
// Any engine (including fakes in tests) can satisfy this.
type Simulator interface {
	SimulateRead(seq []byte) ([]byte, error)
}

// RecordSource yields input reads and io.EOF at the end.
type RecordSource interface {
	Next() (seqio.Record, error)
}
