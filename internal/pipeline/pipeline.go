// internal/pipeline/pipeline.go
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"io"

	"readsim/core/quality"
	"readsim/core/seqio"
)

// Config controls the read loop.
type Config struct {
	NeedQuality bool   // resize quality to the simulated length; missing quality is fatal
	Tick        func() // called once per input read (progress display); may be nil
}

// Stats summarizes one pass.
type Stats struct {
	Read     int   `json:"reads_in"`
	Emitted  int   `json:"reads_out"`
	Skipped  int   `json:"reads_skipped"`
	BasesIn  int64 `json:"bases_in"`
	BasesOut int64 `json:"bases_out"`
}

// ForEachRead simulates every read of src and passes the surviving ones to
// visit. Output records keep the input header verbatim. It returns the
// first error encountered (including context cancellation) together with
// the counts up to that point.
func ForEachRead(
	ctx context.Context,
	cfg Config,
	src RecordSource,
	sim Simulator,
	visit func(seqio.Record) error,
) (Stats, error) {
	var st Stats
	for {
		select {
		case <-ctx.Done():
			return st, ctx.Err()
		default:
		}
		rec, err := src.Next()
		if errors.Is(err, io.EOF) {
			return st, nil
		}
		if err != nil {
			return st, err
		}
		st.Read++
		st.BasesIn += int64(len(rec.Seq))
		if cfg.Tick != nil {
			cfg.Tick()
		}

		seq, err := sim.SimulateRead(rec.Seq)
		if err != nil {
			return st, fmt.Errorf("read %q: %w", rec.Name, err)
		}
		if len(seq) == 0 {
			st.Skipped++
			continue
		}

		out := seqio.Record{Name: rec.Name, Comment: rec.Comment, Raw: rec.Raw, Seq: seq}
		if cfg.NeedQuality {
			if out.Qual, err = quality.Adjust(rec.Qual, len(seq)); err != nil {
				return st, fmt.Errorf("read %q: %w", rec.Name, err)
			}
		}
		if err := visit(out); err != nil {
			return st, err
		}
		st.Emitted++
		st.BasesOut += int64(len(seq))
	}
}
