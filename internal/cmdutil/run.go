package cmdutil

import (
	"context"
	"io"

	"readsim/core/seqio"
	"readsim/internal/pipeline"
	"readsim/internal/writers"
)

// RunStream runs the shared read loop and serializes every kept read with
// format into w. It returns the pass statistics and the first error encountered.
func RunStream(
	ctx context.Context,
	cfg pipeline.Config,
	src pipeline.RecordSource,
	sim pipeline.Simulator,
	format writers.Format,
	w io.Writer,
) (pipeline.Stats, error) {
	cfg.NeedQuality = cfg.NeedQuality || format.NeedQuality
	return pipeline.ForEachRead(ctx, cfg, src, sim, func(rec seqio.Record) error {
		return format.Write(w, rec)
	})
}
