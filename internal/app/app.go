// internal/app/app.go
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"readsim/core/engine"
	"readsim/core/randsrc"
	"readsim/core/reference"
	"readsim/core/seqio"
	"readsim/internal/cli"
	"readsim/internal/cmdutil"
	"readsim/internal/output"
	"readsim/internal/pipeline"
	"readsim/internal/report"
	"readsim/internal/runutil"
	"readsim/internal/writers"
)

// Exit codes.
const (
	exitOK       = 0
	exitUsage    = 2
	exitFailure  = 3
	exitCanceled = 130
)

func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	opts, err := cli.Parse(argv, stdout, stderr)
	if errors.Is(err, cli.ErrExit) {
		return exitOK
	}
	if err != nil {
		_, _ = fmt.Fprintf(stderr, "readsim: %v\n", err)
		_, _ = fmt.Fprintln(stderr, "run 'readsim --help' for usage")
		return exitUsage
	}

	level, err := cmdutil.ParseLevel(opts.LogLevel)
	if err != nil {
		_, _ = fmt.Fprintf(stderr, "readsim: %v\n", err)
		return exitUsage
	}
	log := cmdutil.NewLogger(stderr, level, opts.LogFormat, opts.Quiet)

	policy, warns, err := runutil.ResolvePolicy(opts.Mode(), opts.Sampling)
	if err != nil {
		_, _ = fmt.Fprintf(stderr, "readsim: %v\n", err)
		return exitUsage
	}
	for _, w := range warns {
		cmdutil.Warnf(stderr, opts.Quiet, "%s", w)
	}

	if err := simulate(parent, opts, policy, stdout, stderr, log); err != nil {
		return exitCode(err, stderr, log)
	}
	return exitOK
}

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}

func exitCode(err error, stderr io.Writer, log *slog.Logger) int {
	switch {
	case output.ReaderGone(err):
		return exitOK
	case errors.Is(err, context.Canceled):
		log.Warn("interrupted")
		return exitCanceled
	}
	_, _ = fmt.Fprintf(stderr, "readsim: %v\n", err)
	return exitFailure
}

func simulate(ctx context.Context, opts cli.Options, policy reference.Policy, stdout, stderr io.Writer, log *slog.Logger) (err error) {
	if err := runutil.CheckInputs(opts.Input, opts.Reference, opts.Alignment); err != nil {
		return err
	}
	format, err := writers.Lookup(opts.Format)
	if err != nil {
		return err
	}

	sum := report.NewSummary(time.Now())
	sum.Seed, sum.Mode, sum.Sampling, sum.Format = opts.Seed, opts.Mode().String(), policy.String(), format.Name
	sum.Input, sum.Reference, sum.Alignment, sum.Output = opts.Input, opts.Reference, opts.Alignment, opts.Output
	log = log.With("run_id", sum.RunID)

	rng := randsrc.New(opts.Seed)

	log.Info("loading reference", "path", opts.Reference)
	ref, err := reference.Load(ctx, opts.Reference)
	if err != nil {
		return err
	}
	sum.ReferenceLength = len(ref)
	log.Debug("reference loaded", "bases", len(ref))

	cfg := engine.Config{Mode: opts.Mode(), Policy: policy}
	if cfg.Mode == engine.ErrorModeled {
		p, counts, cached, err := loadProfile(ctx, opts, log)
		if err != nil {
			return err
		}
		cfg.Profile = p
		sum.Profile, sum.ProfileCounts, sum.ProfileCached = &p, &counts, cached
		log.Info("error profile",
			"mismatch_rate", p.Mismatch, "insertion_rate", p.Insertion,
			"deletion_rate", p.Deletion, "cached", cached)
	}

	eng, err := engine.New(cfg, ref, rng)
	if err != nil {
		return err
	}

	in, err := seqio.Open(opts.Input)
	if err != nil {
		return err
	}
	defer in.Close()

	sink, err := output.Create(opts.Output, stdout)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := sink.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close %s: %w", opts.Output, cerr)
		}
	}()

	log.Info("simulating reads", "input", opts.Input, "output", opts.Output,
		"mode", cfg.Mode, "sampling", policy, "seed", opts.Seed)
	bar := cmdutil.StartProgress(stderr, opts.Progress && !opts.Quiet)
	stats, err := cmdutil.RunStream(ctx, pipeline.Config{Tick: bar.Tick}, seqio.NewReader(in), eng, format, sink)
	bar.Finish()
	if err != nil {
		return err
	}
	if err := sink.Close(); err != nil {
		return fmt.Errorf("close %s: %w", opts.Output, err)
	}

	sum.Stats, sum.Finished = stats, time.Now()
	sum.OutputBytes, sum.OutputBLAKE3 = sink.Bytes(), sink.Digest()
	log.Info("done", "reads_in", stats.Read, "reads_out", stats.Emitted,
		"reads_skipped", stats.Skipped, "bases_out", stats.BasesOut, "blake3", sum.OutputBLAKE3)

	if opts.Summary != "" {
		if err := sum.Write(opts.Summary, stdout); err != nil {
			return fmt.Errorf("summary %s: %w", opts.Summary, err)
		}
	}
	return nil
}
