// internal/cli/options.go
package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/alecthomas/kong"

	"readsim/core/engine"
	"readsim/internal/runutil"
	"readsim/internal/version"
)

// ErrExit is returned when --help or --version already produced the
// requested output and the program should stop with status 0.
var ErrExit = errors.New("exit requested")

const description = `Simulate long reads: keep the names, lengths and qualities of an
experimental read set, draw the bases from a reference genome, and
optionally apply an error profile estimated from a SAM/BAM alignment.

  readsim <reads> <reference> <output>              plain resampling
  readsim <reads> <reference> <alignment> <output>  error-modeled resampling`

// Options holds all CLI flags and arguments.
type Options struct {
	Paths []string `arg:"" name:"path" help:"Input reads, reference genome, optional SAM/BAM alignment, output path."`

	Seed     int64  `default:"519" env:"READSIM_SEED" help:"Random seed; equal seeds reproduce identical output."`
	Sampling string `enum:"auto,bounded,wrap" default:"auto" help:"Window placement: auto (plain=bounded, alignment=wrap), bounded, wrap."`
	Format   string `enum:"fastq,fasta" default:"fastq" help:"Output record format."`

	Summary      string `type:"path" placeholder:"FILE" help:"Write a JSON run summary to FILE ('-' for stdout)."`
	ProfileCache string `name:"profile-cache" type:"path" placeholder:"DB" env:"READSIM_PROFILE_CACHE" help:"SQLite cache of error profiles keyed by alignment digest."`

	LogLevel  string `name:"log-level" enum:"debug,info,warn,error" default:"info" help:"Log level."`
	LogFormat string `name:"log-format" enum:"text,json" default:"text" help:"Log output format."`
	Quiet     bool   `short:"q" help:"Only log errors."`
	Progress  bool   `help:"Show a read counter on stderr."`

	Version kong.VersionFlag `short:"v" help:"Print version and exit."`

	// Resolved from Paths.
	Input     string `kong:"-"`
	Reference string `kong:"-"`
	Alignment string `kong:"-"`
	Output    string `kong:"-"`
}

// Mode reports the generation mode implied by the positional paths.
func (o Options) Mode() engine.Mode {
	if o.Alignment != "" {
		return engine.ErrorModeled
	}
	return engine.Plain
}

// Parse parses argv. Help and version output go to stdout and yield ErrExit.
func Parse(argv []string, stdout, stderr io.Writer) (Options, error) {
	var opt Options
	exited := false
	parser, err := kong.New(&opt,
		kong.Name("readsim"),
		kong.Description(description),
		kong.Writers(stdout, stderr),
		kong.Vars{"version": "readsim version " + version.Version},
		kong.Exit(func(int) { exited = true }),
	)
	if err != nil {
		return opt, err
	}
	_, err = parser.Parse(argv)
	if exited {
		return opt, ErrExit
	}
	if err != nil {
		return opt, err
	}
	return opt, opt.resolve()
}

func (o *Options) resolve() error {
	switch len(o.Paths) {
	case 3:
		o.Input, o.Reference, o.Output = o.Paths[0], o.Paths[1], o.Paths[2]
	case 4:
		o.Input, o.Reference, o.Alignment, o.Output = o.Paths[0], o.Paths[1], o.Paths[2], o.Paths[3]
	default:
		return fmt.Errorf("expected 3 or 4 paths (reads, reference, [alignment,] output), got %d", len(o.Paths))
	}
	if o.Output == "-" && o.Summary == "-" {
		return errors.New("--summary - conflicts with output to stdout")
	}
	for _, in := range []string{o.Input, o.Reference, o.Alignment} {
		if in != "" && runutil.SamePath(in, o.Output) {
			return fmt.Errorf("output %s would overwrite an input", o.Output)
		}
	}
	if o.Input == "-" && o.Reference == "-" {
		return errors.New("reads and reference cannot both be read from stdin")
	}
	if o.Alignment == "-" {
		return errors.New("the alignment file cannot be read from stdin")
	}
	return nil
}
