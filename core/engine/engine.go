// core/engine/engine.go
package engine

import (
	"errors"
	"fmt"

	"readsim/core/errprofile"
	"readsim/core/mutate"
	"readsim/core/randsrc"
	"readsim/core/reference"
)

// Mode selects the generation strategy.
type Mode int

const (
	Plain Mode = iota
	ErrorModeled
)

func (m Mode) String() string {
	switch m {
	case Plain:
		return "plain"
	case ErrorModeled:
		return "error-modeled"
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// ParseMode accepts the String forms.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "plain":
		return Plain, nil
	case "error-modeled":
		return ErrorModeled, nil
	}
	return 0, fmt.Errorf("unknown mode %q", s)
}

// DefaultPolicy is the sampling policy each mode used historically:
// bounded windows for Plain, circular windows for ErrorModeled.
func (m Mode) DefaultPolicy() reference.Policy {
	if m == ErrorModeled {
		return reference.Wrap
	}
	return reference.Bounded
}

// Config holds simulation parameters.
type Config struct {
	Mode    Mode
	Policy  reference.Policy
	Profile errprofile.Profile // used by ErrorModeled only
}

// Engine simulates reads against one reference with one random source.
type Engine struct {
	cfg      Config
	sampler  *reference.Sampler
	injector *mutate.Injector
}

// New creates an Engine. ref must be non-empty; rng is shared by sampling
// and injection and must not be reseeded afterwards.
func New(cfg Config, ref []byte, rng randsrc.Rand) (*Engine, error) {
	if len(ref) == 0 {
		return nil, reference.ErrEmptyReference
	}
	e := &Engine{cfg: cfg, sampler: reference.NewSampler(ref, cfg.Policy, rng)}
	if cfg.Mode == ErrorModeled {
		if err := cfg.Profile.Validate(); err != nil {
			return nil, err
		}
		e.injector = mutate.New(cfg.Profile, rng)
	}
	return e, nil
}

// Config returns the configuration the engine was built with.
func (e *Engine) Config() Config { return e.cfg }

// SimulateRead returns the simulated sequence for a read shaped like seq.
// Only len(seq) is used. An empty result means the read is skipped; a
// bounded window that does not fit the reference yields one.
func (e *Engine) SimulateRead(seq []byte) ([]byte, error) {
	win, err := e.sampler.Sample(len(seq))
	if errors.Is(err, reference.ErrSampleTooLong) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if e.injector != nil {
		return e.injector.Inject(win), nil
	}
	return win, nil
}
