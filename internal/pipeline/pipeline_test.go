package pipeline

import (
	"context"
	"errors"
	"strings"
	"testing"

	"readsim/core/engine"
	"readsim/core/quality"
	"readsim/core/randsrc"
	"readsim/core/reference"
	"readsim/core/seqio"
)

// lengthSim returns n copies of 'A' where n is a scripted function of the input length.
type lengthSim struct{ f func(int) int }

func (s lengthSim) SimulateRead(seq []byte) ([]byte, error) {
	return []byte(strings.Repeat("A", s.f(len(seq)))), nil
}

func collect(t *testing.T, cfg Config, input string, sim Simulator) ([]seqio.Record, Stats, error) {
	t.Helper()
	var out []seqio.Record
	st, err := ForEachRead(context.Background(), cfg, seqio.NewReader(strings.NewReader(input)), sim,
		func(r seqio.Record) error {
			out = append(out, r)
			return nil
		})
	return out, st, err
}

func TestSkipsEmptyAndCounts(t *testing.T) {
	input := "@a\nACGT\n+\nIIII\n@b\nAC\n+\nII\n@c\nACGTAC\n+\nIIIIII\n"
	// reads of length 2 come out empty
	sim := lengthSim{func(n int) int {
		if n == 2 {
			return 0
		}
		return n + 1
	}}
	ticks := 0
	out, st, err := collect(t, Config{NeedQuality: true, Tick: func() { ticks++ }}, input, sim)
	if err != nil {
		t.Fatalf("pipeline: %v", err)
	}
	if len(out) != 2 || out[0].Name != "a" || out[1].Name != "c" {
		t.Fatalf("unexpected output %+v", out)
	}
	for _, r := range out {
		if len(r.Qual) != len(r.Seq) {
			t.Fatalf("%s: quality length %d != sequence length %d", r.Name, len(r.Qual), len(r.Seq))
		}
	}
	want := Stats{Read: 3, Emitted: 2, Skipped: 1, BasesIn: 12, BasesOut: 12}
	if st != want || ticks != 3 {
		t.Fatalf("stats %+v ticks %d, want %+v ticks 3", st, ticks, want)
	}
}

func TestEmptyTrailingReadSkipped(t *testing.T) {
	sim := lengthSim{func(n int) int { return n }}
	out, st, err := collect(t, Config{NeedQuality: true}, "@a\tx  y\nACGT\n+\nIIII\n@b\n+\n", sim)
	if err != nil {
		t.Fatalf("pipeline: %v", err)
	}
	if len(out) != 1 || out[0].Header() != "a\tx  y" {
		t.Fatalf("unexpected output %+v", out)
	}
	want := Stats{Read: 2, Emitted: 1, Skipped: 1, BasesIn: 4, BasesOut: 4}
	if st != want {
		t.Fatalf("stats %+v, want %+v", st, want)
	}
}

func TestMissingQuality(t *testing.T) {
	sim := lengthSim{func(n int) int { return n }}
	_, _, err := collect(t, Config{NeedQuality: true}, ">a\nACGT\n", sim)
	if !errors.Is(err, quality.ErrMissingQuality) {
		t.Fatalf("want ErrMissingQuality, got %v", err)
	}
	// not needed: FASTA in, FASTA out
	out, _, err := collect(t, Config{}, ">a\nACGT\n", sim)
	if err != nil || len(out) != 1 || out[0].Qual != nil {
		t.Fatalf("unexpected: %+v %v", out, err)
	}
}

func TestEndToEndForcedOffset(t *testing.T) {
	eng, err := engine.New(engine.Config{Mode: engine.Plain, Policy: reference.Bounded},
		[]byte("TTTTACGTACGTTTTT"), fixedStart(4))
	if err != nil {
		t.Fatalf("engine: %v", err)
	}
	out, _, err := collect(t, Config{NeedQuality: true}, "@r1\nACGTACGT\n+\nIIIIIIII\n", eng)
	if err != nil {
		t.Fatalf("pipeline: %v", err)
	}
	if len(out) != 1 || string(out[0].Seq) != "ACGTACGT" || string(out[0].Qual) != "IIIIIIII" {
		t.Fatalf("unexpected %+v", out)
	}
}

func TestDeterministicWithSeed(t *testing.T) {
	input := strings.Repeat("@r\nACGTACGTACGTAAAAAAAAAAAAAAAAAAAAAAAAAA\n+\nIIIIIIIIIIIIIIIIIIIIIIIIIIIIIIIIIIIIII\n", 25)
	run := func() string {
		eng, _ := engine.New(engine.Config{Mode: engine.Plain, Policy: reference.Wrap},
			[]byte(strings.Repeat("GATTACA", 9)), randsrc.New(519))
		out, _, err := collect(t, Config{NeedQuality: true}, input, eng)
		if err != nil {
			t.Fatalf("pipeline: %v", err)
		}
		var b strings.Builder
		for _, r := range out {
			b.Write(r.Seq)
		}
		return b.String()
	}
	if run() != run() {
		t.Fatal("same seed produced different output")
	}
}

func TestCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := ForEachRead(ctx, Config{}, seqio.NewReader(strings.NewReader(">a\nA\n")),
		lengthSim{func(n int) int { return n }}, func(seqio.Record) error { return nil })
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("want context.Canceled, got %v", err)
	}
}

type fixedStart int

func (f fixedStart) Intn(int) int     { return int(f) }
func (f fixedStart) Float64() float64 { return 0 }
