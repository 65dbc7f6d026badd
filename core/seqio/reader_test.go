package seqio

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"
)

func readAll(t *testing.T, data string) []Record {
	t.Helper()
	r := NewReader(strings.NewReader(data))
	var out []Record
	for {
		rec, err := r.Next()
		if errors.Is(err, io.EOF) {
			return out
		}
		if err != nil {
			t.Fatalf("next: %v", err)
		}
		out = append(out, rec)
	}
}

func TestReaderFASTQ(t *testing.T) {
	recs := readAll(t, "@r1 run=7\nACGT\n+\nIIII\n@r2\nGG\n+r2\n#@\n")
	if len(recs) != 2 {
		t.Fatalf("want 2 records, got %d", len(recs))
	}
	if recs[0].Name != "r1" || recs[0].Comment != "run=7" || string(recs[0].Seq) != "ACGT" || string(recs[0].Qual) != "IIII" {
		t.Fatalf("bad first record: %+v", recs[0])
	}
	if recs[0].Header() != "r1 run=7" {
		t.Fatalf("header: %q", recs[0].Header())
	}
	// quality may start with '@'
	if string(recs[1].Qual) != "#@" {
		t.Fatalf("bad second quality: %q", recs[1].Qual)
	}
}

func TestReaderMultiLine(t *testing.T) {
	recs := readAll(t, "@long\nACGT\nTTGA\n+\nIIIII\nIII\n")
	if len(recs) != 1 {
		t.Fatalf("want 1 record, got %d", len(recs))
	}
	if string(recs[0].Seq) != "ACGTTTGA" || string(recs[0].Qual) != "IIIIIIII" {
		t.Fatalf("bad record: seq=%q qual=%q", recs[0].Seq, recs[0].Qual)
	}
}

func TestReaderFASTA(t *testing.T) {
	recs := readAll(t, "junk before\n>s1 desc\nAC\nGT\n>s2\nNN\n")
	if len(recs) != 2 {
		t.Fatalf("want 2 records, got %d", len(recs))
	}
	for _, r := range recs {
		if r.HasQuality() {
			t.Fatalf("FASTA record %q should have no quality", r.Name)
		}
	}
	if string(recs[0].Seq) != "ACGT" || recs[1].Name != "s2" || string(recs[1].Seq) != "NN" {
		t.Fatalf("bad records: %+v", recs)
	}
}

func TestReaderEmptySequence(t *testing.T) {
	recs := readAll(t, "@e\n+\n\n@f\nA\n+\nI\n")
	if len(recs) != 2 {
		t.Fatalf("want 2 records, got %d", len(recs))
	}
	if len(recs[0].Seq) != 0 || !recs[0].HasQuality() || len(recs[0].Qual) != 0 {
		t.Fatalf("bad empty record: %+v", recs[0])
	}
	if recs[1].Name != "f" {
		t.Fatalf("second record lost: %+v", recs[1])
	}
}

func TestReaderTruncated(t *testing.T) {
	r := NewReader(strings.NewReader("@r1\nACGT\n+\nII\n"))
	_, err := r.Next()
	if !errors.Is(err, ErrTruncatedRecord) {
		t.Fatalf("want ErrTruncatedRecord, got %v", err)
	}
	if _, again := r.Next(); !errors.Is(again, ErrTruncatedRecord) {
		t.Fatalf("error should be sticky, got %v", again)
	}
}

func TestReaderEmptyTrailingRecord(t *testing.T) {
	recs := readAll(t, "@a\nACGT\n+\nIIII\n@b\n+\n")
	if len(recs) != 2 {
		t.Fatalf("want 2 records, got %d", len(recs))
	}
	b := recs[1]
	if b.Name != "b" || len(b.Seq) != 0 || !b.HasQuality() || len(b.Qual) != 0 {
		t.Fatalf("bad empty record: %+v", b)
	}
}

func TestReaderKeepsRawHeader(t *testing.T) {
	recs := readAll(t, "@r1\trun=7  ch=2\nAC\n+\nII\n")
	if recs[0].Name != "r1" || recs[0].Comment != "run=7  ch=2" {
		t.Fatalf("bad split: %+v", recs[0])
	}
	if recs[0].Header() != "r1\trun=7  ch=2" {
		t.Fatalf("header: %q", recs[0].Header())
	}
}

func TestReaderNoHeader(t *testing.T) {
	if recs := readAll(t, "ACGT\nTTTT\n"); len(recs) != 0 {
		t.Fatalf("want no records, got %d", len(recs))
	}
}

func TestForEachCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	n := 0
	err := NewReader(strings.NewReader("@a\nA\n+\nI\n")).ForEach(ctx, func(Record) error {
		n++
		return nil
	})
	if !errors.Is(err, context.Canceled) || n != 0 {
		t.Fatalf("want canceled with 0 records, got err=%v n=%d", err, n)
	}
}
