package writers

import (
	"fmt"
	"io"

	"readsim/core/quality"
	"readsim/core/seqio"
)

func init() {
	Register(Format{Name: "fastq", NeedQuality: true, Write: WriteFASTQ})
	Register(Format{Name: "fasta", Write: WriteFASTA})
}

// WriteFASTQ writes rec as four lines: @header, sequence, "+", quality.
func WriteFASTQ(w io.Writer, rec seqio.Record) error {
	if !rec.HasQuality() {
		return fmt.Errorf("fastq %q: %w", rec.Name, quality.ErrMissingQuality)
	}
	_, err := fmt.Fprintf(w, "@%s\n%s\n+\n%s\n", rec.Header(), rec.Seq, rec.Qual)
	return err
}

// WriteFASTA writes rec as ">header" and one sequence line.
func WriteFASTA(w io.Writer, rec seqio.Record) error {
	_, err := fmt.Fprintf(w, ">%s\n%s\n", rec.Header(), rec.Seq)
	return err
}
