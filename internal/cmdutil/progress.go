package cmdutil

import (
	"io"

	"github.com/cheggaaa/pb/v3"
)

const progressTmpl = `{{ cycle . "|" "/" "-" "\\" }} {{ counters . }} reads {{ speed . "%s reads/s" }} {{ etime . }}`

// Progress is a read counter drawn on stderr. The zero value and nil are no-ops.
type Progress struct {
	bar *pb.ProgressBar
}

// StartProgress starts a counter on dst when enabled.
func StartProgress(dst io.Writer, enabled bool) *Progress {
	if !enabled {
		return &Progress{}
	}
	bar := pb.New(0).SetTemplateString(progressTmpl).SetWriter(dst)
	return &Progress{bar: bar.Start()}
}

// Tick counts one read.
func (p *Progress) Tick() {
	if p != nil && p.bar != nil {
		p.bar.Increment()
	}
}

// Finish stops redrawing.
func (p *Progress) Finish() {
	if p != nil && p.bar != nil {
		p.bar.Finish()
	}
}
