// internal/writers/registry.go
package writers

import (
	"fmt"
	"io"
	"sort"

	"readsim/core/seqio"
)

// Format is a named record serializer.
type Format struct {
	Name        string
	NeedQuality bool // records must carry a quality string
	Write       func(w io.Writer, rec seqio.Record) error
}

var formats = map[string]Format{}

// Register adds f (idempotent last-wins).
func Register(f Format) { formats[f.Name] = f }

// Lookup returns the format registered under name.
func Lookup(name string) (Format, error) {
	f, ok := formats[name]
	if !ok {
		return Format{}, fmt.Errorf("unknown output format %q (no writer registered)", name)
	}
	return f, nil
}

// Names lists registered formats in sorted order.
func Names() []string {
	out := make([]string, 0, len(formats))
	for n := range formats {
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}
