package appshell

import (
	"context"
	"io"
	"testing"
)

func TestExecDefaultsToHelp(t *testing.T) {
	var got []string
	code := Exec(func(_ context.Context, argv []string, _, _ io.Writer) int {
		got = argv
		return 4
	}, nil, io.Discard, io.Discard)
	if code != 4 || len(got) != 1 || got[0] != "--help" {
		t.Fatalf("code=%d argv=%v", code, got)
	}
}
