package output

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"syscall"
	"testing"

	"readsim/core/seqio"
)

const payload = "@r1\nACGT\n+\nIIII\n"

func TestCreateNestedDirs(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "a", "b", "c", "out.fq")
	s, err := Create(fn, nil)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := io.WriteString(s, payload); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	got, err := os.ReadFile(fn)
	if err != nil || string(got) != payload {
		t.Fatalf("read back %q err=%v", got, err)
	}
	if s.Bytes() != int64(len(payload)) || len(s.Digest()) != 64 {
		t.Fatalf("bytes=%d digest=%q", s.Bytes(), s.Digest())
	}
}

func TestCompressedRoundTrip(t *testing.T) {
	dir := t.TempDir()
	var digests []string
	for _, name := range []string{"out.fq", "out.fq.gz", "out.fq.xz", "out.fq.sz"} {
		fn := filepath.Join(dir, name)
		s, err := Create(fn, nil)
		if err != nil {
			t.Fatalf("%s: create: %v", name, err)
		}
		_, _ = io.WriteString(s, payload)
		if err := s.Close(); err != nil {
			t.Fatalf("%s: close: %v", name, err)
		}
		digests = append(digests, s.Digest())

		rc, err := seqio.Open(fn)
		if err != nil {
			t.Fatalf("%s: open: %v", name, err)
		}
		got, err := io.ReadAll(rc)
		_ = rc.Close()
		if err != nil || string(got) != payload {
			t.Fatalf("%s: read back %q err=%v", name, got, err)
		}
	}
	for _, d := range digests[1:] {
		if d != digests[0] {
			t.Fatal("digest must cover the uncompressed stream")
		}
	}
}

func TestStdout(t *testing.T) {
	var buf bytes.Buffer
	s, err := Create("-", &buf)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	_, _ = io.WriteString(s, payload)
	if err := s.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	if buf.String() != payload {
		t.Fatalf("stdout got %q", buf.String())
	}
}

func TestReaderGone(t *testing.T) {
	r, w := io.Pipe()
	_ = r.Close()
	_, err := w.Write([]byte(payload))
	if !ReaderGone(fmt.Errorf("write stdout: %w", err)) {
		t.Fatalf("closed pipe not recognized: %v", err)
	}
	if !ReaderGone(&os.PathError{Op: "write", Path: "/dev/stdout", Err: syscall.EPIPE}) {
		t.Fatal("EPIPE not recognized")
	}
	if ReaderGone(nil) || ReaderGone(io.EOF) || ReaderGone(os.ErrPermission) {
		t.Fatal("false positive")
	}
}
