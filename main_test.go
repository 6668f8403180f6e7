package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// run 只能调用一次：它在 flag.CommandLine 上注册参数
func TestRun_SimulatedGameRecordsAndExitsZero(t *testing.T) {
	dir := t.TempDir()
	record := filepath.Join(dir, "plot.hpgl")

	prevArgs := os.Args
	t.Cleanup(func() { os.Args = prevArgs })
	os.Args = []string{"plotterbird", "-sim", "-seed", "5", "-log", filepath.Join(dir, "run.log"), record}

	if code := run(); code != 0 {
		t.Fatalf("expected exit code 0, got %d", code)
	}

	b, err := os.ReadFile(record)
	if err != nil {
		t.Fatalf("read record: %v", err)
	}
	out := string(b)
	if !strings.HasPrefix(out, "IN;SP1;") || !strings.HasSuffix(out, "PA-5000,0;OA;") {
		t.Fatalf("unexpected recorded stream: %q", out)
	}
}

func TestOpenChannel_CloseReleasesRecordFile(t *testing.T) {
	record := filepath.Join(t.TempDir(), "plot.hpgl")
	ch, closeCh, err := openChannel(record, true)
	if err != nil {
		t.Fatalf("openChannel returned error: %v", err)
	}
	if _, err := ch.Write([]byte("IN;")); err != nil {
		t.Fatalf("write: %v", err)
	}
	closeCh()
	if _, err := ch.Write([]byte("PU;")); err == nil {
		t.Fatalf("expected write after close to fail")
	}
	b, err := os.ReadFile(record)
	if err != nil || string(b) != "IN;" {
		t.Fatalf("expected record %q, got %q (%v)", "IN;", b, err)
	}
}
