package game

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestInitLogger_LevelAndSession(t *testing.T) {
	prev := Log
	t.Cleanup(func() { Log = prev })

	path := filepath.Join(t.TempDir(), "plotterbird.log")
	if err := InitLogger(path, "session-1", zapcore.InfoLevel); err != nil {
		t.Fatalf("InitLogger returned error: %v", err)
	}
	Log.Debug("tick detail")
	Log.Info("game start")
	SyncLogger()

	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	out := string(b)
	if !strings.Contains(out, "game start") || !strings.Contains(out, "session-1") {
		t.Fatalf("expected info line with session, got %q", out)
	}
	if strings.Contains(out, "tick detail") {
		t.Fatalf("debug line written at info level: %q", out)
	}
}

func TestAnnounceInput_LevelFollowsTerminal(t *testing.T) {
	prev := Log
	t.Cleanup(func() { Log = prev })

	core, logs := observer.New(zapcore.DebugLevel)
	Log = zap.New(core).Sugar()

	AnnounceInput(true)
	AnnounceInput(false)

	entries := logs.All()
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].Level != zapcore.InfoLevel || !strings.Contains(entries[0].Message, "terminal") {
		t.Fatalf("terminal prompt: got %v %q", entries[0].Level, entries[0].Message)
	}
	if entries[1].Level != zapcore.DebugLevel || !strings.Contains(entries[1].Message, "piped") {
		t.Fatalf("pipe prompt: got %v %q", entries[1].Level, entries[1].Message)
	}
}
