package game

import (
	"strings"
	"testing"

	"plotterbird/plotter"
)

func TestDrawBoard_Idempotent(t *testing.T) {
	board := GenerateBoard(NewRand(3))
	a := strings.Join(DrawBoard(board, DefaultPipeSettings()), "")
	b := strings.Join(DrawBoard(board, DefaultPipeSettings()), "")
	if a != b {
		t.Fatalf("rendering the same board twice produced different commands")
	}
}

func TestDrawBoard_PipeOutline(t *testing.T) {
	board := Board{{X: 1900, GapTop: 1000, GapBottom: 3200}}
	got := DrawBoard(board, DefaultPipeSettings())
	want := []string{
		"SP1;",
		// 下管
		"PU;", "PA1500,0;", "PD;", "PA1500,800;", "PA2300,800;", "PA2300,0;",
		"PU;", "PA1500,800;", "PD;", "PA1400,800;", "PA1400,1000;", "PA2400,1000;", "PA2400,800;", "PA2300,800;", "PU;",
		// 上管
		"PU;", "PA1500,7650;", "PD;", "PA1500,3400;", "PA2300,3400;", "PA2300,7650;",
		"PU;", "PA1500,3400;", "PD;", "PA1400,3400;", "PA1400,3200;", "PA2400,3200;", "PA2400,3400;", "PA2300,3400;", "PU;",
	}
	if len(got) != len(want) {
		t.Fatalf("expected %d commands, got %d: %v", len(want), len(got), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("command %d: got %q, want %q", i, got[i], want[i])
		}
	}
}

func TestAnimations_FramedAndParked(t *testing.T) {
	for name, seq := range map[string][]string{"crash": CrashSequence(), "exit": ExitSequence()} {
		if seq[0] != plotter.PenUp {
			t.Fatalf("%s: expected to start with pen up, got %q", name, seq[0])
		}
		n := len(seq)
		tail := []string{plotter.PenUp, plotter.SelectPen(IdlePen), plotter.MoveTo(ParkX, ParkY)}
		for i, want := range tail {
			if seq[n-3+i] != want {
				t.Fatalf("%s: tail[%d] = %q, want %q", name, i, seq[n-3+i], want)
			}
		}
		for _, tok := range seq {
			if !strings.HasSuffix(tok, ";") {
				t.Fatalf("%s: token %q not terminated", name, tok)
			}
			if strings.HasPrefix(tok, "PA") && tok != plotter.MoveTo(ParkX, ParkY) {
				t.Fatalf("%s: unexpected absolute move %q", name, tok)
			}
		}
	}
}

func TestCrashSequence_Explosion(t *testing.T) {
	seq := CrashSequence()
	if seq[1] != "PR-270,-300;" || seq[2] != "PD;" || seq[3] != "PR-40,200;" {
		t.Fatalf("unexpected explosion opening: %v", seq[:4])
	}
	if len(seq) != 26 {
		t.Fatalf("expected 26 commands, got %d", len(seq))
	}
}

func TestStartSequence(t *testing.T) {
	got := strings.Join(StartSequence(PlayerState{X: StartX, Y: StartY}), "")
	if got != "SP2;PA0,3825;PD;" {
		t.Fatalf("unexpected start sequence %q", got)
	}
}
