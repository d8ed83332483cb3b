package cli

import (
	"bytes"
	"strings"
	"testing"

	"schaak/internal/service"
)

// readerFunc scripts the sub-prompt answers handleNewGame asks for.
func scriptedReader(answers ...string) func(string) string {
	i := 0
	return func(string) string {
		if i >= len(answers) {
			return ""
		}
		a := answers[i]
		i++
		return a
	}
}

func newTestHandler(t *testing.T, answers ...string) (*Handler, *bytes.Buffer) {
	t.Helper()
	svc := service.New(nil, 1)
	t.Cleanup(func() { svc.Close() })

	var buf bytes.Buffer
	h := NewHandler(svc, NewView(&buf), scriptedReader(answers...))
	return h, &buf
}

func TestHandleQuit(t *testing.T) {
	h, _ := newTestHandler(t)
	if h.HandleLine("quit") {
		t.Error("quit should end the loop")
	}
	if !h.HandleLine("help") {
		t.Error("help should keep the loop running")
	}
}

func TestNewGameAndMove(t *testing.T) {
	h, buf := newTestHandler(t, "h", "h")
	h.HandleLine("new")

	if !strings.Contains(buf.String(), "Game started.") {
		t.Fatalf("new game output: %q", buf.String())
	}
	if !strings.Contains(h.Prompt(), "w") {
		t.Errorf("prompt %q should show White on the move", h.Prompt())
	}

	buf.Reset()
	h.HandleLine("e2e4")
	if strings.Contains(buf.String(), "Error") {
		t.Fatalf("legal move rejected: %q", buf.String())
	}
	if !strings.Contains(h.Prompt(), "b") {
		t.Errorf("prompt %q should show Black on the move", h.Prompt())
	}

	buf.Reset()
	h.HandleLine("e2e4")
	if !strings.Contains(buf.String(), "Error") {
		t.Error("moving White's pawn on Black's turn should report an error")
	}
}

func TestComputerTurnGuards(t *testing.T) {
	h, buf := newTestHandler(t, "c", "h")
	h.HandleLine("new")

	if !strings.Contains(h.Prompt(), "ENTER") {
		t.Errorf("prompt %q should hint at the computer move", h.Prompt())
	}

	buf.Reset()
	h.HandleLine("e2e4")
	if !strings.Contains(buf.String(), "not a human player's turn") {
		t.Errorf("typed move on the computer's turn: %q", buf.String())
	}

	buf.Reset()
	h.HandleLine("")
	if !strings.Contains(buf.String(), "Computer (w):") {
		t.Errorf("empty line should run the computer move: %q", buf.String())
	}
}

func TestTargetsCommand(t *testing.T) {
	h, buf := newTestHandler(t, "h", "h")
	h.HandleLine("new")

	buf.Reset()
	h.HandleLine("moves e2")
	out := buf.String()
	if !strings.Contains(out, "e2 can move to:") ||
		!strings.Contains(out, "e3") || !strings.Contains(out, "e4") {
		t.Errorf("targets output: %q", out)
	}

	buf.Reset()
	h.HandleLine("moves")
	if !strings.Contains(buf.String(), "Usage: moves") {
		t.Errorf("missing-argument output: %q", buf.String())
	}

	buf.Reset()
	h.HandleLine("moves z9")
	if !strings.Contains(buf.String(), "Error") {
		t.Errorf("bad square output: %q", buf.String())
	}
}

func TestPromoteCommand(t *testing.T) {
	h, buf := newTestHandler(t, "h", "h")
	h.HandleLine("new")

	buf.Reset()
	h.HandleLine("promote r")
	if !strings.Contains(buf.String(), "[R]") {
		t.Errorf("promote output: %q", buf.String())
	}

	buf.Reset()
	h.HandleLine("promote k")
	if !strings.Contains(buf.String(), "Error") {
		t.Errorf("promoting to king should report an error: %q", buf.String())
	}
}

func TestCommandsWithoutGame(t *testing.T) {
	h, buf := newTestHandler(t)
	for _, line := range []string{"e2e4", "moves e2", "promote q", "history"} {
		buf.Reset()
		h.HandleLine(line)
		if !strings.Contains(buf.String(), "No active game") {
			t.Errorf("%q without a game: %q", line, buf.String())
		}
	}
}
