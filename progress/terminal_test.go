package progress

import (
	"strings"
	"testing"
	"time"
)

func TestTerminalRender(t *testing.T) {
	var buf strings.Builder
	term := NewTerminal(&buf)

	term.Progress(Snapshot{
		Elapsed: 5 * time.Second,
		Lines:   12,
		Tools:   map[string]int{"Read": 3, "Edit": 1},
	})

	out := buf.String()
	if !strings.HasPrefix(out, "\r") {
		t.Error("expected status line to start with carriage return")
	}
	if !strings.Contains(out, "12 events") {
		t.Errorf("expected event count in output, got %q", out)
	}
	if !strings.Contains(out, "Edit:1 Read:3") {
		t.Errorf("expected sorted tool summary, got %q", out)
	}
}

func TestTerminalErasesPreviousLine(t *testing.T) {
	var buf strings.Builder
	term := NewTerminal(&buf)

	term.Progress(Snapshot{Lines: 100, Tools: map[string]int{"Read": 10, "Edit": 5, "Bash": 2}})
	long := buf.Len()

	buf.Reset()
	term.Progress(Snapshot{Lines: 1})
	short := buf.String()

	// The shorter rendering must be padded out to cover the longer one.
	if !strings.HasSuffix(short, " ") {
		t.Errorf("expected trailing padding after a shorter render, got %q", short)
	}
	if len(short) < 2 || long == 0 {
		t.Errorf("unexpected render lengths: long=%d short=%d", long, len(short))
	}
}

func TestTerminalDoneClearsLine(t *testing.T) {
	var buf strings.Builder
	term := NewTerminal(&buf)

	term.Progress(Snapshot{Lines: 42})
	buf.Reset()
	term.Done()

	out := buf.String()
	if !strings.HasPrefix(out, "\r") || !strings.HasSuffix(out, "\r") {
		t.Errorf("expected Done to blank and reset the line, got %q", out)
	}
	if strings.Contains(out, "42") {
		t.Errorf("expected no content after Done, got %q", out)
	}
}

func TestTerminalIdle(t *testing.T) {
	var buf strings.Builder
	term := NewTerminal(&buf)

	term.Idle(90 * time.Second)
	if !strings.Contains(buf.String(), "no output for 90s") {
		t.Errorf("expected idle warning, got %q", buf.String())
	}
}

func TestSnapshotToolSummary(t *testing.T) {
	s := Snapshot{Tools: map[string]int{"Write": 2, "Bash": 7}}
	if got := s.ToolSummary(); got != "Bash:7 Write:2" {
		t.Errorf("expected 'Bash:7 Write:2', got %q", got)
	}

	if got := (Snapshot{}).ToolSummary(); got != "" {
		t.Errorf("expected empty summary, got %q", got)
	}
}

func TestNopReporter(t *testing.T) {
	var r Reporter = Nop{}
	r.Progress(Snapshot{})
	r.Idle(time.Second)
	r.Done()
}
