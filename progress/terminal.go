package progress

import (
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/lipgloss"
)

var (
	elapsedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#06B6D4"))
	toolStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#9CA3AF"))
	idleStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#F59E0B"))
)

// Terminal renders run progress as a single status line that is rewritten
// in place. The previous rendering is erased by padding with spaces to its
// width, so the status never scrolls the terminal.
type Terminal struct {
	mu      sync.Mutex
	w       io.Writer
	lastLen int
}

// NewTerminal creates a Terminal writing to w.
func NewTerminal(w io.Writer) *Terminal {
	return &Terminal{w: w}
}

// Progress rewrites the status line with the latest snapshot.
func (t *Terminal) Progress(s Snapshot) {
	line := fmt.Sprintf("%s %s",
		elapsedStyle.Render(fmt.Sprintf("[%ds]", int(s.Elapsed.Seconds()))),
		fmt.Sprintf("%d events", s.Lines),
	)
	if summary := s.ToolSummary(); summary != "" {
		line += " " + toolStyle.Render(summary)
	}
	t.render(line)
}

// Idle appends an inactivity warning to the status line.
func (t *Terminal) Idle(since time.Duration) {
	t.render(idleStyle.Render(fmt.Sprintf("no output for %ds...", int(since.Seconds()))))
}

// Done clears the status line.
func (t *Terminal) Done() {
	t.render("")
}

func (t *Terminal) render(line string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	width := lipgloss.Width(line)
	pad := ""
	if t.lastLen > width {
		pad = strings.Repeat(" ", t.lastLen-width)
	}
	fmt.Fprintf(t.w, "\r%s%s", line, pad)
	if line == "" {
		fmt.Fprint(t.w, "\r")
	}
	t.lastLen = width
}
