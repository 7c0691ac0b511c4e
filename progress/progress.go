// Package progress separates run-progress reporting from the streaming
// executor so the executor can be tested without capturing terminal output.
package progress

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// Snapshot is one point-in-time view of a running provider.
type Snapshot struct {
	// Elapsed is the time since the run started
	Elapsed time.Duration

	// Lines is the number of output lines processed so far
	Lines int

	// Tools maps tool name to invocation count
	Tools map[string]int

	// LastText is the most recent textual response from the agent
	LastText string
}

// ToolSummary returns a compact "name:count" summary of tool usage,
// sorted by tool name. Returns "" when no tools were used.
func (s Snapshot) ToolSummary() string {
	if len(s.Tools) == 0 {
		return ""
	}

	names := make([]string, 0, len(s.Tools))
	for name := range s.Tools {
		names = append(names, name)
	}
	sort.Strings(names)

	parts := make([]string, 0, len(names))
	for _, name := range names {
		parts = append(parts, fmt.Sprintf("%s:%d", name, s.Tools[name]))
	}
	return strings.Join(parts, " ")
}

// Reporter receives progress updates during a run.
type Reporter interface {
	// Progress is called after each batch of output lines is processed
	Progress(s Snapshot)

	// Idle is called when no output has arrived for longer than the
	// inactivity threshold. Advisory only; the run continues.
	Idle(since time.Duration)

	// Done is called exactly once when the run finishes
	Done()
}

// Nop is a Reporter that discards all updates.
type Nop struct{}

func (Nop) Progress(Snapshot)    {}
func (Nop) Idle(time.Duration)   {}
func (Nop) Done()                {}
