package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/thedjpetersen/relay/progress"
)

// sender is the subset of tea.Program the reporter needs.
type sender interface {
	Send(msg tea.Msg)
}

// Reporter forwards run progress into a bubbletea program.
type Reporter struct {
	program sender
}

// NewReporter creates a Reporter sending to p.
func NewReporter(p *tea.Program) *Reporter {
	return &Reporter{program: p}
}

// Progress forwards a snapshot to the program.
func (r *Reporter) Progress(s progress.Snapshot) {
	r.program.Send(SnapshotMsg(s))
}

// Idle forwards an inactivity warning to the program.
func (r *Reporter) Idle(since time.Duration) {
	r.program.Send(IdleMsg{Since: since})
}

// Done is a no-op; completion arrives with the result as CompletedMsg.
func (r *Reporter) Done() {}
