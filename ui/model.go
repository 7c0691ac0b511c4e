// Package ui provides the bubbletea model for watching a single run.
package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/thedjpetersen/relay/progress"
	"github.com/thedjpetersen/relay/runner"
)

// Messages

// SnapshotMsg delivers a progress snapshot from the running provider.
type SnapshotMsg progress.Snapshot

// IdleMsg signals that no output has arrived for a while.
type IdleMsg struct{ Since time.Duration }

// CompletedMsg delivers the final result.
type CompletedMsg struct{ Result runner.Result }

type tickMsg time.Time

// Model renders a live view of one provider run.
type Model struct {
	width  int
	height int

	providerName string
	modelLabel   string
	prompt       string

	spinner  spinner.Model
	start    time.Time
	snap     progress.Snapshot
	idleFor  time.Duration
	stopping bool

	result *runner.Result

	// cancel aborts the run context when the user quits early
	cancel func()
}

// NewModel creates the watch model for one run.
func NewModel(providerName, modelLabel, prompt string, cancel func()) Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(Purple)

	return Model{
		providerName: providerName,
		modelLabel:   modelLabel,
		prompt:       prompt,
		spinner:      s,
		start:        time.Now(),
		cancel:       cancel,
	}
}

// Result returns the final result, if the run completed.
func (m *Model) Result() *runner.Result {
	return m.result
}

// Init initializes the model.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, tickCmd())
}

func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Update handles messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			if m.result != nil {
				return m, tea.Quit
			}
			// Abort the run; completion still arrives as CompletedMsg.
			if !m.stopping && m.cancel != nil {
				m.stopping = true
				m.cancel()
			}
			return m, nil
		}
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tickMsg:
		return m, tickCmd()

	case SnapshotMsg:
		m.snap = progress.Snapshot(msg)
		m.idleFor = 0
		return m, nil

	case IdleMsg:
		m.idleFor = msg.Since
		return m, nil

	case CompletedMsg:
		result := msg.Result
		m.result = &result
		return m, tea.Quit
	}

	return m, nil
}

// View renders the UI.
func (m *Model) View() string {
	var b strings.Builder

	b.WriteString(TitleStyle.Render("relay"))
	b.WriteString(" ")
	b.WriteString(ProviderStyle.Render(m.providerName))
	b.WriteString(" ")
	b.WriteString(ModelStyle.Render(m.modelLabel))
	b.WriteString("\n")
	b.WriteString(HelpStyle.Render(truncate(m.prompt, 80)))
	b.WriteString("\n\n")

	b.WriteString(m.renderStatus())
	b.WriteString("\n")

	if text := m.snap.LastText; text != "" {
		b.WriteString(PanelStyle.Width(m.panelWidth()).Render(TextStyle.Render(truncate(text, 500))))
		b.WriteString("\n")
	}

	b.WriteString(HelpStyle.Render("q quit"))
	b.WriteString("\n")

	return b.String()
}

func (m *Model) renderStatus() string {
	if m.result != nil {
		if m.result.Success {
			return SucceededStyle.Render(fmt.Sprintf("✓ completed in %ds", int(m.result.Duration.Seconds())))
		}
		return FailedStyle.Render(fmt.Sprintf("✗ failed after %ds: %s",
			int(m.result.Duration.Seconds()), truncate(m.result.Error, 120)))
	}

	status := fmt.Sprintf("%s %s %s",
		m.spinner.View(),
		StatStyle.Render(fmt.Sprintf("%ds elapsed", int(time.Since(m.start).Seconds()))),
		StatStyle.Render(fmt.Sprintf("%d events", m.snap.Lines)),
	)
	if summary := m.snap.ToolSummary(); summary != "" {
		status += " " + ToolStyle.Render(summary)
	}
	if m.stopping {
		status += " " + StoppingStyle.Render("stopping...")
	} else if m.idleFor > 0 {
		status += " " + IdleStyle.Render(fmt.Sprintf("idle %ds", int(m.idleFor.Seconds())))
	}
	return status
}

func (m *Model) panelWidth() int {
	if m.width > 4 {
		return m.width - 4
	}
	return 76
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}
