package provider

import "strings"

// StreamState accumulates what a run's event stream has reported so far:
// how often each tool was invoked, the most recent textual response, and
// the number of lines seen. One instance lives for one run.
type StreamState struct {
	ToolCounts map[string]int
	LastText   string
	Lines      int
}

// NewStreamState creates an empty StreamState.
func NewStreamState() *StreamState {
	return &StreamState{
		ToolCounts: make(map[string]int),
	}
}

// CountTool records one invocation of the named tool.
func (s *StreamState) CountTool(name string) {
	if name == "" {
		return
	}
	s.ToolCounts[name]++
}

// SetText records text as the latest response if it is non-empty.
func (s *StreamState) SetText(text string) {
	text = strings.TrimSpace(text)
	if text != "" {
		s.LastText = text
	}
}
