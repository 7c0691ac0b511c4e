package runner

import "strings"

// lineFramer reassembles newline-delimited lines from arbitrarily split
// chunks. A trailing partial line is retained until the chunk that
// completes it arrives, so splitting mid-line across chunk boundaries
// produces the same lines as delivering everything at once.
type lineFramer struct {
	pending string
}

// Feed appends chunk to the pending buffer and returns all complete lines.
func (f *lineFramer) Feed(chunk string) []string {
	f.pending += chunk

	if !strings.Contains(f.pending, "\n") {
		return nil
	}

	parts := strings.Split(f.pending, "\n")
	f.pending = parts[len(parts)-1]

	lines := make([]string, 0, len(parts)-1)
	for _, line := range parts[:len(parts)-1] {
		line = strings.TrimSuffix(line, "\r")
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

// Flush returns the unterminated final line, if any.
func (f *lineFramer) Flush() (string, bool) {
	line := strings.TrimSuffix(f.pending, "\r")
	f.pending = ""
	return line, line != ""
}
