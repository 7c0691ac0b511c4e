package runner

import (
	"bufio"
	"bytes"
	"io"
	"sync"
	"time"

	"github.com/thedjpetersen/relay/progress"
	"github.com/thedjpetersen/relay/provider"
)

// runContext is the per-invocation bookkeeping for one streaming run:
// accumulated stdout/stderr, the partial-line buffer, parsed stream
// state, and activity timestamps. One instance per run, never shared
// across runs.
type runContext struct {
	mu           sync.Mutex
	drv          provider.Driver
	state        *provider.StreamState
	framer       lineFramer
	stdout       bytes.Buffer
	stderr       bytes.Buffer
	startTime    time.Time
	lastActivity time.Time
}

func newRunContext(drv provider.Driver, start time.Time) *runContext {
	return &runContext{
		drv:          drv,
		state:        provider.NewStreamState(),
		startTime:    start,
		lastActivity: start,
	}
}

// consumeStdout reads raw chunks, frames them into complete lines, feeds
// each line to the driver's parser, and reports progress per batch.
func (rc *runContext) consumeStdout(r io.Reader, reporter progress.Reporter) {
	if r == nil {
		return
	}

	buf := make([]byte, 32*1024)
	for {
		n, err := r.Read(buf)
		if n > 0 {
			chunk := string(buf[:n])

			rc.mu.Lock()
			rc.stdout.WriteString(chunk)
			lines := rc.framer.Feed(chunk)
			for _, line := range lines {
				rc.drv.ParseEvent(line, rc.state)
			}
			rc.lastActivity = time.Now()
			snap := rc.snapshotLocked()
			rc.mu.Unlock()

			if len(lines) > 0 {
				reporter.Progress(snap)
			}
		}
		if err != nil {
			break
		}
	}

	// Parse an unterminated final line, if the process emitted one.
	rc.mu.Lock()
	if line, ok := rc.framer.Flush(); ok {
		rc.drv.ParseEvent(line, rc.state)
	}
	snap := rc.snapshotLocked()
	rc.mu.Unlock()

	reporter.Progress(snap)
}

// consumeStderr captures stderr lines for diagnostics.
func (rc *runContext) consumeStderr(r io.Reader) {
	if r == nil {
		return
	}

	scanner := bufio.NewScanner(r)
	buf := make([]byte, 0, 64*1024)
	scanner.Buffer(buf, 1024*1024)

	for scanner.Scan() {
		rc.mu.Lock()
		rc.stderr.WriteString(scanner.Text())
		rc.stderr.WriteByte('\n')
		rc.lastActivity = time.Now()
		rc.mu.Unlock()
	}
}

// watchIdle warns through the reporter when no output has arrived for
// longer than idleThreshold. Advisory only; it never cancels the run.
func (rc *runContext) watchIdle(stop <-chan struct{}, reporter progress.Reporter) {
	ticker := time.NewTicker(idleCheckInterval)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			rc.mu.Lock()
			idle := time.Since(rc.lastActivity)
			rc.mu.Unlock()

			if idle > idleThreshold {
				reporter.Idle(idle)
			}
		}
	}
}

func (rc *runContext) snapshotLocked() progress.Snapshot {
	tools := make(map[string]int, len(rc.state.ToolCounts))
	for name, count := range rc.state.ToolCounts {
		tools[name] = count
	}
	return progress.Snapshot{
		Elapsed:  time.Since(rc.startTime),
		Lines:    rc.state.Lines,
		Tools:    tools,
		LastText: rc.state.LastText,
	}
}

// output returns the accumulated stdout and stderr.
func (rc *runContext) output() (stdout, stderr string) {
	rc.mu.Lock()
	defer rc.mu.Unlock()
	return rc.stdout.String(), rc.stderr.String()
}

// toolsUsed returns a copy of the per-tool invocation counts, or nil when
// no tools were used.
func (rc *runContext) toolsUsed() map[string]int {
	rc.mu.Lock()
	defer rc.mu.Unlock()

	if len(rc.state.ToolCounts) == 0 {
		return nil
	}
	tools := make(map[string]int, len(rc.state.ToolCounts))
	for name, count := range rc.state.ToolCounts {
		tools[name] = count
	}
	return tools
}

// lastText returns the most recent textual response.
func (rc *runContext) lastText() string {
	rc.mu.Lock()
	defer rc.mu.Unlock()
	return rc.state.LastText
}
