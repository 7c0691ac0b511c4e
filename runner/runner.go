// Package runner executes provider CLIs as subprocesses and streams their
// stream-json output into a structured result.
package runner

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/thedjpetersen/relay/progress"
	"github.com/thedjpetersen/relay/provider"
)

const (
	// DefaultTimeout bounds a run when Options.Timeout is zero.
	DefaultTimeout = 30 * time.Minute

	idleCheckInterval = 30 * time.Second
	idleThreshold     = 60 * time.Second
)

// newCommand constructs the subprocess. Variable so tests can intercept
// process creation.
var newCommand = exec.CommandContext

// Options configures one run.
type Options struct {
	// ProjectRoot is the working directory for the subprocess
	ProjectRoot string

	// DryRun short-circuits to a synthetic success without spawning
	DryRun bool

	// Timeout is the maximum run time (0 = DefaultTimeout)
	Timeout time.Duration

	// Models selects per-provider models and modes
	Models provider.Options

	// Reporter receives progress updates (nil = discard)
	Reporter progress.Reporter
}

// Result is the outcome of one run. It is never mutated after Run returns.
// Success is true iff the subprocess exited with code 0.
type Result struct {
	RunID     string
	Provider  provider.ID
	Success   bool
	Output    string
	Error     string
	Duration  time.Duration
	Summary   string
	ToolsUsed map[string]int
}

// Run executes the provider CLI with the given prompt. All failures are
// carried in the Result; Run never panics and never returns an error to
// unwind through the caller.
func Run(ctx context.Context, id provider.ID, prompt string, opts Options) Result {
	start := time.Now()
	res := Result{
		RunID:    uuid.NewString(),
		Provider: id,
	}

	drv, err := provider.Lookup(id)
	if err != nil {
		res.Error = err.Error()
		return res
	}

	reporter := opts.Reporter
	if reporter == nil {
		reporter = progress.Nop{}
	}

	if opts.DryRun {
		res.Success = true
		res.Summary = fmt.Sprintf("dry run: %s %s",
			drv.ExecName(), strings.Join(drv.BuildArgs(prompt, opts.Models), " "))
		return res
	}

	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	cmd := newCommand(ctx, drv.ExecName(), drv.BuildArgs(prompt, opts.Models)...)
	setProcAttr(cmd)
	cmd.Dir = opts.ProjectRoot
	cmd.Env = append(os.Environ(), "NO_COLOR=1")
	cmd.Env = append(cmd.Env, drv.ExtraEnv()...)

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		res.Error = fmt.Sprintf("failed to create stdout pipe: %v", err)
		res.Duration = time.Since(start)
		return res
	}
	stderr, err := cmd.StderrPipe()
	if err != nil {
		res.Error = fmt.Sprintf("failed to create stderr pipe: %v", err)
		res.Duration = time.Since(start)
		return res
	}

	if err := cmd.Start(); err != nil {
		res.Error = fmt.Sprintf("failed to start %s: %v", drv.ExecName(), err)
		res.Duration = time.Since(start)
		return res
	}

	rc := newRunContext(drv, start)

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		rc.consumeStdout(stdout, reporter)
	}()
	go func() {
		defer wg.Done()
		rc.consumeStderr(stderr)
	}()

	stopIdle := make(chan struct{})
	go rc.watchIdle(stopIdle, reporter)

	// Drain the pipes before Wait closes them.
	wg.Wait()
	waitErr := cmd.Wait()

	close(stopIdle)
	reporter.Done()

	res.Duration = time.Since(start)
	res.Output, _ = rc.output()
	res.ToolsUsed = rc.toolsUsed()
	res.Summary = rc.lastText()

	if waitErr == nil {
		res.Success = true
		return res
	}

	res.Error = failureMessage(waitErr, rc)
	return res
}

// failureMessage prefers captured stderr over the bare exit status.
func failureMessage(waitErr error, rc *runContext) string {
	_, stderr := rc.output()
	if msg := strings.TrimSpace(stderr); msg != "" {
		return msg
	}

	var exitErr *exec.ExitError
	if errors.As(waitErr, &exitErr) {
		return fmt.Sprintf("exit code %d", exitErr.ExitCode())
	}
	return waitErr.Error()
}

// RunClaude runs the Claude Code provider.
func RunClaude(ctx context.Context, prompt string, opts Options) Result {
	return Run(ctx, provider.Claude, prompt, opts)
}

// RunGemini runs the Gemini CLI provider.
func RunGemini(ctx context.Context, prompt string, opts Options) Result {
	return Run(ctx, provider.Gemini, prompt, opts)
}

// RunCursor runs the Cursor Agent provider.
func RunCursor(ctx context.Context, prompt string, opts Options) Result {
	return Run(ctx, provider.Cursor, prompt, opts)
}

// RunCodex runs the Codex provider.
func RunCodex(ctx context.Context, prompt string, opts Options) Result {
	return Run(ctx, provider.Codex, prompt, opts)
}
