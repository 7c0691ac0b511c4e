// Package workflow provides task status management for PRD files.
// It transitions tasks between statuses and writes the file back,
// suitable for both single-task and batch runs.
package workflow

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/thedjpetersen/relay/config"
)

// Workflow manages task status transitions within one PRD file.
type Workflow struct {
	path string
	prd  *config.PRD
	out  io.Writer
}

// NewWorkflow creates a Workflow for the already-loaded PRD at path.
func NewWorkflow(path string, prd *config.PRD) *Workflow {
	return &Workflow{
		path: path,
		prd:  prd,
		out:  os.Stdout,
	}
}

// SetOutput configures where workflow status messages are written.
// Use io.Discard to silence output (e.g., when a TUI is active).
func (w *Workflow) SetOutput(out io.Writer) {
	w.out = out
}

// StartWorking transitions the specified tasks to "in_progress" status.
func (w *Workflow) StartWorking(taskIDs []string) error {
	return w.updateTasksStatus(taskIDs, config.StatusInProgress, "Starting work on")
}

// MarkComplete transitions the specified tasks to "done" status.
func (w *Workflow) MarkComplete(taskIDs []string) error {
	return w.updateTasksStatus(taskIDs, config.StatusDone, "Marking complete")
}

// MarkFailed transitions the specified tasks to "failed" status.
func (w *Workflow) MarkFailed(taskIDs []string) error {
	return w.updateTasksStatus(taskIDs, config.StatusFailed, "Marking failed")
}

// ResetTask transitions the specified tasks back to "todo" status.
func (w *Workflow) ResetTask(taskIDs []string) error {
	return w.updateTasksStatus(taskIDs, config.StatusTodo, "Resetting")
}

// updateTasksStatus handles status updates for all tasks. It processes
// each task ID, continues past individual failures, persists the PRD
// once, and returns an aggregate error if anything failed.
func (w *Workflow) updateTasksStatus(taskIDs []string, status, actionVerb string) error {
	if len(taskIDs) == 0 {
		return nil
	}

	var errorMessages []string
	updated := false

	for _, taskID := range taskIDs {
		w.printf("%s task %s...\n", actionVerb, taskID)

		task, err := w.prd.Task(taskID)
		if err != nil {
			w.printf("  Failed to update task %s: %v\n", taskID, err)
			errorMessages = append(errorMessages, fmt.Sprintf("task %s: %v", taskID, err))
			continue
		}

		task.Status = status
		updated = true
		w.printf("  Task %s (%s) -> %s\n", taskID, task.Title, status)
	}

	if updated {
		if err := config.SavePRD(w.path, w.prd); err != nil {
			errorMessages = append(errorMessages, err.Error())
		}
	}

	if len(errorMessages) > 0 {
		return errors.New("failed to update tasks: " + strings.Join(errorMessages, "; "))
	}

	return nil
}

func (w *Workflow) printf(format string, args ...any) {
	if w.out == nil {
		return
	}
	fmt.Fprintf(w.out, format, args...)
}
