package workflow

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/thedjpetersen/relay/config"
)

func setupPRD(t *testing.T) (string, *config.PRD) {
	t.Helper()

	content := `tasks:
  - id: task-1
    title: First task
    prompt: do the first thing
  - id: task-2
    title: Second task
    prompt: do the second thing
`
	path := filepath.Join(t.TempDir(), "tasks.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	prd, err := config.LoadPRD(path)
	if err != nil {
		t.Fatal(err)
	}
	return path, prd
}

func TestMarkCompletePersists(t *testing.T) {
	path, prd := setupPRD(t)

	wf := NewWorkflow(path, prd)
	wf.SetOutput(io.Discard)

	if err := wf.MarkComplete([]string{"task-1"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	reloaded, err := config.LoadPRD(path)
	if err != nil {
		t.Fatal(err)
	}
	if reloaded.Tasks[0].Status != config.StatusDone {
		t.Errorf("expected task-1 done, got %q", reloaded.Tasks[0].Status)
	}
	if reloaded.Tasks[1].Status != "" {
		t.Errorf("expected task-2 untouched, got %q", reloaded.Tasks[1].Status)
	}
}

func TestStatusTransitions(t *testing.T) {
	path, prd := setupPRD(t)
	wf := NewWorkflow(path, prd)
	wf.SetOutput(io.Discard)

	steps := []struct {
		fn     func([]string) error
		status string
	}{
		{wf.StartWorking, config.StatusInProgress},
		{wf.MarkFailed, config.StatusFailed},
		{wf.ResetTask, config.StatusTodo},
	}

	for _, step := range steps {
		if err := step.fn([]string{"task-2"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		task, _ := prd.Task("task-2")
		if task.Status != step.status {
			t.Errorf("expected status %q, got %q", step.status, task.Status)
		}
	}
}

func TestUpdateContinuesPastMissingTask(t *testing.T) {
	path, prd := setupPRD(t)
	wf := NewWorkflow(path, prd)
	wf.SetOutput(io.Discard)

	err := wf.MarkComplete([]string{"task-99", "task-1"})
	if err == nil {
		t.Fatal("expected aggregate error for missing task")
	}
	if !strings.Contains(err.Error(), "task-99") {
		t.Errorf("expected error to name the missing task, got %v", err)
	}

	// The valid task was still updated and persisted.
	reloaded, loadErr := config.LoadPRD(path)
	if loadErr != nil {
		t.Fatal(loadErr)
	}
	if reloaded.Tasks[0].Status != config.StatusDone {
		t.Errorf("expected task-1 done despite the failure, got %q", reloaded.Tasks[0].Status)
	}
}

func TestEmptyTaskListIsNoop(t *testing.T) {
	path, prd := setupPRD(t)
	wf := NewWorkflow(path, prd)

	if err := wf.MarkComplete(nil); err != nil {
		t.Errorf("expected nil error for empty task list, got %v", err)
	}
}

func TestStatusMessagesWritten(t *testing.T) {
	path, prd := setupPRD(t)
	wf := NewWorkflow(path, prd)

	var out strings.Builder
	wf.SetOutput(&out)

	if err := wf.MarkComplete([]string{"task-1"}); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), "task-1") || !strings.Contains(out.String(), "done") {
		t.Errorf("expected status message, got %q", out.String())
	}
}
