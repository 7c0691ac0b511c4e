// Package selection provides task selection logic for PRD-driven runs.
package selection

import (
	"errors"
	"fmt"

	"github.com/thedjpetersen/relay/config"
)

// ErrNoTaskAvailable is returned when no suitable task can be found.
var ErrNoTaskAvailable = errors.New("no task available matching the selection criteria")

// Selector picks the task to run from a PRD file.
// A specific task ID takes precedence; otherwise the first pending task
// (status empty, todo, or in_progress) in file order is chosen.
type Selector struct {
	prd    *config.PRD
	taskID string
}

// NewSelector creates a Selector over prd. taskID is optional - pass an
// empty string to select the next pending task.
func NewSelector(prd *config.PRD, taskID string) *Selector {
	return &Selector{
		prd:    prd,
		taskID: taskID,
	}
}

// SelectTask selects a task based on the configured criteria.
// The selection logic follows this priority:
//  1. If taskID is provided, fetch that specific task regardless of status
//  2. Otherwise, return the first pending task in file order
func (s *Selector) SelectTask() (*config.Task, error) {
	if s.taskID != "" {
		task, err := s.prd.Task(s.taskID)
		if err != nil {
			return nil, fmt.Errorf("%v: %w", err, ErrNoTaskAvailable)
		}
		return task, nil
	}

	for i := range s.prd.Tasks {
		if s.prd.Tasks[i].Pending() {
			return &s.prd.Tasks[i], nil
		}
	}

	return nil, ErrNoTaskAvailable
}
