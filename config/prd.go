package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Task statuses tracked in a PRD file.
const (
	StatusTodo       = "todo"
	StatusInProgress = "in_progress"
	StatusDone       = "done"
	StatusFailed     = "failed"
)

// Task is one work item in a PRD file.
type Task struct {
	ID     string `yaml:"id"`
	Title  string `yaml:"title"`
	Prompt string `yaml:"prompt"`
	Status string `yaml:"status,omitempty"`

	// Optional per-task provider override
	Provider string `yaml:"provider,omitempty"`
	Model    string `yaml:"model,omitempty"`
	Mode     string `yaml:"mode,omitempty"`
}

// Pending reports whether the task still needs to run.
func (t *Task) Pending() bool {
	return t.Status == "" || t.Status == StatusTodo || t.Status == StatusInProgress
}

// Override returns the task-level override layer, or nil when the task
// sets nothing.
func (t *Task) Override() *Override {
	if t.Provider == "" && t.Model == "" && t.Mode == "" {
		return nil
	}
	return &Override{Provider: t.Provider, Model: t.Model, Mode: t.Mode}
}

// PRD is a task-description file with an optional file-level provider
// override and a list of tasks.
type PRD struct {
	Name string `yaml:"name"`

	// Optional file-level provider override
	Provider string `yaml:"provider"`
	Model    string `yaml:"model"`
	Mode     string `yaml:"mode"`

	Tasks []Task `yaml:"tasks"`
}

// Override returns the file-level override layer, or nil when the file
// sets nothing.
func (p *PRD) Override() *Override {
	if p.Provider == "" && p.Model == "" && p.Mode == "" {
		return nil
	}
	return &Override{Provider: p.Provider, Model: p.Model, Mode: p.Mode}
}

// Task returns the task with the given ID.
func (p *PRD) Task(id string) (*Task, error) {
	for i := range p.Tasks {
		if p.Tasks[i].ID == id {
			return &p.Tasks[i], nil
		}
	}
	return nil, fmt.Errorf("task %s not found in PRD", id)
}

// LoadPRD reads and parses a PRD file.
func LoadPRD(path string) (*PRD, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read PRD file: %w", err)
	}

	var prd PRD
	if err := yaml.Unmarshal(data, &prd); err != nil {
		return nil, fmt.Errorf("failed to parse PRD file: %w", err)
	}

	return &prd, nil
}

// SavePRD writes the PRD back to path, preserving task statuses.
func SavePRD(path string, prd *PRD) error {
	data, err := yaml.Marshal(prd)
	if err != nil {
		return fmt.Errorf("failed to encode PRD file: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write PRD file: %w", err)
	}
	return nil
}
