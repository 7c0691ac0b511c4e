package provider

import "encoding/json"

// codexDriver runs the Codex CLI.
type codexDriver struct{}

func (codexDriver) ID() ID              { return Codex }
func (codexDriver) DisplayName() string { return "Codex" }
func (codexDriver) ExecName() string    { return "codex" }

func (codexDriver) BuildArgs(prompt string, opts Options) []string {
	args := []string{
		"exec",
		"--json",
		"--skip-git-repo-check",
	}
	if opts.CodexModel != "" {
		args = append(args, "-m", opts.CodexModel)
	}
	return append(args, prompt)
}

// ParseEvent handles the JSONL events of codex exec --json: completed
// items are either agent messages (text) or tool activity such as
// command_execution, which is counted under the item type. Lines that
// are not JSON are skipped.
func (codexDriver) ParseEvent(line string, state *StreamState) {
	state.Lines++

	var event struct {
		Type string `json:"type"`
		Item struct {
			Type    string `json:"type"`
			Content string `json:"content"`
		} `json:"item"`
		Error struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.Unmarshal([]byte(line), &event); err != nil {
		return
	}

	switch event.Type {
	case "item.completed":
		switch event.Item.Type {
		case "agent_message":
			state.SetText(event.Item.Content)
		case "":
		default:
			state.CountTool(event.Item.Type)
		}
	case "turn.failed":
		state.SetText(event.Error.Message)
	}
}

func (codexDriver) ModelLabel(opts Options) string {
	if opts.CodexModel != "" {
		return opts.CodexModel
	}
	return "default"
}

func (codexDriver) ExtraEnv() []string { return nil }
