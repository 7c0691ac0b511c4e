package provider

import "encoding/json"

// claudeDriver runs the Claude Code CLI.
type claudeDriver struct{}

func (claudeDriver) ID() ID              { return Claude }
func (claudeDriver) DisplayName() string { return "Claude Code" }
func (claudeDriver) ExecName() string    { return "claude" }

// BuildArgs uses stream-json output for real-time events instead of
// --print, which buffers until exit.
func (claudeDriver) BuildArgs(prompt string, opts Options) []string {
	args := []string{
		"-p",
		"--output-format", "stream-json",
		"--verbose",
		"--dangerously-skip-permissions",
	}
	if opts.ClaudeModel != "" {
		args = append(args, "--model", opts.ClaudeModel)
	}
	return append(args, prompt)
}

// ParseEvent handles Claude's stream-json protocol: assistant messages
// carry content blocks where tool_use blocks name the invoked tool and
// text blocks carry the response; the final result event repeats the
// answer. Lines that are not JSON are skipped.
func (claudeDriver) ParseEvent(line string, state *StreamState) {
	state.Lines++

	var msg map[string]interface{}
	if err := json.Unmarshal([]byte(line), &msg); err != nil {
		return
	}

	msgType, _ := msg["type"].(string)

	switch msgType {
	case "assistant":
		message, ok := msg["message"].(map[string]interface{})
		if !ok {
			return
		}
		content, ok := message["content"].([]interface{})
		if !ok {
			return
		}
		for _, c := range content {
			block, ok := c.(map[string]interface{})
			if !ok {
				continue
			}
			switch block["type"] {
			case "tool_use":
				name, _ := block["name"].(string)
				state.CountTool(name)
			case "text":
				text, _ := block["text"].(string)
				state.SetText(text)
			}
		}
	case "result":
		text, _ := msg["result"].(string)
		state.SetText(text)
	}
}

func (claudeDriver) ModelLabel(opts Options) string {
	if opts.ClaudeModel != "" {
		return opts.ClaudeModel
	}
	return "default"
}

// ExtraEnv blanks the API key so the CLI authenticates with its own
// subscription credentials rather than billing a raw API key.
func (claudeDriver) ExtraEnv() []string {
	return []string{"ANTHROPIC_API_KEY="}
}
