package provider

import "encoding/json"

// cursorDriver runs the Cursor Agent CLI.
type cursorDriver struct{}

func (cursorDriver) ID() ID              { return Cursor }
func (cursorDriver) DisplayName() string { return "Cursor Agent" }
func (cursorDriver) ExecName() string    { return "cursor-agent" }

// BuildArgs drops an unrecognized mode rather than passing a flag the
// CLI would reject.
func (cursorDriver) BuildArgs(prompt string, opts Options) []string {
	args := []string{
		"--print",
		"--output-format", "stream-json",
		"--force",
	}
	if opts.CursorModel != "" {
		args = append(args, "--model", opts.CursorModel)
	}
	if IsValidCursorMode(opts.CursorMode) {
		args = append(args, "--mode", opts.CursorMode)
	}
	return append(args, prompt)
}

// ParseEvent handles Cursor's stream-json output, which mixes Claude-style
// assistant messages with flat tool_call events. Non-JSON lines are kept
// as plain text.
func (cursorDriver) ParseEvent(line string, state *StreamState) {
	state.Lines++

	var msg map[string]interface{}
	if err := json.Unmarshal([]byte(line), &msg); err != nil {
		state.SetText(line)
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
	case "tool_call":
		name, _ := msg["name"].(string)
		if name == "" {
			name, _ = msg["tool_name"].(string)
		}
		state.CountTool(name)
	case "result":
		text, _ := msg["result"].(string)
		state.SetText(text)
	}
}

func (cursorDriver) ModelLabel(opts Options) string {
	label := opts.CursorModel
	if label == "" {
		label = "default"
	}
	if IsValidCursorMode(opts.CursorMode) {
		label += " (" + opts.CursorMode + ")"
	}
	return label
}

func (cursorDriver) ExtraEnv() []string { return nil }
