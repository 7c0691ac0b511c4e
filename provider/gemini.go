package provider

import "encoding/json"

// geminiDriver runs the Gemini CLI.
type geminiDriver struct{}

func (geminiDriver) ID() ID              { return Gemini }
func (geminiDriver) DisplayName() string { return "Gemini CLI" }
func (geminiDriver) ExecName() string    { return "gemini" }

func (geminiDriver) BuildArgs(prompt string, opts Options) []string {
	args := []string{
		"-p", prompt,
		"--output-format", "stream-json",
		"--yolo",
	}
	if opts.GeminiModel != "" {
		args = append(args, "--model", opts.GeminiModel)
	}
	return args
}

// ParseEvent handles Gemini's looser protocol: tool_call events name the
// tool, anything carrying text or content is treated as the latest
// response, and non-JSON lines are kept as plain text.
func (geminiDriver) ParseEvent(line string, state *StreamState) {
	state.Lines++

	var msg map[string]interface{}
	if err := json.Unmarshal([]byte(line), &msg); err != nil {
		state.SetText(line)
		return
	}

	if msgType, _ := msg["type"].(string); msgType == "tool_call" {
		name, _ := msg["tool_name"].(string)
		if name == "" {
			name, _ = msg["name"].(string)
		}
		state.CountTool(name)
		return
	}

	if text, _ := msg["text"].(string); text != "" {
		state.SetText(text)
		return
	}
	if content, _ := msg["content"].(string); content != "" {
		state.SetText(content)
	}
}

func (geminiDriver) ModelLabel(opts Options) string {
	if opts.GeminiModel != "" {
		return opts.GeminiModel
	}
	return "default"
}

func (geminiDriver) ExtraEnv() []string { return nil }
