package provider

import (
	"strings"
	"testing"
)

func TestRegistryDefaults(t *testing.T) {
	reg := NewRegistry()

	for _, id := range []ID{Claude, Gemini, Cursor, Codex} {
		if !reg.Has(id) {
			t.Errorf("expected %q to be registered by default", id)
		}
	}

	if len(reg.Available()) != 4 {
		t.Errorf("expected 4 default drivers, got %d", len(reg.Available()))
	}

	_, err := reg.Lookup("unknown")
	if err == nil {
		t.Error("expected error for unknown provider")
	}
}

func TestRegistryRegisterUnregister(t *testing.T) {
	reg := NewRegistry()

	reg.Register(fakeDriver{id: "mock"})
	if !reg.Has("mock") {
		t.Error("expected 'mock' driver to be registered")
	}

	d, err := reg.Lookup("mock")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.DisplayName() != "Mock" {
		t.Errorf("expected display name 'Mock', got %q", d.DisplayName())
	}

	reg.Unregister("mock")
	if reg.Has("mock") {
		t.Error("expected 'mock' driver to be unregistered")
	}
}

func TestDisplayName(t *testing.T) {
	if got := DisplayName(Claude); got != "Claude Code" {
		t.Errorf("expected 'Claude Code', got %q", got)
	}
	if got := DisplayName("nope"); got != "nope" {
		t.Errorf("expected raw id for unknown provider, got %q", got)
	}
}

func TestBuildArgsIncludesPromptOnce(t *testing.T) {
	const prompt = "refactor the config loader"

	opts := Options{
		ClaudeModel: "sonnet",
		GeminiModel: "flash",
		CursorModel: "gpt-5",
		CursorMode:  "plan",
		CodexModel:  "gpt-5-codex",
	}

	for _, id := range Available() {
		drv, err := Lookup(id)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		args := drv.BuildArgs(prompt, opts)
		if len(args) == 0 {
			t.Errorf("%s: expected non-empty args", id)
		}

		count := 0
		for _, arg := range args {
			if arg == prompt {
				count++
			}
		}
		if count != 1 {
			t.Errorf("%s: expected prompt exactly once in args, got %d times: %v", id, count, args)
		}
	}
}

func TestCursorInvalidModeDropped(t *testing.T) {
	drv, err := Lookup(Cursor)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	args := drv.BuildArgs("do it", Options{CursorMode: "turbo"})
	for _, arg := range args {
		if arg == "--mode" || arg == "turbo" {
			t.Errorf("expected invalid mode to be dropped, got args %v", args)
		}
	}

	args = drv.BuildArgs("do it", Options{CursorMode: "plan"})
	joined := strings.Join(args, " ")
	if !strings.Contains(joined, "--mode plan") {
		t.Errorf("expected valid mode to be passed, got args %v", args)
	}
}

func TestParseEventNeverPanics(t *testing.T) {
	inputs := []string{
		"",
		"plain text, not json",
		"{",
		`{"type":`,
		`{"type":123}`,
		`{"type":"assistant"}`,
		`{"type":"assistant","message":"not an object"}`,
		`{"type":"assistant","message":{"content":"not a list"}}`,
		`{"type":"assistant","message":{"content":[42,"str",{"type":"tool_use"}]}}`,
		`{"type":"tool_call"}`,
		`{"type":"item.completed"}`,
		`{"type":"item.completed","item":[]}`,
		`[1,2,3]`,
		`null`,
		`"just a string"`,
	}

	for _, id := range Available() {
		drv, err := Lookup(id)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		state := NewStreamState()
		for _, input := range inputs {
			func() {
				defer func() {
					if r := recover(); r != nil {
						t.Errorf("%s: ParseEvent panicked on %q: %v", id, input, r)
					}
				}()
				drv.ParseEvent(input, state)
			}()
		}
	}
}

func TestClaudeParseEvent(t *testing.T) {
	drv, _ := Lookup(Claude)
	state := NewStreamState()

	drv.ParseEvent(`{"type":"assistant","message":{"content":[{"type":"tool_use","name":"Read"}]}}`, state)
	drv.ParseEvent(`{"type":"assistant","message":{"content":[{"type":"tool_use","name":"Read"},{"type":"text","text":"looking good"}]}}`, state)
	drv.ParseEvent(`{"type":"result","result":"all done"}`, state)
	drv.ParseEvent("not json at all", state)

	if state.ToolCounts["Read"] != 2 {
		t.Errorf("expected Read counted twice, got %d", state.ToolCounts["Read"])
	}
	if state.LastText != "all done" {
		t.Errorf("expected last text 'all done', got %q", state.LastText)
	}
	if state.Lines != 4 {
		t.Errorf("expected 4 lines, got %d", state.Lines)
	}
}

func TestGeminiParseEvent(t *testing.T) {
	drv, _ := Lookup(Gemini)
	state := NewStreamState()

	drv.ParseEvent(`{"type":"tool_call","tool_name":"read_file"}`, state)
	drv.ParseEvent(`{"type":"message","content":"working on it"}`, state)
	drv.ParseEvent("a bare progress line", state)

	if state.ToolCounts["read_file"] != 1 {
		t.Errorf("expected read_file counted once, got %d", state.ToolCounts["read_file"])
	}
	// Non-JSON is treated as plain text for Gemini.
	if state.LastText != "a bare progress line" {
		t.Errorf("expected plain-text fallback, got %q", state.LastText)
	}
}

func TestCodexParseEvent(t *testing.T) {
	drv, _ := Lookup(Codex)
	state := NewStreamState()

	drv.ParseEvent(`{"type":"item.completed","item":{"type":"command_execution","command":"go test"}}`, state)
	drv.ParseEvent(`{"type":"item.completed","item":{"type":"agent_message","content":"tests pass"}}`, state)
	drv.ParseEvent("garbage line", state)

	if state.ToolCounts["command_execution"] != 1 {
		t.Errorf("expected command_execution counted once, got %d", state.ToolCounts["command_execution"])
	}
	if state.LastText != "tests pass" {
		t.Errorf("expected 'tests pass', got %q", state.LastText)
	}
}

func TestStreamState(t *testing.T) {
	state := NewStreamState()

	state.CountTool("Read")
	state.CountTool("Read")
	state.CountTool("Edit")
	state.CountTool("")
	state.SetText("  hello  ")
	state.SetText("   ")

	if state.ToolCounts["Read"] != 2 || state.ToolCounts["Edit"] != 1 {
		t.Errorf("unexpected tool counts: %v", state.ToolCounts)
	}
	if _, ok := state.ToolCounts[""]; ok {
		t.Error("expected empty tool name to be ignored")
	}
	if state.LastText != "hello" {
		t.Errorf("expected trimmed 'hello' kept over blank update, got %q", state.LastText)
	}
}

func TestValidators(t *testing.T) {
	tests := []struct {
		name  string
		fn    func(string) bool
		valid []string
		bad   []string
	}{
		{"provider", IsValid, []string{"claude", "gemini", "cursor", "codex"}, []string{"", "gpt4", "Claude"}},
		{"claude model", IsValidClaudeModel, []string{"sonnet", "opus", "haiku"}, []string{"", "flash", "sonnet-4"}},
		{"gemini model", IsValidGeminiModel, []string{"flash", "pro"}, []string{"", "sonnet"}},
		{"cursor mode", IsValidCursorMode, []string{"agent", "plan"}, []string{"", "turbo", "ask"}},
	}

	for _, tt := range tests {
		for _, v := range tt.valid {
			if !tt.fn(v) {
				t.Errorf("expected %s %q to be valid", tt.name, v)
			}
		}
		for _, v := range tt.bad {
			if tt.fn(v) {
				t.Errorf("expected %s %q to be invalid", tt.name, v)
			}
		}
	}
}

// fakeDriver is a minimal Driver for registry tests
type fakeDriver struct {
	id ID
}

func (f fakeDriver) ID() ID                              { return f.id }
func (f fakeDriver) DisplayName() string                 { return "Mock" }
func (f fakeDriver) ExecName() string                    { return "mock" }
func (f fakeDriver) BuildArgs(p string, _ Options) []string { return []string{p} }
func (f fakeDriver) ParseEvent(string, *StreamState)     {}
func (f fakeDriver) ModelLabel(Options) string           { return "default" }
func (f fakeDriver) ExtraEnv() []string                  { return nil }
