package config

import "github.com/thedjpetersen/relay/provider"

// Defaults is the CLI-level base layer of provider configuration.
type Defaults struct {
	Provider provider.ID
	Models   provider.Options
}

// Override is one layer of provider configuration carried by a PRD file
// or a single task. Empty fields leave the current value in place.
type Override struct {
	Provider string `yaml:"provider"`
	Model    string `yaml:"model"`
	Mode     string `yaml:"mode"`
}

// Resolved is the effective provider configuration for one task.
type Resolved struct {
	Provider provider.ID
	Models   provider.Options
}

// Resolve folds the file-level and task-level overrides onto the CLI
// defaults. Layers apply sequentially: within each layer the provider
// switch happens first, and the layer's model and mode are then validated
// against whichever provider is active after that switch. Invalid values
// are ignored field by field; the rest of the layer still applies.
func Resolve(def Defaults, file, task *Override) Resolved {
	r := Resolved{
		Provider: def.Provider,
		Models:   def.Models,
	}
	apply(&r, file)
	apply(&r, task)
	return r
}

func apply(r *Resolved, o *Override) {
	if o == nil {
		return
	}

	if o.Provider != "" && provider.IsValid(o.Provider) {
		r.Provider = provider.ID(o.Provider)
	}

	if o.Model != "" {
		switch r.Provider {
		case provider.Claude:
			if provider.IsValidClaudeModel(o.Model) {
				r.Models.ClaudeModel = o.Model
			}
		case provider.Gemini:
			if provider.IsValidGeminiModel(o.Model) {
				r.Models.GeminiModel = o.Model
			}
		case provider.Cursor:
			r.Models.CursorModel = o.Model
		case provider.Codex:
			r.Models.CodexModel = o.Model
		}
	}

	// Only Cursor has run modes.
	if o.Mode != "" && r.Provider == provider.Cursor && provider.IsValidCursorMode(o.Mode) {
		r.Models.CursorMode = o.Mode
	}
}
