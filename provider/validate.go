package provider

// Model and mode aliases accepted per provider. Cursor and Codex model
// strings are passed through unvalidated since those CLIs accept
// arbitrary model identifiers.
var (
	validClaudeModels = map[string]bool{
		"sonnet": true,
		"opus":   true,
		"haiku":  true,
	}

	validGeminiModels = map[string]bool{
		"flash": true,
		"pro":   true,
	}

	validCursorModes = map[string]bool{
		"agent": true,
		"plan":  true,
	}
)

// IsValid reports whether id names a registered provider.
func IsValid(id string) bool {
	return DefaultRegistry.Has(ID(id))
}

// IsValidClaudeModel reports whether model is a recognized Claude alias.
func IsValidClaudeModel(model string) bool {
	return validClaudeModels[model]
}

// IsValidGeminiModel reports whether model is a recognized Gemini alias.
func IsValidGeminiModel(model string) bool {
	return validGeminiModels[model]
}

// IsValidCursorMode reports whether mode is a recognized Cursor mode.
func IsValidCursorMode(mode string) bool {
	return validCursorModes[mode]
}
