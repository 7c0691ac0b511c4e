// Package provider defines the drivers for external AI coding-agent CLIs.
package provider

import (
	"fmt"
	"sync"
)

// ID identifies a registered provider.
type ID string

// Known provider IDs.
const (
	Claude ID = "claude"
	Gemini ID = "gemini"
	Cursor ID = "cursor"
	Codex  ID = "codex"
)

// Options holds per-run model and mode selection for every provider.
// Only the fields for the provider actually being run are consulted.
type Options struct {
	ClaudeModel string
	GeminiModel string
	CursorModel string
	CursorMode  string
	CodexModel  string
}

// Driver describes how to invoke one provider CLI and interpret its
// stream-json output. Implementations are stateless; all per-run state
// lives in the StreamState passed to ParseEvent.
type Driver interface {
	// ID returns the provider identifier
	ID() ID

	// DisplayName returns the human-readable provider name
	DisplayName() string

	// ExecName returns the executable invoked for this provider
	ExecName() string

	// BuildArgs returns the argument vector embedding the prompt and
	// any model/mode selection from opts
	BuildArgs(prompt string, opts Options) []string

	// ParseEvent interprets one line of subprocess output, updating
	// state. It must tolerate any input without panicking.
	ParseEvent(line string, state *StreamState)

	// ModelLabel returns the effective model label for opts, for display
	ModelLabel(opts Options) string

	// ExtraEnv returns additional environment entries for the subprocess
	ExtraEnv() []string
}

// ErrUnknownProvider is returned when looking up an unregistered provider.
var ErrUnknownProvider = fmt.Errorf("unknown provider")

// Registry manages available provider drivers.
type Registry struct {
	drivers map[ID]Driver
	mu      sync.RWMutex
}

// NewRegistry creates a registry populated with the default drivers.
func NewRegistry() *Registry {
	r := &Registry{
		drivers: make(map[ID]Driver),
	}

	r.Register(claudeDriver{})
	r.Register(geminiDriver{})
	r.Register(cursorDriver{})
	r.Register(codexDriver{})

	return r
}

// Register adds a driver to the registry, replacing any existing driver
// with the same ID.
func (r *Registry) Register(d Driver) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.drivers[d.ID()] = d
}

// Unregister removes a driver from the registry.
func (r *Registry) Unregister(id ID) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.drivers, id)
}

// Lookup returns the driver for id.
func (r *Registry) Lookup(id ID) (Driver, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	d, ok := r.drivers[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownProvider, id)
	}
	return d, nil
}

// Has returns true if a driver with the given ID is registered.
func (r *Registry) Has(id ID) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.drivers[id]
	return ok
}

// Available returns the IDs of all registered drivers.
func (r *Registry) Available() []ID {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := make([]ID, 0, len(r.drivers))
	for id := range r.drivers {
		ids = append(ids, id)
	}
	return ids
}

// DefaultRegistry is the global provider registry.
var DefaultRegistry = NewRegistry()

// Lookup returns a driver from the default registry.
func Lookup(id ID) (Driver, error) {
	return DefaultRegistry.Lookup(id)
}

// Available returns the provider IDs registered in the default registry.
func Available() []ID {
	return DefaultRegistry.Available()
}

// DisplayName returns the display name for id, or the raw id string when
// the provider is not registered.
func DisplayName(id ID) string {
	d, err := Lookup(id)
	if err != nil {
		return string(id)
	}
	return d.DisplayName()
}
