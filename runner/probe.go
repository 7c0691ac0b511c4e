package runner

import (
	"context"
	"time"

	"github.com/thedjpetersen/relay/provider"
)

// probeTimeout bounds the version check for a provider executable.
const probeTimeout = 5 * time.Second

// IsAvailable reports whether the provider's executable is installed and
// runnable, by invoking it with its version flag. Any failure (not found,
// non-zero exit, timeout) yields false.
func IsAvailable(ctx context.Context, id provider.ID) bool {
	drv, err := provider.Lookup(id)
	if err != nil {
		return false
	}

	ctx, cancel := context.WithTimeout(ctx, probeTimeout)
	defer cancel()

	cmd := newCommand(ctx, drv.ExecName(), "--version")
	return cmd.Run() == nil
}
