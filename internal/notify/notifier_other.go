//go:build !linux && !darwin

package notify

import (
	"context"
	"os/exec"
)

// No known notifier binary; Notify falls back to logging.
func platformCmd(_ context.Context, _, _, _ string, _ bool) *exec.Cmd {
	return nil
}
