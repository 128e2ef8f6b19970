// Package notify delivers desktop notifications and decouples their delivery
// from the poll loop.
package notify

import (
	"context"
	"fmt"
	"log/slog"
	"os/exec"
)

// Desktop delivers notifications through the platform notifier binary, or a
// user-configured command run as "command <title> <subtitle> <message>".
type Desktop struct {
	command string
	logger  *slog.Logger
}

// NewDesktop creates a desktop notifier. command is optional.
func NewDesktop(command string, logger *slog.Logger) *Desktop {
	return &Desktop{command: command, logger: logger}
}

// Notify shows one notification. On platforms without a known notifier the
// notification degrades to a log line.
func (d *Desktop) Notify(ctx context.Context, title, subtitle, message string, playSound bool) error {
	var cmd *exec.Cmd
	if d.command != "" {
		cmd = exec.CommandContext(ctx, d.command, title, subtitle, message)
	} else {
		cmd = platformCmd(ctx, title, subtitle, message, playSound)
	}
	if cmd == nil {
		d.logger.Info("notification", "title", title, "subtitle", subtitle, "message", message)
		return nil
	}
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("deliver notification: %w", err)
	}
	return nil
}
