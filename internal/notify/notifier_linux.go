//go:build linux

package notify

import (
	"context"
	"os/exec"
)

// platformCmd builds a notify-send invocation. notify-send has no sound
// support, so playSound is ignored here.
func platformCmd(ctx context.Context, title, subtitle, message string, _ bool) *exec.Cmd {
	body := message
	if subtitle != "" {
		body = subtitle + "\n" + message
	}
	return exec.CommandContext(ctx, "notify-send", "--app-name=prwatch", title, body)
}
