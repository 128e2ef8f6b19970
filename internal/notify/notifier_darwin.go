//go:build darwin

package notify

import (
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// platformCmd builds an osascript invocation for Notification Center.
func platformCmd(ctx context.Context, title, subtitle, message string, playSound bool) *exec.Cmd {
	script := fmt.Sprintf("display notification %s with title %s subtitle %s",
		appleQuote(message), appleQuote(title), appleQuote(subtitle))
	if playSound {
		script += ` sound name "Glass"`
	}
	return exec.CommandContext(ctx, "osascript", "-e", script)
}

func appleQuote(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `"`, `\"`)
	return `"` + s + `"`
}
