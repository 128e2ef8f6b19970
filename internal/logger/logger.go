// Package logger builds the application's slog logger.
package logger

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/lmittmann/tint"
	"github.com/mattn/go-isatty"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Config holds the logger configuration.
type Config struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"` // "text" or "json"
	Output string `mapstructure:"output"` // "stderr", "stdout" or "file"
	File   string `mapstructure:"file"`   // log file path when Output is "file"
}

// New initializes a slog logger based on the provided configuration.
//
// Terminal output uses tint with color when attached to a TTY; file output
// goes through lumberjack so a long-running daemon cannot fill the disk.
func New(cfg Config) *slog.Logger {
	level := parseLevel(cfg.Level)

	var output io.Writer
	isTerminal := false
	switch cfg.Output {
	case "stdout":
		output = os.Stdout
		isTerminal = isatty.IsTerminal(os.Stdout.Fd())
	case "file":
		output = fileWriter(cfg.File)
	case "stderr":
		fallthrough
	default:
		output = os.Stderr
		isTerminal = isatty.IsTerminal(os.Stderr.Fd())
	}

	var handler slog.Handler
	switch cfg.Format {
	case "json":
		handler = slog.NewJSONHandler(output, &slog.HandlerOptions{Level: level})
	case "text":
		fallthrough
	default:
		noColor := !isTerminal || os.Getenv("NO_COLOR") != ""
		handler = tint.NewHandler(output, &tint.Options{
			Level:      level,
			TimeFormat: time.RFC3339,
			NoColor:    noColor,
		})
	}

	return slog.New(handler)
}

func parseLevel(s string) slog.Level {
	level := new(slog.Level)
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return slog.LevelInfo
	}
	return *level
}

func fileWriter(path string) io.Writer {
	if path == "" {
		return os.Stderr
	}
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		_ = os.MkdirAll(dir, 0o755)
	}
	return &lumberjack.Logger{
		Filename:   path,
		MaxSize:    10, // MB
		MaxBackups: 3,
		MaxAge:     28, // days
	}
}
