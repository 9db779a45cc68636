// Package logging builds the diagnostic logger for native messaging
// binaries.  Output always goes to stderr: stdout carries the wire
// protocol and a single stray byte there corrupts the frame stream.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	charmlog "github.com/charmbracelet/log"
)

const (
	defaultFormat = "text"
	defaultLevel  = "info"
)

// New returns a *slog.Logger writing to stderr in the given format ("text"
// or "json") at the given level.
func New(level, format string) (*slog.Logger, error) {
	return newWithWriter(level, format, os.Stderr)
}

func newWithWriter(level, format string, w io.Writer) (*slog.Logger, error) {
	if format = strings.ToLower(strings.TrimSpace(format)); format == "" {
		format = defaultFormat
	}

	lvl, err := parseLevel(level)
	if err != nil {
		return nil, err
	}

	switch format {
	case "json":
		return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: lvl})), nil
	case "text":
		pretty := charmlog.NewWithOptions(w, charmlog.Options{
			Level:           charmLevel(lvl),
			ReportTimestamp: true,
		})
		return slog.New(pretty), nil
	default:
		return nil, fmt.Errorf("unsupported log format %q", format)
	}
}

func parseLevel(input string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(input)) {
	case "", "info":
		return slog.LevelInfo, nil
	case "debug":
		return slog.LevelDebug, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("unsupported log level %q", input)
	}
}

func charmLevel(level slog.Level) charmlog.Level {
	switch {
	case level <= slog.LevelDebug:
		return charmlog.DebugLevel
	case level <= slog.LevelInfo:
		return charmlog.InfoLevel
	case level <= slog.LevelWarn:
		return charmlog.WarnLevel
	default:
		return charmlog.ErrorLevel
	}
}
