// Package logging builds the structured slog loggers used by the command
// line tools.
package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/samber/lo"
)

// Format selects the handler.
type Format string

// Handler formats.
const (
	FormatJSON Format = "json"
	FormatText Format = "text"
)

// Redacted replaces the value of sensitive attributes.
const Redacted = "[REDACTED]"

var sensitiveKeys = []string{
	"token", "secret", "password", "credential",
	"authorization", "bearer", "jwt", "access_token",
}

// Options configures New.
type Options struct {
	Level  string
	Format Format
	// Writer defaults to os.Stderr.
	Writer io.Writer
}

// New returns a logger writing JSON (the default) or text records. Unknown
// levels fall back to info.
func New(opts Options) *slog.Logger {
	w := opts.Writer
	if w == nil {
		w = os.Stderr
	}

	handlerOpts := &slog.HandlerOptions{
		Level:       ParseLevel(opts.Level),
		ReplaceAttr: redact,
	}

	var handler slog.Handler
	switch opts.Format {
	case FormatText:
		handler = slog.NewTextHandler(w, handlerOpts)
	default:
		handler = slog.NewJSONHandler(w, handlerOpts)
	}
	return slog.New(handler)
}

// Nop returns a logger that discards everything.
func Nop() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// ParseLevel maps debug, info, warn/warning and error to slog levels.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// IsSensitiveKey reports whether an attribute key names a secret.
func IsSensitiveKey(key string) bool {
	lower := strings.ToLower(key)
	return lo.SomeBy(sensitiveKeys, func(s string) bool {
		return strings.Contains(lower, s)
	})
}

func redact(_ []string, a slog.Attr) slog.Attr {
	if IsSensitiveKey(a.Key) && a.Value.Kind() != slog.KindGroup {
		return slog.String(a.Key, Redacted)
	}
	return a
}
