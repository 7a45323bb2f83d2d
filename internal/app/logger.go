package app

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/heartmarshall/yarnstash-backend/internal/config"
)

// redactedKeys are attribute keys whose values never reach the log output.
var redactedKeys = map[string]bool{
	"access_token":  true,
	"refresh_token": true,
	"authorization": true,
	"code":          true,
	"state":         true,
}

// NewLogger creates a *slog.Logger writing to stderr and sets it as the
// default logger.
//
// Format "json" produces structured JSON output (production).
// Format "text" produces human-readable output with source info (development).
// Level is one of: debug, info, warn, error (case-insensitive); defaults to info.
func NewLogger(cfg config.LogConfig) *slog.Logger {
	logger := newLogger(cfg, os.Stderr)
	slog.SetDefault(logger)
	return logger
}

func newLogger(cfg config.LogConfig, w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level:       parseLevel(cfg.Level),
		AddSource:   strings.EqualFold(cfg.Format, "text"),
		ReplaceAttr: redact,
	}

	var handler slog.Handler
	if strings.EqualFold(cfg.Format, "json") {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}
	return slog.New(handler)
}

func redact(_ []string, a slog.Attr) slog.Attr {
	if redactedKeys[strings.ToLower(a.Key)] {
		return slog.String(a.Key, "[redacted]")
	}
	return a
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
