package app

import (
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/heartmarshall/hpc-dispatch/internal/config"
)

// NewLogger builds the process logger and installs it as slog's default.
// "json" is meant for production; any other format yields text output with
// the calling file and line. Every record carries the service name and version.
func NewLogger(cfg config.LogConfig, w io.Writer) *slog.Logger {
	text := !strings.EqualFold(cfg.Format, "json")

	opts := &slog.HandlerOptions{
		Level:       parseLevel(cfg.Level),
		AddSource:   text,
		ReplaceAttr: shortSource,
	}

	var handler slog.Handler = slog.NewJSONHandler(w, opts)
	if text {
		handler = slog.NewTextHandler(w, opts)
	}

	logger := slog.New(handler).With(
		slog.String("app", ServiceName),
		slog.String("version", Version),
	)
	slog.SetDefault(logger)

	return logger
}

// parseLevel accepts slog's level names in any case and falls back to info.
func parseLevel(s string) slog.Level {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return slog.LevelInfo
	}
	return lvl
}

// shortSource trims the source attribute to file:line.
func shortSource(_ []string, a slog.Attr) slog.Attr {
	if a.Key != slog.SourceKey {
		return a
	}
	if src, ok := a.Value.Any().(*slog.Source); ok && src != nil {
		a.Value = slog.StringValue(fmt.Sprintf("%s:%d", filepath.Base(src.File), src.Line))
	}
	return a
}
