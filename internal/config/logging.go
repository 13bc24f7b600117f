package config

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// SetupLogging points the default slog logger at cfg.LogFile. The terminal
// belongs to the editor, so without a log file records are discarded. The
// returned closer releases the file.
func SetupLogging(cfg Config, debug bool) (io.Closer, error) {
	level := parseLevel(cfg.LogLevel)
	if debug {
		level = slog.LevelDebug
	}

	if cfg.LogFile == "" {
		slog.SetDefault(slog.New(slog.NewTextHandler(io.Discard, nil)))
		return io.NopCloser(nil), nil
	}

	f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: level})))
	return f, nil
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
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
