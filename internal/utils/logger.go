package utils

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/lmittmann/tint"
)

type LoggerConfig struct {
	// Writer defaults to os.Stdout.
	Writer    io.Writer
	Level     string
	AddSource bool
	IsJSON    bool
}

// NewLogger builds the application logger: JSON for log shippers, tinted
// text otherwise.
func NewLogger(cfg LoggerConfig) *slog.Logger {
	if cfg.Writer == nil {
		cfg.Writer = os.Stdout
	}
	level := ParseLogLevel(cfg.Level)

	var handler slog.Handler
	if cfg.IsJSON {
		handler = slog.NewJSONHandler(cfg.Writer, &slog.HandlerOptions{
			AddSource: cfg.AddSource,
			Level:     level,
		})
	} else {
		handler = tint.NewHandler(cfg.Writer, &tint.Options{
			AddSource:  cfg.AddSource,
			Level:      level,
			TimeFormat: "2006-01-02 15:04:05",
		})
	}
	return slog.New(handler)
}

func ParseLogLevel(level string) slog.Level {
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
