// Package logger wraps the structured logger used across the module
// behind a minimal interface, so packages depend on four methods rather
// than a concrete logging library.
package logger

import (
	"io"
	"os"

	charmlog "github.com/charmbracelet/log"
)

// Logger is the structured logging interface used by the reflow session.
type Logger interface {
	Debug(msg string, keyvals ...any)
	Info(msg string, keyvals ...any)
	Warn(msg string, keyvals ...any)
	Error(msg string, keyvals ...any)
}

// Config controls logger construction.
type Config struct {
	Level      string // debug, info, warn, error
	Output     io.Writer
	JSON       bool
	TimeFormat string
}

// DefaultConfig returns an info-level text logger on stderr.
func DefaultConfig() *Config {
	return &Config{
		Level:      "info",
		Output:     os.Stderr,
		TimeFormat: "15:04:05",
	}
}

type charmLogger struct {
	l *charmlog.Logger
}

func (c *charmLogger) Debug(msg string, keyvals ...any) { c.l.Debug(msg, keyvals...) }
func (c *charmLogger) Info(msg string, keyvals ...any)  { c.l.Info(msg, keyvals...) }
func (c *charmLogger) Warn(msg string, keyvals ...any)  { c.l.Warn(msg, keyvals...) }
func (c *charmLogger) Error(msg string, keyvals ...any) { c.l.Error(msg, keyvals...) }

func level(s string) charmlog.Level {
	switch s {
	case "debug":
		return charmlog.DebugLevel
	case "warn":
		return charmlog.WarnLevel
	case "error":
		return charmlog.ErrorLevel
	default:
		return charmlog.InfoLevel
	}
}

// New creates a logger from the given configuration.
func New(cfg *Config) Logger {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	out := cfg.Output
	if out == nil {
		out = os.Stderr
	}
	formatter := charmlog.TextFormatter
	if cfg.JSON {
		formatter = charmlog.JSONFormatter
	}
	l := charmlog.NewWithOptions(out, charmlog.Options{
		ReportTimestamp: true,
		TimeFormat:      cfg.TimeFormat,
		Level:           level(cfg.Level),
		Formatter:       formatter,
	})
	return &charmLogger{l: l}
}

// Nop returns a logger that discards everything. It is the default for
// sessions constructed without an explicit logger.
func Nop() Logger {
	l := charmlog.NewWithOptions(io.Discard, charmlog.Options{})
	l.SetLevel(charmlog.FatalLevel)
	return &charmLogger{l: l}
}
