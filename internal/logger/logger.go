package logger

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
)

// Logger wraps charm/log for structured logging
type Logger struct {
	*log.Logger
}

// New creates a new logger with the given output
func New(w io.Writer) *Logger {
	return NewWithLevel(w, log.InfoLevel)
}

// NewWithLevel creates a logger with a specific level
func NewWithLevel(w io.Writer, level log.Level) *Logger {
	l := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.DateTime,
		Level:           level,
	})
	return &Logger{Logger: l}
}

// NewFileLogger creates a logger that appends to a file and copies every
// entry to the extra writers
func NewFileLogger(path string, level log.Level, extra ...io.Writer) (*Logger, func(), error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return nil, nil, err
	}

	cleanup := func() {
		f.Close()
	}

	return NewMultiLogger(level, append([]io.Writer{f}, extra...)...), cleanup, nil
}

// NewMultiLogger creates a logger that writes to multiple outputs
func NewMultiLogger(level log.Level, writers ...io.Writer) *Logger {
	return NewWithLevel(io.MultiWriter(writers...), level)
}

// Discard returns a logger that discards all output
func Discard() *Logger {
	return New(io.Discard)
}

// ParseLevel converts a config level name into a log level.
// An empty name means info.
func ParseLevel(name string) (log.Level, error) {
	if name == "" {
		return log.InfoLevel, nil
	}
	level, err := log.ParseLevel(name)
	if err != nil {
		return log.InfoLevel, fmt.Errorf("invalid log level %q: %w", name, err)
	}
	return level, nil
}

// DocumentParsed logs a classified document
func (l *Logger) DocumentParsed(source string, blocks int) {
	l.Debug("document parsed",
		"source", source,
		"blocks", blocks)
}

// FormatApplied logs a successful toolbar command
func (l *Logger) FormatApplied(command string, start, end, caret int) {
	l.Debug("format applied",
		"command", command,
		"start", start,
		"end", end,
		"caret", caret)
}

// UnknownFormat logs a command the formatter did not recognize
func (l *Logger) UnknownFormat(command string) {
	l.Warn("unknown format command",
		"command", command)
}

// SessionStep logs one replayed session step
func (l *Logger) SessionStep(index int, command string, caret int) {
	l.Debug("session step",
		"step", index,
		"command", command,
		"caret", caret)
}

// DraftSaved logs a persisted draft
func (l *Logger) DraftSaved(id string, chars int) {
	l.Info("draft saved",
		"id", id,
		"chars", chars)
}

// DraftError logs a draft store failure
func (l *Logger) DraftError(operation string, err error) {
	l.Error("draft error",
		"operation", operation,
		"error", err)
}

// ConfigLoaded logs successful config loading
func (l *Logger) ConfigLoaded(path string, autosave time.Duration, wrapWidth int) {
	l.Debug("config loaded",
		"path", path,
		"autosave", autosave,
		"wrap_width", wrapWidth)
}
