// Package logging builds the structured loggers used across todocol.
package logging

import (
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/phuslu/log"
)

// Options configures a logger.
type Options struct {
	Level  log.Level
	Format string    // "console" (default) or "json"
	Writer io.Writer // defaults to os.Stderr
}

// New creates a logger for opts.
func New(opts Options) *log.Logger {
	w := opts.Writer
	if w == nil {
		w = os.Stderr
	}

	logger := &log.Logger{
		Level:      opts.Level,
		TimeFormat: "15:04:05",
	}

	if strings.EqualFold(opts.Format, "json") {
		logger.Writer = &log.IOWriter{Writer: w}
	} else {
		logger.Writer = &log.ConsoleWriter{
			Writer:      w,
			ColorOutput: IsTerminal(w),
		}
	}

	return logger
}

// Discard returns a logger that drops every entry.
func Discard() *log.Logger {
	return &log.Logger{
		Level:  log.PanicLevel,
		Writer: &log.IOWriter{Writer: io.Discard},
	}
}

// LevelFromVerbosity maps the count of -v flags to a level:
// 0 warn, 1 info, 2 debug, 3+ trace.
func LevelFromVerbosity(verbosity int) log.Level {
	switch {
	case verbosity <= 0:
		return log.WarnLevel
	case verbosity == 1:
		return log.InfoLevel
	case verbosity == 2:
		return log.DebugLevel
	default:
		return log.TraceLevel
	}
}

// With returns a copy of base whose entries all carry key=value.
func With(base *log.Logger, key, value string) *log.Logger {
	child := *base
	ctx := append([]byte(nil), base.Context...)
	child.Context = log.NewContext(ctx).Str(key, value).Value()
	return &child
}

// IsTerminal reports whether w is a terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd())
}
