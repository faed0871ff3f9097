// Package logger provides structured logging for the gff command-line tools.
//
// The gff library itself never logs; only binaries under cmd/ do.
package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// Logger wraps zerolog with gff-specific events.
type Logger struct {
	zlog zerolog.Logger
}

// Config holds logger configuration
type Config struct {
	Output     io.Writer
	Level      string // debug, info, warn, error
	Pretty     bool   // human-readable console output
	WithCaller bool
}

// ParseLevel maps a level name to a zerolog level. Unknown names map to info.
func ParseLevel(s string) zerolog.Level {
	switch s {
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

// New creates a new structured logger
func New(cfg Config) *Logger {
	output := cfg.Output
	if output == nil {
		output = os.Stderr
	}

	if cfg.Pretty {
		output = zerolog.ConsoleWriter{
			Out:        output,
			TimeFormat: time.RFC3339,
		}
	}

	zlog := zerolog.New(output).
		Level(ParseLevel(cfg.Level)).
		With().
		Timestamp().
		Str("service", "gffconv").
		Logger()

	if cfg.WithCaller {
		zlog = zlog.With().Caller().Logger()
	}

	return &Logger{zlog: zlog}
}

// Nop returns a logger that discards everything.
func Nop() *Logger {
	return &Logger{zlog: zerolog.Nop()}
}

// Component returns a sub-logger tagged with a component name.
func (l *Logger) Component(name string) *Logger {
	return &Logger{zlog: l.zlog.With().Str("component", name).Logger()}
}

// Debug starts a debug event
func (l *Logger) Debug() *zerolog.Event { return l.zlog.Debug() }

// Info starts an info event
func (l *Logger) Info() *zerolog.Event { return l.zlog.Info() }

// Warn starts a warning event
func (l *Logger) Warn() *zerolog.Event { return l.zlog.Warn() }

// Error starts an error event
func (l *Logger) Error() *zerolog.Event { return l.zlog.Error() }

// LogRejectedLine logs one line that failed to parse.
func (l *Logger) LogRejectedLine(path string, line int, err error) {
	l.zlog.Warn().
		Str("event", "line_rejected").
		Str("path", path).
		Int("line", line).
		Err(err).
		Msg("invalid GFF line")
}

// LogFileDone logs the outcome of processing one input file.
func (l *Logger) LogFileDone(path string, lines, records, comments, rejected int, duration time.Duration) {
	event := l.zlog.Info()
	if rejected > 0 {
		event = l.zlog.Warn()
	}
	event.
		Str("event", "file_done").
		Str("path", path).
		Int("lines", lines).
		Int("records", records).
		Int("comments", comments).
		Int("rejected", rejected).
		Dur("duration_ms", duration).
		Msg("file processed")
}
