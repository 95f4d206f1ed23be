// Package logger wraps zerolog behind the small leveled interface the
// pipeline and CLI need. Output is structured JSON by default; the
// human-readable mode switches to a console format for interactive use.
package logger

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Options configures logger creation.
type Options struct {
	// Level names the minimum severity to emit: debug, info, warn, or
	// error. Empty defaults to info.
	Level string

	// HumanReadable selects console output instead of JSON lines.
	HumanReadable bool

	// Writer receives log output. Nil defaults to stdout.
	Writer io.Writer
}

// Logger emits leveled, structured log entries.
type Logger struct {
	base zerolog.Logger
}

// New creates a logger from the given options. Unknown level names are an
// error rather than a silent fallback.
func New(opts Options) (*Logger, error) {
	writer := opts.Writer
	if writer == nil {
		writer = os.Stdout
	}

	level := zerolog.InfoLevel
	if opts.Level != "" {
		parsed, err := zerolog.ParseLevel(strings.ToLower(opts.Level))
		if err != nil {
			return nil, err
		}
		level = parsed
	}

	var output io.Writer = writer
	if opts.HumanReadable {
		console := zerolog.NewConsoleWriter()
		console.Out = writer
		console.TimeFormat = time.RFC3339
		output = console
	}

	base := zerolog.New(output).Level(level).With().Timestamp().Logger()
	return &Logger{base: base}, nil
}

// Nop returns a logger that discards everything, so callers can hold a
// *Logger without nil checks.
func Nop() *Logger {
	return &Logger{base: zerolog.Nop()}
}

// WithFields returns a derived logger that attaches the given fields to
// every entry it emits.
func (l *Logger) WithFields(fields map[string]any) *Logger {
	if l == nil {
		return nil
	}
	builder := l.base.With()
	for key, value := range fields {
		builder = builder.Interface(key, value)
	}
	return &Logger{base: builder.Logger()}
}

// Debug logs a message at debug level.
func (l *Logger) Debug(msg string) {
	if l == nil {
		return
	}
	l.base.Debug().Msg(msg)
}

// Info logs a message at info level.
func (l *Logger) Info(msg string) {
	if l == nil {
		return
	}
	l.base.Info().Msg(msg)
}

// Warn logs a message at warn level.
func (l *Logger) Warn(msg string) {
	if l == nil {
		return
	}
	l.base.Warn().Msg(msg)
}

// Error logs a message at error level with the error attached.
func (l *Logger) Error(err error, msg string) {
	if l == nil {
		return
	}
	l.base.Error().Err(err).Msg(msg)
}
