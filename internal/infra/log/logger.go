package log

import (
	"context"
	"io"
	"log/slog"
	"strings"

	"github.com/bool64/ctxd"
)

var _ ctxd.Logger = &Logger{}

// Logger implements ctxd.Logger with log/slog.
//
// Fields collected in context with ctxd.AddFields are prepended to every entry.
type Logger struct {
	l *slog.Logger
}

// NewLogger creates logger that writes to w.
//
// Level is one of debug, info, warn, error, format is text or json.
func NewLogger(w io.Writer, level, format string) *Logger {
	opts := &slog.HandlerOptions{Level: parseLevel(level)}

	var h slog.Handler
	if strings.EqualFold(format, "json") {
		h = slog.NewJSONHandler(w, opts)
	} else {
		h = slog.NewTextHandler(w, opts)
	}

	return &Logger{l: slog.New(h.WithAttrs([]slog.Attr{slog.String("service", "tasks-api")}))}
}

func parseLevel(level string) slog.Level {
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

// Debug logs a message.
func (l *Logger) Debug(ctx context.Context, msg string, keysAndValues ...interface{}) {
	l.log(ctx, slog.LevelDebug, msg, keysAndValues)
}

// Info logs a message.
func (l *Logger) Info(ctx context.Context, msg string, keysAndValues ...interface{}) {
	l.log(ctx, slog.LevelInfo, msg, keysAndValues)
}

// Important logs a message regardless of configured level.
func (l *Logger) Important(ctx context.Context, msg string, keysAndValues ...interface{}) {
	l.log(ctx, slog.LevelError+4, msg, keysAndValues)
}

// Warn logs a message.
func (l *Logger) Warn(ctx context.Context, msg string, keysAndValues ...interface{}) {
	l.log(ctx, slog.LevelWarn, msg, keysAndValues)
}

// Error logs a message.
func (l *Logger) Error(ctx context.Context, msg string, keysAndValues ...interface{}) {
	l.log(ctx, slog.LevelError, msg, keysAndValues)
}

func (l *Logger) log(ctx context.Context, level slog.Level, msg string, keysAndValues []interface{}) {
	if !l.l.Enabled(ctx, level) {
		return
	}

	fields := ctxd.Fields(ctx)

	args := make([]interface{}, 0, len(fields)+len(keysAndValues))
	args = append(args, fields...)
	args = append(args, keysAndValues...)

	l.l.Log(ctx, level, msg, args...)
}
