package dataframe

import (
	"context"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with dataframe-specific helpers.
// This keeps field names consistent across import, export and store calls.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a new Logger with the given handler.
// If handler is nil, uses default text handler to stderr.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewJSONLogger creates a Logger that outputs JSON-formatted logs.
func NewJSONLogger(level slog.Level) *Logger {
	return NewLogger(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	return NewLogger(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}

// NoopLogger creates a Logger that discards all log output.
func NoopLogger() *Logger {
	return NewLogger(slog.DiscardHandler)
}

// WithSource adds a source field (file path or blob name) to the logger.
func (l *Logger) WithSource(source string) *Logger {
	return &Logger{
		Logger: l.Logger.With("source", source),
	}
}

// LogImport logs the outcome of a CSV import.
func (l *Logger) LogImport(rows, columns, skipped int, err error) {
	if err != nil {
		l.Error("import failed",
			"rows", rows,
			"error", err,
		)
		return
	}
	if skipped > 0 {
		l.Warn("import completed with skipped lines",
			"rows", rows,
			"columns", columns,
			"skipped", skipped,
		)
		return
	}
	l.Debug("import completed",
		"rows", rows,
		"columns", columns,
	)
}

// LogSkippedLine logs a data line that was not turned into a row.
func (l *Logger) LogSkippedLine(line, fields, width int) {
	l.Debug("skipping line",
		"line", line,
		"fields", fields,
		"width", width,
	)
}

// LogExport logs the outcome of a CSV export.
func (l *Logger) LogExport(rows int, err error) {
	if err != nil {
		l.Error("export failed",
			"rows", rows,
			"error", err,
		)
		return
	}
	l.Debug("export completed",
		"rows", rows,
	)
}

// LogStore logs a blob store operation on a named table.
func (l *Logger) LogStore(ctx context.Context, op, name string, err error) {
	if err != nil {
		l.ErrorContext(ctx, op+" failed",
			"name", name,
			"error", err,
		)
		return
	}
	l.DebugContext(ctx, op+" completed",
		"name", name,
	)
}
