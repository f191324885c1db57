package logging

import (
	"context"
	"fmt"
	"strings"

	cblog "github.com/charmbracelet/log"

	"github.com/alexisbeaulieu97/devkit/internal/ports"
)

// CharmLogger implements ports.Logger using charmbracelet/log.
type CharmLogger struct {
	logger *cblog.Logger
	fields []interface{}
}

// NewCharm creates a text logger. Options.Format is ignored.
func NewCharm(opts Options) (*CharmLogger, error) {
	level := cblog.InfoLevel
	if opts.Level != "" {
		parsed, err := cblog.ParseLevel(strings.ToLower(opts.Level))
		if err != nil {
			return nil, fmt.Errorf("parse log level: %w", err)
		}
		level = parsed
	}

	base := cblog.NewWithOptions(opts.Writer, cblog.Options{
		Level:           level,
		TimeFormat:      opts.TimeFormat,
		ReportTimestamp: true,
		Fields:          mapToFields(opts.Fields),
	})

	var fields []interface{}
	if opts.Component != "" {
		fields = append(fields, "component", opts.Component)
	}

	return &CharmLogger{logger: base, fields: fields}, nil
}

// Debug emits a debug log entry.
func (l *CharmLogger) Debug(ctx context.Context, msg string, fields ...interface{}) {
	l.log(ctx, cblog.DebugLevel, msg, fields...)
}

// Info emits an info log entry.
func (l *CharmLogger) Info(ctx context.Context, msg string, fields ...interface{}) {
	l.log(ctx, cblog.InfoLevel, msg, fields...)
}

// Warn emits a warning log entry.
func (l *CharmLogger) Warn(ctx context.Context, msg string, fields ...interface{}) {
	l.log(ctx, cblog.WarnLevel, msg, fields...)
}

// Error emits an error log entry.
func (l *CharmLogger) Error(ctx context.Context, msg string, fields ...interface{}) {
	l.log(ctx, cblog.ErrorLevel, msg, fields...)
}

// With derives a new logger with persistent fields.
func (l *CharmLogger) With(fields ...interface{}) ports.Logger {
	if l == nil {
		return Discard
	}
	next := make([]interface{}, len(l.fields), len(l.fields)+len(fields))
	copy(next, l.fields)
	next = append(next, fields...)
	return &CharmLogger{logger: l.logger, fields: next}
}

func (l *CharmLogger) log(ctx context.Context, level cblog.Level, msg string, fields ...interface{}) {
	if l == nil || l.logger == nil {
		return
	}
	payload := mergeFields(l.fields, fields, contextExtras(ports.GetCorrelationID(ctx)))

	switch level {
	case cblog.DebugLevel:
		l.logger.Debug(msg, payload...)
	case cblog.WarnLevel:
		l.logger.Warn(msg, payload...)
	case cblog.ErrorLevel:
		l.logger.Error(msg, payload...)
	default:
		l.logger.Info(msg, payload...)
	}
}

var _ ports.Logger = (*CharmLogger)(nil)
