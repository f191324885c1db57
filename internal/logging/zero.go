package logging

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"github.com/alexisbeaulieu97/devkit/internal/ports"
)

// ZeroLogger implements ports.Logger on top of zerolog, one JSON object per line.
type ZeroLogger struct {
	base   zerolog.Logger
	fields []interface{}
}

// NewZero creates a JSON logger.
func NewZero(opts Options) (*ZeroLogger, error) {
	level := zerolog.InfoLevel
	if opts.Level != "" {
		parsed, err := zerolog.ParseLevel(strings.ToLower(opts.Level))
		if err != nil {
			return nil, err
		}
		level = parsed
	}

	ctx := zerolog.New(opts.Writer).Level(level).With().Timestamp()
	for _, kv := range pairs(mapToFields(opts.Fields)) {
		ctx = ctx.Interface(kv.key, kv.value)
	}

	var fields []interface{}
	if opts.Component != "" {
		fields = append(fields, "component", opts.Component)
	}

	return &ZeroLogger{base: ctx.Logger(), fields: fields}, nil
}

// Debug writes a debug-level log entry if enabled.
func (l *ZeroLogger) Debug(ctx context.Context, msg string, fields ...interface{}) {
	if l == nil {
		return
	}
	l.emit(ctx, l.base.Debug(), msg, fields)
}

// Info writes an informational log entry.
func (l *ZeroLogger) Info(ctx context.Context, msg string, fields ...interface{}) {
	if l == nil {
		return
	}
	l.emit(ctx, l.base.Info(), msg, fields)
}

// Warn writes a warning level log entry.
func (l *ZeroLogger) Warn(ctx context.Context, msg string, fields ...interface{}) {
	if l == nil {
		return
	}
	l.emit(ctx, l.base.Warn(), msg, fields)
}

// Error writes an error log entry. An "error" field holding an error value is
// rendered through zerolog's Err so it serialises as a string.
func (l *ZeroLogger) Error(ctx context.Context, msg string, fields ...interface{}) {
	if l == nil {
		return
	}
	l.emit(ctx, l.base.Error(), msg, fields)
}

// With returns a derived logger that always writes the supplied fields.
func (l *ZeroLogger) With(fields ...interface{}) ports.Logger {
	if l == nil {
		return Discard
	}
	next := make([]interface{}, len(l.fields), len(l.fields)+len(fields))
	copy(next, l.fields)
	next = append(next, fields...)
	return &ZeroLogger{base: l.base, fields: next}
}

func (l *ZeroLogger) emit(ctx context.Context, event *zerolog.Event, msg string, fields []interface{}) {
	if event == nil {
		return
	}
	payload := mergeFields(l.fields, fields, contextExtras(ports.GetCorrelationID(ctx)))
	for _, kv := range pairs(payload) {
		if err, ok := kv.value.(error); ok {
			event = event.AnErr(kv.key, err)
			continue
		}
		event = event.Interface(kv.key, kv.value)
	}
	event.Msg(msg)
}

type pair struct {
	key   string
	value interface{}
}

func pairs(values []interface{}) []pair {
	out := make([]pair, 0, len(values)/2)
	for i := 0; i+1 < len(values); i += 2 {
		key, ok := values[i].(string)
		if !ok {
			continue
		}
		out = append(out, pair{key: key, value: values[i+1]})
	}
	return out
}

var _ ports.Logger = (*ZeroLogger)(nil)
