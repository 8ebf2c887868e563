package logging

import (
	"context"
	"log/slog"
)

// teeHandler forwards each record to a pair of handlers, typically the JSON
// stdout handler and the DB sink.
type teeHandler struct {
	a, b slog.Handler
}

func NewTee(a, b slog.Handler) slog.Handler {
	return &teeHandler{a: a, b: b}
}

func (t *teeHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return t.a.Enabled(ctx, level) || t.b.Enabled(ctx, level)
}

func (t *teeHandler) Handle(ctx context.Context, record slog.Record) error {
	var firstErr error
	if t.a.Enabled(ctx, record.Level) {
		firstErr = t.a.Handle(ctx, record)
	}
	if t.b.Enabled(ctx, record.Level) {
		if err := t.b.Handle(ctx, record); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

func (t *teeHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &teeHandler{a: t.a.WithAttrs(attrs), b: t.b.WithAttrs(attrs)}
}

func (t *teeHandler) WithGroup(name string) slog.Handler {
	return &teeHandler{a: t.a.WithGroup(name), b: t.b.WithGroup(name)}
}
