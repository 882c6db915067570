package xslog

import (
	"context"
	"log/slog"
)

var _ slog.Handler = (*FilterHandler)(nil)

// FilterFunc reports whether a record should be emitted.
type FilterFunc func(ctx context.Context, record slog.Record) bool

// NewFilterHandler wraps next so that records rejected by filter are dropped
// before they reach it.
func NewFilterHandler(next slog.Handler, filter FilterFunc) *FilterHandler {
	return &FilterHandler{
		next:   next,
		filter: filter,
	}
}

type FilterHandler struct {
	next   slog.Handler
	filter FilterFunc
}

func (h *FilterHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.next.Enabled(ctx, level)
}

func (h *FilterHandler) Handle(ctx context.Context, record slog.Record) error {
	if h.filter != nil && !h.filter(ctx, record) {
		return nil
	}
	return h.next.Handle(ctx, record)
}

func (h *FilterHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return NewFilterHandler(h.next.WithAttrs(attrs), h.filter)
}

func (h *FilterHandler) WithGroup(name string) slog.Handler {
	return NewFilterHandler(h.next.WithGroup(name), h.filter)
}
