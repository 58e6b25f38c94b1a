package tapelog

import (
	"context"
	"log/slog"
	"sync"
)

// RingHandler retains the most recent records in memory, so a caller can
// inspect what a tape just did (e.g. from a REPL) without re-running it
// with a different logger attached.
type RingHandler struct {
	mu      sync.Mutex
	size    int
	records []slog.Record
	attrs   []slog.Attr
}

// NewRingHandler builds a RingHandler retaining at most size records.
func NewRingHandler(size int) *RingHandler {
	return &RingHandler{size: size}
}

func (h *RingHandler) Enabled(context.Context, slog.Level) bool { return true }

func (h *RingHandler) Handle(_ context.Context, record slog.Record) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	if len(h.attrs) > 0 {
		record = record.Clone()
		record.AddAttrs(h.attrs...)
	}
	h.records = append(h.records, record)
	if len(h.records) > h.size {
		h.records = h.records[len(h.records)-h.size:]
	}
	return nil
}

func (h *RingHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &RingHandler{size: h.size, records: h.records, attrs: append(append([]slog.Attr{}, h.attrs...), attrs...)}
}

func (h *RingHandler) WithGroup(string) slog.Handler {
	return h
}

// Records returns a snapshot of the retained records, oldest first.
func (h *RingHandler) Records() []slog.Record {
	h.mu.Lock()
	defer h.mu.Unlock()
	out := make([]slog.Record, len(h.records))
	copy(out, h.records)
	return out
}
