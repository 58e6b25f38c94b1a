package tapelog

import (
	"context"
	"log/slog"
)

// Handler wraps a slog.Handler, injecting the tape id carried on the
// context (if any) as an attribute on every record — the logging
// counterpart of how a rewrite pass carries a Tape's identity across its
// nested subtapes.
type Handler struct {
	slog.Handler
}

func (h *Handler) Handle(ctx context.Context, record slog.Record) error {
	if id, ok := TapeIDFromContext(ctx); ok {
		record.Add("tape.id", id)
	}
	return h.Handler.Handle(ctx, record)
}
