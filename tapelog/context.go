package tapelog

import (
	"context"

	"github.com/google/uuid"
)

type tapeIDKey struct{}

// WithTapeID attaches a tape's identity to ctx, so every log record
// emitted while executing that tape — including nested subtapes — can be
// correlated back to it.
func WithTapeID(ctx context.Context, id uuid.UUID) context.Context {
	return context.WithValue(ctx, tapeIDKey{}, id)
}

// TapeIDFromContext returns the tape id attached to ctx, if any.
func TapeIDFromContext(ctx context.Context) (uuid.UUID, bool) {
	v := ctx.Value(tapeIDKey{})
	if v == nil {
		return uuid.UUID{}, false
	}
	return v.(uuid.UUID), true
}
