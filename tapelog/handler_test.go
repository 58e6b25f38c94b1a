package tapelog

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/reusee/dscope"
)

func TestLoggerFanout(t *testing.T) {
	buf := new(bytes.Buffer)
	dscope.New(new(Module)).Fork(
		func() Writer {
			return buf
		},
	).Call(func(
		logger Logger,
		recent Recent,
	) {
		id := uuid.New()
		ctx := WithTapeID(context.Background(), id)
		logger.InfoContext(ctx, "tape push", "id", 3)

		if !strings.Contains(buf.String(), id.String()) {
			t.Fatalf("terminal handler missing tape id: %s", buf.String())
		}

		records := recent.Records()
		if len(records) != 1 {
			t.Fatalf("expected 1 retained record, got %d", len(records))
		}
		if records[0].Message != "tape push" {
			t.Fatalf("got %q", records[0].Message)
		}
	})
}

func TestTapeIDFromContext(t *testing.T) {
	if _, ok := TapeIDFromContext(context.Background()); ok {
		t.Fatal("expected no tape id on a bare context")
	}
	id := uuid.New()
	ctx := WithTapeID(context.Background(), id)
	got, ok := TapeIDFromContext(ctx)
	if !ok || got != id {
		t.Fatalf("got %v, %v", got, ok)
	}
}
