package tapelog

import (
	"log/slog"

	slogmulti "github.com/samber/slog-multi"

	"github.com/tapeforge/tape/tapecmd"
)

var level = new(slog.LevelVar)

func init() {
	tapecmd.Define("-log-debug", tapecmd.Func(func() {
		level.Set(slog.LevelDebug)
	}).Desc("set log level to debug"))
	tapecmd.Define("-log-info", tapecmd.Func(func() {
		level.Set(slog.LevelInfo)
	}).Desc("set log level to info"))
	tapecmd.Define("-log-warn", tapecmd.Func(func() {
		level.Set(slog.LevelWarn)
	}).Desc("set log level to warn"))
	tapecmd.Define("-log-error", tapecmd.Func(func() {
		level.Set(slog.LevelError)
	}).Desc("set log level to error"))
}

// Logger is this package's alias for the logger type the rest of the
// module depends on, following the teacher's convention of aliasing
// *slog.Logger rather than wrapping it in a bespoke interface.
type Logger = *slog.Logger

// Recent is the ring buffer every Logger this module builds also fans out
// to, letting a caller (e.g. the demo CLI) inspect the last records
// emitted without re-running anything.
type Recent = *RingHandler

func (Module) Recent() Recent {
	return NewRingHandler(200)
}

// Logger fans a text handler writing to Writer out to a RingHandler in
// parallel, in the manner of the teacher's own slog-multi-based fanout,
// and wraps the result in Handler so every record carries its tape id.
func (Module) Logger(
	writer Writer,
	recent Recent,
) Logger {
	terminalHandler := slog.NewTextHandler(writer, &slog.HandlerOptions{
		Level: level,
	})

	return slog.New(&Handler{
		Handler: slogmulti.Fanout(terminalHandler, recent),
	})
}
