package tape

import (
	"log/slog"

	"github.com/reusee/dscope"
)

// Module wires an [Executor] into a dscope scope, tuned by whatever
// executor settings (iteration cap, logger) the caller's scope also
// provides — following the same per-package Module convention as this
// module's ambient packages.
type Module struct {
	dscope.Module
}

// ExecutorSettings is the subset of tuning a scope needs to provide (or
// leave at its zero value, via this Module's own default) to get a usable
// Executor out of this Module. A caller loading tapeconfig.Settings forks
// the scope with an ExecutorSettings derived from it; see cmd/tapectl.
type ExecutorSettings struct {
	MaxIterations int
}

func (Module) ExecutorSettings() ExecutorSettings {
	return ExecutorSettings{}
}

// Executor builds the Executor the rest of a scope should call Play
// through, wired with logger and settings pulled from the scope.
func (Module) Executor(logger *slog.Logger, settings ExecutorSettings) *Executor {
	return NewExecutor(
		WithExecLogger(logger),
		WithMaxIterations(settings.MaxIterations),
	)
}
