package tape

import (
	"fmt"
	"log/slog"
)

// Executor replays a tape over fresh input values. It is a small,
// independently configurable object — rather than free functions on Tape —
// so that a caller can tune iteration limits and logging once and reuse
// them across many Play calls, in the manner of the teacher's own VM
// types that separate "the program" from "the thing that runs it".
type Executor struct {
	// Logger receives a Debug record for every Call operation executed,
	// including Calls inside a loop body; Input, Constant and Loop
	// operations emit none. If nil, [slog.Default] is used.
	Logger *slog.Logger

	// MaxIterations caps how many complete passes over its subtape body
	// any single Loop operation may run: when the MaxIterations-th pass
	// ends without the condition going false, Play returns an error
	// naming the offending loop instead of starting another pass. Zero
	// means unbounded, preserving this package's default behavior for
	// loops the caller trusts to terminate on their own.
	MaxIterations int
}

// ExecutorOption configures [NewExecutor].
type ExecutorOption func(*Executor)

// WithMaxIterations sets the iteration cap a new Executor enforces on
// every Loop it plays.
func WithMaxIterations(n int) ExecutorOption {
	return func(e *Executor) { e.MaxIterations = n }
}

// WithExecLogger sets the logger a new Executor emits Debug records
// through.
func WithExecLogger(logger *slog.Logger) ExecutorOption {
	return func(e *Executor) { e.Logger = logger }
}

// NewExecutor builds an Executor with unbounded iterations and the default
// logger, as modified by opts.
func NewExecutor(opts ...ExecutorOption) *Executor {
	e := &Executor{}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func (e *Executor) log() *slog.Logger {
	if e.Logger != nil {
		return e.Logger
	}
	return slog.Default()
}

// Play overwrites the tape's Input operations with args, in order, then
// replays every operation on the tape and returns the value its result
// variable holds afterward.
//
// It is a programmer error to supply more args than the tape has inputs;
// fewer is fine (unsupplied inputs keep whatever value they already
// carried). Any panic raised by a Call's function propagates unchanged —
// this method neither recovers nor wraps it. The only expected error this
// method itself returns is a MaxIterations violation inside a Loop.
func Play(t *Tape, args ...any) (any, error) {
	return NewExecutor().Play(t, args...)
}

// Play is the [Executor] method form of the package-level [Play]: it uses
// e's configured iteration cap and logger.
func (e *Executor) Play(t *Tape, args ...any) (any, error) {
	inputs := t.Inputs()
	if len(args) > len(inputs) {
		panic(fmt.Errorf("tape: play got %d args but tape has %d inputs", len(args), len(inputs)))
	}
	for i, a := range args {
		t.At(inputs[i]).val = a
	}

	for _, op := range t.ops {
		if err := e.exec(t, op); err != nil {
			return nil, err
		}
	}

	return t.At(t.result).val, nil
}

// exec dispatches a single operation during playback.
func (e *Executor) exec(t *Tape, op *Operation) error {
	switch op.kind {
	case KindInput, KindConstant:
		return nil

	case KindCall:
		fnVal := e.resolve(t, op.fn)
		argVals := make([]any, len(op.args))
		for i, a := range op.args {
			argVals[i] = e.resolve(t, a)
		}
		e.log().Debug("tape exec call", "tape", t.TapeID, "id", op.id)
		op.val = callFn(fnVal, argVals)
		return nil

	case KindLoop:
		return e.execLoop(t, op)

	default:
		panic(fmt.Errorf("tape: unknown operation kind %v", op.kind))
	}
}

// resolve reads the value a Ref denotes: a constant's own value, or a
// Variable's referent's cached value, looked up through t so that both
// bound and (positional) free variables work.
func (e *Executor) resolve(t *Tape, r Ref) any {
	return resolveRef(t, r)
}

// resolveRef is the tape-lookup counterpart of resolveConstructionRef: it
// can resolve free variables too, since by the time playback runs, every
// variable's referent lives on a known tape.
func resolveRef(t *Tape, r Ref) any {
	if !r.isVar {
		return r.val
	}
	return t.At(r.v).val
}
