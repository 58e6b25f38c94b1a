package tape

import (
	"fmt"
	"log/slog"
	"reflect"

	"github.com/google/uuid"
)

// Tape is an ordered, mutable container of operations. Position in the
// sequence equals an operation's id (1-based): for every op at index i,
// op.id == i+1. This is the tape consistency invariant every rewrite
// method in this package preserves.
type Tape struct {
	ops    []*Operation
	result Variable

	// Parent is set on a loop body's subtape, pointing back to the
	// enclosing tape. It is informational only — nothing in this package
	// rebinds across the boundary automatically; see [ContextRebinder].
	Parent *Tape

	// Meta is free-form bookkeeping for transform passes: a place to
	// stash, say, "the SSA name this operation came from" without
	// growing the core Operation type for every pass's private needs.
	Meta map[any]any

	// Context is a user-supplied value transform passes may attach
	// structured state to. This package treats it as opaque; it is the
	// Go rendering of this tape's parametric context type C, represented
	// as `any` rather than threading a type parameter through every
	// operation variant (see DESIGN.md for the tradeoff).
	Context any

	// TapeID identifies this tape for log correlation across nested
	// subtapes. It carries no semantic meaning for the core algebra and
	// is never compared when reasoning about tape equality.
	TapeID uuid.UUID

	logger *slog.Logger
}

// TapeOption configures [New].
type TapeOption func(*Tape)

// WithContext attaches a user context value to a new tape.
func WithContext(context any) TapeOption {
	return func(t *Tape) { t.Context = context }
}

// WithLogger attaches a structured logger a new tape's mutating operations
// will emit debug records through. If omitted, [slog.Default] is used.
func WithLogger(logger *slog.Logger) TapeOption {
	return func(t *Tape) { t.logger = logger }
}

// New creates an empty tape, ready for [Tape.SetInputs] followed by
// successive [Tape.Push], [Tape.Insert], and [Tape.Replace] calls.
func New(opts ...TapeOption) *Tape {
	t := &Tape{
		Meta:   map[any]any{},
		TapeID: uuid.New(),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

func (t *Tape) log() *slog.Logger {
	if t.logger != nil {
		return t.logger
	}
	return slog.Default()
}

// Len returns the number of operations on the tape.
func (t *Tape) Len() int {
	return len(t.ops)
}

// Ops returns the tape's operations in order. The returned slice is owned
// by the tape and must not be mutated by callers.
func (t *Tape) Ops() []*Operation {
	return t.ops
}

// At returns the operation v refers to, resolving both bound and free
// variables through the tape's position index. It panics if v's id is out
// of range.
func (t *Tape) At(v Variable) *Operation {
	id := v.Id()
	if id < 1 || id > len(t.ops) {
		panic(fmt.Errorf("tape: variable %%%d out of range [1,%d]", id, len(t.ops)))
	}
	return t.ops[id-1]
}

// Result returns the tape's designated result variable.
func (t *Tape) Result() Variable {
	return t.result
}

// SetResult designates v as the tape's final value. It must be set before
// [Executor.Play].
func (t *Tape) SetResult(v Variable) {
	t.result = v
}

// Inputs returns bound variables for each Input operation, in the order
// they appear on the tape.
func (t *Tape) Inputs() []Variable {
	var vars []Variable
	for _, op := range t.ops {
		if op.kind == KindInput {
			vars = append(vars, Bound(op))
		}
	}
	return vars
}

// SetInputs establishes the tape's formal parameters. Called on an empty
// tape (or one with no Input operations yet), it appends one Input
// operation per value in vals and returns their bound variables. Called
// again later, it instead overwrites the existing Inputs' cached values in
// place — the count must match exactly, or this is a programmer error.
func (t *Tape) SetInputs(vals ...any) []Variable {
	existing := t.Inputs()
	if len(existing) == 0 {
		vars := make([]Variable, len(vals))
		for i, val := range vals {
			vars[i] = t.Push(NewInput(val))
		}
		return vars
	}
	if len(existing) != len(vals) {
		panic(fmt.Errorf("tape: SetInputs got %d values but tape has %d inputs", len(vals), len(existing)))
	}
	for i, val := range vals {
		t.At(existing[i]).val = val
	}
	return existing
}

// String renders the tape in its fixed debug form: a header naming the
// context's dynamic type, followed by one indented operation per line.
func (t *Tape) String() string {
	ctxType := "any"
	if t.Context != nil {
		ctxType = reflect.TypeOf(t.Context).String()
	}
	out := fmt.Sprintf("Tape{%s}", ctxType)
	for _, op := range t.ops {
		out += "\n\t" + t.displayOp(op)
	}
	return out
}
