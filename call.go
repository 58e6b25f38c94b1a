package tape

import "fmt"

// callConfig collects mkcall's optional val override.
type callConfig struct {
	val any
}

// CallOption configures [NewCall].
type CallOption func(*callConfig)

// WithVal overrides the eager calculation NewCall would otherwise attempt,
// storing val verbatim instead. This is how a transform pass builds a
// symbolic or placeholder Call without running fn. Passing [Missing] counts
// as no override: a calculable call is still evaluated.
func WithVal(val any) CallOption {
	return func(c *callConfig) {
		c.val = val
	}
}

// NewCall builds a Call operation applying fn to args. fn and each element
// of args may be a [Variable] (a positional reference to an earlier
// operation) or any other value, which is recorded as a constant.
//
// If the call is calculable — every Variable among fn and args is bound
// and its referent already carries a known value — and no [WithVal]
// override other than [Missing] was given, NewCall evaluates fn(args...) immediately using
// those cached values and stores the result. Otherwise the operation's
// value is [Missing], or whatever WithVal supplied.
//
// This eager evaluation is why a traced program's cached values stay
// coherent without a separate execution pass: as long as construction
// proceeds in dependency order, every calculable call already holds its
// result the moment it is built.
func NewCall(fn any, args []any, opts ...CallOption) *Operation {
	cfg := callConfig{val: Missing}
	for _, opt := range opts {
		opt(&cfg)
	}

	fnRef := toRef(fn)
	argRefs := make([]Ref, len(args))
	for i, a := range args {
		argRefs[i] = toRef(a)
	}

	op := &Operation{
		kind: KindCall,
		fn:   fnRef,
		args: argRefs,
		val:  Missing,
	}

	if !IsMissing(cfg.val) {
		op.val = cfg.val
	} else if calculable(append([]Ref{fnRef}, argRefs...)...) {
		op.val = callFn(resolveConstructionRef(fnRef), resolveConstructionArgs(argRefs))
	}

	return op
}

// Fn returns the Call's function reference. It panics if op is not a Call.
func (op *Operation) Fn() Ref {
	op.mustBe(KindCall)
	return op.fn
}

// Args returns the Call's argument references. It panics if op is not a
// Call.
func (op *Operation) Args() []Ref {
	op.mustBe(KindCall)
	return op.args
}

func (op *Operation) mustBe(k Kind) {
	if op.kind != k {
		panic(fmt.Errorf("tape: expected a %s operation, got %s", k, op.kind))
	}
}

// resolveConstructionRef/resolveConstructionArgs resolve refs using only
// the information available at construction time — a bound Variable's own
// cached value — since the operation being built has no tape yet and a
// free Variable is never calculable in the first place.
func resolveConstructionRef(r Ref) any {
	if !r.isVar {
		return r.val
	}
	return r.v.op.val
}

func resolveConstructionArgs(refs []Ref) []any {
	vals := make([]any, len(refs))
	for i, r := range refs {
		vals[i] = resolveConstructionRef(r)
	}
	return vals
}

// Broadcasted marks a function meant to be applied element-wise across any
// slice-typed arguments, mirroring the display rule that higher-order
// broadcast-like callees print as a fixed "Broadcasted{}" rather than their
// wrapped function's own representation.
type Broadcasted struct {
	Fn any
}

func (Broadcasted) String() string {
	return "Broadcasted{}"
}
