package tape

import "fmt"

// Variable is a handle to an operation on a tape. It is either free — a bare
// positional identifier used for indexing — or bound to an [*Operation],
// in which case its identifier is derived from that operation and tracks
// renumbering after insert or replace.
//
// The zero Variable is malformed: it is neither a valid free variable (its
// id is not positive) nor bound. [Variable.Id] panics on a malformed
// variable, per the tape's fail-loud policy for programmer errors.
type Variable struct {
	id int
	op *Operation
}

// V constructs a free variable with the given positional identifier. It is
// named to match the notation used throughout this package's tests and
// documentation: V(3) denotes "the 3rd operation, by position".
func V(id int) Variable {
	return Variable{id: id}
}

// Bound constructs a variable bound directly to op. op must not be nil.
func Bound(op *Operation) Variable {
	if op == nil {
		panic(fmt.Errorf("tape: cannot bind a variable to a nil operation"))
	}
	return Variable{op: op}
}

// IsBound reports whether v is bound to an operation, as opposed to free.
func (v Variable) IsBound() bool {
	return v.op != nil
}

// Id returns v's current identifier. For a bound variable this walks
// through to the referenced operation, so it always reports that
// operation's current position. It panics if v is malformed (free with a
// non-positive id).
func (v Variable) Id() int {
	if v.op != nil {
		return v.op.id
	}
	if v.id <= 0 {
		panic(fmt.Errorf("tape: malformed variable: neither bound nor a valid free id (got %d)", v.id))
	}
	return v.id
}

// SetId updates v's identifier. If v is bound, this mutates the referenced
// operation's id in place, which is visible to every other Variable bound
// to the same operation. If v is free, only v's own stored id changes —
// any copies made before the call remain stale, which is why free
// variables are documented as unsafe to hold across a rewrite.
func (v *Variable) SetId(id int) {
	if v.op != nil {
		v.op.id = id
		return
	}
	v.id = id
}

// Operation returns the operation v is bound to, or nil if v is free.
func (v Variable) Operation() *Operation {
	return v.op
}

// String renders v in the fixed display form %<id>, per the tape's debug
// printing rules.
func (v Variable) String() string {
	return fmt.Sprintf("%%%d", v.Id())
}

// sameOperation reports whether a and b are both bound to the same
// operation instance. It is used by the loop executor to locate a Variable
// within another slice of Variables without relying on numeric ids, which
// can coincide with those of unrelated operations while free.
func sameOperation(a, b Variable) bool {
	return a.op != nil && a.op == b.op
}
