package tape

import "fmt"

// Push appends op to the end of the tape, assigning it the next id, and
// returns a bound variable referring to it.
func (t *Tape) Push(op *Operation) Variable {
	op.id = len(t.ops) + 1
	t.ops = append(t.ops, op)
	t.log().Debug("tape push", "tape", t.TapeID, "id", op.id, "kind", op.kind.String())
	return Bound(op)
}

// Insert splices ops into the tape starting at position idx (1-based).
// Every operation previously at position >= idx, and every op being
// inserted, is renumbered to its new position. idx == Len()+1 appends.
//
// Existing bound variables continue to reference the same operation
// instances and so transparently report the shifted positions. Existing
// free variables are positional and become stale — callers holding free
// variables across an Insert must rebind them explicitly.
func (t *Tape) Insert(idx int, ops ...*Operation) []Variable {
	if idx < 1 || idx > len(t.ops)+1 {
		panic(fmt.Errorf("tape: insert index %d out of range [1,%d]", idx, len(t.ops)+1))
	}
	if len(ops) == 0 {
		return nil
	}

	n := len(ops)
	t.ops = append(t.ops, make([]*Operation, n)...)
	copy(t.ops[idx-1+n:], t.ops[idx-1:len(t.ops)-n])
	copy(t.ops[idx-1:idx-1+n], ops)

	for i := idx - 1; i < len(t.ops); i++ {
		t.ops[i].id = i + 1
	}

	vars := make([]Variable, n)
	for i, op := range ops {
		vars[i] = Bound(op)
	}
	t.log().Debug("tape insert", "tape", t.TapeID, "at", idx, "count", n)
	return vars
}

// Replace replaces the single operation at position idx with the sequence
// ops (which must be non-empty): ops[0] overwrites idx in place, and
// ops[1:] are inserted immediately after it.
//
// Every downstream reference to the replaced position — any Variable whose
// id was idx before the call, found in operations strictly after the
// entire replacement block, or in the tape's result — is rebound to
// ops[rebindTo-1] (1-based; default the last element of ops). Operations
// within the replacement block itself, including any reference from
// ops[1:] back to ops[0], are left exactly as constructed.
func (t *Tape) Replace(idx int, ops []*Operation, rebindTo ...int) []Variable {
	if idx < 1 || idx > len(t.ops) {
		panic(fmt.Errorf("tape: replace index %d out of range [1,%d]", idx, len(t.ops)))
	}
	if len(ops) == 0 {
		panic(fmt.Errorf("tape: replace requires at least one replacement operation"))
	}
	rebindIdx := len(ops)
	if len(rebindTo) > 0 {
		rebindIdx = rebindTo[0]
	}
	if rebindIdx < 1 || rebindIdx > len(ops) {
		panic(fmt.Errorf("tape: rebindTo %d out of range [1,%d]", rebindIdx, len(ops)))
	}

	t.ops[idx-1] = ops[0]
	ops[0].id = idx

	vars := make([]Variable, len(ops))
	vars[0] = Bound(ops[0])
	if len(ops) > 1 {
		inserted := t.Insert(idx+1, ops[1:]...)
		copy(vars[1:], inserted)
	}

	target := vars[rebindIdx-1]
	subst := Substitution{idx: target.Id()}

	from := idx + len(ops)
	if from <= len(t.ops) {
		t.substituteArgs(subst, from, len(t.ops))
	}
	t.result = t.substituteVar(t.result, subst)
	t.rebindContext(subst)

	t.log().Debug("tape replace", "tape", t.TapeID, "at", idx, "count", len(ops), "rebind_to", target.Id())
	return vars
}

// Substitution maps an operation's identifier, as it existed before a
// rebind, to the identifier it should now be treated as referring to.
type Substitution map[int]int

// ContextRebinder is the optional hook a [Tape.Context] value implements to
// participate in [Tape.Rebind]. Its absence is a no-op, matching this
// package's default rebind_context behavior.
type ContextRebinder interface {
	RebindContext(subst Substitution)
}

// Rebind rewrites every Call and Loop reference within the tape according
// to subst: for each old_id -> new_id entry, every Variable whose current
// id equals old_id is rebound to the operation now at new_id. It defaults
// to scanning the whole tape; passing rng as [from, to] (both 1-based,
// inclusive) restricts the scan.
//
// The tape's result is rebound unconditionally afterward, and finally the
// tape's Context is given a chance to rebind any Variables it holds via
// [ContextRebinder].
func (t *Tape) Rebind(subst Substitution, rng ...int) {
	from, to := 1, len(t.ops)
	if len(rng) == 2 {
		from, to = rng[0], rng[1]
	}
	if from <= to {
		t.substituteArgs(subst, from, to)
	}
	t.result = t.substituteVar(t.result, subst)
	t.rebindContext(subst)
	t.log().Debug("tape rebind", "tape", t.TapeID, "from", from, "to", to, "count", len(subst))
}

func (t *Tape) rebindContext(subst Substitution) {
	if r, ok := t.Context.(ContextRebinder); ok {
		r.RebindContext(subst)
	}
}

// substituteArgs rewrites Call and Loop references within ops[from-1:to]
// per subst. Input and Constant operations have nothing to rebind.
func (t *Tape) substituteArgs(subst Substitution, from, to int) {
	for i := from; i <= to; i++ {
		op := t.ops[i-1]
		switch op.kind {
		case KindCall:
			op.fn = t.substituteRef(op.fn, subst)
			for j := range op.args {
				op.args[j] = t.substituteRef(op.args[j], subst)
			}
		case KindLoop:
			l := op.loop
			for j := range l.ParentInputs {
				l.ParentInputs[j] = t.substituteVar(l.ParentInputs[j], subst)
			}
			l.Condition = t.substituteVar(l.Condition, subst)
			for j := range l.ContVars {
				l.ContVars[j] = t.substituteVar(l.ContVars[j], subst)
			}
			for j := range l.ExitVars {
				l.ExitVars[j] = t.substituteVar(l.ExitVars[j], subst)
			}
			// The subtape's own internal references are never rebound
			// by the parent: whether any pass needs to descend into it
			// is left to that pass, not this method.
		}
	}
}

func (t *Tape) substituteRef(r Ref, subst Substitution) Ref {
	if !r.isVar {
		return r
	}
	return VarRef(t.substituteVar(r.v, subst))
}

func (t *Tape) substituteVar(v Variable, subst Substitution) Variable {
	oldId := v.id
	if v.op != nil {
		oldId = v.op.id
	} else if v.id <= 0 {
		// malformed variables carry nothing to substitute
		return v
	}
	newId, ok := subst[oldId]
	if !ok {
		return v
	}
	return Bound(t.ops[newId-1])
}
