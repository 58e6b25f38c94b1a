package tape

import "fmt"

// execLoop runs a Loop operation's subtape to a fixpoint, following the
// fetch-execute-wrap cycle fixed by this package: seed the subtape's
// inputs from the enclosing tape, walk the body in order, and on wrapping
// back to the start feed each cont_var's freshly computed value into the
// next iteration's corresponding input.
func (e *Executor) execLoop(t *Tape, op *Operation) error {
	loop := op.loop
	sub := loop.Subtape
	subInputs := sub.Inputs()
	n := len(loop.ParentInputs)
	bodyStart := n + 1

	for i := 0; i < n; i++ {
		sub.At(subInputs[i]).val = t.At(loop.ParentInputs[i]).val
	}

	vi := bodyStart
	wraps := 0
	for {
		curOp := sub.ops[vi-1]
		if err := e.exec(sub, curOp); err != nil {
			return err
		}

		if vi == loop.Condition.Id() {
			condVal, ok := curOp.val.(bool)
			if !ok {
				panic(fmt.Errorf("tape: loop %%%d condition %%%d did not evaluate to a bool, got %T", op.id, vi, curOp.val))
			}
			if !condVal {
				op.val = e.loopExitValues(sub, loop, vi, subInputs)
				return nil
			}
		}

		vi++
		if vi > sub.Len() {
			wraps++
			if e.MaxIterations > 0 && wraps >= e.MaxIterations {
				return fmt.Errorf("tape: loop %%%d exceeded %d iterations without its condition going false", op.id, e.MaxIterations)
			}
			vi = bodyStart
			for k, cv := range loop.ContVars {
				sub.At(subInputs[k]).val = sub.At(cv).val
			}
		}
	}
}

// loopExitValues gathers the loop's result at the moment its condition
// went false, at cursor position vi. For each exit var, if the cursor has
// already passed that cont_var's position this iteration, its freshly
// recomputed value is used; otherwise the exit takes the pre-iteration
// value still sitting in the corresponding subtape input. This is the only
// place this package accounts for the condition firing before every
// cont_var has been recomputed for the current pass.
func (e *Executor) loopExitValues(sub *Tape, loop *Loop, vi int, subInputs []Variable) []any {
	exitVals := make([]any, len(loop.ExitVars))
	for j, ev := range loop.ExitVars {
		k := indexOfVar(loop.ContVars, ev)
		if k == -1 {
			panic(fmt.Errorf("tape: exit var %v is not among the loop's cont vars", ev))
		}
		contVarPos := loop.ContVars[k].Id()
		if vi > contVarPos {
			exitVals[j] = sub.At(loop.ContVars[k]).val
		} else {
			exitVals[j] = sub.At(subInputs[k]).val
		}
	}
	return exitVals
}
