package tape

import "fmt"

// Loop is the payload of a KindLoop [Operation]. It owns a nested [Tape]
// (the loop body) whose Input operations correspond 1:1, in order, with
// parentInputs — the enclosing tape's variables providing the loop's
// initial carried state.
type Loop struct {
	// ParentInputs are variables in the enclosing tape supplying the
	// loop's initial state, one per subtape input.
	ParentInputs []Variable
	// Subtape is the nested tape making up the loop body.
	Subtape *Tape
	// Condition is a variable within Subtape whose boolean value, once
	// false, ends the loop.
	Condition Variable
	// ContVars are variables within Subtape that seed the next
	// iteration's inputs when the loop continues.
	ContVars []Variable
	// ExitVars is the ordered subset of ContVars whose final values make
	// up the loop's result.
	ExitVars []Variable
}

// NewLoop validates and builds a Loop. It enforces the two hard structural
// invariants from this tape's data model:
//
//	len(parentInputs) == len(contVars) == len(subtape.Inputs())
//	exitVars is a subset of contVars, in the same relative order
//
// Whether the condition fires before every cont_var has been recomputed
// for the current iteration is a legitimate, expected situation handled by
// the executor (see loopExitValues) rather than something validated here.
func NewLoop(parentInputs []Variable, subtape *Tape, condition Variable, contVars, exitVars []Variable) *Loop {
	subInputs := subtape.Inputs()
	if len(parentInputs) != len(contVars) || len(contVars) != len(subInputs) {
		panic(fmt.Errorf(
			"tape: loop layout mismatch: %d parent inputs, %d cont vars, %d subtape inputs",
			len(parentInputs), len(contVars), len(subInputs),
		))
	}

	lastIdx := -1
	for _, ev := range exitVars {
		idx := indexOfVar(contVars, ev)
		if idx == -1 {
			panic(fmt.Errorf("tape: exit var %v is not among the loop's cont vars", ev))
		}
		if idx < lastIdx {
			panic(fmt.Errorf("tape: exit vars must preserve cont vars' relative order"))
		}
		lastIdx = idx
	}

	return &Loop{
		ParentInputs: parentInputs,
		Subtape:      subtape,
		Condition:    condition,
		ContVars:     contVars,
		ExitVars:     exitVars,
	}
}

// NewLoopOp builds a KindLoop operation from a Loop. Its id is 0 until
// pushed onto a tape, matching every other operation constructor.
func NewLoopOp(loop *Loop) *Operation {
	return &Operation{kind: KindLoop, val: Missing, loop: loop}
}

// Loop returns op's Loop payload. It panics if op is not a Loop.
func (op *Operation) Loop() *Loop {
	op.mustBe(KindLoop)
	return op.loop
}

func indexOfVar(vars []Variable, v Variable) int {
	for i, cv := range vars {
		if sameOperation(cv, v) {
			return i
		}
	}
	return -1
}
