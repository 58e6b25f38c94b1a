package tape

import (
	"fmt"
	"reflect"
	"strings"
)

// displayOp renders a single operation in the fixed debug form fixed by
// this package: an Input as "inp %<id>::<type>", a Constant as
// "const %<id> = <val>::<type>", a Call as
// "%<id> = <fn>(<arg1>, <arg2>, ...)::<type>", and a Loop as
// "%<id> = Loop(<parent_input1>, ...)".
func (t *Tape) displayOp(op *Operation) string {
	switch op.kind {
	case KindInput:
		return fmt.Sprintf("inp %%%d::%s", op.id, typeString(op.Type()))

	case KindConstant:
		return fmt.Sprintf("const %%%d = %v::%s", op.id, op.val, typeString(op.Type()))

	case KindCall:
		args := make([]string, len(op.args))
		for i, a := range op.args {
			args[i] = t.displayRef(a)
		}
		return fmt.Sprintf("%%%d = %s(%s)::%s",
			op.id, t.displayRef(op.fn), strings.Join(args, ", "), typeString(op.Type()))

	case KindLoop:
		parts := make([]string, len(op.loop.ParentInputs))
		for i, pv := range op.loop.ParentInputs {
			parts[i] = pv.String()
		}
		return fmt.Sprintf("%%%d = Loop(%s)", op.id, strings.Join(parts, ", "))

	default:
		return fmt.Sprintf("%%%d = <unknown operation>", op.id)
	}
}

func (t *Tape) displayRef(r Ref) string {
	if r.isVar {
		return r.v.String()
	}
	if b, ok := r.val.(Broadcasted); ok {
		return b.String()
	}
	return fmt.Sprintf("%v", r.val)
}

func typeString(t reflect.Type) string {
	if t == nil {
		return "?"
	}
	return t.String()
}
