package tape

import (
	"reflect"

	"github.com/samber/lo"
)

// CallSignature returns the concrete types of a Call's function and
// arguments, resolving every Variable through t first. Downstream passes
// use this for method-table lookups keyed on concrete argument types.
//
// The mapping itself is expressed with lo.Map rather than a hand-rolled
// loop, matching this package's own preference for small functional
// collection helpers in non-hot-path utility code — the executor's inner
// loops stay hand-written, but this kind of one-shot enumeration doesn't
// need to be.
func CallSignature(t *Tape, call *Operation) []reflect.Type {
	call.mustBe(KindCall)

	refs := make([]Ref, 0, len(call.args)+1)
	refs = append(refs, call.fn)
	refs = append(refs, call.args...)

	return lo.Map(refs, func(r Ref, _ int) reflect.Type {
		val := resolveRef(t, r)
		if val == nil {
			return nil
		}
		return reflect.TypeOf(val)
	})
}

// ToBound converts v into its bound form by looking up the operation
// currently at v.Id() on t. If v is already bound, its own operation is
// returned bound as-is.
func ToBound(t *Tape, v Variable) Variable {
	return Bound(t.At(v))
}
