package tape

// Ref is either a Variable (a positional reference to an earlier operation)
// or a raw constant value, matching the heterogeneous argument lists a
// Call's args and fn hold. It is the Go rendering of the sum type
// Arg = Var(Variable) | Const(Any) noted for this kind of tape.
type Ref struct {
	isVar bool
	v     Variable
	val   any
}

// VarRef builds a Ref that refers to v.
func VarRef(v Variable) Ref {
	return Ref{isVar: true, v: v}
}

// ValRef builds a Ref that carries a constant value verbatim.
func ValRef(val any) Ref {
	return Ref{val: val}
}

// IsVar reports whether r refers to a Variable rather than a constant.
func (r Ref) IsVar() bool {
	return r.isVar
}

// Var returns the Variable r refers to. It panics if r is a constant.
func (r Ref) Var() Variable {
	if !r.isVar {
		panic("tape: Ref is a constant, not a Variable")
	}
	return r.v
}

// Value returns the constant r carries. It panics if r refers to a
// Variable.
func (r Ref) Value() any {
	if r.isVar {
		panic("tape: Ref is a Variable, not a constant")
	}
	return r.val
}

// toRef classifies a raw fn/arg element: a Variable becomes a VarRef,
// anything else becomes a ValRef.
func toRef(x any) Ref {
	if v, ok := x.(Variable); ok {
		return VarRef(v)
	}
	return ValRef(x)
}

// calculable reports whether every element of refs is either a constant or
// a bound Variable whose referent already carries a known value. Free
// variables are never calculable, since they carry no cached value of
// their own to read.
func calculable(refs ...Ref) bool {
	for _, r := range refs {
		if !r.isVar {
			continue
		}
		if !r.v.IsBound() {
			return false
		}
		if IsMissing(r.v.op.val) {
			return false
		}
	}
	return true
}
