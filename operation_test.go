package tape

import (
	"reflect"
	"testing"
)

func TestNewCallEagerlyEvaluatesWhenCalculable(t *testing.T) {
	tp := New()
	a := tp.Push(NewConstantOf(3))
	b := tp.Push(NewConstantOf(4))
	call := NewCall(func(x, y int) int { return x + y }, []any{a, b})

	if IsMissing(call.Val()) {
		t.Fatal("expected eager evaluation at construction time")
	}
	if call.Val() != 7 {
		t.Fatalf("got %v", call.Val())
	}
}

func TestNewCallLeavesFreeVariablesUncalculated(t *testing.T) {
	call := NewCall(func(x int) int { return x }, []any{V(1)})
	if !IsMissing(call.Val()) {
		t.Fatalf("got %v, want Missing", call.Val())
	}
}

func TestNewCallWithValOverridesEagerEvaluation(t *testing.T) {
	tp := New()
	a := tp.Push(NewConstantOf(3))
	call := NewCall(func(x int) int { return x }, []any{a}, WithVal("placeholder"))
	if call.Val() != "placeholder" {
		t.Fatalf("got %v", call.Val())
	}
}

func TestConstantTypeSurvivesValueOverwrite(t *testing.T) {
	op := NewConstant(reflect.TypeFor[int](), 5)
	op.SetVal("not an int anymore")
	if op.Type() != reflect.TypeFor[int]() {
		t.Fatalf("got %v", op.Type())
	}
}

func TestOperationTypeIsNilWhenMissing(t *testing.T) {
	op := NewInput(Missing)
	if op.Type() != nil {
		t.Fatalf("got %v", op.Type())
	}
}

func TestCallSignatureResolvesVariables(t *testing.T) {
	tp := New()
	a := tp.Push(NewInput(Missing))
	b := tp.Push(NewConstantOf(2))
	call := tp.Push(NewCall(func(x, y int) int { return x + y }, []any{a, b}, WithVal(Missing)))
	tp.SetResult(call)

	tp.At(a).SetVal(3)
	sig := CallSignature(tp, tp.At(call))
	if len(sig) != 3 {
		t.Fatalf("got %d types", len(sig))
	}
	if sig[1] != reflect.TypeFor[int]() || sig[2] != reflect.TypeFor[int]() {
		t.Fatalf("got %v", sig)
	}
}

func TestToBoundResolvesFreeVariable(t *testing.T) {
	tp := New()
	tp.Push(NewConstantOf(1))
	c := tp.Push(NewConstantOf(2))

	bound := ToBound(tp, V(2))
	if !bound.IsBound() || bound.Operation() != c.Operation() {
		t.Fatalf("got %v", bound)
	}
}

func TestVariableIdPanicsOnMalformed(t *testing.T) {
	var v Variable
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic")
		}
	}()
	v.Id()
}

func TestBoundPanicsOnNilOperation(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic")
		}
	}()
	Bound(nil)
}
