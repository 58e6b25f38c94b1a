package tape

import "testing"

func TestInsertShiftsDownstreamPositions(t *testing.T) {
	tp := New()
	inp := tp.Push(NewInput(Missing))
	c := tp.Push(NewConstantOf(1))
	sum := tp.Push(NewCall(func(a, b int) int { return a + b }, []any{inp, c}))
	tp.SetResult(sum)

	inserted := tp.Insert(2, NewConstantOf(10), NewConstantOf(20))
	if len(inserted) != 2 {
		t.Fatalf("got %d inserted vars", len(inserted))
	}
	if inserted[0].Id() != 2 || inserted[1].Id() != 3 {
		t.Fatalf("got %d %d", inserted[0].Id(), inserted[1].Id())
	}
	if c.Id() != 4 || sum.Id() != 5 {
		t.Fatalf("got c=%d sum=%d, want c=4 sum=5", c.Id(), sum.Id())
	}
	if tp.Result().Id() != 5 {
		t.Fatalf("got result id %d", tp.Result().Id())
	}
}

func TestInsertOutOfRangePanics(t *testing.T) {
	tp := New()
	tp.Push(NewConstantOf(1))

	defer func() {
		if recover() == nil {
			t.Fatal("expected panic")
		}
	}()
	tp.Insert(3, NewConstantOf(2))
}

func TestInsertAppendsAtLenPlusOne(t *testing.T) {
	tp := New()
	tp.Push(NewConstantOf(1))
	inserted := tp.Insert(2, NewConstantOf(2))
	if inserted[0].Id() != 2 {
		t.Fatalf("got %d", inserted[0].Id())
	}
	if tp.Len() != 2 {
		t.Fatalf("got len %d", tp.Len())
	}
}

// TestReplaceRebindsDownstreamAndResult exercises the sequence described by
// this package's replace algebra: building a three-operation tape, then
// replacing the middle operation with two, and checking that every
// reference strictly after the replacement block now reads from the rebind
// target (by default the last replacement operation), and that the tape's
// result, which designates an operation after the block, follows that
// operation's shift.
func TestReplaceRebindsDownstreamAndResult(t *testing.T) {
	tp := New()
	inp := tp.Push(NewInput(Missing))
	old := tp.Push(NewConstantOf(1))
	user := tp.Push(NewCall(func(a, b int) int { return a + b }, []any{inp, old}))
	tp.SetResult(user)

	replaced := tp.Replace(2, []*Operation{
		NewConstantOf(10),
		NewConstantOf(20),
	})
	if len(replaced) != 2 {
		t.Fatalf("got %d replaced vars", len(replaced))
	}
	if replaced[0].Id() != 2 || replaced[1].Id() != 3 {
		t.Fatalf("got %d %d", replaced[0].Id(), replaced[1].Id())
	}
	if user.Id() != 4 {
		t.Fatalf("got user id %d, want 4", user.Id())
	}

	// user's second argument should now read from replaced[1] (the default
	// rebind target, ops' last element), so playback sees 20 not 1.
	result, err := Play(tp, 5)
	if err != nil {
		t.Fatal(err)
	}
	if result != 25 {
		t.Fatalf("got %v, want 25", result)
	}

	if tp.Result().Id() != user.Id() {
		t.Fatalf("result should have followed user's shift")
	}
}

func TestReplaceRebindToChoosesEarlierOperation(t *testing.T) {
	tp := New()
	old := tp.Push(NewConstantOf(1))
	user := tp.Push(NewCall(func(a int) int { return a }, []any{old}))
	tp.SetResult(user)

	tp.Replace(1, []*Operation{
		NewConstantOf(100),
		NewConstantOf(200),
	}, 1)

	result, err := Play(tp)
	if err != nil {
		t.Fatal(err)
	}
	if result != 100 {
		t.Fatalf("got %v, want 100", result)
	}
}

func TestReplaceRequiresNonEmptyOps(t *testing.T) {
	tp := New()
	tp.Push(NewConstantOf(1))

	defer func() {
		if recover() == nil {
			t.Fatal("expected panic")
		}
	}()
	tp.Replace(1, nil)
}

func TestRebindRewritesCallArgs(t *testing.T) {
	tp := New()
	a := tp.Push(NewConstantOf(1))
	b := tp.Push(NewConstantOf(2))
	call := tp.Push(NewCall(func(x int) int { return x }, []any{a}, WithVal(Missing)))
	tp.SetResult(call)

	tp.Rebind(Substitution{a.Id(): b.Id()})

	result, err := Play(tp)
	if err != nil {
		t.Fatal(err)
	}
	if result != 2 {
		t.Fatalf("got %v, want 2", result)
	}
}
