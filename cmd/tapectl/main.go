package main

import (
	"fmt"
	"os"

	"github.com/reusee/dscope"

	"github.com/tapeforge/tape"
	"github.com/tapeforge/tape/modes"
	"github.com/tapeforge/tape/tapecmd"
	"github.com/tapeforge/tape/tapeconfig"
	"github.com/tapeforge/tape/tapelog"
)

var configPaths = tapecmd.Collect[string]("-config")

func main() {
	tapecmd.MustExecute(os.Args[1:])
	tapeconfig.Paths = *configPaths

	scope := dscope.New(
		new(tape.Module),
		new(tapelog.Module),
		new(tapeconfig.Module),
		modes.ForProduction(),
	)

	var execSettings tape.ExecutorSettings
	scope.Call(func(settings tapeconfig.Settings) {
		execSettings = tape.ExecutorSettings{MaxIterations: settings.MaxIterations}
	})
	scope = scope.Fork(dscope.Provide(execSettings))

	scope.Call(func(
		executor *tape.Executor,
	) {
		t := buildDemoTape()

		result, err := executor.Play(t, 6)
		if err != nil {
			fmt.Fprintf(os.Stderr, "play failed: %v\n", err)
			os.Exit(1)
		}

		fmt.Println(t.String())
		fmt.Printf("result: %v\n", result)
	})
}

// buildDemoTape traces `double(n) + 1` into a tape, the way a caller would
// before handing it to a [tape.Executor].
func buildDemoTape() *tape.Tape {
	t := tape.New()
	inputs := t.SetInputs(tape.Missing)
	n := inputs[0]

	double := t.Push(tape.NewCall(func(x int) int { return x * 2 }, []any{n}))
	plusOne := t.Push(tape.NewCall(func(x int) int { return x + 1 }, []any{double}))
	t.SetResult(plusOne)

	return t
}
