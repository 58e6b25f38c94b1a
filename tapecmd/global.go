package tapecmd

// GlobalExecutor is the process-wide command set that package-level
// helpers like [Define], [Var], [Switch], and [Collect] register against,
// mirroring the teacher's own convention of a single implicit registry for
// flag-shaped one-off tools rather than threading an *Executor everywhere.
var GlobalExecutor = NewExecutor()

// Define registers command on the global executor.
func Define(name string, command *Command) {
	GlobalExecutor.Define(name, command)
}

// Execute parses and runs args against the global executor.
func Execute(args []string) error {
	return GlobalExecutor.Execute(args)
}

// MustExecute is Execute, panicking on error.
func MustExecute(args []string) {
	GlobalExecutor.MustExecute(args)
}
