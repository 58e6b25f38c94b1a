package tapeconfig

import "github.com/reusee/dscope"

// ExecutorSchema is the CUE schema executor tuning documents are unified
// against: the block and both of its fields are optional, so a document
// without an executor block (or an empty Paths slice) still resolves to the
// zero Settings.
const ExecutorSchema = `
executor?: {
	maxIterations?: int
	traceLog?:      bool
}
`

// Settings holds the executor tuning knobs a CUE document may override.
// MaxIterations of 0 means unbounded, matching tape.Executor's own
// zero-value default. TraceLog is decoded with the rest, but nothing in
// this module reads it.
type Settings struct {
	MaxIterations int  `json:"maxIterations"`
	TraceLog      bool `json:"traceLog"`
}

// Paths is the set of CUE files consulted for executor settings. It is a
// package variable rather than a Module field so callers can repoint it
// (e.g. from a -config flag collected via tapecmd.Collect[string]) before
// the Loader is built.
var Paths []string

// Module wires a Loader and its decoded Settings into a dscope scope,
// following the per-package Module convention used throughout this
// codebase's ambient infrastructure.
type Module struct {
	dscope.Module
}

// Loader builds the Loader executor settings (and any future config
// surface) are read from, unifying every path in Paths against
// ExecutorSchema. A path that cannot be read, or a document that fails to
// compile or validate, makes Settings panic; a document without an executor
// block leaves Settings at its zero value.
func (Module) Loader() Loader {
	return NewLoader(Paths, ExecutorSchema)
}

// Settings decodes the "executor" block of every configured document,
// falling back to the zero value (unbounded iterations, tracing off) when
// none defines one.
func (Module) Settings(loader Loader) Settings {
	return First[Settings](loader, "executor")
}
