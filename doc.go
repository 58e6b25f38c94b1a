// Package tape implements a linearized, mutable intermediate representation
// for dynamically traced programs.
//
// A [Tape] records a sequence of [Operation] values — inputs, constants,
// calls, and structured loops — each addressable through a [Variable]
// handle that is either free (a positional index) or bound (a direct
// reference to the operation, tracking renumbering automatically). The
// [Tape] methods construct and rewrite this sequence; [Executor] replays it
// over fresh input values.
package tape
