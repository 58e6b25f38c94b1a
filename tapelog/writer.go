package tapelog

import (
	"io"
	"os"
)

// Writer is where the terminal log handler writes; overridden in tests to
// capture output.
type Writer io.Writer

func (Module) Writer() Writer {
	return os.Stderr
}
