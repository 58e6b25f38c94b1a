package tapelog

import "github.com/reusee/dscope"

// Module wires this package's logger into a dscope scope, following the
// per-package Module convention used throughout this codebase's ambient
// infrastructure.
type Module struct {
	dscope.Module
}
