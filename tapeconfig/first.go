package tapeconfig

import (
	"errors"
)

// First decodes the first root document's value at path, or returns T's
// zero value if no root defines it.
func First[T any](loader Loader, path string) T {
	var value T
	if err := loader.AssignFirst(path, &value); err != nil {
		if errors.Is(err, ErrValueNotFound) {
			return value
		}
		panic(err)
	}
	return value
}
