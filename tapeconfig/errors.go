package tapeconfig

import "errors"

// ErrValueNotFound is returned by Loader.AssignFirst when path is absent
// from every root document.
var ErrValueNotFound = errors.New("value not found")
