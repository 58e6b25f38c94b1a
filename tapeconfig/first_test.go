package tapeconfig

import (
	"testing"
)

func TestFirst(t *testing.T) {
	path := writeCue(t, "test.cue", `str: "bar"`)
	loader := NewLoader([]string{path}, testSchema)

	str := First[string](loader, "str")
	if str != "bar" {
		t.Fatalf("got %v", str)
	}
}
