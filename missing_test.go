package tape

import "testing"

func TestIsMissing(t *testing.T) {
	if !IsMissing(Missing) {
		t.Fatal("Missing should report as missing")
	}
	if IsMissing(nil) {
		t.Fatal("nil is not Missing")
	}
	if IsMissing(0) {
		t.Fatal("zero value is not Missing")
	}
}
