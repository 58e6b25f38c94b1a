package tapeconfig

import "testing"

func TestSettingsDefaultsWhenAbsent(t *testing.T) {
	loader := NewLoader(nil, ExecutorSchema)
	settings := First[Settings](loader, "executor")
	if settings.MaxIterations != 0 || settings.TraceLog != false {
		t.Fatalf("expected zero value, got %+v", settings)
	}
}

func TestSettingsFromDocument(t *testing.T) {
	path := writeCue(t, "executor.cue", `executor: {
	maxIterations: 1000
	traceLog:      true
}
`)
	loader := NewLoader([]string{path}, ExecutorSchema)
	settings := First[Settings](loader, "executor")
	if settings.MaxIterations != 1000 || !settings.TraceLog {
		t.Fatalf("got %+v", settings)
	}
}
