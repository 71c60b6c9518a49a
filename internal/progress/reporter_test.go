package progress

import "testing"

func TestNewReporterCI(t *testing.T) {
	t.Setenv("CI", "true")
	if _, ok := NewReporter("Building").(*CIReporter); !ok {
		t.Fatal("expected CIReporter when CI is set")
	}
}

func TestNewReporterTerminal(t *testing.T) {
	t.Setenv("CI", "")
	t.Setenv("GITHUB_ACTIONS", "")
	r, ok := NewReporter("Building").(*TerminalReporter)
	if !ok {
		t.Fatal("expected TerminalReporter outside CI")
	}
	// Update and Finish before Start are no-ops.
	r.Update(1, "x")
	r.Finish()
}

func TestCIReporterCounts(t *testing.T) {
	r := &CIReporter{description: "Building"}
	r.Start(3)
	if r.total != 3 {
		t.Fatalf("total = %d, want 3", r.total)
	}
	r.Update(1, "a")
	r.Finish()
}
