package styles

import "testing"

func TestInitNever(t *testing.T) {
	defer Init("always")

	Init("never")
	if Enabled() {
		t.Error("expected styling disabled for mode never")
	}
	if got := RenderResult("4.0 + 5.0 = 9.0"); got != "4.0 + 5.0 = 9.0" {
		t.Errorf("RenderResult with styling off = %q, want passthrough", got)
	}
}

func TestInitAlways(t *testing.T) {
	defer Init("always")

	Init("always")
	if !Enabled() {
		t.Error("expected styling enabled for mode always")
	}
}

func TestInitAutoHonorsNoColor(t *testing.T) {
	defer Init("always")

	t.Setenv("NO_COLOR", "1")
	Init("auto")
	if Enabled() {
		t.Error("expected styling disabled when NO_COLOR is set")
	}
}
