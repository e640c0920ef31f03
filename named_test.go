package watchable

import "testing"

func TestNamed_DelegatesFiring(t *testing.T) {
	trigger := NewTrigger()
	sig := Named(trigger, "config")

	if sig.Fired() {
		t.Error("expected unfired until the wrapped trigger fires")
	}

	trigger.Fire()

	if !sig.Fired() {
		t.Error("expected named wrapper to report the wrapped trigger's firing")
	}
}

func TestNamed_DelegatesCallbacks(t *testing.T) {
	trigger := NewTrigger()
	sig := Named(trigger, "config")

	invoked := false
	sig.OnFire(func() { invoked = true })

	trigger.Fire()

	if !invoked {
		t.Error("expected callback registered through the wrapper to run")
	}
}

func TestNamed_Label(t *testing.T) {
	sig := Named(NewTrigger(), "session-cache")

	if sig.Label() != "session-cache" {
		t.Errorf("expected label 'session-cache', got %q", sig.Label())
	}
}

func TestLabel_ReturnsLabel(t *testing.T) {
	sig := Named(Never(), "idle")

	if got := Label(sig); got != "idle" {
		t.Errorf("expected 'idle', got %q", got)
	}
}

func TestLabel_EmptyForUnlabeled(t *testing.T) {
	if got := Label(NewTrigger()); got != "" {
		t.Errorf("expected empty label for bare trigger, got %q", got)
	}
}
