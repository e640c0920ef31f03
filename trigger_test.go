package watchable

import (
	"sync"
	"testing"
	"time"
)

func TestNewTrigger_Unfired(t *testing.T) {
	trigger := NewTrigger()

	if trigger.Fired() {
		t.Error("expected new trigger to be unfired")
	}
	if !trigger.SupportsCallbacks() {
		t.Error("expected trigger to support callbacks")
	}
}

func TestTrigger_FireMarksFired(t *testing.T) {
	trigger := NewTrigger()

	trigger.Fire()

	if !trigger.Fired() {
		t.Error("expected trigger to report fired")
	}
}

func TestTrigger_MonotonicFiring(t *testing.T) {
	trigger := NewTrigger()
	trigger.Fire()

	for i := 0; i < 5; i++ {
		if !trigger.Fired() {
			t.Fatal("fired trigger must never report unfired")
		}
	}
}

func TestTrigger_FireInvokesCallbacksSynchronously(t *testing.T) {
	trigger := NewTrigger()

	invoked := false
	trigger.OnFire(func() { invoked = true })

	trigger.Fire()

	if !invoked {
		t.Error("expected callback to run within Fire")
	}
}

func TestTrigger_FireIdempotent(t *testing.T) {
	trigger := NewTrigger()

	calls := 0
	trigger.OnFire(func() { calls++ })

	trigger.Fire()
	trigger.Fire()
	trigger.Fire()

	if calls != 1 {
		t.Errorf("expected exactly one invocation, got %d", calls)
	}
}

func TestTrigger_CallbacksRunInRegistrationOrder(t *testing.T) {
	trigger := NewTrigger()

	var order []int
	trigger.OnFire(func() { order = append(order, 1) })
	trigger.OnFire(func() { order = append(order, 2) })
	trigger.OnFire(func() { order = append(order, 3) })

	trigger.Fire()

	if len(order) != 3 || order[0] != 1 || order[1] != 2 || order[2] != 3 {
		t.Errorf("expected [1 2 3], got %v", order)
	}
}

func TestTrigger_OnFireAfterFired_SchedulesCallback(t *testing.T) {
	trigger := NewTrigger()
	trigger.Fire()

	done := make(chan struct{})
	h := trigger.OnFire(func() { close(done) })
	defer h.Close()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("timeout waiting for late-registered callback")
	}
}

func TestTrigger_HandleCloseUnregisters(t *testing.T) {
	trigger := NewTrigger()

	h := trigger.OnFire(func() {
		t.Error("unregistered callback must not be invoked")
	})
	h.Close()

	trigger.Fire()
}

func TestTrigger_HandleCloseIdempotent(t *testing.T) {
	trigger := NewTrigger()

	h := trigger.OnFire(func() {})
	h.Close()
	h.Close()

	trigger.Fire()
}

func TestTrigger_CloseOneHandleKeepsOthers(t *testing.T) {
	trigger := NewTrigger()

	var kept, removed int
	trigger.OnFire(func() { kept++ })
	h := trigger.OnFire(func() { removed++ })
	h.Close()

	trigger.Fire()

	if kept != 1 {
		t.Errorf("expected surviving callback to run once, ran %d times", kept)
	}
	if removed != 0 {
		t.Errorf("expected closed callback not to run, ran %d times", removed)
	}
}

func TestTrigger_CallbackMayRegisterDuringFire(t *testing.T) {
	trigger := NewTrigger()

	late := make(chan struct{})
	trigger.OnFire(func() {
		// Registering on an already-firing trigger must not deadlock; the
		// trigger is fired by now, so the nested callback is scheduled.
		trigger.OnFire(func() { close(late) })
	})

	trigger.Fire()

	select {
	case <-late:
	case <-time.After(time.Second):
		t.Fatal("timeout waiting for callback registered during Fire")
	}
}

func TestTrigger_ConcurrentFireAndRegister(t *testing.T) {
	trigger := NewTrigger()

	var invoked sync.WaitGroup
	var start sync.WaitGroup
	start.Add(1)

	for i := 0; i < 16; i++ {
		invoked.Add(1)
		go func() {
			start.Wait()
			done := make(chan struct{})
			trigger.OnFire(func() { close(done) })
			<-done
			invoked.Done()
		}()
	}

	go func() {
		start.Wait()
		trigger.Fire()
	}()
	start.Done()

	waited := make(chan struct{})
	go func() {
		invoked.Wait()
		close(waited)
	}()
	select {
	case <-waited:
	case <-time.After(5 * time.Second):
		t.Fatal("timeout: some registration never saw the fire")
	}
}
