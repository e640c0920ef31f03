package watchable

import "sync"

// Trigger is a manually fired Signal. It starts unfired; Fire marks it fired
// and invokes every registered callback. Firing is monotonic and idempotent.
//
// A Trigger is the invalidation source that holders own internally, and the
// natural choice for any producer that knows exactly when its values go stale.
type Trigger struct {
	mu        sync.Mutex
	fired     bool
	nextID    uint64
	callbacks []triggerCallback
}

type triggerCallback struct {
	id uint64
	fn func()
}

// NewTrigger returns a new, unfired Trigger.
func NewTrigger() *Trigger {
	return &Trigger{}
}

// Fired reports whether Fire has been called.
func (t *Trigger) Fired() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.fired
}

// Fire marks the trigger fired and invokes all registered callbacks
// synchronously on the calling goroutine, in registration order. Firing an
// already-fired trigger is a no-op.
//
// The callback list is detached before invocation, so callbacks may register
// on or close handles of this trigger without deadlocking.
func (t *Trigger) Fire() {
	t.mu.Lock()
	if t.fired {
		t.mu.Unlock()
		return
	}
	t.fired = true
	callbacks := t.callbacks
	t.callbacks = nil
	t.mu.Unlock()

	for _, cb := range callbacks {
		cb.fn()
	}
}

// OnFire registers fn to be invoked when the trigger fires. If the trigger
// has already fired, fn is scheduled immediately on its own goroutine and the
// returned handle is a no-op.
func (t *Trigger) OnFire(fn func()) Handle {
	t.mu.Lock()
	if t.fired {
		t.mu.Unlock()
		go fn()
		return noopHandle{}
	}
	t.nextID++
	id := t.nextID
	t.callbacks = append(t.callbacks, triggerCallback{id: id, fn: fn})
	t.mu.Unlock()
	return &triggerHandle{trigger: t, id: id}
}

// SupportsCallbacks always reports true.
func (t *Trigger) SupportsCallbacks() bool { return true }

// unregister removes the callback with the given id, if still present.
func (t *Trigger) unregister(id uint64) {
	t.mu.Lock()
	defer t.mu.Unlock()
	for i, cb := range t.callbacks {
		if cb.id == id {
			t.callbacks = append(t.callbacks[:i], t.callbacks[i+1:]...)
			return
		}
	}
}

// triggerHandle unregisters a single callback from its trigger.
type triggerHandle struct {
	trigger *Trigger
	id      uint64
}

func (h *triggerHandle) Close() {
	h.trigger.unregister(h.id)
}
