package watchable

// Signal reports whether the value it was paired with has gone stale.
// Firing is monotonic: once Fired returns true it returns true forever.
//
// Signal is a consumed capability, not something this package insists on
// providing: any source of invalidation (a dependency tracker, an external
// notification feed) can implement it. Trigger is the manually fired
// implementation used by holders; Never, AlreadyFired, AnyOf, and Named cover
// the remaining common forms.
type Signal interface {
	// Fired reports whether the signal has fired.
	Fired() bool

	// OnFire registers fn to be invoked when the signal fires. If the
	// signal fires after registration, fn is invoked at least once,
	// synchronously on the firing goroutine. If the signal has already
	// fired at registration time, fn is scheduled immediately on its own
	// goroutine.
	//
	// Callbacks must not assume any particular delivery goroutine; callers
	// needing affinity to an execution context marshal themselves.
	OnFire(fn func()) Handle

	// SupportsCallbacks reports whether registered callbacks can ever be
	// invoked. It returns false for signals that can never fire, letting
	// callers skip registration entirely.
	SupportsCallbacks() bool
}

// Handle unregisters a callback registered with Signal.OnFire.
// Close is idempotent. Unregistration is best-effort with respect to a
// concurrent fire: Close does not abort a callback that is already running,
// and may not prevent a delivery the firing goroutine has already
// dispatched, but no invocation begins after Close returns on a signal that
// has not yet started firing.
type Handle interface {
	Close()
}

// noopHandle is returned where there is nothing to unregister.
type noopHandle struct{}

func (noopHandle) Close() {}

// neverSignal never fires. Registration is a no-op.
type neverSignal struct{}

func (neverSignal) Fired() bool             { return false }
func (neverSignal) OnFire(func()) Handle    { return noopHandle{} }
func (neverSignal) SupportsCallbacks() bool { return false }

// firedSignal is permanently fired.
type firedSignal struct{}

func (firedSignal) Fired() bool { return true }

func (firedSignal) OnFire(fn func()) Handle {
	go fn()
	return noopHandle{}
}

func (firedSignal) SupportsCallbacks() bool { return true }

// Never returns a signal that never fires. Values paired with it are valid
// forever. SupportsCallbacks reports false.
func Never() Signal { return neverSignal{} }

// AlreadyFired returns a signal that is permanently fired. Values paired with
// it are stale from the start; callbacks registered on it are scheduled
// immediately.
func AlreadyFired() Signal { return firedSignal{} }
