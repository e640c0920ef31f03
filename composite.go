package watchable

import "sync"

// AnyOf returns a signal that fires as soon as any of the given signals
// fires. Constituents that can never fire (SupportsCallbacks reporting
// false) are skipped; if every constituent is such a signal, or none are
// given, the result is Never().
//
// Once the composite fires, its registrations on the remaining constituents
// are released.
func AnyOf(signals ...Signal) Signal {
	active := make([]Signal, 0, len(signals))
	for _, sig := range signals {
		if sig.Fired() {
			return AlreadyFired()
		}
		if sig.SupportsCallbacks() {
			active = append(active, sig)
		}
	}
	if len(active) == 0 {
		return Never()
	}

	c := &composite{trigger: NewTrigger()}
	for _, sig := range active {
		// A constituent may fire while later registrations are still being
		// made; add synchronizes against the concurrent fire and closes any
		// handle registered after it.
		c.add(sig.OnFire(c.fire))
	}
	return c
}

// composite fans multiple signals into one trigger.
type composite struct {
	trigger *Trigger

	mu       sync.Mutex
	released bool
	handles  []Handle
}

// add records a constituent registration, or closes it immediately if the
// composite has already fired.
func (c *composite) add(h Handle) {
	c.mu.Lock()
	if c.released {
		c.mu.Unlock()
		h.Close()
		return
	}
	c.handles = append(c.handles, h)
	c.mu.Unlock()
}

func (c *composite) fire() {
	c.mu.Lock()
	if c.released {
		c.mu.Unlock()
		return
	}
	c.released = true
	handles := c.handles
	c.handles = nil
	c.mu.Unlock()

	c.trigger.Fire()
	for _, h := range handles {
		h.Close()
	}
}

func (c *composite) Fired() bool             { return c.trigger.Fired() }
func (c *composite) OnFire(fn func()) Handle { return c.trigger.OnFire(fn) }
func (c *composite) SupportsCallbacks() bool { return true }
