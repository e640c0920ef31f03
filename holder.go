package watchable

// Holder owns a single published Value and the Trigger behind its signal.
// The pairing never changes for the lifetime of the holder; "updating" a
// holder means constructing a new one and displacing the old through a Slot,
// which fires the old holder's trigger.
//
// A holder's contents may be shared with any number of readers; the holder
// itself is typically reached through the Slot that published it.
type Holder[T any] struct {
	trigger *Trigger
	current Value[T]
}

// NewHolder returns a holder publishing v, paired with a fresh, unfired
// trigger.
func NewHolder[T any](v T) *Holder[T] {
	return NewNamedHolder(v, "")
}

// NewNamedHolder is NewHolder with a debug label on the value's signal.
// An empty name leaves the signal unlabeled.
func NewNamedHolder[T any](v T, name string) *Holder[T] {
	trigger := NewTrigger()
	var sig Signal = trigger
	if name != "" {
		sig = Named(trigger, name)
	}
	return &Holder[T]{
		trigger: trigger,
		current: NewValue(v, sig),
	}
}

// Current returns the holder's pairing. Safe to call concurrently with
// Invalidate and with Slot replacement; the pairing itself never changes,
// only its signal's fired state does.
func (h *Holder[T]) Current() Value[T] {
	return h.current
}

// Invalidate fires the holder's trigger, marking its value stale. Idempotent.
func (h *Holder[T]) Invalidate() {
	h.trigger.Fire()
}
