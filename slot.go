package watchable

import (
	"context"
	"sync/atomic"

	"github.com/zoobzio/capitan"
)

// Slot is the shared cell through which successive holders are published.
// The zero value is an empty slot, ready for use; embed it as a field of
// whatever component produces the values.
//
// All mutation goes through the atomic exchange inside ReplaceWith. That is
// what guarantees the displacement invariant: at any instant exactly one
// holder is current, and every holder ever displaced from the slot has had
// its signal fired, exactly once, by the exchange that displaced it. Writing
// the cell any other way would break that, so Slot does not expose one.
type Slot[T any] struct {
	holder atomic.Pointer[Holder[T]]
}

// Holder returns the current holder, or nil while the slot is empty.
func (s *Slot[T]) Holder() *Holder[T] {
	return s.holder.Load()
}

// Current returns the current holder's pairing. ok is false while the slot
// is empty.
func (s *Slot[T]) Current() (v Value[T], ok bool) {
	h := s.holder.Load()
	if h == nil {
		return v, false
	}
	return h.Current(), true
}

// Replace publishes v in a brand-new holder, displacing and invalidating the
// previous holder if one existed. Returns the new holder. Safe to call
// concurrently; see ReplaceWith for the atomicity contract.
func (s *Slot[T]) Replace(v T) *Holder[T] {
	return s.ReplaceWith(NewHolder(v))
}

// ReplaceNamed is Replace with a debug label on the new holder's signal.
func (s *Slot[T]) ReplaceNamed(v T, name string) *Holder[T] {
	return s.ReplaceWith(NewNamedHolder(v, name))
}

// ReplaceWith installs a caller-supplied holder, displacing and invalidating
// the previous one if it existed. Returns h.
//
// The swap is a single atomic exchange: concurrent callers each displace
// exactly the holder that was actually current at their exchange, and fire
// exactly that holder's signal. No reader can observe the new holder without
// the displaced holder's signal eventually firing.
//
// Passing a nil holder is a programmer error and panics immediately.
func (s *Slot[T]) ReplaceWith(h *Holder[T]) *Holder[T] {
	if h == nil {
		panic("watchable: Slot.ReplaceWith called with nil holder")
	}
	prev := s.holder.Swap(h)
	if prev != nil {
		prev.Invalidate()
	}
	capitan.Emit(context.Background(), SlotReplaced,
		KeyName.Field(Label(h.current.Signal)),
	)
	return h
}

// GetOrRefresh returns the current pairing if its signal has not fired;
// otherwise it calls factory for a fresh value, publishes it via Replace,
// and returns the new pairing. An empty slot always refreshes.
//
// Explicitly racy: concurrent callers observing a stale slot may each invoke
// factory. Only one resulting holder survives as current; the losers' holders
// are fired by the swaps that displace them. Callers needing single-flight
// computation must serialize around factory themselves.
func (s *Slot[T]) GetOrRefresh(factory func() T) Value[T] {
	return s.GetOrRefreshNamed(factory, "")
}

// GetOrRefreshNamed is GetOrRefresh with a debug label applied to any holder
// it constructs.
func (s *Slot[T]) GetOrRefreshNamed(factory func() T, name string) Value[T] {
	if h := s.holder.Load(); h != nil {
		if v := h.Current(); !v.Signal.Fired() {
			return v
		}
	}
	h := s.ReplaceNamed(factory(), name)
	capitan.Emit(context.Background(), SlotRefreshed,
		KeyName.Field(name),
	)
	return h.Current()
}
