// Package progress lets an asynchronous producer push successive values
// through a watchable Slot, so consumers can read the latest one or watch
// for changes without coordinating with the producer directly.
//
//	tracker := progress.NewTracker(Status{Phase: "starting"})
//
//	// producer side
//	go func() {
//	    for status := range work() {
//	        tracker.Report(status)
//	    }
//	}()
//
//	// consumer side
//	sub := tracker.Watch(func(v watchable.Value[Status]) {
//	    render(v.V)
//	})
//	defer sub.Close()
package progress

import (
	"context"

	watchable "github.com/uecasm/Mirality.WatchableValue"
)

// Tracker publishes successive snapshots of a value. Reports and reads may
// come from any goroutines; each Report atomically displaces and invalidates
// the previous snapshot.
type Tracker[T any] struct {
	name string
	slot watchable.Slot[T]
}

// NewTracker returns a Tracker publishing initial as its first snapshot.
func NewTracker[T any](initial T) *Tracker[T] {
	return NewNamedTracker(initial, "")
}

// NewNamedTracker is NewTracker with a debug label applied to every
// snapshot's signal.
func NewNamedTracker[T any](initial T, name string) *Tracker[T] {
	t := &Tracker[T]{name: name}
	t.slot.ReplaceNamed(initial, name)
	return t
}

// Report publishes v, invalidating the previous snapshot.
func (t *Tracker[T]) Report(v T) {
	t.slot.ReplaceNamed(v, t.name)
}

// Current returns the latest snapshot. The tracker is never empty.
func (t *Tracker[T]) Current() watchable.Value[T] {
	v, _ := t.slot.Current()
	return v
}

// Watch subscribes fn to the tracker's snapshots: the current one is
// delivered synchronously, then each subsequent Report, until the returned
// subscription is closed.
func (t *Tracker[T]) Watch(fn func(watchable.Value[T])) *watchable.Subscription {
	producer := func() (watchable.Value[T], error) {
		return t.Current(), nil
	}
	sub, _ := watchable.Watch(producer, fn, watchable.WithName(t.name)) // producer cannot fail
	return sub
}

// Feed reports every value received on ch until ch closes or ctx is
// canceled. It blocks; run it on its own goroutine when the channel is fed
// elsewhere.
func (t *Tracker[T]) Feed(ctx context.Context, ch <-chan T) {
	for {
		select {
		case <-ctx.Done():
			return
		case v, ok := <-ch:
			if !ok {
				return
			}
			t.Report(v)
		}
	}
}
