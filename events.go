package watchable

import "github.com/zoobzio/capitan"

// Slot publication events.
var (
	// SlotReplaced is emitted when a slot's holder is displaced by a new one.
	SlotReplaced = capitan.NewSignal(
		"watchable.slot.replaced",
		"Slot holder replaced",
	)

	// SlotRefreshed is emitted when GetOrRefresh ran its factory to rebuild
	// a stale or empty slot.
	SlotRefreshed = capitan.NewSignal(
		"watchable.slot.refreshed",
		"Stale slot recomputed",
	)
)

// Subscription lifecycle events.
var (
	// WatchStarted is emitted when a subscription is established.
	WatchStarted = capitan.NewSignal(
		"watchable.watch.started",
		"Watch subscription started",
	)

	// WatchStopped is emitted when a subscription is closed.
	WatchStopped = capitan.NewSignal(
		"watchable.watch.stopped",
		"Watch subscription stopped",
	)

	// WatchProducerFailed is emitted when a producer returns an error during
	// re-arm, terminating its subscription.
	WatchProducerFailed = capitan.NewSignal(
		"watchable.watch.producer.failed",
		"Watch producer failed during re-arm",
	)
)
