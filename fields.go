package watchable

import "github.com/zoobzio/capitan"

// Field keys for watchable events.
var (
	// KeyName is the debug label of the signal or holder involved.
	KeyName = capitan.NewStringKey("name")

	// KeyError is the error message when an operation fails.
	KeyError = capitan.NewStringKey("error")

	// KeyState is the subscription state after a lifecycle transition.
	KeyState = capitan.NewStringKey("state")
)
