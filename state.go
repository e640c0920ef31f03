package watchable

// State represents the lifecycle state of a Subscription.
type State int32

const (
	// StateActive indicates the subscription is armed and delivering.
	StateActive State = iota

	// StateClosed indicates the subscription was closed by its owner.
	// No further callbacks will be delivered.
	StateClosed

	// StateFailed indicates the producer returned an error during re-arm.
	// The subscription has terminated; the error is available via Err.
	StateFailed
)

// String returns the string representation of the state.
func (s State) String() string {
	switch s {
	case StateActive:
		return "active"
	case StateClosed:
		return "closed"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}
