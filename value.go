package watchable

// Value pairs a computed value with the Signal that reports its staleness.
// It is a plain aggregate: immutable once constructed, freely copyable, and
// the lifetimes of V and Signal are independent of any particular copy.
//
// Whether a fired Signal makes V unusable or merely outdated is the
// producer's contract, not this type's.
type Value[T any] struct {
	// V is the payload. It may be any type, including a nil-able one.
	V T

	// Signal fires when V is no longer current.
	Signal Signal
}

// NewValue pairs v with sig. No validation is performed; sig may already have
// fired, in which case the pairing is stale from the start.
func NewValue[T any](v T, sig Signal) Value[T] {
	return Value[T]{V: v, Signal: sig}
}

// Map returns a new Value pairing fn(v.V) with v's own Signal instance, not a
// copy of it. Derived views therefore share one staleness notifier with the
// value they were projected from: when the original fires, every projection
// fires with it.
//
// fn is applied eagerly, at call time. Project now, observe the signal later.
//
// Map is a free function because Go methods cannot introduce a type parameter.
func Map[T, U any](v Value[T], fn func(T) U) Value[U] {
	return Value[U]{V: fn(v.V), Signal: v.Signal}
}
