package watchable

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/zoobzio/capitan"
)

// Producer supplies the current Value on demand. A producer may be polled
// again every time the signal of its previous result fires, and may be
// invoked from whatever goroutine fired that signal.
type Producer[T any] func() (Value[T], error)

// WatchOption configures a subscription.
type WatchOption func(*watchConfig)

type watchConfig struct {
	name    string
	onError func(error)
}

// WithName labels the subscription for diagnostics. The name appears on the
// subscription's lifecycle events.
func WithName(name string) WatchOption {
	return func(cfg *watchConfig) {
		cfg.name = name
	}
}

// WithErrorHandler installs a handler for producer errors during re-arm.
// The handler is invoked after the subscription transitions to StateFailed,
// on the goroutine that observed the failure. Without a handler the failure
// is still recorded via Err; the subscription terminates either way.
func WithErrorHandler(fn func(error)) WatchOption {
	return func(cfg *watchConfig) {
		cfg.onError = fn
	}
}

// Watch subscribes callback to the producer's successive values.
//
// The producer is invoked immediately and its value delivered synchronously,
// before Watch returns: subscribers always see the current value first, not
// only the first change. Watch then registers on the value's signal; each
// time it fires, the producer is re-polled, the new value delivered, and the
// new value's signal armed in turn, until the subscription is closed.
//
// Deliveries for one subscription are sequential: a new value is produced
// only after the previous one's signal fires, on whatever goroutine fired
// it. Callers relying on "called only when something changed" must diff
// values themselves, and callers needing a particular delivery goroutine
// must marshal themselves.
//
// An error from the initial producer call is returned directly and no
// subscription is created. An error during a later re-poll terminates the
// subscription; see WithErrorHandler and Subscription.Err.
func Watch[T any](producer Producer[T], callback func(Value[T]), opts ...WatchOption) (*Subscription, error) {
	return watch(producer, callback, opts)
}

// WatchWithState is Watch with an auxiliary state value threaded through to
// the callback, for binding context to a shared callback function without a
// dedicated closure per subscription. Behaviorally identical to Watch.
func WatchWithState[T, S any](producer Producer[T], state S, callback func(S, Value[T]), opts ...WatchOption) (*Subscription, error) {
	return watch(producer, func(v Value[T]) { callback(state, v) }, opts)
}

func watch[T any](producer Producer[T], deliver func(Value[T]), opts []WatchOption) (*Subscription, error) {
	var cfg watchConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	v, err := producer()
	if err != nil {
		return nil, err
	}

	sub := &Subscription{name: cfg.name}

	var advance func()
	advance = func() {
		if sub.State() != StateActive {
			return
		}
		next, err := producer()
		if err != nil {
			sub.fail(err, cfg.onError)
			return
		}
		if sub.State() != StateActive {
			return
		}
		deliver(next)
		sub.arm(next.Signal, advance)
	}

	deliver(v)
	sub.arm(v.Signal, advance)

	capitan.Emit(context.Background(), WatchStarted,
		KeyName.Field(cfg.name),
	)
	return sub, nil
}

// Subscription is the cancellation handle returned by Watch. It owns the
// chain of armed signal registrations.
type Subscription struct {
	name  string
	state atomic.Int32

	mu     sync.Mutex
	gen    uint64
	handle Handle
	err    error
}

// State returns the subscription's lifecycle state.
func (s *Subscription) State() State {
	return State(s.state.Load())
}

// Err returns the producer error that terminated the subscription, or nil.
func (s *Subscription) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}

// Close terminates the subscription: the current signal registration is
// released and no further re-arm occurs. Idempotent. A delivery already in
// flight when Close is called may still complete; nothing new starts after
// Close returns.
func (s *Subscription) Close() {
	if !s.state.CompareAndSwap(int32(StateActive), int32(StateClosed)) {
		return
	}
	s.mu.Lock()
	h := s.handle
	s.handle = nil
	s.mu.Unlock()
	if h != nil {
		h.Close()
	}
	capitan.Emit(context.Background(), WatchStopped,
		KeyName.Field(s.name),
		KeyState.Field(StateClosed.String()),
	)
}

// fail terminates the subscription after a producer error during re-arm.
func (s *Subscription) fail(err error, handler func(error)) {
	if !s.state.CompareAndSwap(int32(StateActive), int32(StateFailed)) {
		return
	}
	s.mu.Lock()
	s.err = err
	h := s.handle
	s.handle = nil
	s.mu.Unlock()
	if h != nil {
		h.Close()
	}
	capitan.Emit(context.Background(), WatchProducerFailed,
		KeyName.Field(s.name),
		KeyError.Field(err.Error()),
	)
	if handler != nil {
		handler(err)
	}
}

// arm registers fn on sig and records the registration as current.
//
// If sig fires between registration and the bookkeeping below, fn may run
// (and re-arm) before this call stores its handle; the generation counter
// keeps the newer registration and discards this one as spent. Signals that
// can never fire are not armed at all; the subscription simply stays on its
// final value.
func (s *Subscription) arm(sig Signal, fn func()) {
	if !sig.SupportsCallbacks() {
		return
	}
	s.mu.Lock()
	if s.State() != StateActive {
		s.mu.Unlock()
		return
	}
	s.gen++
	gen := s.gen
	s.mu.Unlock()

	h := sig.OnFire(fn)

	s.mu.Lock()
	stale := s.gen != gen || s.State() != StateActive
	if !stale {
		s.handle = h
	}
	s.mu.Unlock()
	if stale {
		h.Close()
	}
}
