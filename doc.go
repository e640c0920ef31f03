/*
Package watchable pairs computed values with invalidation signals, so consumers
can tell when a previously obtained value has gone stale without re-polling its
source.

The package is built around three pieces:

  - Value: an immutable pairing of a value with the Signal that reports its
    staleness. Produced wherever computing a value and discovering its
    invalidation condition happen together (parsing a file while collecting
    the dependencies that would invalidate the parse, for example).

  - Holder and Slot: a holder owns one Value and the trigger behind its
    signal; a slot is the shared cell through which successive holders are
    published. Replacing the slot's holder is a single atomic exchange that
    fires the displaced holder's signal, so every superseded Value is
    guaranteed to report stale.

  - Watch: converts a "pull the current Value" producer into a "push on
    change" callback stream. The current value is delivered synchronously on
    subscribe, then again each time its signal fires, until the subscription
    is closed.

# Values and projection

A Value is a plain aggregate and may be copied freely. Map derives a new Value
by transforming the payload while sharing the original Signal instance, so any
number of projected views go stale together:

	parsed := watchable.NewValue(doc, sig)
	title := watchable.Map(parsed, func(d Document) string { return d.Title })
	// title.Signal == parsed.Signal

# Publishing through a Slot

A Slot is embedded wherever a producer wants to publish successive values:

	type Server struct {
	    config watchable.Slot[Config]
	}

	func (s *Server) Reload(cfg Config) {
	    s.config.Replace(cfg) // fires the previous value's signal
	}

	func (s *Server) Config() Config {
	    v := s.config.GetOrRefresh(s.loadConfig)
	    return v.V
	}

GetOrRefresh is deliberately racy: concurrent callers observing a stale slot
may each run the factory, and only one result survives as current. Callers
needing single-flight computation must serialize around the factory themselves.

# Watching for changes

	sub, err := watchable.Watch(server.Current, func(v watchable.Value[Config]) {
	    apply(v.V)
	})
	...
	sub.Close()

Callbacks are delivered synchronously on whatever goroutine fires the signal;
the package does no marshaling, debouncing, or coalescing of its own.

# Signals

Signal is a consumed capability: anything monotonic with callback-on-fire
registration satisfies it. Trigger is the manually fired implementation that
holders use internally; Never, AlreadyFired, AnyOf, and Named cover the common
remaining forms. Adapters that tie signals to external sources live under pkg/:

  - pkg/file: file contents paired with a path-scoped change signal (fsnotify)
  - pkg/progress: an asynchronous producer pushing values through a Slot
*/
package watchable
