package watchable

// LabeledSignal is a Signal carrying a human-readable label for logs and
// debugging. Inspect labels through the Label function rather than asserting
// on concrete types.
type LabeledSignal interface {
	Signal
	Label() string
}

// labeled decorates a Signal with a debug label. Pure delegation otherwise.
type labeled struct {
	Signal
	label string
}

func (l *labeled) Label() string { return l.label }

// Named wraps sig with a human-readable label. The wrapper delegates all
// Signal behavior to sig unchanged.
func Named(sig Signal, label string) LabeledSignal {
	return &labeled{Signal: sig, label: label}
}

// Label returns sig's debug label, or "" if sig carries none.
func Label(sig Signal) string {
	if ls, ok := sig.(LabeledSignal); ok {
		return ls.Label()
	}
	return ""
}
