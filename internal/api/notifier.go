package api

// Notifier surfaces user-visible failure messages. The transport calls it
// exactly once per failed request, so callers must not report the same
// failure to the user again.
type Notifier interface {
	Notify(msg string)
}

// NopNotifier discards messages.
type NopNotifier struct{}

func (NopNotifier) Notify(string) {}
