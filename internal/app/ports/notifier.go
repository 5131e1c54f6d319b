package ports

// Severity of a user-facing notification.
type Severity string

const (
	SeverityInfo    Severity = "info"
	SeveritySuccess Severity = "success"
	SeverityError   Severity = "error"
)

// Notifier is the observational sink for orchestration output. Nothing flows
// back into the simulation through it.
type Notifier interface {
	Notify(message string, severity Severity)
}

// NopNotifier drops everything; useful in tests.
type NopNotifier struct{}

func (NopNotifier) Notify(string, Severity) {}
