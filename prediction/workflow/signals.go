package workflow

const (
	// Signal names
	NudgeSignalName = "outbox-nudge"
	DrainSignalName = "outbox-drain"
)

// NudgeSignal asks the dispatcher to drain the outbox ahead of the next
// poll, typically right after a request transition committed new events.
type NudgeSignal struct {
	Source string `json:"source"`
}

// DrainSignal asks the dispatcher to publish what remains and stop.
type DrainSignal struct {
	Reason string `json:"reason"`
}
