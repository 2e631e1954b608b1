package tracker

import (
	"fmt"

	"github.com/kjsvbshk/Tesis-sub000/prediction/model"
)

// CanTransition reports whether a request may move from one status to
// another. Transitions are monotonic: received → processing → one of the
// terminal statuses, never backwards and never skipping processing.
func CanTransition(from, to model.RequestStatus) bool {
	switch from {
	case model.RequestStatusReceived:
		return to == model.RequestStatusProcessing
	case model.RequestStatusProcessing:
		return to.IsTerminal()
	default:
		// Terminal states accept nothing; idempotent re-marking is handled
		// before this check.
		return false
	}
}

// InvalidTransitionError is a rejected state transition, raised on tracker
// misuse or on losing a concurrent-transition race. It is surfaced to the
// caller, never silently dropped.
type InvalidTransitionError struct {
	RequestID int64
	From      model.RequestStatus
	To        model.RequestStatus
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("invalid state transition for request %d: %s -> %s", e.RequestID, e.From, e.To)
}
