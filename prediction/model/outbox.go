package model

import (
	"encoding/json"
	"time"
)

// Outbox topics announced by the reliability core.
const (
	TopicRequestCompleted = "prediction.request.completed"
	TopicRequestFailed    = "prediction.request.failed"
	TopicRequestPartial   = "prediction.request.partial"
	TopicOddsRefreshed    = "prediction.odds.refreshed"
)

// OutboxEvent is a row in the transactional event log. It is written in the
// same transaction as the request mutation it announces; PublishedAt stays
// NULL until the dispatcher confirms delivery and is never cleared.
type OutboxEvent struct {
	ID          int64      `json:"id"`
	Topic       string     `json:"topic"`
	Payload     *Envelope  `json:"payload"`
	CreatedAt   time.Time  `json:"created_at"`
	PublishedAt *time.Time `json:"published_at,omitempty"`
}

// RequestEventPayload is the envelope data for request lifecycle events.
// EventID gives at-least-once consumers a dedupe handle.
type RequestEventPayload struct {
	EventID      string          `json:"event_id"`
	RequestID    int64           `json:"request_id"`
	Status       RequestStatus   `json:"status"`
	ErrorMessage string          `json:"error_message,omitempty"`
	Detail       json.RawMessage `json:"detail,omitempty"`
}
