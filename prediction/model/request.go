package model

import (
	"time"
)

// Request is the durable lifecycle record of one business operation.
type Request struct {
	ID             int64         `json:"id"`
	IdempotencyKey string        `json:"idempotency_key"`
	Status         RequestStatus `json:"status"`
	Metadata       *Envelope     `json:"metadata,omitempty"`
	ErrorMessage   *string       `json:"error_message,omitempty"`
	CreatedAt      time.Time     `json:"created_at"`
	UpdatedAt      time.Time     `json:"updated_at"`
	CompletedAt    *time.Time    `json:"completed_at,omitempty"`
}

type RequestStatus string

const (
	RequestStatusReceived   RequestStatus = "received"
	RequestStatusProcessing RequestStatus = "processing"
	RequestStatusCompleted  RequestStatus = "completed"
	RequestStatusFailed     RequestStatus = "failed"
	RequestStatusPartial    RequestStatus = "partial"
)

// IsTerminal reports whether s is a final status. CompletedAt is set iff
// the request is in a terminal status.
func (s RequestStatus) IsTerminal() bool {
	switch s {
	case RequestStatusCompleted, RequestStatusFailed, RequestStatusPartial:
		return true
	}
	return false
}

// Valid reports whether s is a known status value.
func (s RequestStatus) Valid() bool {
	switch s {
	case RequestStatusReceived, RequestStatusProcessing,
		RequestStatusCompleted, RequestStatusFailed, RequestStatusPartial:
		return true
	}
	return false
}
