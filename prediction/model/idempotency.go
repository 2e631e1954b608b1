package model

import (
	"encoding/json"
	"time"
)

// IdempotencyRecord dedupes client retries for one idempotency key. The
// record starts pending (StoredResponse nil) and is finalized exactly once.
type IdempotencyRecord struct {
	Key            string          `json:"key"`
	RequestID      int64           `json:"request_id"`
	RequestHash    string          `json:"request_hash,omitempty"`
	StoredResponse json.RawMessage `json:"stored_response,omitempty"`
	CreatedAt      time.Time       `json:"created_at"`
	ExpiresAt      time.Time       `json:"expires_at"`
}

// Finalized reports whether the record carries a stored response.
func (r *IdempotencyRecord) Finalized() bool {
	return len(r.StoredResponse) > 0
}

// CheckResult is the outcome of registering an idempotency key.
type CheckResult struct {
	// IsDuplicate is false only for the single caller that won the insert.
	IsDuplicate bool
	// CachedResponse is set when IsDuplicate and the original finished.
	CachedResponse json.RawMessage
	// RequestID links to the Request created for the key.
	RequestID int64
}
