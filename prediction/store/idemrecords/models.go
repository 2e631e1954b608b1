package idemrecords

import (
	"github.com/jackc/pgx/v5/pgtype"
)

// IdempotencyRecord mirrors the idempotency_records table. StoredResponse
// is NULL while the original request is still in flight.
type IdempotencyRecord struct {
	Key            string
	RequestID      int64
	RequestHash    pgtype.Text
	StoredResponse []byte
	CreatedAt      pgtype.Timestamptz
	ExpiresAt      pgtype.Timestamptz
}
