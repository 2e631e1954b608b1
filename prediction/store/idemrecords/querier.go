package idemrecords

import (
	"context"
)

// Querier is the storage contract for idempotency records. The unique
// constraint on key is what makes CreateRecord the atomic arbiter of which
// concurrent caller owns the original request.
type Querier interface {
	CreateRecord(ctx context.Context, arg CreateRecordParams) (IdempotencyRecord, error)
	GetRecord(ctx context.Context, key string) (IdempotencyRecord, error)
	// FinalizeRecord stores the response for a pending record. It reports
	// the number of rows updated; zero means the key is absent or already
	// finalized.
	FinalizeRecord(ctx context.Context, arg FinalizeRecordParams) (int64, error)
	// DeleteExpired removes records past their expiry, returning how many
	// were swept.
	DeleteExpired(ctx context.Context) (int64, error)
}

var _ Querier = (*Queries)(nil)
