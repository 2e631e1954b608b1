package outboxevents

import (
	"context"
)

// Querier is the storage contract for the transactional event log.
type Querier interface {
	CreateEvent(ctx context.Context, arg CreateEventParams) (OutboxEvent, error)
	// ListUnpublished returns undelivered events in insertion order.
	ListUnpublished(ctx context.Context, limit int32) ([]OutboxEvent, error)
	// MarkPublished records confirmed delivery. It reports rows updated;
	// an already-published event yields zero.
	MarkPublished(ctx context.Context, id int64) (int64, error)
}

var _ Querier = (*Queries)(nil)
