package outboxevents

import (
	"github.com/jackc/pgx/v5/pgtype"
)

// OutboxEvent mirrors the outbox_events table. Rows are append-only;
// published_at is set once by the dispatcher and never cleared.
type OutboxEvent struct {
	ID          int64
	Topic       string
	Payload     []byte
	CreatedAt   pgtype.Timestamptz
	PublishedAt pgtype.Timestamptz
}
