package outboxevents

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// DBTX is satisfied by *pgxpool.Pool and pgx.Tx.
type DBTX interface {
	Exec(ctx context.Context, sql string, args ...interface{}) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row
}

func New(db DBTX) *Queries {
	return &Queries{db: db}
}

type Queries struct {
	db DBTX
}

func (q *Queries) WithTx(tx pgx.Tx) *Queries {
	return &Queries{db: tx}
}

const createEvent = `
INSERT INTO outbox_events (topic, payload)
VALUES ($1, $2)
RETURNING id, topic, payload, created_at, published_at
`

type CreateEventParams struct {
	Topic   string
	Payload []byte
}

func (q *Queries) CreateEvent(ctx context.Context, arg CreateEventParams) (OutboxEvent, error) {
	row := q.db.QueryRow(ctx, createEvent, arg.Topic, arg.Payload)
	var i OutboxEvent
	err := row.Scan(
		&i.ID,
		&i.Topic,
		&i.Payload,
		&i.CreatedAt,
		&i.PublishedAt,
	)
	return i, err
}

const listUnpublished = `
SELECT id, topic, payload, created_at, published_at
FROM outbox_events
WHERE published_at IS NULL
ORDER BY id
LIMIT $1
`

func (q *Queries) ListUnpublished(ctx context.Context, limit int32) ([]OutboxEvent, error) {
	rows, err := q.db.Query(ctx, listUnpublished, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []OutboxEvent
	for rows.Next() {
		var i OutboxEvent
		if err := rows.Scan(
			&i.ID,
			&i.Topic,
			&i.Payload,
			&i.CreatedAt,
			&i.PublishedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const markPublished = `
UPDATE outbox_events
SET published_at = NOW()
WHERE id = $1 AND published_at IS NULL
`

func (q *Queries) MarkPublished(ctx context.Context, id int64) (int64, error) {
	tag, err := q.db.Exec(ctx, markPublished, id)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
