package idemrecords

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
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

const createRecord = `
INSERT INTO idempotency_records (key, request_id, request_hash, expires_at)
VALUES ($1, $2, $3, $4)
RETURNING key, request_id, request_hash, stored_response, created_at, expires_at
`

type CreateRecordParams struct {
	Key         string
	RequestID   int64
	RequestHash pgtype.Text
	ExpiresAt   pgtype.Timestamptz
}

func (q *Queries) CreateRecord(ctx context.Context, arg CreateRecordParams) (IdempotencyRecord, error) {
	row := q.db.QueryRow(ctx, createRecord, arg.Key, arg.RequestID, arg.RequestHash, arg.ExpiresAt)
	var i IdempotencyRecord
	err := row.Scan(
		&i.Key,
		&i.RequestID,
		&i.RequestHash,
		&i.StoredResponse,
		&i.CreatedAt,
		&i.ExpiresAt,
	)
	return i, err
}

const getRecord = `
SELECT key, request_id, request_hash, stored_response, created_at, expires_at
FROM idempotency_records
WHERE key = $1
`

func (q *Queries) GetRecord(ctx context.Context, key string) (IdempotencyRecord, error) {
	row := q.db.QueryRow(ctx, getRecord, key)
	var i IdempotencyRecord
	err := row.Scan(
		&i.Key,
		&i.RequestID,
		&i.RequestHash,
		&i.StoredResponse,
		&i.CreatedAt,
		&i.ExpiresAt,
	)
	return i, err
}

const finalizeRecord = `
UPDATE idempotency_records
SET stored_response = $2
WHERE key = $1 AND stored_response IS NULL
`

type FinalizeRecordParams struct {
	Key            string
	StoredResponse []byte
}

func (q *Queries) FinalizeRecord(ctx context.Context, arg FinalizeRecordParams) (int64, error) {
	tag, err := q.db.Exec(ctx, finalizeRecord, arg.Key, arg.StoredResponse)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

const deleteExpired = `
DELETE FROM idempotency_records
WHERE expires_at < NOW()
`

func (q *Queries) DeleteExpired(ctx context.Context) (int64, error) {
	tag, err := q.db.Exec(ctx, deleteExpired)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
