package requests

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

const createRequest = `
INSERT INTO requests (idempotency_key, status, metadata)
VALUES ($1, $2, $3)
RETURNING id, idempotency_key, status, metadata, error_message, created_at, updated_at, completed_at
`

type CreateRequestParams struct {
	IdempotencyKey string
	Status         string
	Metadata       []byte
}

func (q *Queries) CreateRequest(ctx context.Context, arg CreateRequestParams) (Request, error) {
	row := q.db.QueryRow(ctx, createRequest, arg.IdempotencyKey, arg.Status, arg.Metadata)
	var i Request
	err := row.Scan(
		&i.ID,
		&i.IdempotencyKey,
		&i.Status,
		&i.Metadata,
		&i.ErrorMessage,
		&i.CreatedAt,
		&i.UpdatedAt,
		&i.CompletedAt,
	)
	return i, err
}

const getRequest = `
SELECT id, idempotency_key, status, metadata, error_message, created_at, updated_at, completed_at
FROM requests
WHERE id = $1
`

func (q *Queries) GetRequest(ctx context.Context, id int64) (Request, error) {
	row := q.db.QueryRow(ctx, getRequest, id)
	var i Request
	err := row.Scan(
		&i.ID,
		&i.IdempotencyKey,
		&i.Status,
		&i.Metadata,
		&i.ErrorMessage,
		&i.CreatedAt,
		&i.UpdatedAt,
		&i.CompletedAt,
	)
	return i, err
}

const getRequestForUpdate = `
SELECT id, idempotency_key, status, metadata, error_message, created_at, updated_at, completed_at
FROM requests
WHERE id = $1
FOR UPDATE
`

func (q *Queries) GetRequestForUpdate(ctx context.Context, id int64) (Request, error) {
	row := q.db.QueryRow(ctx, getRequestForUpdate, id)
	var i Request
	err := row.Scan(
		&i.ID,
		&i.IdempotencyKey,
		&i.Status,
		&i.Metadata,
		&i.ErrorMessage,
		&i.CreatedAt,
		&i.UpdatedAt,
		&i.CompletedAt,
	)
	return i, err
}

const updateRequestStatus = `
UPDATE requests
SET status = $2, updated_at = NOW()
WHERE id = $1
RETURNING id, idempotency_key, status, metadata, error_message, created_at, updated_at, completed_at
`

type UpdateRequestStatusParams struct {
	ID     int64
	Status string
}

func (q *Queries) UpdateRequestStatus(ctx context.Context, arg UpdateRequestStatusParams) (Request, error) {
	row := q.db.QueryRow(ctx, updateRequestStatus, arg.ID, arg.Status)
	var i Request
	err := row.Scan(
		&i.ID,
		&i.IdempotencyKey,
		&i.Status,
		&i.Metadata,
		&i.ErrorMessage,
		&i.CreatedAt,
		&i.UpdatedAt,
		&i.CompletedAt,
	)
	return i, err
}

const finalizeRequest = `
UPDATE requests
SET status = $2, error_message = $3, updated_at = NOW(), completed_at = NOW()
WHERE id = $1
RETURNING id, idempotency_key, status, metadata, error_message, created_at, updated_at, completed_at
`

type FinalizeRequestParams struct {
	ID           int64
	Status       string
	ErrorMessage pgtype.Text
}

func (q *Queries) FinalizeRequest(ctx context.Context, arg FinalizeRequestParams) (Request, error) {
	row := q.db.QueryRow(ctx, finalizeRequest, arg.ID, arg.Status, arg.ErrorMessage)
	var i Request
	err := row.Scan(
		&i.ID,
		&i.IdempotencyKey,
		&i.Status,
		&i.Metadata,
		&i.ErrorMessage,
		&i.CreatedAt,
		&i.UpdatedAt,
		&i.CompletedAt,
	)
	return i, err
}
