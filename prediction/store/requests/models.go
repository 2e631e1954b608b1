package requests

import (
	"github.com/jackc/pgx/v5/pgtype"
)

// Request mirrors the requests table.
type Request struct {
	ID             int64
	IdempotencyKey string
	Status         string
	Metadata       []byte
	ErrorMessage   pgtype.Text
	CreatedAt      pgtype.Timestamptz
	UpdatedAt      pgtype.Timestamptz
	CompletedAt    pgtype.Timestamptz
}
