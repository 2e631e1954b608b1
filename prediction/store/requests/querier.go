package requests

import (
	"context"
)

// Querier is the storage contract for request lifecycle rows.
type Querier interface {
	CreateRequest(ctx context.Context, arg CreateRequestParams) (Request, error)
	GetRequest(ctx context.Context, id int64) (Request, error)
	// GetRequestForUpdate locks the row for the duration of the enclosing
	// transaction so status transitions stay linear per row.
	GetRequestForUpdate(ctx context.Context, id int64) (Request, error)
	UpdateRequestStatus(ctx context.Context, arg UpdateRequestStatusParams) (Request, error)
	// FinalizeRequest moves the row to a terminal status, setting
	// completed_at and the optional error message.
	FinalizeRequest(ctx context.Context, arg FinalizeRequestParams) (Request, error)
}

var _ Querier = (*Queries)(nil)
