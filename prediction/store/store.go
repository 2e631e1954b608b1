package store

import (
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/kjsvbshk/Tesis-sub000/prediction/store/idemrecords"
	"github.com/kjsvbshk/Tesis-sub000/prediction/store/outboxevents"
	"github.com/kjsvbshk/Tesis-sub000/prediction/store/requests"
)

// Store combines all domain-specific queriers
type Store struct {
	Requests     requests.Querier
	Idempotency  idemrecords.Querier
	OutboxEvents outboxevents.Querier
}

// NewStore creates a new Store with all domain queriers
func NewStore(db *pgxpool.Pool) *Store {
	return &Store{
		Requests:     requests.New(db),
		Idempotency:  idemrecords.New(db),
		OutboxEvents: outboxevents.New(db),
	}
}
