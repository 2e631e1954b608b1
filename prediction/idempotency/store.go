package idempotency

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"

	"encore.dev/beta/errs"
	"encore.dev/rlog"

	"github.com/kjsvbshk/Tesis-sub000/prediction/model"
	"github.com/kjsvbshk/Tesis-sub000/prediction/store/idemrecords"
	"github.com/kjsvbshk/Tesis-sub000/prediction/store/requests"
)

const defaultTTL = 24 * time.Hour

var (
	// ErrKeyNotFound means StoreResponse was called for a key that was
	// never registered (or already swept).
	ErrKeyNotFound = errors.New("idempotency key not found")
	// ErrAlreadyFinalized means the key's response was stored before;
	// records finalize exactly once.
	ErrAlreadyFinalized = errors.New("idempotency key already finalized")
	// ErrPendingDuplicate is the retryable signal returned when a key is
	// seen again while the original request is still in flight.
	ErrPendingDuplicate = errors.New("request is already being processed")
	// ErrKeyConflict means the key was reused with a different request
	// body.
	ErrKeyConflict = errors.New("idempotency key conflict: request body does not match previous request")
)

// DB begins transactions; *pgxpool.Pool satisfies it.
type DB interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}

// Store dedupes client retries on a client-supplied idempotency key,
// backed by the request tracker's storage. Registration inserts the
// pending record and its request row in one transaction, with the unique
// constraint on key deciding which concurrent caller owns the original.
type Store struct {
	db      DB
	records idemrecords.Querier
	ttl     time.Duration

	// tx-bound querier constructors, swapped out in tests.
	newRecords  func(db idemrecords.DBTX) idemrecords.Querier
	newRequests func(db requests.DBTX) requests.Querier
	now         func() time.Time
}

func NewStore(db DB, records idemrecords.Querier) *Store {
	return &Store{
		db:      db,
		records: records,
		ttl:     defaultTTL,
		newRecords: func(db idemrecords.DBTX) idemrecords.Querier {
			return idemrecords.New(db)
		},
		newRequests: func(db requests.DBTX) requests.Querier {
			return requests.New(db)
		},
		now: time.Now,
	}
}

// CheckAndRegister registers key, creating its pending record and request
// row atomically. An unseen key yields IsDuplicate=false and the new
// request id. A finalized key yields IsDuplicate=true with the stored
// response. A pending key yields ErrPendingDuplicate, and a key reused
// with a different request hash yields ErrKeyConflict.
func (s *Store) CheckAndRegister(ctx context.Context, key, requestHash string, metadata *model.Envelope) (*model.CheckResult, error) {
	result, err := s.register(ctx, key, requestHash, metadata)
	if err == nil {
		return result, nil
	}

	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != pgerrcode.UniqueViolation {
		return nil, &errs.Error{Code: errs.Internal, Message: "failed to register idempotency key"}
	}

	// Lost the insert race or the key was seen earlier; read the winner.
	existing, err := s.records.GetRecord(ctx, key)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			// Registered record swept between insert and read.
			return nil, ErrKeyNotFound
		}
		return nil, &errs.Error{Code: errs.Internal, Message: "failed to look up idempotency key"}
	}

	if requestHash != "" && existing.RequestHash.Valid && existing.RequestHash.String != requestHash {
		return nil, ErrKeyConflict
	}

	if len(existing.StoredResponse) > 0 {
		rlog.Debug("returning stored response for duplicate submission", "key", key)
		return &model.CheckResult{
			IsDuplicate:    true,
			CachedResponse: existing.StoredResponse,
			RequestID:      existing.RequestID,
		}, nil
	}

	rlog.Info("concurrent duplicate submission detected", "key", key)
	return nil, ErrPendingDuplicate
}

// register inserts the request row and pending record in one transaction.
// A unique violation rolls back both, so exactly one request row ever
// exists per key.
func (s *Store) register(ctx context.Context, key, requestHash string, metadata *model.Envelope) (*model.CheckResult, error) {
	tx, err := s.db.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	var meta []byte
	if metadata != nil {
		if meta, err = json.Marshal(metadata); err != nil {
			return nil, err
		}
	}

	req, err := s.newRequests(tx).CreateRequest(ctx, requests.CreateRequestParams{
		IdempotencyKey: key,
		Status:         string(model.RequestStatusReceived),
		Metadata:       meta,
	})
	if err != nil {
		return nil, err
	}

	hash := pgtype.Text{}
	if requestHash != "" {
		hash = pgtype.Text{String: requestHash, Valid: true}
	}
	if _, err := s.newRecords(tx).CreateRecord(ctx, idemrecords.CreateRecordParams{
		Key:         key,
		RequestID:   req.ID,
		RequestHash: hash,
		ExpiresAt:   pgtype.Timestamptz{Time: s.now().Add(s.ttl), Valid: true},
	}); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	return &model.CheckResult{RequestID: req.ID}, nil
}

// StoreResponse finalizes the key with the response replayed to duplicate
// submissions. Finalization happens exactly once.
func (s *Store) StoreResponse(ctx context.Context, key string, response json.RawMessage) error {
	n, err := s.records.FinalizeRecord(ctx, idemrecords.FinalizeRecordParams{
		Key:            key,
		StoredResponse: response,
	})
	if err != nil {
		return &errs.Error{Code: errs.Internal, Message: "failed to store idempotent response"}
	}
	if n > 0 {
		return nil
	}

	if _, err := s.records.GetRecord(ctx, key); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrKeyNotFound
		}
		return &errs.Error{Code: errs.Internal, Message: "failed to look up idempotency key"}
	}
	return ErrAlreadyFinalized
}

// PurgeExpired sweeps records past their TTL. It is invoked by the
// periodic sweeper, not the request path.
func (s *Store) PurgeExpired(ctx context.Context) (int64, error) {
	n, err := s.records.DeleteExpired(ctx)
	if err != nil {
		return 0, err
	}
	if n > 0 {
		rlog.Info("purged expired idempotency records", "count", n)
	}
	return n, nil
}
