package tracker

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"encore.dev/beta/errs"
	"encore.dev/rlog"

	"github.com/kjsvbshk/Tesis-sub000/prediction/model"
	"github.com/kjsvbshk/Tesis-sub000/prediction/store/requests"
)

// DB begins transactions; *pgxpool.Pool satisfies it.
type DB interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}

// EventAppender writes an outbox event on the supplied transaction, so the
// event commits iff the status transition commits.
type EventAppender interface {
	Append(ctx context.Context, tx pgx.Tx, topic string, payload *model.Envelope) error
}

// Tracker is the durable state machine for request lifecycles.
type Tracker interface {
	Create(ctx context.Context, key string, metadata *model.Envelope) (*model.Request, error)
	Get(ctx context.Context, id int64) (*model.Request, error)
	MarkProcessing(ctx context.Context, id int64) error
	MarkCompleted(ctx context.Context, id int64, detail json.RawMessage) error
	MarkFailed(ctx context.Context, id int64, cause error) error
	MarkPartial(ctx context.Context, id int64, detail json.RawMessage) error
}

type tracker struct {
	db       DB
	requests requests.Querier
	events   EventAppender

	// newRequests binds a querier to a transaction; swapped out in tests.
	newRequests func(db requests.DBTX) requests.Querier
}

func New(db DB, q requests.Querier, events EventAppender) Tracker {
	return &tracker{
		db:       db,
		requests: q,
		events:   events,
		newRequests: func(db requests.DBTX) requests.Querier {
			return requests.New(db)
		},
	}
}

// Create inserts a new request in the received status.
func (t *tracker) Create(ctx context.Context, key string, metadata *model.Envelope) (*model.Request, error) {
	var meta []byte
	if metadata != nil {
		var err error
		meta, err = json.Marshal(metadata)
		if err != nil {
			return nil, &errs.Error{Code: errs.InvalidArgument, Message: "invalid request metadata"}
		}
	}

	row, err := t.requests.CreateRequest(ctx, requests.CreateRequestParams{
		IdempotencyKey: key,
		Status:         string(model.RequestStatusReceived),
		Metadata:       meta,
	})
	if err != nil {
		return nil, &errs.Error{Code: errs.Internal, Message: "failed to create request"}
	}

	return convertRow(row), nil
}

func (t *tracker) Get(ctx context.Context, id int64) (*model.Request, error) {
	row, err := t.requests.GetRequest(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, &errs.Error{Code: errs.NotFound, Message: "request not found"}
		}
		return nil, &errs.Error{Code: errs.Internal, Message: "failed to load request"}
	}
	return convertRow(row), nil
}

// MarkProcessing moves a received request into processing.
func (t *tracker) MarkProcessing(ctx context.Context, id int64) error {
	return t.transitionWithLock(ctx, id, func(ctx context.Context, tx pgx.Tx, qtx requests.Querier, current requests.Request) error {
		from := model.RequestStatus(current.Status)
		if !CanTransition(from, model.RequestStatusProcessing) {
			return t.reject(id, from, model.RequestStatusProcessing)
		}

		_, err := qtx.UpdateRequestStatus(ctx, requests.UpdateRequestStatusParams{
			ID:     id,
			Status: string(model.RequestStatusProcessing),
		})
		return err
	})
}

func (t *tracker) MarkCompleted(ctx context.Context, id int64, detail json.RawMessage) error {
	return t.markTerminal(ctx, id, model.RequestStatusCompleted, "", detail)
}

func (t *tracker) MarkFailed(ctx context.Context, id int64, cause error) error {
	msg := "unknown failure"
	if cause != nil {
		msg = cause.Error()
	}
	return t.markTerminal(ctx, id, model.RequestStatusFailed, msg, nil)
}

func (t *tracker) MarkPartial(ctx context.Context, id int64, detail json.RawMessage) error {
	return t.markTerminal(ctx, id, model.RequestStatusPartial, "", detail)
}

// markTerminal finalizes the request and appends the matching outbox event
// in the same transaction. Re-marking the current terminal status is a
// no-op success; any other transition out of a terminal status is
// rejected.
func (t *tracker) markTerminal(ctx context.Context, id int64, target model.RequestStatus, errMsg string, detail json.RawMessage) error {
	return t.transitionWithLock(ctx, id, func(ctx context.Context, tx pgx.Tx, qtx requests.Querier, current requests.Request) error {
		from := model.RequestStatus(current.Status)
		if from == target {
			rlog.Debug("request already in target status", "request_id", id, "status", target)
			return nil
		}
		if !CanTransition(from, target) {
			return t.reject(id, from, target)
		}

		errText := pgtype.Text{}
		if errMsg != "" {
			errText = pgtype.Text{String: errMsg, Valid: true}
		}
		if _, err := qtx.FinalizeRequest(ctx, requests.FinalizeRequestParams{
			ID:           id,
			Status:       string(target),
			ErrorMessage: errText,
		}); err != nil {
			return err
		}

		payload, err := model.NewEnvelope("request.status", model.RequestEventPayload{
			EventID:      uuid.NewString(),
			RequestID:    id,
			Status:       target,
			ErrorMessage: errMsg,
			Detail:       detail,
		})
		if err != nil {
			return err
		}

		return t.events.Append(ctx, tx, topicFor(target), payload)
	})
}

// transitionWithLock performs a state transition with row-level locking so
// concurrent transitions on one request serialize and losers observe the
// winner's status.
func (t *tracker) transitionWithLock(ctx context.Context, id int64, fn func(ctx context.Context, tx pgx.Tx, qtx requests.Querier, current requests.Request) error) error {
	tx, err := t.db.Begin(ctx)
	if err != nil {
		return &errs.Error{Code: errs.Internal, Message: "failed to start transaction"}
	}
	defer tx.Rollback(ctx)

	qtx := t.newRequests(tx)

	current, err := qtx.GetRequestForUpdate(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return &errs.Error{Code: errs.NotFound, Message: "request not found"}
		}
		return &errs.Error{Code: errs.Internal, Message: "failed to lock request for state transition"}
	}

	if err := fn(ctx, tx, qtx, current); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return &errs.Error{Code: errs.Internal, Message: "failed to commit state transition"}
	}

	return nil
}

func (t *tracker) reject(id int64, from, to model.RequestStatus) error {
	err := &InvalidTransitionError{RequestID: id, From: from, To: to}
	rlog.Error("rejected request state transition", "request_id", id, "from", from, "to", to)
	return err
}

func topicFor(status model.RequestStatus) string {
	switch status {
	case model.RequestStatusCompleted:
		return model.TopicRequestCompleted
	case model.RequestStatusPartial:
		return model.TopicRequestPartial
	default:
		return model.TopicRequestFailed
	}
}

// convertRow converts a database row to a domain model request.
func convertRow(row requests.Request) *model.Request {
	req := &model.Request{
		ID:             row.ID,
		IdempotencyKey: row.IdempotencyKey,
		Status:         model.RequestStatus(row.Status),
		CreatedAt:      row.CreatedAt.Time,
		UpdatedAt:      row.UpdatedAt.Time,
	}

	if len(row.Metadata) > 0 {
		var env model.Envelope
		if err := json.Unmarshal(row.Metadata, &env); err == nil {
			req.Metadata = &env
		}
	}

	if row.ErrorMessage.Valid {
		req.ErrorMessage = &row.ErrorMessage.String
	}

	if row.CompletedAt.Valid {
		completedAt := row.CompletedAt.Time
		req.CompletedAt = &completedAt
	}

	return req
}
