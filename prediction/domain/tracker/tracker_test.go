package tracker

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"encore.dev/beta/errs"

	"github.com/kjsvbshk/Tesis-sub000/prediction/mocks/store/request_store"
	"github.com/kjsvbshk/Tesis-sub000/prediction/model"
	"github.com/kjsvbshk/Tesis-sub000/prediction/store/requests"
)

// fakeTx satisfies pgx.Tx for exercising transaction boundaries without a
// database. Only Commit and Rollback carry behavior.
type fakeTx struct {
	commits   int
	rollbacks int
	commitErr error
}

func (t *fakeTx) Begin(ctx context.Context) (pgx.Tx, error) { return t, nil }
func (t *fakeTx) Commit(ctx context.Context) error {
	if t.commitErr != nil {
		return t.commitErr
	}
	t.commits++
	return nil
}
func (t *fakeTx) Rollback(ctx context.Context) error {
	t.rollbacks++
	return nil
}
func (t *fakeTx) CopyFrom(ctx context.Context, tableName pgx.Identifier, columnNames []string, rowSrc pgx.CopyFromSource) (int64, error) {
	return 0, nil
}
func (t *fakeTx) SendBatch(ctx context.Context, b *pgx.Batch) pgx.BatchResults { return nil }
func (t *fakeTx) LargeObjects() pgx.LargeObjects                               { return pgx.LargeObjects{} }
func (t *fakeTx) Prepare(ctx context.Context, name, sql string) (*pgconn.StatementDescription, error) {
	return nil, nil
}
func (t *fakeTx) Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, nil
}
func (t *fakeTx) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return nil, nil
}
func (t *fakeTx) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row { return nil }
func (t *fakeTx) Conn() *pgx.Conn                                               { return nil }

type fakeDB struct {
	tx       *fakeTx
	beginErr error
}

func (d *fakeDB) Begin(ctx context.Context) (pgx.Tx, error) {
	if d.beginErr != nil {
		return nil, d.beginErr
	}
	return d.tx, nil
}

type appendedEvent struct {
	topic   string
	payload *model.Envelope
}

type fakeAppender struct {
	events []appendedEvent
	err    error
}

func (a *fakeAppender) Append(ctx context.Context, tx pgx.Tx, topic string, payload *model.Envelope) error {
	if a.err != nil {
		return a.err
	}
	a.events = append(a.events, appendedEvent{topic: topic, payload: payload})
	return nil
}

func newTestTracker(db DB, q requests.Querier, events EventAppender) *tracker {
	return &tracker{
		db:       db,
		requests: q,
		events:   events,
		newRequests: func(requests.DBTX) requests.Querier {
			return q
		},
	}
}

func TestMarkProcessing(t *testing.T) {
	testCases := []struct {
		name              string
		currentStatus     string
		lockErr           error
		updateErr         error
		expectUpdate      bool
		expectCommit      bool
		expectedErrCode   errs.ErrCode
		expectInvalidTrns bool
	}{
		{
			name:          "received_moves_to_processing",
			currentStatus: string(model.RequestStatusReceived),
			expectUpdate:  true,
			expectCommit:  true,
		},
		{
			name:              "processing_rejected",
			currentStatus:     string(model.RequestStatusProcessing),
			expectInvalidTrns: true,
		},
		{
			name:              "completed_rejected",
			currentStatus:     string(model.RequestStatusCompleted),
			expectInvalidTrns: true,
		},
		{
			name:            "request_missing",
			lockErr:         pgx.ErrNoRows,
			expectedErrCode: errs.NotFound,
		},
		{
			name:            "lock_failure",
			lockErr:         errors.New("connection reset"),
			expectedErrCode: errs.Internal,
		},
		{
			name:          "update_failure_propagates",
			currentStatus: string(model.RequestStatusReceived),
			updateErr:     errors.New("write failed"),
			expectUpdate:  true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			tx := &fakeTx{}
			mockQuerier := request_store.NewMockQuerier(ctrl)
			appender := &fakeAppender{}
			trk := newTestTracker(&fakeDB{tx: tx}, mockQuerier, appender)

			if tc.lockErr != nil {
				mockQuerier.EXPECT().
					GetRequestForUpdate(gomock.Any(), int64(1)).
					Return(requests.Request{}, tc.lockErr)
			} else {
				mockQuerier.EXPECT().
					GetRequestForUpdate(gomock.Any(), int64(1)).
					Return(requests.Request{ID: 1, Status: tc.currentStatus}, nil)
			}

			if tc.expectUpdate {
				mockQuerier.EXPECT().
					UpdateRequestStatus(gomock.Any(), requests.UpdateRequestStatusParams{
						ID:     1,
						Status: string(model.RequestStatusProcessing),
					}).
					Return(requests.Request{}, tc.updateErr)
			}

			err := trk.MarkProcessing(context.Background(), 1)

			if tc.expectCommit {
				assert.NoError(t, err)
				assert.Equal(t, 1, tx.commits)
				return
			}

			assert.Error(t, err)
			assert.Equal(t, 0, tx.commits)
			if tc.expectInvalidTrns {
				var invalid *InvalidTransitionError
				assert.ErrorAs(t, err, &invalid)
				assert.Equal(t, model.RequestStatusProcessing, invalid.To)
			}
			if tc.expectedErrCode != 0 {
				var apiErr *errs.Error
				assert.ErrorAs(t, err, &apiErr)
				assert.Equal(t, tc.expectedErrCode, apiErr.Code)
			}
		})
	}
}

func TestMarkTerminal(t *testing.T) {
	testCases := []struct {
		name           string
		run            func(trk *tracker) error
		currentStatus  string
		expectFinalize bool
		expectedStatus string
		expectedErrMsg string
		expectedTopic  string
		appendErr      error
		expectCommit   bool
		expectError    bool
	}{
		{
			name: "processing_completes",
			run: func(trk *tracker) error {
				return trk.MarkCompleted(context.Background(), 1, []byte(`{"score":"2-1"}`))
			},
			currentStatus:  string(model.RequestStatusProcessing),
			expectFinalize: true,
			expectedStatus: string(model.RequestStatusCompleted),
			expectedTopic:  model.TopicRequestCompleted,
			expectCommit:   true,
		},
		{
			name: "processing_fails_with_cause",
			run: func(trk *tracker) error {
				return trk.MarkFailed(context.Background(), 1, errors.New("provider unavailable"))
			},
			currentStatus:  string(model.RequestStatusProcessing),
			expectFinalize: true,
			expectedStatus: string(model.RequestStatusFailed),
			expectedErrMsg: "provider unavailable",
			expectedTopic:  model.TopicRequestFailed,
			expectCommit:   true,
		},
		{
			name: "processing_partial",
			run: func(trk *tracker) error {
				return trk.MarkPartial(context.Background(), 1, []byte(`{"refreshed":2}`))
			},
			currentStatus:  string(model.RequestStatusProcessing),
			expectFinalize: true,
			expectedStatus: string(model.RequestStatusPartial),
			expectedTopic:  model.TopicRequestPartial,
			expectCommit:   true,
		},
		{
			name: "remark_same_terminal_is_noop",
			run: func(trk *tracker) error {
				return trk.MarkCompleted(context.Background(), 1, nil)
			},
			currentStatus: string(model.RequestStatusCompleted),
			expectCommit:  true,
		},
		{
			name: "received_cannot_skip_processing",
			run: func(trk *tracker) error {
				return trk.MarkCompleted(context.Background(), 1, nil)
			},
			currentStatus: string(model.RequestStatusReceived),
			expectError:   true,
		},
		{
			name: "failed_cannot_become_completed",
			run: func(trk *tracker) error {
				return trk.MarkCompleted(context.Background(), 1, nil)
			},
			currentStatus: string(model.RequestStatusFailed),
			expectError:   true,
		},
		{
			name: "append_failure_aborts_transition",
			run: func(trk *tracker) error {
				return trk.MarkCompleted(context.Background(), 1, nil)
			},
			currentStatus:  string(model.RequestStatusProcessing),
			expectFinalize: true,
			expectedStatus: string(model.RequestStatusCompleted),
			appendErr:      errors.New("outbox insert failed"),
			expectError:    true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			tx := &fakeTx{}
			mockQuerier := request_store.NewMockQuerier(ctrl)
			appender := &fakeAppender{err: tc.appendErr}
			trk := newTestTracker(&fakeDB{tx: tx}, mockQuerier, appender)

			mockQuerier.EXPECT().
				GetRequestForUpdate(gomock.Any(), int64(1)).
				Return(requests.Request{ID: 1, Status: tc.currentStatus}, nil)

			if tc.expectFinalize {
				mockQuerier.EXPECT().
					FinalizeRequest(gomock.Any(), gomock.Any()).
					DoAndReturn(func(ctx context.Context, arg requests.FinalizeRequestParams) (requests.Request, error) {
						assert.Equal(t, int64(1), arg.ID)
						assert.Equal(t, tc.expectedStatus, arg.Status)
						if tc.expectedErrMsg != "" {
							assert.True(t, arg.ErrorMessage.Valid)
							assert.Equal(t, tc.expectedErrMsg, arg.ErrorMessage.String)
						} else {
							assert.False(t, arg.ErrorMessage.Valid)
						}
						return requests.Request{ID: 1, Status: arg.Status}, nil
					})
			}

			err := tc.run(trk)

			if tc.expectError {
				assert.Error(t, err)
				assert.Equal(t, 0, tx.commits)
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, 1, tx.commits)

			if tc.expectedTopic != "" {
				assert.Len(t, appender.events, 1)
				ev := appender.events[0]
				assert.Equal(t, tc.expectedTopic, ev.topic)
				assert.Equal(t, model.EnvelopeSchemaVersion, ev.payload.SchemaVersion)
				assert.Equal(t, "request.status", ev.payload.Kind)

				var body model.RequestEventPayload
				assert.NoError(t, ev.payload.Decode(&body))
				assert.NotEmpty(t, body.EventID)
				assert.Equal(t, int64(1), body.RequestID)
				assert.Equal(t, model.RequestStatus(tc.expectedStatus), body.Status)
				assert.Equal(t, tc.expectedErrMsg, body.ErrorMessage)
			} else {
				// Idempotent re-mark publishes nothing.
				assert.Empty(t, appender.events)
			}
		})
	}
}

func TestMarkTerminalRollsBackWhenUnlocked(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tx := &fakeTx{}
	mockQuerier := request_store.NewMockQuerier(ctrl)
	trk := newTestTracker(&fakeDB{tx: tx}, mockQuerier, &fakeAppender{})

	mockQuerier.EXPECT().
		GetRequestForUpdate(gomock.Any(), int64(7)).
		Return(requests.Request{}, pgx.ErrNoRows)

	err := trk.MarkCompleted(context.Background(), 7, nil)
	assert.Error(t, err)
	var apiErr *errs.Error
	assert.ErrorAs(t, err, &apiErr)
	assert.Equal(t, errs.NotFound, apiErr.Code)
	assert.Equal(t, 0, tx.commits)
	assert.Equal(t, 1, tx.rollbacks)
}

func TestCreate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQuerier := request_store.NewMockQuerier(ctrl)
	trk := newTestTracker(&fakeDB{tx: &fakeTx{}}, mockQuerier, &fakeAppender{})

	meta, err := model.NewEnvelope("prediction.request", map[string]string{"match_id": "m-100"})
	assert.NoError(t, err)

	mockQuerier.EXPECT().
		CreateRequest(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, arg requests.CreateRequestParams) (requests.Request, error) {
			assert.Equal(t, "key-1", arg.IdempotencyKey)
			assert.Equal(t, string(model.RequestStatusReceived), arg.Status)
			assert.NotEmpty(t, arg.Metadata)
			return requests.Request{
				ID:             10,
				IdempotencyKey: arg.IdempotencyKey,
				Status:         arg.Status,
				Metadata:       arg.Metadata,
			}, nil
		})

	req, err := trk.Create(context.Background(), "key-1", meta)
	assert.NoError(t, err)
	assert.Equal(t, int64(10), req.ID)
	assert.Equal(t, model.RequestStatusReceived, req.Status)
	assert.NotNil(t, req.Metadata)
	assert.Equal(t, "prediction.request", req.Metadata.Kind)
}

func TestGet(t *testing.T) {
	testCases := []struct {
		name            string
		queryErr        error
		expectedErrCode errs.ErrCode
	}{
		{name: "found"},
		{name: "not_found", queryErr: pgx.ErrNoRows, expectedErrCode: errs.NotFound},
		{name: "query_failure", queryErr: errors.New("timeout"), expectedErrCode: errs.Internal},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQuerier := request_store.NewMockQuerier(ctrl)
			trk := newTestTracker(&fakeDB{tx: &fakeTx{}}, mockQuerier, &fakeAppender{})

			if tc.queryErr != nil {
				mockQuerier.EXPECT().
					GetRequest(gomock.Any(), int64(3)).
					Return(requests.Request{}, tc.queryErr)
			} else {
				mockQuerier.EXPECT().
					GetRequest(gomock.Any(), int64(3)).
					Return(requests.Request{ID: 3, Status: string(model.RequestStatusProcessing)}, nil)
			}

			req, err := trk.Get(context.Background(), 3)

			if tc.expectedErrCode != 0 {
				assert.Error(t, err)
				var apiErr *errs.Error
				assert.ErrorAs(t, err, &apiErr)
				assert.Equal(t, tc.expectedErrCode, apiErr.Code)
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, int64(3), req.ID)
			assert.Equal(t, model.RequestStatusProcessing, req.Status)
		})
	}
}
