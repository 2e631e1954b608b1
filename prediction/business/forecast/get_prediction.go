package forecast

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"encoding/json"

	"encore.dev/beta/errs"
	"encore.dev/rlog"

	"github.com/kjsvbshk/Tesis-sub000/prediction/model"
)

type GetPredictionParams struct {
	IdempotencyKey string
	MatchID        string
	Provider       string
	AllowStale     bool
}

// PredictionResult is returned to the API layer and replayed verbatim to
// duplicate submissions.
type PredictionResult struct {
	RequestID  int64           `json:"request_id"`
	MatchID    string          `json:"match_id"`
	Provider   string          `json:"provider"`
	Prediction json.RawMessage `json:"prediction"`
	Replayed   bool            `json:"replayed,omitempty"`
}

// GetPrediction runs the full reliability flow for one prediction lookup:
// idempotent registration, durable lifecycle tracking, cached provider
// fetch, and the outbox event riding the terminal transition.
func (b *business) GetPrediction(ctx context.Context, params GetPredictionParams) (*PredictionResult, error) {
	metadata, err := model.NewEnvelope("prediction.request", map[string]string{
		"match_id": params.MatchID,
		"provider": params.Provider,
	})
	if err != nil {
		return nil, &errs.Error{Code: errs.InvalidArgument, Message: "invalid request metadata"}
	}

	check, err := b.idem.CheckAndRegister(ctx, params.IdempotencyKey, hashParams(params), metadata)
	if err != nil {
		return nil, registrationError(err)
	}

	if check.IsDuplicate {
		var replay PredictionResult
		if err := json.Unmarshal(check.CachedResponse, &replay); err != nil {
			rlog.Error("stored idempotent response is unreadable", "key", params.IdempotencyKey, "error", err)
			return nil, &errs.Error{Code: errs.Internal, Message: "stored response is unreadable"}
		}
		replay.Replayed = true
		return &replay, nil
	}

	requestID := check.RequestID
	if err := b.tracker.MarkProcessing(ctx, requestID); err != nil {
		return nil, transitionError(err)
	}

	value, err := b.cache.GetOrSet(ctx,
		predictionPrefix+params.Provider+":"+params.MatchID,
		func(fetchCtx context.Context) (any, error) {
			res, callErr := b.providers.Call(fetchCtx, params.Provider, "predictions/"+params.MatchID)
			if callErr != nil {
				return nil, callErr
			}
			return res.Body, nil
		},
		predictionTTL, predictionStaleTTL, params.AllowStale,
	)
	if err != nil {
		if markErr := b.tracker.MarkFailed(ctx, requestID, err); markErr != nil {
			rlog.Error("failed to mark request failed", "request_id", requestID, "error", markErr)
		}
		return nil, providerError(err)
	}

	result := &PredictionResult{
		RequestID:  requestID,
		MatchID:    params.MatchID,
		Provider:   params.Provider,
		Prediction: value.(json.RawMessage),
	}

	if err := b.tracker.MarkCompleted(ctx, requestID, result.Prediction); err != nil {
		return nil, transitionError(err)
	}

	// Finalize the idempotency record so retries replay this response.
	// The request already committed; a failure here only delays replay
	// until the record expires.
	payload, err := json.Marshal(result)
	if err == nil {
		err = b.idem.StoreResponse(ctx, params.IdempotencyKey, payload)
	}
	if err != nil {
		rlog.Error("failed to store idempotent response", "key", params.IdempotencyKey, "error", err)
	}

	return result, nil
}

// hashParams fingerprints the business inputs so a reused idempotency key
// with a different body is rejected instead of replayed.
func hashParams(params GetPredictionParams) string {
	sum := md5.Sum([]byte(params.MatchID + "\x00" + params.Provider))
	return hex.EncodeToString(sum[:])
}
