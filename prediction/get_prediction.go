package prediction

import (
	"context"
	"strings"

	"encore.dev/beta/errs"
	"encore.dev/rlog"

	"github.com/kjsvbshk/Tesis-sub000/prediction/business/forecast"
)

type GetPredictionRequest struct {
	IdempotencyKey string `header:"X-Idempotency-Key" json:"-"`

	MatchID  string `json:"match_id" validate:"required,max=64"`
	Provider string `json:"provider" validate:"required,max=32"`
	// AllowStale accepts a cached prediction past its freshness window
	// while a background refresh runs.
	AllowStale bool `json:"allow_stale"`
}

type PredictionResponse struct {
	Result forecast.PredictionResult `json:"result"`
}

//encore:api public path=/v1/predictions method=POST
func (s *Service) GetPrediction(ctx context.Context, req *GetPredictionRequest) (*PredictionResponse, error) {
	result, err := s.business.GetPrediction(ctx, forecast.GetPredictionParams{
		IdempotencyKey: req.IdempotencyKey,
		MatchID:        req.MatchID,
		Provider:       req.Provider,
		AllowStale:     req.AllowStale,
	})
	if err != nil {
		rlog.Error("prediction lookup failed", "match_id", req.MatchID, "provider", req.Provider, "error", err)
		return nil, err
	}

	if !result.Replayed {
		s.nudgeOutbox("prediction")
	}

	return &PredictionResponse{Result: *result}, nil
}

// Validate implements validation for GetPredictionRequest using go-playground/validator
func (r *GetPredictionRequest) Validate() error {
	if strings.TrimSpace(r.IdempotencyKey) == "" {
		return &errs.Error{Code: errs.InvalidArgument, Message: "X-Idempotency-Key header is required"}
	}

	if err := validate.Struct(r); err != nil {
		return &errs.Error{Code: errs.InvalidArgument, Message: err.Error()}
	}

	return nil
}
