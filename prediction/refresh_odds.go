package prediction

import (
	"context"

	"encore.dev/beta/errs"
	"encore.dev/rlog"

	"github.com/kjsvbshk/Tesis-sub000/prediction/business/forecast"
)

type RefreshOddsRequest struct {
	Providers []string `json:"providers" validate:"required,min=1,dive,required,max=32"`
	// RequireAll fails the whole refresh when any provider is down
	// instead of accepting a partial result.
	RequireAll bool `json:"require_all"`
}

type RefreshOddsResponse struct {
	Result forecast.RefreshResult `json:"result"`
}

//encore:api public path=/v1/odds/refresh method=POST
func (s *Service) RefreshOdds(ctx context.Context, req *RefreshOddsRequest) (*RefreshOddsResponse, error) {
	result, err := s.business.RefreshOdds(ctx, forecast.RefreshOddsParams{
		Providers:  req.Providers,
		RequireAll: req.RequireAll,
	})
	if err != nil {
		rlog.Error("odds refresh failed", "providers", req.Providers, "error", err)
		return nil, err
	}

	s.nudgeOutbox("odds-refresh")

	return &RefreshOddsResponse{Result: *result}, nil
}

// Validate implements validation for RefreshOddsRequest
func (r *RefreshOddsRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return &errs.Error{Code: errs.InvalidArgument, Message: err.Error()}
	}

	return nil
}
