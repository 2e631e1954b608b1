package prediction

import (
	"context"

	"encore.dev/beta/errs"
	"encore.dev/rlog"

	"github.com/kjsvbshk/Tesis-sub000/prediction/model"
)

type RequestResponse struct {
	Request model.Request `json:"request"`
}

//encore:api public path=/v1/requests/:id method=GET
func (s *Service) GetRequest(ctx context.Context, id int) (*RequestResponse, error) {
	if id <= 0 {
		return nil, &errs.Error{Code: errs.InvalidArgument, Message: "invalid request ID"}
	}

	result, err := s.business.GetRequest(ctx, int64(id))
	if err != nil {
		rlog.Error("failed to get request", "error", err, "id", id)
		return nil, err
	}

	return &RequestResponse{
		Request: *result,
	}, nil
}
