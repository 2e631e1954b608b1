package forecast

import (
	"errors"

	"encore.dev/beta/errs"

	"github.com/kjsvbshk/Tesis-sub000/prediction/breaker"
	"github.com/kjsvbshk/Tesis-sub000/prediction/domain/tracker"
	"github.com/kjsvbshk/Tesis-sub000/prediction/idempotency"
	"github.com/kjsvbshk/Tesis-sub000/prediction/provider"
)

// registrationError maps idempotency store failures to API errors. A
// pending duplicate is a retryable signal, not a silent re-execution.
func registrationError(err error) error {
	switch {
	case errors.Is(err, idempotency.ErrPendingDuplicate):
		return &errs.Error{Code: errs.Aborted, Message: "request is already being processed"}
	case errors.Is(err, idempotency.ErrKeyConflict):
		return &errs.Error{Code: errs.InvalidArgument, Message: err.Error()}
	default:
		var apiErr *errs.Error
		if errors.As(err, &apiErr) {
			return apiErr
		}
		return &errs.Error{Code: errs.Internal, Message: "failed to register request"}
	}
}

// transitionError surfaces tracker misuse; invalid transitions are a
// precondition failure, not an internal fault.
func transitionError(err error) error {
	var invalid *tracker.InvalidTransitionError
	if errors.As(err, &invalid) {
		return &errs.Error{Code: errs.FailedPrecondition, Message: invalid.Error()}
	}
	var apiErr *errs.Error
	if errors.As(err, &apiErr) {
		return apiErr
	}
	return &errs.Error{Code: errs.Internal, Message: "failed to update request state"}
}

// providerError distinguishes fail-fast (circuit open, retry later) from
// retries-exhausted (transient, retry sooner) from non-retryable upstream
// rejections.
func providerError(err error) error {
	if errors.Is(err, breaker.ErrCircuitOpen) {
		return &errs.Error{Code: errs.Unavailable, Message: "provider temporarily isolated, retry later"}
	}

	var failed *provider.CallFailedError
	if errors.As(err, &failed) {
		return &errs.Error{Code: errs.Unavailable, Message: failed.Error()}
	}

	var httpErr *provider.HTTPError
	if errors.As(err, &httpErr) {
		return &errs.Error{Code: errs.FailedPrecondition, Message: httpErr.Error()}
	}

	var apiErr *errs.Error
	if errors.As(err, &apiErr) {
		return apiErr
	}
	return &errs.Error{Code: errs.Internal, Message: "provider call failed"}
}
