package provider

import (
	"fmt"

	"github.com/kjsvbshk/Tesis-sub000/prediction/model"
)

// HTTPError is a non-2xx provider response. Only 429 and 5xx are
// considered transient; other 4xx responses fail the call immediately.
type HTTPError struct {
	Provider   string
	StatusCode int
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("provider %s returned HTTP %d", e.Provider, e.StatusCode)
}

// Retryable reports whether the response status warrants another attempt.
func (e *HTTPError) Retryable() bool {
	return e.StatusCode == 429 || e.StatusCode >= 500
}

// CallFailedError is returned once the retry budget is exhausted. Last
// carries the final attempt's error so callers can distinguish a timed-out
// provider from a persistently failing one.
type CallFailedError struct {
	Provider string
	Attempts int
	Last     error
}

func (e *CallFailedError) Error() string {
	return fmt.Sprintf("provider %s failed after %d attempts: %v", e.Provider, e.Attempts, e.Last)
}

func (e *CallFailedError) Unwrap() error {
	return e.Last
}

// FanOutError is returned by CallMultiple with requireAll when at least
// one provider did not answer.
type FanOutError struct {
	Failed []model.ProviderFailure
}

func (e *FanOutError) Error() string {
	return fmt.Sprintf("%d provider(s) failed in fan-out", len(e.Failed))
}
