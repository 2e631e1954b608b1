package provider

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strings"
	"time"

	"encore.dev/rlog"

	"github.com/kjsvbshk/Tesis-sub000/prediction/breaker"
	"github.com/kjsvbshk/Tesis-sub000/prediction/model"
)

const (
	defaultBaseDelay       = 200 * time.Millisecond
	defaultRecoveryTimeout = 30 * time.Second
	defaultHalfOpenMax     = 1
	maxResponseBytes       = 4 << 20
)

// Orchestrator wraps provider calls with per-attempt timeouts, retries with
// strictly increasing backoff, and a per-provider circuit breaker. The
// breaker observes one outcome per logical call: a success after internal
// retries counts as a success, an exhausted retry budget counts once as a
// failure.
type Orchestrator struct {
	resolver ConfigResolver
	breakers *breaker.Manager
	client   *http.Client

	baseDelay       time.Duration
	recoveryTimeout time.Duration
	halfOpenMax     uint32

	// sleep is swapped out in tests to observe backoff without waiting.
	sleep func(ctx context.Context, d time.Duration) error
}

func NewOrchestrator(resolver ConfigResolver, breakers *breaker.Manager) *Orchestrator {
	return &Orchestrator{
		resolver:        resolver,
		breakers:        breakers,
		client:          &http.Client{},
		baseDelay:       defaultBaseDelay,
		recoveryTimeout: defaultRecoveryTimeout,
		halfOpenMax:     defaultHalfOpenMax,
		sleep:           sleepContext,
	}
}

// Call fetches purpose data from one provider. It returns
// breaker.ErrCircuitOpen without touching the network when the provider's
// circuit is open, an *HTTPError for non-retryable responses, and a
// *CallFailedError once retries are exhausted.
func (o *Orchestrator) Call(ctx context.Context, code, purpose string) (*model.ProviderResult, error) {
	cfg, err := o.resolver.Resolve(code)
	if err != nil {
		return nil, err
	}

	result, err := o.breakers.Execute(code, breaker.Config{
		FailureThreshold: cfg.BreakerThreshold,
		RecoveryTimeout:  o.recoveryTimeout,

		HalfOpenMaxConcurrent: o.halfOpenMax,
	}, func() (any, error) {
		return o.callWithRetries(ctx, cfg, purpose)
	})
	if err != nil {
		return nil, err
	}

	return result.(*model.ProviderResult), nil
}

func (o *Orchestrator) callWithRetries(ctx context.Context, cfg model.ProviderConfig, purpose string) (*model.ProviderResult, error) {
	maxAttempts := cfg.MaxRetries + 1
	if maxAttempts < 1 {
		maxAttempts = 1
	}

	started := time.Now()

	var lastErr error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		if attempt > 1 {
			// Delay grows with the attempt count, so consecutive waits
			// strictly increase.
			if err := o.sleep(ctx, o.baseDelay*time.Duration(attempt-1)); err != nil {
				return nil, err
			}
		}

		result, err := o.attempt(ctx, cfg, purpose)
		if err == nil {
			result.Attempts = attempt
			result.Elapsed = time.Since(started)
			return result, nil
		}
		lastErr = err

		// Caller went away; abort instead of burning the retry budget.
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}

		var httpErr *HTTPError
		if errors.As(err, &httpErr) && !httpErr.Retryable() {
			return nil, httpErr
		}

		rlog.Warn("provider attempt failed",
			"provider", cfg.Code, "purpose", purpose, "attempt", attempt, "error", err)
	}

	return nil, &CallFailedError{Provider: cfg.Code, Attempts: maxAttempts, Last: lastErr}
}

// attempt performs one timeout-bounded network call. Cancelling the
// attempt context aborts the in-flight request.
func (o *Orchestrator) attempt(ctx context.Context, cfg model.ProviderConfig, purpose string) (*model.ProviderResult, error) {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	attemptCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	url := strings.TrimSuffix(cfg.BaseURL, "/") + "/" + strings.TrimPrefix(purpose, "/")
	req, err := http.NewRequestWithContext(attemptCtx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	for k, v := range cfg.Headers {
		req.Header.Set(k, v)
	}

	resp, err := o.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		io.Copy(io.Discard, io.LimitReader(resp.Body, maxResponseBytes))
		return nil, &HTTPError{Provider: cfg.Code, StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, err
	}

	return &model.ProviderResult{
		Provider:   cfg.Code,
		Purpose:    purpose,
		StatusCode: resp.StatusCode,
		Body:       body,
	}, nil
}

func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
