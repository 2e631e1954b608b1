package provider

import (
	"context"
	"sync"

	"golang.org/x/sync/errgroup"

	"encore.dev/rlog"

	"github.com/kjsvbshk/Tesis-sub000/prediction/model"
)

// CallMultiple fans out one purpose across several providers concurrently
// and aggregates the outcomes. A provider whose circuit is open degrades
// into an entry in Failed rather than aborting the fan-out. With
// requireAll, any failure turns the aggregate into a *FanOutError carrying
// the partial failure list; the successful results are still returned.
func (o *Orchestrator) CallMultiple(ctx context.Context, codes []string, purpose string, requireAll bool) (*model.FanOutResult, error) {
	var (
		mu     sync.Mutex
		result model.FanOutResult
	)

	g := new(errgroup.Group)
	for _, code := range codes {
		code := code
		g.Go(func() error {
			res, err := o.Call(ctx, code, purpose)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				rlog.Warn("provider fan-out call failed", "provider", code, "purpose", purpose, "error", err)
				result.Failed = append(result.Failed, model.ProviderFailure{
					Provider: code,
					Error:    err.Error(),
				})
				return nil
			}
			result.Successful = append(result.Successful, res)
			return nil
		})
	}
	g.Wait()

	if requireAll && len(result.Failed) > 0 {
		return &result, &FanOutError{Failed: result.Failed}
	}

	return &result, nil
}
