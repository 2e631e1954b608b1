package forecast

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"

	"encore.dev/rlog"

	"github.com/kjsvbshk/Tesis-sub000/prediction/model"
)

type RefreshOddsParams struct {
	Providers  []string
	RequireAll bool
}

type RefreshResult struct {
	RequestID int64                   `json:"request_id"`
	Refreshed []*model.ProviderResult `json:"refreshed"`
	Failed    []model.ProviderFailure `json:"failed,omitempty"`
}

// RefreshOdds fans out across odds providers, invalidates the cached odds
// and records the aggregate outcome. A partial fan-out (some providers
// down, requireAll=false) lands in the partial terminal status.
func (b *business) RefreshOdds(ctx context.Context, params RefreshOddsParams) (*RefreshResult, error) {
	metadata, err := model.NewEnvelope("odds.refresh", map[string]any{
		"providers":   params.Providers,
		"require_all": params.RequireAll,
	})
	if err != nil {
		return nil, err
	}

	req, err := b.tracker.Create(ctx, "odds-refresh-"+uuid.NewString(), metadata)
	if err != nil {
		return nil, err
	}
	if err := b.tracker.MarkProcessing(ctx, req.ID); err != nil {
		return nil, transitionError(err)
	}

	fanOut, err := b.providers.CallMultiple(ctx, params.Providers, "odds", params.RequireAll)
	if err != nil {
		if markErr := b.tracker.MarkFailed(ctx, req.ID, err); markErr != nil {
			rlog.Error("failed to mark refresh failed", "request_id", req.ID, "error", markErr)
		}
		return nil, providerError(err)
	}

	detail, _ := json.Marshal(fanOut)
	if len(fanOut.Failed) > 0 {
		err = b.tracker.MarkPartial(ctx, req.ID, detail)
	} else {
		err = b.tracker.MarkCompleted(ctx, req.ID, detail)
	}
	if err != nil {
		return nil, transitionError(err)
	}

	if n := b.cache.InvalidatePattern(oddsCachePrefix); n > 0 {
		rlog.Debug("invalidated cached odds", "entries", n)
	}

	return &RefreshResult{
		RequestID: req.ID,
		Refreshed: fanOut.Successful,
		Failed:    fanOut.Failed,
	}, nil
}
