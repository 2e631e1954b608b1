package forecast

import (
	"context"
	"encoding/json"
	"time"

	"github.com/kjsvbshk/Tesis-sub000/prediction/cache"
	"github.com/kjsvbshk/Tesis-sub000/prediction/domain/tracker"
	"github.com/kjsvbshk/Tesis-sub000/prediction/model"
)

const (
	predictionTTL      = 5 * time.Minute
	predictionStaleTTL = 30 * time.Minute
	oddsCachePrefix    = "odds:"
	predictionPrefix   = "prediction:"
)

// IdempotencyStore dedupes client retries.
type IdempotencyStore interface {
	CheckAndRegister(ctx context.Context, key, requestHash string, metadata *model.Envelope) (*model.CheckResult, error)
	StoreResponse(ctx context.Context, key string, response json.RawMessage) error
}

// ProviderCaller reaches upstream data providers through the retry and
// circuit-breaker orchestration.
type ProviderCaller interface {
	Call(ctx context.Context, code, purpose string) (*model.ProviderResult, error)
	CallMultiple(ctx context.Context, codes []string, purpose string, requireAll bool) (*model.FanOutResult, error)
}

// ResultCache serves provider responses under tunable freshness.
type ResultCache interface {
	GetOrSet(ctx context.Context, key string, fetch cache.FetchFunc, ttl, staleTTL time.Duration, allowStale bool) (any, error)
	InvalidatePattern(prefix string) int
}

// Business is the prediction lookup and odds refresh logic.
type Business interface {
	GetPrediction(ctx context.Context, params GetPredictionParams) (*PredictionResult, error)
	RefreshOdds(ctx context.Context, params RefreshOddsParams) (*RefreshResult, error)
	GetRequest(ctx context.Context, id int64) (*model.Request, error)
	PurgeExpiredKeys(ctx context.Context) (int64, error)
}

type business struct {
	idem      IdempotencyStore
	tracker   tracker.Tracker
	providers ProviderCaller
	cache     ResultCache
	sweeper   KeySweeper
}

// KeySweeper removes expired idempotency records.
type KeySweeper interface {
	PurgeExpired(ctx context.Context) (int64, error)
}

func NewBusiness(
	idem IdempotencyStore,
	reqTracker tracker.Tracker,
	providers ProviderCaller,
	resultCache ResultCache,
	sweeper KeySweeper,
) Business {
	return &business{
		idem:      idem,
		tracker:   reqTracker,
		providers: providers,
		cache:     resultCache,
		sweeper:   sweeper,
	}
}

// GetRequest exposes the durable lifecycle of one operation.
func (b *business) GetRequest(ctx context.Context, id int64) (*model.Request, error) {
	return b.tracker.Get(ctx, id)
}

// PurgeExpiredKeys sweeps idempotency records past their TTL.
func (b *business) PurgeExpiredKeys(ctx context.Context) (int64, error) {
	return b.sweeper.PurgeExpired(ctx)
}
