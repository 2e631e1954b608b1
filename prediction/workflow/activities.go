package workflow

import (
	"context"

	"go.temporal.io/sdk/activity"
	"go.temporal.io/sdk/temporal"
)

// OutboxDispatcher drains unpublished outbox events.
type OutboxDispatcher interface {
	DispatchPending(ctx context.Context) (int, error)
}

// KeySweeper removes expired idempotency records.
type KeySweeper interface {
	PurgeExpired(ctx context.Context) (int64, error)
}

// ActivityDependencies holds the dependencies needed by activities
type ActivityDependencies struct {
	Dispatcher OutboxDispatcher
	Sweeper    KeySweeper
}

var activityDeps *ActivityDependencies

// SetActivityDependencies sets the dependencies for activities
func SetActivityDependencies(dispatcher OutboxDispatcher, sweeper KeySweeper) {
	activityDeps = &ActivityDependencies{
		Dispatcher: dispatcher,
		Sweeper:    sweeper,
	}
}

// DispatchPendingActivity publishes one batch of undelivered outbox events.
func DispatchPendingActivity(ctx context.Context) (int, error) {
	logger := activity.GetLogger(ctx)

	if activityDeps == nil || activityDeps.Dispatcher == nil {
		logger.Error("Activity dependencies not set")
		return 0, temporal.NewApplicationError("activity dependencies not initialized", "DependencyError")
	}

	published, err := activityDeps.Dispatcher.DispatchPending(ctx)
	if err != nil {
		logger.Error("Failed to dispatch outbox events", "error", err)
		return published, err
	}

	if published > 0 {
		logger.Info("Dispatched outbox events", "published", published)
	}
	return published, nil
}

// PurgeExpiredKeysActivity sweeps idempotency records past their TTL.
func PurgeExpiredKeysActivity(ctx context.Context) (int64, error) {
	logger := activity.GetLogger(ctx)

	if activityDeps == nil || activityDeps.Sweeper == nil {
		logger.Error("Activity dependencies not set")
		return 0, temporal.NewApplicationError("activity dependencies not initialized", "DependencyError")
	}

	purged, err := activityDeps.Sweeper.PurgeExpired(ctx)
	if err != nil {
		logger.Error("Failed to purge expired idempotency keys", "error", err)
		return purged, err
	}
	return purged, nil
}
