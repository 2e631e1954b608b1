package workflow

import (
	"time"

	"go.temporal.io/sdk/temporal"
	"go.temporal.io/sdk/workflow"
)

// OutboxDispatchParams configures the dispatcher loop.
type OutboxDispatchParams struct {
	PollInterval time.Duration `json:"poll_interval"`
	// SweepEvery is how many poll cycles pass between idempotency-key
	// sweeps.
	SweepEvery int `json:"sweep_every"`
	// MaxCycles bounds the history length before continue-as-new.
	MaxCycles int `json:"max_cycles"`
}

func (p OutboxDispatchParams) withDefaults() OutboxDispatchParams {
	if p.PollInterval <= 0 {
		p.PollInterval = 5 * time.Second
	}
	if p.SweepEvery <= 0 {
		p.SweepEvery = 720
	}
	if p.MaxCycles <= 0 {
		p.MaxCycles = 5000
	}
	return p
}

// OutboxDispatch is the durable home of the outbox relay. Running it as a
// single fixed-ID workflow gives exactly one active dispatcher, so no
// lease juggling between competing instances is needed. Each cycle it
// waits for the poll timer or a nudge signal, then drains one batch; a
// drain signal publishes what remains and stops.
func OutboxDispatch(ctx workflow.Context, params OutboxDispatchParams) error {
	logger := workflow.GetLogger(ctx)
	params = params.withDefaults()
	logger.Info("Starting outbox dispatch loop", "pollInterval", params.PollInterval)

	nudgeCh := workflow.GetSignalChannel(ctx, NudgeSignalName)
	drainCh := workflow.GetSignalChannel(ctx, DrainSignalName)

	for cycle := 1; cycle <= params.MaxCycles; cycle++ {
		timer := workflow.NewTimer(ctx, params.PollInterval)
		draining := false

		selector := workflow.NewSelector(ctx)
		selector.AddReceive(nudgeCh, func(c workflow.ReceiveChannel, more bool) {
			var signal NudgeSignal
			c.Receive(ctx, &signal)
			logger.Debug("Dispatch nudged", "source", signal.Source)
		})
		selector.AddReceive(drainCh, func(c workflow.ReceiveChannel, more bool) {
			var signal DrainSignal
			c.Receive(ctx, &signal)
			logger.Info("Draining outbox before stop", "reason", signal.Reason)
			draining = true
		})
		selector.AddFuture(timer, func(f workflow.Future) {})
		selector.Select(ctx)

		if err := dispatchPending(ctx); err != nil {
			// Events stay unpublished and are retried next cycle.
			logger.Error("Outbox dispatch cycle failed", "error", err)
		}

		if draining {
			logger.Info("Outbox dispatch loop stopped")
			return nil
		}

		if cycle%params.SweepEvery == 0 {
			if err := purgeExpiredKeys(ctx); err != nil {
				logger.Error("Idempotency sweep failed", "error", err)
			}
		}
	}

	return workflow.NewContinueAsNewError(ctx, OutboxDispatch, params)
}

// dispatchPending executes the DispatchPending activity
func dispatchPending(ctx workflow.Context) error {
	activityOptions := workflow.ActivityOptions{
		StartToCloseTimeout: time.Minute,
		RetryPolicy: &temporal.RetryPolicy{
			InitialInterval:    time.Second,
			BackoffCoefficient: 2.0,
			MaximumInterval:    15 * time.Second,
			MaximumAttempts:    4,
		},
	}
	activityCtx := workflow.WithActivityOptions(ctx, activityOptions)
	return workflow.ExecuteActivity(activityCtx, DispatchPendingActivity).Get(ctx, nil)
}

// purgeExpiredKeys executes the PurgeExpiredKeys activity
func purgeExpiredKeys(ctx workflow.Context) error {
	activityOptions := workflow.ActivityOptions{
		StartToCloseTimeout: time.Minute,
		RetryPolicy: &temporal.RetryPolicy{
			InitialInterval:    2 * time.Second,
			BackoffCoefficient: 2.0,
			MaximumInterval:    30 * time.Second,
			MaximumAttempts:    3,
		},
	}
	activityCtx := workflow.WithActivityOptions(ctx, activityOptions)
	return workflow.ExecuteActivity(activityCtx, PurgeExpiredKeysActivity).Get(ctx, nil)
}
