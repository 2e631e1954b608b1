package outbox

import (
	"context"

	"encore.dev/rlog"

	"github.com/kjsvbshk/Tesis-sub000/prediction/store/outboxevents"
)

const defaultBatchSize = 100

// Publisher delivers one event to the message broker. Delivery must be
// confirmed before returning nil; downstream consumers see at-least-once.
type Publisher interface {
	Publish(ctx context.Context, topic string, payload []byte) error
}

// Dispatcher drains unpublished outbox rows in insertion order. It is run
// by a single durable background process; per-event failures are logged
// and retried on the next pass, never failing the batch.
type Dispatcher struct {
	events    outboxevents.Querier
	publisher Publisher
	batchSize int32
}

func NewDispatcher(events outboxevents.Querier, publisher Publisher) *Dispatcher {
	return &Dispatcher{
		events:    events,
		publisher: publisher,
		batchSize: defaultBatchSize,
	}
}

// DispatchPending publishes one batch of undelivered events, marking each
// published only after the broker confirms delivery. It returns how many
// events were published.
func (d *Dispatcher) DispatchPending(ctx context.Context) (int, error) {
	events, err := d.events.ListUnpublished(ctx, d.batchSize)
	if err != nil {
		return 0, err
	}

	published := 0
	for _, ev := range events {
		if err := ctx.Err(); err != nil {
			return published, err
		}

		if err := d.publisher.Publish(ctx, ev.Topic, ev.Payload); err != nil {
			rlog.Warn("outbox publish failed", "event_id", ev.ID, "topic", ev.Topic, "error", err)
			continue
		}

		if _, err := d.events.MarkPublished(ctx, ev.ID); err != nil {
			// The event will be re-published next pass; consumers dedupe.
			rlog.Error("failed to mark outbox event published", "event_id", ev.ID, "error", err)
			continue
		}
		published++
	}

	return published, nil
}
