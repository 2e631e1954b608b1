package outbox

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/kjsvbshk/Tesis-sub000/prediction/model"
	"github.com/kjsvbshk/Tesis-sub000/prediction/store/outboxevents"
)

// Appender writes events into the transactional event log. Append only
// ever runs on a caller-supplied transaction: the event commits iff the
// business mutation it announces commits.
type Appender struct {
	// newEvents is swapped out in tests.
	newEvents func(db outboxevents.DBTX) outboxevents.Querier
}

func NewAppender() *Appender {
	return &Appender{
		newEvents: func(db outboxevents.DBTX) outboxevents.Querier {
			return outboxevents.New(db)
		},
	}
}

// Append records one event on tx.
func (a *Appender) Append(ctx context.Context, tx pgx.Tx, topic string, payload *model.Envelope) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal outbox payload for topic %s: %w", topic, err)
	}

	_, err = a.newEvents(tx).CreateEvent(ctx, outboxevents.CreateEventParams{
		Topic:   topic,
		Payload: body,
	})
	if err != nil {
		return fmt.Errorf("append outbox event for topic %s: %w", topic, err)
	}
	return nil
}
