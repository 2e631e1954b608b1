package model

import (
	"encoding/json"
	"fmt"
)

// EnvelopeSchemaVersion is bumped whenever the envelope layout changes in a
// way consumers must be aware of.
const EnvelopeSchemaVersion = 1

// Envelope is the versioned blob used for request metadata, outbox payloads
// and cached provider values. Keeping the version and kind outside the
// opaque data lets consumers dispatch without guessing.
type Envelope struct {
	SchemaVersion int             `json:"schema_version"`
	Kind          string          `json:"kind"`
	Data          json.RawMessage `json:"data"`
}

// NewEnvelope wraps v as the data of a current-version envelope.
func NewEnvelope(kind string, v any) (*Envelope, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("marshal envelope data for kind %s: %w", kind, err)
	}
	return &Envelope{
		SchemaVersion: EnvelopeSchemaVersion,
		Kind:          kind,
		Data:          data,
	}, nil
}

// Decode unmarshals the envelope data into v.
func (e *Envelope) Decode(v any) error {
	if err := json.Unmarshal(e.Data, v); err != nil {
		return fmt.Errorf("decode envelope kind %s: %w", e.Kind, err)
	}
	return nil
}
