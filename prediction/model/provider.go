package model

import (
	"encoding/json"
	"time"
)

// ProviderConfig is the resolved endpoint configuration for one upstream
// data provider. Resolution itself is a pure lookup owned by the config
// collaborator.
type ProviderConfig struct {
	Code             string            `json:"code"`
	BaseURL          string            `json:"base_url"`
	Timeout          time.Duration     `json:"timeout"`
	MaxRetries       int               `json:"max_retries"`
	BreakerThreshold uint32            `json:"circuit_breaker_threshold"`
	Headers          map[string]string `json:"headers,omitempty"`
}

// ProviderResult is one provider's successful response body.
type ProviderResult struct {
	Provider   string          `json:"provider"`
	Purpose    string          `json:"purpose"`
	StatusCode int             `json:"status_code"`
	Body       json.RawMessage `json:"body"`
	Attempts   int             `json:"attempts"`
	Elapsed    time.Duration   `json:"elapsed"`
}

// ProviderFailure records why one provider in a fan-out did not answer.
type ProviderFailure struct {
	Provider string `json:"provider"`
	Error    string `json:"error"`
}

// FanOutResult aggregates a concurrent multi-provider call.
type FanOutResult struct {
	Successful []*ProviderResult `json:"successful"`
	Failed     []ProviderFailure `json:"failed"`
}
