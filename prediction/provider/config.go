package provider

import (
	"errors"
	"fmt"
	"sync"

	"github.com/kjsvbshk/Tesis-sub000/prediction/model"
)

// ErrUnknownProvider is returned when no configuration exists for a code.
var ErrUnknownProvider = errors.New("unknown provider")

// ConfigResolver resolves a provider code to its endpoint configuration.
// Implementations must be pure lookups.
type ConfigResolver interface {
	Resolve(code string) (model.ProviderConfig, error)
}

// StaticResolver is a registry-backed ConfigResolver.
type StaticResolver struct {
	mu      sync.RWMutex
	configs map[string]model.ProviderConfig
}

func NewStaticResolver(configs ...model.ProviderConfig) *StaticResolver {
	r := &StaticResolver{configs: make(map[string]model.ProviderConfig, len(configs))}
	for _, cfg := range configs {
		r.configs[cfg.Code] = cfg
	}
	return r
}

// Register adds or replaces a provider configuration.
func (r *StaticResolver) Register(cfg model.ProviderConfig) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.configs[cfg.Code] = cfg
}

func (r *StaticResolver) Resolve(code string) (model.ProviderConfig, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	cfg, ok := r.configs[code]
	if !ok {
		return model.ProviderConfig{}, fmt.Errorf("%w: %s", ErrUnknownProvider, code)
	}
	return cfg, nil
}
