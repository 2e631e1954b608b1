package breaker

import (
	"errors"
	"sync"
	"time"

	"encore.dev/rlog"
	"github.com/sony/gobreaker"
)

// ErrCircuitOpen is returned when a call is rejected without invoking the
// underlying function, either because the circuit is open or because the
// half-open probe budget is exhausted. Callers should degrade instead of
// retrying immediately.
var ErrCircuitOpen = errors.New("circuit breaker is open")

// Config tunes one dependency's breaker.
type Config struct {
	// FailureThreshold is the number of consecutive failures that trips
	// the breaker open.
	FailureThreshold uint32
	// RecoveryTimeout is how long the breaker stays open before admitting
	// half-open probes.
	RecoveryTimeout time.Duration
	// HalfOpenMaxConcurrent caps concurrent probe calls while half-open.
	HalfOpenMaxConcurrent uint32
}

func (c Config) withDefaults() Config {
	if c.FailureThreshold == 0 {
		c.FailureThreshold = 5
	}
	if c.RecoveryTimeout <= 0 {
		c.RecoveryTimeout = 30 * time.Second
	}
	if c.HalfOpenMaxConcurrent == 0 {
		c.HalfOpenMaxConcurrent = 1
	}
	return c
}

// State is the reported breaker state.
type State string

const (
	StateClosed   State = "closed"
	StateOpen     State = "open"
	StateHalfOpen State = "half_open"
)

// Manager holds one circuit breaker per dependency key, created lazily.
// The map is guarded by an RWMutex; each breaker carries its own internal
// lock, so calls against unrelated dependencies never contend.
type Manager struct {
	mu       sync.RWMutex
	breakers map[string]*gobreaker.CircuitBreaker
}

func NewManager() *Manager {
	return &Manager{
		breakers: make(map[string]*gobreaker.CircuitBreaker),
	}
}

// Execute runs fn through the dependency's breaker, creating it from cfg on
// first use. While open and before the recovery timeout elapses the call
// fails fast with ErrCircuitOpen and fn is never invoked.
func (m *Manager) Execute(key string, cfg Config, fn func() (any, error)) (any, error) {
	cb := m.getOrCreate(key, cfg)

	result, err := cb.Execute(fn)
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return nil, ErrCircuitOpen
	}
	return result, err
}

// State reports the current breaker state for a dependency. Unknown keys
// report closed, matching the lazily-created breaker they would get.
func (m *Manager) State(key string) State {
	m.mu.RLock()
	cb, ok := m.breakers[key]
	m.mu.RUnlock()

	if !ok {
		return StateClosed
	}

	switch cb.State() {
	case gobreaker.StateOpen:
		return StateOpen
	case gobreaker.StateHalfOpen:
		return StateHalfOpen
	default:
		return StateClosed
	}
}

func (m *Manager) getOrCreate(key string, cfg Config) *gobreaker.CircuitBreaker {
	m.mu.RLock()
	cb, ok := m.breakers[key]
	m.mu.RUnlock()

	if ok {
		return cb
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	// Double-check after acquiring write lock
	if cb, ok = m.breakers[key]; ok {
		return cb
	}

	cfg = cfg.withDefaults()
	cb = gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        key,
		MaxRequests: cfg.HalfOpenMaxConcurrent,
		Timeout:     cfg.RecoveryTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= cfg.FailureThreshold
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			rlog.Info("circuit breaker state change", "dependency", name, "from", from.String(), "to", to.String())
		},
	})
	m.breakers[key] = cb

	return cb
}
