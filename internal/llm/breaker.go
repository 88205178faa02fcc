package llm

import (
	"context"
	"errors"
	"time"

	gobreaker "github.com/sony/gobreaker/v2"

	"styleup-backend/internal/shared/metrics"
	"styleup-backend/internal/shared/telemetry"
)

// BreakerSettings tunes the circuit around an upstream explainer.
type BreakerSettings struct {
	Name         string
	MaxRequests  uint32
	Interval     time.Duration
	Timeout      time.Duration
	MinRequests  uint32
	FailureRatio float64
}

// DefaultBreakerSettings opens after 60% failures over at least 5 calls and
// probes again after 30 seconds.
func DefaultBreakerSettings() BreakerSettings {
	return BreakerSettings{
		Name:         "llm-explainer",
		MaxRequests:  1,
		Interval:     time.Minute,
		Timeout:      30 * time.Second,
		MinRequests:  5,
		FailureRatio: 0.6,
	}
}

// BreakerExplainer guards an Explainer with a circuit breaker.
type BreakerExplainer struct {
	next Explainer
	cb   *gobreaker.CircuitBreaker[string]
}

// NewBreakerExplainer wraps next.
func NewBreakerExplainer(next Explainer, s BreakerSettings) *BreakerExplainer {
	if s.Name == "" {
		s.Name = DefaultBreakerSettings().Name
	}
	metrics.CircuitBreakerState.WithLabelValues(s.Name).Set(0)
	cb := gobreaker.NewCircuitBreaker[string](gobreaker.Settings{
		Name:        s.Name,
		MaxRequests: s.MaxRequests,
		Interval:    s.Interval,
		Timeout:     s.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			if counts.Requests < s.MinRequests {
				return false
			}
			return float64(counts.TotalFailures)/float64(counts.Requests) >= s.FailureRatio
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			telemetry.Warn("llm.breaker_state", map[string]any{
				"breaker": name,
				"from":    from.String(),
				"to":      to.String(),
			})
			metrics.CircuitBreakerState.WithLabelValues(name).Set(stateToFloat(to))
		},
	})
	return &BreakerExplainer{next: next, cb: cb}
}

// Explain calls the wrapped explainer unless the circuit is open.
func (b *BreakerExplainer) Explain(ctx context.Context, input OutfitInput) (string, error) {
	out, err := b.cb.Execute(func() (string, error) {
		return b.next.Explain(ctx, input)
	})
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return "", errors.Join(ErrUnavailable, err)
	}
	return out, err
}

// State reports the current breaker state.
func (b *BreakerExplainer) State() gobreaker.State {
	return b.cb.State()
}

func stateToFloat(s gobreaker.State) float64 {
	switch s {
	case gobreaker.StateHalfOpen:
		return 1
	case gobreaker.StateOpen:
		return 2
	default:
		return 0
	}
}

var _ Explainer = (*BreakerExplainer)(nil)
