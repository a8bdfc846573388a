package llm

import (
	"context"
	"errors"
	"time"

	"github.com/sony/gobreaker"
)

// BreakerClient wraps a ChatClient with a circuit breaker so a provider
// outage short-circuits instead of burning quota on every batch.
type BreakerClient struct {
	inner   ChatClient
	breaker *gobreaker.CircuitBreaker
}

// NewBreakerClient wraps the given client. The breaker opens after three
// consecutive failures and probes again after 30 seconds.
func NewBreakerClient(inner ChatClient) *BreakerClient {
	settings := gobreaker.Settings{
		Name:    "llm",
		Timeout: 30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 3
		},
	}
	return &BreakerClient{
		inner:   inner,
		breaker: gobreaker.NewCircuitBreaker(settings),
	}
}

// Complete forwards the call through the breaker
func (c *BreakerClient) Complete(ctx context.Context, req Request) (string, error) {
	result, err := c.breaker.Execute(func() (interface{}, error) {
		return c.inner.Complete(ctx, req)
	})
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			return "", &ExternalServiceError{Provider: "LLM", Err: err}
		}
		return "", err
	}
	return result.(string), nil
}
