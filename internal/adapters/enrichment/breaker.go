package enrichment

import (
	"context"
	"errors"
	"time"

	"github.com/sashabaranov/go-openai"
	"github.com/sony/gobreaker/v2"

	"github.com/prwerk/seoscore/pkg/logger"
)

// BreakerWrapper short-circuits completion calls once the backend keeps
// failing, so a broken upstream degrades to fast fallbacks instead of
// queueing timeouts.
type BreakerWrapper struct {
	client ChatClient
	cb     *gobreaker.CircuitBreaker[openai.ChatCompletionResponse]
}

// NewBreakerWrapper wraps a chat client with a circuit breaker.
func NewBreakerWrapper(client ChatClient) *BreakerWrapper {
	log := logger.Get().Named("enrichment.breaker")

	settings := gobreaker.Settings{
		Name:        "enrichment-backend",
		MaxRequests: 3,
		Interval:    60 * time.Second,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			return counts.ConsecutiveFailures >= 5 ||
				(counts.Requests >= 10 && failureRatio > 0.6)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			log.Warn(context.Background(), "circuit breaker state changed",
				logger.String("name", name),
				logger.String("from", from.String()),
				logger.String("to", to.String()),
			)
		},
		IsSuccessful: func(err error) bool {
			if err == nil {
				return true
			}
			return !shouldTrip(err)
		},
	}

	return &BreakerWrapper{
		client: client,
		cb:     gobreaker.NewCircuitBreaker[openai.ChatCompletionResponse](settings),
	}
}

// CreateChatCompletion executes the call through the circuit breaker.
func (w *BreakerWrapper) CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error) {
	return w.cb.Execute(func() (openai.ChatCompletionResponse, error) {
		return w.client.CreateChatCompletion(ctx, req)
	})
}

// State returns the current breaker state.
func (w *BreakerWrapper) State() gobreaker.State {
	return w.cb.State()
}

// shouldTrip reports whether an error counts as a breaker failure. Rate
// limits and caller-side timeouts are transient and do not trip.
func shouldTrip(err error) bool {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		switch {
		case apiErr.HTTPStatusCode == 429:
			return false
		case apiErr.HTTPStatusCode == 401 || apiErr.HTTPStatusCode == 403:
			return true
		case apiErr.HTTPStatusCode >= 500:
			return true
		default:
			return false
		}
	}
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return false
	}
	return true
}
