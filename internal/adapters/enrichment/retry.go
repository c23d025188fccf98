package enrichment

import (
	"context"
	"errors"
	"time"

	"github.com/sashabaranov/go-openai"
	"github.com/sethvargo/go-retry"

	"github.com/prwerk/seoscore/pkg/logger"
)

// RetryConfig controls the backoff behavior of the retry wrapper.
type RetryConfig struct {
	MaxAttempts  int
	InitialDelay time.Duration
	MaxDelay     time.Duration
}

// defaults fills unset fields.
func (c RetryConfig) defaults() RetryConfig {
	if c.MaxAttempts <= 0 {
		c.MaxAttempts = 3
	}
	if c.InitialDelay <= 0 {
		c.InitialDelay = 1 * time.Second
	}
	if c.MaxDelay <= 0 {
		c.MaxDelay = 30 * time.Second
	}
	return c
}

// RetryWrapper retries transient completion failures with capped
// exponential backoff.
type RetryWrapper struct {
	client ChatClient
	config RetryConfig
	logger logger.Logger
}

// NewRetryWrapper wraps a chat client with retry logic.
func NewRetryWrapper(client ChatClient, config RetryConfig) *RetryWrapper {
	return &RetryWrapper{
		client: client,
		config: config.defaults(),
		logger: logger.Get().Named("enrichment.retry"),
	}
}

// CreateChatCompletion executes the call, retrying retryable errors.
func (w *RetryWrapper) CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error) {
	backoff := retry.WithMaxRetries(
		uint64(w.config.MaxAttempts-1),
		retry.WithCappedDuration(
			w.config.MaxDelay,
			retry.WithJitter(
				w.config.InitialDelay/10,
				retry.NewExponential(w.config.InitialDelay),
			),
		),
	)

	var resp openai.ChatCompletionResponse
	attempt := 0
	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		attempt++
		var callErr error
		resp, callErr = w.client.CreateChatCompletion(ctx, req)
		if callErr == nil {
			return nil
		}
		if isRetryable(callErr) {
			w.logger.Debug(ctx, "retrying completion",
				logger.Int("attempt", attempt),
				logger.Error(callErr),
			)
			return retry.RetryableError(callErr)
		}
		return callErr
	})
	if err != nil {
		return openai.ChatCompletionResponse{}, err
	}
	return resp, nil
}

// isRetryable reports whether an error is worth another attempt: rate
// limits and upstream 5xx responses are, auth and validation errors are not.
func isRetryable(err error) bool {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		switch {
		case apiErr.HTTPStatusCode == 429:
			return true
		case apiErr.HTTPStatusCode >= 500:
			return true
		default:
			return false
		}
	}
	if errors.Is(err, context.Canceled) {
		return false
	}
	return true
}
