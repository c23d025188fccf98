package enrichment

import "errors"

// Sentinel errors returned by the enrichment adapter.
var (
	// ErrMissingAPIKey is returned when no API key is configured.
	ErrMissingAPIKey = errors.New("enrichment: missing API key")

	// ErrEmptyResponse is returned when the backend answers without choices.
	ErrEmptyResponse = errors.New("enrichment: empty response")

	// ErrInvalidPayload is returned when the structured output cannot be decoded.
	ErrInvalidPayload = errors.New("enrichment: invalid payload")
)
