// Package enrichment provides the semantic keyword analysis backend on
// top of the OpenAI chat completions API. Responses are constrained to a
// JSON schema and sanitized before they reach the domain layer; retry
// and circuit breaker wrappers guard the upstream calls.
package enrichment

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/sashabaranov/go-openai"
	"github.com/sashabaranov/go-openai/jsonschema"

	"github.com/prwerk/seoscore/internal/domain/model"
	"github.com/prwerk/seoscore/pkg/logger"
)

// maxContextRunes bounds the document excerpt sent per request.
const maxContextRunes = 4000

const systemPrompt = "Du bist ein SEO-Analyst für deutschsprachige Pressemitteilungen. " +
	"Bewerte das angegebene Keyword im Kontext des Textes. " +
	"semantic_relevance und context_quality sind ganze Zahlen von 0 bis 100. " +
	"target_audience ist B2B, B2C, Verbraucher oder Unbekannt. " +
	"tonality ist Sachlich, Emotional oder Neutral. " +
	"related_terms enthält bis zu drei verwandte Begriffe aus dem Text."

// response is the schema-constrained payload returned by the backend.
type response struct {
	SemanticRelevance int      `json:"semantic_relevance"`
	ContextQuality    int      `json:"context_quality"`
	TargetAudience    string   `json:"target_audience"`
	Tonality          string   `json:"tonality"`
	RelatedTerms      []string `json:"related_terms"`
}

// ChatClient is the subset of the OpenAI client the adapter needs.
// Retry and circuit breaker wrappers implement the same interface.
type ChatClient interface {
	CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

// Client turns keyword-in-context queries into model.Enrichment values.
type Client struct {
	chat   ChatClient
	model  string
	logger logger.Logger
}

// Option applies a configuration option to the Client.
type Option func(*Client)

// WithModel selects the completion model.
func WithModel(m string) Option {
	return func(c *Client) {
		if m != "" {
			c.model = m
		}
	}
}

// WithLogger sets a custom logger.
func WithLogger(log logger.Logger) Option {
	return func(c *Client) {
		if log != nil {
			c.logger = log
		}
	}
}

// Config carries the settings for a fully wrapped client.
type Config struct {
	APIKey         string
	Model          string
	RetryConfig    RetryConfig
	BreakerEnabled bool
}

// New creates a Client backed by the real OpenAI API, wrapped with retry
// logic and, when enabled, a circuit breaker.
func New(cfg Config, opts ...Option) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, ErrMissingAPIKey
	}

	var chat ChatClient = openai.NewClient(cfg.APIKey)
	chat = NewRetryWrapper(chat, cfg.RetryConfig)
	if cfg.BreakerEnabled {
		chat = NewBreakerWrapper(chat)
	}

	opts = append([]Option{WithModel(cfg.Model)}, opts...)
	return NewWithChatClient(chat, opts...), nil
}

// NewWithChatClient creates a Client around an existing chat client.
// Intended for wiring test doubles and custom wrapper stacks.
func NewWithChatClient(chat ChatClient, opts ...Option) *Client {
	c := &Client{
		chat:  chat,
		model: openai.GPT4oMini,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.logger == nil {
		c.logger = logger.Get().Named("enrichment")
	}
	return c
}

// Enrich analyzes one keyword in the context of the document text.
func (c *Client) Enrich(ctx context.Context, keyword, text string) (*model.Enrichment, error) {
	schema, err := jsonschema.GenerateSchemaForType(response{})
	if err != nil {
		return nil, fmt.Errorf("generate schema: %w", err)
	}

	resp, err := c.chat.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: systemPrompt,
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: fmt.Sprintf("Keyword: %s\n\nText:\n%s", keyword, truncate(text, maxContextRunes)),
			},
		},
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONSchema,
			JSONSchema: &openai.ChatCompletionResponseFormatJSONSchema{
				Name:   "keyword_enrichment",
				Schema: schema,
			},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return nil, ErrEmptyResponse
	}

	var payload response
	if err := json.Unmarshal([]byte(resp.Choices[0].Message.Content), &payload); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPayload, err)
	}

	enrichment := sanitize(payload)
	c.logger.Debug(ctx, "keyword enriched",
		logger.String("keyword", keyword),
		logger.Int("semanticRelevance", enrichment.SemanticRelevance),
		logger.String("targetAudience", enrichment.TargetAudience),
	)

	return enrichment, nil
}

// sanitize normalizes a backend payload into domain ranges: scores are
// clamped to [0, 100], labels outside the known sets fall back to their
// neutral values and related terms are capped.
func sanitize(p response) *model.Enrichment {
	audience := p.TargetAudience
	switch audience {
	case model.AudienceB2B, model.AudienceB2C, model.AudienceConsumer:
	default:
		audience = model.AudienceUnknown
	}

	tonality := p.Tonality
	switch tonality {
	case model.TonalityFactual, model.TonalityEmotional, model.TonalityNeutral:
	default:
		tonality = model.TonalityNeutral
	}

	terms := make([]string, 0, model.MaxRelatedTerms)
	for _, t := range p.RelatedTerms {
		if t == "" {
			continue
		}
		terms = append(terms, t)
		if len(terms) == model.MaxRelatedTerms {
			break
		}
	}

	return &model.Enrichment{
		SemanticRelevance: clampScore(p.SemanticRelevance),
		ContextQuality:    clampScore(p.ContextQuality),
		TargetAudience:    audience,
		Tonality:          tonality,
		RelatedTerms:      terms,
		AIAnalyzed:        true,
	}
}

func clampScore(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}
