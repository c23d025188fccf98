// Package service provides the stateful analysis coordinator that
// implements the dependencies required by the HTTP API.
package service

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/prwerk/seoscore/internal/domain/keywordmetrics"
	"github.com/prwerk/seoscore/internal/domain/keywordscore"
	"github.com/prwerk/seoscore/internal/domain/model"
	"github.com/prwerk/seoscore/internal/domain/prmetrics"
	"github.com/prwerk/seoscore/internal/domain/seoscore"
	"github.com/prwerk/seoscore/pkg/logger"
	"github.com/prwerk/seoscore/pkg/metrics"
)

// Keyword rejection reasons reported to metrics.
const (
	rejectEmpty     = "empty"
	rejectDuplicate = "duplicate"
	rejectCapacity  = "capacity"
)

// Enricher provides semantic enrichment for one keyword in context.
type Enricher interface {
	Enrich(ctx context.Context, keyword, text string) (*model.Enrichment, error)
}

// ScoreListener is notified after every completed scoring pass.
type ScoreListener func(model.Result)

// keywordState tracks one active keyword. requestToken identifies the
// enrichment call whose result is still welcome; results carrying any
// other token are dropped as stale.
type keywordState struct {
	metrics      model.KeywordMetrics
	requestToken string
}

// Coordinator owns the analysis state: the document, the title and up to
// maxKeywords active keywords with their sticky enrichment data. All
// mutations are serialized; enrichment runs asynchronously and merges
// back only when its keyword and request token are still current.
type Coordinator struct {
	mu sync.Mutex

	text  string
	title string

	order    []string
	keywords map[string]*keywordState

	maxKeywords   int
	enrichTimeout time.Duration

	keywordCalc *keywordmetrics.Calculator
	prCalc      *prmetrics.Calculator
	scorer      *keywordscore.Scorer
	composite   *seoscore.Calculator
	enricher    Enricher
	listener    ScoreListener

	lastResult model.Result

	logger logger.Logger
}

// Option applies a configuration option to the Coordinator.
type Option func(*Coordinator)

// WithMaxKeywords sets the keyword capacity.
func WithMaxKeywords(n int) Option {
	return func(c *Coordinator) {
		if n > 0 {
			c.maxKeywords = n
		}
	}
}

// WithEnricher sets the semantic enrichment backend.
func WithEnricher(e Enricher) Option {
	return func(c *Coordinator) {
		if e != nil {
			c.enricher = e
		}
	}
}

// WithEnrichmentTimeout bounds each enrichment call.
func WithEnrichmentTimeout(d time.Duration) Option {
	return func(c *Coordinator) {
		if d > 0 {
			c.enrichTimeout = d
		}
	}
}

// WithScoreListener registers a callback invoked after each scoring pass.
func WithScoreListener(l ScoreListener) Option {
	return func(c *Coordinator) {
		c.listener = l
	}
}

// WithLogger sets a custom logger for the coordinator.
func WithLogger(log logger.Logger) Option {
	return func(c *Coordinator) {
		if log != nil {
			c.logger = log
		}
	}
}

// New constructs a Coordinator with default configuration.
func New(opts ...Option) *Coordinator {
	c := &Coordinator{
		keywords:      make(map[string]*keywordState),
		maxKeywords:   2,
		enrichTimeout: 10 * time.Second,
		keywordCalc:   keywordmetrics.New(),
		prCalc:        prmetrics.New(),
		scorer:        keywordscore.New(),
		composite:     seoscore.New(),
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.logger == nil {
		c.logger = logger.Get().Named("coordinator")
	}

	return c
}

// SetContent replaces the document text, recomputes the lexical metrics
// of every active keyword in place and rescores. Enrichment data stays
// attached until the next enrichment call settles.
func (c *Coordinator) SetContent(ctx context.Context, text string) model.Result {
	c.mu.Lock()
	c.text = text
	c.recomputeKeywordsLocked()
	res := c.rescoreLocked(ctx)
	c.mu.Unlock()

	c.notify(res)
	return res
}

// SetTitle replaces the headline and rescores, same semantics as SetContent.
func (c *Coordinator) SetTitle(ctx context.Context, title string) model.Result {
	c.mu.Lock()
	c.title = title
	c.recomputeKeywordsLocked()
	res := c.rescoreLocked(ctx)
	c.mu.Unlock()

	c.notify(res)
	return res
}

// AddKeyword registers a keyword and kicks off its asynchronous semantic
// enrichment. Empty, duplicate and over-capacity keywords are rejected
// silently; the return value reports acceptance.
func (c *Coordinator) AddKeyword(ctx context.Context, keyword string) bool {
	keyword = strings.TrimSpace(keyword)
	if keyword == "" {
		metrics.RecordKeywordRejected(rejectEmpty)
		return false
	}

	key := strings.ToLower(keyword)

	c.mu.Lock()
	if _, exists := c.keywords[key]; exists {
		c.mu.Unlock()
		metrics.RecordKeywordRejected(rejectDuplicate)
		c.logger.Debug(ctx, "keyword already active", logger.String("keyword", keyword))
		return false
	}
	if len(c.keywords) >= c.maxKeywords {
		c.mu.Unlock()
		metrics.RecordKeywordRejected(rejectCapacity)
		c.logger.Debug(ctx, "keyword capacity reached",
			logger.String("keyword", keyword),
			logger.Int("max", c.maxKeywords),
		)
		return false
	}

	token := uuid.NewString()
	c.keywords[key] = &keywordState{
		metrics:      c.keywordCalc.Calculate(keyword, c.text, c.title),
		requestToken: token,
	}
	c.order = append(c.order, key)
	text := c.text
	res := c.rescoreLocked(ctx)
	c.mu.Unlock()

	c.notify(res)
	c.logger.Info(ctx, "keyword added", logger.String("keyword", keyword))

	go c.enrich(key, keyword, text, token)
	return true
}

// RemoveKeyword drops a keyword. An in-flight enrichment result for it
// will be discarded on arrival.
func (c *Coordinator) RemoveKeyword(ctx context.Context, keyword string) bool {
	key := strings.ToLower(strings.TrimSpace(keyword))

	c.mu.Lock()
	if _, exists := c.keywords[key]; !exists {
		c.mu.Unlock()
		return false
	}
	delete(c.keywords, key)
	for i, k := range c.order {
		if k == key {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
	res := c.rescoreLocked(ctx)
	c.mu.Unlock()

	c.notify(res)
	c.logger.Info(ctx, "keyword removed", logger.String("keyword", keyword))
	return true
}

// RefreshAll re-runs semantic enrichment for every active keyword and
// blocks until all calls settle. Results are merged afterwards in one
// step; keywords removed in the meantime are skipped.
func (c *Coordinator) RefreshAll(ctx context.Context) model.Result {
	type job struct {
		key     string
		keyword string
		token   string
	}

	c.mu.Lock()
	text := c.text
	jobs := make([]job, 0, len(c.order))
	for _, key := range c.order {
		st := c.keywords[key]
		token := uuid.NewString()
		st.requestToken = token
		jobs = append(jobs, job{key: key, keyword: st.metrics.Keyword, token: token})
	}
	c.mu.Unlock()

	results := make([]*model.Enrichment, len(jobs))
	var wg sync.WaitGroup
	for i, j := range jobs {
		wg.Add(1)
		go func(i int, j job) {
			defer wg.Done()
			results[i] = c.callEnricher(j.keyword, text)
		}(i, j)
	}
	wg.Wait()

	c.mu.Lock()
	for i, j := range jobs {
		st, ok := c.keywords[j.key]
		if !ok || st.requestToken != j.token {
			metrics.RecordEnrichmentDropped()
			continue
		}
		st.metrics.Enrichment = results[i]
		st.requestToken = ""
	}
	res := c.rescoreLocked(ctx)
	c.mu.Unlock()

	c.notify(res)
	return res
}

// Score runs a full scoring pass over the current state.
func (c *Coordinator) Score(ctx context.Context) model.Result {
	c.mu.Lock()
	res := c.rescoreLocked(ctx)
	c.mu.Unlock()

	c.notify(res)
	return res
}

// Result returns the outcome of the most recent scoring pass.
func (c *Coordinator) Result() model.Result {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lastResult
}

// Keywords returns deep copies of the active keyword metrics in
// insertion order.
func (c *Coordinator) Keywords() []model.KeywordMetrics {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.keywordMetricsLocked()
}

// Stats returns coordinator state for monitoring.
func (c *Coordinator) Stats() map[string]interface{} {
	c.mu.Lock()
	defer c.mu.Unlock()

	enriched := 0
	for _, st := range c.keywords {
		if st.metrics.Enrichment != nil {
			enriched++
		}
	}

	return map[string]interface{}{
		"activeKeywords":   len(c.keywords),
		"maxKeywords":      c.maxKeywords,
		"enrichedKeywords": enriched,
		"textLength":       len(c.text),
		"lastTotalScore":   c.lastResult.TotalScore,
	}
}

// enrich runs one asynchronous enrichment call and merges the result if
// the keyword is still present and the token is still current.
func (c *Coordinator) enrich(key, keyword, text, token string) {
	enrichment := c.callEnricher(keyword, text)

	c.mu.Lock()
	st, ok := c.keywords[key]
	if !ok || st.requestToken != token {
		c.mu.Unlock()
		metrics.RecordEnrichmentDropped()
		c.logger.Debug(context.Background(), "stale enrichment result dropped",
			logger.String("keyword", keyword),
		)
		return
	}
	st.metrics.Enrichment = enrichment
	st.requestToken = ""
	res := c.rescoreLocked(context.Background())
	c.mu.Unlock()

	c.notify(res)
}

// callEnricher invokes the backend with the configured timeout. Any
// error, including the timeout, yields the neutral fallback tuple.
func (c *Coordinator) callEnricher(keyword, text string) *model.Enrichment {
	if c.enricher == nil {
		metrics.RecordEnrichmentFallback()
		return model.FallbackEnrichment()
	}

	ctx, cancel := context.WithTimeout(context.Background(), c.enrichTimeout)
	defer cancel()

	metrics.RecordEnrichmentRequest()
	start := time.Now()
	enrichment, err := c.enricher.Enrich(ctx, keyword, text)
	metrics.RecordEnrichmentLatency(float64(time.Since(start).Milliseconds()))

	if err != nil || enrichment == nil {
		metrics.RecordEnrichmentFailure()
		metrics.RecordEnrichmentFallback()
		if err != nil {
			c.logger.Warn(ctx, "enrichment failed, using fallback",
				logger.String("keyword", keyword),
				logger.Error(err),
			)
		}
		return model.FallbackEnrichment()
	}

	return enrichment
}

// recomputeKeywordsLocked refreshes the lexical metrics of every active
// keyword against the current text and title, keeping enrichment intact.
func (c *Coordinator) recomputeKeywordsLocked() {
	for _, st := range c.keywords {
		st.metrics = c.keywordCalc.Update(st.metrics.Keyword, c.text, c.title, &st.metrics)
	}
}

// rescoreLocked runs the composite scoring pass and records metrics.
func (c *Coordinator) rescoreLocked(ctx context.Context) model.Result {
	start := time.Now()

	keywordList := make([]string, 0, len(c.order))
	kwMetrics := c.keywordMetricsLocked()
	for _, m := range kwMetrics {
		keywordList = append(keywordList, m.Keyword)
	}

	scoreData := c.scorer.Calculate(kwMetrics)
	res := c.composite.Calculate(seoscore.Input{
		PRMetrics:      c.prCalc.Calculate(c.text, c.title, keywordList),
		KeywordMetrics: kwMetrics,
		Text:           c.text,
		Title:          c.title,
		Keywords:       keywordList,
		KeywordScore:   &scoreData,
	})
	c.lastResult = res

	metrics.RecordScoringPass()
	metrics.RecordScoringLatency(float64(time.Since(start).Milliseconds()))
	metrics.ObserveTotalScore(res.TotalScore)
	metrics.ObserveRecommendationCount(len(res.Recommendations))
	metrics.UpdateActiveKeywords(len(c.keywords))
	if len(keywordList) == 0 {
		metrics.RecordEmptyKeywordRun()
	} else {
		metrics.UpdateCategoryScore("headline", res.Breakdown.Headline)
		metrics.UpdateCategoryScore("keywords", res.Breakdown.Keywords)
		metrics.UpdateCategoryScore("structure", res.Breakdown.Structure)
		metrics.UpdateCategoryScore("relevance", res.Breakdown.Relevance)
		metrics.UpdateCategoryScore("concreteness", res.Breakdown.Concreteness)
		metrics.UpdateCategoryScore("engagement", res.Breakdown.Engagement)
		metrics.UpdateCategoryScore("social", res.Breakdown.Social)
	}

	c.logger.Debug(ctx, "scoring pass completed",
		logger.Int("totalScore", res.TotalScore),
		logger.Int("keywords", len(keywordList)),
		logger.Int("recommendations", len(res.Recommendations)),
	)

	return res
}

func (c *Coordinator) keywordMetricsLocked() []model.KeywordMetrics {
	out := make([]model.KeywordMetrics, 0, len(c.order))
	for _, key := range c.order {
		out = append(out, c.keywords[key].metrics.Clone())
	}
	return out
}

func (c *Coordinator) notify(res model.Result) {
	if c.listener != nil {
		c.listener(res)
	}
}
