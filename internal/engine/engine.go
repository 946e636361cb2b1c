// Package engine orchestrates the appraisal pipeline: attribute extraction,
// market simulation, price estimation, recommendations, and persistence of
// the result.
package engine

import (
	"context"
	"log/slog"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/di-awab/priseitup/internal/market"
	"github.com/di-awab/priseitup/internal/metrics"
	"github.com/di-awab/priseitup/internal/recommend"
	"github.com/di-awab/priseitup/internal/store"
	"github.com/di-awab/priseitup/pkg/extract"
	"github.com/di-awab/priseitup/pkg/pricing"
	domain "github.com/di-awab/priseitup/pkg/types"
)

const defaultExtractCacheSize = 1024

// Request carries one appraisal request. When all structured fields are
// absent the free-text Description is run through the extractor; otherwise
// the structured fields win and the extractor is skipped entirely.
type Request struct {
	Description string
	DeviceType  domain.DeviceType
	Brand       string
	Model       string
	Specs       string
	Condition   domain.Condition
	Region      string

	// Market optionally carries externally supplied market data. Nil or
	// zero average routes the estimator to its table fallback.
	Market *domain.MarketData
}

// Result is the full appraisal output.
type Result struct {
	AppraisalID     string                    `json:"appraisal_id,omitempty"`
	Attributes      domain.DeviceAttributes   `json:"attributes"`
	Estimate        domain.PriceEstimate      `json:"estimate"`
	Sample          domain.MarketSample       `json:"market_sample"`
	Range           domain.PriceRange         `json:"price_range"`
	Recommendations []domain.Recommendation   `json:"recommendations"`
	Suggested       []domain.SuggestedListing `json:"suggested_listings"`
}

// Engine wires the pipeline stages together.
type Engine struct {
	store       store.Store
	estimator   *pricing.Estimator
	sampler     *market.Sampler
	recommender *recommend.Generator
	cache       *lru.Cache[string, domain.DeviceAttributes]
	log         *slog.Logger

	defaultRegion string
}

// Option configures the Engine.
type Option func(*Engine)

// WithLogger sets a custom logger.
func WithLogger(l *slog.Logger) Option {
	return func(e *Engine) {
		e.log = l
	}
}

// WithDefaultRegion sets the region applied when a request carries none.
func WithDefaultRegion(region string) Option {
	return func(e *Engine) {
		e.defaultRegion = region
	}
}

// WithExtractCacheSize resizes the extraction memoization cache.
func WithExtractCacheSize(n int) Option {
	return func(e *Engine) {
		if n > 0 {
			e.cache, _ = lru.New[string, domain.DeviceAttributes](n)
		}
	}
}

// New creates an Engine. The store may be nil, in which case appraisals are
// computed but not persisted.
func New(
	st store.Store,
	estimator *pricing.Estimator,
	sampler *market.Sampler,
	recommender *recommend.Generator,
	opts ...Option,
) *Engine {
	cache, _ := lru.New[string, domain.DeviceAttributes](defaultExtractCacheSize)

	e := &Engine{
		store:         st,
		estimator:     estimator,
		sampler:       sampler,
		recommender:   recommender,
		cache:         cache,
		log:           slog.Default(),
		defaultRegion: "us",
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Appraise runs the full pipeline for one request. The pricing stages never
// fail; a persistence error is logged and leaves AppraisalID empty rather
// than failing the appraisal.
func (e *Engine) Appraise(ctx context.Context, req Request) Result {
	attrs := e.resolveAttributes(req)

	region := req.Region
	if region == "" {
		region = e.defaultRegion
	}

	sample := e.sampler.Sample(req.DeviceType, attrs.Brand, attrs.Model)
	metrics.MarketSamplesTotal.Inc()

	marketData := req.Market
	if marketData == nil {
		marketData = &domain.MarketData{
			AveragePrice: sample.BlendedAverage,
			Listings:     totalListings(sample),
		}
	}

	estimate := e.estimator.Estimate(attrs, marketData, req.DeviceType, region)
	metrics.AppraisalsTotal.WithLabelValues(string(estimate.Basis.Source)).Inc()
	metrics.EstimateAmounts.Observe(estimate.Amount)

	recs := e.recommender.Recommend(req.DeviceType, attrs.Brand, attrs.Model, estimate.Amount)
	metrics.RecommendationsTotal.Inc()

	result := Result{
		Attributes:      attrs,
		Estimate:        estimate,
		Sample:          sample,
		Range:           e.sampler.Range(attrs),
		Recommendations: recs,
		Suggested:       e.sampler.SuggestedListings(attrs),
	}

	if e.store != nil {
		record := &domain.Appraisal{
			DeviceType: req.DeviceType,
			Brand:      attrs.Brand,
			Model:      attrs.Model,
			Specs:      attrs.Specs,
			Condition:  attrs.Condition,
			Region:     region,
			Amount:     estimate.Amount,
			BaseSource: estimate.Basis.Source,
		}
		if err := e.store.InsertAppraisal(ctx, record); err != nil {
			e.log.Warn("persisting appraisal failed", "error", err)
		} else {
			result.AppraisalID = record.ID
		}
	}

	return result
}

// Extract runs the rule-based extractor with LRU memoization. Extraction is
// deterministic, so identical text always maps to the same attributes.
func (e *Engine) Extract(text string) domain.DeviceAttributes {
	if attrs, ok := e.cache.Get(text); ok {
		metrics.ExtractionCacheHitsTotal.Inc()
		return attrs
	}

	attrs := extract.Extract(text)
	if attrs.Brand == "" && attrs.Model == "" {
		metrics.ExtractionDefaultsTotal.Inc()
	}

	e.cache.Add(text, attrs)
	return attrs
}

// Sample exposes the market sampler for the standalone endpoint.
func (e *Engine) Sample(deviceType domain.DeviceType, brand, model string) domain.MarketSample {
	metrics.MarketSamplesTotal.Inc()
	return e.sampler.Sample(deviceType, brand, model)
}

// Recommend exposes the recommendation generator for the standalone
// endpoint.
func (e *Engine) Recommend(
	deviceType domain.DeviceType,
	brand, model string,
	price float64,
) []domain.Recommendation {
	metrics.RecommendationsTotal.Inc()
	return e.recommender.Recommend(deviceType, brand, model, price)
}

// resolveAttributes prefers structured fields and falls back to extraction
// only when every structured field is absent.
func (e *Engine) resolveAttributes(req Request) domain.DeviceAttributes {
	structured := req.Brand != "" || req.Model != "" || req.Specs != "" || req.Condition != ""
	if !structured {
		return e.Extract(req.Description)
	}

	cond := req.Condition
	if strings.TrimSpace(string(cond)) == "" {
		cond = domain.ConditionUsed
	}

	return domain.DeviceAttributes{
		Brand:     req.Brand,
		Model:     req.Model,
		Specs:     req.Specs,
		Condition: cond,
	}
}

func totalListings(sample domain.MarketSample) int {
	n := 0
	for _, src := range sample.Sources {
		n += src.Listings
	}
	return n
}
