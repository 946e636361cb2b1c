package pricing

import (
	"math"
	"math/rand"
	"time"

	domain "github.com/di-awab/priseitup/pkg/types"
)

// Estimator produces point estimates from extracted attributes, market data,
// and the factor tables. Its contract is "always a number": no call path
// returns an error, and any internal anomaly routes to the fixed-price
// recovery method.
type Estimator struct {
	rng *rand.Rand
}

// EstimatorOption configures the Estimator.
type EstimatorOption func(*Estimator)

// WithRand injects the random source used for fallback jitter, letting
// tests substitute a fixed-seed generator.
func WithRand(rng *rand.Rand) EstimatorOption {
	return func(e *Estimator) {
		e.rng = rng
	}
}

// NewEstimator creates an Estimator. Synchronizing access to the random
// source across concurrent callers is the caller's concern.
func NewEstimator(opts ...EstimatorOption) *Estimator {
	e := &Estimator{
		rng: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Estimate computes a point estimate in whole USD.
//
// The base price is the supplied market average when it is positive;
// otherwise the factor-table fallback derives it from device type and brand
// with bounded random jitter, so the table path is deliberately
// non-deterministic. Condition, region, and specs factors then compose
// multiplicatively. If the chain produces a non-finite or negative value,
// the fixed-price recovery method supplies the result instead.
func (e *Estimator) Estimate(
	attrs domain.DeviceAttributes,
	market *domain.MarketData,
	deviceType domain.DeviceType,
	region string,
) domain.PriceEstimate {
	basis := domain.EstimateBasis{Source: domain.BaseTable}

	if market != nil && market.AveragePrice > 0 {
		basis.Source = domain.BaseMarket
		basis.BasePrice = market.AveragePrice
	} else {
		basis.BasePrice = e.FallbackPrice(deviceType, attrs.Brand)
	}

	basis.ConditionFactor = ConditionMultiplier(attrs.Condition)
	basis.RegionFactor = RegionMultiplier(region)
	basis.SpecsFactor = SpecsMultiplier(attrs.Specs)

	amount := basis.BasePrice *
		basis.ConditionFactor *
		basis.RegionFactor *
		basis.SpecsFactor

	if !isUsable(amount) {
		recovered := e.FallbackPrice(deviceType, attrs.Brand)
		return domain.PriceEstimate{
			Amount: RoundWhole(recovered),
			Basis: domain.EstimateBasis{
				Source:          domain.BaseRecovery,
				BasePrice:       recovered,
				ConditionFactor: 1.0,
				RegionFactor:    1.0,
				SpecsFactor:     1.0,
			},
		}
	}

	return domain.PriceEstimate{
		Amount: RoundWhole(amount),
		Basis:  basis,
	}
}

// FallbackPrice is the fixed-price method: device-type base times brand
// multiplier times jitter in [0.9, 1.1]. The jitter stands in for model
// variation the tables cannot see, so results differ call to call.
func (e *Estimator) FallbackPrice(deviceType domain.DeviceType, brand string) float64 {
	jitter := 0.9 + e.rng.Float64()*0.2
	return BasePrice(deviceType) * BrandMultiplier(brand) * jitter
}

// isUsable reports whether a computed amount is a finite, non-negative
// number and therefore safe to return.
func isUsable(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0) && v >= 0
}
