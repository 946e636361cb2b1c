package pricing

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	domain "github.com/di-awab/priseitup/pkg/types"
)

func TestEstimate_MarketPath(t *testing.T) {
	t.Parallel()

	e := NewEstimator()
	attrs := domain.DeviceAttributes{
		Brand:     "Apple",
		Condition: domain.ConditionGood,
	}
	market := &domain.MarketData{AveragePrice: 400, Listings: 12}

	got := e.Estimate(attrs, market, domain.DeviceSmartphone, "us")

	assert.Equal(t, domain.BaseMarket, got.Basis.Source)
	assert.Equal(t, 400.0, got.Basis.BasePrice)
	assert.Equal(t, 0.75, got.Basis.ConditionFactor)
	assert.Equal(t, 1.0, got.Basis.RegionFactor)
	assert.Equal(t, 1.0, got.Basis.SpecsFactor)
	assert.Equal(t, 300.0, got.Amount)
}

func TestEstimate_MarketPathAllFactors(t *testing.T) {
	t.Parallel()

	e := NewEstimator()
	attrs := domain.DeviceAttributes{
		Brand:     "Dell",
		Specs:     "512gb ssd, 16gb ram, i7",
		Condition: domain.ConditionLikeNew,
	}
	market := &domain.MarketData{AveragePrice: 1000}

	got := e.Estimate(attrs, market, domain.DeviceLaptop, "uk")

	// 1000 * 0.9 * 1.1 * (1.1 * 1.1 * 1.1) rounded to whole dollars.
	want := RoundWhole(1000 * 0.9 * 1.1 * 1.1 * 1.1 * 1.1)
	assert.Equal(t, want, got.Amount)
	assert.Equal(t, domain.BaseMarket, got.Basis.Source)
}

func TestEstimate_FallbackPath(t *testing.T) {
	t.Parallel()

	e := NewEstimator(WithRand(rand.New(rand.NewSource(42))))
	attrs := domain.DeviceAttributes{
		Brand:     "Dell",
		Condition: domain.ConditionNew,
	}

	got := e.Estimate(attrs, nil, domain.DeviceLaptop, "us")

	assert.Equal(t, domain.BaseTable, got.Basis.Source)
	// Base 800 x brand 1.2 = 960 with jitter in [0.9, 1.1].
	assert.GreaterOrEqual(t, got.Basis.BasePrice, 864.0)
	assert.LessOrEqual(t, got.Basis.BasePrice, 1056.0)
	assert.GreaterOrEqual(t, got.Amount, 864.0)
	assert.LessOrEqual(t, got.Amount, 1056.0)
}

func TestEstimate_ZeroMarketAverageFallsBack(t *testing.T) {
	t.Parallel()

	e := NewEstimator()
	got := e.Estimate(domain.DeviceAttributes{}, &domain.MarketData{}, domain.DeviceSmartphone, "us")

	assert.Equal(t, domain.BaseTable, got.Basis.Source)
}

func TestEstimate_RecoveryPath(t *testing.T) {
	t.Parallel()

	e := NewEstimator(WithRand(rand.New(rand.NewSource(7))))
	market := &domain.MarketData{AveragePrice: math.Inf(1)}

	got := e.Estimate(domain.DeviceAttributes{Brand: "Apple"}, market, domain.DeviceSmartphone, "us")

	assert.Equal(t, domain.BaseRecovery, got.Basis.Source)
	assert.Equal(t, 1.0, got.Basis.ConditionFactor)
	assert.Equal(t, 1.0, got.Basis.RegionFactor)
	assert.Equal(t, 1.0, got.Basis.SpecsFactor)
	assert.False(t, math.IsInf(got.Amount, 0))
	// Recovery base: 300 x 1.8 = 540 with jitter in [0.9, 1.1].
	assert.GreaterOrEqual(t, got.Amount, 486.0)
	assert.LessOrEqual(t, got.Amount, 594.0)
}

func TestEstimate_AlwaysFiniteNonNegative(t *testing.T) {
	t.Parallel()

	e := NewEstimator(WithRand(rand.New(rand.NewSource(1))))
	inputs := []*domain.MarketData{
		nil,
		{},
		{AveragePrice: -50},
		{AveragePrice: math.NaN()},
		{AveragePrice: math.Inf(1)},
		{AveragePrice: 0.0001},
		{AveragePrice: 1e12},
	}

	for _, m := range inputs {
		got := e.Estimate(domain.DeviceAttributes{}, m, "widget", "zz")
		assert.False(t, math.IsNaN(got.Amount))
		assert.False(t, math.IsInf(got.Amount, 0))
		assert.GreaterOrEqual(t, got.Amount, 0.0)
	}
}

func TestFallbackPrice_SeededReproducibility(t *testing.T) {
	t.Parallel()

	a := NewEstimator(WithRand(rand.New(rand.NewSource(99))))
	b := NewEstimator(WithRand(rand.New(rand.NewSource(99))))

	for range 5 {
		assert.Equal(t,
			a.FallbackPrice(domain.DeviceSmartphone, "apple"),
			b.FallbackPrice(domain.DeviceSmartphone, "apple"))
	}
}

func TestRoundWhole(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 300.0, RoundWhole(299.5))
	assert.Equal(t, 299.0, RoundWhole(299.4))
	assert.Equal(t, 0.0, RoundWhole(0))
}

func TestRoundCents(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 12.35, RoundCents(12.345))
	assert.Equal(t, 12.34, RoundCents(12.344))
}
