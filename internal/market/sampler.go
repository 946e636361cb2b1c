// Package market simulates marketplace price data. There is no network I/O
// here: per-source figures are derived arithmetically from the factor tables
// plus bounded random variation, which is enough for a displayed "range".
// An external collaborator substituting a real fetch hands its result to the
// estimator as domain.MarketData instead.
package market

import (
	"fmt"
	"math/rand"
	"net/url"
	"strings"
	"time"

	"github.com/di-awab/priseitup/pkg/pricing"
	domain "github.com/di-awab/priseitup/pkg/types"
)

// Per-source simulation parameters. The auction source swings wider and
// floors lower; the retail source carries a fixed +10% skew and a tighter
// spread. Listing counts are bounded random integers per source.
const (
	auctionSource    = "eBay"
	auctionVariation = 0.20
	auctionFloor     = 10.0
	auctionMinCount  = 5
	auctionMaxCount  = 50

	retailSource    = "Amazon"
	retailSkew      = 1.1
	retailVariation = 0.15
	retailFloor     = 15.0
	retailMinCount  = 3
	retailMaxCount  = 30

	// Blend weights favor the retail source: its averages track
	// new-condition stock more reliably.
	auctionWeight = 0.4
	retailWeight  = 0.6

	// pricePoints is the length of the flat range sample.
	pricePoints = 5

	rangeVariation = 0.20
)

// rangeSources are the positional labels assigned to range price points.
var rangeSources = []string{"Amazon", "eBay", "BestBuy", "Swappa", "OfferUp"}

// Sampler produces simulated market samples. It is stateless apart from the
// injected random source; successive calls with the same inputs draw fresh
// random figures.
type Sampler struct {
	rng *rand.Rand
}

// SamplerOption configures the Sampler.
type SamplerOption func(*Sampler)

// WithRand injects the random source, letting tests pin the sequence.
func WithRand(rng *rand.Rand) SamplerOption {
	return func(s *Sampler) {
		s.rng = rng
	}
}

// NewSampler creates a Sampler.
func NewSampler(opts ...SamplerOption) *Sampler {
	s := &Sampler{
		rng: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Sample simulates two marketplace sources for the given device and blends
// their averages with fixed weights. When one source's average is zero the
// blend degenerates to the other source unweighted.
func (s *Sampler) Sample(deviceType domain.DeviceType, brand, model string) domain.MarketSample {
	base := pricing.BasePrice(deviceType) * pricing.BrandMultiplier(brand)

	auction := s.sourceEstimate(auctionSource, base, auctionVariation,
		auctionFloor, auctionMinCount, auctionMaxCount)
	retail := s.sourceEstimate(retailSource, base*retailSkew, retailVariation,
		retailFloor, retailMinCount, retailMaxCount)

	return domain.MarketSample{
		Sources:        []domain.SourceEstimate{auction, retail},
		BlendedAverage: blend(auction.Avg, retail.Avg),
	}
}

// sourceEstimate derives one source's {min, max, avg, listings} around base.
func (s *Sampler) sourceEstimate(
	name string,
	base, variation, floor float64,
	minListings, maxListings int,
) domain.SourceEstimate {
	spread := base * variation

	low := base - spread
	if low < floor {
		low = floor
	}

	high := base + spread

	return domain.SourceEstimate{
		Source:   name,
		Min:      pricing.RoundCents(low),
		Max:      pricing.RoundCents(high),
		Avg:      pricing.RoundCents((low + high) / 2),
		Listings: s.intBetween(minListings, maxListings),
	}
}

// blend combines two source averages with the fixed 40/60 weighting,
// degenerating to the non-zero source when the other produced no data.
func blend(auctionAvg, retailAvg float64) float64 {
	if auctionAvg == 0 {
		return retailAvg
	}
	if retailAvg == 0 {
		return auctionAvg
	}
	return pricing.RoundCents(auctionAvg*auctionWeight + retailAvg*retailWeight)
}

// Range produces the flat list of jittered price points used for the price
// range display, with positional source labels. The base comes from the
// range path derivation (brand base, model tier, storage bucket, range
// condition table).
func (s *Sampler) Range(attrs domain.DeviceAttributes) domain.PriceRange {
	base := pricing.RangePrice(attrs)

	prices := make([]float64, 0, pricePoints)
	for range pricePoints {
		prices = append(prices, s.jitterAround(base, rangeVariation))
	}

	return domain.PriceRange{
		Prices:  prices,
		Sources: rangeSources[:pricePoints],
	}
}

// SuggestedListings synthesizes comparable-product listings around a base
// price: a new-condition unit plus common accessories, each with a search
// link composed from the device attributes.
func (s *Sampler) SuggestedListings(attrs domain.DeviceAttributes) []domain.SuggestedListing {
	base := pricing.RangePrice(attrs)
	device := strings.TrimSpace(attrs.Brand + " " + attrs.Model)

	templates := []struct {
		title string
		mult  float64
		query string
	}{
		{fmt.Sprintf("%s %s (New)", device, attrs.Specs), 1.2, strings.TrimSpace(device + " " + attrs.Specs)},
		{device + " Premium Case", 0.1, device + " case"},
		{"Screen Protector Compatible with " + device, 0.05, device + " screen protector"},
		{"Fast Charger for " + device, 0.15, device + " charger"},
		{fmt.Sprintf("Wireless Earbuds Compatible with %s Devices", attrs.Brand), 0.3, "wireless earbuds"},
	}

	listings := make([]domain.SuggestedListing, 0, len(templates))
	for _, t := range templates {
		listings = append(listings, domain.SuggestedListing{
			Title:    strings.TrimSpace(t.title),
			Price:    s.jitterAround(base*t.mult, rangeVariation),
			Link:     searchLink(t.query),
			ImageRef: "https://via.placeholder.com/300x300?text=Product+Image",
		})
	}

	return listings
}

// jitterAround returns base perturbed by a symmetric bounded variation,
// rounded to cents.
func (s *Sampler) jitterAround(base, variation float64) float64 {
	offset := (s.rng.Float64()*2 - 1) * base * variation
	return pricing.RoundCents(base + offset)
}

// intBetween returns a random integer in [low, high].
func (s *Sampler) intBetween(low, high int) int {
	return low + s.rng.Intn(high-low+1)
}

func searchLink(query string) string {
	return "https://www.amazon.com/s?k=" + url.QueryEscape(strings.TrimSpace(query))
}
