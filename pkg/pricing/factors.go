// Package pricing implements the multi-factor price estimation pipeline:
// static factor tables, the specs keyword multiplier, and the point
// estimator. All tables are immutable package data constructed once; every
// lookup has a defined default so estimation never fails on an unseen key.
package pricing

import (
	"strings"

	domain "github.com/di-awab/priseitup/pkg/types"
)

// Default values used when a lookup key is not in its table.
const (
	defaultDeviceBase     = 200.0
	defaultBrandMult      = 1.0
	defaultRangeBrandBase = 100.0
	defaultRegionMult     = 1.0

	// defaultConditionMult is the estimator path's neutral factor for
	// conditions outside its table (including "excellent" and "used").
	defaultConditionMult = 0.7

	// defaultRangeConditionMult is the range path's good-tier default for
	// unrecognized conditions. Numerically equal to the estimator default
	// but a distinct entry; the two condition tables stay separate and
	// callers may depend on either.
	defaultRangeConditionMult = 0.7
)

// deviceBasePrices maps device type to its pre-adjustment base price in USD.
var deviceBasePrices = map[domain.DeviceType]float64{
	domain.DeviceSmartphone: 300,
	domain.DeviceLaptop:     800,
	domain.DeviceTablet:     250,
	domain.DeviceDesktop:    700,
	domain.DeviceMonitor:    200,
	domain.DeviceTV:         500,
	domain.DeviceCamera:     400,
	domain.DeviceHeadphones: 100,
	domain.DeviceSmartwatch: 150,
	domain.DeviceSpeaker:    120,
}

// brandMultipliers scale the device base price; premium brands sit above
// 1.0, budget brands below.
var brandMultipliers = map[string]float64{
	"apple":     1.8,
	"samsung":   1.5,
	"google":    1.6,
	"sony":      1.4,
	"microsoft": 1.5,
	"dell":      1.2,
	"hp":        1.1,
	"lenovo":    1.1,
	"asus":      1.1,
	"acer":      0.9,
	"lg":        1.2,
	"bose":      1.6,
	"canon":     1.3,
	"nikon":     1.3,
}

// rangeBrandBases are the range path's brand-specific base prices.
var rangeBrandBases = map[string]float64{
	"apple":     500,
	"samsung":   400,
	"google":    350,
	"sony":      300,
	"lg":        250,
	"microsoft": 400,
	"dell":      300,
	"hp":        250,
	"lenovo":    280,
	"asus":      270,
	"acer":      230,
	"huawei":    220,
	"oneplus":   300,
	"motorola":  180,
	"nokia":     150,
}

// tierEntry is one (token, value) pair in an ordered tier table.
type tierEntry struct {
	token string
	value float64
}

// iphoneGenBases map iPhone generations to range-path base prices, newest
// first. First substring match of the lowercased model wins.
var iphoneGenBases = []tierEntry{
	{"iphone 14", 800},
	{"iphone14", 800},
	{"iphone 13", 700},
	{"iphone13", 700},
	{"iphone 12", 600},
	{"iphone12", 600},
	{"iphone 11", 500},
	{"iphone11", 500},
	{"iphone x", 400},
	{"iphonex", 400},
}

// iphoneQualifierMults apply on top of the generation base, most specific
// qualifier first.
var iphoneQualifierMults = []tierEntry{
	{"pro max", 1.4},
	{"pro", 1.25},
	{"max", 1.2},
	{"plus", 1.15},
	{"mini", 0.8},
}

// galaxyBases map Samsung Galaxy series to range-path base prices.
var galaxyBases = []tierEntry{
	{"s21", 650},
	{"s20", 550},
	{"s10", 400},
	{"note 20", 700},
	{"note 10", 550},
}

// storageBuckets scale the range-path base by capacity, largest checked
// first so "1tb" never falls through to a smaller bucket. Values increase
// monotonically with capacity.
var storageBuckets = []tierEntry{
	{"1tb", 1.5},
	{"512gb", 1.3},
	{"256gb", 1.15},
	{"128gb", 1.0},
	{"64gb", 0.85},
	{"32gb", 0.7},
}

// conditionMultipliers is the estimator path's condition table. Note the
// absence of "excellent": that condition takes the 0.7 default here while
// the range path prices it explicitly; see rangeConditionMultipliers.
var conditionMultipliers = map[domain.Condition]float64{
	domain.ConditionNew:     1.0,
	domain.ConditionLikeNew: 0.9,
	domain.ConditionGood:    0.75,
	domain.ConditionFair:    0.6,
	domain.ConditionPoor:    0.4,
}

// rangeConditionMultipliers is the range path's condition table. It prices
// "excellent" explicitly and degrades more steeply at the bottom than the
// estimator table does.
var rangeConditionMultipliers = map[domain.Condition]float64{
	domain.ConditionNew:       1.0,
	domain.ConditionLikeNew:   0.9,
	domain.ConditionExcellent: 0.8,
	domain.ConditionGood:      0.7,
	domain.ConditionFair:      0.5,
	domain.ConditionPoor:      0.3,
}

// regionMultipliers adjust for regional market value, keyed by lowercase
// country/region code. Anything unrecognized prices as US.
var regionMultipliers = map[string]float64{
	"us": 1.0,
	"ca": 1.05,
	"uk": 1.1,
	"eu": 1.1,
	"au": 1.15,
	"jp": 1.0,
	"kr": 0.9,
	"cn": 0.85,
	"in": 0.8,
	"br": 1.2,
}

// BasePrice returns the device-type base price, defaulting to 200 for
// unknown types.
func BasePrice(deviceType domain.DeviceType) float64 {
	if p, ok := deviceBasePrices[domain.DeviceType(strings.ToLower(string(deviceType)))]; ok {
		return p
	}
	return defaultDeviceBase
}

// BrandMultiplier returns the brand premium factor, defaulting to the
// neutral 1.0 for unknown brands.
func BrandMultiplier(brand string) float64 {
	if m, ok := brandMultipliers[strings.ToLower(brand)]; ok {
		return m
	}
	return defaultBrandMult
}

// ConditionMultiplier returns the estimator path's condition factor.
// The input is normalized so form values like "Like New" hit the table.
func ConditionMultiplier(cond domain.Condition) float64 {
	if m, ok := conditionMultipliers[normalizeCondition(cond)]; ok {
		return m
	}
	return defaultConditionMult
}

// RangeConditionMultiplier returns the range path's condition factor.
func RangeConditionMultiplier(cond domain.Condition) float64 {
	if m, ok := rangeConditionMultipliers[normalizeCondition(cond)]; ok {
		return m
	}
	return defaultRangeConditionMult
}

// RegionMultiplier returns the regional market factor, defaulting to US
// pricing for unrecognized codes.
func RegionMultiplier(region string) float64 {
	if m, ok := regionMultipliers[strings.ToLower(region)]; ok {
		return m
	}
	return defaultRegionMult
}

// RangeBase derives the range path's base price from extracted attributes:
// brand base (default 100), overridden by recognized iPhone/Galaxy model
// tiers, then scaled by the storage bucket.
func RangeBase(attrs domain.DeviceAttributes) float64 {
	base := defaultRangeBrandBase

	brand := strings.ToLower(attrs.Brand)
	if b, ok := rangeBrandBases[brand]; ok {
		base = b
	}

	model := strings.ToLower(attrs.Model)
	switch {
	case strings.Contains(model, "iphone"):
		for _, e := range iphoneGenBases {
			if strings.Contains(model, e.token) {
				base = e.value
				break
			}
		}
		for _, q := range iphoneQualifierMults {
			if strings.Contains(model, q.token) {
				base *= q.value
				break
			}
		}
	case strings.Contains(model, "galaxy") && brand == "samsung":
		for _, e := range galaxyBases {
			if strings.Contains(model, e.token) {
				base = e.value
				break
			}
		}
	}

	specs := strings.ToLower(attrs.Specs)
	if specs != "" {
		for _, b := range storageBuckets {
			if strings.Contains(specs, b.token) {
				base *= b.value
				break
			}
		}
	}

	return base
}

// RangePrice is the range path's full derivation: RangeBase scaled by the
// range condition table.
func RangePrice(attrs domain.DeviceAttributes) float64 {
	return RangeBase(attrs) * RangeConditionMultiplier(attrs.Condition)
}

// normalizeCondition lowercases and underscores a condition so that raw
// form values ("Like New") and enum values ("like_new") hit the same row.
func normalizeCondition(cond domain.Condition) domain.Condition {
	s := strings.ToLower(strings.TrimSpace(string(cond)))
	s = strings.ReplaceAll(s, " ", "_")
	return domain.Condition(s)
}
