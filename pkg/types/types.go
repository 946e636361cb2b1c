// Package domain defines the core business types for the resale appraisal
// service.
package domain

import "time"

// DeviceType categorizes the kind of electronics being appraised.
type DeviceType string

// Device type constants. Unlisted values fall through to the generic
// base price, never to an error.
const (
	DeviceSmartphone DeviceType = "smartphone"
	DeviceLaptop     DeviceType = "laptop"
	DeviceTablet     DeviceType = "tablet"
	DeviceDesktop    DeviceType = "desktop"
	DeviceMonitor    DeviceType = "monitor"
	DeviceTV         DeviceType = "tv"
	DeviceCamera     DeviceType = "camera"
	DeviceHeadphones DeviceType = "headphones"
	DeviceSmartwatch DeviceType = "smartwatch"
	DeviceSpeaker    DeviceType = "speaker"
)

// Condition represents the normalized cosmetic/functional condition of a
// device as extracted from a description.
type Condition string

// Condition constants, ordered best to worst. ConditionUsed is the
// extractor's default when nothing in the text matches.
const (
	ConditionNew       Condition = "new"
	ConditionLikeNew   Condition = "like_new"
	ConditionExcellent Condition = "excellent"
	ConditionGood      Condition = "good"
	ConditionFair      Condition = "fair"
	ConditionPoor      Condition = "poor"
	ConditionUsed      Condition = "used"
)

// DeviceAttributes holds the structured attributes extracted from a free-text
// device description. Brand, Model, and Specs may be empty; Condition is
// always populated (default "used"). Instances are never mutated after
// extraction.
type DeviceAttributes struct {
	Brand     string    `json:"brand"`
	Model     string    `json:"model"`
	Specs     string    `json:"specs"`
	Condition Condition `json:"condition"`
}

// BaseSource identifies where an estimate's base price came from.
type BaseSource string

// Base source constants.
const (
	// BaseMarket means the blended market average was used as the base.
	BaseMarket BaseSource = "market"
	// BaseTable means the factor-table fallback derived the base (no
	// usable market data). The table path adds bounded random jitter.
	BaseTable BaseSource = "table"
	// BaseRecovery means the fixed-price recovery path ran because the
	// multiplier chain produced a non-finite or negative value.
	BaseRecovery BaseSource = "recovery"
)

// EstimateBasis records which inputs and multipliers produced an estimate.
type EstimateBasis struct {
	Source          BaseSource `json:"source"`
	BasePrice       float64    `json:"base_price"`
	ConditionFactor float64    `json:"condition_factor"`
	RegionFactor    float64    `json:"region_factor"`
	SpecsFactor     float64    `json:"specs_factor"`
}

// PriceEstimate is a single point estimate in whole USD with its basis
// breakdown. Produced once per request and never mutated.
type PriceEstimate struct {
	Amount float64       `json:"amount"`
	Basis  EstimateBasis `json:"basis"`
}

// MarketData is the opaque market structure an external collaborator may
// supply in place of the simulated sampler. A zero AveragePrice means "no
// data" and routes the estimator to its fallback path.
type MarketData struct {
	AveragePrice float64 `json:"average_price"`
	Listings     int     `json:"listings"`
}

// SourceEstimate is one simulated marketplace's view of a device's price.
type SourceEstimate struct {
	Source   string  `json:"source"`
	Min      float64 `json:"min_price"`
	Max      float64 `json:"max_price"`
	Avg      float64 `json:"avg_price"`
	Listings int     `json:"listings"`
}

// MarketSample aggregates the per-source estimates and their blended average.
// Samples are regenerated on every call and are not reproducible between
// calls.
type MarketSample struct {
	Sources        []SourceEstimate `json:"sources"`
	BlendedAverage float64          `json:"blended_average"`
}

// PriceRange is a flat list of jittered price points with positional source
// labels, for display as "seen on the market between X and Y".
type PriceRange struct {
	Prices  []float64 `json:"prices"`
	Sources []string  `json:"sources"`
}

// Recommendation is a cross-sell suggestion derived from the appraised
// device and its estimate.
type Recommendation struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	ImageRef    string  `json:"image_ref"`
	Link        string  `json:"link"`
}

// SuggestedListing is a synthesized comparable-product listing shown next to
// the price range.
type SuggestedListing struct {
	Title    string  `json:"title"`
	Price    float64 `json:"price"`
	Link     string  `json:"link"`
	ImageRef string  `json:"image_ref"`
}

// Appraisal is a persisted appraisal record.
type Appraisal struct {
	ID         string     `json:"id"          db:"id"`
	DeviceType DeviceType `json:"device_type" db:"device_type"`
	Brand      string     `json:"brand"       db:"brand"`
	Model      string     `json:"model"       db:"model"`
	Specs      string     `json:"specs"       db:"specs"`
	Condition  Condition  `json:"condition"   db:"condition"`
	Region     string     `json:"region"      db:"region"`
	Amount     float64    `json:"amount"      db:"amount"`
	BaseSource BaseSource `json:"base_source" db:"base_source"`
	CreatedAt  time.Time  `json:"created_at"  db:"created_at"`
}

// AppraisalStats holds aggregate metrics over stored appraisals.
type AppraisalStats struct {
	Total        int                `json:"total"`
	AvgAmount    float64            `json:"avg_amount"`
	ByDeviceType map[string]int     `json:"by_device_type"`
	AvgByDevice  map[string]float64 `json:"avg_by_device_type"`
}
