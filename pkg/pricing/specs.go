package pricing

import "strings"

// specTier is one priority level within a signal category: if any keyword
// matches, the category contributes factor and stops.
type specTier struct {
	keywords []string
	factor   float64
}

// The five spec signal categories. Within a category tiers are checked in
// descending order (largest capacity / highest CPU tier first) and only the
// first hit applies, so "1tb 512gb" contributes the terabyte factor alone.
// Categories are exclusive, not cumulative; across categories the factors
// compose multiplicatively.
var (
	premiumSignals = []specTier{
		{[]string{"premium", "pro", "flagship", "high-end", "gaming"}, 1.15},
	}

	storageSignals = []specTier{
		{[]string{"tb"}, 1.2},
		{[]string{"512gb", "500gb"}, 1.1},
		{[]string{"256gb", "250gb"}, 1.05},
	}

	ramSignals = []specTier{
		{[]string{"32gb ram", "32 gb ram"}, 1.2},
		{[]string{"16gb ram", "16 gb ram"}, 1.1},
		{[]string{"8gb ram", "8 gb ram"}, 1.05},
	}

	cpuSignals = []specTier{
		{[]string{"i9", "ryzen 9"}, 1.2},
		{[]string{"i7", "ryzen 7"}, 1.1},
		{[]string{"i5", "ryzen 5"}, 1.05},
	}

	ageSignals = []specTier{
		{[]string{"old", "outdated", "2015", "2016", "2017"}, 0.8},
	}
)

// SpecsMultiplier scans a free-form specs string and composes the per-
// category factors into one multiplier. Empty specs return the neutral 1.0.
func SpecsMultiplier(specs string) float64 {
	if specs == "" {
		return 1.0
	}

	lower := strings.ToLower(specs)
	mult := 1.0

	for _, category := range [][]specTier{
		premiumSignals,
		storageSignals,
		ramSignals,
		cpuSignals,
		ageSignals,
	} {
		mult *= categoryFactor(lower, category)
	}

	return mult
}

// categoryFactor returns the factor of the first matching tier, or the
// neutral 1.0 when no tier matches.
func categoryFactor(lower string, tiers []specTier) float64 {
	for _, t := range tiers {
		for _, kw := range t.keywords {
			if strings.Contains(lower, kw) {
				return t.factor
			}
		}
	}
	return 1.0
}
