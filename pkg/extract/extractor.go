// Package extract implements the rule-based attribute extractor that turns
// free-text device descriptions into structured attributes. Every rule chain
// here is an ordered list with first-match-wins semantics; the declaration
// order is part of the package contract, not an implementation detail.
package extract

import (
	"strings"

	domain "github.com/di-awab/priseitup/pkg/types"
)

// Extract parses a free-text device description into DeviceAttributes.
// It never fails: any input, including empty text, yields a fully populated
// result. Brand, Model, and Specs may come back empty; Condition defaults
// to "used" when no condition keyword matches.
func Extract(text string) domain.DeviceAttributes {
	lower := strings.ToLower(text)

	attrs := domain.DeviceAttributes{
		Condition: domain.ConditionUsed,
	}

	attrs.Brand = DetectBrand(lower)

	if model, brand := DetectModel(lower, attrs.Brand); model != "" {
		attrs.Model = model
		if brand != "" {
			attrs.Brand = brand
		}
	}

	attrs.Specs = DetectStorage(lower)

	if cond, ok := DetectCondition(lower); ok {
		attrs.Condition = cond
	}

	return attrs
}
