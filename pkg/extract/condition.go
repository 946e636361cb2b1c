package extract

import (
	"strings"

	domain "github.com/di-awab/priseitup/pkg/types"
)

// conditionRule pairs a condition with its trigger keywords.
type conditionRule struct {
	cond     domain.Condition
	keywords []string
}

// conditionRules is evaluated top to bottom; the first condition whose
// keyword set has a substring match in the text wins. The ordering is
// deliberate and load-bearing: "new" sits above "like_new", so text like
// "like new" resolves to "new" via its substring. Callers depend on this
// precedence.
var conditionRules = []conditionRule{
	{domain.ConditionNew, []string{"new", "brand new", "sealed", "unopened"}},
	{domain.ConditionLikeNew, []string{"like new", "mint", "mint condition", "perfect condition"}},
	{domain.ConditionExcellent, []string{"excellent", "excellent condition", "barely used"}},
	{domain.ConditionGood, []string{"good", "good condition", "used"}},
	{domain.ConditionFair, []string{"fair", "fair condition", "worn"}},
	{domain.ConditionPoor, []string{"poor", "poor condition", "damaged", "broken"}},
}

// DetectCondition scans the ordered condition rules against the lowercased
// input. Returns (condition, true) on the first match, (ConditionUsed, false)
// when nothing matches.
func DetectCondition(lower string) (domain.Condition, bool) {
	for _, rule := range conditionRules {
		for _, kw := range rule.keywords {
			if strings.Contains(lower, kw) {
				return rule.cond, true
			}
		}
	}
	return domain.ConditionUsed, false
}
