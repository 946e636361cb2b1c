package extract

import (
	"regexp"
	"strings"
)

// selfContained matches tokens that carry their own capacity, e.g. "256gb"
// or "1tb". Group 1 is the digits, group 2 the unit.
var selfContained = regexp.MustCompile(`^(\d+)(gb|tb)`)

// DetectStorage scans whitespace-separated tokens for a storage unit suffix
// ("gb"/"tb") and returns digits+unit, e.g. "256gb". The digits come from
// the token itself when it is self-contained, otherwise from the immediately
// preceding token when that token contains digits.
//
// When multiple capacities occur, the LAST match found scanning left to
// right is kept; later occurrences overwrite earlier ones.
func DetectStorage(lower string) string {
	words := strings.Fields(lower)
	spec := ""

	for i, w := range words {
		if !strings.Contains(w, "gb") && !strings.Contains(w, "tb") {
			continue
		}

		if m := selfContained.FindStringSubmatch(w); m != nil {
			spec = m[1] + m[2]
			continue
		}

		if i == 0 {
			continue
		}

		if digits := digitsOf(words[i-1]); digits != "" {
			spec = digits + w
		}
	}

	return spec
}

// digitsOf returns the digit characters of s, or "" when s has none.
func digitsOf(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
