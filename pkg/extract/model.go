package extract

import (
	"fmt"
	"strings"
)

// iphoneQualifiers are the tier qualifiers for the iPhone family, longest
// first. The multi-word "pro max" must be checked before "pro" and "max" so
// that the most specific qualifier wins.
var iphoneQualifiers = []struct {
	token   string
	display string
}{
	{"pro max", "Pro Max"},
	{"pro", "Pro"},
	{"max", "Max"},
	{"plus", "Plus"},
	{"mini", "Mini"},
}

// galaxySeries lists the recognized Samsung Galaxy series tokens in check
// order. Only the first match is appended to the model.
var galaxySeries = []struct {
	token   string
	display string
}{
	{"s21", "S21"},
	{"s20", "S20"},
	{"s10", "S10"},
	{"s9", "S9"},
	{"s8", "S8"},
	{"note 20", "Note 20"},
	{"note 10", "Note 10"},
	{"note 9", "Note 9"},
	{"a52", "A52"},
	{"a51", "A51"},
	{"a50", "A50"},
}

// DetectModel resolves brand-specific model names from the lowercased input.
// It returns the model plus an optional brand override: an "iphone" token
// implies Apple even when another brand token matched first.
//
// For the iPhone family the generation number (3..14) and the tier qualifier
// compose: "iphone 13 pro" yields "iPhone 13 Pro". Qualifier precedence is
// longest-match-first ("pro max" > "pro" > "max" > "plus" > "mini"). With
// no generation and no qualifier the bare family name is returned.
func DetectModel(lower, brand string) (model, brandOverride string) {
	if strings.Contains(lower, "iphone") {
		return iphoneModel(lower), "Apple"
	}

	if brand == "Samsung" && strings.Contains(lower, "galaxy") {
		return galaxyModel(lower), ""
	}

	return "", ""
}

func iphoneModel(lower string) string {
	model := "iPhone"

	// Generation numbers are checked in ascending order; the spacing
	// variants mirror how sellers actually write them.
	for gen := 3; gen <= 14; gen++ {
		spaced := fmt.Sprintf("iphone %d", gen)
		joined := fmt.Sprintf("iphone%d", gen)
		if strings.Contains(lower, spaced) || strings.Contains(lower, joined) {
			model = fmt.Sprintf("iPhone %d", gen)
			break
		}
	}

	for _, q := range iphoneQualifiers {
		if strings.Contains(lower, q.token) {
			return model + " " + q.display
		}
	}

	return model
}

func galaxyModel(lower string) string {
	model := "Galaxy"

	for _, s := range galaxySeries {
		if strings.Contains(lower, s.token) {
			return model + " " + s.display
		}
	}

	return model
}
