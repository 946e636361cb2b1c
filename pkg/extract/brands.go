package extract

import "strings"

// brandEntry pairs a lowercase match token with its display name.
type brandEntry struct {
	token   string
	display string
}

// brandList is the canonical ordered brand list. The first token found as a
// substring of the lowercased input wins, so list order is the tie-break
// contract: text mentioning both "samsung" and "sony" always resolves to
// whichever appears earlier HERE, regardless of position in the text.
var brandList = []brandEntry{
	{"apple", "Apple"},
	{"samsung", "Samsung"},
	{"sony", "Sony"},
	{"lg", "LG"},
	{"google", "Google"},
	{"huawei", "Huawei"},
	{"xiaomi", "Xiaomi"},
	{"oneplus", "OnePlus"},
	{"microsoft", "Microsoft"},
	{"nokia", "Nokia"},
	{"motorola", "Motorola"},
	{"asus", "Asus"},
	{"acer", "Acer"},
	{"dell", "Dell"},
	{"hp", "HP"},
	{"lenovo", "Lenovo"},
	{"toshiba", "Toshiba"},
	{"msi", "MSI"},
	{"nintendo", "Nintendo"},
	{"xbox", "Xbox"},
	{"playstation", "PlayStation"},
	{"oppo", "Oppo"},
	{"vivo", "Vivo"},
	{"realme", "Realme"},
	{"honor", "Honor"},
}

// DetectBrand scans the canonical brand list against the lowercased input
// and returns the display name of the first match, or "" when no known
// brand token occurs in the text.
func DetectBrand(lower string) string {
	for _, b := range brandList {
		if strings.Contains(lower, b.token) {
			return b.display
		}
	}
	return ""
}
