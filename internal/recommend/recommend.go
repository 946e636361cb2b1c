// Package recommend generates cross-sell suggestions for an appraised
// device: an upgraded model, a same-tier alternative brand, and an
// accessory. Names are synthesized by string composition, not looked up
// from a product catalog.
package recommend

import (
	"math/rand"
	"net/url"
	"strings"
	"time"

	"github.com/di-awab/priseitup/pkg/pricing"
	domain "github.com/di-awab/priseitup/pkg/types"
)

// Brand peer groups by market segment. The alternative-brand suggestion is
// drawn from the input brand's own segment, never the input brand itself;
// an exhausted segment falls back to the mid-tier list.
var (
	premiumBrands = []string{"Apple", "Samsung", "Sony", "Google", "Microsoft"}
	midTierBrands = []string{"Dell", "HP", "Lenovo", "Asus", "Acer", "LG"}
	budgetBrands  = []string{"Xiaomi", "Realme", "TCL", "Huawei"}
)

// upgradeSuffixes and the similar-model components feed the synthesized
// model names.
var (
	upgradeSuffixes = []string{"Pro", "Plus", "Premium", "Ultra", "Max", "Next Gen"}
	similarPrefixes = []string{"A", "X", "Z", "Pro", "Elite", "Prime"}
	similarNumbers  = []string{"5", "7", "9", "10", "20", "500", "900"}
)

// accessoryLists hold device-type-specific accessory names.
var accessoryLists = map[domain.DeviceType][]string{
	domain.DeviceSmartphone: {"Fast Charger", "Premium Case", "Screen Protector", "Power Bank", "Wireless Earbuds"},
	domain.DeviceLaptop:     {"Cooling Pad", "Carrying Case", "Wireless Mouse", "USB-C Hub", "External SSD"},
	domain.DeviceTablet:     {"Smart Cover", "Stylus Pen", "Screen Protector", "Keyboard Case", "Stand"},
	domain.DeviceDesktop:    {"Mechanical Keyboard", "Gaming Mouse", "Large Monitor", "External SSD", "Webcam"},
	domain.DeviceCamera:     {"Extra Battery", "Memory Card", "Camera Bag", "Tripod", "Lens Cleaning Kit"},
	domain.DeviceHeadphones: {"Carry Case", "Replacement Ear Pads", "Headphone Stand", "Audio Cable", "Battery Pack"},
	domain.DeviceSmartwatch: {"Extra Band", "Charging Dock", "Screen Protector", "Wireless Earbuds", "Band Adapter"},
}

var genericAccessories = []string{"Premium Accessory", "Protective Case", "Cleaning Kit"}

// Default literal prices used when no estimate is supplied.
const (
	phoneUpgradeDefault   = 499.99
	phoneSimilarDefault   = 449.99
	phoneAccessoryDefault = 49.99

	laptopUpgradeDefault   = 1299.99
	laptopSimilarDefault   = 1099.99
	laptopAccessoryDefault = 79.99

	genericPremiumDefault   = 499.99
	genericBudgetDefault    = 299.99
	genericAccessoryDefault = 59.99
)

// Generator produces recommendations. The injected random source drives
// peer-brand and accessory selection.
type Generator struct {
	rng *rand.Rand
}

// GeneratorOption configures the Generator.
type GeneratorOption func(*Generator)

// WithRand injects the random source.
func WithRand(rng *rand.Rand) GeneratorOption {
	return func(g *Generator) {
		g.rng = rng
	}
}

// NewGenerator creates a Generator.
func NewGenerator(opts ...GeneratorOption) *Generator {
	g := &Generator{
		rng: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Recommend returns 3 suggestions for the device. Dispatch is on a closed
// category set: phone, laptop, and a generic catch-all. A zero price
// selects each template's fixed default instead.
func (g *Generator) Recommend(
	deviceType domain.DeviceType,
	brand, model string,
	price float64,
) []domain.Recommendation {
	switch strings.ToLower(string(deviceType)) {
	case "smartphone", "phone":
		return g.phoneSet(brand, model, price)
	case "laptop":
		return g.laptopSet(brand, model, price)
	default:
		return g.genericSet(deviceType, price)
	}
}

func (g *Generator) phoneSet(brand, model string, price float64) []domain.Recommendation {
	alt := g.AlternativeBrand(brand)

	return []domain.Recommendation{
		{
			Title:       strings.TrimSpace(brand + " " + g.UpgradedModel(model)),
			Description: "Upgraded version with better camera and faster processor",
			Price:       scaled(price, 1.3, phoneUpgradeDefault),
			ImageRef:    imageRef("Upgraded+Phone"),
			Link:        searchLink("smartphone"),
		},
		{
			Title:       alt + " " + g.SimilarModel(),
			Description: "Similar specifications with different brand experience",
			Price:       scaled(price, 1.1, phoneSimilarDefault),
			ImageRef:    imageRef("Alternative+Phone"),
			Link:        searchLink("smartphone"),
		},
		{
			Title:       strings.TrimSpace(brand + " " + g.Accessory(domain.DeviceSmartphone)),
			Description: "Perfect accessory for your device",
			Price:       scaled(price, 0.2, phoneAccessoryDefault),
			ImageRef:    imageRef("Phone+Accessory"),
			Link:        searchLink("phone accessories"),
		},
	}
}

func (g *Generator) laptopSet(brand, model string, price float64) []domain.Recommendation {
	alt := g.AlternativeBrand(brand)

	return []domain.Recommendation{
		{
			Title:       strings.TrimSpace(brand + " " + g.UpgradedModel(model)),
			Description: "Upgraded model with faster processor and more RAM",
			Price:       scaled(price, 1.4, laptopUpgradeDefault),
			ImageRef:    imageRef("Upgraded+Laptop"),
			Link:        searchLink("laptop"),
		},
		{
			Title:       alt + " " + g.SimilarModel(),
			Description: "Similar performance with different design philosophy",
			Price:       scaled(price, 1.1, laptopSimilarDefault),
			ImageRef:    imageRef("Alternative+Laptop"),
			Link:        searchLink("laptop"),
		},
		{
			Title:       strings.TrimSpace(brand + " " + g.Accessory(domain.DeviceLaptop)),
			Description: "Essential accessory for your device",
			Price:       scaled(price, 0.15, laptopAccessoryDefault),
			ImageRef:    imageRef("Laptop+Accessory"),
			Link:        searchLink("laptop accessories"),
		},
	}
}

func (g *Generator) genericSet(deviceType domain.DeviceType, price float64) []domain.Recommendation {
	name := titleCase(string(deviceType))

	return []domain.Recommendation{
		{
			Title:       "Premium " + name,
			Description: "High-end model with excellent performance",
			Price:       scaled(price, 1.5, genericPremiumDefault),
			ImageRef:    imageRef("Premium+" + name),
			Link:        searchLink(string(deviceType)),
		},
		{
			Title:       "Budget-friendly " + name,
			Description: "Great value for money with essential features",
			Price:       scaled(price, 0.7, genericBudgetDefault),
			ImageRef:    imageRef("Budget+" + name),
			Link:        searchLink("budget " + string(deviceType)),
		},
		{
			Title:       name + " Accessory Kit",
			Description: "Complete set of accessories for your device",
			Price:       scaled(price, 0.2, genericAccessoryDefault),
			ImageRef:    imageRef(name + "+Accessories"),
			Link:        searchLink(string(deviceType) + " accessories"),
		},
	}
}

// UpgradedModel synthesizes an upgraded model name: models already carrying
// a tier suffix get a generation bump ("... 2"); everything else gets a
// random tier suffix appended.
func (g *Generator) UpgradedModel(model string) string {
	for _, suffix := range upgradeSuffixes {
		if strings.Contains(model, suffix) {
			return model + " 2"
		}
	}
	return strings.TrimSpace(model + " " + g.pick(upgradeSuffixes))
}

// SimilarModel composes a plausible competitor model code.
func (g *Generator) SimilarModel() string {
	return g.pick(similarPrefixes) + g.pick(similarNumbers)
}

// AlternativeBrand picks a random same-segment peer, never the input brand.
func (g *Generator) AlternativeBrand(brand string) string {
	var pool []string
	switch {
	case containsFold(premiumBrands, brand):
		pool = excludeFold(premiumBrands, brand)
	case containsFold(midTierBrands, brand):
		pool = excludeFold(midTierBrands, brand)
	default:
		pool = excludeFold(budgetBrands, brand)
	}

	if len(pool) == 0 {
		pool = excludeFold(midTierBrands, brand)
	}

	return g.pick(pool)
}

// Accessory picks a random accessory appropriate to the device type.
func (g *Generator) Accessory(deviceType domain.DeviceType) string {
	list, ok := accessoryLists[domain.DeviceType(strings.ToLower(string(deviceType)))]
	if !ok {
		list = genericAccessories
	}
	return g.pick(list)
}

func (g *Generator) pick(items []string) string {
	return items[g.rng.Intn(len(items))]
}

func scaled(price, mult, fallback float64) float64 {
	if price <= 0 {
		return fallback
	}
	return pricing.RoundCents(price * mult)
}

func containsFold(items []string, s string) bool {
	for _, it := range items {
		if strings.EqualFold(it, s) {
			return true
		}
	}
	return false
}

func excludeFold(items []string, s string) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		if !strings.EqualFold(it, s) {
			out = append(out, it)
		}
	}
	return out
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func searchLink(query string) string {
	return "https://www.amazon.com/s?k=" + url.QueryEscape(query)
}

func imageRef(label string) string {
	return "https://via.placeholder.com/300x300?text=" + label
}
