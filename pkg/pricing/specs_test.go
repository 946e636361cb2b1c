package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSpecsMultiplier(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		specs string
		want  float64
	}{
		{"empty is neutral", "", 1.0},
		{"no signals", "blue aluminium body", 1.0},
		{"premium keyword", "flagship model", 1.15},
		{"storage tb", "2tb nvme", 1.2},
		{"storage 512gb", "512gb ssd", 1.1},
		{"storage 256gb", "256gb", 1.05},
		{"ram 16gb", "16gb ram", 1.1},
		{"ram spaced spelling", "32 gb ram", 1.2},
		{"cpu i7", "intel i7", 1.1},
		{"cpu ryzen 9", "amd ryzen 9", 1.2},
		{"age penalty", "outdated 2016 model", 0.8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.InDelta(t, tt.want, SpecsMultiplier(tt.specs), 0.0001)
		})
	}
}

func TestSpecsMultiplier_ExclusiveWithinCategory(t *testing.T) {
	t.Parallel()

	// Two storage capacities contribute only the largest tier's factor.
	assert.InDelta(t, 1.2, SpecsMultiplier("1tb hdd plus 512gb ssd"), 0.0001)
}

func TestSpecsMultiplier_MultiplicativeAcrossCategories(t *testing.T) {
	t.Parallel()

	// gaming (premium) x 512gb (storage) x 16gb ram x i7 x old (age).
	want := 1.15 * 1.1 * 1.1 * 1.1 * 0.8
	assert.InDelta(t, want, SpecsMultiplier("old gaming rig, 512gb, 16gb ram, i7"), 0.0001)
}
