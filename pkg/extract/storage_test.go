package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetectStorage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		lower string
		want  string
	}{
		{"self-contained token", "iphone 256gb black", "256gb"},
		{"trailing punctuation", "iphone 256gb, black", "256gb"},
		{"separate unit token", "laptop 512 gb ssd", "512gb"},
		{"terabyte", "desktop 2tb hdd", "2tb"},
		{"digits embedded in previous token", "macbook (512) gb", "512gb"},
		{"unit with no digits anywhere", "needs more gb", ""},
		{"leading unit token", "gb counter", ""},
		{"no storage", "red iphone case", ""},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, DetectStorage(tt.lower))
		})
	}
}

func TestDetectStorage_LastMatchWins(t *testing.T) {
	t.Parallel()

	// Later capacities overwrite earlier ones; the final mention is kept.
	assert.Equal(t, "512gb", DetectStorage("was 256gb, upgraded to 512gb"))
	assert.Equal(t, "64gb", DetectStorage("1tb external plus 64gb internal"))
}
