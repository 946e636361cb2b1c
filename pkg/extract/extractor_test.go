package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"

	domain "github.com/di-awab/priseitup/pkg/types"
)

func TestExtract_FullDescription(t *testing.T) {
	t.Parallel()

	attrs := Extract("Apple iPhone 13 Pro 256GB, excellent condition")

	assert.Equal(t, "Apple", attrs.Brand)
	assert.Equal(t, "iPhone 13 Pro", attrs.Model)
	assert.Equal(t, "256gb", attrs.Specs)
	assert.Equal(t, domain.ConditionExcellent, attrs.Condition)
}

func TestExtract_EmptyInput(t *testing.T) {
	t.Parallel()

	attrs := Extract("")

	assert.Empty(t, attrs.Brand)
	assert.Empty(t, attrs.Model)
	assert.Empty(t, attrs.Specs)
	assert.Equal(t, domain.ConditionUsed, attrs.Condition)
}

func TestExtract_UnrecognizedText(t *testing.T) {
	t.Parallel()

	attrs := Extract("some random gadget nobody has heard of")

	assert.Empty(t, attrs.Brand)
	assert.Empty(t, attrs.Model)
	assert.Equal(t, domain.ConditionUsed, attrs.Condition)
}

func TestExtract_IphoneImpliesApple(t *testing.T) {
	t.Parallel()

	// "iphone" forces the Apple brand even though no "apple" token occurs.
	attrs := Extract("selling my iphone 12 mini, good condition")

	assert.Equal(t, "Apple", attrs.Brand)
	assert.Equal(t, "iPhone 12 Mini", attrs.Model)
	assert.Equal(t, domain.ConditionGood, attrs.Condition)
}

func TestExtract_Table(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		text string
		want domain.DeviceAttributes
	}{
		{
			name: "samsung galaxy with storage",
			text: "Samsung Galaxy S21 128GB fair condition",
			want: domain.DeviceAttributes{
				Brand:     "Samsung",
				Model:     "Galaxy S21",
				Specs:     "128gb",
				Condition: domain.ConditionFair,
			},
		},
		{
			name: "brand only",
			text: "old dell machine, worn",
			want: domain.DeviceAttributes{
				Brand:     "Dell",
				Condition: domain.ConditionFair,
			},
		},
		{
			name: "separate storage token",
			text: "lenovo thinkpad 512 gb ssd",
			want: domain.DeviceAttributes{
				Brand:     "Lenovo",
				Specs:     "512gb",
				Condition: domain.ConditionUsed,
			},
		},
		{
			name: "terabyte capacity",
			text: "sony vaio 1tb drive, broken screen",
			want: domain.DeviceAttributes{
				Brand:     "Sony",
				Specs:     "1tb",
				Condition: domain.ConditionPoor,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, Extract(tt.text))
		})
	}
}
