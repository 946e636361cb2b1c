package client

import (
	"context"
	"net/url"
	"strconv"

	domain "github.com/di-awab/priseitup/pkg/types"
)

// MarketSample returns a fresh simulated market sample for the device.
func (c *Client) MarketSample(
	ctx context.Context,
	deviceType, brand, model string,
) (*domain.MarketSample, error) {
	q := url.Values{}
	q.Set("device_type", deviceType)
	if brand != "" {
		q.Set("brand", brand)
	}
	if model != "" {
		q.Set("model", model)
	}

	var sample domain.MarketSample
	if err := c.get(ctx, "/api/v1/market-sample?"+q.Encode(), &sample); err != nil {
		return nil, err
	}
	return &sample, nil
}

// RecommendationsResponse wraps a recommendations response.
type RecommendationsResponse struct {
	Recommendations []domain.Recommendation `json:"recommendations"`
}

// Recommendations returns cross-sell suggestions for the device at the
// given reference price. A zero price uses the server's category defaults.
func (c *Client) Recommendations(
	ctx context.Context,
	deviceType, brand, model string,
	price float64,
) (*RecommendationsResponse, error) {
	q := url.Values{}
	q.Set("device_type", deviceType)
	if brand != "" {
		q.Set("brand", brand)
	}
	if model != "" {
		q.Set("model", model)
	}
	if price > 0 {
		q.Set("price", strconv.FormatFloat(price, 'f', -1, 64))
	}

	var resp RecommendationsResponse
	if err := c.get(ctx, "/api/v1/recommendations?"+q.Encode(), &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
