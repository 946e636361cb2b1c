package client

import (
	"context"

	"github.com/di-awab/priseitup/internal/engine"
	domain "github.com/di-awab/priseitup/pkg/types"
)

// AppraiseRequest is the request body for the appraise endpoint.
type AppraiseRequest struct {
	Description string  `json:"description,omitempty"`
	DeviceType  string  `json:"device_type"`
	Brand       string  `json:"brand,omitempty"`
	Model       string  `json:"model,omitempty"`
	Specs       string  `json:"specs,omitempty"`
	Condition   string  `json:"condition,omitempty"`
	Region      string  `json:"region,omitempty"`
	MarketAvg   float64 `json:"market_avg,omitempty"`
}

// Appraise submits a device for a full appraisal.
func (c *Client) Appraise(ctx context.Context, req *AppraiseRequest) (*engine.Result, error) {
	var result engine.Result
	if err := c.post(ctx, "/api/v1/appraise", req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// Extract runs attribute extraction against a free-text description.
func (c *Client) Extract(ctx context.Context, description string) (*domain.DeviceAttributes, error) {
	body := map[string]string{"description": description}

	var attrs domain.DeviceAttributes
	if err := c.post(ctx, "/api/v1/extract", body, &attrs); err != nil {
		return nil, err
	}
	return &attrs, nil
}
