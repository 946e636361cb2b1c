package client

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	domain "github.com/di-awab/priseitup/pkg/types"
)

// AppraisalsResponse wraps a paginated appraisal history response.
type AppraisalsResponse struct {
	Appraisals []domain.Appraisal `json:"appraisals"`
	Total      int                `json:"total"`
}

// ListAppraisalsParams defines query parameters for history queries.
type ListAppraisalsParams struct {
	DeviceType string
	Brand      string
	Limit      int
	Offset     int
	OrderBy    string
}

// ListAppraisals returns stored appraisals matching the given parameters.
func (c *Client) ListAppraisals(
	ctx context.Context,
	params *ListAppraisalsParams,
) (*AppraisalsResponse, error) {
	q := url.Values{}
	if params.DeviceType != "" {
		q.Set("device_type", params.DeviceType)
	}
	if params.Brand != "" {
		q.Set("brand", params.Brand)
	}
	if params.Limit > 0 {
		q.Set("limit", strconv.Itoa(params.Limit))
	}
	if params.Offset > 0 {
		q.Set("offset", strconv.Itoa(params.Offset))
	}
	if params.OrderBy != "" {
		q.Set("order_by", params.OrderBy)
	}

	path := "/api/v1/appraisals"
	if len(q) > 0 {
		path += "?" + q.Encode()
	}

	var resp AppraisalsResponse
	if err := c.get(ctx, path, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// GetAppraisal returns a single stored appraisal by ID.
func (c *Client) GetAppraisal(ctx context.Context, id string) (*domain.Appraisal, error) {
	var a domain.Appraisal
	if err := c.get(ctx, fmt.Sprintf("/api/v1/appraisals/%s", id), &a); err != nil {
		return nil, err
	}
	return &a, nil
}

// Stats returns aggregate statistics over stored appraisals.
func (c *Client) Stats(ctx context.Context) (*domain.AppraisalStats, error) {
	var stats domain.AppraisalStats
	if err := c.get(ctx, "/api/v1/stats", &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}
