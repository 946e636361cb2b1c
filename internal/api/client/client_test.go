package client

import (
	"context"
	"net/http"
	"testing"

	"github.com/jarcoal/httpmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/di-awab/priseitup/pkg/types"
)

const testBase = "http://pit.test"

// newMockClient returns a Client whose transport is intercepted by
// httpmock, plus the transport for registering responders.
func newMockClient() (*Client, *httpmock.MockTransport) {
	transport := httpmock.NewMockTransport()
	hc := &http.Client{Transport: transport}
	return New(testBase, WithHTTPClient(hc)), transport
}

func TestClient_ConnectionRefused(t *testing.T) {
	t.Parallel()

	c := New("http://127.0.0.1:1") // nothing listening
	_, err := c.Stats(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "API server not running")
}

func TestClient_HTTPError(t *testing.T) {
	t.Parallel()

	c, transport := newMockClient()
	transport.RegisterResponder(http.MethodGet, testBase+"/api/v1/stats",
		httpmock.NewStringResponder(http.StatusInternalServerError, `{"error":"internal"}`))

	_, err := c.Stats(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "API error (HTTP 500)")
}

func TestClient_Appraise(t *testing.T) {
	t.Parallel()

	c, transport := newMockClient()
	transport.RegisterResponder(http.MethodPost, testBase+"/api/v1/appraise",
		httpmock.NewStringResponder(http.StatusOK, `{
			"appraisal_id": "a1",
			"attributes": {"brand": "Apple", "model": "iPhone 13", "specs": "", "condition": "good"},
			"estimate": {"amount": 540, "basis": {"source": "market"}}
		}`))

	result, err := c.Appraise(context.Background(), &AppraiseRequest{
		Description: "apple iphone 13, good",
		DeviceType:  "smartphone",
	})
	require.NoError(t, err)
	assert.Equal(t, "a1", result.AppraisalID)
	assert.Equal(t, "Apple", result.Attributes.Brand)
	assert.Equal(t, 540.0, result.Estimate.Amount)
}

func TestClient_Extract(t *testing.T) {
	t.Parallel()

	c, transport := newMockClient()
	transport.RegisterResponder(http.MethodPost, testBase+"/api/v1/extract",
		httpmock.NewStringResponder(http.StatusOK,
			`{"brand":"Samsung","model":"Galaxy S21","specs":"128gb","condition":"fair"}`))

	attrs, err := c.Extract(context.Background(), "samsung galaxy s21 128gb fair")
	require.NoError(t, err)
	assert.Equal(t, "Samsung", attrs.Brand)
	assert.Equal(t, domain.ConditionFair, attrs.Condition)
}

func TestClient_MarketSample(t *testing.T) {
	t.Parallel()

	c, transport := newMockClient()
	transport.RegisterResponder(http.MethodGet,
		testBase+"/api/v1/market-sample?brand=apple&device_type=smartphone",
		httpmock.NewStringResponder(http.StatusOK, `{
			"sources": [
				{"source": "eBay", "min_price": 432, "max_price": 648, "avg_price": 540, "listings": 10},
				{"source": "Amazon", "min_price": 504.9, "max_price": 683.1, "avg_price": 594, "listings": 7}
			],
			"blended_average": 572.4
		}`))

	sample, err := c.MarketSample(context.Background(), "smartphone", "apple", "")
	require.NoError(t, err)
	require.Len(t, sample.Sources, 2)
	assert.Equal(t, 572.4, sample.BlendedAverage)
}

func TestClient_Recommendations(t *testing.T) {
	t.Parallel()

	c, transport := newMockClient()
	transport.RegisterResponder(http.MethodGet,
		testBase+"/api/v1/recommendations?brand=Apple&device_type=smartphone&price=600",
		httpmock.NewStringResponder(http.StatusOK,
			`{"recommendations":[{"title":"Apple iPhone Pro","price":780}]}`))

	resp, err := c.Recommendations(context.Background(), "smartphone", "Apple", "", 600)
	require.NoError(t, err)
	require.Len(t, resp.Recommendations, 1)
	assert.Equal(t, 780.0, resp.Recommendations[0].Price)
}

func TestClient_ListAppraisals(t *testing.T) {
	t.Parallel()

	c, transport := newMockClient()
	transport.RegisterResponder(http.MethodGet,
		testBase+"/api/v1/appraisals?brand=apple&device_type=smartphone&limit=10",
		httpmock.NewStringResponder(http.StatusOK,
			`{"appraisals":[{"id":"a1","brand":"Apple"}],"total":1}`))

	resp, err := c.ListAppraisals(context.Background(), &ListAppraisalsParams{
		DeviceType: "smartphone",
		Brand:      "apple",
		Limit:      10,
	})
	require.NoError(t, err)
	assert.Equal(t, 1, resp.Total)
	require.Len(t, resp.Appraisals, 1)
	assert.Equal(t, "a1", resp.Appraisals[0].ID)
}

func TestClient_GetAppraisal(t *testing.T) {
	t.Parallel()

	c, transport := newMockClient()
	transport.RegisterResponder(http.MethodGet, testBase+"/api/v1/appraisals/a1",
		httpmock.NewStringResponder(http.StatusOK, `{"id":"a1","amount":540}`))

	a, err := c.GetAppraisal(context.Background(), "a1")
	require.NoError(t, err)
	assert.Equal(t, 540.0, a.Amount)
}

func TestClient_Stats(t *testing.T) {
	t.Parallel()

	c, transport := newMockClient()
	transport.RegisterResponder(http.MethodGet, testBase+"/api/v1/stats",
		httpmock.NewStringResponder(http.StatusOK,
			`{"total":5,"avg_amount":312.4,"by_device_type":{"smartphone":5}}`))

	s, err := c.Stats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 5, s.Total)
	assert.Equal(t, 312.4, s.AvgAmount)
}
