package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/di-awab/priseitup/internal/metrics"
)

func TestMetrics_RecordsRequest(t *testing.T) {
	e := echo.New()
	handler := Metrics()(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	before := testutil.CollectAndCount(metrics.HTTPRequestsTotal)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/stats", http.NoBody)
	rec := httptest.NewRecorder()
	require.NoError(t, handler(e.NewContext(req, rec)))

	after := testutil.CollectAndCount(metrics.HTTPRequestsTotal)
	assert.GreaterOrEqual(t, after, before)
}

func TestMetrics_HealthGauge(t *testing.T) {
	e := echo.New()

	okHandler := Metrics()(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	req := httptest.NewRequest(http.MethodGet, "/healthz", http.NoBody)
	require.NoError(t, okHandler(e.NewContext(req, httptest.NewRecorder())))
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.HealthzUp))

	failHandler := Metrics()(func(c echo.Context) error {
		return c.NoContent(http.StatusServiceUnavailable)
	})
	req = httptest.NewRequest(http.MethodGet, "/readyz", http.NoBody)
	require.NoError(t, failHandler(e.NewContext(req, httptest.NewRecorder())))
	assert.Equal(t, 0.0, testutil.ToFloat64(metrics.ReadyzUp))
}
