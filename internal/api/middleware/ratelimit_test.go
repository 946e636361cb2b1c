package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRateLimit_AllowsWithinBurst(t *testing.T) {
	t.Parallel()

	e := echo.New()
	handler := RateLimit(1, 3)(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	for range 3 {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/appraise", http.NoBody)
		rec := httptest.NewRecorder()
		require.NoError(t, handler(e.NewContext(req, rec)))
		assert.Equal(t, http.StatusOK, rec.Code)
	}
}

func TestRateLimit_RejectsOverBurst(t *testing.T) {
	t.Parallel()

	e := echo.New()
	handler := RateLimit(0.0001, 1)(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/appraise", http.NoBody)
	rec := httptest.NewRecorder()
	require.NoError(t, handler(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusOK, rec.Code)

	req = httptest.NewRequest(http.MethodGet, "/api/v1/appraise", http.NoBody)
	rec = httptest.NewRecorder()
	require.NoError(t, handler(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Contains(t, rec.Body.String(), "rate limit exceeded")
}

func TestRateLimit_SkipsOperationalPaths(t *testing.T) {
	t.Parallel()

	e := echo.New()
	handler := RateLimit(0.0001, 1)(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	// Exhaust the bucket.
	req := httptest.NewRequest(http.MethodGet, "/api/v1/appraise", http.NoBody)
	require.NoError(t, handler(e.NewContext(req, httptest.NewRecorder())))

	// Probes keep passing.
	for range 5 {
		req = httptest.NewRequest(http.MethodGet, "/healthz", http.NoBody)
		rec := httptest.NewRecorder()
		require.NoError(t, handler(e.NewContext(req, rec)))
		assert.Equal(t, http.StatusOK, rec.Code)
	}
}

func TestRateLimit_DisabledWhenZero(t *testing.T) {
	t.Parallel()

	e := echo.New()
	handler := RateLimit(0, 0)(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	for range 10 {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/appraise", http.NoBody)
		rec := httptest.NewRecorder()
		require.NoError(t, handler(e.NewContext(req, rec)))
		assert.Equal(t, http.StatusOK, rec.Code)
	}
}
