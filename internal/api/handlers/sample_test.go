package handlers_test

import (
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/di-awab/priseitup/internal/api/handlers"
)

func TestSampleHandler_Sample(t *testing.T) {
	t.Parallel()

	_, api := humatest.New(t)
	h := handlers.NewSampleHandler(newTestEngine(&stubStore{}))
	handlers.RegisterSampleRoutes(api, h)

	resp := api.Get("/api/v1/market-sample?device_type=smartphone&brand=apple&model=iPhone+13")

	require.Equal(t, http.StatusOK, resp.Code)
	body := resp.Body.String()
	assert.Contains(t, body, `"source":"eBay"`)
	assert.Contains(t, body, `"source":"Amazon"`)
	assert.Contains(t, body, `"blended_average"`)
}

func TestSampleHandler_UnknownDeviceStillSamples(t *testing.T) {
	t.Parallel()

	_, api := humatest.New(t)
	h := handlers.NewSampleHandler(newTestEngine(&stubStore{}))
	handlers.RegisterSampleRoutes(api, h)

	// Unknown device types price off the generic base rather than failing.
	resp := api.Get("/api/v1/market-sample?device_type=gadget")

	require.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), `"blended_average"`)
}
