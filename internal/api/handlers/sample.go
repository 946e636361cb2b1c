package handlers

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/di-awab/priseitup/internal/engine"
	domain "github.com/di-awab/priseitup/pkg/types"
)

// SampleHandler handles simulated market sample requests.
type SampleHandler struct {
	engine *engine.Engine
}

// NewSampleHandler creates a new SampleHandler.
func NewSampleHandler(e *engine.Engine) *SampleHandler {
	return &SampleHandler{engine: e}
}

// SampleInput is the input for the market sample endpoint.
type SampleInput struct {
	DeviceType string `query:"device_type" minLength:"1" doc:"Device category" example:"smartphone"`
	Brand      string `query:"brand"       doc:"Device brand" example:"apple"`
	Model      string `query:"model"       doc:"Device model" example:"iPhone 13 Pro"`
}

// SampleOutput is the response for the market sample endpoint.
type SampleOutput struct {
	Body domain.MarketSample
}

// Sample generates a fresh simulated market sample. Each call draws new
// random listings; results are not reproducible between calls.
func (h *SampleHandler) Sample(
	_ context.Context,
	input *SampleInput,
) (*SampleOutput, error) {
	sample := h.engine.Sample(
		domain.DeviceType(input.DeviceType),
		input.Brand,
		input.Model,
	)
	return &SampleOutput{Body: sample}, nil
}

// RegisterSampleRoutes registers the market sample endpoint with the Huma API.
func RegisterSampleRoutes(api huma.API, h *SampleHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "market-sample",
		Method:      http.MethodGet,
		Path:        "/api/v1/market-sample",
		Summary:     "Generate a simulated market sample",
		Description: "Returns per-source simulated price estimates and their weighted " +
			"blended average for the given device.",
		Tags: []string{"market"},
	}, h.Sample)
}
