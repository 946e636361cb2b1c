package handlers

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/di-awab/priseitup/internal/engine"
	domain "github.com/di-awab/priseitup/pkg/types"
)

// RecommendHandler handles recommendation requests.
type RecommendHandler struct {
	engine *engine.Engine
}

// NewRecommendHandler creates a new RecommendHandler.
func NewRecommendHandler(e *engine.Engine) *RecommendHandler {
	return &RecommendHandler{engine: e}
}

// RecommendInput is the input for the recommendations endpoint.
type RecommendInput struct {
	DeviceType string  `query:"device_type" minLength:"1" doc:"Device category" example:"smartphone"`
	Brand      string  `query:"brand"       doc:"Device brand" example:"apple"`
	Model      string  `query:"model"       doc:"Device model" example:"iPhone 13 Pro"`
	Price      float64 `query:"price"       minimum:"0" doc:"Reference price; zero falls back to per-category defaults"`
}

// RecommendOutput is the response for the recommendations endpoint.
type RecommendOutput struct {
	Body struct {
		Recommendations []domain.Recommendation `json:"recommendations"`
	}
}

// Recommend returns upgrade, similar-device, alternative-brand, and
// accessory suggestions scaled off the reference price.
func (h *RecommendHandler) Recommend(
	_ context.Context,
	input *RecommendInput,
) (*RecommendOutput, error) {
	recs := h.engine.Recommend(
		domain.DeviceType(input.DeviceType),
		input.Brand,
		input.Model,
		input.Price,
	)

	resp := &RecommendOutput{}
	resp.Body.Recommendations = recs
	return resp, nil
}

// RegisterRecommendRoutes registers the recommendations endpoint with the Huma API.
func RegisterRecommendRoutes(api huma.API, h *RecommendHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "get-recommendations",
		Method:      http.MethodGet,
		Path:        "/api/v1/recommendations",
		Summary:     "Get cross-sell recommendations",
		Description: "Returns 2-3 suggestions (upgrade, similar or alternative brand, accessory) " +
			"priced relative to the supplied reference price.",
		Tags: []string{"recommend"},
	}, h.Recommend)
}
