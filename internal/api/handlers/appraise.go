package handlers

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/di-awab/priseitup/internal/engine"
	domain "github.com/di-awab/priseitup/pkg/types"
)

// AppraiseHandler handles full appraisal requests.
type AppraiseHandler struct {
	engine *engine.Engine
}

// NewAppraiseHandler creates a new AppraiseHandler.
func NewAppraiseHandler(e *engine.Engine) *AppraiseHandler {
	return &AppraiseHandler{engine: e}
}

// AppraiseInput is the request body for the appraise endpoint. Either a
// free-text description or explicit structured attributes must be given;
// structured fields win when both are present.
type AppraiseInput struct {
	Body struct {
		Description string  `json:"description,omitempty" doc:"Free-text device description" example:"Apple iPhone 13 Pro 256GB, excellent condition"`
		DeviceType  string  `json:"device_type" minLength:"1" doc:"Device category" example:"smartphone"`
		Brand       string  `json:"brand,omitempty"     doc:"Device brand, skips extraction when set"`
		Model       string  `json:"model,omitempty"     doc:"Device model, skips extraction when set"`
		Specs       string  `json:"specs,omitempty"     doc:"Free-form specs string, e.g. storage size"`
		Condition   string  `json:"condition,omitempty" doc:"Device condition" enum:"new,like_new,excellent,good,fair,poor,used,"`
		Region      string  `json:"region,omitempty"    doc:"Two-letter region code, defaults to server config" example:"us"`
		MarketAvg   float64 `json:"market_avg,omitempty" minimum:"0" doc:"Externally supplied market average price; zero means simulate"`
	}
}

// AppraiseOutput is the response body for the appraise endpoint.
type AppraiseOutput struct {
	Body engine.Result
}

// Appraise runs the full pipeline: extraction (if needed), market sampling,
// estimation, recommendations, and persistence.
func (h *AppraiseHandler) Appraise(
	ctx context.Context,
	input *AppraiseInput,
) (*AppraiseOutput, error) {
	if input.Body.Description == "" &&
		input.Body.Brand == "" && input.Body.Model == "" {
		return nil, huma.Error422UnprocessableEntity(
			"either description or brand/model attributes are required")
	}

	req := engine.Request{
		Description: input.Body.Description,
		DeviceType:  domain.DeviceType(input.Body.DeviceType),
		Brand:       input.Body.Brand,
		Model:       input.Body.Model,
		Specs:       input.Body.Specs,
		Condition:   domain.Condition(input.Body.Condition),
		Region:      input.Body.Region,
	}
	if input.Body.MarketAvg > 0 {
		req.Market = &domain.MarketData{AveragePrice: input.Body.MarketAvg}
	}

	result := h.engine.Appraise(ctx, req)

	return &AppraiseOutput{Body: result}, nil
}

// RegisterAppraiseRoutes registers the appraise endpoint with the Huma API.
func RegisterAppraiseRoutes(api huma.API, h *AppraiseHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "appraise-device",
		Method:      http.MethodPost,
		Path:        "/api/v1/appraise",
		Summary:     "Appraise a used device",
		Description: "Extracts attributes from the description when structured fields are absent, " +
			"samples simulated market data, and returns a point estimate with its factor breakdown, " +
			"a display price range, and recommendations.",
		Tags:   []string{"appraise"},
		Errors: []int{http.StatusUnprocessableEntity},
	}, h.Appraise)
}
