package handlers

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/di-awab/priseitup/internal/engine"
	domain "github.com/di-awab/priseitup/pkg/types"
)

// ExtractHandler handles attribute extraction requests.
type ExtractHandler struct {
	engine *engine.Engine
}

// NewExtractHandler creates a new ExtractHandler.
func NewExtractHandler(e *engine.Engine) *ExtractHandler {
	return &ExtractHandler{engine: e}
}

// ExtractInput is the request body for the extract endpoint.
type ExtractInput struct {
	Body struct {
		Description string `json:"description" minLength:"1" doc:"Free-text device description" example:"Apple iPhone 13 Pro 256GB, excellent condition"`
	}
}

// ExtractOutput is the response body for the extract endpoint.
type ExtractOutput struct {
	Body domain.DeviceAttributes
}

// Extract runs the keyword-rule extractor against a description. Extraction
// never fails; unrecognized text yields empty brand/model and condition
// "used".
func (h *ExtractHandler) Extract(
	_ context.Context,
	input *ExtractInput,
) (*ExtractOutput, error) {
	attrs := h.engine.Extract(input.Body.Description)
	return &ExtractOutput{Body: attrs}, nil
}

// RegisterExtractRoutes registers extract endpoints with the Huma API.
func RegisterExtractRoutes(api huma.API, h *ExtractHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "extract-attributes",
		Method:      http.MethodPost,
		Path:        "/api/v1/extract",
		Summary:     "Extract device attributes from a description",
		Description: "Runs ordered keyword rules to detect brand, model, storage specs, " +
			"and condition. Unknown text degrades to empty attributes, never an error.",
		Tags: []string{"extract"},
	}, h.Extract)
}
