package handlers

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/di-awab/priseitup/internal/store"
	domain "github.com/di-awab/priseitup/pkg/types"
)

// StatsHandler serves aggregate statistics over stored appraisals.
type StatsHandler struct {
	store store.Store
}

// NewStatsHandler creates a new StatsHandler.
func NewStatsHandler(s store.Store) *StatsHandler {
	return &StatsHandler{store: s}
}

// StatsOutput is the response for the stats endpoint.
type StatsOutput struct {
	Body domain.AppraisalStats
}

// GetStats returns totals and per-device-type averages.
func (h *StatsHandler) GetStats(
	ctx context.Context,
	_ *struct{},
) (*StatsOutput, error) {
	stats, err := h.store.GetStats(ctx)
	if err != nil {
		return nil, huma.Error500InternalServerError("stats query failed: " + err.Error())
	}

	return &StatsOutput{Body: *stats}, nil
}

// RegisterStatsRoutes registers the stats endpoint with the Huma API.
func RegisterStatsRoutes(api huma.API, h *StatsHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "get-stats",
		Method:      http.MethodGet,
		Path:        "/api/v1/stats",
		Summary:     "Get appraisal statistics",
		Description: "Returns total stored appraisals, the overall average estimate, " +
			"and per-device-type counts and averages.",
		Tags: []string{"history"},
	}, h.GetStats)
}
