package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/di-awab/priseitup/internal/store"
	domain "github.com/di-awab/priseitup/pkg/types"
)

// HistoryHandler handles appraisal history query endpoints.
type HistoryHandler struct {
	store store.Store
}

// NewHistoryHandler creates a new HistoryHandler.
func NewHistoryHandler(s store.Store) *HistoryHandler {
	return &HistoryHandler{store: s}
}

// --- Input/Output types ---

// ListAppraisalsInput is the input for listing past appraisals.
type ListAppraisalsInput struct {
	DeviceType string `query:"device_type" doc:"Filter by device category"`
	Brand      string `query:"brand"       doc:"Filter by brand (case-insensitive)"`
	Limit      int    `query:"limit"       doc:"Number of results (default 50)" minimum:"1" maximum:"1000"`
	Offset     int    `query:"offset"      doc:"Pagination offset"              minimum:"0"`
	OrderBy    string `query:"order_by"    doc:"Sort field"                     enum:"created_at,amount,"`
}

// ListAppraisalsOutput is the response for listing past appraisals.
type ListAppraisalsOutput struct {
	Body struct {
		Appraisals []domain.Appraisal `json:"appraisals"`
		Total      int                `json:"total"`
		Limit      int                `json:"limit"`
		Offset     int                `json:"offset"`
	}
}

// GetAppraisalInput is the input for getting a single appraisal.
type GetAppraisalInput struct {
	ID string `path:"id" doc:"Appraisal UUID"`
}

// GetAppraisalOutput is the response for getting a single appraisal.
type GetAppraisalOutput struct {
	Body domain.Appraisal
}

// --- Handlers ---

// ListAppraisals returns stored appraisals with optional filters and
// pagination.
func (h *HistoryHandler) ListAppraisals(
	ctx context.Context,
	input *ListAppraisalsInput,
) (*ListAppraisalsOutput, error) {
	q := &store.AppraisalQuery{
		Offset:  input.Offset,
		OrderBy: input.OrderBy,
	}

	if input.DeviceType != "" {
		q.DeviceType = &input.DeviceType
	}

	if input.Brand != "" {
		q.Brand = &input.Brand
	}

	if input.Limit != 0 {
		q.Limit = input.Limit
	}

	appraisals, total, err := h.store.ListAppraisals(ctx, q)
	if err != nil {
		return nil, huma.Error500InternalServerError("appraisal query failed: " + err.Error())
	}

	resp := &ListAppraisalsOutput{}
	resp.Body.Appraisals = appraisals
	resp.Body.Total = total
	resp.Body.Limit = q.Limit
	resp.Body.Offset = q.Offset

	return resp, nil
}

// GetAppraisal returns a single appraisal by ID.
func (h *HistoryHandler) GetAppraisal(
	ctx context.Context,
	input *GetAppraisalInput,
) (*GetAppraisalOutput, error) {
	a, err := h.store.GetAppraisal(ctx, input.ID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, huma.Error404NotFound("appraisal not found")
		}
		return nil, huma.Error500InternalServerError("appraisal lookup failed: " + err.Error())
	}

	return &GetAppraisalOutput{Body: *a}, nil
}

// RegisterHistoryRoutes registers appraisal history endpoints with the Huma API.
func RegisterHistoryRoutes(api huma.API, h *HistoryHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "list-appraisals",
		Method:      http.MethodGet,
		Path:        "/api/v1/appraisals",
		Summary:     "List past appraisals",
		Description: "Returns stored appraisals with optional device type and brand filters.",
		Tags:        []string{"history"},
	}, h.ListAppraisals)

	huma.Register(api, huma.Operation{
		OperationID: "get-appraisal",
		Method:      http.MethodGet,
		Path:        "/api/v1/appraisals/{id}",
		Summary:     "Get an appraisal by ID",
		Description: "Returns a single stored appraisal by its UUID.",
		Tags:        []string{"history"},
		Errors:      []int{http.StatusNotFound},
	}, h.GetAppraisal)
}
