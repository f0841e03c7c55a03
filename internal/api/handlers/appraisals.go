package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"autoprofit/internal/store"
	domain "autoprofit/pkg/types"
)

// AppraisalsHandler exposes the benchmark appraisal reference data.
type AppraisalsHandler struct {
	store store.Store
}

// NewAppraisalsHandler creates a new AppraisalsHandler.
func NewAppraisalsHandler(s store.Store) *AppraisalsHandler {
	return &AppraisalsHandler{store: s}
}

// ListAppraisalsResponse is the response for listing appraisals.
type ListAppraisalsResponse struct {
	Appraisals []domain.Appraisal `json:"appraisals"`
	Total      int                `json:"total"`
}

// List handles GET /api/v1/appraisals. The table is curated and small, so
// the endpoint returns everything.
func (h *AppraisalsHandler) List(c echo.Context) error {
	apps, err := h.store.AllAppraisals(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error: "appraisal query failed: " + err.Error(),
		})
	}

	return c.JSON(http.StatusOK, ListAppraisalsResponse{
		Appraisals: apps,
		Total:      len(apps),
	})
}
