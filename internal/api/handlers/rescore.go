package handlers

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	domain "autoprofit/pkg/types"
)

// Rescorer defines the interface for re-scoring stored listings.
type Rescorer interface {
	RescoreAll(ctx context.Context) (int, error)
	RescoreListing(ctx context.Context, listingID string) (*domain.MatchResult, error)
}

// RescoreHandler handles re-scoring requests.
type RescoreHandler struct {
	rescorer Rescorer
}

// RescoreResponse reports how many listings a bulk rescore touched.
type RescoreResponse struct {
	Rescored int `json:"rescored" example:"42"`
}

// NewRescoreHandler creates a new RescoreHandler.
func NewRescoreHandler(r Rescorer) *RescoreHandler {
	return &RescoreHandler{rescorer: r}
}

// RescoreAll handles POST /api/v1/rescore. Every stored listing is
// re-matched and re-scored with the current configuration and reference
// data.
func (h *RescoreHandler) RescoreAll(c echo.Context) error {
	rescored, err := h.rescorer.RescoreAll(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error: "rescore failed: " + err.Error(),
		})
	}

	return c.JSON(http.StatusOK, RescoreResponse{Rescored: rescored})
}

// RescoreOne handles POST /api/v1/listings/:id/rescore.
func (h *RescoreHandler) RescoreOne(c echo.Context) error {
	result, err := h.rescorer.RescoreListing(c.Request().Context(), c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusNotFound, ErrorResponse{
			Error: "rescore failed: " + err.Error(),
		})
	}
	return c.JSON(http.StatusOK, result)
}
