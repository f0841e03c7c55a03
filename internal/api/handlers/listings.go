package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"autoprofit/internal/store"
	domain "autoprofit/pkg/types"
)

// ListingsHandler handles listing query endpoints.
type ListingsHandler struct {
	store store.Store
}

// NewListingsHandler creates a new ListingsHandler.
func NewListingsHandler(s store.Store) *ListingsHandler {
	return &ListingsHandler{store: s}
}

// ListListingsResponse is the response for listing listings.
type ListListingsResponse struct {
	Listings []domain.Listing `json:"listings"`
	Total    int              `json:"total"`
	Limit    int              `json:"limit"`
	Offset   int              `json:"offset"`
}

// List handles GET /api/v1/listings with optional filters for make, model,
// year, price range, and pagination.
func (h *ListingsHandler) List(c echo.Context) error {
	q := &store.ListingQuery{
		Make:    strParam(c, "make"),
		Model:   strParam(c, "model"),
		Source:  strParam(c, "source"),
		OrderBy: c.QueryParam("order_by"),
	}

	var err error
	if q.Year, err = intParam(c, "year"); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	}
	if q.MinPrice, err = intParam(c, "min_price"); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	}
	if q.MaxPrice, err = intParam(c, "max_price"); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	}

	if limit, err := intParam(c, "limit"); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	} else if limit != nil {
		q.Limit = *limit
	}
	if offset, err := intParam(c, "offset"); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	} else if offset != nil {
		q.Offset = *offset
	}

	listings, total, err := h.store.ListListings(c.Request().Context(), q)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error: "listing query failed: " + err.Error(),
		})
	}

	return c.JSON(http.StatusOK, ListListingsResponse{
		Listings: listings,
		Total:    total,
		Limit:    q.Limit,
		Offset:   q.Offset,
	})
}

// Get handles GET /api/v1/listings/:id.
func (h *ListingsHandler) Get(c echo.Context) error {
	listing, err := h.store.GetListingByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: "listing not found"})
	}
	return c.JSON(http.StatusOK, listing)
}

// GetByVIN handles GET /api/v1/listings/vin/:vin. VIN is the listing's
// natural key; re-observations upsert into the same row.
func (h *ListingsHandler) GetByVIN(c echo.Context) error {
	listing, err := h.store.GetListingByVIN(c.Request().Context(), c.Param("vin"))
	if err != nil {
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: "listing not found"})
	}
	return c.JSON(http.StatusOK, listing)
}

// GetMatch handles GET /api/v1/listings/:id/match, returning the listing's
// live match result.
func (h *ListingsHandler) GetMatch(c echo.Context) error {
	result, err := h.store.GetMatchResultByListing(c.Request().Context(), c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: "match result not found"})
	}
	return c.JSON(http.StatusOK, result)
}
