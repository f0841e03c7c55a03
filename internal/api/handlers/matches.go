package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"autoprofit/internal/store"
	domain "autoprofit/pkg/types"
)

// MatchesHandler handles scored match result endpoints.
type MatchesHandler struct {
	store store.Store
}

// NewMatchesHandler creates a new MatchesHandler.
func NewMatchesHandler(s store.Store) *MatchesHandler {
	return &MatchesHandler{store: s}
}

// ListMatchesResponse is the response for listing match results.
type ListMatchesResponse struct {
	Matches []domain.MatchResult `json:"matches"`
	Total   int                  `json:"total"`
	Limit   int                  `json:"limit"`
	Offset  int                  `json:"offset"`
}

// List handles GET /api/v1/matches with optional filters for category,
// match level, and minimum margin percent. Default ordering surfaces the
// highest-margin deals first.
func (h *MatchesHandler) List(c echo.Context) error {
	q := &store.MatchQuery{
		Category: strParam(c, "category"),
		Level:    strParam(c, "level"),
		OrderBy:  c.QueryParam("order_by"),
	}

	var err error
	if q.MinMarginPct, err = floatParam(c, "min_margin_pct"); err != nil {
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

	matches, total, err := h.store.ListMatchResults(c.Request().Context(), q)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error: "match query failed: " + err.Error(),
		})
	}

	return c.JSON(http.StatusOK, ListMatchesResponse{
		Matches: matches,
		Total:   total,
		Limit:   q.Limit,
		Offset:  q.Offset,
	})
}
