package handlers

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"autoprofit/internal/engine"
)

// Ingester defines the interface for triggering an ingestion cycle.
type Ingester interface {
	RunIngestion(ctx context.Context) (engine.IngestionStats, error)
}

// IngestHandler handles manual ingestion trigger requests.
type IngestHandler struct {
	ingester Ingester
}

// NewIngestHandler creates a new IngestHandler.
func NewIngestHandler(ing Ingester) *IngestHandler {
	return &IngestHandler{ingester: ing}
}

// Ingest handles POST /api/v1/ingest, running one full fetch → normalize →
// match → score cycle and reporting its counts.
func (h *IngestHandler) Ingest(c echo.Context) error {
	stats, err := h.ingester.RunIngestion(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error: "ingestion failed: " + err.Error(),
		})
	}
	return c.JSON(http.StatusOK, stats)
}
