// Package api assembles the Echo router for the autoprofit HTTP API.
package api

import (
	"log/slog"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"autoprofit/internal/api/handlers"
	"autoprofit/internal/api/middleware"
	"autoprofit/internal/store"
)

// Deps bundles the dependencies the router needs. Engine is anything that
// can run ingestion and rescoring; in production it is *engine.Engine.
type Deps struct {
	Store    store.Store
	Ingester handlers.Ingester
	Rescorer handlers.Rescorer
	Log      *slog.Logger
}

// NewRouter builds the Echo instance with middleware and all routes
// registered.
func NewRouter(d Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.Recovery(d.Log))
	e.Use(middleware.RequestLog(d.Log))
	e.Use(middleware.Metrics())

	health := handlers.NewHealthHandler(d.Store)
	e.GET("/healthz", health.Healthz)
	e.GET("/readyz", health.Readyz)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	listings := handlers.NewListingsHandler(d.Store)
	matches := handlers.NewMatchesHandler(d.Store)
	appraisals := handlers.NewAppraisalsHandler(d.Store)
	rescore := handlers.NewRescoreHandler(d.Rescorer)
	ingest := handlers.NewIngestHandler(d.Ingester)

	v1 := e.Group("/api/v1")
	v1.GET("/listings", listings.List)
	v1.GET("/listings/vin/:vin", listings.GetByVIN)
	v1.GET("/listings/:id", listings.Get)
	v1.GET("/listings/:id/match", listings.GetMatch)
	v1.POST("/listings/:id/rescore", rescore.RescoreOne)
	v1.GET("/matches", matches.List)
	v1.GET("/appraisals", appraisals.List)
	v1.POST("/rescore", rescore.RescoreAll)
	v1.POST("/ingest", ingest.Ingest)

	return e
}
