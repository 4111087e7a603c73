// CoolerSelect - Refrigeration Unit Selection Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/coolerselect

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	"github.com/tomtom215/coolerselect/internal/middleware"
)

// Router wires handlers and middleware into a chi router.
type Router struct {
	handler       *Handler
	chiMiddleware *ChiMiddleware
}

// NewRouter creates a router. A nil mw uses DefaultChiMiddlewareConfig.
func NewRouter(handler *Handler, mw *ChiMiddleware) *Router {
	if mw == nil {
		mw = NewChiMiddleware(nil)
	}
	return &Router{handler: handler, chiMiddleware: mw}
}

// SetupChi configures all HTTP routes.
func (router *Router) SetupChi() http.Handler {
	r := chi.NewRouter()

	// ========================
	// Global Middleware Stack
	// ========================
	r.Use(middleware.RequestID) // first, so everything below logs the id
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.PrometheusMetrics)
	r.Use(middleware.RequestLogger(middleware.DefaultSlowRequestThreshold))
	r.Use(chimiddleware.Recoverer)
	r.Use(router.chiMiddleware.CORS()) // global so OPTIONS preflight is answered

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		WriteError(w, r, http.StatusNotFound, ErrCodeNotFound, "Route not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		WriteError(w, r, http.StatusMethodNotAllowed, ErrCodeMethodNotAllowed, "Method not allowed")
	})

	// ========================
	// Health Endpoints
	// ========================
	// Not rate limited so that probes never see 429.
	r.Route("/api/v1/health", func(r chi.Router) {
		r.Get("/", router.handler.Health)
		r.Get("/live", router.handler.HealthLive)
		r.Get("/ready", router.handler.HealthReady)
	})

	// ========================
	// Selection and Catalog
	// ========================
	r.Route("/api/v1", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			r.Use(router.chiMiddleware.RateLimit())

			r.Post("/coolers/select", router.handler.SelectCoolers)

			r.Get("/coolers", router.handler.ListCoolers)
			r.Post("/coolers", router.handler.CreateCooler)
			r.Get("/coolers/{id}", router.handler.GetCooler)
			r.Put("/coolers/{id}", router.handler.UpdateCooler)
			r.Delete("/coolers/{id}", router.handler.DeleteCooler)

			r.Get("/coolers/{id}/capacities", router.handler.ListCapacities)
			r.Post("/coolers/{id}/capacities", router.handler.CreateCapacity)
			r.Delete("/capacities/{id}", router.handler.DeleteCapacity)

			r.Get("/corrections", router.handler.ListCorrections)
			r.Post("/corrections", router.handler.CreateCorrection)
			r.Get("/corrections/{id}", router.handler.GetCorrection)
			r.Put("/corrections/{id}", router.handler.UpdateCorrection)
			r.Delete("/corrections/{id}", router.handler.DeleteCorrection)
		})

		r.Route("/import", func(r chi.Router) {
			r.Use(router.chiMiddleware.RateLimitImport())
			r.Post("/coolers", router.handler.ImportCoolers)
			r.Post("/corrections", router.handler.ImportCorrections)
		})
	})

	// ========================
	// Observability
	// ========================
	r.Handle("/metrics", promhttp.Handler())
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
		httpSwagger.DeepLinking(true),
		httpSwagger.DocExpansion("list"),
		httpSwagger.DomID("swagger-ui"),
	))

	return r
}
